package internal

import "predial-server/internal/maintenance/usecases"

type DashboardResponse struct {
	TotalPlans          int `json:"total_planos"`
	DueThisMonth        int `json:"vencem_no_mes"`
	Overdue             int `json:"atrasados"`
	ImminentWithin7Days int `json:"iminentes_7_dias"`
	ComplianceRate      int `json:"taxa_conformidade"`
}

func ToDashboardResponse(kpis usecases.DashboardKPIs) DashboardResponse {
	return DashboardResponse{
		TotalPlans:          kpis.TotalPlans,
		DueThisMonth:        kpis.DueThisMonth,
		Overdue:             kpis.Overdue,
		ImminentWithin7Days: kpis.ImminentWithin7Days,
		ComplianceRate:      kpis.ComplianceRate,
	}
}
