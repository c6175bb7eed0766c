package usecases

import (
	"predial-server/internal/catalog/domain"
)

// Built-in catalog. IDs are stable so repeated seeding is an update, not a
// duplicate.

func step(description string) domain.ChecklistItem {
	return domain.ChecklistItem{Description: description, Mandatory: true}
}

func optionalStep(description string) domain.ChecklistItem {
	return domain.ChecklistItem{Description: description}
}

func builtinAssetTypes() []domain.AssetType {
	return []domain.AssetType{
		{
			ID:                 "tipo-elevador",
			Slug:               "elevador",
			Name:               "Elevador",
			MaintenanceSystem:  "transporte_vertical",
			Criticality:        domain.CriticalityHigh,
			RequiresCompliance: true,
			DefaultChecklist: []domain.ChecklistItem{
				step("Verificar nivelamento da cabine"),
				step("Testar freio de emergencia"),
				step("Inspecionar cabos de tracao"),
			},
		},
		{
			ID:                 "tipo-bomba-incendio",
			Slug:               "bomba-incendio",
			Name:               "Bomba de incendio",
			MaintenanceSystem:  "combate_incendio",
			Criticality:        domain.CriticalityHigh,
			RequiresCompliance: true,
			DefaultChecklist: []domain.ChecklistItem{
				step("Acionar bomba em modo manual"),
				step("Verificar pressao da rede"),
				optionalStep("Inspecionar vedacoes e conexoes"),
			},
		},
		{
			ID:                 "tipo-extintor",
			Slug:               "extintor",
			Name:               "Extintor de incendio",
			MaintenanceSystem:  "combate_incendio",
			Criticality:        domain.CriticalityHigh,
			RequiresCompliance: true,
			DefaultChecklist: []domain.ChecklistItem{
				step("Conferir lacre e pino de seguranca"),
				step("Verificar manometro na faixa verde"),
				step("Conferir validade da carga"),
			},
		},
		{
			ID:                 "tipo-spda",
			Slug:               "spda",
			Name:               "Para-raios (SPDA)",
			MaintenanceSystem:  "protecao_descargas",
			Criticality:        domain.CriticalityHigh,
			RequiresCompliance: true,
			DefaultChecklist: []domain.ChecklistItem{
				step("Medir resistencia de aterramento"),
				step("Inspecionar captores e descidas"),
			},
		},
		{
			ID:                 "tipo-gerador",
			Slug:               "gerador",
			Name:               "Grupo gerador",
			MaintenanceSystem:  "energia",
			Criticality:        domain.CriticalityMedium,
			RequiresCompliance: true,
			DefaultChecklist: []domain.ChecklistItem{
				step("Testar partida automatica"),
				step("Verificar nivel de combustivel e oleo"),
			},
		},
		{
			ID:                 "tipo-reservatorio",
			Slug:               "reservatorio-agua",
			Name:               "Reservatorio de agua",
			MaintenanceSystem:  "hidraulica",
			Criticality:        domain.CriticalityHigh,
			RequiresCompliance: true,
			DefaultChecklist: []domain.ChecklistItem{
				step("Limpeza e desinfeccao"),
				step("Coleta de amostra para analise de potabilidade"),
			},
		},
		{
			ID:                 "tipo-iluminacao-emergencia",
			Slug:               "iluminacao-emergencia",
			Name:               "Iluminacao de emergencia",
			MaintenanceSystem:  "combate_incendio",
			Criticality:        domain.CriticalityMedium,
			RequiresCompliance: true,
			DefaultChecklist: []domain.ChecklistItem{
				step("Simular queda de energia"),
				step("Verificar autonomia das luminarias"),
			},
		},
		{
			ID:                 "tipo-portao",
			Slug:               "portao-automatico",
			Name:               "Portao automatico",
			MaintenanceSystem:  "acessos",
			Criticality:        domain.CriticalityLow,
			RequiresCompliance: false,
			DefaultChecklist: []domain.ChecklistItem{
				optionalStep("Lubrificar trilhos e correntes"),
				step("Testar sensor anti-esmagamento"),
			},
		},
		{
			ID:                 "tipo-piscina",
			Slug:               "piscina",
			Name:               "Piscina",
			MaintenanceSystem:  "lazer",
			Criticality:        domain.CriticalityLow,
			RequiresCompliance: false,
			DefaultChecklist: []domain.ChecklistItem{
				step("Medir pH e cloro"),
				optionalStep("Limpar filtros"),
			},
		},
	}
}

func builtinRequirements() []domain.ComplianceRequirement {
	return []domain.ComplianceRequirement{
		{
			ID:              "req-elevador-mensal",
			AssetTypeSlug:   "elevador",
			Code:            "NBR 16083",
			Title:           "Manutencao mensal de elevadores",
			Description:     "Inspecao e manutencao preventiva mensal por empresa conservadora.",
			Periodicity:     "30d",
			ResponsibleRole: "terceirizado",
			IsLegal:         true,
			Checklist: []domain.ChecklistItem{
				step("Verificar nivelamento da cabine"),
				step("Testar freio de emergencia"),
				step("Inspecionar cabos de tracao"),
				step("Registrar no livro de ocorrencias"),
			},
		},
		{
			ID:              "req-bomba-incendio-mensal",
			AssetTypeSlug:   "bomba-incendio",
			Code:            "NBR 13714",
			Title:           "Teste mensal de bombas de incendio",
			Description:     "Acionamento e verificacao de pressao do sistema de hidrantes.",
			Periodicity:     "30d",
			ResponsibleRole: "zelador",
			IsLegal:         true,
			Checklist: []domain.ChecklistItem{
				step("Acionar bomba em modo manual"),
				step("Verificar pressao da rede"),
			},
		},
		{
			ID:              "req-extintor-anual",
			AssetTypeSlug:   "extintor",
			Code:            "NBR 12962",
			Title:           "Inspecao e recarga de extintores",
			Description:     "Inspecao periodica e recarga anual dos extintores.",
			Periodicity:     "1y",
			ResponsibleRole: "terceirizado",
			IsLegal:         true,
			Checklist: []domain.ChecklistItem{
				step("Conferir lacre e pino de seguranca"),
				step("Verificar manometro na faixa verde"),
				step("Recarga da carga extintora"),
			},
		},
		{
			ID:              "req-extintor-mensal",
			AssetTypeSlug:   "extintor",
			Code:            "NBR 12962/INSP",
			Title:           "Inspecao visual mensal de extintores",
			Description:     "Verificacao visual de acesso, sinalizacao e estado geral.",
			Periodicity:     "30d",
			ResponsibleRole: "zelador",
			IsLegal:         true,
			Checklist: []domain.ChecklistItem{
				step("Conferir acesso desobstruido"),
				step("Conferir sinalizacao"),
			},
		},
		{
			ID:              "req-spda-anual",
			AssetTypeSlug:   "spda",
			Code:            "NBR 5419",
			Title:           "Inspecao anual do SPDA",
			Description:     "Medicao de aterramento e inspecao do sistema de protecao contra descargas atmosfericas.",
			Periodicity:     "1y",
			ResponsibleRole: "terceirizado",
			IsLegal:         true,
			Checklist: []domain.ChecklistItem{
				step("Medir resistencia de aterramento"),
				step("Inspecionar captores e descidas"),
				step("Emitir laudo tecnico"),
			},
		},
		{
			ID:              "req-gerador-mensal",
			AssetTypeSlug:   "gerador",
			Code:            "NBR 5674/GER",
			Title:           "Teste mensal do grupo gerador",
			Description:     "Partida em vazio e verificacao de niveis conforme plano de manutencao predial.",
			Periodicity:     "30d",
			ResponsibleRole: "zelador",
			IsLegal:         true,
			Checklist: []domain.ChecklistItem{
				step("Testar partida automatica"),
				step("Verificar nivel de combustivel e oleo"),
			},
		},
		{
			ID:              "req-reservatorio-semestral",
			AssetTypeSlug:   "reservatorio-agua",
			Code:            "NBR 5674/RES",
			Title:           "Limpeza semestral de reservatorios",
			Description:     "Limpeza, desinfeccao e analise de potabilidade da agua.",
			Periodicity:     "6m",
			ResponsibleRole: "terceirizado",
			IsLegal:         true,
			Checklist: []domain.ChecklistItem{
				step("Limpeza e desinfeccao"),
				step("Coleta de amostra para analise de potabilidade"),
				step("Emitir certificado de limpeza"),
			},
		},
		{
			ID:              "req-iluminacao-mensal",
			AssetTypeSlug:   "iluminacao-emergencia",
			Code:            "NBR 10898",
			Title:           "Teste mensal da iluminacao de emergencia",
			Description:     "Simulacao de falta de energia e verificacao de autonomia.",
			Periodicity:     "30d",
			ResponsibleRole: "zelador",
			IsLegal:         true,
			Checklist: []domain.ChecklistItem{
				step("Simular queda de energia"),
				step("Verificar autonomia das luminarias"),
			},
		},
	}
}
