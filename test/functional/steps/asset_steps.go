package steps

import (
	"net/http"
)

// Asset and plan step implementations
func (fc *FeatureContext) iRegisterAnAssetOfTypeNamed(assetTypeSlug, name string) error {
	resp, err := fc.apiDriver.CreateAsset(fc.condominiumID, assetTypeSlug, name)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) anAssetOfTypeNamedExists(assetTypeSlug, name string) error {
	resp, err := fc.apiDriver.CreateAsset(fc.condominiumID, assetTypeSlug, name)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.assetID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) theResponseShouldReportGeneratedPlans(expected int) error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)

	plansCreated, ok := data["planos_criados"].(float64)
	fc.require.True(ok, "expected planos_criados in response")
	fc.require.Equal(expected, int(plansCreated))
	fc.assetID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) theResponseShouldReportAtLeastGeneratedPlans(minimum int) error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)

	plansCreated, ok := data["planos_criados"].(float64)
	fc.require.True(ok, "expected planos_criados in response")
	fc.require.GreaterOrEqual(int(plansCreated), minimum)
	fc.assetID = data["id"].(string)
	fc.plansCreated = int(plansCreated)
	return nil
}

func (fc *FeatureContext) iListTheMaintenancePlans() error {
	resp, err := fc.apiDriver.ListPlans(fc.condominiumID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) everyPlanShouldBeClassifiedAs(classification string) error {
	plans, err := fc.decodePaginatedResponse(fc.response)
	fc.require.NoError(err)
	fc.require.NotEmpty(plans)

	for _, plan := range plans {
		fc.require.Equal(classification, plan["classificacao"])
	}
	return nil
}

func (fc *FeatureContext) thePlanListShouldNotBeEmpty() error {
	plans, err := fc.decodePaginatedResponse(fc.response)
	fc.require.NoError(err)
	fc.require.NotEmpty(plans)
	fc.responseListData = plans
	return nil
}

func (fc *FeatureContext) iGetTheDashboard() error {
	resp, err := fc.apiDriver.GetDashboard(fc.condominiumID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) theDashboardShouldReportTotalPlans(expected int) error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)

	totalPlans, ok := data["total_planos"].(float64)
	fc.require.True(ok, "expected total_planos in response")
	fc.require.Equal(expected, int(totalPlans))
	return nil
}

func (fc *FeatureContext) theDashboardShouldIncludeAComplianceRate() error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)

	rate, ok := data["taxa_conformidade"].(float64)
	fc.require.True(ok, "expected taxa_conformidade in response")
	fc.require.GreaterOrEqual(int(rate), 0)
	fc.require.LessOrEqual(int(rate), 100)
	return nil
}
