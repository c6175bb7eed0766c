package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"predial-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

// PaginatedResponse mirrors the server's list envelope.
type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Total  int `json:"total"`
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	} `json:"pagination"`
}

type FeatureContext struct {
	apiDriver        *driver.APIDriver
	response         *http.Response
	responseData     map[string]any
	responseListData []map[string]any
	condominiumID    string
	assetID          string
	workOrderID      string
	workOrderNumbers []string
	plansCreated     int
	require          *require.Assertions
	t                godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver("http://localhost:3000"),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)

	// Condominium steps
	ctx.When(`^I create a new condominium with name "([^"]*)" and email "([^"]*)"$`, fc.iCreateANewCondominiumWithNameAndEmail)
	ctx.Given(`^a condominium exists with name "([^"]*)" and email "([^"]*)"$`, fc.aCondominiumExistsWithNameAndEmail)
	ctx.When(`^I get the condominium by its ID$`, fc.iGetTheCondominiumByItsID)
	ctx.Then(`^the response should contain the condominium with name "([^"]*)"$`, fc.theResponseShouldContainTheCondominiumWithName)
	ctx.When(`^I list all condominiums$`, fc.iListAllCondominiums)
	ctx.Then(`^the list should contain the condominium with name "([^"]*)"$`, fc.theListShouldContainTheCondominiumWithName)
	ctx.When(`^I update the condominium with a new name "([^"]*)"$`, fc.iUpdateTheCondominiumWithANewName)
	ctx.When(`^I soft delete the condominium$`, fc.iSoftDeleteTheCondominium)
	ctx.Then(`^the condominium should be soft deleted$`, fc.theCondominiumShouldBeSoftDeleted)

	// Asset and plan steps
	ctx.When(`^I register an asset of type "([^"]*)" named "([^"]*)"$`, fc.iRegisterAnAssetOfTypeNamed)
	ctx.Given(`^an asset of type "([^"]*)" named "([^"]*)" exists$`, fc.anAssetOfTypeNamedExists)
	ctx.Then(`^the response should report (\d+) generated plans$`, fc.theResponseShouldReportGeneratedPlans)
	ctx.Then(`^the response should report at least (\d+) generated plans$`, fc.theResponseShouldReportAtLeastGeneratedPlans)
	ctx.When(`^I list the maintenance plans$`, fc.iListTheMaintenancePlans)
	ctx.Then(`^every plan should be classified as "([^"]*)"$`, fc.everyPlanShouldBeClassifiedAs)
	ctx.Then(`^the plan list should not be empty$`, fc.thePlanListShouldNotBeEmpty)

	// Work order steps
	ctx.When(`^I open a "([^"]*)" work order titled "([^"]*)"$`, fc.iOpenAWorkOrderTitled)
	ctx.Given(`^an open work order titled "([^"]*)" exists$`, fc.anOpenWorkOrderTitledExists)
	ctx.Then(`^the work order number should match "([^"]*)"$`, fc.theWorkOrderNumberShouldMatch)
	ctx.Then(`^the work order numbers should be sequential$`, fc.theWorkOrderNumbersShouldBeSequential)
	ctx.When(`^I transition the work order to "([^"]*)"$`, fc.iTransitionTheWorkOrderTo)
	ctx.Then(`^the work order status should be "([^"]*)"$`, fc.theWorkOrderStatusShouldBe)
	ctx.When(`^I get the work order logs$`, fc.iGetTheWorkOrderLogs)
	ctx.Then(`^the log should contain (\d+) entries$`, fc.theLogShouldContainEntries)

	// Dashboard steps
	ctx.When(`^I get the dashboard$`, fc.iGetTheDashboard)
	ctx.Then(`^the dashboard should report (\d+) total plans$`, fc.theDashboardShouldReportTotalPlans)
	ctx.Then(`^the dashboard should include a compliance rate$`, fc.theDashboardShouldIncludeAComplianceRate)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.responseListData = nil
	fc.condominiumID = ""
	fc.assetID = ""
	fc.workOrderID = ""
	fc.workOrderNumbers = nil
	fc.plansCreated = 0
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	return json.NewDecoder(body).Decode(target)
}

func (fc *FeatureContext) decodePaginatedResponse(response *http.Response) ([]map[string]any, error) {
	var paginatedResp PaginatedResponse[map[string]any]
	if err := fc.decodeBody(response.Body, &paginatedResp); err != nil {
		return nil, fmt.Errorf("failed to decode paginated response: %w", err)
	}
	return paginatedResp.Data, nil
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(expected int) error {
	fc.require.NotNil(fc.response)
	fc.require.Equal(expected, fc.response.StatusCode)
	return nil
}
