package httpapi_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"predial-server/internal/infra/httpserver"
	"predial-server/internal/maintenance/domain"
	"predial-server/internal/maintenance/httpapi"
	"predial-server/internal/maintenance/usecases"
	shareddomain "predial-server/internal/shared_kernel/domain"
	mocks "predial-server/test/unit/doubles/maintenance/usecases"
)

var _ = Describe("PlanController", func() {
	var controller *httpapi.PlanController
	var mockService *mocks.MockPlanService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var request *http.Request
	var router *http.ServeMux

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		mockService = mocks.NewMockPlanService(ctrl)
		controller = httpapi.NewPlanController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("listPlans", func() {
		When("the tenant has plans", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/condominios/cond-1/planos", nil)
			})

			It("should return the paginated set with classifications", func() {
				plans := []domain.MaintenancePlan{
					{
						ID:              "plano-1",
						CondominiumID:   "cond-1",
						AssetID:         "ativo-1",
						RequirementCode: "NBR 16083",
						Title:           "Manutencao mensal de elevadores",
						Periodicity:     domain.Periodicity{Days: 30},
						NextDueAt:       time.Now().UTC().AddDate(0, 2, 0),
					},
				}
				mockService.EXPECT().
					ListPlans(gomock.Any(), shareddomain.ID("cond-1"), gomock.Any()).
					Return(plans, 1, nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response httpserver.PaginatedResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.Pagination.Total).To(Equal(1))

				data, ok := response.Data.([]any)
				Expect(ok).To(BeTrue())
				Expect(data).To(HaveLen(1))

				plan, ok := data[0].(map[string]any)
				Expect(ok).To(BeTrue())
				Expect(plan["classificacao"]).To(Equal("agendado"))
				Expect(plan["periodicidade"]).To(Equal("30d"))
			})
		})
	})

	Context("getPlan", func() {
		When("the plan does not exist", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/planos/missing", nil)
			})

			It("should return 404", func() {
				mockService.EXPECT().
					GetPlan(gomock.Any(), shareddomain.ID("missing")).
					Return(domain.MaintenancePlan{}, usecases.ErrPlanNotFound)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the plan is overdue", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/planos/plano-1", nil)
			})

			It("should classify it as atrasado", func() {
				mockService.EXPECT().
					GetPlan(gomock.Any(), shareddomain.ID("plano-1")).
					Return(domain.MaintenancePlan{
						ID:            "plano-1",
						CondominiumID: "cond-1",
						Title:         "Limpeza de reservatorio",
						Periodicity:   domain.Periodicity{Months: 6},
						NextDueAt:     time.Now().UTC().AddDate(0, 0, -10),
					}, nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response map[string]any
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response["classificacao"]).To(Equal("atrasado"))
			})
		})
	})
})
