package httpapi_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"predial-server/internal/maintenance/httpapi"
	"predial-server/internal/maintenance/usecases"
	shareddomain "predial-server/internal/shared_kernel/domain"
	mocks "predial-server/test/unit/doubles/maintenance/usecases"
)

var _ = Describe("DashboardController", func() {
	var controller *httpapi.DashboardController
	var mockService *mocks.MockDashboardService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var request *http.Request
	var router *http.ServeMux

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		mockService = mocks.NewMockDashboardService(ctrl)
		controller = httpapi.NewDashboardController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	When("the tenant has plans", func() {
		BeforeEach(func() {
			request = httptest.NewRequest("GET", "/v1/condominios/cond-1/dashboard", nil)
		})

		It("should return the KPI block", func() {
			mockService.EXPECT().
				ComputeKPIs(gomock.Any(), shareddomain.ID("cond-1"), gomock.Any()).
				Return(usecases.DashboardKPIs{
					TotalPlans:          12,
					DueThisMonth:        3,
					Overdue:             2,
					ImminentWithin7Days: 1,
					ComplianceRate:      75,
				}, nil)

			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response map[string]any
			err := json.Unmarshal(recorder.Body.Bytes(), &response)
			Expect(err).NotTo(HaveOccurred())
			Expect(response["total_planos"]).To(BeEquivalentTo(12))
			Expect(response["atrasados"]).To(BeEquivalentTo(2))
			Expect(response["taxa_conformidade"]).To(BeEquivalentTo(75))
		})
	})

	When("the computation fails", func() {
		BeforeEach(func() {
			request = httptest.NewRequest("GET", "/v1/condominios/cond-1/dashboard", nil)
		})

		It("should return 500", func() {
			mockService.EXPECT().
				ComputeKPIs(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(usecases.DashboardKPIs{}, errors.New("connection reset"))

			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
		})
	})
})
