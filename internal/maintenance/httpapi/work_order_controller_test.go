package httpapi_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"predial-server/internal/maintenance/domain"
	"predial-server/internal/maintenance/httpapi"
	"predial-server/internal/maintenance/usecases"
	shareddomain "predial-server/internal/shared_kernel/domain"
	mocks "predial-server/test/unit/doubles/maintenance/usecases"
)

var _ = Describe("WorkOrderController", func() {
	var controller *httpapi.WorkOrderController
	var mockService *mocks.MockWorkOrderService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var request *http.Request
	var router *http.ServeMux

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		mockService = mocks.NewMockWorkOrderService(ctrl)
		controller = httpapi.NewWorkOrderController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("createWorkOrder", func() {
		When("the payload is valid", func() {
			BeforeEach(func() {
				body := `{
					"ativoId": "ativo-1",
					"titulo": "Troca de cabo de tracao",
					"tipoOS": "corretiva",
					"prioridade": "urgente",
					"tipoExecutor": "externo",
					"executorNome": "Elevadores Atlas",
					"executorContato": "atlas@example.com"
				}`
				request = httptest.NewRequest("POST", "/v1/condominios/cond-1/os", strings.NewReader(body))
				request.Header.Set("X-User-Email", "sindico@aurora.com.br")
			})

			It("should return 201 with the allocated number", func() {
				mockService.EXPECT().
					CreateWorkOrder(gomock.Any(), gomock.Any(), "sindico@aurora.com.br").
					DoAndReturn(func(_ any, workOrder domain.WorkOrder, _ string) (domain.WorkOrder, error) {
						Expect(workOrder.CondominiumID).To(Equal(shareddomain.ID("cond-1")))
						Expect(workOrder.Status).To(Equal(domain.StatusAberta))
						workOrder.Number = "OS-2025-0001"
						return workOrder, nil
					})

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))

				var response map[string]any
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response["numero_os"]).To(MatchRegexp(`^OS-\d{4}-\d{4}$`))
				Expect(response["status"]).To(Equal("aberta"))
			})
		})

		When("the work order type is unknown", func() {
			BeforeEach(func() {
				body := `{
					"ativoId": "ativo-1",
					"titulo": "Troca de cabo",
					"tipoOS": "urgente",
					"prioridade": "alta",
					"tipoExecutor": "externo",
					"executorNome": "Atlas",
					"executorContato": "atlas@example.com"
				}`
				request = httptest.NewRequest("POST", "/v1/condominios/cond-1/os", strings.NewReader(body))
			})

			It("should return 400 without calling the service", func() {
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the external executor has no contact", func() {
			BeforeEach(func() {
				body := `{
					"ativoId": "ativo-1",
					"titulo": "Troca de cabo",
					"tipoOS": "corretiva",
					"prioridade": "alta",
					"tipoExecutor": "externo"
				}`
				request = httptest.NewRequest("POST", "/v1/condominios/cond-1/os", strings.NewReader(body))
			})

			It("should return 400", func() {
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the asset does not exist", func() {
			BeforeEach(func() {
				body := `{
					"ativoId": "ativo-ghost",
					"titulo": "Troca de cabo",
					"tipoOS": "corretiva",
					"prioridade": "alta",
					"tipoExecutor": "externo",
					"executorNome": "Atlas",
					"executorContato": "atlas@example.com"
				}`
				request = httptest.NewRequest("POST", "/v1/condominios/cond-1/os", strings.NewReader(body))
			})

			It("should return 404", func() {
				mockService.EXPECT().
					CreateWorkOrder(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.WorkOrder{}, usecases.ErrAssetNotFound)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("transitionWorkOrder", func() {
		When("the transition is valid", func() {
			BeforeEach(func() {
				body := `{"status":"em_andamento","observacao":"iniciando"}`
				request = httptest.NewRequest("PATCH", "/v1/os/os-1/status", strings.NewReader(body))
				request.Header.Set("X-User-Name", "Joao Zelador")
			})

			It("should return 200 with the updated work order", func() {
				mockService.EXPECT().
					TransitionWorkOrder(gomock.Any(), shareddomain.ID("os-1"), domain.StatusEmAndamento, "Joao Zelador", "iniciando").
					Return(domain.WorkOrder{
						ID:     shareddomain.ID("os-1"),
						Number: "OS-2025-0001",
						Status: domain.StatusEmAndamento,
					}, nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response map[string]any
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response["status"]).To(Equal("em_andamento"))
			})
		})

		When("the state machine rejects the transition", func() {
			BeforeEach(func() {
				body := `{"status":"em_andamento"}`
				request = httptest.NewRequest("PATCH", "/v1/os/os-1/status", strings.NewReader(body))
			})

			It("should return 409", func() {
				mockService.EXPECT().
					TransitionWorkOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.WorkOrder{}, domain.ErrInvalidTransition)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusConflict))
			})
		})

		When("the work order does not exist", func() {
			BeforeEach(func() {
				body := `{"status":"cancelada"}`
				request = httptest.NewRequest("PATCH", "/v1/os/missing/status", strings.NewReader(body))
			})

			It("should return 404", func() {
				mockService.EXPECT().
					TransitionWorkOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.WorkOrder{}, usecases.ErrWorkOrderNotFound)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("listWorkOrders", func() {
		When("status and type filters are present", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/condominios/cond-1/os?status=aberta&tipo=corretiva", nil)
			})

			It("should pass the filters through", func() {
				expectedFilter := usecases.WorkOrderFilter{Status: "aberta", Type: "corretiva"}
				mockService.EXPECT().
					ListWorkOrders(gomock.Any(), shareddomain.ID("cond-1"), expectedFilter, gomock.Any()).
					Return([]domain.WorkOrder{{ID: "os-1", Number: "OS-2025-0001", Status: domain.StatusAberta}}, 1, nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))
			})
		})
	})

	Context("getWorkOrderLogs", func() {
		When("the history exists", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/os/os-1/logs", nil)
			})

			It("should return the entries in order", func() {
				opening := domain.NewOpeningLogEntry(shareddomain.ID("os-1"), "sindico@aurora.com.br")
				transition := domain.NewTransitionLogEntry(shareddomain.ID("os-1"), "Joao Zelador", domain.StatusAberta, domain.StatusEmAndamento, "")
				mockService.EXPECT().
					GetWorkOrderLogs(gomock.Any(), shareddomain.ID("os-1")).
					Return([]domain.WorkOrderLogEntry{opening, transition}, nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response []map[string]any
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response).To(HaveLen(2))
				Expect(response[0]["to_status"]).To(Equal("aberta"))
				Expect(response[1]["from_status"]).To(Equal("aberta"))
			})
		})
	})
})
