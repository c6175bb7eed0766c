package httpapi_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"predial-server/internal/infra/httpserver"
	"predial-server/internal/shared_kernel/domain"
	"predial-server/internal/shared_kernel/httpapi"
	"predial-server/internal/shared_kernel/usecases"
	mockusecases "predial-server/test/unit/doubles/shared_kernel/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("CondominiumController", func() {
	var controller *httpapi.CondominiumController
	var mockService *mockusecases.MockCondominiumService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var request *http.Request
	var router *http.ServeMux

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockCondominiumService(ctrl)
		controller = httpapi.NewCondominiumController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("listCondominiums", func() {
		When("successful request with default pagination", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/condominios", nil)
			})

			It("should return paginated response with default parameters", func() {
				condominiums := []domain.Condominium{
					{ID: "cond-1", Name: "Edificio Aurora"},
					{ID: "cond-2", Name: "Residencial Horizonte"},
				}
				expectedPagination := usecases.Pagination{Limit: 10, Offset: 0}
				mockService.EXPECT().
					ListCondominiums(gomock.Any(), false, expectedPagination).
					Return(condominiums, 2, nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response httpserver.PaginatedResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.Pagination.Page).To(Equal(1))
				Expect(response.Pagination.Limit).To(Equal(10))
				Expect(response.Pagination.Total).To(Equal(2))

				data, ok := response.Data.([]any)
				Expect(ok).To(BeTrue())
				Expect(data).To(HaveLen(2))
			})
		})
	})

	Context("createCondominium", func() {
		When("the payload is valid", func() {
			BeforeEach(func() {
				body := `{"name":"Edificio Aurora","email":"sindico@aurora.com.br"}`
				request = httptest.NewRequest("POST", "/v1/condominios", strings.NewReader(body))
				request.Header.Set("Content-Type", "application/json")
			})

			It("should return 201 with the created condominium", func() {
				mockService.EXPECT().
					CreateCondominium(gomock.Any(), gomock.Any()).
					Return(nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))

				var response map[string]any
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response["name"]).To(Equal("Edificio Aurora"))
				Expect(response["id"]).NotTo(BeEmpty())
			})
		})

		When("the name already exists", func() {
			BeforeEach(func() {
				body := `{"name":"Edificio Aurora","email":"sindico@aurora.com.br"}`
				request = httptest.NewRequest("POST", "/v1/condominios", strings.NewReader(body))
			})

			It("should return 409", func() {
				mockService.EXPECT().
					CreateCondominium(gomock.Any(), gomock.Any()).
					Return(usecases.ErrCondominiumDuplicated)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusConflict))
			})
		})

		When("the email is malformed", func() {
			BeforeEach(func() {
				body := `{"name":"Edificio Aurora","email":"not-an-email"}`
				request = httptest.NewRequest("POST", "/v1/condominios", strings.NewReader(body))
			})

			It("should return 400 without calling the service", func() {
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("getCondominium", func() {
		When("the condominium does not exist", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/condominios/missing", nil)
			})

			It("should return 404", func() {
				mockService.EXPECT().
					GetCondominium(gomock.Any(), domain.ID("missing")).
					Return(domain.Condominium{}, usecases.ErrCondominiumNotFound)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("updateCondominium", func() {
		When("the version conflicts", func() {
			BeforeEach(func() {
				body := `{"email":"novo@aurora.com.br","version":7}`
				request = httptest.NewRequest("PUT", "/v1/condominios/cond-1", strings.NewReader(body))
			})

			It("should return 409", func() {
				mockService.EXPECT().
					UpdateCondominium(gomock.Any(), gomock.Any()).
					Return(usecases.ErrCondominiumVersionConflict)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusConflict))
			})
		})
	})
})
