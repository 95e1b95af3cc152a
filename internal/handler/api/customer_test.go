//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"flashbooth/internal/handler/api"
	"flashbooth/internal/pkg/clock"
	"flashbooth/internal/usecase/commands"
	"flashbooth/internal/usecase/queries"
	"flashbooth/tests/common/httptest"
	commandsmock "flashbooth/tests/mock/commands"
	queriesmock "flashbooth/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CustomerHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCustomerCommands
	mockQueries  *queriesmock.MockCustomerQueries
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCustomerCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCustomerQueries(s.mockCtrl)

	frozen := clock.Fixed(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	handler := api.NewCustomerHandler(s.mockCommands, s.mockQueries, frozen)

	s.router.GET("/admin/customers", handler.List)
	s.router.GET("/admin/customers/export", handler.Export)
	s.router.GET("/admin/customers/:id", handler.GetByID)
	s.router.DELETE("/admin/customers/:id", handler.Delete)
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func (s *CustomerHandlerTestSuite) TestList() {
	s.Run("returns customers with booking counts", func() {
		items := []*queries.CustomerListItem{
			{ID: uuid.New(), FirstName: "Marie", LastName: "Dupont", Email: "marie.dupont@example.com", BookingsCount: 2},
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/customers", nil, "")

		var response []queries.CustomerListItem
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("marie.dupont@example.com", response[0].Email)
		s.Equal(int64(2), response[0].BookingsCount)
	})
}

func (s *CustomerHandlerTestSuite) TestExport() {
	s.Run("streams CSV named after the current date", func() {
		rows := [][]string{
			{"First name", "Last name", "Email", "Phone", "Address", "Bookings", "Registered"},
			{"Marie", "Dupont", "marie.dupont@example.com", "06 12 34 56 78", "12 rue de la Paix, 75002 Paris", "2", "2026-01-05"},
		}
		s.mockQueries.EXPECT().ExportRows(gomock.Any()).Return(rows, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/customers/export", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
		s.Equal(`attachment; filename="customers-2026-03-14.csv"`, rec.Header().Get("Content-Disposition"))
		s.Equal("First name,Last name,Email,Phone,Address,Bookings,Registered\n"+
			"Marie,Dupont,marie.dupont@example.com,06 12 34 56 78,\"12 rue de la Paix, 75002 Paris\",2,2026-01-05\n",
			rec.Body.String())
	})

	s.Run("query failure returns 500", func() {
		s.mockQueries.EXPECT().ExportRows(gomock.Any()).Return(nil, queries.ErrCustomerNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/customers/export", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *CustomerHandlerTestSuite) TestGetByID() {
	s.Run("unknown customer returns 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrCustomerNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/customers/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")
	})

	s.Run("malformed id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/customers/not-a-uuid", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid customer id")
	})
}

func (s *CustomerHandlerTestSuite) TestDelete() {
	s.Run("success returns 204", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/customers/"+id.String(), nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("unknown customer returns 404", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(commands.ErrCustomerNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/customers/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")
	})

	s.Run("customer with bookings returns 409", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(commands.ErrCustomerHasBookings).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/customers/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Customer still has bookings")
	})
}
