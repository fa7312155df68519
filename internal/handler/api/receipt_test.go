//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"course-checkout/internal/handler/api"
	"course-checkout/internal/usecase/commands"
	"course-checkout/internal/usecase/queries"
	"course-checkout/tests/common/httptest"
	commandsmock "course-checkout/tests/mock/commands"
	queriesmock "course-checkout/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReceiptHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReceiptCommands
	mockQueries  *queriesmock.MockReceiptQueries
	handler      *api.ReceiptHandler
}

func (s *ReceiptHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReceiptCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReceiptQueries(s.mockCtrl)
	s.handler = api.NewReceiptHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/receipts", s.handler.List)
	s.router.PUT("/receipts/:id/status", s.handler.ChangeStatus)
}

func (s *ReceiptHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReceiptHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReceiptHandlerTestSuite))
}

func (s *ReceiptHandlerTestSuite) TestList() {
	s.Run("success: passes filters through to the query layer", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter queries.ReceiptFilter) (*queries.ReceiptPage, error) {
				s.Equal(int32(20), filter.Offset)
				s.Equal(int32(10), filter.PageSize)
				s.Require().NotNil(filter.Document)
				s.Equal("123", *filter.Document)
				s.Require().NotNil(filter.Amount)
				s.True(filter.Amount.Equal(decimal.NewFromFloat(199.90)))
				return &queries.ReceiptPage{
					Total:    1,
					Receipts: []queries.ReceiptListItem{{ID: 3, Document: "12345678901"}},
				}, nil
			}).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/receipts?pageNumber=20&pageSize=10&document=123&amount=199.90", nil, "")

		var page queries.ReceiptPage
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &page)
		s.Equal(int64(1), page.Total)
		s.Require().Len(page.Receipts, 1)
		s.Equal("12345678901", page.Receipts[0].Document)
	})

	s.Run("failure: returns 400 for a non-numeric amount", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/receipts?amount=abc", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid amount filter")
	})

	s.Run("failure: returns 500 when the query fails", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrDatabaseOperationFailed).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/receipts", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Failed to list receipts")
	})
}

func (s *ReceiptHandlerTestSuite) TestChangeStatus() {
	s.Run("success: returns 204 on status flip", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), int64(9)).Return(nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/receipts/9/status", nil, "")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("failure: returns 400 for a non-numeric id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/receipts/nine/status", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid receipt id")
	})

	s.Run("failure: returns 404 for an unknown receipt", func() {
		s.mockCommands.EXPECT().
			ChangeStatus(gomock.Any(), int64(404)).
			Return(commands.ErrReceiptNotFound).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/receipts/404/status", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Receipt not found")
	})
}
