//go:build unit

package queries_test

import (
	"context"
	"testing"

	"course-checkout/internal/domain/invoice"
	"course-checkout/internal/infra"
	"course-checkout/internal/usecase/queries"
	commandsmock "course-checkout/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InvoiceQueriesTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	api     *commandsmock.MockInvoiceAPI
	queries queries.InvoiceQueries
}

func (s *InvoiceQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.api = commandsmock.NewMockInvoiceAPI(s.ctrl)
	s.queries = queries.NewInvoiceQueries(s.api)
}

func (s *InvoiceQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestInvoiceQueriesSuite(t *testing.T) {
	suite.Run(t, new(InvoiceQueriesTestSuite))
}

func (s *InvoiceQueriesTestSuite) TestListExternalSortsNewestFirst() {
	s.api.EXPECT().ListAll(gomock.Any()).Return([]invoice.External{
		{ID: 2}, {ID: 9}, {ID: 5},
	}, nil)

	invoices, err := s.queries.ListExternal(context.Background())

	s.Require().NoError(err)
	s.Require().Len(invoices, 3)
	s.Equal(int64(9), invoices[0].ID)
	s.Equal(int64(5), invoices[1].ID)
	s.Equal(int64(2), invoices[2].ID)
}

func (s *InvoiceQueriesTestSuite) TestListExternalMarksAPIFailures() {
	s.api.EXPECT().ListAll(gomock.Any()).Return(nil, assert.AnError)

	_, err := s.queries.ListExternal(context.Background())

	s.ErrorIs(err, queries.ErrExternalAPIFailed)
}

func (s *InvoiceQueriesTestSuite) TestGetExternalReturnsIssuedDocument() {
	issued := &invoice.External{ID: 12}
	s.api.EXPECT().Get(gomock.Any(), int64(12)).Return(issued, nil)

	got, err := s.queries.GetExternal(context.Background(), 12)

	s.Require().NoError(err)
	s.Equal(issued, got)
}

func (s *InvoiceQueriesTestSuite) TestGetExternalMapsNotFound() {
	s.api.EXPECT().
		Get(gomock.Any(), int64(404)).
		Return(nil, infra.WrapRepoErr("invoice not found", assert.AnError, infra.KindNotFound))

	_, err := s.queries.GetExternal(context.Background(), 404)

	s.ErrorIs(err, queries.ErrInvoiceNotFound)
}
