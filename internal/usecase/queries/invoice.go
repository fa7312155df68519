package queries

import (
	"context"
	"sort"

	"course-checkout/internal/domain/invoice"
	"course-checkout/internal/infra"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/commands"
)

var (
	ErrInvoiceNotFound   = errs.New("invoice not found")
	ErrExternalAPIFailed = errs.New("external invoice API request failed")
)

type InvoiceQueries interface {
	// ListExternal fetches every issued document, newest first.
	ListExternal(ctx context.Context) ([]invoice.External, error)
	GetExternal(ctx context.Context, externalID int64) (*invoice.External, error)
}

type invoiceQueriesImpl struct {
	api commands.InvoiceAPI
}

func NewInvoiceQueries(api commands.InvoiceAPI) InvoiceQueries {
	return &invoiceQueriesImpl{api: api}
}

func (q *invoiceQueriesImpl) ListExternal(ctx context.Context) ([]invoice.External, error) {
	invoices, err := q.api.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrExternalAPIFailed)
	}

	sort.Slice(invoices, func(i, j int) bool {
		return invoices[i].ID > invoices[j].ID
	})

	return invoices, nil
}

func (q *invoiceQueriesImpl) GetExternal(ctx context.Context, externalID int64) (*invoice.External, error) {
	issued, err := q.api.Get(ctx, externalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, errs.Mark(err, ErrExternalAPIFailed)
	}
	return issued, nil
}
