package queries

import (
	"context"
	"time"

	"course-checkout/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrDatabaseOperationFailed = errs.New("database operation failed")

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ReceiptListItem is one row of the staff review listing: the uploaded file
// joined with the payer and the cart it settles.
type ReceiptListItem struct {
	ID           int64           `json:"id"`
	UserID       uuid.UUID       `json:"userId"`
	Document     string          `json:"document"`
	Email        string          `json:"email"`
	OriginalName string          `json:"originalName"`
	StoredName   string          `json:"storedName"`
	MimeType     string          `json:"mimeType"`
	Path         string          `json:"path"`
	CartID       int64           `json:"cartId"`
	AmountPaid   decimal.Decimal `json:"amountPaid"`
	Status       *string         `json:"status,omitempty"`
	ConfirmedAt  *time.Time      `json:"confirmedAt,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ReceiptFilter narrows the listing; offsets are row-based like the
// original dashboard expects.
type ReceiptFilter struct {
	Offset   int32
	PageSize int32
	Document *string
	Amount   *decimal.Decimal
}

func (f ReceiptFilter) Normalized() ReceiptFilter {
	if f.Offset < 0 {
		f.Offset = 0
	}
	if f.PageSize <= 0 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	return f
}

type ReceiptPage struct {
	Total    int64             `json:"total"`
	Receipts []ReceiptListItem `json:"receipts"`
}

type ReceiptReadStore interface {
	ListPaginated(ctx context.Context, filter ReceiptFilter) (*ReceiptPage, error)
}

type ReceiptQueries interface {
	List(ctx context.Context, filter ReceiptFilter) (*ReceiptPage, error)
}

type receiptQueriesImpl struct {
	store ReceiptReadStore
}

func NewReceiptQueries(store ReceiptReadStore) ReceiptQueries {
	return &receiptQueriesImpl{store: store}
}

func (q *receiptQueriesImpl) List(ctx context.Context, filter ReceiptFilter) (*ReceiptPage, error) {
	page, err := q.store.ListPaginated(ctx, filter.Normalized())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return page, nil
}
