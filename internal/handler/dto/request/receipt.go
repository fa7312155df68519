package request

import (
	"strings"

	"course-checkout/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

// ReceiptListQuery is the review listing's query string. pageNumber is a row
// offset, matching the dashboard's paging contract.
type ReceiptListQuery struct {
	PageNumber int32   `form:"pageNumber"`
	PageSize   int32   `form:"pageSize"`
	Document   *string `form:"document"`
	Amount     *string `form:"amount"`
}

func (q ReceiptListQuery) ToFilter() (queries.ReceiptFilter, error) {
	filter := queries.ReceiptFilter{
		Offset:   q.PageNumber,
		PageSize: q.PageSize,
	}

	if q.Document != nil {
		if trimmed := strings.TrimSpace(*q.Document); trimmed != "" {
			filter.Document = &trimmed
		}
	}

	if q.Amount != nil {
		if trimmed := strings.TrimSpace(*q.Amount); trimmed != "" {
			amount, err := decimal.NewFromString(trimmed)
			if err != nil {
				return queries.ReceiptFilter{}, err
			}
			filter.Amount = &amount
		}
	}

	return filter, nil
}
