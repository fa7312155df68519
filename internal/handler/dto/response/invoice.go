package response

import "course-checkout/internal/domain/invoice"

// Invoice responses mirror the external issuer's payload so the admin
// dashboard renders what the tax API actually stored.

type InvoiceFieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func NewInvoiceFieldErrors(fields []invoice.FieldError) []InvoiceFieldError {
	out := make([]InvoiceFieldError, len(fields))
	for i, f := range fields {
		out[i] = InvoiceFieldError{Field: f.Field, Message: f.Message}
	}
	return out
}
