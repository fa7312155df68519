package commands

import (
	"context"
	"log/slog"
	"strings"

	"course-checkout/internal/domain/invoice"
	"course-checkout/internal/domain/user"
	"course-checkout/internal/infra"
	"course-checkout/internal/pkg/config"
	"course-checkout/internal/pkg/errs"
)

var (
	ErrInvoiceAlreadySent = errs.New("invoice already issued for this receipt")
	ErrExternalAPIFailed  = errs.New("external invoice API request failed")
)

// InvoiceValidationError carries the per-field violations of a built
// document so the handler can return them structured.
type InvoiceValidationError struct {
	Fields []invoice.FieldError
}

func (e *InvoiceValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + " " + f.Message
	}
	return "invalid invoice data: " + strings.Join(msgs, "; ")
}

type InvoiceCommands interface {
	// Submit builds the document for a reviewed receipt, validates it,
	// posts it to the external issuer and marks the receipt as sent.
	Submit(ctx context.Context, receiptID int64, document user.Document) (*invoice.External, error)
}

type invoiceCommandsImpl struct {
	store       InvoiceReadStore
	receiptRepo ReceiptRepository
	api         InvoiceAPI
	environment string
}

func NewInvoiceCommands(store InvoiceReadStore, receiptRepo ReceiptRepository, api InvoiceAPI, cfg config.InvoiceConfig) InvoiceCommands {
	environment := invoice.EnvironmentStaging
	if cfg.Production {
		environment = invoice.EnvironmentProduction
	}
	return &invoiceCommandsImpl{
		store:       store,
		receiptRepo: receiptRepo,
		api:         api,
		environment: environment,
	}
}

func (i *invoiceCommandsImpl) Submit(ctx context.Context, receiptID int64, document user.Document) (*invoice.External, error) {
	doc, err := i.buildDocument(ctx, receiptID, document)
	if err != nil {
		return nil, err
	}

	issued, err := i.api.Submit(ctx, *doc)
	if err != nil {
		return nil, errs.Mark(err, ErrExternalAPIFailed)
	}

	if err := i.receiptRepo.MarkInvoiceSent(ctx, receiptID); err != nil {
		// The external document exists at this point; surface the failure
		// but keep the issued response in the log for reconciliation.
		slog.Error("invoice issued but receipt status update failed",
			"receipt_id", receiptID, "external_id", issued.ID, "error", err)
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return issued, nil
}

func (i *invoiceCommandsImpl) buildDocument(ctx context.Context, receiptID int64, document user.Document) (*invoice.Document, error) {
	organization := !document.IsIndividual()

	payer, err := i.store.PayerByReceiptID(ctx, receiptID, organization)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReceiptNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if payer.InvoiceSent {
		return nil, ErrInvoiceAlreadySent
	}

	names, err := i.store.CourseNamesByCartID(ctx, payer.CartID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	for idx, name := range names {
		names[idx] = "Ref " + name
	}

	doc := invoice.Document{
		Environment:   i.environment,
		TaxID:         payer.Document,
		CorporateName: payer.Name,
		PublicBody:    orDefault(payer.PublicBody, "N"),
		Email:         orDefault(payer.Email, ""),
		AreaCode:      orDefault(payer.AreaCode, ""),
		Phone:         orDefault(payer.Phone, ""),
		Street:        orDefault(payer.Street, ""),
		Number:        orDefault(payer.Number, ""),
		Complement:    orDefault(payer.Complement, ""),
		District:      orDefault(payer.District, ""),
		City:          orDefault(payer.City, ""),
		State:         orDefault(payer.State, ""),
		PostalCode:    padPostalCode(orDefault(payer.PostalCode, "")),
		ServiceValue:  payer.AmountPaid,
		ServiceDesc:   strings.Join(names, ", "),
	}

	// Individuals are always registration-exempt; organizations fall back
	// to exempt when no state registration is on file.
	if organization {
		doc.StateRegistration = orDefault(payer.StateRegistration, "isento")
		doc.CityRegistration = orDefault(payer.CityRegistration, "")
	} else {
		doc.StateRegistration = "isento"
	}

	if fieldErrs := invoice.Validate(doc); len(fieldErrs) > 0 {
		return nil, &InvoiceValidationError{Fields: fieldErrs}
	}

	return &doc, nil
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func padPostalCode(cep string) string {
	if cep == "" {
		return cep
	}
	for len(cep) < 8 {
		cep = "0" + cep
	}
	return cep
}
