package repository

import (
	"context"
	"errors"

	"course-checkout/internal/infra"
	"course-checkout/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InvoiceReadStore assembles the payer data an invoice document is built
// from. The payer name comes from the companies table for organization
// buyers and from the students table otherwise.
type InvoiceReadStore struct {
	db *pgxpool.Pool
}

func NewInvoiceReadStore(db *pgxpool.Pool) *InvoiceReadStore {
	return &InvoiceReadStore{db: db}
}

const payerCompanySQL = `
SELECT r.id, r.cart_id, u.document, co.corporate_name, co.state_registration,
       co.city_registration, a.public_body, u.email, a.area_code, a.phone,
       a.street, a.number, a.complement, a.district, a.city, a.state,
       a.postal_code, c.discounted_total, r.invoice_sent
FROM receipts r
JOIN users u ON r.user_id = u.id
JOIN companies co ON co.user_id = u.id
JOIN addresses a ON a.user_id = u.id
JOIN carts c ON r.cart_id = c.id
WHERE r.id = $1`

const payerStudentSQL = `
SELECT r.id, r.cart_id, u.document, s.name, a.public_body, u.email,
       a.area_code, a.phone, a.street, a.number, a.complement, a.district,
       a.city, a.state, a.postal_code, c.discounted_total, r.invoice_sent
FROM receipts r
JOIN users u ON r.user_id = u.id
JOIN students s ON s.user_id = u.id
JOIN addresses a ON a.user_id = u.id
JOIN carts c ON r.cart_id = c.id
WHERE r.id = $1`

func (s *InvoiceReadStore) PayerByReceiptID(ctx context.Context, receiptID int64, organization bool) (*commands.InvoicePayer, error) {
	var (
		payer commands.InvoicePayer
		name  *string
		err   error
	)
	if organization {
		err = s.db.QueryRow(ctx, payerCompanySQL, receiptID).Scan(
			&payer.ReceiptID, &payer.CartID, &payer.Document, &name,
			&payer.StateRegistration, &payer.CityRegistration,
			&payer.PublicBody, &payer.Email, &payer.AreaCode, &payer.Phone,
			&payer.Street, &payer.Number, &payer.Complement, &payer.District,
			&payer.City, &payer.State, &payer.PostalCode, &payer.AmountPaid,
			&payer.InvoiceSent,
		)
	} else {
		err = s.db.QueryRow(ctx, payerStudentSQL, receiptID).Scan(
			&payer.ReceiptID, &payer.CartID, &payer.Document, &name,
			&payer.PublicBody, &payer.Email, &payer.AreaCode, &payer.Phone,
			&payer.Street, &payer.Number, &payer.Complement, &payer.District,
			&payer.City, &payer.State, &payer.PostalCode, &payer.AmountPaid,
			&payer.InvoiceSent,
		)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("receipt payer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load receipt payer", err)
	}
	if name != nil {
		payer.Name = *name
	}

	return &payer, nil
}

const courseNamesByCartSQL = `
SELECT co.name
FROM courses co
JOIN cart_courses cc ON cc.course_id = co.id
WHERE cc.cart_id = $1
GROUP BY co.id, co.name
ORDER BY co.id`

func (s *InvoiceReadStore) CourseNamesByCartID(ctx context.Context, cartID int64) ([]string, error) {
	rows, err := s.db.Query(ctx, courseNamesByCartSQL, cartID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query cart course names", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan course name", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read course names", err)
	}

	return names, nil
}
