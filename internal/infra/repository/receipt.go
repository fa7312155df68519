package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"course-checkout/internal/infra"
	"course-checkout/internal/usecase/commands"
	"course-checkout/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReceiptRepository struct {
	db *pgxpool.Pool
}

func NewReceiptRepository(db *pgxpool.Pool) *ReceiptRepository {
	return &ReceiptRepository{db: db}
}

// pgErrKind maps PostgreSQL constraint violations onto repository kinds.
func pgErrKind(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return infra.KindDuplicateKey
		case "23503":
			return infra.KindForeignKeyViolated
		}
	}
	return infra.KindDBFailure
}

const insertReceiptSQL = `
INSERT INTO receipts (user_id, stored_name, original_name, mime_type, path, size, active, cart_id)
VALUES ($1, $2, $3, $4, $5, $6, true, $7)`

func (r *ReceiptRepository) Insert(ctx context.Context, receipt commands.NewReceipt) error {
	_, err := r.db.Exec(ctx, insertReceiptSQL,
		receipt.UserID,
		receipt.StoredName,
		receipt.OriginalName,
		receipt.MimeType,
		receipt.Path,
		receipt.Size,
		receipt.CartID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert receipt", err, pgErrKind(err))
	}
	return nil
}

// The review flag lives on the cart the receipt settles.
const changeStatusSQL = `
UPDATE carts
SET status = CASE WHEN carts.status = 'confirmed' THEN 'pending' ELSE 'confirmed' END,
    confirmed_at = now()
FROM receipts
WHERE receipts.cart_id = carts.id AND receipts.id = $1`

func (r *ReceiptRepository) ChangeStatus(ctx context.Context, receiptID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, changeStatusSQL, receiptID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to change receipt status", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReceiptRepository) MarkInvoiceSent(ctx context.Context, receiptID int64) error {
	_, err := r.db.Exec(ctx, `UPDATE receipts SET invoice_sent = true WHERE id = $1`, receiptID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark receipt invoice sent", err)
	}
	return nil
}

// ReceiptReadStore serves the staff review listing.
type ReceiptReadStore struct {
	db *pgxpool.Pool
}

func NewReceiptReadStore(db *pgxpool.Pool) *ReceiptReadStore {
	return &ReceiptReadStore{db: db}
}

const receiptListBaseSQL = `
FROM receipts r
JOIN users u ON r.user_id = u.id
JOIN carts c ON r.cart_id = c.id
WHERE 1=1`

const receiptListColumnsSQL = `
SELECT r.id, u.id, u.document, u.email, r.original_name, r.stored_name,
       r.mime_type, r.path, r.cart_id, c.discounted_total, c.status,
       c.confirmed_at, r.created_at`

func (s *ReceiptReadStore) ListPaginated(ctx context.Context, filter queries.ReceiptFilter) (*queries.ReceiptPage, error) {
	var (
		conds strings.Builder
		args  []any
	)
	appendArg := func(cond string, v any) {
		args = append(args, v)
		conds.WriteString(" AND " + cond + "$" + strconv.Itoa(len(args)))
	}
	if filter.Document != nil {
		appendArg("u.document LIKE ", "%"+*filter.Document+"%")
	}
	if filter.Amount != nil {
		appendArg("c.discounted_total = ", *filter.Amount)
	}

	whereSQL := receiptListBaseSQL + conds.String()

	var total int64
	if err := s.db.QueryRow(ctx, "SELECT COUNT(r.id) "+whereSQL, args...).Scan(&total); err != nil {
		return nil, infra.WrapRepoErr("failed to count receipts", err)
	}

	pageArgs := append(args, filter.Offset, filter.PageSize)
	pageSQL := receiptListColumnsSQL + whereSQL +
		" ORDER BY r.created_at DESC OFFSET $" + strconv.Itoa(len(args)+1) + " LIMIT $" + strconv.Itoa(len(args)+2)

	rows, err := s.db.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query receipts", err)
	}
	defer rows.Close()

	receipts := make([]queries.ReceiptListItem, 0, filter.PageSize)
	for rows.Next() {
		var item queries.ReceiptListItem
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Document,
			&item.Email,
			&item.OriginalName,
			&item.StoredName,
			&item.MimeType,
			&item.Path,
			&item.CartID,
			&item.AmountPaid,
			&item.Status,
			&item.ConfirmedAt,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan receipt row", err)
		}
		receipts = append(receipts, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read receipt rows", err)
	}

	return &queries.ReceiptPage{Total: total, Receipts: receipts}, nil
}

