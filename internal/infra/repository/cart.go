package repository

import (
	"context"

	"course-checkout/internal/infra"
	"course-checkout/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CartRepository struct {
	db *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{db: db}
}

const insertCartSQL = `
INSERT INTO carts (user_id, original_total, payment_method, discounted_total, coupon_name, coupon_discount)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

// InsertCart writes the cart header and one cart_courses row per purchased
// unit inside a single transaction.
func (r *CartRepository) InsertCart(ctx context.Context, newCart commands.NewCart) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to begin cart transaction", err)
	}
	defer tx.Rollback(ctx)

	var cartID int64
	err = tx.QueryRow(ctx, insertCartSQL,
		newCart.UserID,
		newCart.OriginalTotal,
		newCart.PaymentMethod,
		newCart.DiscountedTotal,
		newCart.CouponName,
		newCart.CouponDiscount,
	).Scan(&cartID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert cart", err)
	}

	var lineUserID *uuid.UUID
	if newCart.TagLinesWithUser {
		lineUserID = &newCart.UserID
	}

	unitRows := make([][]any, 0, len(newCart.Lines))
	for _, line := range newCart.Lines {
		for i := int32(0); i < line.Quantity; i++ {
			unitRows = append(unitRows, []any{line.Course.ID, cartID, lineUserID})
		}
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"cart_courses"},
		[]string{"course_id", "cart_id", "user_id"},
		pgx.CopyFromRows(unitRows),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert cart lines", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, infra.WrapRepoErr("failed to commit cart transaction", err)
	}

	return cartID, nil
}
