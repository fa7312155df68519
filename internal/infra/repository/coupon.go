package repository

import (
	"context"
	"errors"
	"time"

	"course-checkout/internal/domain/coupon"
	"course-checkout/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type CouponRepository struct {
	db *pgxpool.Pool
}

func NewCouponRepository(db *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{db: db}
}

// A coupon scoped to the buyer beats a global one of the same name.
const findCouponByNameSQL = `
SELECT id, name, flat_discount, percent_discount, valid_from, valid_to, user_id, active
FROM coupons
WHERE name = $1 AND (user_id IS NULL OR user_id = $2)
ORDER BY user_id NULLS LAST
LIMIT 1`

func (r *CouponRepository) FindByName(ctx context.Context, name string, userID uuid.UUID) (*coupon.Coupon, error) {
	var (
		id                            int64
		couponName                    string
		flatDiscount, percentDiscount decimal.Decimal
		validFrom, validTo            time.Time
		ownerUserID                   *uuid.UUID
		active                        bool
	)
	err := r.db.QueryRow(ctx, findCouponByNameSQL, name, userID).Scan(
		&id,
		&couponName,
		&flatDiscount,
		&percentDiscount,
		&validFrom,
		&validTo,
		&ownerUserID,
		&active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by name", err)
	}

	return coupon.NewCoupon(id, couponName, flatDiscount, percentDiscount, validFrom, validTo, ownerUserID, active), nil
}
