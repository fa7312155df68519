//go:build unit || e2e

package builder

import (
	"time"

	"course-checkout/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CouponBuilder assembles coupon entities for tests. Defaults describe an
// active global coupon with a flat 10 discount, valid through January 2025.
type CouponBuilder struct {
	id              int64
	name            string
	flatDiscount    decimal.Decimal
	percentDiscount decimal.Decimal
	validFrom       time.Time
	validTo         time.Time
	ownerUserID     *uuid.UUID
	active          bool
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		id:              1,
		name:            "WELCOME10",
		flatDiscount:    decimal.NewFromInt(10),
		percentDiscount: decimal.Zero,
		validFrom:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		validTo:         time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC),
		active:          true,
	}
}

func (b *CouponBuilder) WithName(name string) *CouponBuilder {
	b.name = name
	return b
}

func (b *CouponBuilder) WithFlatDiscount(d decimal.Decimal) *CouponBuilder {
	b.flatDiscount = d
	return b
}

func (b *CouponBuilder) WithPercentDiscount(d decimal.Decimal) *CouponBuilder {
	b.percentDiscount = d
	return b
}

func (b *CouponBuilder) WithValidity(from, to time.Time) *CouponBuilder {
	b.validFrom = from
	b.validTo = to
	return b
}

func (b *CouponBuilder) WithOwner(userID uuid.UUID) *CouponBuilder {
	b.ownerUserID = &userID
	return b
}

func (b *CouponBuilder) Inactive() *CouponBuilder {
	b.active = false
	return b
}

func (b *CouponBuilder) Build() *coupon.Coupon {
	return coupon.NewCoupon(
		b.id,
		b.name,
		b.flatDiscount,
		b.percentDiscount,
		b.validFrom,
		b.validTo,
		b.ownerUserID,
		b.active,
	)
}
