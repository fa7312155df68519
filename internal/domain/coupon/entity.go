package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCouponInactive    = errors.New("coupon is inactive")
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponNotYetValid = errors.New("coupon is not yet valid")
	ErrCouponWrongUser   = errors.New("coupon is not applicable to this user")
)

// Coupon is read-only reference data; its lifecycle lives outside the
// checkout flow. A nil ownerUserID means the coupon is global.
type Coupon struct {
	id              int64
	name            string
	flatDiscount    decimal.Decimal
	percentDiscount decimal.Decimal
	validFrom       time.Time
	validTo         time.Time
	ownerUserID     *uuid.UUID
	active          bool
}

func NewCoupon(
	id int64,
	name string,
	flatDiscount, percentDiscount decimal.Decimal,
	validFrom, validTo time.Time,
	ownerUserID *uuid.UUID,
	active bool,
) *Coupon {
	return &Coupon{
		id:              id,
		name:            name,
		flatDiscount:    flatDiscount,
		percentDiscount: percentDiscount,
		validFrom:       validFrom,
		validTo:         validTo,
		ownerUserID:     ownerUserID,
		active:          active,
	}
}

// ValidateUsage decides applicability at the given reference date for the
// given applicant. It never touches I/O.
func (c *Coupon) ValidateUsage(at time.Time, applicant uuid.UUID) error {
	if !c.active {
		return ErrCouponInactive
	}
	if at.Before(c.validFrom) {
		return ErrCouponNotYetValid
	}
	if at.After(c.validTo) {
		return ErrCouponExpired
	}
	if c.ownerUserID != nil && *c.ownerUserID != applicant {
		return ErrCouponWrongUser
	}
	return nil
}

// ComputeFinalAmount applies the flat discount first (capped at the running
// total), then the percentage discount (0-100) on the remainder. The final
// amount is clamped at zero and the granted discount is recomputed from the
// clamped result, so it stays exact under clamping.
func (c *Coupon) ComputeFinalAmount(originalTotal decimal.Decimal) (final, discount decimal.Decimal) {
	remaining := originalTotal

	if c.flatDiscount.IsPositive() {
		flat := decimal.Min(remaining, c.flatDiscount)
		remaining = remaining.Sub(flat)
	}

	if c.percentDiscount.IsPositive() && remaining.IsPositive() {
		remaining = remaining.Sub(remaining.Mul(c.percentDiscount.Div(decimal.NewFromInt(100))))
	}

	final = remaining.Round(2)
	if final.IsNegative() {
		final = decimal.Zero
	}

	return final, originalTotal.Sub(final)
}

func (c *Coupon) ID() int64                      { return c.id }
func (c *Coupon) Name() string                   { return c.name }
func (c *Coupon) FlatDiscount() decimal.Decimal  { return c.flatDiscount }
func (c *Coupon) PercentOff() decimal.Decimal    { return c.percentDiscount }
func (c *Coupon) ValidFrom() time.Time           { return c.validFrom }
func (c *Coupon) ValidTo() time.Time             { return c.validTo }
func (c *Coupon) OwnerUserID() *uuid.UUID        { return c.ownerUserID }
func (c *Coupon) Active() bool                   { return c.active }
