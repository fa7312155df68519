package commands

import (
	"context"
	"log/slog"
	"strings"

	"course-checkout/internal/domain/cart"
	"course-checkout/internal/domain/user"
	"course-checkout/internal/infra"
	"course-checkout/internal/pkg/clock"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrCartValidation = errs.New("cart validation failed")

// PaymentMethodPix is the only supported payment method for checkout.
const PaymentMethodPix = "pix"

const (
	couponMsgInvalid = "coupon is not valid"
	couponMsgApplied = "coupon applied"
)

// CouponOutcome reports whether a discount was granted. Coupon absence or
// invalidity never fails the checkout; it only changes Message and forces a
// zero discount.
type CouponOutcome struct {
	Applied    bool
	Name       string
	Message    string
	FinalTotal decimal.Decimal
	Discount   decimal.Decimal
}

// CheckoutParams is the validated request body in usecase terms.
type CheckoutParams struct {
	Items      []cart.Item
	CouponName *string
}

type CheckoutResult struct {
	CartID        int64
	CartToken     string
	PaymentMethod string
	Coupon        CouponOutcome
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, userID uuid.UUID, document user.Document, params CheckoutParams) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	courseRepo CourseRepository
	couponRepo CouponRepository
	cartRepo   CartRepository
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewCheckoutCommands(
	courseRepo CourseRepository,
	couponRepo CouponRepository,
	cartRepo CartRepository,
	jwtService *jwt.Service,
	clock clock.Clock,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		courseRepo: courseRepo,
		couponRepo: couponRepo,
		cartRepo:   cartRepo,
		jwtService: jwtService,
		clock:      clock,
	}
}

func (c *checkoutCommandsImpl) Checkout(
	ctx context.Context,
	userID uuid.UUID,
	document user.Document,
	params CheckoutParams,
) (*CheckoutResult, error) {
	items := params.Items
	individual := document.IsIndividual()

	// Reject empty carts and quantity-rule violations before any lookup.
	if err := cart.ValidateItems(items, individual); err != nil {
		return nil, errs.Mark(err, ErrCartValidation)
	}

	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.CourseID
	}
	courses, err := c.courseRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	lines, err := cart.BuildLines(items, courses, individual)
	if err != nil {
		return nil, errs.Mark(err, ErrCartValidation)
	}

	originalTotal := cart.Total(lines)
	outcome := c.applyCoupon(ctx, params.CouponName, userID, originalTotal)

	newCart := NewCart{
		UserID:           userID,
		PaymentMethod:    PaymentMethodPix,
		OriginalTotal:    originalTotal,
		DiscountedTotal:  outcome.FinalTotal,
		Lines:            lines,
		TagLinesWithUser: individual,
	}
	if outcome.Applied {
		name := outcome.Name
		discount := outcome.Discount
		newCart.CouponName = &name
		newCart.CouponDiscount = &discount
	}

	cartID, err := c.cartRepo.InsertCart(ctx, newCart)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	token, err := c.jwtService.GenerateCartToken(cartID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &CheckoutResult{
		CartID:        cartID,
		CartToken:     token,
		PaymentMethod: PaymentMethodPix,
		Coupon:        outcome,
	}, nil
}

// applyCoupon resolves and validates the named coupon. Lookup failures and
// invalid coupons degrade to a no-discount outcome; only the message tells
// the caller why.
func (c *checkoutCommandsImpl) applyCoupon(
	ctx context.Context,
	name *string,
	userID uuid.UUID,
	originalTotal decimal.Decimal,
) CouponOutcome {
	outcome := CouponOutcome{FinalTotal: originalTotal, Discount: decimal.Zero}
	if name == nil {
		return outcome
	}

	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return outcome
	}

	cpn, err := c.couponRepo.FindByName(ctx, trimmed, userID)
	if err != nil {
		// A lookup failure must not sink the checkout either.
		if !infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("coupon lookup failed", "coupon", trimmed, "error", err)
		}
		outcome.Message = couponMsgInvalid
		return outcome
	}

	if err := cpn.ValidateUsage(c.clock.Now(), userID); err != nil {
		outcome.Message = couponMsgInvalid
		return outcome
	}

	final, discount := cpn.ComputeFinalAmount(originalTotal)
	return CouponOutcome{
		Applied:    true,
		Name:       cpn.Name(),
		Message:    couponMsgApplied,
		FinalTotal: final,
		Discount:   discount,
	}
}
