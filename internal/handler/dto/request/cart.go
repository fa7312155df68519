package request

import (
	"strings"

	"course-checkout/internal/domain/cart"
	"course-checkout/internal/usecase/commands"
)

// CartItemRequest allows quantity 0; zero-quantity items are dropped during
// line building rather than rejected at the boundary.
type CartItemRequest struct {
	CourseID int64 `json:"courseId" binding:"required"`
	Quantity int32 `json:"quantity" binding:"gte=0"`
}

type CheckoutRequest struct {
	CouponName *string           `json:"couponName,omitempty"`
	Items      []CartItemRequest `json:"items" binding:"required,dive"`
}

// GetCouponName trims the optional coupon field down to nil when blank.
func (r CheckoutRequest) GetCouponName() *string {
	if r.CouponName == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponName)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CheckoutRequest) ToParams() commands.CheckoutParams {
	items := make([]cart.Item, len(r.Items))
	for i, item := range r.Items {
		items[i] = cart.Item{CourseID: item.CourseID, Quantity: item.Quantity}
	}
	return commands.CheckoutParams{
		Items:      items,
		CouponName: r.GetCouponName(),
	}
}
