package response

import (
	"course-checkout/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

// Envelope is the success/messages wrapper the storefront expects on the
// checkout endpoints.
type Envelope struct {
	Success  bool     `json:"success"`
	Messages []string `json:"messages"`
	Data     any      `json:"data,omitempty"`
}

func NewEnvelope(data any, messages ...string) Envelope {
	if messages == nil {
		messages = []string{}
	}
	return Envelope{Success: true, Messages: messages, Data: data}
}

func NewFailureEnvelope(messages ...string) Envelope {
	return Envelope{Success: false, Messages: messages}
}

type CheckoutData struct {
	PaymentMethod string        `json:"paymentMethod"`
	CartToken     string        `json:"cartToken"`
	Coupon        CouponOutcome `json:"coupon"`
}

type CouponOutcome struct {
	Applied    bool            `json:"applied"`
	Name       string          `json:"name,omitempty"`
	FinalTotal decimal.Decimal `json:"finalTotal"`
	Discount   decimal.Decimal `json:"discount"`
	Message    string          `json:"message,omitempty"`
}

func NewCheckoutResponse(result *commands.CheckoutResult) Envelope {
	data := CheckoutData{
		PaymentMethod: result.PaymentMethod,
		CartToken:     result.CartToken,
		Coupon: CouponOutcome{
			Applied:    result.Coupon.Applied,
			Name:       result.Coupon.Name,
			FinalTotal: result.Coupon.FinalTotal,
			Discount:   result.Coupon.Discount,
			Message:    result.Coupon.Message,
		},
	}

	var messages []string
	if result.Coupon.Message != "" {
		messages = append(messages, result.Coupon.Message)
	}
	return NewEnvelope(data, messages...)
}
