//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"course-checkout/internal/domain/user"
	"course-checkout/internal/handler/api"
	"course-checkout/internal/pkg/config"
	"course-checkout/internal/usecase/commands"
	"course-checkout/tests/common/httptest"
	commandsmock "course-checkout/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCheckout *commandsmock.MockCheckoutCommands
	mockReceipts *commandsmock.MockReceiptCommands
	handler      *api.CartHandler

	userID   uuid.UUID
	document user.Document
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCheckout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockReceipts = commandsmock.NewMockReceiptCommands(s.mockCtrl)

	uploadCfg := config.UploadConfig{
		Dir:         s.T().TempDir(),
		MaxSizeByte: 1024,
	}
	s.handler = api.NewCartHandler(s.mockCheckout, s.mockReceipts, uploadCfg)

	s.userID = uuid.New()
	var err error
	s.document, err = user.NewDocument("12345678901")
	s.Require().NoError(err)

	// Mock middleware behavior: inject the authenticated identity.
	identity := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_document", s.document)
	}
	s.router.POST("/cart", identity, s.handler.Checkout)
	s.router.POST("/cart/receipt", identity, s.handler.UploadReceipt)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

type checkoutEnvelope struct {
	Success  bool     `json:"success"`
	Messages []string `json:"messages"`
	Data     struct {
		PaymentMethod string `json:"paymentMethod"`
		CartToken     string `json:"cartToken"`
		Coupon        struct {
			Applied    bool            `json:"applied"`
			Name       string          `json:"name"`
			FinalTotal decimal.Decimal `json:"finalTotal"`
			Discount   decimal.Decimal `json:"discount"`
			Message    string          `json:"message"`
		} `json:"coupon"`
	} `json:"data"`
}

func (s *CartHandlerTestSuite) TestCheckout() {
	url := "/cart"
	reqBody := map[string]any{
		"items":      []map[string]any{{"courseId": 1, "quantity": 1}},
		"couponName": "WELCOME10",
	}

	s.Run("success: returns 201 with cart token and coupon outcome", func() {
		s.mockCheckout.EXPECT().
			Checkout(gomock.Any(), s.userID, s.document, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ user.Document, params commands.CheckoutParams) (*commands.CheckoutResult, error) {
				s.Require().Len(params.Items, 1)
				s.Equal(int64(1), params.Items[0].CourseID)
				s.Require().NotNil(params.CouponName)
				s.Equal("WELCOME10", *params.CouponName)
				return &commands.CheckoutResult{
					CartID:        42,
					CartToken:     "signed-cart-token",
					PaymentMethod: commands.PaymentMethodPix,
					Coupon: commands.CouponOutcome{
						Applied:    true,
						Name:       "WELCOME10",
						Message:    "coupon applied",
						FinalTotal: decimal.NewFromInt(90),
						Discount:   decimal.NewFromInt(10),
					},
				}, nil
			}).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var envelope checkoutEnvelope
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &envelope)
		s.True(envelope.Success)
		s.Contains(envelope.Messages, "coupon applied")
		s.Equal("pix", envelope.Data.PaymentMethod)
		s.Equal("signed-cart-token", envelope.Data.CartToken)
		s.True(envelope.Data.Coupon.Applied)
		s.True(envelope.Data.Coupon.FinalTotal.Equal(decimal.NewFromInt(90)))
		s.True(envelope.Data.Coupon.Discount.Equal(decimal.NewFromInt(10)))
	})

	s.Run("success: zero-quantity items pass binding and reach the usecase", func() {
		s.mockCheckout.EXPECT().
			Checkout(gomock.Any(), s.userID, s.document, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ user.Document, params commands.CheckoutParams) (*commands.CheckoutResult, error) {
				s.Require().Len(params.Items, 2)
				s.Equal(int32(0), params.Items[1].Quantity)
				return &commands.CheckoutResult{
					CartID:        43,
					CartToken:     "signed-cart-token",
					PaymentMethod: commands.PaymentMethodPix,
					Coupon: commands.CouponOutcome{
						FinalTotal: decimal.NewFromInt(100),
						Discount:   decimal.Zero,
					},
				}, nil
			}).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"items": []map[string]any{
				{"courseId": 1, "quantity": 1},
				{"courseId": 2, "quantity": 0},
			},
		}, "")

		var envelope checkoutEnvelope
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &envelope)
		s.True(envelope.Success)
	})

	s.Run("failure: returns 400 for malformed body", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")

		httptest.AssertFailureEnvelope(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("failure: returns 400 when cart validation fails", func() {
		s.mockCheckout.EXPECT().
			Checkout(gomock.Any(), s.userID, s.document, gomock.Any()).
			Return(nil, commands.ErrCartValidation).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertFailureEnvelope(s.T(), w, http.StatusBadRequest, "cart validation failed")
	})

	s.Run("failure: returns 500 on unexpected error", func() {
		s.mockCheckout.EXPECT().
			Checkout(gomock.Any(), s.userID, s.document, gomock.Any()).
			Return(nil, commands.ErrDatabaseOperationFailed).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertFailureEnvelope(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *CartHandlerTestSuite) TestUploadReceipt() {
	url := "/cart/receipt"
	fileContent := []byte("%PDF-1.4 receipt")

	s.Run("success: stores the file and returns 201", func() {
		s.mockReceipts.EXPECT().
			Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input commands.UploadReceiptInput) error {
				s.Equal(s.userID, input.UserID)
				s.Equal("cart-token", input.CartToken)
				s.Equal("proof.pdf", input.OriginalName)
				s.Equal(int64(len(fileContent)), input.Size)
				s.NotEmpty(input.Path)
				return nil
			}).Times(1)

		w := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"cartToken": "cart-token"}, "file", "proof.pdf", fileContent, "")

		var envelope checkoutEnvelope
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &envelope)
		s.True(envelope.Success)
		s.Contains(envelope.Messages, "receipt received")
	})

	s.Run("failure: returns 400 when cartToken is missing", func() {
		w := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
			nil, "file", "proof.pdf", fileContent, "")

		httptest.AssertFailureEnvelope(s.T(), w, http.StatusBadRequest, "cartToken is required")
	})

	s.Run("failure: returns 400 when the file part is missing", func() {
		w := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"cartToken": "cart-token"}, "", "", nil, "")

		httptest.AssertFailureEnvelope(s.T(), w, http.StatusBadRequest, "file is required")
	})

	s.Run("failure: returns 400 when the file is too large", func() {
		oversized := make([]byte, 2048)

		w := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"cartToken": "cart-token"}, "file", "proof.pdf", oversized, "")

		httptest.AssertFailureEnvelope(s.T(), w, http.StatusBadRequest, "file exceeds the maximum allowed size")
	})

	s.Run("failure: returns 400 for an invalid cart token", func() {
		s.mockReceipts.EXPECT().
			Upload(gomock.Any(), gomock.Any()).
			Return(commands.ErrInvalidCartToken).Times(1)

		w := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"cartToken": "expired"}, "file", "proof.pdf", fileContent, "")

		httptest.AssertFailureEnvelope(s.T(), w, http.StatusBadRequest, "invalid cart token")
	})
}
