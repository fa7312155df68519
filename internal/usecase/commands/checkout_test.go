//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"course-checkout/internal/domain/cart"
	"course-checkout/internal/domain/user"
	"course-checkout/internal/infra"
	"course-checkout/internal/pkg/clock"
	"course-checkout/internal/pkg/jwt"
	"course-checkout/internal/usecase/commands"
	"course-checkout/tests/common/builder"
	commandsmock "course-checkout/tests/mock/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	courseRepo *commandsmock.MockCourseRepository
	couponRepo *commandsmock.MockCouponRepository
	cartRepo   *commandsmock.MockCartRepository
	jwtService *jwt.Service
	clock      *clock.FixedClock
	checkout   commands.CheckoutCommands

	userID     uuid.UUID
	individual user.Document
	company    user.Document
}

func (s *CheckoutTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.courseRepo = commandsmock.NewMockCourseRepository(s.ctrl)
	s.couponRepo = commandsmock.NewMockCouponRepository(s.ctrl)
	s.cartRepo = commandsmock.NewMockCartRepository(s.ctrl)
	s.jwtService = jwt.NewService("test-secret", time.Hour, time.Hour)
	s.clock = clock.NewFixedClock(time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC))
	s.checkout = commands.NewCheckoutCommands(s.courseRepo, s.couponRepo, s.cartRepo, s.jwtService, s.clock)

	s.userID = uuid.New()

	var err error
	s.individual, err = user.NewDocument("12345678901")
	s.Require().NoError(err)
	s.company, err = user.NewDocument("12345678000195")
	s.Require().NoError(err)
}

func (s *CheckoutTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCheckoutSuite(t *testing.T) {
	suite.Run(t, new(CheckoutTestSuite))
}

func (s *CheckoutTestSuite) TestEmptyCartFailsWithoutTouchingRepositories() {
	_, err := s.checkout.Checkout(context.Background(), s.userID, s.company, commands.CheckoutParams{})

	s.ErrorIs(err, commands.ErrCartValidation)
	s.ErrorIs(err, cart.ErrEmptyCart)
}

func (s *CheckoutTestSuite) TestIndividualQuantityRuleFailsBeforeLookup() {
	params := commands.CheckoutParams{
		Items: []cart.Item{{CourseID: 5, Quantity: 2}},
	}

	_, err := s.checkout.Checkout(context.Background(), s.userID, s.individual, params)

	s.ErrorIs(err, commands.ErrCartValidation)
	s.ErrorIs(err, cart.ErrQuantityLimit)
}

func (s *CheckoutTestSuite) TestCheckoutWithoutCouponPersistsOriginalTotal() {
	catalog := []cart.Course{
		{ID: 1, Name: "Go Fundamentals", Price: decimal.NewFromInt(100), Active: true},
	}
	params := commands.CheckoutParams{
		Items: []cart.Item{{CourseID: 1, Quantity: 1}},
	}

	expectedCart := commands.NewCart{
		UserID:           s.userID,
		PaymentMethod:    commands.PaymentMethodPix,
		OriginalTotal:    decimal.NewFromInt(100),
		DiscountedTotal:  decimal.NewFromInt(100),
		Lines:            []cart.Line{{Course: catalog[0], Quantity: 1}},
		TagLinesWithUser: true,
	}
	decimalComparer := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

	s.courseRepo.EXPECT().GetByIDs(gomock.Any(), []int64{1}).Return(catalog, nil)
	s.cartRepo.EXPECT().
		InsertCart(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, newCart commands.NewCart) (int64, error) {
			if diff := cmp.Diff(expectedCart, newCart, decimalComparer); diff != "" {
				s.Failf("persisted cart mismatch", "(-want +got):\n%s", diff)
			}
			return 77, nil
		})

	result, err := s.checkout.Checkout(context.Background(), s.userID, s.individual, params)

	s.Require().NoError(err)
	s.Equal(int64(77), result.CartID)
	s.Equal(commands.PaymentMethodPix, result.PaymentMethod)
	s.False(result.Coupon.Applied)

	cartID, err := s.jwtService.DecodeCartToken(result.CartToken)
	s.Require().NoError(err)
	s.Equal(int64(77), cartID)
}

func (s *CheckoutTestSuite) TestMissingCourseIsNamed() {
	params := commands.CheckoutParams{
		Items: []cart.Item{{CourseID: 42, Quantity: 1}},
	}

	s.courseRepo.EXPECT().GetByIDs(gomock.Any(), []int64{42}).Return(nil, nil)

	_, err := s.checkout.Checkout(context.Background(), s.userID, s.company, params)

	s.ErrorIs(err, commands.ErrCartValidation)
	var missingErr *cart.MissingCoursesError
	s.Require().ErrorAs(err, &missingErr)
	s.Equal([]int64{42}, missingErr.CourseIDs)
}

func (s *CheckoutTestSuite) TestValidCouponIsApplied() {
	catalog := []cart.Course{
		{ID: 1, Name: "Go Fundamentals", Price: decimal.NewFromInt(100), Active: true},
	}
	couponName := "WELCOME10"
	params := commands.CheckoutParams{
		Items:      []cart.Item{{CourseID: 1, Quantity: 1}},
		CouponName: &couponName,
	}
	cpn := builder.NewCouponBuilder().Build()

	s.courseRepo.EXPECT().GetByIDs(gomock.Any(), []int64{1}).Return(catalog, nil)
	s.couponRepo.EXPECT().FindByName(gomock.Any(), couponName, s.userID).Return(cpn, nil)
	s.cartRepo.EXPECT().
		InsertCart(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, newCart commands.NewCart) (int64, error) {
			s.Require().NotNil(newCart.CouponName)
			s.Equal("WELCOME10", *newCart.CouponName)
			s.Require().NotNil(newCart.CouponDiscount)
			s.True(newCart.CouponDiscount.Equal(decimal.NewFromInt(10)))
			s.True(newCart.DiscountedTotal.Equal(decimal.NewFromInt(90)))
			return 99, nil
		})

	result, err := s.checkout.Checkout(context.Background(), s.userID, s.individual, params)

	s.Require().NoError(err)
	s.True(result.Coupon.Applied)
	s.True(result.Coupon.FinalTotal.Equal(decimal.NewFromInt(90)))
	s.True(result.Coupon.Discount.Equal(decimal.NewFromInt(10)))
}

func (s *CheckoutTestSuite) TestUnknownCouponDegradesToNoDiscount() {
	catalog := []cart.Course{
		{ID: 1, Name: "Go Fundamentals", Price: decimal.NewFromInt(100), Active: true},
	}
	couponName := "NOPE"
	params := commands.CheckoutParams{
		Items:      []cart.Item{{CourseID: 1, Quantity: 1}},
		CouponName: &couponName,
	}

	s.courseRepo.EXPECT().GetByIDs(gomock.Any(), []int64{1}).Return(catalog, nil)
	s.couponRepo.EXPECT().
		FindByName(gomock.Any(), couponName, s.userID).
		Return(nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound))
	s.cartRepo.EXPECT().
		InsertCart(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, newCart commands.NewCart) (int64, error) {
			s.Nil(newCart.CouponName)
			s.True(newCart.DiscountedTotal.Equal(decimal.NewFromInt(100)))
			return 12, nil
		})

	result, err := s.checkout.Checkout(context.Background(), s.userID, s.company, params)

	s.Require().NoError(err)
	s.False(result.Coupon.Applied)
	s.Equal("coupon is not valid", result.Coupon.Message)
	s.True(result.Coupon.FinalTotal.Equal(decimal.NewFromInt(100)))
}

func (s *CheckoutTestSuite) TestExpiredCouponDegradesToNoDiscount() {
	catalog := []cart.Course{
		{ID: 1, Name: "Go Fundamentals", Price: decimal.NewFromInt(100), Active: true},
	}
	couponName := "WELCOME10"
	params := commands.CheckoutParams{
		Items:      []cart.Item{{CourseID: 1, Quantity: 1}},
		CouponName: &couponName,
	}
	cpn := builder.NewCouponBuilder().Build()

	// Reference date is past the January window.
	s.clock.Set(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))

	s.courseRepo.EXPECT().GetByIDs(gomock.Any(), []int64{1}).Return(catalog, nil)
	s.couponRepo.EXPECT().FindByName(gomock.Any(), couponName, s.userID).Return(cpn, nil)
	s.cartRepo.EXPECT().
		InsertCart(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, newCart commands.NewCart) (int64, error) {
			s.True(newCart.DiscountedTotal.Equal(decimal.NewFromInt(100)))
			return 13, nil
		})

	result, err := s.checkout.Checkout(context.Background(), s.userID, s.company, params)

	s.Require().NoError(err)
	s.False(result.Coupon.Applied)
	s.Equal("coupon is not valid", result.Coupon.Message)
}

func (s *CheckoutTestSuite) TestPersistenceFailureFailsCheckout() {
	catalog := []cart.Course{
		{ID: 1, Name: "Go Fundamentals", Price: decimal.NewFromInt(100), Active: true},
	}
	params := commands.CheckoutParams{
		Items: []cart.Item{{CourseID: 1, Quantity: 1}},
	}

	s.courseRepo.EXPECT().GetByIDs(gomock.Any(), []int64{1}).Return(catalog, nil)
	s.cartRepo.EXPECT().
		InsertCart(gomock.Any(), gomock.Any()).
		Return(int64(0), infra.WrapRepoErr("insert failed", nil))

	_, err := s.checkout.Checkout(context.Background(), s.userID, s.company, params)

	s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
}
