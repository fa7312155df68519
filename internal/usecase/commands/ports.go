package commands

import (
	"context"
	"time"

	"course-checkout/internal/domain/cart"
	"course-checkout/internal/domain/coupon"
	"course-checkout/internal/domain/invoice"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthorizedUser is the write-side snapshot of an account row.
type AuthorizedUser struct {
	ID        uuid.UUID
	Email     string
	Role      string
	Document  string
	IsActive  bool
	LastLogin *time.Time
}

type UserRepository interface {
	// FindByEmail returns the account snapshot and its password hash.
	FindByEmail(ctx context.Context, email string) (*AuthorizedUser, string, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type CourseRepository interface {
	// GetByIDs performs a batch lookup; unknown ids are silently dropped
	// and the caller reconciles counts.
	GetByIDs(ctx context.Context, ids []int64) ([]cart.Course, error)
}

type CouponRepository interface {
	// FindByName returns at most one coupon, preferring a record scoped to
	// userID over a global one.
	FindByName(ctx context.Context, name string, userID uuid.UUID) (*coupon.Coupon, error)
}

// NewCart is everything the cart repository persists for one checkout.
type NewCart struct {
	UserID          uuid.UUID
	PaymentMethod   string
	OriginalTotal   decimal.Decimal
	DiscountedTotal decimal.Decimal
	CouponName      *string
	CouponDiscount  *decimal.Decimal
	Lines           []cart.Line
	// TagLinesWithUser marks each unit row with the purchaser when the
	// purchaser is an individual-document buyer.
	TagLinesWithUser bool
}

type CartRepository interface {
	// InsertCart persists the cart header and one row per purchased unit
	// atomically, returning the generated cart id.
	InsertCart(ctx context.Context, newCart NewCart) (int64, error)
}

// NewReceipt is the uploaded payment-proof metadata.
type NewReceipt struct {
	UserID       uuid.UUID
	CartID       int64
	StoredName   string
	OriginalName string
	MimeType     string
	Path         string
	Size         int64
}

type ReceiptRepository interface {
	Insert(ctx context.Context, receipt NewReceipt) error
	// ChangeStatus flips the review status and reports affected rows.
	ChangeStatus(ctx context.Context, receiptID int64) (int64, error)
	MarkInvoiceSent(ctx context.Context, receiptID int64) error
}

// FileStore is the temporary storage uploaded receipt files land in.
type FileStore interface {
	Remove(path string) error
}

// InvoicePayer is the joined payer data an invoice is built from.
type InvoicePayer struct {
	ReceiptID         int64
	CartID            int64
	Document          string
	Name              string
	StateRegistration *string
	CityRegistration  *string
	PublicBody        *string
	Email             *string
	AreaCode          *string
	Phone             *string
	Street            *string
	Number            *string
	Complement        *string
	District          *string
	City              *string
	State             *string
	PostalCode        *string
	AmountPaid        decimal.Decimal
	InvoiceSent       bool
}

type InvoiceReadStore interface {
	// PayerByReceiptID joins receipt, cart, user and address rows; the
	// organization flag selects the company or student name shape.
	PayerByReceiptID(ctx context.Context, receiptID int64, organization bool) (*InvoicePayer, error)
	CourseNamesByCartID(ctx context.Context, cartID int64) ([]string, error)
}

// InvoiceAPI is the external tax-document service.
type InvoiceAPI interface {
	Submit(ctx context.Context, doc invoice.Document) (*invoice.External, error)
	ListAll(ctx context.Context) ([]invoice.External, error)
	Get(ctx context.Context, externalID int64) (*invoice.External, error)
}
