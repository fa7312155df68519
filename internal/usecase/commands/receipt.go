package commands

import (
	"context"
	"log/slog"

	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrInvalidCartToken = errs.New("invalid cart token")
	ErrReceiptNotFound  = errs.New("receipt not found")
)

// UploadReceiptInput carries the stored temp file's metadata plus the cart
// token issued at checkout.
type UploadReceiptInput struct {
	UserID       uuid.UUID
	CartToken    string
	StoredName   string
	OriginalName string
	MimeType     string
	Path         string
	Size         int64
}

type ReceiptCommands interface {
	Upload(ctx context.Context, in UploadReceiptInput) error
	ChangeStatus(ctx context.Context, receiptID int64) error
}

type receiptCommandsImpl struct {
	receiptRepo ReceiptRepository
	files       FileStore
	jwtService  *jwt.Service
}

func NewReceiptCommands(receiptRepo ReceiptRepository, files FileStore, jwtService *jwt.Service) ReceiptCommands {
	return &receiptCommandsImpl{
		receiptRepo: receiptRepo,
		files:       files,
		jwtService:  jwtService,
	}
}

func (r *receiptCommandsImpl) Upload(ctx context.Context, in UploadReceiptInput) error {
	cartID, err := r.jwtService.DecodeCartToken(in.CartToken)
	if err != nil {
		return errs.Mark(err, ErrInvalidCartToken)
	}

	insertErr := r.receiptRepo.Insert(ctx, NewReceipt{
		UserID:       in.UserID,
		CartID:       cartID,
		StoredName:   in.StoredName,
		OriginalName: in.OriginalName,
		MimeType:     in.MimeType,
		Path:         in.Path,
		Size:         in.Size,
	})

	// The temp file is removed whether or not the metadata write succeeded.
	if rmErr := r.files.Remove(in.Path); rmErr != nil {
		slog.Warn("failed to remove temporary receipt file", "path", in.Path, "error", rmErr)
	}

	if insertErr != nil {
		return errs.Mark(insertErr, ErrDatabaseOperationFailed)
	}
	return nil
}

func (r *receiptCommandsImpl) ChangeStatus(ctx context.Context, receiptID int64) error {
	affected, err := r.receiptRepo.ChangeStatus(ctx, receiptID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if affected == 0 {
		return ErrReceiptNotFound
	}
	return nil
}
