package api

import (
	"errors"
	"net/http"
	"path/filepath"

	reqdto "course-checkout/internal/handler/dto/request"
	resdto "course-checkout/internal/handler/dto/response"
	"course-checkout/internal/handler/middleware"
	"course-checkout/internal/pkg/config"
	"course-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	checkoutCommands commands.CheckoutCommands
	receiptCommands  commands.ReceiptCommands
	uploadCfg        config.UploadConfig
}

func NewCartHandler(
	checkoutCommands commands.CheckoutCommands,
	receiptCommands commands.ReceiptCommands,
	uploadCfg config.UploadConfig,
) *CartHandler {
	return &CartHandler{
		checkoutCommands: checkoutCommands,
		receiptCommands:  receiptCommands,
		uploadCfg:        uploadCfg,
	}
}

// @Summary Checkout
// @Description Persist a cart from the submitted items, applying an optional coupon
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} resdto.Envelope
// @Failure 401 {object} map[string]string
// @Router /cart [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	document, ok := middleware.GetUserDocument(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.NewFailureEnvelope("Invalid request format"))
		return
	}

	result, err := h.checkoutCommands.Checkout(c.Request.Context(), userID, document, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCartValidation):
			c.JSON(http.StatusBadRequest, resdto.NewFailureEnvelope(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, resdto.NewFailureEnvelope("Internal server error"))
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.NewCheckoutResponse(result))
}

// @Summary Upload payment receipt
// @Description Attach a proof-of-payment file to a checked-out cart
// @Tags cart
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Receipt file"
// @Param cartToken formData string true "Cart token issued at checkout"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} resdto.Envelope
// @Router /cart/receipt [post]
func (h *CartHandler) UploadReceipt(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	cartToken := c.PostForm("cartToken")
	if cartToken == "" {
		c.JSON(http.StatusBadRequest, resdto.NewFailureEnvelope("cartToken is required"))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, resdto.NewFailureEnvelope("file is required"))
		return
	}
	if file.Size > h.uploadCfg.MaxSizeByte {
		c.JSON(http.StatusBadRequest, resdto.NewFailureEnvelope("file exceeds the maximum allowed size"))
		return
	}

	storedName := uuid.NewString() + filepath.Ext(file.Filename)
	storedPath := filepath.Join(h.uploadCfg.Dir, storedName)
	if err := c.SaveUploadedFile(file, storedPath); err != nil {
		c.JSON(http.StatusInternalServerError, resdto.NewFailureEnvelope("failed to store uploaded file"))
		return
	}

	err = h.receiptCommands.Upload(c.Request.Context(), commands.UploadReceiptInput{
		UserID:       userID,
		CartToken:    cartToken,
		StoredName:   storedName,
		OriginalName: file.Filename,
		MimeType:     file.Header.Get("Content-Type"),
		Path:         storedPath,
		Size:         file.Size,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCartToken):
			c.JSON(http.StatusBadRequest, resdto.NewFailureEnvelope("invalid cart token"))
		default:
			c.JSON(http.StatusInternalServerError, resdto.NewFailureEnvelope("Internal server error"))
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.NewEnvelope(nil, "receipt received"))
}
