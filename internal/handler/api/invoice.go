package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "course-checkout/internal/handler/dto/response"
	"course-checkout/internal/handler/httperr"
	"course-checkout/internal/handler/middleware"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/commands"
	"course-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceCommands commands.InvoiceCommands
	invoiceQueries  queries.InvoiceQueries
}

func NewInvoiceHandler(invoiceCommands commands.InvoiceCommands, invoiceQueries queries.InvoiceQueries) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceCommands: invoiceCommands,
		invoiceQueries:  invoiceQueries,
	}
}

type submitInvoiceRequest struct {
	ReceiptID int64 `json:"receiptId" binding:"required"`
}

// @Summary Issue invoice
// @Description Build, validate and submit the tax document for a receipt
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body submitInvoiceRequest true "Invoice request"
// @Success 201 {object} invoice.External
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /invoices [post]
func (h *InvoiceHandler) Submit(c *gin.Context) {
	document, ok := middleware.GetUserDocument(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing document in context"), "Internal server error", nil)
		return
	}

	var req submitInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	issued, err := h.invoiceCommands.Submit(c.Request.Context(), req.ReceiptID, document)
	if err != nil {
		var validationErr *commands.InvoiceValidationError
		switch {
		case errors.As(err, &validationErr):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid invoice data",
				resdto.NewInvoiceFieldErrors(validationErr.Fields))
		case errors.Is(err, commands.ErrReceiptNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Receipt not found", nil)
		case errors.Is(err, commands.ErrInvoiceAlreadySent):
			httperr.AbortWithError(c, http.StatusConflict, err, "Invoice already issued for this receipt", nil)
		case errors.Is(err, commands.ErrExternalAPIFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "External invoice service unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, issued)
}

// @Summary List external invoices
// @Description Fetch every issued document from the external API, newest first
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Success 200 {array} invoice.External
// @Failure 502 {object} httperr.Response
// @Router /invoices/external [get]
func (h *InvoiceHandler) ListExternal(c *gin.Context) {
	invoices, err := h.invoiceQueries.ListExternal(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "External invoice service unavailable", nil)
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// @Summary Get external invoice
// @Description Fetch one issued document from the external API
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path int true "External invoice ID"
// @Success 200 {object} invoice.External
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /invoices/external/{id} [get]
func (h *InvoiceHandler) GetExternal(c *gin.Context) {
	externalID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid invoice id", nil)
		return
	}

	issued, err := h.invoiceQueries.GetExternal(c.Request.Context(), externalID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvoiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Invoice not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadGateway, err, "External invoice service unavailable", nil)
		}
		return
	}

	c.JSON(http.StatusOK, issued)
}
