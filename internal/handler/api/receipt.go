package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "course-checkout/internal/handler/dto/request"
	"course-checkout/internal/handler/httperr"
	"course-checkout/internal/usecase/commands"
	"course-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReceiptHandler struct {
	receiptCommands commands.ReceiptCommands
	receiptQueries  queries.ReceiptQueries
}

func NewReceiptHandler(receiptCommands commands.ReceiptCommands, receiptQueries queries.ReceiptQueries) *ReceiptHandler {
	return &ReceiptHandler{
		receiptCommands: receiptCommands,
		receiptQueries:  receiptQueries,
	}
}

// @Summary List receipts
// @Description Paginated review listing with optional document and amount filters
// @Tags receipts
// @Produce json
// @Security BearerAuth
// @Param pageNumber query int false "Row offset"
// @Param pageSize query int false "Page size"
// @Param document query string false "Document substring filter"
// @Param amount query string false "Exact paid amount filter"
// @Success 200 {object} queries.ReceiptPage
// @Failure 400 {object} httperr.Response
// @Router /receipts [get]
func (h *ReceiptHandler) List(c *gin.Context) {
	var query reqdto.ReceiptListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid amount filter", nil)
		return
	}

	page, err := h.receiptQueries.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list receipts", nil)
		return
	}

	c.JSON(http.StatusOK, page)
}

// @Summary Change receipt status
// @Description Flip the review status of the cart the receipt settles
// @Tags receipts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Receipt ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /receipts/{id}/status [put]
func (h *ReceiptHandler) ChangeStatus(c *gin.Context) {
	receiptID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid receipt id", nil)
		return
	}

	if err := h.receiptCommands.ChangeStatus(c.Request.Context(), receiptID); err != nil {
		switch {
		case errors.Is(err, commands.ErrReceiptNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Receipt not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to change receipt status", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
