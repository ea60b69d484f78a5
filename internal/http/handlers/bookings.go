package handlers

import (
	"net/http"

	"busbook/internal/domain"
	"busbook/internal/utils"

	"github.com/gin-gonic/gin"
)

type bookRequest struct {
	BusID    int64  `json:"bus_id" form:"bus_id" binding:"required,gt=0"`
	UserName string `json:"user_name" form:"user_name" binding:"required"`
}

// POST /api/bookings
func (h Handlers) Book(c *gin.Context) {
	var req bookRequest
	if !BindOrError(c, &req) {
		return
	}
	if req.UserName = utils.NormalizeSpace(req.UserName); req.UserName == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "user_name: required", nil)
		return
	}

	booking, err := h.Ledger.BookOne(c.Request.Context(), req.BusID, req.UserName)
	if err != nil {
		if domain.IsPartialWrite(err) {
			// The rider holds an occupancy row even though the count did not move.
			respondError(c, http.StatusMultiStatus, "partial_write", err.Error(), gin.H{"booking": booking})
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "seat booked", "booking": booking})
}

// GET /api/bookings/:id/ticket
func (h Handlers) Ticket(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	pdfBytes, filename, err := h.Tickets.GenerateTicket(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
