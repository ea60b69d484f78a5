package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type intentRequest struct {
	StudentID string `json:"student_id" form:"student_id" binding:"required"`
	BusID     int64  `json:"bus_id" form:"bus_id" binding:"required,gt=0"`
}

// POST /api/intents
func (h Handlers) RecordIntent(c *gin.Context) {
	var req intentRequest
	if !BindOrError(c, &req) {
		return
	}
	it, err := h.Intents.Record(c.Request.Context(), req.StudentID, req.BusID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "intent recorded", "intent": it})
}
