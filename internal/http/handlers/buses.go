package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/buses
func (h Handlers) ListBuses(c *gin.Context) {
	buses, err := h.Catalog.ListBuses(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"buses": buses})
}

// GET /api/buses/:id/schedule
func (h Handlers) Schedule(c *gin.Context) {
	busID, ok := pathID(c, "id")
	if !ok {
		return
	}
	sched, err := h.Catalog.Schedule(c.Request.Context(), busID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sched)
}

// GET /api/buses/:id/availability
func (h Handlers) Availability(c *gin.Context) {
	busID, ok := pathID(c, "id")
	if !ok {
		return
	}
	n, err := h.Ledger.GetAvailable(c.Request.Context(), busID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bus_id": busID, "available_seats": n})
}

// GET /api/bus-summary
func (h Handlers) Summary(c *gin.Context) {
	cards, err := h.Catalog.Summary(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"buses": cards})
}

// GET /api/bookings/options
func (h Handlers) BookingOptions(c *gin.Context) {
	buses, err := h.Catalog.BookingOptions(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"buses": buses})
}
