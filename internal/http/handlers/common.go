package handlers

import (
	"net/http"
	"strconv"

	"busbook/internal/http/middleware"
	"busbook/internal/services"

	"github.com/gin-gonic/gin"
)

// Handlers holds the services behind the HTTP API.
type Handlers struct {
	Catalog services.CatalogService
	Ledger  services.SeatLedger
	Admin   services.AdminEditService
	Auth    services.AuthService
	Intents services.IntentService
	Tickets services.TicketService

	// SecureCookie marks the admin_token cookie Secure.
	SecureCookie bool
}

// RespondError sends standard error payload with request_id included.
// Keeps backward compatibility by always providing "message".
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindOrError binds a JSON or form body and answers 400 on failure.
func BindOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBind(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_"+name, "invalid "+name, nil)
		return 0, false
	}
	return id, true
}
