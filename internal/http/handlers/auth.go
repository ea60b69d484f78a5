package handlers

import (
	"net/http"
	"time"

	"busbook/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username        string `json:"username" form:"username" binding:"required"`
	Password        string `json:"password" form:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type loginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// POST /api/auth/register
func (h Handlers) Register(c *gin.Context) {
	var req registerRequest
	if !BindOrError(c, &req) {
		return
	}
	admin, err := h.Auth.Register(c.Request.Context(), req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "registration successful, please log in", "admin": admin})
}

// POST /api/auth/login
func (h Handlers) Login(c *gin.Context) {
	var req loginRequest
	if !BindOrError(c, &req) {
		return
	}
	token, auth, err := h.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	maxAge := int(time.Until(auth.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", h.SecureCookie, true)
	c.JSON(http.StatusOK, gin.H{
		"message":    "login successful",
		"token":      token,
		"username":   auth.Username,
		"role":       auth.Role,
		"expires_at": auth.ExpiresAt,
	})
}

// POST /api/auth/logout
func (h Handlers) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.SecureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
