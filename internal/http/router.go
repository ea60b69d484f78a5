package api

import (
	"log"
	stdhttp "net/http"

	intconfig "busbook/internal/config"
	h "busbook/internal/http/handlers"
	"busbook/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, hs h.Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Buses
		buses := api.Group("/buses")
		buses.GET("", hs.ListBuses)
		buses.GET("/:id/schedule", hs.Schedule)
		buses.GET("/:id/availability", hs.Availability)
		api.GET("/bus-summary", hs.Summary)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.GET("/options", hs.BookingOptions)
		bookings.POST("", hs.Book)
		bookings.GET("/:id/ticket", hs.Ticket)

		api.POST("/intents", hs.RecordIntent)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/register", hs.Register)
		auth.POST("/login", hs.Login)
		auth.POST("/logout", hs.Logout)

		// Admin
		admin := api.Group("/admin", middleware.RequireAdmin(hs.Auth))
		admin.GET("/dashboard", hs.Dashboard)
		admin.POST("/buses", hs.CreateBus)
		admin.GET("/buses/:id", hs.EditView)
		admin.PUT("/buses/:id", hs.UpdateBus)
		admin.POST("/buses/:id", hs.UpdateBus)
		admin.DELETE("/buses/:id", hs.DeleteBus)
	}

	h.SetRouter(r)
	return r
}
