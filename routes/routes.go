package routes

import (
	"time"

	"campusbook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, availH *handlers.AvailabilityHandler, bookH *handlers.BookingHandler, wsH *handlers.WorkspaceHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, availH)
	RegisterBookingRoutes(r, bookH)
	RegisterWorkspaceRoutes(r, wsH)
	RegisterHealthRoute(r)
}

// RegisterAvailabilityRoutes registers the slot engine endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, h *handlers.AvailabilityHandler) {
	api := r.Group("/api/availability")
	{
		api.GET("", h.GetAvailableSlotsHandler)
		api.POST("/revalidate", h.RevalidateHandler)
	}
}

// RegisterBookingRoutes registers the reservation-session endpoints.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	api := r.Group("/api/booking")
	{
		api.POST("/session", h.StartSession)
		api.POST("/session/:sessionID/confirm", h.ConfirmSession)
	}
}

// RegisterWorkspaceRoutes registers the workspace catalogue endpoints.
func RegisterWorkspaceRoutes(r *gin.Engine, h *handlers.WorkspaceHandler) {
	api := r.Group("/api/workspaces")
	{
		api.GET("", h.ListWorkspacesHandler)
		api.GET("/:id", h.GetWorkspaceHandler)
	}
}

// RegisterHealthRoute registers the health endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}
