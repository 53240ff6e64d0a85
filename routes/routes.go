package routes

import (
	"net/http"
	"time"

	"hrp/handlers"
	"hrp/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle carries the wired handlers into route registration.
type HandlerBundle struct {
	Booking *handlers.BookingHandler
	Catalog *handlers.CatalogHandler
}

// RegisterRoutes attaches every route group to the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterCatalogRoutes registers the per-vertical listing endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/:type", hb.Catalog.List)
	}
}

// RegisterOrderRoutes registers the confirmation and dashboard reads.
func RegisterOrderRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/orders")
	{
		api.GET("/latest", hb.Booking.GetLatestOrder)
		api.GET("/history", hb.Booking.ListOrders)
		api.GET("/:orderID", hb.Booking.GetOrderByID)
	}
}
