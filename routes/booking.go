package routes

import (
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.GET("/steps", hb.Booking.GetSteps)
		booking.GET("/steps/next", hb.Booking.GetNextStep)

		booking.POST("/session", hb.Booking.CreateSession)
		booking.GET("/session/:sessionID", hb.Booking.GetSession)
		booking.PUT("/session/:sessionID", hb.Booking.UpdateSession)

		booking.POST("/session/:sessionID/items", hb.Booking.AddItem)
		booking.DELETE("/session/:sessionID/items", hb.Booking.ClearItems)
		booking.PATCH("/session/:sessionID/items/:type/:id", hb.Booking.UpdateItemQuantity)
		booking.DELETE("/session/:sessionID/items/:type/:id", hb.Booking.RemoveItem)

		booking.POST("/session/:sessionID/checkout", hb.Booking.Checkout)
	}
}
