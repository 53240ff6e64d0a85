package handlers

import (
	"errors"
	"net/http"

	orderRepo "hrp/database/repository/order"
	"hrp/models"
	"hrp/services/booking"
	"hrp/services/catalog"
	"hrp/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard over HTTP.
type BookingHandler struct {
	Service booking.SessionService
	Catalog catalog.Service
	Orders  orderRepo.OrderRecordRepository
	Logger  *zap.Logger
}

// NewBookingHandler returns a BookingHandler wired to the given services.
func NewBookingHandler(svc booking.SessionService, cat catalog.Service, orders orderRepo.OrderRecordRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Catalog: cat, Orders: orders, Logger: logger}
}

// respondServiceError maps typed service errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.Is(err, booking.ErrOrderNotFound):
		utils.JSONError(c, http.StatusNotFound, "order not found", "")
	case errors.Is(err, catalog.ErrUnknownVertical), errors.Is(err, catalog.ErrEntryNotFound):
		utils.JSONError(c, http.StatusNotFound, "catalog entry not found", err.Error())
	case errors.Is(err, booking.ErrEmptyCart),
		errors.Is(err, models.ErrInvalidItemType),
		errors.Is(err, models.ErrNegativeRate):
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
	default:
		var bookingErr *booking.BookingError
		if errors.As(err, &bookingErr) && bookingErr.Code == "validationError" {
			utils.JSONError(c, http.StatusBadRequest, "validation failed", bookingErr.Message)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", err.Error())
	}
}

// CreateSession starts a new booking session.
func (h *BookingHandler) CreateSession(c *gin.Context) {
	var input struct {
		Location string `json:"location"`
		Date     string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Service.CreateSession(c.Request.Context(), input.Location, input.Date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetSession returns the session together with its derived summary. One
// load serves both views; a second read could race session expiry.
func (h *BookingHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, err := h.Service.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "summary": booking.Summarize(session)})
}

// UpdateSession sets location, date and rental days in one call. Omitted
// fields keep their current value.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Location   string `json:"location"`
		Date       string `json:"date"`
		RentalDays *int   `json:"rentalDays"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Service.SetBookingContext(c.Request.Context(), sessionID, input.Location, input.Date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if input.RentalDays != nil {
		session, err = h.Service.SetRentalDays(c.Request.Context(), sessionID, *input.RentalDays)
		if err != nil {
			respondServiceError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, session)
}

// AddItem puts a line item in the cart, either resolved from the catalog by
// (type, id) or given inline.
func (h *BookingHandler) AddItem(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Type     models.ItemType     `json:"type"`
		ID       string              `json:"id"`
		Quantity int                 `json:"quantity"`
		Item     *models.BookingItem `json:"item"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	var item models.BookingItem
	if input.Item != nil {
		item = *input.Item
	} else {
		resolved, err := h.Catalog.Resolve(c.Request.Context(), input.Type, input.ID, input.Quantity)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		item = *resolved
	}

	session, err := h.Service.AddItem(c.Request.Context(), sessionID, item)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// RemoveItem drops the line matching the (type, id) path parameters.
func (h *BookingHandler) RemoveItem(c *gin.Context) {
	sessionID := c.Param("sessionID")
	itemType := models.ItemType(c.Param("type"))
	session, err := h.Service.RemoveItem(c.Request.Context(), sessionID, itemType, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateItemQuantity sets a line's quantity. The field is a pointer so that
// an explicit zero reaches the session's clamp instead of tripping the
// required-field check; only an absent field is a bad request.
func (h *BookingHandler) UpdateItemQuantity(c *gin.Context) {
	sessionID := c.Param("sessionID")
	itemType := models.ItemType(c.Param("type"))
	var input struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Service.UpdateItemQuantity(c.Request.Context(), sessionID, itemType, c.Param("id"), *input.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ClearItems empties the cart, leaving the booking context in place.
func (h *BookingHandler) ClearItems(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, err := h.Service.ClearItems(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSteps returns the canonical wizard order.
func (h *BookingHandler) GetSteps(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"steps": booking.BookingSteps()})
}

// GetNextStep looks up the step after ?current=<path>.
func (h *BookingHandler) GetNextStep(c *gin.Context) {
	current := c.Query("current")
	if current == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "query parameter 'current' is required")
		return
	}
	next, ok := booking.NextStep(current)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"next": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"next": next})
}

// Checkout snapshots the session into an order.
func (h *BookingHandler) Checkout(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		GuestInfo     models.GuestInfo `json:"guestInfo" binding:"required"`
		PaymentMethod string           `json:"paymentMethod" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	order, err := h.Service.Checkout(c.Request.Context(), sessionID, input.GuestInfo, input.PaymentMethod)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetLatestOrder serves the confirmation page's read of the newest order.
func (h *BookingHandler) GetLatestOrder(c *gin.Context) {
	order, err := h.Service.LatestOrder(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetOrderByID serves one archived order.
func (h *BookingHandler) GetOrderByID(c *gin.Context) {
	order, err := h.Service.GetOrder(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ListOrders serves the dashboards' order history, optionally filtered by
// guest email.
func (h *BookingHandler) ListOrders(c *gin.Context) {
	if h.Orders == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "order history unavailable", "")
		return
	}
	if email := c.Query("email"); email != "" {
		orders, err := h.Orders.ListByGuestEmail(c.Request.Context(), email)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
		return
	}
	orders, err := h.Orders.ListRecent(c.Request.Context(), 50)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
