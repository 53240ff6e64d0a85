package booking

import (
	"context"
	"time"

	orderRepo "hrp/database/repository/order"
	"hrp/models"

	"go.uber.org/zap"
)

// SessionService manages the lifecycle of a booking session: created empty,
// mutated while the wizard runs, and destroyed when checkout snapshots it
// into an order.
type SessionService interface {
	CreateSession(ctx context.Context, location, date string) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SetBookingContext(ctx context.Context, sessionID, location, date string) (*models.BookingSession, error)
	AddItem(ctx context.Context, sessionID string, item models.BookingItem) (*models.BookingSession, error)
	RemoveItem(ctx context.Context, sessionID string, itemType models.ItemType, itemID string) (*models.BookingSession, error)
	UpdateItemQuantity(ctx context.Context, sessionID string, itemType models.ItemType, itemID string, quantity int) (*models.BookingSession, error)
	ClearItems(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SetRentalDays(ctx context.Context, sessionID string, days int) (*models.BookingSession, error)
	Summary(ctx context.Context, sessionID string) (*SessionSummary, error)
	Checkout(ctx context.Context, sessionID string, guest models.GuestInfo, paymentMethod string) (*models.Order, error)
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
	LatestOrder(ctx context.Context) (*models.Order, error)
}

// DefaultSessionService implements SessionService over an injected session
// repository and order stores. Tests construct it with the in-memory
// implementations.
type DefaultSessionService struct {
	Sessions SessionRepository
	Archive  OrderArchive
	Records  orderRepo.OrderRecordRepository // optional durable history; nil skips it
	Logger   *zap.Logger

	// CheckoutDelay simulates payment processing; zero disables it.
	CheckoutDelay time.Duration
}

func (s *DefaultSessionService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
