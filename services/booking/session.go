package booking

import (
	"context"

	"hrp/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateSession starts a new, empty booking session. Location and date may be
// empty; the first wizard step fills them in.
func (s *DefaultSessionService) CreateSession(ctx context.Context, location, date string) (*models.BookingSession, error) {
	session := models.NewBookingSession(uuid.New().String())
	session.Location = location
	session.Date = date

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	s.logger().Debug("booking session created", zap.String("sessionId", session.ID))
	return session, nil
}

// GetSession returns the current session state.
func (s *DefaultSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Sessions.Get(ctx, sessionID)
}

// mutate loads a session, applies fn, and stores the result. Every mutation
// refreshes the repository TTL.
func (s *DefaultSessionService) mutate(ctx context.Context, sessionID string, fn func(*models.BookingSession) error) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetBookingContext updates the location and date chosen on the first wizard
// step. Empty values leave the current ones in place.
func (s *DefaultSessionService) SetBookingContext(ctx context.Context, sessionID, location, date string) (*models.BookingSession, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		if location != "" {
			session.Location = location
		}
		if date != "" {
			session.Date = date
		}
		return nil
	})
}

// AddItem puts a line item into the cart, merging quantity on a duplicate
// (id, type) pair.
func (s *DefaultSessionService) AddItem(ctx context.Context, sessionID string, item models.BookingItem) (*models.BookingSession, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		return session.AddItem(item)
	})
}

// RemoveItem drops a line item; removing an absent line is a no-op.
func (s *DefaultSessionService) RemoveItem(ctx context.Context, sessionID string, itemType models.ItemType, itemID string) (*models.BookingSession, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		session.RemoveItem(itemID, itemType)
		return nil
	})
}

// UpdateItemQuantity sets a line's quantity, clamping values below one.
func (s *DefaultSessionService) UpdateItemQuantity(ctx context.Context, sessionID string, itemType models.ItemType, itemID string, quantity int) (*models.BookingSession, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		session.UpdateItemQuantity(itemID, itemType, quantity)
		return nil
	})
}

// ClearItems empties the cart while keeping location, date and rental days.
func (s *DefaultSessionService) ClearItems(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		session.ClearItems()
		return nil
	})
}

// SetRentalDays sets the rental-day multiplier, clamping values below one.
func (s *DefaultSessionService) SetRentalDays(ctx context.Context, sessionID string, days int) (*models.BookingSession, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		session.SetRentalDays(days)
		return nil
	})
}

// TypeSubtotal is one vertical's slice of the cart.
type TypeSubtotal struct {
	Items    []models.BookingItem `json:"items"`
	Subtotal int64                `json:"subtotal"`
}

// SessionSummary is the derived read the cart page renders: per-vertical
// subtotals plus the grand total, all computed from the same item collection.
type SessionSummary struct {
	SessionID  string                           `json:"sessionId"`
	Location   string                           `json:"location,omitempty"`
	Date       string                           `json:"date,omitempty"`
	RentalDays int                              `json:"rentalDays"`
	ItemCount  int                              `json:"itemCount"`
	Subtotals  map[models.ItemType]TypeSubtotal `json:"subtotals"`
	Total      int64                            `json:"total"`
}

// Summarize computes the cart page's view of an already-loaded session, so
// callers holding one do not re-read the repository.
func Summarize(session *models.BookingSession) *SessionSummary {
	subtotals := make(map[models.ItemType]TypeSubtotal, len(models.AllItemTypes))
	for _, t := range models.AllItemTypes {
		subtotals[t] = TypeSubtotal{
			Items:    session.ItemsByType(t),
			Subtotal: session.CostByType(t),
		}
	}

	return &SessionSummary{
		SessionID:  session.ID,
		Location:   session.Location,
		Date:       session.Date,
		RentalDays: session.RentalDays,
		ItemCount:  session.ItemCount(),
		Subtotals:  subtotals,
		Total:      session.TotalCost(),
	}
}

// Summary loads a session and computes its summary.
func (s *DefaultSessionService) Summary(ctx context.Context, sessionID string) (*SessionSummary, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return Summarize(session), nil
}
