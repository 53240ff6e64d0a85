package booking

import (
	"context"
	"regexp"
	"strings"
	"time"

	"hrp/models"

	"go.uber.org/zap"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-]{6,19}$`)
)

func validateGuestInfo(guest models.GuestInfo) error {
	if strings.TrimSpace(guest.FullName) == "" {
		return NewValidationError("full name is required")
	}
	if strings.TrimSpace(guest.Email) == "" {
		return NewValidationError("email is required")
	}
	if !emailPattern.MatchString(guest.Email) {
		return NewValidationError("email format is invalid")
	}
	if strings.TrimSpace(guest.Phone) == "" {
		return NewValidationError("phone number is required")
	}
	if !phonePattern.MatchString(guest.Phone) {
		return NewValidationError("phone number format is invalid")
	}
	return nil
}

// Checkout freezes the session into an order snapshot, archives it, and
// destroys the session. The cart must hold at least one item. The simulated
// payment delay stands in for a real charge; no money moves here.
func (s *DefaultSessionService) Checkout(ctx context.Context, sessionID string, guest models.GuestInfo, paymentMethod string) (*models.Order, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if err := validateGuestInfo(guest); err != nil {
		return nil, err
	}
	if strings.TrimSpace(paymentMethod) == "" {
		return nil, NewValidationError("payment method is required")
	}

	if s.CheckoutDelay > 0 {
		select {
		case <-time.After(s.CheckoutDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	order := &models.Order{
		OrderID:   models.NewOrderID(),
		GuestInfo: guest,
		BookingDetails: models.BookingDetails{
			Location:   session.Location,
			Date:       session.Date,
			RentalDays: session.RentalDays,
			Items:      session.Items,
			Total:      session.TotalCost(),
		},
		PaymentMethod: paymentMethod,
		CreatedAt:     time.Now().UTC(),
		Status:        models.OrderStatusPending,
	}

	if err := s.Archive.Put(ctx, order); err != nil {
		return nil, err
	}
	if s.Records != nil {
		if err := s.Records.Create(ctx, *order); err != nil {
			// The archive write already succeeded; history is best-effort.
			s.logger().Warn("failed to persist order record",
				zap.String("orderId", order.OrderID), zap.Error(err))
		}
	}
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		s.logger().Warn("failed to drop booking session after checkout",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	s.logger().Info("order placed",
		zap.String("orderId", order.OrderID),
		zap.Int64("total", order.BookingDetails.Total),
		zap.Int("items", len(order.BookingDetails.Items)))
	return order, nil
}

// GetOrder reads one archived order for the confirmation page.
func (s *DefaultSessionService) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return s.Archive.GetByID(ctx, orderID)
}

// LatestOrder reads the most recently archived order.
func (s *DefaultSessionService) LatestOrder(ctx context.Context) (*models.Order, error) {
	return s.Archive.Latest(ctx)
}
