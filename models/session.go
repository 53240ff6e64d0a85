package models

import (
	"errors"
	"time"
)

var (
	// ErrInvalidItemType is returned when an item carries an unknown type tag.
	ErrInvalidItemType = errors.New("invalid item type")
	// ErrNegativeRate is returned when an item carries a negative daily rate.
	ErrNegativeRate = errors.New("daily rate must be non-negative")
)

// BookingSession holds the in-progress booking: the selected line items plus
// the location/date/duration context they share. All mutation goes through
// the methods below; totals are always recomputed from Items, never cached.
type BookingSession struct {
	ID         string        `bson:"id" json:"sessionId"`
	Items      []BookingItem `bson:"items" json:"items"`
	Location   string        `bson:"location,omitempty" json:"location,omitempty"`
	Date       string        `bson:"date,omitempty" json:"date,omitempty"` // "YYYY-MM-DD"
	RentalDays int           `bson:"rental_days" json:"rentalDays"`        // Uniform multiplier, always >= 1
	CreatedAt  time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updated_at" json:"updatedAt"`
}

// NewBookingSession returns an empty session with a one-day rental period.
func NewBookingSession(id string) *BookingSession {
	now := time.Now().UTC()
	return &BookingSession{
		ID:         id,
		Items:      []BookingItem{},
		RentalDays: 1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// findItem returns the index of the line matching (id, type), or -1.
func (s *BookingSession) findItem(id string, itemType ItemType) int {
	for i, it := range s.Items {
		if it.ID == id && it.Type == itemType {
			return i
		}
	}
	return -1
}

// AddItem appends item to the session. The (id, type) pair identifies a line:
// adding an already-present pair merges into the existing line by adding the
// incoming effective quantity, keeping the stored rate and display fields.
// Callers are not trusted to pre-check for duplicates.
func (s *BookingSession) AddItem(item BookingItem) error {
	if !item.Type.Valid() {
		return ErrInvalidItemType
	}
	if item.DailyRate < 0 {
		return ErrNegativeRate
	}
	if idx := s.findItem(item.ID, item.Type); idx >= 0 {
		s.Items[idx].Quantity = s.Items[idx].EffectiveQuantity() + item.EffectiveQuantity()
		s.touch()
		return nil
	}
	s.Items = append(s.Items, item)
	s.touch()
	return nil
}

// RemoveItem deletes the line matching (id, type). Removing an absent line is
// a no-op; confirmation dialogs may fire repeated clicks.
func (s *BookingSession) RemoveItem(id string, itemType ItemType) {
	idx := s.findItem(id, itemType)
	if idx < 0 {
		return
	}
	s.Items = append(s.Items[:idx], s.Items[idx+1:]...)
	s.touch()
}

// UpdateItemQuantity sets the quantity of the line matching (id, type).
// Values below 1 are clamped to 1 so a line can never go to zero or negative
// units. Updating an absent line is a no-op.
func (s *BookingSession) UpdateItemQuantity(id string, itemType ItemType, quantity int) {
	idx := s.findItem(id, itemType)
	if idx < 0 {
		return
	}
	if quantity < 1 {
		quantity = 1
	}
	s.Items[idx].Quantity = quantity
	s.touch()
}

// ClearItems empties the cart. Location, date and rental days belong to the
// booking context, not the cart contents, and survive a clear.
func (s *BookingSession) ClearItems() {
	s.Items = []BookingItem{}
	s.touch()
}

// SetRentalDays sets the uniform rental-day multiplier, clamping values below
// 1. The UI disables its decrement button at 1 but the session defends the
// bound itself.
func (s *BookingSession) SetRentalDays(days int) {
	if days < 1 {
		days = 1
	}
	s.RentalDays = days
	s.touch()
}

// ItemsByType returns the lines of one vertical in insertion order. The
// result is never nil.
func (s *BookingSession) ItemsByType(itemType ItemType) []BookingItem {
	out := []BookingItem{}
	for _, it := range s.Items {
		if it.Type == itemType {
			out = append(out, it)
		}
	}
	return out
}

// CostByType folds one vertical's lines into its subtotal:
// sum of dailyRate x effective quantity x rental days.
func (s *BookingSession) CostByType(itemType ItemType) int64 {
	var total int64
	for _, it := range s.Items {
		if it.Type == itemType {
			total += it.DailyRate * int64(it.EffectiveQuantity()) * int64(s.RentalDays)
		}
	}
	return total
}

// TotalCost folds every line into the grand total. Always recomputed from
// Items so no stale figure is observable.
func (s *BookingSession) TotalCost() int64 {
	var total int64
	for _, it := range s.Items {
		total += it.DailyRate * int64(it.EffectiveQuantity()) * int64(s.RentalDays)
	}
	return total
}

// ItemCount sums effective quantities across all lines, for the cart badge.
func (s *BookingSession) ItemCount() int {
	count := 0
	for _, it := range s.Items {
		count += it.EffectiveQuantity()
	}
	return count
}

func (s *BookingSession) touch() {
	s.UpdatedAt = time.Now().UTC()
}
