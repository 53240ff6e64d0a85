package models

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// GuestInfo is the contact block captured on the checkout form.
type GuestInfo struct {
	FullName string `bson:"full_name" json:"fullName" binding:"required"`
	Email    string `bson:"email" json:"email" binding:"required,email"`
	Phone    string `bson:"phone" json:"phone" binding:"required"`
	Notes    string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// BookingDetails is the frozen cart carried inside an order.
type BookingDetails struct {
	Location   string        `bson:"location" json:"location"`
	Date       string        `bson:"date" json:"date"`
	RentalDays int           `bson:"rental_days" json:"rentalDays"`
	Items      []BookingItem `bson:"items" json:"items"`
	Total      int64         `bson:"total" json:"total"`
}

// Order statuses.
const (
	OrderStatusPending = "pending"
)

// Order is the immutable snapshot written at successful checkout. It is a
// one-way export of the session, never edited afterwards.
type Order struct {
	OrderID        string         `bson:"order_id" json:"orderId"`
	GuestInfo      GuestInfo      `bson:"guest_info" json:"guestInfo"`
	BookingDetails BookingDetails `bson:"booking_details" json:"bookingDetails"`
	PaymentMethod  string         `bson:"payment_method" json:"paymentMethod"`
	CreatedAt      time.Time      `bson:"created_at" json:"createdAt"`
	Status         string         `bson:"status" json:"status"`
}

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewOrderID generates an identifier of the form ORD-<base36 millisecond
// timestamp>-<6 random base36 chars>, uppercased. Timestamp plus randomness
// only; there is no collision guarantee beyond that.
func NewOrderID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}
	return strings.ToUpper("ORD-" + ts + "-" + string(suffix))
}
