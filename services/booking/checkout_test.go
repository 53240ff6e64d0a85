package booking

import (
	"context"
	"testing"

	"hrp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validGuest = models.GuestInfo{
	FullName: "Siti Rahma",
	Email:    "siti@example.com",
	Phone:    "+62 812 3456 789",
}

func newCheckoutSession(t *testing.T, svc *DefaultSessionService) string {
	t.Helper()
	ctx := context.Background()

	created, err := svc.CreateSession(ctx, "Jakarta", "2026-09-12")
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, created.ID, models.BookingItem{ID: "1", Type: models.ItemTypePhotographer, Name: "Arif Rahman", DailyRate: 4000000})
	require.NoError(t, err)
	_, err = svc.SetRentalDays(ctx, created.ID, 2)
	require.NoError(t, err)
	return created.ID
}

func TestCheckout_Success(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	id := newCheckoutSession(t, svc)

	order, err := svc.Checkout(ctx, id, validGuest, "bank_transfer")
	require.NoError(t, err)

	assert.Regexp(t, `^ORD-`, order.OrderID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "bank_transfer", order.PaymentMethod)
	assert.Equal(t, "Jakarta", order.BookingDetails.Location)
	assert.Equal(t, 2, order.BookingDetails.RentalDays)
	assert.EqualValues(t, 8000000, order.BookingDetails.Total)
	assert.False(t, order.CreatedAt.IsZero())

	// Archive holds the snapshot under both reads.
	byID, err := svc.GetOrder(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderID, byID.OrderID)

	latest, err := svc.LatestOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, order.OrderID, latest.OrderID)

	// The session is destroyed on successful checkout.
	_, err = svc.GetSession(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateSession(ctx, "Jakarta", "2026-09-12")
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, created.ID, validGuest, "bank_transfer")
	assert.ErrorIs(t, err, ErrEmptyCart)

	// A rejected checkout leaves the session alive.
	_, err = svc.GetSession(ctx, created.ID)
	assert.NoError(t, err)
}

func TestCheckout_UnknownSession(t *testing.T) {
	svc := newTestService()

	_, err := svc.Checkout(context.Background(), "missing", validGuest, "bank_transfer")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCheckout_GuestValidation(t *testing.T) {
	cases := []struct {
		name  string
		guest models.GuestInfo
	}{
		{"missing name", models.GuestInfo{Email: "siti@example.com", Phone: "+62 812 3456 789"}},
		{"missing email", models.GuestInfo{FullName: "Siti Rahma", Phone: "+62 812 3456 789"}},
		{"bad email", models.GuestInfo{FullName: "Siti Rahma", Email: "not-an-email", Phone: "+62 812 3456 789"}},
		{"missing phone", models.GuestInfo{FullName: "Siti Rahma", Email: "siti@example.com"}},
		{"bad phone", models.GuestInfo{FullName: "Siti Rahma", Email: "siti@example.com", Phone: "call me"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService()
			id := newCheckoutSession(t, svc)

			_, err := svc.Checkout(context.Background(), id, tc.guest, "bank_transfer")
			require.Error(t, err)

			var bookingErr *BookingError
			require.ErrorAs(t, err, &bookingErr)
			assert.Equal(t, "validationError", bookingErr.Code)
		})
	}
}

func TestCheckout_MissingPaymentMethod(t *testing.T) {
	svc := newTestService()
	id := newCheckoutSession(t, svc)

	_, err := svc.Checkout(context.Background(), id, validGuest, " ")
	var bookingErr *BookingError
	require.ErrorAs(t, err, &bookingErr)
	assert.Equal(t, "validationError", bookingErr.Code)
}

func TestOrderArchive_KeyedReads(t *testing.T) {
	archive := NewMemoryOrderArchive()
	ctx := context.Background()

	_, err := archive.Latest(ctx)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	first := &models.Order{OrderID: "ORD-A", Status: models.OrderStatusPending}
	second := &models.Order{OrderID: "ORD-B", Status: models.OrderStatusPending}
	require.NoError(t, archive.Put(ctx, first))
	require.NoError(t, archive.Put(ctx, second))

	latest, err := archive.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ORD-B", latest.OrderID)

	got, err := archive.GetByID(ctx, "ORD-A")
	require.NoError(t, err)
	assert.Equal(t, "ORD-A", got.OrderID)

	_, err = archive.GetByID(ctx, "ORD-C")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
