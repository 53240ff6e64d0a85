package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingSession_AddItem_MergesDuplicate(t *testing.T) {
	s := NewBookingSession("s1")

	require.NoError(t, s.AddItem(BookingItem{ID: "e1", Type: ItemTypeEquipment, Name: "Camera Kit", DailyRate: 250000, Quantity: 2}))
	require.NoError(t, s.AddItem(BookingItem{ID: "e1", Type: ItemTypeEquipment, Name: "Camera Kit", DailyRate: 250000, Quantity: 3}))

	require.Len(t, s.Items, 1)
	assert.Equal(t, 5, s.Items[0].Quantity)
}

func TestBookingSession_AddItem_ImplicitQuantityMergesAsOne(t *testing.T) {
	s := NewBookingSession("s1")

	// Talent items are added without an explicit quantity.
	require.NoError(t, s.AddItem(BookingItem{ID: "1", Type: ItemTypePhotographer, DailyRate: 4000000}))
	require.NoError(t, s.AddItem(BookingItem{ID: "1", Type: ItemTypePhotographer, DailyRate: 4000000}))

	require.Len(t, s.Items, 1)
	assert.Equal(t, 2, s.Items[0].Quantity)
}

func TestBookingSession_AddItem_SameIDDifferentTypeIsSeparate(t *testing.T) {
	s := NewBookingSession("s1")

	require.NoError(t, s.AddItem(BookingItem{ID: "1", Type: ItemTypePhotographer, DailyRate: 4000000}))
	require.NoError(t, s.AddItem(BookingItem{ID: "1", Type: ItemTypeVideographer, DailyRate: 4500000}))

	assert.Len(t, s.Items, 2)
}

func TestBookingSession_AddItem_RejectsInvalid(t *testing.T) {
	s := NewBookingSession("s1")

	assert.ErrorIs(t, s.AddItem(BookingItem{ID: "x", Type: "catering", DailyRate: 100}), ErrInvalidItemType)
	assert.ErrorIs(t, s.AddItem(BookingItem{ID: "x", Type: ItemTypeEquipment, DailyRate: -1}), ErrNegativeRate)
	assert.Empty(t, s.Items)
}

func TestBookingSession_RemoveItem_Idempotent(t *testing.T) {
	s := NewBookingSession("s1")
	require.NoError(t, s.AddItem(BookingItem{ID: "e1", Type: ItemTypeEquipment, DailyRate: 250000}))
	require.NoError(t, s.AddItem(BookingItem{ID: "t1", Type: ItemTypeTransport, DailyRate: 750000}))

	s.RemoveItem("e1", ItemTypeEquipment)
	s.RemoveItem("e1", ItemTypeEquipment)

	require.Len(t, s.Items, 1)
	assert.Equal(t, "t1", s.Items[0].ID)
}

func TestBookingSession_RemoveItem_NonMatchingIsNoOp(t *testing.T) {
	s := NewBookingSession("s1")
	require.NoError(t, s.AddItem(BookingItem{ID: "e1", Type: ItemTypeEquipment, DailyRate: 250000}))

	s.RemoveItem("nope", ItemTypeEquipment)
	s.RemoveItem("e1", ItemTypeTransport) // same id, wrong type

	assert.Equal(t, 1, s.ItemCount())
}

func TestBookingSession_UpdateItemQuantity_ClampsToOne(t *testing.T) {
	s := NewBookingSession("s1")
	require.NoError(t, s.AddItem(BookingItem{ID: "e1", Type: ItemTypeEquipment, DailyRate: 250000, Quantity: 3}))

	for _, q := range []int{0, -1, -100} {
		s.UpdateItemQuantity("e1", ItemTypeEquipment, q)
		assert.Equal(t, 1, s.Items[0].Quantity, "quantity %d must clamp to 1", q)
	}

	s.UpdateItemQuantity("e1", ItemTypeEquipment, 7)
	assert.Equal(t, 7, s.Items[0].Quantity)

	// Idempotent: same value twice, same state.
	s.UpdateItemQuantity("e1", ItemTypeEquipment, 7)
	assert.Equal(t, 7, s.Items[0].Quantity)
}

func TestBookingSession_SetRentalDays_ClampsToOne(t *testing.T) {
	s := NewBookingSession("s1")

	for _, d := range []int{0, -5} {
		s.SetRentalDays(d)
		assert.Equal(t, 1, s.RentalDays)
	}

	s.SetRentalDays(4)
	assert.Equal(t, 4, s.RentalDays)
}

func TestBookingSession_ClearItems_PreservesContext(t *testing.T) {
	s := NewBookingSession("s1")
	s.Location = "Jakarta"
	s.Date = "2026-09-12"
	s.SetRentalDays(3)
	require.NoError(t, s.AddItem(BookingItem{ID: "e1", Type: ItemTypeEquipment, DailyRate: 250000, Quantity: 2}))

	s.ClearItems()

	assert.Empty(t, s.Items)
	assert.EqualValues(t, 0, s.TotalCost())
	assert.Equal(t, "Jakarta", s.Location)
	assert.Equal(t, "2026-09-12", s.Date)
	assert.Equal(t, 3, s.RentalDays)
}

func TestBookingSession_TotalCost_Scenarios(t *testing.T) {
	t.Run("photographer with implicit quantity over two days", func(t *testing.T) {
		s := NewBookingSession("s1")
		require.NoError(t, s.AddItem(BookingItem{ID: "1", Type: ItemTypePhotographer, DailyRate: 4000000}))
		s.SetRentalDays(2)
		assert.EqualValues(t, 8000000, s.TotalCost())
	})

	t.Run("equipment in multiples over one day", func(t *testing.T) {
		s := NewBookingSession("s1")
		require.NoError(t, s.AddItem(BookingItem{ID: "e1", Type: ItemTypeEquipment, DailyRate: 250000, Quantity: 3}))
		assert.EqualValues(t, 750000, s.CostByType(ItemTypeEquipment))
		assert.EqualValues(t, 750000, s.TotalCost())
	})
}

func TestBookingSession_TotalConsistency(t *testing.T) {
	s := NewBookingSession("s1")
	require.NoError(t, s.AddItem(BookingItem{ID: "1", Type: ItemTypePhotographer, DailyRate: 4000000}))
	require.NoError(t, s.AddItem(BookingItem{ID: "2", Type: ItemTypePhotographer, DailyRate: 3500000}))
	require.NoError(t, s.AddItem(BookingItem{ID: "1", Type: ItemTypeVideographer, DailyRate: 4500000}))
	require.NoError(t, s.AddItem(BookingItem{ID: "e1", Type: ItemTypeEquipment, DailyRate: 250000, Quantity: 3}))
	require.NoError(t, s.AddItem(BookingItem{ID: "t1", Type: ItemTypeTransport, DailyRate: 750000, Quantity: 2}))
	s.SetRentalDays(2)

	var sum int64
	for _, itemType := range AllItemTypes {
		sum += s.CostByType(itemType)
	}
	assert.Equal(t, s.TotalCost(), sum, "per-type subtotals must slice the grand total exactly")
}

func TestBookingSession_ItemsByType(t *testing.T) {
	s := NewBookingSession("s1")
	require.NoError(t, s.AddItem(BookingItem{ID: "e2", Type: ItemTypeEquipment, DailyRate: 150000}))
	require.NoError(t, s.AddItem(BookingItem{ID: "1", Type: ItemTypePhotographer, DailyRate: 4000000}))
	require.NoError(t, s.AddItem(BookingItem{ID: "e1", Type: ItemTypeEquipment, DailyRate: 250000}))

	equipment := s.ItemsByType(ItemTypeEquipment)
	require.Len(t, equipment, 2)
	// Insertion order, not ID order.
	assert.Equal(t, "e2", equipment[0].ID)
	assert.Equal(t, "e1", equipment[1].ID)

	// Empty projection is an empty slice, never nil.
	assert.NotNil(t, s.ItemsByType(ItemTypeTransport))
	assert.Empty(t, s.ItemsByType(ItemTypeTransport))
}

func TestBookingSession_ItemCount(t *testing.T) {
	s := NewBookingSession("s1")
	require.NoError(t, s.AddItem(BookingItem{ID: "1", Type: ItemTypePhotographer, DailyRate: 4000000}))
	require.NoError(t, s.AddItem(BookingItem{ID: "2", Type: ItemTypeVideographer, DailyRate: 3000000}))
	assert.Equal(t, len(s.Items), s.ItemCount(), "all-singleton cart: count equals line count")

	require.NoError(t, s.AddItem(BookingItem{ID: "e1", Type: ItemTypeEquipment, DailyRate: 250000, Quantity: 3}))
	assert.Equal(t, 5, s.ItemCount())
}
