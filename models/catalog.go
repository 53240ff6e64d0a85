package models

// CatalogEntry is a bookable listing shown on a vertical's landing page:
// a photographer, videographer, equipment unit or transport unit.
type CatalogEntry struct {
	ID         string   `bson:"id" json:"id"`
	Type       ItemType `bson:"type" json:"type"`
	Name       string   `bson:"name" json:"name"`
	DailyRate  int64    `bson:"daily_rate" json:"dailyRate"`
	Grade      string   `bson:"grade,omitempty" json:"grade,omitempty"`
	ProfilePic string   `bson:"profile_pic,omitempty" json:"profilePic,omitempty"`
	Location   string   `bson:"location,omitempty" json:"location,omitempty"`
}

// ToBookingItem converts a catalog entry into a cart line with the given
// quantity. Quantity below 1 falls back to the single-unit default.
func (e CatalogEntry) ToBookingItem(quantity int) BookingItem {
	if quantity < 1 {
		quantity = 1
	}
	return BookingItem{
		ID:         e.ID,
		Type:       e.Type,
		Name:       e.Name,
		DailyRate:  e.DailyRate,
		Quantity:   quantity,
		Grade:      e.Grade,
		ProfilePic: e.ProfilePic,
	}
}
