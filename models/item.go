package models

// ItemType classifies a bookable line item. The set is closed: every item in
// a session carries exactly one of these tags.
type ItemType string

const (
	ItemTypePhotographer ItemType = "photographer"
	ItemTypeVideographer ItemType = "videographer"
	ItemTypeEquipment    ItemType = "equipment"
	ItemTypeTransport    ItemType = "transport"
)

// AllItemTypes lists the verticals in display order.
var AllItemTypes = []ItemType{
	ItemTypePhotographer,
	ItemTypeVideographer,
	ItemTypeEquipment,
	ItemTypeTransport,
}

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypePhotographer, ItemTypeVideographer, ItemTypeEquipment, ItemTypeTransport:
		return true
	}
	return false
}

// BookingItem represents one selected service or rental unit. The (ID, Type)
// pair identifies a line within a session; IDs are unique per type, not
// globally. DailyRate is in the smallest currency unit. Grade and ProfilePic
// are display metadata and never enter pricing.
type BookingItem struct {
	ID         string   `bson:"id" json:"id"`
	Type       ItemType `bson:"type" json:"type"`
	Name       string   `bson:"name" json:"name"`
	DailyRate  int64    `bson:"daily_rate" json:"dailyRate"`
	Quantity   int      `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Grade      string   `bson:"grade,omitempty" json:"grade,omitempty"`
	ProfilePic string   `bson:"profile_pic,omitempty" json:"profilePic,omitempty"`
}

// EffectiveQuantity treats an unset quantity as one unit. Photographer and
// videographer items are added without an explicit quantity at several call
// sites and must still count once in totals.
func (it BookingItem) EffectiveQuantity() int {
	if it.Quantity < 1 {
		return 1
	}
	return it.Quantity
}
