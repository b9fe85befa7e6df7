package model

import "strings"

// Type discriminates which inventory entity a property sells and which date rules apply.
type Type string

const (
	TypeLodging Type = "LODGING"
	TypeDining  Type = "DINING"
)

// ParseType accepts the backend's spellings ("hotel", "lodging", "restaurant", "dining").
func ParseType(value string) (Type, bool) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case string(TypeLodging), "HOTEL":
		return TypeLodging, true
	case string(TypeDining), "RESTAURANT":
		return TypeDining, true
	default:
		return "", false
	}
}

// ItemType returns the booking item type matching t.
func (t Type) ItemType() ItemType {
	if t == TypeDining {
		return ItemTypeTable
	}

	return ItemTypeRoom
}

type ItemType string

const (
	ItemTypeRoom  ItemType = "room"
	ItemTypeTable ItemType = "table"
)

// Unit is a bookable room type (LODGING) or seating category / table (DINING).
type Unit struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Adults         int      `json:"adults,omitempty"`
	Children       int      `json:"children,omitempty"`
	Capacity       int      `json:"capacity,omitempty"`
	PricePerNight  float64  `json:"price_per_night,omitempty"`
	ReservationFee *float64 `json:"reservation_fee,omitempty"`
	TotalAvailable int      `json:"total_available"`
	LocationType   string   `json:"location_type,omitempty"`
}

type Property struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     Type   `json:"property_type"`
	Currency string `json:"currency"`
	Units    []Unit `json:"units"`
}
