package model

import (
	pModel "staybook/internal/domains/property/model"
)

const EntityName = "booking"

// Draft is the booking-creation payload derived from a selection and an availability query.
type Draft struct {
	PropertyID   string          `json:"property_id"`
	PropertyType pModel.Type     `json:"-"`
	ItemID       string          `json:"item_id"`
	ItemType     pModel.ItemType `json:"item_type"`
	Quantity     int             `json:"quantity"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date,omitempty"`
	ArrivalTime  string          `json:"arrival_time,omitempty"`
	GuestCount   int             `json:"guest_count"`
	Nights       *int            `json:"nights,omitempty"`
	UnitPrice    float64         `json:"unit_price"`
	TotalPrice   float64         `json:"total_price"`
	Currency     string          `json:"currency"`
}

type Item struct {
	ID        string  `json:"id"`
	ItemType  string  `json:"item_type"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price,omitempty"`
}

// Booking is the marketplace's answer to a booking-creation request.
type Booking struct {
	ID           string   `json:"id"`
	Reference    string   `json:"booking_reference"`
	PropertyType string   `json:"property_type,omitempty"`
	Status       string   `json:"status,omitempty"`
	Items        []Item   `json:"items"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date,omitempty"`
	ArrivalTime  string   `json:"arrival_time,omitempty"`
	TotalPrice   *float64 `json:"total_price,omitempty"`
	Currency     string   `json:"currency,omitempty"`
}

type DetailProperty struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     pModel.Type `json:"property_type"`
	Currency string      `json:"currency"`
}

type DetailItem struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	ItemType pModel.ItemType `json:"item_type"`
}

type Breakdown struct {
	Total *float64 `json:"total,omitempty"`
	Lines []string `json:"lines,omitempty"`
}

type DetailSummary struct {
	Quantity    int       `json:"quantity"`
	Guests      *int      `json:"guests,omitempty"`
	UnitPrice   float64   `json:"unit_price"`
	TotalPrice  *float64  `json:"total_price,omitempty"`
	StartDate   string    `json:"start_date,omitempty"`
	EndDate     string    `json:"end_date,omitempty"`
	ArrivalTime string    `json:"arrival_time,omitempty"`
	Breakdown   Breakdown `json:"breakdown"`
}

// Detail is the {property, item, summary} triple the marketplace serves for an existing booking.
type Detail struct {
	Property DetailProperty `json:"property"`
	Item     DetailItem     `json:"item"`
	Summary  DetailSummary  `json:"summary"`
}

// Dates are the date inputs of a summary view, taken from the query string.
type Dates struct {
	CheckIn  string
	CheckOut string
	Time     string
}
