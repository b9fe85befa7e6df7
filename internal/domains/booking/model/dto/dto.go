package dto

import (
	"staybook/internal/domains/booking/model"
	pModel "staybook/internal/domains/property/model"
	receiptDto "staybook/internal/domains/receipt/model/dto"
)

// SubmitBookingRequest books the current selection of a session row.
type SubmitBookingRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid"`
	ItemID    string `json:"item_id"    validate:"required"`
}

type SubmitBookingResponse struct {
	Booking    model.Booking                  `json:"booking"`
	Receipt    *receiptDto.SaveReceiptRequest `json:"receipt,omitempty"`
	TotalPrice float64                        `json:"total_price"`
	Estimated  bool                           `json:"estimated"`
	Currency   string                         `json:"currency"`
}

// SummaryResponse is the canonical price breakdown shown for a booking.
type SummaryResponse struct {
	PropertyName string      `json:"property_name"`
	PropertyType pModel.Type `json:"property_type"`
	ItemTitle    string      `json:"item_title"`
	Currency     string      `json:"currency"`
	CheckIn      string      `json:"checkin,omitempty"`
	CheckOut     string      `json:"checkout,omitempty"`
	Time         string      `json:"time,omitempty"`
	Nights       *int        `json:"nights,omitempty"`
	Quantity     int         `json:"quantity"`
	UnitPrice    float64     `json:"unit_price"`
	Lines        []string    `json:"lines,omitempty"`
	Taxes        float64     `json:"taxes"`
	Total        float64     `json:"total"`
	ServerTotal  bool        `json:"server_total"`
	Guests       string      `json:"guests"`
}
