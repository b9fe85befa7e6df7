package dto

import (
	avService "staybook/internal/domains/availability/service"
	invService "staybook/internal/domains/inventory/service"
	pModel "staybook/internal/domains/property/model"
	seatService "staybook/internal/domains/seating/service"
)

type OpenSessionRequest struct {
	PropertyID string `json:"property_id" validate:"required"`
	Locale     string `json:"locale"      validate:"omitempty,max=10"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// RowResponse and ReservationResponse name the inventory payloads served by session routes.
type (
	RowResponse         = invService.RowView
	ReservationResponse = invService.Reservation
)

type PropertyResponse struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     pModel.Type `json:"property_type"`
	Currency string      `json:"currency"`
}

func (p *PropertyResponse) FromModel(property pModel.Property) {
	p.ID = property.ID
	p.Name = property.Name
	p.Type = property.Type
	p.Currency = property.Currency
}

// SessionResponse is everything the storefront renders for one property page.
type SessionResponse struct {
	ID           string               `json:"session_id"`
	Locale       string               `json:"locale"`
	Property     PropertyResponse     `json:"property"`
	Filters      *avService.Filters   `json:"filters,omitempty"`
	Availability avService.State      `json:"availability"`
	Nights       int                  `json:"nights"`
	Items        []invService.RowView `json:"items"`
	Seating      []seatService.Group  `json:"seating,omitempty"`
	Expanded     *seatService.Group   `json:"expanded,omitempty"`
}
