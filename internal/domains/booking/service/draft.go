package service

import (
	"fmt"
	avService "staybook/internal/domains/availability/service"
	"staybook/internal/domains/booking/model"
	pModel "staybook/internal/domains/property/model"
	"staybook/internal/domains/property/pricing"
	"staybook/shared/failure"
)

const unitEntityName = "inventory unit"

// NewDraft derives the booking-creation payload for quantity of unit under filters. unit is the
// one on display, so its price and stock are the ones the shopper saw.
// limit is the per-row quantity cap; currency is used when the property has none.
func NewDraft(property pModel.Property, unit pModel.Unit, quantity int, filters avService.Filters, limit int, currency string) (model.Draft, error) {
	if unit.ID == "" {
		return model.Draft{}, failure.NotFound(unitEntityName)
	}

	if upper := pricing.MaxSelectable(unit.TotalAvailable, limit); quantity < 1 || quantity > upper {
		return model.Draft{}, failure.BadRequestFromString(fmt.Sprintf("quantity must be between 1 and %d", upper))
	}

	if err := avService.Validate(property.Type, filters); err != nil {
		return model.Draft{}, err //nolint:wrapcheck
	}

	if property.Currency != "" {
		currency = property.Currency
	}

	draft := model.Draft{
		PropertyID:   property.ID,
		PropertyType: property.Type,
		ItemID:       unit.ID,
		ItemType:     property.Type.ItemType(),
		Quantity:     quantity,
		StartDate:    filters.CheckIn,
		GuestCount:   filters.Guests(property.Type),
		UnitPrice:    pricing.UnitPrice(property.Type, unit),
		Currency:     currency,
	}

	if property.Type == pModel.TypeDining {
		draft.ArrivalTime = filters.Time
		draft.TotalPrice = pricing.LineTotal(property.Type, unit, 1, quantity)

		return draft, nil
	}

	nights := pricing.Nights(filters.CheckIn, filters.CheckOut)

	draft.EndDate = filters.CheckOut
	draft.Nights = &nights
	draft.TotalPrice = pricing.LineTotal(property.Type, unit, nights, quantity)

	return draft, nil
}
