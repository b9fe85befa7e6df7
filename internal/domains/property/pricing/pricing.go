// Package pricing holds the only price and stay-length arithmetic of the storefront.
// Every consumer (selection rows, drafts, summaries) derives its numbers from here.
package pricing

import (
	"math"
	"staybook/internal/domains/property/model"
	"staybook/shared/constant"
	"strings"
	"time"
)

// DefaultMaxQuantity is the UI ceiling on selectable units per row, independent of inventory depth.
const DefaultMaxQuantity = 10

const day = constant.HoursPerDay * time.Hour

var dateLayouts = []string{constant.DayFormat, time.RFC3339}

// ParseDate parses an ISO calendar day (or RFC3339 timestamp) in UTC.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), true
		}
	}

	return time.Time{}, false
}

// Nights returns the number of nights between two ISO dates, never less than 1.
// Absent or unparsable input yields 1.
func Nights(checkIn, checkOut string) int {
	in, ok := ParseDate(checkIn)
	if !ok {
		return 1
	}

	out, ok := ParseDate(checkOut)
	if !ok {
		return 1
	}

	return NightsBetween(in, out)
}

// NightsBetween is Nights over parsed times; zero times yield 1.
func NightsBetween(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 1
	}

	nights := int(math.Ceil(float64(checkOut.Sub(checkIn)) / float64(day)))

	return max(nights, 1)
}

// UnitPrice is the nightly rate for rooms and the flat reservation fee (default 0) for tables.
func UnitPrice(kind model.Type, unit model.Unit) float64 {
	if kind == model.TypeDining {
		if unit.ReservationFee == nil {
			return 0
		}

		return *unit.ReservationFee
	}

	return unit.PricePerNight
}

// TotalForStay is the price of one unit for the whole stay; dining ignores nights.
func TotalForStay(kind model.Type, unit model.Unit, nights int) float64 {
	if kind == model.TypeDining {
		return UnitPrice(kind, unit)
	}

	return UnitPrice(kind, unit) * float64(max(nights, 1))
}

// LineTotal is TotalForStay multiplied by quantity.
func LineTotal(kind model.Type, unit model.Unit, nights, quantity int) float64 {
	return TotalForStay(kind, unit, nights) * float64(quantity)
}

// StayTotal recomputes a lodging total from already-known figures.
func StayTotal(quantity, nights int, unitPrice float64) float64 {
	return float64(quantity) * float64(max(nights, 1)) * unitPrice
}

// MaxSelectable caps the selectable quantity at min(totalAvailable, limit).
// A non-positive limit falls back to DefaultMaxQuantity.
func MaxSelectable(totalAvailable, limit int) int {
	if limit <= 0 {
		limit = DefaultMaxQuantity
	}

	return max(min(totalAvailable, limit), 0)
}
