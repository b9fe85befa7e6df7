package service

import (
	"fmt"
	"staybook/internal/domains/booking/model"
	"staybook/internal/domains/booking/model/dto"
	pModel "staybook/internal/domains/property/model"
	"staybook/internal/domains/property/pricing"
	"strings"
)

// Summarize derives the displayed breakdown of a booking. Lodging totals prefer the server's
// breakdown total over quantity x nights x unit price; dining lines and total are the server's.
// Taxes are always zero. A nil detail yields a nil summary.
func Summarize(detail *model.Detail, dates model.Dates) *dto.SummaryResponse {
	if detail == nil {
		return nil
	}

	summary := detail.Summary
	res := &dto.SummaryResponse{
		PropertyName: detail.Property.Name,
		PropertyType: detail.Property.Type,
		ItemTitle:    detail.Item.Title,
		Currency:     detail.Property.Currency,
		Quantity:     summary.Quantity,
		UnitPrice:    summary.UnitPrice,
		CheckIn:      firstOf(dates.CheckIn, summary.StartDate),
		Guests:       guestLabel(detail.Property.Type, summary),
	}

	if detail.Property.Type == pModel.TypeDining {
		res.Time = firstOf(dates.Time, summary.ArrivalTime)
		res.Lines = summary.Breakdown.Lines

		if summary.TotalPrice != nil {
			res.Total = *summary.TotalPrice
			res.ServerTotal = true
		}

		return res
	}

	res.CheckOut = firstOf(dates.CheckOut, summary.EndDate)

	nights := pricing.Nights(res.CheckIn, res.CheckOut)
	res.Nights = &nights

	if summary.Breakdown.Total != nil {
		res.Total = *summary.Breakdown.Total
		res.ServerTotal = true
	} else {
		res.Total = pricing.StayTotal(summary.Quantity, nights, summary.UnitPrice)
	}

	return res
}

func guestLabel(kind pModel.Type, summary model.DetailSummary) string {
	guests := summary.Quantity
	if summary.Guests != nil {
		guests = *summary.Guests
	}

	var b strings.Builder

	b.WriteString(plural(guests, "guest"))

	if kind == pModel.TypeLodging && summary.Quantity > 1 {
		b.WriteString(" · ")
		b.WriteString(plural(summary.Quantity, "room"))
	}

	return b.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}

	return fmt.Sprintf("%d %ss", n, noun)
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
