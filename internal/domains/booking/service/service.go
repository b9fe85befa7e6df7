package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"staybook/infras/marketplace"
	"staybook/infras/otel"
	"staybook/internal/domains/booking/model"
	"staybook/internal/domains/booking/model/dto"
	"staybook/internal/domains/property/pricing"
	receiptDto "staybook/internal/domains/receipt/model/dto"
	receiptService "staybook/internal/domains/receipt/service"
	"staybook/shared/constant"
	"staybook/shared/failure"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Submit(ctx context.Context, deviceID string, draft model.Draft) (dto.SubmitBookingResponse, error)
	Summary(ctx context.Context, id string, dates model.Dates) (*dto.SummaryResponse, error)
}

type serviceImpl struct {
	marketplace marketplace.Marketplace
	receipts    receiptService.Receipt
	otel        otel.Otel
}

func New(marketplace marketplace.Marketplace, receipts receiptService.Receipt, otel otel.Otel) Booking {
	return &serviceImpl{
		marketplace: marketplace,
		receipts:    receipts,
		otel:        otel,
	}
}

// Submit posts draft to the marketplace and keeps a scrubbed receipt of the result.
// The server's total replaces the local estimate whenever it is present. A receipt that
// cannot be stored does not fail an already created booking.
func (s *serviceImpl) Submit(ctx context.Context, deviceID string, draft model.Draft) (res dto.SubmitBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if deviceID == "" {
		return res, failure.MissingDeviceError
	}

	scope.SetAttributes(map[string]any{
		"property.id":    draft.PropertyID,
		"booking.item":   draft.ItemID,
		"booking.qty":    draft.Quantity,
		"booking.amount": draft.TotalPrice,
	})

	booking, err := s.marketplace.CreateBooking(ctx, draft)
	if err != nil {
		log.Error().Err(err).Str("property_id", draft.PropertyID).Msg("failed to create booking")

		return res, err //nolint:wrapcheck
	}

	res = dto.SubmitBookingResponse{
		Booking:    booking,
		TotalPrice: draft.TotalPrice,
		Estimated:  true,
		Currency:   draft.Currency,
	}

	if booking.TotalPrice != nil {
		res.TotalPrice = *booking.TotalPrice
		res.Estimated = false
	}

	if booking.Currency != "" {
		res.Currency = booking.Currency
	}

	receipt := scrub(booking, draft)

	if rerr := s.receipts.Upsert(ctx, deviceID, receipt); rerr != nil {
		log.Error().Err(rerr).Str("booking_id", booking.ID).Msg("failed to store booking receipt")

		return res, nil
	}

	res.Receipt = &receipt

	return res, nil
}

// scrub keeps only the non-identifying fields of a created booking.
func scrub(booking model.Booking, draft model.Draft) receiptDto.SaveReceiptRequest {
	receipt := receiptDto.SaveReceiptRequest{
		ID:          booking.ID,
		Reference:   booking.Reference,
		Type:        string(draft.PropertyType),
		StartDate:   canonicalDay(booking.StartDate, draft.StartDate),
		EndDate:     canonicalDay(booking.EndDate, draft.EndDate),
		ArrivalTime: canonicalClock(booking.ArrivalTime, draft.ArrivalTime),
	}

	if receipt.Reference == "" {
		receipt.Reference = booking.ID
	}

	return receipt
}

// canonicalDay returns the first value that parses as a date, formatted as yyyy-MM-dd.
func canonicalDay(values ...string) string {
	for _, value := range values {
		if parsed, ok := pricing.ParseDate(value); ok {
			return parsed.Format(constant.DayFormat)
		}
	}

	return ""
}

var clockLayouts = []string{constant.ClockFormat, time.TimeOnly, time.RFC3339}

// canonicalClock returns the first value that parses as a time of day, formatted as HH:MM.
func canonicalClock(values ...string) string {
	for _, value := range values {
		value = strings.TrimSpace(value)

		for _, layout := range clockLayouts {
			if parsed, err := time.Parse(layout, value); err == nil {
				return parsed.Format(constant.ClockFormat)
			}
		}
	}

	return ""
}

func (s *serviceImpl) Summary(ctx context.Context, id string, dates model.Dates) (res *dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingSummary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	detail, err := s.marketplace.GetBooking(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking detail")

		return nil, fmt.Errorf("failed to get booking detail: %w", err)
	}

	return Summarize(&detail, dates), nil
}
