package booking

import (
	"net/http"
	"staybook/infras/otel"
	"staybook/internal/domains/booking/model"
	"staybook/internal/domains/booking/model/dto"
	"staybook/internal/domains/booking/service"
	sessionService "staybook/internal/domains/session/service"
	"staybook/shared"
	"staybook/shared/constant"
	"staybook/shared/logger"
	"staybook/shared/validator"
	"staybook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  service.Booking
	sessions sessionService.Registry
	otel     otel.Otel
}

func New(service service.Booking, sessions sessionService.Registry, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		sessions: sessions,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SubmitBooking)
		routerGroup.Get("/{"+constant.RequestParamID+"}/summary", handler.GetSummary)
	})
}

// SubmitBooking books the selected quantity of one session row.
// @Summary Submit a booking
// @Description Build the booking draft from the session's last availability check and selected quantity, create it on the marketplace and keep a receipt for the device.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "Anonymous device identifier"
// @Param request body dto.SubmitBookingRequest true "Submit Booking Request"
// @Success 201 {object} response.Data[dto.SubmitBookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) SubmitBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	req := dto.SubmitBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	session, err := handler.sessions.Get(req.SessionID)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	draft, err := session.Draft(req.ItemID)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Submit(ctx, shared.DeviceID(ctx), draft)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to submit booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created " + res.Booking.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetSummary returns the price breakdown of a booking.
// @Summary Get a booking summary
// @Description Derive the displayed totals of a booking; lodging totals prefer the marketplace breakdown, dining totals are the marketplace's.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Param checkin query string false "Check-in date (YYYY-MM-DD)"
// @Param checkout query string false "Check-out date (YYYY-MM-DD)"
// @Param time query string false "Arrival time (HH:MM)"
// @Success 200 {object} response.Data[dto.SummaryResponse]
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings/{id}/summary [get]
func (handler *Handler) GetSummary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	query := request.URL.Query()
	dates := model.Dates{
		CheckIn:  query.Get(constant.RequestParamCheckIn),
		CheckOut: query.Get(constant.RequestParamCheckOut),
		Time:     query.Get(constant.RequestParamTime),
	}

	summary, err := handler.service.Summary(ctx, chi.URLParam(request, constant.RequestParamID), dates)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to get booking summary")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, summary)
}
