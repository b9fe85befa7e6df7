package session

import (
	"net/http"
	"staybook/infras/otel"
	avService "staybook/internal/domains/availability/service"
	seatService "staybook/internal/domains/seating/service"
	"staybook/internal/domains/session/model/dto"
	"staybook/internal/domains/session/service"
	"staybook/shared/constant"
	"staybook/shared/validator"
	"staybook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	registry service.Registry
	otel     otel.Otel
}

func New(registry service.Registry, otel otel.Otel) Handler {
	return Handler{
		registry: registry,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sessions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.OpenSession)

		routerGroup.Route("/{"+constant.RequestParamSessionID+"}", func(sessionGroup chi.Router) {
			sessionGroup.Get("/", handler.GetSession)
			sessionGroup.Post("/availability", handler.CheckAvailability)
			sessionGroup.Delete("/availability", handler.ResetAvailability)
			sessionGroup.Put("/items/{"+constant.RequestParamItemID+"}/quantity", handler.SetQuantity)
			sessionGroup.Post("/items/{"+constant.RequestParamItemID+"}/reserve", handler.Reserve)
			sessionGroup.Get("/seating", handler.GetSeating)
			sessionGroup.Post("/seating/{"+constant.RequestParamLocationType+"}/expand", handler.ExpandSeating)
			sessionGroup.Post("/seating/{"+constant.RequestParamLocationType+"}/book", handler.BookSeating)
		})
	})
}

func (handler *Handler) session(writer http.ResponseWriter, request *http.Request) (service.Session, bool) {
	session, err := handler.registry.Get(chi.URLParam(request, constant.RequestParamSessionID))
	if err != nil {
		response.WithError(writer, err)

		return nil, false
	}

	return session, true
}

// OpenSession loads a property and starts a storefront session for it.
// @Summary Open a storefront session
// @Description Fetch a property from the marketplace and start a session holding its availability, inventory and seating state.
// @Tags Session
// @Accept json
// @Produce json
// @Param X-Device-ID header string false "Anonymous device identifier"
// @Param request body dto.OpenSessionRequest true "Open Session Request"
// @Success 201 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/sessions [post]
func (handler *Handler) OpenSession(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenSession")
	defer scope.End()

	req := dto.OpenSessionRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if req.Locale == "" {
		req.Locale, _ = ctx.Value(constant.ContextKeyLocale).(string)
	}

	session, err := handler.registry.Open(ctx, req.PropertyID, req.Locale)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open session")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, session.View())
}

// GetSession returns the current state of a session.
// @Summary Get a storefront session
// @Tags Session
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{sid} [get]
func (handler *Handler) GetSession(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSession")
	defer scope.End()

	session, ok := handler.session(writer, request)
	if !ok {
		return
	}

	response.WithJSON(writer, http.StatusOK, session.View())
}

// CheckAvailability runs an availability query for the session's property.
// Validation and marketplace failures are reported in availability.error, not as HTTP errors.
// @Summary Check availability
// @Tags Session
// @Accept json
// @Produce json
// @Param sid path string true "Session ID"
// @Param request body avService.Filters true "Availability filters"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{sid}/availability [post]
func (handler *Handler) CheckAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	session, ok := handler.session(writer, request)
	if !ok {
		return
	}

	filters := avService.Filters{}

	if err := validator.Validate(request.Body, &filters); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, session.Check(ctx, filters))
}

// ResetAvailability clears the session's availability query and restores the default inventory.
// @Summary Reset availability
// @Tags Session
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{sid}/availability [delete]
func (handler *Handler) ResetAvailability(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetAvailability")
	defer scope.End()

	session, ok := handler.session(writer, request)
	if !ok {
		return
	}

	response.WithJSON(writer, http.StatusOK, session.Reset())
}

// SetQuantity updates the selected quantity of an inventory row.
// @Summary Set row quantity
// @Tags Session
// @Accept json
// @Produce json
// @Param sid path string true "Session ID"
// @Param item_id path string true "Room or table ID"
// @Param request body dto.SetQuantityRequest true "Quantity"
// @Success 200 {object} response.Data[dto.RowResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{sid}/items/{item_id}/quantity [put]
func (handler *Handler) SetQuantity(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetQuantity")
	defer scope.End()

	session, ok := handler.session(writer, request)
	if !ok {
		return
	}

	req := dto.SetQuantityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	row, err := session.SetQuantity(chi.URLParam(request, constant.RequestParamItemID), req.Quantity)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, row)
}

// Reserve hands the row's selection to the submission flow.
// @Summary Reserve a row
// @Tags Session
// @Produce json
// @Param sid path string true "Session ID"
// @Param item_id path string true "Room or table ID"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{sid}/items/{item_id}/reserve [post]
func (handler *Handler) Reserve(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reserve")
	defer scope.End()

	session, ok := handler.session(writer, request)
	if !ok {
		return
	}

	reservation, err := session.Reserve(chi.URLParam(request, constant.RequestParamItemID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, reservation)
}

// GetSeating lists the seating groups of a dining session.
// @Summary Get seating groups
// @Tags Seating
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {object} response.Data[[]seatService.Group]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{sid}/seating [get]
func (handler *Handler) GetSeating(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSeating")
	defer scope.End()

	session, ok := handler.session(writer, request)
	if !ok {
		return
	}

	groups, err := session.Groups()
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, groups)
}

// ExpandSeating makes one seating group the expanded one.
// @Summary Expand a seating group
// @Tags Seating
// @Produce json
// @Param sid path string true "Session ID"
// @Param location_type path string true "Location type"
// @Success 200 {object} response.Data[seatService.Group]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{sid}/seating/{location_type}/expand [post]
func (handler *Handler) ExpandSeating(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExpandSeating")
	defer scope.End()

	session, ok := handler.session(writer, request)
	if !ok {
		return
	}

	group, err := session.Expand(chi.URLParam(request, constant.RequestParamLocationType))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, group)
}

// BookSeating picks the first table of a group and returns the booking page navigation.
// @Summary Book a seating group
// @Tags Seating
// @Accept json
// @Produce json
// @Param sid path string true "Session ID"
// @Param location_type path string true "Location type"
// @Param request body seatService.BookingRequest false "Guests, date and time; blanks come from the last check"
// @Success 200 {object} response.Data[seatService.Navigation]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{sid}/seating/{location_type}/book [post]
func (handler *Handler) BookSeating(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookSeating")
	defer scope.End()

	session, ok := handler.session(writer, request)
	if !ok {
		return
	}

	req := seatService.BookingRequest{}

	if request.ContentLength != 0 {
		if err := validator.Validate(request.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(writer, err)

			return
		}
	}

	navigation, err := session.Book(chi.URLParam(request, constant.RequestParamLocationType), req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, navigation)
}
