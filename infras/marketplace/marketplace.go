package marketplace

//go:generate mockgen -source=./marketplace.go -destination=./mocks/marketplace_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"staybook/config"
	"staybook/infras/otel"
	bModel "staybook/internal/domains/booking/model"
	pModel "staybook/internal/domains/property/model"
	"staybook/shared/constant"
	"staybook/shared/failure"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultTimeout   = 15 * time.Second
	maxResponseBytes = 4 << 20

	pathProperty     = "/properties/%s"
	pathAvailability = "/properties/%s/availability"
	pathBookings     = "/bookings"
	pathBooking      = "/bookings/%s"

	messageValidation = "validation failed"
)

// AvailabilityRequest is one availability lookup; CheckOut is set for lodging, Time for dining.
type AvailabilityRequest struct {
	PropertyID string
	CheckIn    string
	CheckOut   string
	Time       string
	Guests     int
	Rooms      int
	Locale     string
}

// Marketplace is the remote backend that owns properties, availability and bookings.
type Marketplace interface {
	GetProperty(ctx context.Context, id, locale string) (pModel.Property, error)
	CheckAvailability(ctx context.Context, req AvailabilityRequest) ([]pModel.Unit, error)
	CreateBooking(ctx context.Context, draft bModel.Draft) (bModel.Booking, error)
	GetBooking(ctx context.Context, id string) (bModel.Detail, error)
}

type clientImpl struct {
	hc      *http.Client
	baseURL string
	apiKey  string
	otel    otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Marketplace {
	timeout := defaultTimeout
	if secs := cfg.External.Marketplace.TimeoutSeconds; secs > 0 {
		timeout = time.Duration(secs) * time.Second
	}

	return &clientImpl{
		hc:      &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(cfg.External.Marketplace.BaseURL, "/"),
		apiKey:  cfg.External.Marketplace.APIKey,
		otel:    otel,
	}
}

type propertyPayload struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	PropertyType string        `json:"property_type"`
	Currency     string        `json:"currency"`
	Rooms        []pModel.Unit `json:"rooms"`
	Tables       []pModel.Unit `json:"tables"`
}

type availabilityPayload struct {
	Rooms  []pModel.Unit `json:"rooms"`
	Tables []pModel.Unit `json:"tables"`
	Error  string        `json:"error"`
}

type errorPayload struct {
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
}

func (c *clientImpl) GetProperty(ctx context.Context, id, locale string) (res pModel.Property, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".GetProperty")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := url.Values{}
	if locale != "" {
		params.Set(constant.RequestParamLocale, locale)
	}

	var payload propertyPayload
	if err = c.do(ctx, http.MethodGet, fmt.Sprintf(pathProperty, url.PathEscape(id)), params, nil, &payload); err != nil {
		return res, err
	}

	kind, ok := pModel.ParseType(payload.PropertyType)
	if !ok {
		log.Error().Str("property_type", payload.PropertyType).Str("property_id", id).Msg("unknown property type")

		return res, failure.BadGateway(fmt.Sprintf("unknown property type %q", payload.PropertyType))
	}

	res = pModel.Property{
		ID:       payload.ID,
		Name:     payload.Name,
		Type:     kind,
		Currency: payload.Currency,
		Units:    payload.Rooms,
	}

	if kind == pModel.TypeDining {
		res.Units = payload.Tables
	}

	return res, nil
}

func (c *clientImpl) CheckAvailability(ctx context.Context, req AvailabilityRequest) (res []pModel.Unit, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".CheckAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := url.Values{}
	params.Set(constant.RequestParamCheckIn, req.CheckIn)

	if req.CheckOut != "" {
		params.Set(constant.RequestParamCheckOut, req.CheckOut)
	}

	if req.Time != "" {
		params.Set(constant.RequestParamTime, req.Time)
	}

	params.Set("guests", strconv.Itoa(req.Guests))

	if req.Rooms > 0 {
		params.Set("rooms", strconv.Itoa(req.Rooms))
	}

	if req.Locale != "" {
		params.Set(constant.RequestParamLocale, req.Locale)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, params.Encode())

	var payload availabilityPayload
	if err = c.do(ctx, http.MethodGet, fmt.Sprintf(pathAvailability, url.PathEscape(req.PropertyID)), params, nil, &payload); err != nil {
		return nil, err
	}

	if payload.Error != "" {
		return nil, failure.Unprocessable(payload.Error, nil)
	}

	if payload.Tables != nil {
		return payload.Tables, nil
	}

	if payload.Rooms == nil {
		return []pModel.Unit{}, nil
	}

	return payload.Rooms, nil
}

func (c *clientImpl) CreateBooking(ctx context.Context, draft bModel.Draft) (res bModel.Booking, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".CreateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	body, err := json.Marshal(draft)
	if err != nil {
		return res, fmt.Errorf("failed to encode booking draft: %w", err)
	}

	err = c.do(ctx, http.MethodPost, pathBookings, nil, body, &res)

	return res, err
}

func (c *clientImpl) GetBooking(ctx context.Context, id string) (res bModel.Detail, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".GetBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = c.do(ctx, http.MethodGet, fmt.Sprintf(pathBooking, url.PathEscape(id)), nil, nil, &res)

	return res, err
}

func (c *clientImpl) do(ctx context.Context, method, path string, params url.Values, body []byte, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build marketplace request: %w", err)
	}

	req.Header.Set("Accept", constant.ContentTypeJSON)

	if body != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	if c.apiKey != "" {
		req.Header.Set(constant.RequestHeaderAPIKey, c.apiKey)
	}

	if auth, ok := ctx.Value(constant.ContextKeyAuthorization).(string); ok && auth != "" {
		req.Header.Set(constant.RequestHeaderAuthorization, auth)
	}

	if locale, ok := ctx.Value(constant.ContextKeyLocale).(string); ok && locale != "" {
		req.Header.Set(constant.RequestHeaderAcceptLanguage, locale)
	}

	if requestID, ok := ctx.Value(constant.ContextKeyRequestID).(string); ok && requestID != "" {
		req.Header.Set(constant.RequestHeaderRequestID, requestID)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("marketplace request failed")

		return failure.BadGateway(constant.ResponseErrorCollaboratorFallback)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to read marketplace response")

		return failure.BadGateway(constant.ResponseErrorCollaboratorFallback)
	}

	if len(raw) > maxResponseBytes {
		log.Error().Str("path", path).Int("limit", maxResponseBytes).Msg("marketplace response too large")

		return failure.BadGateway(constant.ResponseErrorCollaboratorFallback)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp.StatusCode, raw, path)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if err = json.Unmarshal(raw, out); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to decode marketplace response")

		return failure.BadGateway(constant.ResponseErrorCollaboratorFallback)
	}

	return nil
}

func statusError(status int, raw []byte, path string) error {
	var payload errorPayload
	_ = json.Unmarshal(raw, &payload)

	message := payload.Message
	if message == "" {
		message = payload.Error
	}

	log.Warn().Int("status", status).Str("path", path).Str("message", message).Msg("marketplace returned an error")

	switch {
	case status == http.StatusUnprocessableEntity:
		if message == "" {
			message = messageValidation
		}

		return failure.Unprocessable(message, payload.Errors)
	case status == http.StatusNotFound:
		if message == "" {
			message = http.StatusText(status)
		}

		return failure.NotFound(message)
	case status == http.StatusConflict:
		if message == "" {
			message = http.StatusText(status)
		}

		return failure.Conflict(message)
	case status >= http.StatusInternalServerError:
		if message == "" {
			message = constant.ResponseErrorCollaboratorFallback
		}

		return failure.BadGateway(message)
	default:
		if message == "" {
			message = http.StatusText(status)
		}

		return failure.BadRequestFromString(message)
	}
}
