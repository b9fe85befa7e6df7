package marketplace_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"staybook/config"
	"staybook/infras/marketplace"
	otelMocks "staybook/infras/otel/mocks"
	bModel "staybook/internal/domains/booking/model"
	pModel "staybook/internal/domains/property/model"
	"staybook/shared/constant"
	"staybook/shared/failure"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) marketplace.Marketplace {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.External.Marketplace.BaseURL = server.URL + "/"
	cfg.External.Marketplace.APIKey = "key-1"
	cfg.External.Marketplace.TimeoutSeconds = 2

	return marketplace.New(cfg, otelMocks.NewOtel())
}

func TestGetProperty(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected pModel.Property
	}{
		{
			name: "hotel uses rooms",
			body: `{"id":"p1","name":"Seaside","property_type":"hotel","currency":"EUR","rooms":[{"id":"r1","price_per_night":100,"total_available":3}],"tables":[]}`,
			expected: pModel.Property{
				ID: "p1", Name: "Seaside", Type: pModel.TypeLodging, Currency: "EUR",
				Units: []pModel.Unit{{ID: "r1", PricePerNight: 100, TotalAvailable: 3}},
			},
		},
		{
			name: "dining uses tables",
			body: `{"id":"p2","name":"Bistro","property_type":"DINING","currency":"USD","tables":[{"id":"t1","location_type":"patio","total_available":1}]}`,
			expected: pModel.Property{
				ID: "p2", Name: "Bistro", Type: pModel.TypeDining, Currency: "USD",
				Units: []pModel.Unit{{ID: "t1", LocationType: "patio", TotalAvailable: 1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/properties/"+tt.expected.ID, r.URL.Path)
				assert.Equal(t, "fr", r.URL.Query().Get("locale"))
				assert.Equal(t, "key-1", r.Header.Get(constant.RequestHeaderAPIKey))

				_, _ = w.Write([]byte(tt.body))
			})

			got, err := client.GetProperty(context.Background(), tt.expected.ID, "fr")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetProperty_UnknownType(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"p1","property_type":"spa"}`))
	})

	_, err := client.GetProperty(context.Background(), "p1", "")

	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
}

func TestCheckAvailability(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		assert.Equal(t, "/properties/p1/availability", r.URL.Path)
		assert.Equal(t, "2024-01-01", query.Get("checkin"))
		assert.Equal(t, "2024-01-05", query.Get("checkout"))
		assert.Equal(t, "3", query.Get("guests"))
		assert.Equal(t, "2", query.Get("rooms"))
		assert.Empty(t, query.Get("time"))
		assert.Equal(t, "Bearer abc", r.Header.Get(constant.RequestHeaderAuthorization))

		_, _ = w.Write([]byte(`{"rooms":[{"id":"r2","total_available":1}]}`))
	})

	ctx := context.WithValue(context.Background(), constant.ContextKeyAuthorization, "Bearer abc")

	units, err := client.CheckAvailability(ctx, marketplace.AvailabilityRequest{
		PropertyID: "p1",
		CheckIn:    "2024-01-01",
		CheckOut:   "2024-01-05",
		Guests:     3,
		Rooms:      2,
	})

	require.NoError(t, err)
	assert.Equal(t, []pModel.Unit{{ID: "r2", TotalAvailable: 1}}, units)
}

func TestCheckAvailability_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		code    int
		message string
	}{
		{name: "error payload", status: http.StatusOK, body: `{"error":"fully booked"}`, code: http.StatusUnprocessableEntity, message: "fully booked"},
		{name: "server error with message", status: http.StatusInternalServerError, body: `{"message":"db down"}`, code: http.StatusBadGateway, message: "db down"},
		{name: "server error without body", status: http.StatusServiceUnavailable, body: ``, code: http.StatusBadGateway, message: constant.ResponseErrorCollaboratorFallback},
		{name: "not found", status: http.StatusNotFound, body: `{"message":"no such property"}`, code: http.StatusNotFound, message: "no such property"},
		{name: "conflict", status: http.StatusConflict, body: `{"message":"room already taken"}`, code: http.StatusConflict, message: "room already taken"},
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"bad guests"}`, code: http.StatusBadRequest, message: "bad guests"},
		{name: "broken json", status: http.StatusOK, body: `{"rooms":`, code: http.StatusBadGateway, message: constant.ResponseErrorCollaboratorFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			units, err := client.CheckAvailability(context.Background(), marketplace.AvailabilityRequest{PropertyID: "p1", CheckIn: "2024-01-01", Time: "19:00"})

			require.Error(t, err)
			assert.Nil(t, units)
			assert.Equal(t, tt.code, failure.GetCode(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestCheckAvailability_OversizedResponse(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"rooms":[],"padding":"` + strings.Repeat("x", 5<<20) + `"}`))
	})

	units, err := client.CheckAvailability(context.Background(), marketplace.AvailabilityRequest{PropertyID: "p1", CheckIn: "2024-01-01", CheckOut: "2024-01-02"})

	require.Error(t, err)
	assert.Nil(t, units)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
}

func TestCreateBooking(t *testing.T) {
	nights := 4
	draft := bModel.Draft{
		PropertyID: "p1", ItemID: "r1", ItemType: pModel.ItemTypeRoom, Quantity: 2,
		StartDate: "2024-01-01", EndDate: "2024-01-05", GuestCount: 3, Nights: &nights,
		UnitPrice: 100, TotalPrice: 800, Currency: "USD",
	}

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, constant.ContentTypeJSON, r.Header.Get(constant.RequestHeaderContentType))

		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, 800.0, got["total_price"])
		assert.Equal(t, 4.0, got["nights"])
		assert.NotContains(t, got, "arrival_time")

		_, _ = w.Write([]byte(`{"id":"b1","booking_reference":"REF-1","items":[{"id":"r1","item_type":"room","quantity":2}],"start_date":"2024-01-01","end_date":"2024-01-05","total_price":780}`))
	})

	booking, err := client.CreateBooking(context.Background(), draft)

	require.NoError(t, err)
	assert.Equal(t, "b1", booking.ID)
	assert.Equal(t, "REF-1", booking.Reference)
	require.NotNil(t, booking.TotalPrice)
	assert.Equal(t, 780.0, *booking.TotalPrice)
}

func TestCreateBooking_ValidationErrors(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors":{"guest_count":["must be at least 1"]}}`))
	})

	_, err := client.CreateBooking(context.Background(), bModel.Draft{PropertyID: "p1"})

	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	assert.Equal(t, map[string][]string{"guest_count": {"must be at least 1"}}, failure.GetFields(err))
	assert.Equal(t, "validation failed", err.Error())
}

func TestGetBooking(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/b1", r.URL.Path)

		_, _ = w.Write([]byte(`{"property":{"id":"p1","property_type":"LODGING"},"item":{"id":"r1","title":"Double"},"summary":{"quantity":2,"unit_price":100,"breakdown":{"total":750}}}`))
	})

	detail, err := client.GetBooking(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, pModel.TypeLodging, detail.Property.Type)
	assert.Equal(t, 2, detail.Summary.Quantity)
	require.NotNil(t, detail.Summary.Breakdown.Total)
	assert.Equal(t, 750.0, *detail.Summary.Breakdown.Total)
}

func TestTransportFailure(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.Marketplace.BaseURL = "http://127.0.0.1:1"

	client := marketplace.New(cfg, otelMocks.NewOtel())

	_, err := client.GetBooking(context.Background(), "b1")

	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	assert.Equal(t, constant.ResponseErrorCollaboratorFallback, err.Error())
}
