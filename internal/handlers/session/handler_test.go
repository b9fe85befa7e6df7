package session_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"staybook/infras/otel/mocks"
	avService "staybook/internal/domains/availability/service"
	invService "staybook/internal/domains/inventory/service"
	pModel "staybook/internal/domains/property/model"
	seatService "staybook/internal/domains/seating/service"
	"staybook/internal/domains/session/model/dto"
	sessionMocks "staybook/internal/domains/session/mocks"
	"staybook/internal/handlers/session"
	"staybook/shared/failure"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *sessionMocks.MockRegistry, *sessionMocks.MockSession) {
	t.Helper()

	ctrl := gomock.NewController(t)
	registry := sessionMocks.NewMockRegistry(ctrl)
	mockSession := sessionMocks.NewMockSession(ctrl)

	handler := session.New(registry, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, registry, mockSession
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_OpenSession(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(registry *sessionMocks.MockRegistry, s *sessionMocks.MockSession)
		code      int
	}{
		{
			name: "opened",
			body: `{"property_id":"p1","locale":"fr"}`,
			setupMock: func(registry *sessionMocks.MockRegistry, s *sessionMocks.MockSession) {
				registry.EXPECT().Open(gomock.Any(), "p1", "fr").Return(s, nil)
				s.EXPECT().View().Return(dto.SessionResponse{ID: "s1", Property: dto.PropertyResponse{ID: "p1", Type: pModel.TypeLodging}})
			},
			code: http.StatusCreated,
		},
		{
			name:      "missing property",
			body:      `{"locale":"fr"}`,
			setupMock: func(_ *sessionMocks.MockRegistry, _ *sessionMocks.MockSession) {},
			code:      http.StatusBadRequest,
		},
		{
			name:      "malformed body",
			body:      `{"property_id":`,
			setupMock: func(_ *sessionMocks.MockRegistry, _ *sessionMocks.MockSession) {},
			code:      http.StatusBadRequest,
		},
		{
			name: "marketplace down",
			body: `{"property_id":"p1"}`,
			setupMock: func(registry *sessionMocks.MockRegistry, _ *sessionMocks.MockSession) {
				registry.EXPECT().Open(gomock.Any(), "p1", "").Return(nil, failure.BadGateway("marketplace unavailable"))
			},
			code: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, registry, mockSession := newRouter(t)
			tt.setupMock(registry, mockSession)

			rec := serve(router, http.MethodPost, "/sessions", tt.body)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandler_CheckAvailability(t *testing.T) {
	router, registry, mockSession := newRouter(t)

	registry.EXPECT().Get("s1").Return(mockSession, nil)
	mockSession.EXPECT().
		Check(gomock.Any(), avService.Filters{CheckIn: "2024-01-01", CheckOut: "2024-01-05", Adults: 2}).
		Return(dto.SessionResponse{ID: "s1", Nights: 4, Availability: avService.State{HasQueried: true, Result: []pModel.Unit{}}})

	rec := serve(router, http.MethodPost, "/sessions/s1/availability", `{"checkin":"2024-01-01","checkout":"2024-01-05","adults":2}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.SessionResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 4, body.Data.Nights)
	assert.True(t, body.Data.Availability.HasQueried)
}

func TestHandler_UnknownSession(t *testing.T) {
	router, registry, _ := newRouter(t)

	registry.EXPECT().Get("gone").Return(nil, failure.NotFound("session"))

	rec := serve(router, http.MethodGet, "/sessions/gone", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_SetQuantity(t *testing.T) {
	router, registry, mockSession := newRouter(t)

	registry.EXPECT().Get("s1").Return(mockSession, nil).Times(2)
	mockSession.EXPECT().SetQuantity("r1", 2).Return(invService.RowView{Quantity: 2, LineTotal: 800}, nil)

	rec := serve(router, http.MethodPut, "/sessions/s1/items/r1/quantity", `{"quantity":2}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"line_total":800`)

	rec = serve(router, http.MethodPut, "/sessions/s1/items/r1/quantity", `{"quantity":-1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_BookSeating(t *testing.T) {
	router, registry, mockSession := newRouter(t)

	registry.EXPECT().Get("s1").Return(mockSession, nil).Times(3)
	mockSession.EXPECT().
		Book("patio", seatService.BookingRequest{Guests: 2, Time: "19:30"}).
		Return(seatService.Navigation{PropertyID: "p2", ItemID: "t1", ItemType: pModel.ItemTypeTable}, nil)
	mockSession.EXPECT().
		Book("patio", seatService.BookingRequest{}).
		Return(seatService.Navigation{PropertyID: "p2", ItemID: "t1", ItemType: pModel.ItemTypeTable}, nil)

	rec := serve(router, http.MethodPost, "/sessions/s1/seating/patio/book", `{"guests":2,"time":"19:30"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodPost, "/sessions/s1/seating/patio/book", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodPost, "/sessions/s1/seating/patio/book", `{"time":"7pm"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
