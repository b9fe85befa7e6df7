package booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"staybook/infras/otel/mocks"
	bookingMocks "staybook/internal/domains/booking/mocks"
	"staybook/internal/domains/booking/model"
	"staybook/internal/domains/booking/model/dto"
	sessionMocks "staybook/internal/domains/session/mocks"
	"staybook/internal/handlers/booking"
	"staybook/shared/constant"
	"staybook/shared/failure"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const sessionID = "0b7d8b5e-2f4c-4d55-9b8e-2f1f6c1c9a10"

func TestHandler_SubmitBooking(t *testing.T) {
	draft := model.Draft{PropertyID: "p1", ItemID: "r1", Quantity: 2, TotalPrice: 800}

	tests := []struct {
		name      string
		body      string
		setupMock func(svc *bookingMocks.MockBooking, registry *sessionMocks.MockRegistry, s *sessionMocks.MockSession)
		code      int
	}{
		{
			name: "created",
			body: `{"session_id":"` + sessionID + `","item_id":"r1"}`,
			setupMock: func(svc *bookingMocks.MockBooking, registry *sessionMocks.MockRegistry, s *sessionMocks.MockSession) {
				registry.EXPECT().Get(sessionID).Return(s, nil)
				s.EXPECT().Draft("r1").Return(draft, nil)
				svc.EXPECT().Submit(gomock.Any(), "device-1", draft).Return(dto.SubmitBookingResponse{
					Booking:    model.Booking{ID: "b1"},
					TotalPrice: 800,
				}, nil)
			},
			code: http.StatusCreated,
		},
		{
			name:      "session id must be a uuid",
			body:      `{"session_id":"s1","item_id":"r1"}`,
			setupMock: func(_ *bookingMocks.MockBooking, _ *sessionMocks.MockRegistry, _ *sessionMocks.MockSession) {},
			code:      http.StatusBadRequest,
		},
		{
			name: "nothing selected",
			body: `{"session_id":"` + sessionID + `","item_id":"r1"}`,
			setupMock: func(_ *bookingMocks.MockBooking, registry *sessionMocks.MockRegistry, s *sessionMocks.MockSession) {
				registry.EXPECT().Get(sessionID).Return(s, nil)
				s.EXPECT().Draft("r1").Return(model.Draft{}, failure.BadRequestFromString("quantity must be between 1 and 5"))
			},
			code: http.StatusBadRequest,
		},
		{
			name: "marketplace rejects the draft",
			body: `{"session_id":"` + sessionID + `","item_id":"r1"}`,
			setupMock: func(svc *bookingMocks.MockBooking, registry *sessionMocks.MockRegistry, s *sessionMocks.MockSession) {
				registry.EXPECT().Get(sessionID).Return(s, nil)
				s.EXPECT().Draft("r1").Return(draft, nil)
				svc.EXPECT().Submit(gomock.Any(), "device-1", draft).
					Return(dto.SubmitBookingResponse{}, failure.Unprocessable("validation failed", map[string][]string{"start_date": {"in the past"}}))
			},
			code: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			svc := bookingMocks.NewMockBooking(ctrl)
			registry := sessionMocks.NewMockRegistry(ctrl)
			mockSession := sessionMocks.NewMockSession(ctrl)
			tt.setupMock(svc, registry, mockSession)

			handler := booking.New(svc, registry, mocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
			req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyDeviceID, "device-1"))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)

			if tt.code == http.StatusUnprocessableEntity {
				assert.Contains(t, rec.Body.String(), `"fields":{"start_date":["in the past"]}`)
			}
		})
	}
}

func TestHandler_GetSummary(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := bookingMocks.NewMockBooking(ctrl)
	handler := booking.New(svc, sessionMocks.NewMockRegistry(ctrl), mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	svc.EXPECT().
		Summary(gomock.Any(), "b1", model.Dates{CheckIn: "2024-01-01", CheckOut: "2024-01-05"}).
		Return(&dto.SummaryResponse{Total: 800, Guests: "2 guests · 2 rooms"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/bookings/b1/summary?checkin=2024-01-01&checkout=2024-01-05", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":800`)
}
