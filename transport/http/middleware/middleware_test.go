package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"staybook/config"
	"staybook/infras/otel/mocks"
	"staybook/shared/cache"
	cacheMocks "staybook/shared/cache/mocks"
	"staybook/shared/constant"
	"staybook/transport/http/middleware"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.DefaultLocale = "en"
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRequestContext(t *testing.T) {
	tests := []struct {
		name           string
		headers        map[string]string
		expectedLocale string
		expectedDevice string
		keepsRequestID bool
	}{
		{
			name:           "defaults",
			expectedLocale: "en",
		},
		{
			name: "headers forwarded",
			headers: map[string]string{
				constant.RequestHeaderDeviceID:       "device-1",
				constant.RequestHeaderAcceptLanguage: "fr-CH, fr;q=0.9, en;q=0.8",
				constant.RequestHeaderRequestID:      "req-1",
			},
			expectedLocale: "fr",
			expectedDevice: "device-1",
			keepsRequestID: true,
		},
		{
			name:           "wildcard language",
			headers:        map[string]string{constant.RequestHeaderAcceptLanguage: "*"},
			expectedLocale: "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := middleware.NewAppMiddleware(mocks.NewOtel(), newConfig(), nil)

			var ctx context.Context

			handler := mw.RequestContext(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				ctx = r.Context()
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/receipts", nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			requestID, _ := ctx.Value(constant.ContextKeyRequestID).(string)
			deviceID, _ := ctx.Value(constant.ContextKeyDeviceID).(string)

			assert.NotEmpty(t, requestID)
			assert.Equal(t, requestID, rec.Header().Get(constant.RequestHeaderRequestID))
			assert.Equal(t, tt.expectedLocale, ctx.Value(constant.ContextKeyLocale))
			assert.Equal(t, tt.expectedDevice, deviceID)

			if tt.keepsRequestID {
				assert.Equal(t, "req-1", requestID)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(c *cacheMocks.MockRedisCache)
		code      int
	}{
		{
			name: "first request",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "limiter:device:device-1", gomock.Any()).Return(cache.Nil)
				c.EXPECT().Save(gomock.Any(), "limiter:device:device-1", 1, 60).Return(nil)
			},
			code: http.StatusOK,
		},
		{
			name: "limit exceeded",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*int) = 2

						return nil
					})
			},
			code: http.StatusTooManyRequests,
		},
		{
			name: "cache down lets the request through",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			code: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(mockCache)

			mw := middleware.NewAppMiddleware(mocks.NewOtel(), newConfig(), mockCache)
			handler := mw.RequestContext(mw.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})))

			req := httptest.NewRequest(http.MethodGet, "/v1/receipts", nil)
			req.Header.Set(constant.RequestHeaderDeviceID, "device-1")

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
