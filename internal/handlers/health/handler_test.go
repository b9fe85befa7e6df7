package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"staybook/infras/otel/mocks"
	"staybook/internal/handlers/health"
	"staybook/shared/constant"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler_Health(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name     string
		checks   map[string]health.Check
		code     int
		contains string
	}{
		{
			name:     "all up",
			checks:   map[string]health.Check{"postgres": up, "redis": up},
			code:     http.StatusOK,
			contains: `"postgres":"ok"`,
		},
		{
			name:     "one down",
			checks:   map[string]health.Check{"postgres": up, "redis": down},
			code:     http.StatusServiceUnavailable,
			contains: constant.ResponseErrorUnhealthy,
		},
		{
			name:     "no checks",
			checks:   map[string]health.Check{},
			code:     http.StatusOK,
			contains: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := health.NewWithChecks(tt.checks, mocks.NewOtel())

			rec := httptest.NewRecorder()
			handler.Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}
