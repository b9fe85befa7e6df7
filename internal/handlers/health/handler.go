package health

import (
	"context"
	"net/http"
	"staybook/infras/otel"
	"staybook/infras/postgres"
	"staybook/shared/constant"
	"staybook/transport/http/response"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	checkTimeout = 2 * time.Second
	statusOK     = "ok"
)

// Check reports whether one dependency is reachable.
type Check func(ctx context.Context) error

type Handler struct {
	checks map[string]Check
	otel   otel.Otel
}

func New(db *postgres.Connection, redis *goRedis.Client, otel otel.Otel) Handler {
	return NewWithChecks(map[string]Check{
		"postgres": db.Ping,
		"redis": func(ctx context.Context) error {
			return redis.Ping(ctx).Err()
		},
	}, otel)
}

func NewWithChecks(checks map[string]Check, otel otel.Otel) Handler {
	return Handler{
		checks: checks,
		otel:   otel,
	}
}

// Health pings every dependency of the service.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[map[string]string]
// @Failure 503 {object} response.Message
// @Router /healthz [get]
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	statuses := make(map[string]string, len(handler.checks))
	healthy := true

	for name, check := range handler.checks {
		if err := check(ctx); err != nil {
			log.Error().Err(err).Str("dependency", name).Msg("health check failed")
			scope.TraceError(err)

			healthy = false

			continue
		}

		statuses[name] = statusOK
	}

	if !healthy {
		response.WithUnhealthy(writer)

		return
	}

	response.WithJSON(writer, http.StatusOK, statuses)
}
