package middleware

import (
	"context"
	"fmt"
	"net/http"
	"staybook/config"
	"staybook/infras/otel"
	"staybook/shared/cache"
	"staybook/shared/constant"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	RequestContext(next http.Handler) http.Handler
	Tracing(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

// RequestContext moves the request id, device id, locale and bearer token of the incoming
// request into the context, minting a request id when the caller sent none.
func (a *appMiddleware) RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constant.RequestHeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(constant.RequestHeaderRequestID, requestID)

		ctx := context.WithValue(r.Context(), constant.ContextKeyRequestID, requestID)

		if deviceID := strings.TrimSpace(r.Header.Get(constant.RequestHeaderDeviceID)); deviceID != "" {
			ctx = context.WithValue(ctx, constant.ContextKeyDeviceID, deviceID)
		}

		if auth := r.Header.Get(constant.RequestHeaderAuthorization); auth != "" {
			ctx = context.WithValue(ctx, constant.ContextKeyAuthorization, auth)
		}

		ctx = context.WithValue(ctx, constant.ContextKeyLocale, a.locale(r))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// locale takes the first language tag of Accept-Language, e.g. "fr" from "fr-CH, fr;q=0.9".
func (a *appMiddleware) locale(r *http.Request) string {
	header := r.Header.Get(constant.RequestHeaderAcceptLanguage)

	tag, _, _ := strings.Cut(header, ",")
	tag, _, _ = strings.Cut(tag, ";")
	tag, _, _ = strings.Cut(strings.TrimSpace(tag), "-")

	if tag == "" || tag == constant.Asterix {
		return a.config.App.DefaultLocale
	}

	return strings.ToLower(tag)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, fmt.Sprintf("%s %s", r.Method, r.URL.Path))
		defer scope.End()

		requestID, _ := ctx.Value(constant.ContextKeyRequestID).(string)

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": a.getUA(r),
			"http.host":       r.Host,
			"http.source":     a.getClientIP(r),
			"http.request_id": requestID,
		})

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r.WithContext(ctx))

		attributes := map[string]any{
			"http.status_code": recorder.status,
		}

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			attributes["http.route"] = rctx.RoutePattern()
		}

		scope.SetAttributes(attributes)

		if recorder.status >= http.StatusInternalServerError {
			scope.TraceError(fmt.Errorf("request failed with status %d", recorder.status))
		}
	})
}
