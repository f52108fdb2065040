package observability

import (
	"context"
	"encoding/json"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	healthStatusOK          = "ok"
	healthStatusUnavailable = "unavailable"
)

// Span attributes recorded by ReadyHandler.
const (
	attrReady       = "tally.ready"
	attrReadyChecks = "tally.ready.checks"
	attrFailedCheck = "tally.ready.failed_check"
)

// ReadyCheck reports whether a subsystem is ready.
type ReadyCheck func(ctx context.Context) error

// HealthHandler serves liveness at /healthz. It always answers 200 {"status":"ok"}.
func HealthHandler() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		writeHealth(rw, http.StatusOK, healthStatusOK)
	})
}

// ReadyHandler serves readiness at /readyz. Any failing check yields
// 503 {"status":"unavailable"}. The outcome is recorded on the request span,
// and a failing check's error is attached to it.
func ReadyHandler(checks ...ReadyCheck) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, hr *http.Request) {
		span := trace.SpanFromContext(hr.Context())
		span.SetAttributes(attribute.Int(attrReadyChecks, len(checks)))

		for i, check := range checks {
			checkErr := check(hr.Context())
			if checkErr != nil {
				span.RecordError(checkErr)
				span.SetAttributes(attribute.Bool(attrReady, false), attribute.Int(attrFailedCheck, i))
				writeHealth(rw, http.StatusServiceUnavailable, healthStatusUnavailable)

				return
			}
		}

		span.SetAttributes(attribute.Bool(attrReady, true))
		writeHealth(rw, http.StatusOK, healthStatusOK)
	})
}

func writeHealth(rw http.ResponseWriter, code int, status string) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)

	_ = json.NewEncoder(rw).Encode(map[string]string{"status": status})
}
