package observability

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	attrEndpoint     = "tally.diagnostics.endpoint"
	attrResponseSize = "http.response.body.size"
)

// diagnosticsWriter tracks the status code and body size of a diagnostics response.
type diagnosticsWriter struct {
	http.ResponseWriter

	code  int
	bytes int
}

func (dw *diagnosticsWriter) WriteHeader(code int) {
	if dw.code == 0 {
		dw.code = code
	}

	dw.ResponseWriter.WriteHeader(code)
}

func (dw *diagnosticsWriter) Write(buf []byte) (int, error) {
	if dw.code == 0 {
		dw.code = http.StatusOK
	}

	n, err := dw.ResponseWriter.Write(buf)
	dw.bytes += n

	return n, err //nolint:wrapcheck // passthrough to net/http.
}

// HTTPMiddleware wraps the diagnostics mux in a server span named
// "METHOD /path". Handlers below it, such as ReadyHandler, add their own
// attributes through the request context.
func HTTPMiddleware(tracer trace.Tracer, next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, hr *http.Request) {
		parentCtx := otel.GetTextMapPropagator().Extract(hr.Context(), propagation.HeaderCarrier(hr.Header))

		ctx, span := tracer.Start(parentCtx, hr.Method+" "+hr.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				semconv.HTTPRequestMethodKey.String(hr.Method),
				attribute.String(attrEndpoint, hr.URL.Path),
			),
		)
		defer span.End()

		dw := &diagnosticsWriter{ResponseWriter: rw}
		next.ServeHTTP(dw, hr.WithContext(ctx))

		if dw.code == 0 {
			dw.code = http.StatusOK
		}

		span.SetAttributes(
			semconv.HTTPResponseStatusCode(dw.code),
			attribute.Int(attrResponseSize, dw.bytes),
		)

		if dw.code >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(dw.code))
		}
	})
}
