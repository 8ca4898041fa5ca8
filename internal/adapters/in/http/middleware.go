package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"oms/internal/pkg/telemetry"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Observe wraps every request in a server span, records the request counter
// and latency histogram, and writes one structured access log line.
//
// Errors returned by inner handlers are rendered here, so the status that
// gets logged is the one the client receives.
func Observe(logger *slog.Logger, metrics *telemetry.Metrics) echo.MiddlewareFunc {
	tracer := otel.Tracer(telemetry.TracerName)
	logger = logger.With("component", "access")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route := ctx.Path()
			if route == "" {
				route = "unmatched"
			}

			parent := otel.GetTextMapPropagator().Extract(req.Context(), propagation.HeaderCarrier(req.Header))
			spanCtx, span := tracer.Start(parent, req.Method+" "+route,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", req.Method),
					attribute.String("http.route", route),
				),
			)
			defer span.End()
			ctx.SetRequest(req.WithContext(spanCtx))

			start := time.Now()
			if err := next(ctx); err != nil {
				ctx.Error(err)
			}
			elapsed := time.Since(start)

			status := ctx.Response().Status
			span.SetAttributes(attribute.Int("http.response.status_code", status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			metrics.Requests.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()
			metrics.LatencyMS.WithLabelValues(req.Method, route).Observe(float64(elapsed.Microseconds()) / 1000)

			logger.InfoContext(spanCtx, "request",
				"method", req.Method,
				"path", req.URL.Path,
				"route", route,
				"status", status,
				"latency_ms", elapsed.Milliseconds(),
				"request_id", ctx.Response().Header().Get(echo.HeaderXRequestID),
			)
			return nil
		}
	}
}
