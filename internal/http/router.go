package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"localflavor/internal/service"
)

const headerRequestID = "X-Request-ID"

func NewRouter(svc *service.Service, serviceName string) *gin.Engine {
	if strings.TrimSpace(serviceName) == "" {
		serviceName = "localflavor-api"
	}

	router := gin.New()
	h := &Handler{service: svc}
	router.Use(
		requestid.New(requestid.WithGenerator(newRequestID)),
		panicRecoveryMiddleware(slog.Default()),
		otelgin.Middleware(serviceName),
		requestObservabilityMiddleware(slog.Default()),
	)
	router.NoRoute(h.notFound)

	v1 := router.Group("/api/v1")
	v1.GET("/health", h.health)

	protected := v1.Group("")
	if svc.AuthEnabled() {
		protected.Use(h.requireAuth())
	}
	protected.GET("/validators", h.listValidators)
	protected.POST("/validators/:name", h.validate)
	protected.POST("/validate", h.validateBatch)
	protected.GET("/regions/:region/subdivisions", h.listSubdivisions)

	return router
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func requestObservabilityMiddleware(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	meter := otel.Meter("localflavor/http")
	requestCounter, err := meter.Int64Counter(
		"localflavor.http.server.request.count",
		metric.WithDescription("HTTP requests handled by the API"),
	)
	if err != nil {
		logger.Error("create request counter", "error", err)
	}
	requestDuration, err := meter.Float64Histogram(
		"localflavor.http.server.request.duration",
		metric.WithUnit("ms"),
		metric.WithDescription("HTTP request duration in milliseconds"),
	)
	if err != nil {
		logger.Error("create request duration histogram", "error", err)
	}
	internalErrorCounter, err := meter.Int64Counter(
		"localflavor.http.server.internal_error.count",
		metric.WithDescription("HTTP requests that ended in a 5xx response"),
	)
	if err != nil {
		logger.Error("create internal error counter", "error", err)
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		durationMs := float64(time.Since(start)) / float64(time.Millisecond)
		ctx := c.Request.Context()

		attrs := []attribute.KeyValue{
			attribute.String("http.request.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.Int("http.response.status_code", status),
		}
		if requestCounter != nil {
			requestCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
		}
		if requestDuration != nil {
			requestDuration.Record(ctx, durationMs, metric.WithAttributes(attrs...))
		}

		logAttrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", route,
			"status", status,
			"duration_ms", durationMs,
			"request_id", requestid.Get(c),
			"client_ip", c.ClientIP(),
		}
		logAttrs = appendTraceAttrs(logAttrs, trace.SpanFromContext(ctx).SpanContext())
		if len(c.Errors) > 0 {
			lastErr := c.Errors.Last().Err
			logAttrs = append(logAttrs, "error", lastErr.Error(), "error_type", classifyErrorType(lastErr))
		}
		if status >= http.StatusInternalServerError && internalErrorCounter != nil {
			errorType := "unknown"
			if len(c.Errors) > 0 {
				errorType = classifyErrorType(c.Errors.Last().Err)
			}
			internalErrorCounter.Add(ctx, 1, metric.WithAttributes(append(attrs, attribute.String("error.type", errorType))...))
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.ErrorContext(ctx, "http request", logAttrs...)
		case status >= http.StatusBadRequest:
			logger.WarnContext(ctx, "http request", logAttrs...)
		default:
			logger.InfoContext(ctx, "http request", logAttrs...)
		}
	}
}

func panicRecoveryMiddleware(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			err := fmt.Errorf("panic recovered: %v", recovered)
			_ = c.Error(err)

			span := trace.SpanFromContext(c.Request.Context())
			if span.SpanContext().IsValid() {
				span.RecordError(err)
				span.SetStatus(codes.Error, "panic recovered")
				span.SetAttributes(attribute.String("error.type", "panic"))
			}

			logAttrs := []any{
				"panic", recovered,
				"stack_trace", string(debug.Stack()),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"request_id", requestid.Get(c),
			}
			logAttrs = appendTraceAttrs(logAttrs, span.SpanContext())
			logger.ErrorContext(c.Request.Context(), "panic recovered", logAttrs...)

			writeProblemResponse(c, problem(http.StatusInternalServerError, problemTypeInternal, "Internal Server Error", "internal server error"))
		}()

		c.Next()
	}
}

func appendTraceAttrs(logAttrs []any, spanContext trace.SpanContext) []any {
	if !spanContext.IsValid() {
		return logAttrs
	}
	return append(logAttrs,
		"trace_id", spanContext.TraceID().String(),
		"span_id", spanContext.SpanID().String(),
	)
}
