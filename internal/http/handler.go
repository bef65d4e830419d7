package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"localflavor/internal/service"
)

type Handler struct {
	service *service.Service
}

// ProblemDetails is an RFC 7807 body. Kind and Validator are set when a
// value was rejected.
type ProblemDetails struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Detail    string `json:"detail,omitempty"`
	Instance  string `json:"instance,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	Validator string `json:"validator,omitempty"`
	Kind      string `json:"kind,omitempty"`
}

const (
	problemContentType      = "application/problem+json"
	problemTypeValidation   = "https://localflavor.dev/problems/validation-error"
	problemTypeRejected     = "https://localflavor.dev/problems/value-rejected"
	problemTypeNotFound     = "https://localflavor.dev/problems/not-found"
	problemTypeUnauthorized = "https://localflavor.dev/problems/unauthorized"
	problemTypeInternal     = "https://localflavor.dev/problems/internal-error"
)

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) notFound(c *gin.Context) {
	writeProblemResponse(c, problem(http.StatusNotFound, problemTypeNotFound, "Not Found", "route not found"))
}

func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawAuthorization := strings.TrimSpace(c.GetHeader("Authorization"))
		if rawAuthorization == "" {
			h.writeProblem(c, http.StatusUnauthorized, problemTypeUnauthorized, "Unauthorized", "missing bearer token")
			return
		}

		token, ok := strings.CutPrefix(rawAuthorization, "Bearer ")
		if !ok {
			h.writeProblem(c, http.StatusUnauthorized, problemTypeUnauthorized, "Unauthorized", "invalid authorization header")
			return
		}

		if err := h.service.ValidateAccessToken(strings.TrimSpace(token)); err != nil {
			if !errors.Is(err, service.ErrUnauthorized) {
				h.writeError(c, err)
				return
			}
			h.writeProblem(c, http.StatusUnauthorized, problemTypeUnauthorized, "Unauthorized", "invalid token")
			return
		}

		c.Next()
	}
}

func (h *Handler) listValidators(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListValidators(c.Request.Context()))
}

func (h *Handler) listSubdivisions(c *gin.Context) {
	list, err := h.service.Subdivisions(c.Request.Context(), c.Param("region"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) validate(c *gin.Context) {
	var req service.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeProblem(c, http.StatusBadRequest, problemTypeValidation, "Validation Error", fmt.Sprintf("invalid request body: %s", err.Error()))
		return
	}

	output, err := h.service.Validate(c.Request.Context(), service.ValidateInput{
		Validator:  c.Param("name"),
		Value:      req.Value,
		AllowBlank: req.AllowBlank,
		MinLength:  req.MinLength,
		MaxLength:  req.MaxLength,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}

func (h *Handler) validateBatch(c *gin.Context) {
	var input service.BatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.writeProblem(c, http.StatusBadRequest, problemTypeValidation, "Validation Error", fmt.Sprintf("invalid request body: %s", err.Error()))
		return
	}

	output, err := h.service.ValidateBatch(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var failure *service.FailureError
	switch {
	case errors.As(err, &failure):
		p := problem(http.StatusUnprocessableEntity, problemTypeRejected, "Value Rejected", failure.Message)
		p.Validator = failure.Validator
		p.Kind = string(failure.Kind)
		writeProblemResponse(c, p)
	case errors.Is(err, service.ErrValidation):
		h.writeProblem(c, http.StatusBadRequest, problemTypeValidation, "Validation Error", err.Error())
	case errors.Is(err, service.ErrNotFound):
		h.writeProblem(c, http.StatusNotFound, problemTypeNotFound, "Not Found", err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		h.writeProblem(c, http.StatusUnauthorized, problemTypeUnauthorized, "Unauthorized", err.Error())
	default:
		_ = c.Error(err)
		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			span.RecordError(err)
			span.SetStatus(codes.Error, "internal server error")
			span.SetAttributes(attribute.String("error.type", classifyErrorType(err)))
		}
		logAttrs := []any{
			"error", err.Error(),
			"error_type", classifyErrorType(err),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", requestid.Get(c),
		}
		logAttrs = appendTraceAttrs(logAttrs, span.SpanContext())
		slog.ErrorContext(c.Request.Context(), "internal server error", logAttrs...)
		h.writeProblem(c, http.StatusInternalServerError, problemTypeInternal, "Internal Server Error", "internal server error")
	}
}

func (h *Handler) writeProblem(c *gin.Context, status int, problemType string, title string, detail string) {
	writeProblemResponse(c, problem(status, problemType, title, detail))
}

func problem(status int, problemType string, title string, detail string) ProblemDetails {
	if problemType == "" {
		problemType = "about:blank"
	}
	if title == "" {
		title = http.StatusText(status)
	}
	return ProblemDetails{
		Type:   problemType,
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

func writeProblemResponse(c *gin.Context, p ProblemDetails) {
	requestID := requestid.Get(c)
	if requestID != "" {
		c.Header(headerRequestID, requestID)
	}

	p.Instance = c.Request.URL.Path
	p.RequestID = requestID
	c.Header("Content-Type", problemContentType)
	c.AbortWithStatusJSON(p.Status, p)
}

func classifyErrorType(err error) string {
	if err == nil {
		return "unknown"
	}
	root := err
	for {
		unwrapped := errors.Unwrap(root)
		if unwrapped == nil {
			break
		}
		root = unwrapped
	}
	return fmt.Sprintf("%T", root)
}
