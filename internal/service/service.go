package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"localflavor/internal/validation"
	"localflavor/internal/validation/br"
	"localflavor/internal/validation/ca"
	"localflavor/internal/validation/us"
)

const (
	serviceTracerName = "localflavor/internal/service"
	serviceMeterName  = "localflavor/internal/service"

	outcomeOK = "ok"
)

type Service struct {
	fields            map[string]validation.Field
	validate          *validator.Validate
	jwtSigningKey     []byte
	jwtIssuer         string
	batchMaxItems     int
	batchConcurrency  int
	validationCounter metric.Int64Counter
	now               func() time.Time
}

type Option func(*Service)

// DefaultFields returns every validator the service exposes.
func DefaultFields() []validation.Field {
	return []validation.Field{
		br.CPF,
		br.CNPJ,
		br.ZipCode,
		br.Phone,
		br.State,
		ca.PostalCode,
		ca.Phone,
		ca.Province,
		ca.SIN,
		us.State,
	}
}

func New(options ...Option) *Service {
	svc := &Service{
		validate:         newValidator(),
		jwtIssuer:        "localflavor-api",
		batchMaxItems:    100,
		batchConcurrency: 8,
		now:              time.Now,
	}
	svc.setFields(DefaultFields())
	for _, option := range options {
		option(svc)
	}

	counter, err := otel.Meter(serviceMeterName).Int64Counter(
		"localflavor.validation.count",
		metric.WithDescription("Validations performed, by validator and outcome"),
	)
	if err != nil {
		slog.Error("create validation counter", "error", err)
	}
	svc.validationCounter = counter
	return svc
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func WithAuthConfig(signingKey string, issuer string) Option {
	return func(s *Service) {
		s.jwtSigningKey = []byte(strings.TrimSpace(signingKey))
		if strings.TrimSpace(issuer) != "" {
			s.jwtIssuer = strings.TrimSpace(issuer)
		}
	}
}

func WithBatchLimits(maxItems int, concurrency int) Option {
	return func(s *Service) {
		if maxItems > 0 {
			s.batchMaxItems = maxItems
		}
		if concurrency > 0 {
			s.batchConcurrency = concurrency
		}
	}
}

// WithFields replaces the validator registry.
func WithFields(fields ...validation.Field) Option {
	return func(s *Service) {
		s.setFields(fields)
	}
}

func (s *Service) setFields(fields []validation.Field) {
	s.fields = make(map[string]validation.Field, len(fields))
	for _, f := range fields {
		s.fields[f.Name] = f
	}
}

func (s *Service) ListValidators(ctx context.Context) []ValidatorOutput {
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]ValidatorOutput, 0, len(names))
	for _, name := range names {
		region, _, _ := strings.Cut(name, ".")
		out = append(out, ValidatorOutput{
			Name:        name,
			Region:      region,
			Description: s.fields[name].Description,
		})
	}
	return out
}

func (s *Service) Subdivisions(ctx context.Context, region string) ([]SubdivisionOutput, error) {
	var list []validation.Subdivision
	switch strings.ToLower(strings.TrimSpace(region)) {
	case "br":
		list = br.States()
	case "ca":
		list = ca.Provinces()
	case "us":
		list = us.States()
	default:
		return nil, notFoundError(fmt.Sprintf("region %q", region))
	}

	out := make([]SubdivisionOutput, 0, len(list))
	for _, sd := range list {
		out = append(out, SubdivisionOutput{Code: sd.Code, Name: sd.Name})
	}
	return out, nil
}

// Validate runs one validator. A rejected value is reported as a
// *FailureError.
func (s *Service) Validate(ctx context.Context, input ValidateInput) (ValidateOutput, error) {
	ctx, span := otel.Tracer(serviceTracerName).Start(ctx, "Service.Validate")
	defer span.End()

	if err := s.checkInput(input); err != nil {
		return ValidateOutput{}, err
	}
	field, ok := s.fields[input.Validator]
	if !ok {
		return ValidateOutput{}, notFoundError(fmt.Sprintf("validator %q", input.Validator))
	}
	span.SetAttributes(attribute.String("localflavor.validator", field.Name))

	value, err := s.clean(ctx, field, input)
	if err != nil {
		return ValidateOutput{}, err
	}
	return ValidateOutput{Validator: field.Name, Value: value}, nil
}

// ValidateBatch runs every item and reports a result per item, in request
// order. Rejected values do not fail the batch.
func (s *Service) ValidateBatch(ctx context.Context, input BatchInput) (BatchOutput, error) {
	ctx, span := otel.Tracer(serviceTracerName).Start(ctx, "Service.ValidateBatch")
	defer span.End()

	if err := s.validate.Struct(input); err != nil {
		return BatchOutput{}, translateValidationErrors(err)
	}
	if len(input.Items) > s.batchMaxItems {
		return BatchOutput{}, validationError(fmt.Sprintf("items must contain at most %d entries", s.batchMaxItems))
	}
	for i, item := range input.Items {
		if err := checkBounds(item); err != nil {
			return BatchOutput{}, fmt.Errorf("items[%d]: %w", i, err)
		}
		if _, ok := s.fields[item.Validator]; !ok {
			return BatchOutput{}, notFoundError(fmt.Sprintf("validator %q (items[%d])", item.Validator, i))
		}
	}
	span.SetAttributes(attribute.Int("localflavor.batch.size", len(input.Items)))

	results := make([]BatchResult, len(input.Items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)
	for i, item := range input.Items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			field := s.fields[item.Validator]
			result := BatchResult{Validator: field.Name}
			value, err := s.clean(gctx, field, item)
			var failure *FailureError
			switch {
			case err == nil:
				result.Valid = true
				result.Value = value
			case errors.As(err, &failure):
				result.Kind = string(failure.Kind)
				result.Message = failure.Message
			default:
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchOutput{}, err
	}

	return BatchOutput{Results: results}, nil
}

func (s *Service) clean(ctx context.Context, field validation.Field, input ValidateInput) (string, error) {
	value, err := field.Clean(input.Value, validation.Options{
		AllowBlank: input.AllowBlank,
		MinLength:  input.MinLength,
		MaxLength:  input.MaxLength,
	})
	if err == nil {
		s.record(ctx, field.Name, outcomeOK)
		return value, nil
	}

	var verr *validation.Error
	if !errors.As(err, &verr) {
		return "", err
	}
	s.record(ctx, field.Name, string(verr.Kind))
	return "", &FailureError{
		Validator: field.Name,
		Kind:      verr.Kind,
		Message:   Message(field.Name, verr.Kind, verr.Limit),
	}
}

func (s *Service) record(ctx context.Context, validatorName string, outcome string) {
	if s.validationCounter == nil {
		return
	}
	s.validationCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("validator", validatorName),
		attribute.String("outcome", outcome),
	))
}

func (s *Service) checkInput(input ValidateInput) error {
	if err := s.validate.Struct(input); err != nil {
		return translateValidationErrors(err)
	}
	return checkBounds(input)
}

func checkBounds(input ValidateInput) error {
	if input.MinLength > 0 && input.MaxLength > 0 && input.MinLength > input.MaxLength {
		return validationError("min_length must not exceed max_length")
	}
	return nil
}

func translateValidationErrors(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return validationError(err.Error())
	}

	details := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		field := fe.Namespace()
		if _, after, ok := strings.Cut(field, "."); ok {
			field = after
		}
		details = append(details, fmt.Sprintf("%s failed on %q", field, fe.Tag()))
	}
	return validationError(strings.Join(details, "; "))
}
