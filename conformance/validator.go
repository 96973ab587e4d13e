package conformance

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/c360studio/semverse/category"
	"github.com/c360studio/semverse/functor"
	"github.com/c360studio/semverse/universe"
)

const tracerName = "github.com/c360studio/semverse/conformance"

// Witnesses is the finite sample the laws are checked on.
type Witnesses[O comparable, H category.Morphism[O, H]] struct {
	// Objects are checked for identities, cover indexing and descent.
	Objects []O

	// Arrows are combined into pairs and triples for the composition laws.
	Arrows []H

	// Fields are transported along Arrows for the functor laws.
	Fields []functor.Field[O]

	// Probes are the objects realizer outputs are compared on.
	Probes []O
}

// Report is the outcome of validating one universe.
type Report struct {
	Universe        string
	Violations      []error
	Inconsistencies []*Inconsistency
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return len(r.Violations) == 0 && len(r.Inconsistencies) == 0
}

// Err joins every failure into one error, or returns nil.
func (r *Report) Err() error {
	errs := make([]error, 0, len(r.Violations)+len(r.Inconsistencies))
	errs = append(errs, r.Violations...)
	for _, inc := range r.Inconsistencies {
		errs = append(errs, inc)
	}
	return errors.Join(errs...)
}

// Validator runs the conformance pass.
type Validator struct {
	logger *slog.Logger
	tracer trace.Tracer
}

// NewValidator creates a validator. A nil logger falls back to slog.Default().
func NewValidator(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

// Validate checks every law of u on w. Law and descent failures are collected
// in the report; the returned error is reserved for a cancelled context or a
// failure of the overlap derivation itself.
func Validate[O comparable, H category.Morphism[O, H]](ctx context.Context, v *Validator, u *universe.Universe[O, H], w Witnesses[O, H]) (*Report, error) {
	ctx, span := v.tracer.Start(ctx, "conformance.Validate",
		trace.WithAttributes(attribute.String("universe", u.Name())))
	defer span.End()

	report := &Report{Universe: u.Name()}
	cat := u.Category()

	report.Violations = append(report.Violations, CheckIdentity(cat, w.Objects, w.Arrows)...)
	report.Violations = append(report.Violations, CheckAssociativity(cat, w.Arrows)...)
	report.Violations = append(report.Violations, CheckFunctoriality(cat, u.Functor(), w.Fields, w.Arrows, w.Probes)...)
	report.Violations = append(report.Violations, CheckCovers(u.Gluing(), w.Objects)...)

	for _, obj := range w.Objects {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, "cancelled")
			return report, err
		}
		found, err := CheckDescent(u, obj)
		report.Inconsistencies = append(report.Inconsistencies, found...)
		for _, e := range splitJoined(err) {
			if !category.IsLawViolation(e) {
				span.RecordError(e)
				span.SetStatus(codes.Error, "overlap derivation failed")
				return report, e
			}
			report.Violations = append(report.Violations, e)
		}
	}

	span.SetAttributes(
		attribute.Int("violations", len(report.Violations)),
		attribute.Int("inconsistencies", len(report.Inconsistencies)),
	)
	if !report.OK() {
		span.SetStatus(codes.Error, "universe failed conformance")
		v.logger.Warn("Universe failed conformance",
			slog.String("universe", u.Name()),
			slog.Int("violations", len(report.Violations)),
			slog.Int("inconsistencies", len(report.Inconsistencies)))
		return report, nil
	}

	v.logger.Debug("Universe passed conformance",
		slog.String("universe", u.Name()),
		slog.Int("objects", len(w.Objects)),
		slog.Int("arrows", len(w.Arrows)))
	return report, nil
}

// splitJoined flattens an errors.Join result into its members.
func splitJoined(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
