package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/c360studio/semverse/category"
	"github.com/c360studio/semverse/conformance"
	"github.com/c360studio/semverse/registry"
	"github.com/c360studio/semverse/universe"
)

// WitnessFunc picks the conformance sample for one universe.
type WitnessFunc[O comparable, H category.Morphism[O, H]] func(u *universe.Universe[O, H]) conformance.Witnesses[O, H]

// Reporter validates a registry and turns it into a Report.
type Reporter struct {
	logger    *slog.Logger
	validator *conformance.Validator
	metrics   *Metrics
	now       func() time.Time
}

// NewReporter creates a reporter. metrics may be nil.
func NewReporter(logger *slog.Logger, metrics *Metrics) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{
		logger:    logger,
		validator: conformance.NewValidator(logger),
		metrics:   metrics,
		now:       time.Now,
	}
}

// Snapshot builds a report without running conformance.
func Snapshot[O comparable, H category.Morphism[O, H]](r *Reporter, reg *registry.Registry[O, H], bounds []uint64) *Report {
	rep := Build(reg, bounds, nil, r.now())
	r.observe(rep)
	return rep
}

// Run validates every universe of reg on the sample picked by witness, then
// builds the report. A nil witness skips validation.
func Run[O comparable, H category.Morphism[O, H]](
	ctx context.Context,
	r *Reporter,
	reg *registry.Registry[O, H],
	bounds []uint64,
	witness WitnessFunc[O, H],
) (*Report, error) {
	if witness == nil {
		return Snapshot(r, reg, bounds), nil
	}

	all := reg.All()
	validations := make([]*conformance.Report, 0, len(all))
	for i, u := range all {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := conformance.Validate(ctx, r.validator, u, witness(u))
		if err != nil {
			return nil, fmt.Errorf("validate universe %d (%s): %w", i, u.Name(), err)
		}
		validations = append(validations, v)
	}

	rep := Build(reg, bounds, validations, r.now())
	r.observe(rep)
	return rep, nil
}

func (r *Reporter) observe(rep *Report) {
	if r.metrics != nil {
		r.metrics.Observe(rep)
	}
	r.logger.Info("Registry report built",
		slog.Int("universes", len(rep.Universes)),
		slog.Int("strata", len(rep.Strata)),
		slog.Int("depth", rep.Depth))
}
