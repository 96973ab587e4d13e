package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360studio/semverse/config"
	"github.com/c360studio/semverse/conformance"
	"github.com/c360studio/semverse/entropy"
	"github.com/c360studio/semverse/export"
	"github.com/c360studio/semverse/functor"
	"github.com/c360studio/semverse/graph"
	"github.com/c360studio/semverse/natdomain"
	"github.com/c360studio/semverse/registry"
	"github.com/c360studio/semverse/report"
)

// sampleSize caps the objects used for arrow and field witnesses. Arrow
// triples grow with the fourth power of this value.
const sampleSize = 5

// App wires the configured reference universes into a registry and reports on it.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *registry.Registry[natdomain.Nat, natdomain.Interval]
	reporter *report.Reporter
	gatherer prometheus.Gatherer
}

// NewApp creates a new application instance. A nil promReg gets a private
// Prometheus registry.
func NewApp(cfg *config.Config, logger *slog.Logger, promReg *prometheus.Registry) *App {
	if logger == nil {
		logger = slog.Default()
	}
	if promReg == nil {
		promReg = prometheus.NewRegistry()
	}

	est := entropy.New(natdomain.Probes(cfg.Entropy.ProbeLimit))
	est.Depth = cfg.Entropy.Depth

	reg := registry.New[natdomain.Nat, natdomain.Interval](est)
	for _, u := range cfg.Universes {
		reg.Add(natdomain.NewUniverse(u.Name, u.Width))
		logger.Debug("Registered universe",
			slog.String("name", u.Name),
			slog.Uint64("width", u.Width))
	}

	return &App{
		cfg:      cfg,
		logger:   logger,
		registry: reg,
		reporter: report.NewReporter(logger, report.NewMetrics(promReg)),
		gatherer: promReg,
	}
}

// Stratify returns the universes whose entropy is at most threshold, in
// registration order.
func (a *App) Stratify(threshold uint64) []*natdomain.Universe {
	return a.registry.StratifyByEntropy(threshold)
}

// Snapshot reports the registry without running conformance.
func (a *App) Snapshot() *report.Report {
	return report.Snapshot(a.reporter, a.registry, a.cfg.Strata.Bounds)
}

// Validate checks every registered universe and reports the registry.
func (a *App) Validate(ctx context.Context) (*report.Report, error) {
	return report.Run(ctx, a.reporter, a.registry, a.cfg.Strata.Bounds, a.witness)
}

// Export validates the registry and serializes the report.
func (a *App) Export(ctx context.Context, format export.Format) (string, error) {
	rep, err := a.Validate(ctx)
	if err != nil {
		return "", err
	}
	exporter := export.NewRDFExporter()
	exporter.AddReport(rep)
	out, err := exporter.Export(format)
	if err != nil {
		return "", fmt.Errorf("export report: %w", err)
	}
	return out, nil
}

// Payloads validates the registry and encodes the report as a JSON array of
// semstreams report payloads, one per universe and stratum.
func (a *App) Payloads(ctx context.Context) ([]byte, error) {
	rep, err := a.Validate(ctx)
	if err != nil {
		return nil, err
	}
	payloads := graph.Payloads(rep)
	for _, p := range payloads {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("payload %s: %w", p.EntityID(), err)
		}
	}
	data, err := json.MarshalIndent(payloads, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode payloads: %w", err)
	}
	return data, nil
}

// witness samples the reference domain: every configured probe as an
// object, and all intervals between the first few probes as arrows.
func (a *App) witness(_ *natdomain.Universe) conformance.Witnesses[natdomain.Nat, natdomain.Interval] {
	small := natdomain.Probes(min(a.cfg.Entropy.ProbeLimit, sampleSize))
	fields := make([]functor.Field[natdomain.Nat], 0, len(small))
	for _, o := range small {
		fields = append(fields, natdomain.IdentityField(o))
	}
	return conformance.Witnesses[natdomain.Nat, natdomain.Interval]{
		Objects: natdomain.Probes(a.cfg.Entropy.ProbeLimit),
		Arrows:  natdomain.Arrows(small),
		Fields:  fields,
		Probes:  small,
	}
}
