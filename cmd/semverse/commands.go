package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/c360studio/semverse/export"
	"github.com/c360studio/semverse/report"
	"github.com/c360studio/semverse/vocabulary/semverse"
)

// payloadFormat selects JSON semstreams payloads instead of an RDF format.
const payloadFormat = "payload"

func stratifyCmd(opts *options) *cobra.Command {
	var threshold uint64

	cmd := &cobra.Command{
		Use:   "stratify",
		Short: "Group registered universes by entropy",
		Long: `Without --threshold, prints every configured stratum and its members.
With --threshold, prints the universes whose entropy is at most the threshold.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer w.Flush()

			if cmd.Flags().Changed("threshold") {
				fmt.Fprintln(w, "NAME\tENTROPY")
				for _, u := range app.Stratify(threshold) {
					fmt.Fprintf(w, "%s\t%d\n", u.Name(), app.registry.Entropy(u))
				}
				return nil
			}

			rep := app.Snapshot()
			fmt.Fprintln(w, "STRATUM\tMEMBERS")
			for _, s := range rep.Strata {
				fmt.Fprintf(w, "%s\t%s\n", stratumLabel(s), strings.Join(memberNames(rep, s), ", "))
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&threshold, "threshold", 0, "Maximum entropy to include")
	return cmd
}

func validateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every universe against the category, functor and gluing laws",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			rep, err := app.Validate(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tENTROPY\tSTATUS\tVIOLATIONS\tINCONSISTENCIES")
			failed := 0
			for _, u := range rep.Universes {
				fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%d\n", u.Name, u.Entropy, u.Status, u.Violations, u.Inconsistencies)
				if u.Status != semverse.StatusConformant {
					failed++
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d universes failed conformance", failed, len(rep.Universes))
			}
			return nil
		},
	}
}

func exportCmd(opts *options) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Validate the registry and export the report as RDF or graph payloads",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			if format == "" {
				format = app.cfg.Export.Format
			}

			var out []byte
			if strings.EqualFold(strings.TrimSpace(format), payloadFormat) {
				format = payloadFormat
				if out, err = app.Payloads(cmd.Context()); err != nil {
					return err
				}
				if output != "" && filepath.Ext(output) == "" {
					output += ".json"
				}
			} else {
				f, err := export.ParseFormat(format)
				if err != nil {
					return err
				}
				rdf, err := app.Export(cmd.Context(), f)
				if err != nil {
					return err
				}
				format, out, output = string(f), []byte(rdf), export.OutputPath(output, f)
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			app.logger.Info("Report exported", slog.String("format", format), slog.String("path", output))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format (turtle, ntriples, jsonld, payload)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout; the format's extension is added when missing")
	return cmd
}

func stratumLabel(s report.StratumSummary) string {
	if s.Overflow {
		return "overflow"
	}
	return fmt.Sprintf("<= %d", s.Bound)
}

func memberNames(rep *report.Report, s report.StratumSummary) []string {
	names := make(map[string]string, len(rep.Universes))
	for _, u := range rep.Universes {
		names[u.ID] = u.Name
	}
	out := make([]string, 0, len(s.Members))
	for _, id := range s.Members {
		out = append(out, names[id])
	}
	return out
}
