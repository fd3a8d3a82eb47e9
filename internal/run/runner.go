// Package run orchestrates one invocation: load → validate → aggregate →
// serialize. It returns a classified error instead of exiting; translating
// that into a process status is the entry point's job, which keeps the
// pipeline independently testable.
package run

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tally-lab/project-tally/internal/core/aggregation"
	"github.com/tally-lab/project-tally/internal/core/config"
	"github.com/tally-lab/project-tally/internal/ingestion"
	"github.com/tally-lab/project-tally/internal/projection"
	"github.com/tally-lab/project-tally/internal/schema"
)

// Runner executes the pipeline for one configuration.
type Runner struct {
	cfg *config.Config
	log *slog.Logger
	out io.Writer
}

// New creates a Runner writing its JSON document to out. Logs never go to
// out — the output stream carries the document and nothing else.
func New(cfg *config.Config, logger *slog.Logger, out io.Writer) *Runner {
	return &Runner{cfg: cfg, log: logger, out: out}
}

// Run executes one full pass and returns the number of aggregate records
// emitted. Any stage failure aborts the remaining stages; on failure zero
// bytes have been written to the output stream.
func (r *Runner) Run() (int, error) {
	def := r.cfg.Resolved
	log := r.log.With("run_id", uuid.NewString(), "report", def.Name)

	log.Info("Loading source", "path", r.cfg.Input.Path)
	tbl, err := ingestion.Load(r.cfg.Input.Path, r.cfg.Input.DelimiterRune())
	if err != nil {
		return 0, err
	}
	log.Info("Source loaded", "rows", tbl.Len(), "columns", len(tbl.Header().Columns()))

	required := []string{def.CategoryColumn}
	if def.Operator != aggregation.OpCount {
		required = append(required, def.ValueColumn)
	}
	if err := schema.Validate(tbl, required...); err != nil {
		return 0, err
	}

	records, err := aggregation.GroupBy(tbl, def.CategoryColumn, def.ValueColumn, def.Operator)
	if err != nil {
		return 0, err
	}
	log.Info("Aggregated", "operator", def.Operator, "categories", len(records))

	if err := projection.Write(r.out, records, r.cfg.Output.Pretty, r.cfg.Output.Indent); err != nil {
		return 0, err
	}

	return len(records), nil
}
