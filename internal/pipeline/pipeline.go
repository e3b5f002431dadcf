package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scripfeed/scrip-tickers/internal/database"
	"github.com/scripfeed/scrip-tickers/internal/model"
	"github.com/scripfeed/scrip-tickers/internal/parser"
	"github.com/scripfeed/scrip-tickers/internal/rules"
	"github.com/scripfeed/scrip-tickers/internal/transform"
	"github.com/scripfeed/scrip-tickers/internal/writer"
)

// ErrEmptyDownload is returned when the fetched document has no content.
var ErrEmptyDownload = errors.New("scrip master download returned empty content")

// Fetcher downloads the scrip master text.
type Fetcher interface {
	FetchMaster(ctx context.Context) (string, error)
}

// Runner executes one end-to-end update of the ticker lists.
type Runner struct {
	fetcher Fetcher
	writer  *writer.Writer
	archive *database.Archive // nil disables the run archive
	rules   []rules.Rule
	logger  *slog.Logger
}

// New creates a Runner over the default rule set.
func New(fetcher Fetcher, w *writer.Writer, archive *database.Archive, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		fetcher: fetcher,
		writer:  w,
		archive: archive,
		rules:   rules.Default(),
		logger:  logger,
	}
}

// Run executes the stages strictly in sequence: fetch, parse, transform,
// write categories, write consolidated, archive. Any failure aborts the run;
// files written by categories that completed before the failure are left in
// place (parity with the original updater, see DESIGN.md).
func (r *Runner) Run(ctx context.Context) (*model.RunSummary, error) {
	sum := &model.RunSummary{
		RunID:      uuid.New(),
		Started:    time.Now().UTC(),
		Categories: make(map[string]int, len(r.rules)),
	}

	r.logger.Info("downloading scrip master", "run_id", sum.RunID)
	text, err := r.fetcher.FetchMaster(ctx)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, ErrEmptyDownload
	}

	records, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	sum.RowsFetched = len(records)
	r.logger.Info("scrip master parsed", "rows", len(records))

	results, consolidated, err := transform.Run(records, r.rules)
	if err != nil {
		return nil, err
	}
	for _, rule := range r.rules {
		res := results[rule.Key]
		sum.Categories[rule.Key] = len(res.Symbols)
		r.logger.Info("category processed",
			"category", rule.Key,
			"matched", len(res.Records),
			"symbols", len(res.Symbols),
		)
	}

	if err := r.writer.WriteCategories(r.rules, results); err != nil {
		return nil, err
	}
	if err := r.writer.WriteConsolidated(consolidated); err != nil {
		return nil, err
	}
	sum.Consolidated = len(consolidated)
	sum.Finished = time.Now().UTC()

	if r.archive != nil {
		if err := r.archive.RecordRun(ctx, sum, results, consolidated); err != nil {
			return nil, err
		}
	}

	return sum, nil
}
