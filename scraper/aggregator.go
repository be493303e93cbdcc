package scraper

import (
	"context"
	"time"

	"pcpart-scraper/models"
	"pcpart-scraper/utils"
)

// RunOptions bound one collection run.
type RunOptions struct {
	// Category is recorded on the run for reporting and filenames.
	Category string
	// Target stops the run once at least this many records are collected.
	// Zero or negative means collect until the catalog is exhausted.
	Target int
	// MaxPages caps how many pages are visited regardless of target.
	MaxPages int
}

// Aggregator drives one collection run: paginate, parse, accumulate, stop on
// target, exhaustion, page cap or failure. Partial results are success; a
// run never fails outright, it only comes back smaller than asked.
type Aggregator struct {
	parser    *RecordParser
	log       *utils.Logger
	rateLimit time.Duration
}

func NewAggregator(parser *RecordParser, log *utils.Logger, rateLimit time.Duration) *Aggregator {
	return &Aggregator{parser: parser, log: log, rateLimit: rateLimit}
}

// Run collects records from session until a stop condition is met. Per-row
// parse failures are counted and skipped. A page where every row fails to
// parse stops the run: full-page failure means the selectors no longer
// match the markup, which the next page will not fix.
func (a *Aggregator) Run(ctx context.Context, session Session, opts RunOptions) *models.AggregationRun {
	run := &models.AggregationRun{
		Category:    opts.Category,
		TargetCount: opts.Target,
		StartedAt:   time.Now(),
	}
	defer func() { run.FinishedAt = time.Now() }()

	pag := NewPaginator(session, a.log)
	seen := utils.NewSeenSet()

	if err := pag.Open(ctx); err != nil {
		a.log.Error("Could not open catalog: %v", err)
		return run
	}

	for {
		a.log.Info("Processing page %d...", pag.Page())

		rows, err := pag.Fetch(ctx)
		if err != nil {
			a.log.Error("Page %d failed: %v", pag.Page(), err)
			break
		}
		run.PagesVisited++

		if len(rows) == 0 {
			a.log.Info("No rows found on page %d, catalog exhausted", pag.Page())
			break
		}
		a.log.Debug("Found %d rows on page %d", len(rows), pag.Page())

		batch := make(models.PageBatch, 0, len(rows))
		for i, row := range rows {
			rec, err := a.parser.ParseRow(row, pag.Page(), i+1)
			if err != nil {
				run.RowFailures++
				a.log.Debug("Skipping row: %v", err)
				continue
			}
			if seen.Contains(rec.Identity()) {
				run.Duplicates++
				a.log.Debug("Duplicate listing: %s", rec.Name)
			}
			seen.Add(rec.Identity())
			batch = append(batch, rec)
		}

		if len(batch) == 0 {
			a.log.Warn("No valid records on page %d; the page layout may have changed, stopping", pag.Page())
			break
		}

		run.Append(batch)
		a.log.Info("Page %d: %d records collected (total: %d)", pag.Page(), len(batch), len(run.Records))

		if run.ReachedTarget() {
			a.log.Success("Reached target of %d records", opts.Target)
			break
		}
		if opts.MaxPages > 0 && run.PagesVisited >= opts.MaxPages {
			a.log.Info("Reached page limit of %d", opts.MaxPages)
			break
		}
		if pag.State() != HasMore {
			a.log.Info("No next page available")
			break
		}

		if a.rateLimit > 0 {
			select {
			case <-ctx.Done():
				a.log.Warn("Collection cancelled: %v", ctx.Err())
				return run
			case <-time.After(a.rateLimit):
			}
		}
		if !pag.Next(ctx) {
			break
		}
	}

	if run.Duplicates > 0 {
		a.log.Info("%d duplicate listings seen across pages", run.Duplicates)
	}
	if run.RowFailures > 0 {
		a.log.Info("%d rows skipped as unparseable", run.RowFailures)
	}
	return run
}
