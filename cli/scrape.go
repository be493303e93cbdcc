package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"pcpart-scraper/browser"
	"pcpart-scraper/config"
	"pcpart-scraper/models"
	"pcpart-scraper/scraper"
	"pcpart-scraper/services"
	"pcpart-scraper/storage"
	"pcpart-scraper/utils"
)

// Execute implements the go-flags Commander interface for ScrapeCommand.
func (c *ScrapeCommand) Execute(args []string) error {
	cfg := config.Load()
	logger := utils.NewLogger(c.globals.Verbose)
	return c.run(context.Background(), cfg, logger)
}

func (c *ScrapeCommand) run(ctx context.Context, cfg *config.Config, logger *utils.Logger) error {
	keys := c.Components
	if len(keys) == 0 {
		keys = []string{"all"}
	}
	catalogs, err := resolveCatalogs(keys)
	if err != nil {
		return err
	}

	if c.Target > 0 {
		cfg.TargetCount = c.Target
	}
	if c.MaxPages > 0 {
		cfg.MaxPages = c.MaxPages
	}
	if c.Output != "" {
		cfg.OutputDir = c.Output
	}

	logger.Info("=== PC Part Scraper starting ===")
	logger.Info("Config | categories: %d | target: %d | max pages: %d | rate: %dms | concurrency: %d",
		len(catalogs), cfg.TargetCount, cfg.MaxPages, cfg.RateLimitMs, cfg.MaxConcurrency)

	parser := scraper.NewRecordParser(nil)
	aggregator := scraper.NewAggregator(parser, logger, time.Duration(cfg.RateLimitMs)*time.Millisecond)

	pool := utils.NewWorkerPool(cfg.MaxConcurrency, time.Duration(cfg.RateLimitMs)*time.Millisecond)
	runs := make([]*models.AggregationRun, len(catalogs))
	for i, cat := range catalogs {
		if ok := pool.Submit(ctx, func() {
			runs[i] = scrapeCatalog(ctx, cfg, logger, aggregator, cat)
		}); !ok {
			logger.Warn("Cancelled before %s was scraped", cat.Label)
			break
		}
	}
	pool.Wait()

	insights := services.NewInsightService(logger)
	var total int
	for i, cat := range catalogs {
		run := runs[i]
		if run == nil || len(run.Records) == 0 {
			logger.Error("%s: no records scraped", cat.Label)
			continue
		}

		logger.Info("%s: %d records from %d pages in %s",
			cat.Label, len(run.Records), run.PagesVisited, run.Duration().Round(time.Second))

		if err := saveRun(cfg, logger, cat, run); err != nil {
			logger.Error("%s: %v", cat.Label, err)
			continue
		}

		insights.Print(insights.Generate(run.Records))
		total += len(run.Records)
	}

	if total == 0 {
		return fmt.Errorf("no records were scraped")
	}
	logger.Success("Done | %d records across %d categories", total, len(catalogs))
	return nil
}

// scrapeCatalog owns the browser session lifecycle for a single catalog.
func scrapeCatalog(ctx context.Context, cfg *config.Config, logger *utils.Logger, aggregator *scraper.Aggregator, cat scraper.Catalog) *models.AggregationRun {
	session := browser.NewSession(ctx, cfg, browser.CatalogProfile(cat), logger)
	defer session.Close()

	return aggregator.Run(ctx, session, scraper.RunOptions{
		Category: cat.Key,
		Target:   cfg.TargetCount,
		MaxPages: cfg.MaxPages,
	})
}

// saveRun writes the JSON dataset plus a CSV copy, both sharing one timestamp.
func saveRun(cfg *config.Config, logger *utils.Logger, cat scraper.Catalog, run *models.AggregationRun) error {
	stamp := time.Now()

	jsonPath := filepath.Join(cfg.OutputDir, storage.DatasetFilename(cat.FilePrefix, "json", stamp))
	jw, err := storage.NewJSONWriter(jsonPath)
	if err != nil {
		return fmt.Errorf("create JSON writer: %w", err)
	}
	if err := jw.Write(run.Records); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	logger.Success("Saved %d records to %s", len(run.Records), jsonPath)

	csvPath := filepath.Join(cfg.OutputDir, storage.DatasetFilename(cat.FilePrefix, "csv", stamp))
	cw, err := storage.NewCSVWriter(csvPath)
	if err != nil {
		return fmt.Errorf("create CSV writer: %w", err)
	}
	defer cw.Close()
	if err := cw.Write(run.Records); err != nil {
		return fmt.Errorf("write CSV: %w", err)
	}
	logger.Success("Saved CSV copy to %s", csvPath)

	return nil
}
