package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pcpart-scraper/analysis"
	"pcpart-scraper/config"
	"pcpart-scraper/models"
	"pcpart-scraper/scraper"
	"pcpart-scraper/services"
	"pcpart-scraper/storage"
	"pcpart-scraper/utils"
)

// Execute implements the go-flags Commander interface for MixCommand.
func (c *MixCommand) Execute(args []string) error {
	cfg := config.Load()
	logger := utils.NewLogger(c.globals.Verbose)

	if c.Interactive {
		if err := c.promptParams(os.Stdin, os.Stdout); err != nil {
			return err
		}
	}

	return c.run(context.Background(), cfg, logger)
}

func (c *MixCommand) run(ctx context.Context, cfg *config.Config, logger *utils.Logger) error {
	if len(c.Components) == 0 && c.AIQuery == "" {
		return fmt.Errorf("no components selected (use --components, --ai-query or --interactive)")
	}

	client := analysis.NewClient(cfg)
	spec := models.FilterSpec{Keywords: c.Keywords, MinPrice: c.MinPrice, MaxPrice: c.MaxPrice}

	var catalogs []scraper.Catalog
	var err error
	if c.AIQuery != "" {
		translator := analysis.NewTranslator(client, logger)
		suggestion := translator.Translate(ctx, c.AIQuery, scraper.CatalogKeys())
		printSuggestion(suggestion)
		spec = suggestion.Spec()
		catalogs, err = resolveCatalogs(suggestion.Components)
	} else {
		catalogs, err = resolveCatalogs(c.Components)
	}
	if err != nil {
		return err
	}

	records, err := loadDatasets(cfg, logger, catalogs)
	if err != nil {
		return err
	}

	matched := services.NewFilterEngine().Apply(records, spec)
	logger.Info("Matched %d of %d records", len(matched), len(records))
	if len(matched) == 0 {
		logger.Warn("No records matched the given filters")
		return nil
	}

	annotated := false
	if c.AIAnalyze {
		if client.Ready() {
			limit := c.MaxAnalyze
			if limit <= 0 {
				limit = cfg.MaxAnalyze
			}
			annotator := analysis.NewAnnotator(client, logger)
			matched = annotator.Annotate(ctx, matched, limit)
			annotated = true
		} else {
			logger.Warn("AI analysis requested but no API key is configured, skipping")
		}
	}

	outPath := c.Output
	if outPath == "" {
		name := storage.MixFilename(storage.MixParams{
			Components: catalogKeys(catalogs),
			Keywords:   spec.Keywords,
			MinPrice:   spec.MinPrice,
			MaxPrice:   spec.MaxPrice,
			AIEnhanced: annotated,
		}, time.Now())
		outPath = filepath.Join(cfg.OutputDir, name)
	}

	writer, err := storage.NewJSONWriter(outPath)
	if err != nil {
		return fmt.Errorf("create mix writer: %w", err)
	}
	if err := writer.Write(matched); err != nil {
		return fmt.Errorf("save mix: %w", err)
	}
	logger.Success("Saved %d records to %s", len(matched), outPath)

	insights := services.NewInsightService(logger)
	insights.Print(insights.Generate(matched))
	printSample(matched, 10)

	return nil
}

// loadDatasets reads the newest dataset of every selected catalog. Missing or
// unreadable datasets are skipped so one stale category cannot block a mix.
func loadDatasets(cfg *config.Config, logger *utils.Logger, catalogs []scraper.Catalog) ([]*models.Record, error) {
	var records []*models.Record
	for _, cat := range catalogs {
		path, err := storage.LatestCategoryFile(cfg.OutputDir, cat.FilePrefix)
		if err != nil {
			return nil, fmt.Errorf("list %s datasets: %w", cat.Key, err)
		}
		if path == "" {
			logger.Warn("No %s dataset in %s, skipping", cat.Key, cfg.OutputDir)
			continue
		}
		loaded, err := storage.LoadRecords(path)
		if err != nil {
			logger.Warn("Skipping %s: %v", filepath.Base(path), err)
			continue
		}
		for _, rec := range loaded {
			if rec.Attributes == nil {
				rec.Attributes = make(map[string]string, 1)
			}
			rec.Attributes["component"] = cat.Key
		}
		logger.Info("Loaded %d %s records from %s", len(loaded), cat.Key, filepath.Base(path))
		records = append(records, loaded...)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no datasets found in %s, run the scrape command first", cfg.OutputDir)
	}
	return records, nil
}

func printSuggestion(s models.QuerySuggestion) {
	fmt.Println("\n🤖 AI interpreted your query:")
	fmt.Printf("   Components: %s\n", strings.Join(s.Components, ", "))
	if len(s.Keywords) > 0 {
		fmt.Printf("   Keywords:   %s\n", strings.Join(s.Keywords, ", "))
	}
	fmt.Printf("   Price:      %s\n", formatPriceRange(s.PriceRange))
	if s.Reasoning != "" {
		fmt.Printf("   Reasoning:  %s\n", s.Reasoning)
	}
	fmt.Println()
}

func printSample(records []*models.Record, n int) {
	if n > len(records) {
		n = len(records)
	}
	fmt.Printf("\n  Showing %d of %d results:\n", n, len(records))
	for i, rec := range records[:n] {
		fmt.Printf("  %2d. %s | %s\n", i+1, rec.Name, rec.Price)
		if rec.Analysis == nil {
			continue
		}
		marker := "💭"
		if rec.Analysis.IsGoodDeal {
			marker = "🔥"
		}
		fmt.Printf("      %s score %d/10, confidence %.0f%% | %s\n",
			marker, rec.Analysis.DealScore, rec.Analysis.Confidence*100, rec.Analysis.Reasoning)
	}
	fmt.Println()
}
