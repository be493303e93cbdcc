package cli

import (
	"fmt"
	"strings"

	"pcpart-scraper/models"
	"pcpart-scraper/scraper"
)

// resolveCatalogs maps user-supplied component keys to their catalogs. The
// key "all" selects every catalog. Unknown keys are collected into a single
// error so the user sees every mistake at once.
func resolveCatalogs(keys []string) ([]scraper.Catalog, error) {
	for _, key := range keys {
		if strings.EqualFold(strings.TrimSpace(key), "all") {
			return scraper.Catalogs(), nil
		}
	}

	var (
		catalogs []scraper.Catalog
		invalid  []string
		seen     = make(map[string]bool)
	)
	for _, key := range keys {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		cat, ok := scraper.CatalogByKey(key)
		if !ok {
			invalid = append(invalid, key)
			continue
		}
		catalogs = append(catalogs, cat)
	}

	if len(invalid) > 0 {
		return nil, fmt.Errorf("invalid components: %s (available: %s)",
			strings.Join(invalid, ", "), strings.Join(scraper.CatalogKeys(), ", "))
	}
	if len(catalogs) == 0 {
		return nil, fmt.Errorf("no components selected (available: %s)",
			strings.Join(scraper.CatalogKeys(), ", "))
	}
	return catalogs, nil
}

func catalogKeys(catalogs []scraper.Catalog) []string {
	keys := make([]string, len(catalogs))
	for i, cat := range catalogs {
		keys[i] = cat.Key
	}
	return keys
}

func formatPriceRange(pr models.PriceRange) string {
	switch {
	case pr.Min != nil && pr.Max != nil:
		return fmt.Sprintf("€%.0f to €%.0f", *pr.Min, *pr.Max)
	case pr.Min != nil:
		return fmt.Sprintf("from €%.0f", *pr.Min)
	case pr.Max != nil:
		return fmt.Sprintf("up to €%.0f", *pr.Max)
	default:
		return "any"
	}
}
