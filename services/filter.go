package services

import (
	"strings"

	"pcpart-scraper/models"
)

// FilterEngine narrows record sets by keyword and price. Pure and
// order-preserving: the output keeps the input's relative order and the
// input slice is never modified.
type FilterEngine struct{}

func NewFilterEngine() *FilterEngine { return &FilterEngine{} }

// Apply returns the records matching spec. Keywords are conjunctive: every
// keyword must occur, case-insensitively, in the record's raw text. A record
// whose price cannot be derived is excluded whenever a price bound is set;
// with no bounds the price predicate is vacuously true.
func (e *FilterEngine) Apply(records []*models.Record, spec models.FilterSpec) []*models.Record {
	out := make([]*models.Record, 0, len(records))
	for _, rec := range records {
		if !matchesKeywords(rec, spec.Keywords) {
			continue
		}
		if !matchesPrice(rec, spec) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matchesKeywords(rec *models.Record, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	raw := strings.ToLower(rec.RawText)
	for _, kw := range keywords {
		if !strings.Contains(raw, strings.ToLower(kw)) {
			return false
		}
	}
	return true
}

func matchesPrice(rec *models.Record, spec models.FilterSpec) bool {
	if !spec.HasPriceBound() {
		return true
	}
	price, ok := rec.PriceValue()
	if !ok {
		return false
	}
	if spec.MinPrice != nil && price < *spec.MinPrice {
		return false
	}
	if spec.MaxPrice != nil && price > *spec.MaxPrice {
		return false
	}
	return true
}
