package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Record is one normalized catalog listing surviving parse. A Record is
// created once by the row parser and never mutated afterwards, with a single
// exception: a DealAnalysis may later be attached (additive only).
type Record struct {
	// Name is the product title, non-empty after trimming.
	Name string
	// Price keeps the display form exactly as scraped ("123,45 €", "$123.45").
	// The numeric value is derived on demand via PriceValue.
	Price string
	// URL points at the product detail page; may be empty.
	URL string
	// Attributes holds whichever extra fields the source page exposed
	// (rating, compatibility, vendor, location, date...). Absence of any
	// key is normal, not an error.
	Attributes map[string]string
	// RawText is the full concatenated text of the listing row. Keyword
	// search operates on its lower-cased form exclusively.
	RawText string
	// SourcePage and RowIndex record where the row was discovered, 1-based.
	SourcePage int
	RowIndex   int
	// CapturedAt is set once at parse time.
	CapturedAt time.Time

	// Analysis is the optional externally computed deal judgment.
	Analysis *DealAnalysis
}

// Identity derives the human-facing dedup key. It carries no uniqueness
// guarantee; catalog sources legitimately repeat entries across pages.
func (r *Record) Identity() string {
	return r.Name + "|" + r.URL
}

// PriceValue derives the numeric price from the display form by stripping
// currency markers and normalizing "," to the decimal point. The second
// return is false when the display form has no usable number; such records
// stay in the dataset but cannot take part in price-bounded filtering.
func (r *Record) PriceValue() (float64, bool) {
	return ParsePrice(r.Price)
}

// AttachAnalysis records the external deal judgment. This is the only
// permitted post-parse mutation of a Record.
func (r *Record) AttachAnalysis(a *DealAnalysis) {
	r.Analysis = a
}

// ParsePrice normalizes a display-form price string to a float. Everything
// except digits and separators is dropped, then "," becomes ".".
func ParsePrice(display string) (float64, bool) {
	var b strings.Builder
	for _, ch := range display {
		switch {
		case ch >= '0' && ch <= '9':
			b.WriteRune(ch)
		case ch == ',':
			b.WriteRune('.')
		case ch == '.':
			b.WriteRune(ch)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

// DealAnalysis is the externally supplied per-item quality judgment. It is
// attached to a Record as an optional annotation, never required.
type DealAnalysis struct {
	IsGoodDeal          bool    `json:"is_good_deal"`
	Confidence          float64 `json:"confidence"`
	DealScore           int     `json:"deal_score"`
	Reasoning           string  `json:"reasoning"`
	Recommendation      string  `json:"recommendation,omitempty"`
	MarketValueEstimate string  `json:"market_value_estimate,omitempty"`
}

// FilterSpec narrows a record set by keywords and price bounds. A nil bound
// means unbounded on that side; an empty keyword list matches everything.
type FilterSpec struct {
	Keywords []string
	MinPrice *float64
	MaxPrice *float64
}

// HasPriceBound reports whether at least one price bound is set.
func (s FilterSpec) HasPriceBound() bool {
	return s.MinPrice != nil || s.MaxPrice != nil
}

// PriceRange is the optional price suggestion inside a QuerySuggestion.
type PriceRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// QuerySuggestion is the structured output of the smart-query translation:
// search parameters derived from free-text user intent, always well-formed
// even when the external analysis call failed.
type QuerySuggestion struct {
	Keywords   []string   `json:"keywords"`
	Components []string   `json:"components"`
	PriceRange PriceRange `json:"price_range"`
	Reasoning  string     `json:"reasoning"`
}

// Spec converts the suggestion into a FilterSpec for the filter engine.
func (q QuerySuggestion) Spec() FilterSpec {
	return FilterSpec{
		Keywords: q.Keywords,
		MinPrice: q.PriceRange.Min,
		MaxPrice: q.PriceRange.Max,
	}
}

// reservedKeys are the fixed field names of the persisted record shape.
// Attribute names colliding with them are dropped on write.
var reservedKeys = map[string]struct{}{
	"name": {}, "price": {}, "url": {}, "raw_text": {},
	"page": {}, "row_index": {}, "scraped_at": {}, "ai_analysis": {},
}

// MarshalJSON flattens Attributes into the top-level object, matching the
// persisted shape: {"name", "price", "rating", "compatibility", ..., "url",
// "page", "row_index", "scraped_at", "ai_analysis"?}.
func (r *Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Attributes)+8)
	out["name"] = r.Name
	out["price"] = r.Price
	if r.URL != "" {
		out["url"] = r.URL
	}
	if r.RawText != "" {
		out["raw_text"] = r.RawText
	}
	out["page"] = r.SourcePage
	out["row_index"] = r.RowIndex
	out["scraped_at"] = r.CapturedAt.Format(time.RFC3339)
	for k, v := range r.Attributes {
		if _, reserved := reservedKeys[k]; reserved {
			continue
		}
		out[k] = v
	}
	if r.Analysis != nil {
		out["ai_analysis"] = r.Analysis
	}
	return json.Marshal(out)
}

// UnmarshalJSON reverses the flattening: fixed keys fill the struct fields,
// any other string-valued key folds back into Attributes. Unknown non-string
// values are ignored rather than rejected, since stored files may carry
// extras.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	str := func(key string) string {
		msg, ok := raw[key]
		if !ok {
			return ""
		}
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			return ""
		}
		return s
	}
	num := func(key string) int {
		msg, ok := raw[key]
		if !ok {
			return 0
		}
		var n int
		if err := json.Unmarshal(msg, &n); err != nil {
			return 0
		}
		return n
	}

	r.Name = str("name")
	r.Price = str("price")
	r.URL = str("url")
	r.RawText = str("raw_text")
	r.SourcePage = num("page")
	r.RowIndex = num("row_index")
	if ts, err := time.Parse(time.RFC3339, str("scraped_at")); err == nil {
		r.CapturedAt = ts
	}
	if msg, ok := raw["ai_analysis"]; ok {
		var analysis DealAnalysis
		if err := json.Unmarshal(msg, &analysis); err == nil {
			r.Analysis = &analysis
		}
	}

	for k, msg := range raw {
		if _, reserved := reservedKeys[k]; reserved {
			continue
		}
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			continue
		}
		if r.Attributes == nil {
			r.Attributes = make(map[string]string)
		}
		r.Attributes[k] = s
	}
	return nil
}
