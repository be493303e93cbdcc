package scraper

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"pcpart-scraper/models"
)

// Reasons carried by RowParseFailure.
const (
	ReasonInsufficientCells = "insufficient cells"
	ReasonEmptyName         = "empty name"
)

// RowParseFailure marks one row that could not become a Record. It is
// counted and skipped by the caller, never propagated past the owning page.
type RowParseFailure struct {
	Page   int
	Row    int
	Reason string
}

func (e *RowParseFailure) Error() string {
	return fmt.Sprintf("page %d row %d: %s", e.Page, e.Row, e.Reason)
}

// Layout names the meaning of each leading row cell. Position 0 is always
// the product name, position 1 the display price; every later entry becomes
// a record attribute under its own name. Cells beyond the layout are
// ignored.
type Layout []string

// DefaultLayout matches the component tables of the catalog source.
var DefaultLayout = Layout{"name", "price", "rating", "compatibility"}

var whitespaceRE = regexp.MustCompile(`\s+`)

// normalizeSpace collapses whitespace runs so keyword matching operates on a
// stable single-spaced text.
func normalizeSpace(s string) string {
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
}

// RecordParser extracts Records from rendered listing rows. Pure extraction
// over already-rendered content; it performs no I/O.
type RecordParser struct {
	layout Layout
	now    func() time.Time
}

func NewRecordParser(layout Layout) *RecordParser {
	if len(layout) < 2 {
		layout = DefaultLayout
	}
	return &RecordParser{layout: layout, now: time.Now}
}

// ParseRow turns one row into a Record. page and index are 1-based
// provenance. On failure the error is always a *RowParseFailure; the caller
// treats each row independently, so one bad row never aborts its page.
func (p *RecordParser) ParseRow(row Row, page, index int) (*models.Record, error) {
	if row.CellCount() < len(p.layout) {
		return nil, &RowParseFailure{Page: page, Row: index, Reason: ReasonInsufficientCells}
	}

	name := strings.TrimSpace(row.CellText(0))
	if name == "" {
		return nil, &RowParseFailure{Page: page, Row: index, Reason: ReasonEmptyName}
	}

	rec := &models.Record{
		Name:       name,
		Price:      strings.TrimSpace(row.CellText(1)),
		URL:        row.CellLink(0),
		RawText:    normalizeSpace(row.Text()),
		SourcePage: page,
		RowIndex:   index,
		CapturedAt: p.now(),
	}

	for i := 2; i < len(p.layout); i++ {
		value := strings.TrimSpace(row.CellText(i))
		if value == "" {
			continue
		}
		if rec.Attributes == nil {
			rec.Attributes = make(map[string]string, len(p.layout)-2)
		}
		rec.Attributes[p.layout[i]] = value
	}

	return rec, nil
}
