package scraper

import (
	"context"
	"fmt"
	"strings"
)

// fakeRow backs the Row interface with plain cell data.
type fakeRow struct {
	cells []string
	links []string
}

func (r *fakeRow) CellCount() int { return len(r.cells) }

func (r *fakeRow) CellText(i int) string {
	if i < 0 || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

func (r *fakeRow) CellLink(i int) string {
	if i < 0 || i >= len(r.links) {
		return ""
	}
	return r.links[i]
}

func (r *fakeRow) Text() string { return strings.Join(r.cells, " ") }

// productRow builds a well-formed 4-cell row.
func productRow(name, price, rating, compat string) *fakeRow {
	return &fakeRow{
		cells: []string{name, price, rating, compat},
		links: []string{"https://example.com/p/" + strings.ReplaceAll(name, " ", "-")},
	}
}

// productRows builds n distinct well-formed rows for one page.
func productRows(page, n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = productRow(
			fmt.Sprintf("Part %d-%d", page, i+1),
			fmt.Sprintf("%d,99 €", 10+i),
			"4.5",
			"AM4",
		)
	}
	return rows
}

// fakePage scripts what the session serves for one page.
type fakePage struct {
	rows       []Row
	rowsErr    error
	hasNext    bool
	hasNextErr error
}

// fakeSession serves scripted pages in order.
type fakeSession struct {
	pages   []fakePage
	idx     int
	loadErr error
	nextErr error

	loadCalls    int
	hasNextCalls int
	nextCalls    int
	closed       bool
}

func (s *fakeSession) current() fakePage {
	if s.idx < len(s.pages) {
		return s.pages[s.idx]
	}
	return fakePage{}
}

func (s *fakeSession) Load(ctx context.Context) error {
	s.loadCalls++
	return s.loadErr
}

func (s *fakeSession) Rows(ctx context.Context) ([]Row, error) {
	p := s.current()
	return p.rows, p.rowsErr
}

func (s *fakeSession) HasNext(ctx context.Context) (bool, error) {
	s.hasNextCalls++
	p := s.current()
	return p.hasNext, p.hasNextErr
}

func (s *fakeSession) Next(ctx context.Context) error {
	s.nextCalls++
	if s.nextErr != nil {
		return s.nextErr
	}
	s.idx++
	return nil
}

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}
