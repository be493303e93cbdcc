package scraper

import "context"

// Row is one listing row as surfaced by the page session. Implementations
// wrap whatever the rendering layer produced; the parser only ever reads
// cells and text through this interface.
type Row interface {
	// CellCount reports how many cells the row exposes.
	CellCount() int
	// CellText returns the trimmed text content of cell i.
	CellText(i int) string
	// CellLink returns the absolute href of the first link inside cell i,
	// or "" when the cell carries no link.
	CellLink(i int) string
	// Text returns the full text of the row, used for keyword matching.
	Text() string
}

// Session is the rendered-page collaborator the paginator drives. It owns
// everything browser-shaped: navigation, waiting for content, reading rows,
// and next-control interaction. The pagination logic never sees a URL or a
// selector, only this surface.
type Session interface {
	// Load navigates to the first catalog page and waits for content.
	Load(ctx context.Context) error
	// Rows returns the listing rows of the current page. An empty slice is
	// a valid answer and signals catalog exhaustion.
	Rows(ctx context.Context) ([]Row, error)
	// HasNext reports whether an enabled next-page control is present.
	HasNext(ctx context.Context) (bool, error)
	// Next activates the next-page control and waits for the new page.
	Next(ctx context.Context) error
	// Close releases browser resources.
	Close() error
}
