package scraper

import (
	"context"
	"fmt"

	"pcpart-scraper/utils"
)

// State of the paginator.
type State int

const (
	// Loading means a page has been requested and its rows not yet read.
	Loading State = iota
	// HasMore means the current page produced rows and an enabled next
	// control exists.
	HasMore
	// Exhausted is terminal: no further pages will be requested.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case HasMore:
		return "has more"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// PageLoadFailure wraps a navigation or read failure reported by the page
// session. It ends pagination; whatever was gathered before it is kept.
type PageLoadFailure struct {
	Page int
	Err  error
}

func (e *PageLoadFailure) Error() string {
	return fmt.Sprintf("page %d load failed: %v", e.Page, e.Err)
}

func (e *PageLoadFailure) Unwrap() error { return e.Err }

// Paginator walks a catalog one page at a time and decides when the walk is
// over. A zero-row page, a missing or disabled next control, and any
// session failure all end the walk; none of them is retried.
type Paginator struct {
	session Session
	state   State
	page    int
	log     *utils.Logger
}

func NewPaginator(session Session, log *utils.Logger) *Paginator {
	return &Paginator{session: session, state: Loading, page: 1, log: log}
}

// State reports the current pagination state.
func (p *Paginator) State() State { return p.state }

// Page reports the 1-based number of the page currently loaded.
func (p *Paginator) Page() int { return p.page }

// Open navigates to the first catalog page. A failure here exhausts the
// paginator immediately.
func (p *Paginator) Open(ctx context.Context) error {
	if err := p.session.Load(ctx); err != nil {
		p.state = Exhausted
		return &PageLoadFailure{Page: p.page, Err: err}
	}
	return nil
}

// Fetch reads the rows of the currently loaded page and settles the state:
// HasMore when the page produced rows and an enabled next control exists,
// Exhausted otherwise. A zero-row page is authoritative end-of-listing, not
// a transient error, so the next control is not even consulted. When the
// next-control check itself fails the page's rows are still returned; only
// the walk ends.
func (p *Paginator) Fetch(ctx context.Context) ([]Row, error) {
	if p.state != Loading {
		return nil, nil
	}

	rows, err := p.session.Rows(ctx)
	if err != nil {
		p.state = Exhausted
		return nil, &PageLoadFailure{Page: p.page, Err: err}
	}
	if len(rows) == 0 {
		p.state = Exhausted
		return nil, nil
	}

	hasNext, err := p.session.HasNext(ctx)
	if err != nil {
		p.log.Warn("Could not check for next page control: %v", err)
		p.state = Exhausted
		return rows, nil
	}
	if !hasNext {
		p.state = Exhausted
		return rows, nil
	}

	p.state = HasMore
	return rows, nil
}

// Next activates the next-page control, the only caller-triggered
// transition. It reports whether a new page is loading; once Exhausted it
// always reports false without touching the session.
func (p *Paginator) Next(ctx context.Context) bool {
	if p.state != HasMore {
		return false
	}
	if err := p.session.Next(ctx); err != nil {
		p.log.Warn("Navigation to page %d failed: %v", p.page+1, err)
		p.state = Exhausted
		return false
	}
	p.page++
	p.state = Loading
	return true
}
