package scraper

import (
	"context"
	"errors"
	"testing"

	"pcpart-scraper/utils"
)

func TestPaginatorZeroRowPageExhausts(t *testing.T) {
	sess := &fakeSession{pages: []fakePage{{rows: nil, hasNext: true}}}
	pag := NewPaginator(sess, utils.NewLogger(false))

	if err := pag.Open(context.Background()); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	rows, err := pag.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %d, want 0", len(rows))
	}
	if pag.State() != Exhausted {
		t.Errorf("state = %v, want exhausted", pag.State())
	}
	if sess.hasNextCalls != 0 {
		t.Error("a zero-row page is terminal; the next control must not be consulted")
	}
}

func TestPaginatorRowsAndNextMeansHasMore(t *testing.T) {
	sess := &fakeSession{pages: []fakePage{
		{rows: productRows(1, 3), hasNext: true},
		{rows: productRows(2, 3), hasNext: false},
	}}
	pag := NewPaginator(sess, utils.NewLogger(false))

	if err := pag.Open(context.Background()); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	rows, err := pag.Fetch(context.Background())
	if err != nil || len(rows) != 3 {
		t.Fatalf("Fetch() = %d rows, %v", len(rows), err)
	}
	if pag.State() != HasMore {
		t.Fatalf("state = %v, want has more", pag.State())
	}

	if !pag.Next(context.Background()) {
		t.Fatal("Next() should advance from has more")
	}
	if pag.Page() != 2 {
		t.Errorf("Page() = %d, want 2", pag.Page())
	}

	rows, err = pag.Fetch(context.Background())
	if err != nil || len(rows) != 3 {
		t.Fatalf("second Fetch() = %d rows, %v", len(rows), err)
	}
	if pag.State() != Exhausted {
		t.Errorf("state = %v, want exhausted when next control is disabled", pag.State())
	}
}

func TestPaginatorRowReadFailure(t *testing.T) {
	sess := &fakeSession{pages: []fakePage{{rowsErr: errors.New("timeout waiting for table")}}}
	pag := NewPaginator(sess, utils.NewLogger(false))

	if err := pag.Open(context.Background()); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	_, err := pag.Fetch(context.Background())
	var failure *PageLoadFailure
	if !errors.As(err, &failure) {
		t.Fatalf("Fetch() error = %v, want *PageLoadFailure", err)
	}
	if failure.Page != 1 {
		t.Errorf("failure page = %d, want 1", failure.Page)
	}
	if pag.State() != Exhausted {
		t.Errorf("state = %v, want exhausted", pag.State())
	}
}

func TestPaginatorNextControlCheckFailureKeepsRows(t *testing.T) {
	sess := &fakeSession{pages: []fakePage{
		{rows: productRows(1, 5), hasNextErr: errors.New("stale element")},
	}}
	pag := NewPaginator(sess, utils.NewLogger(false))

	if err := pag.Open(context.Background()); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	rows, err := pag.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(rows) != 5 {
		t.Errorf("rows = %d, want 5 (page rows survive a next-control failure)", len(rows))
	}
	if pag.State() != Exhausted {
		t.Errorf("state = %v, want exhausted", pag.State())
	}
}

func TestPaginatorNavigationFailureExhausts(t *testing.T) {
	sess := &fakeSession{
		pages:   []fakePage{{rows: productRows(1, 2), hasNext: true}},
		nextErr: errors.New("click intercepted"),
	}
	pag := NewPaginator(sess, utils.NewLogger(false))

	if err := pag.Open(context.Background()); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := pag.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if pag.Next(context.Background()) {
		t.Error("Next() should fail when navigation raises")
	}
	if pag.State() != Exhausted {
		t.Errorf("state = %v, want exhausted", pag.State())
	}
}

func TestPaginatorExhaustedIsTerminal(t *testing.T) {
	sess := &fakeSession{pages: []fakePage{{rows: nil}}}
	pag := NewPaginator(sess, utils.NewLogger(false))

	if err := pag.Open(context.Background()); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := pag.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if pag.State() != Exhausted {
		t.Fatalf("state = %v, want exhausted", pag.State())
	}

	for i := 0; i < 3; i++ {
		if pag.Next(context.Background()) {
			t.Fatal("Next() must keep reporting false once exhausted")
		}
	}
	if sess.nextCalls != 0 {
		t.Errorf("session.Next called %d times after exhaustion, want 0", sess.nextCalls)
	}
	if rows, _ := pag.Fetch(context.Background()); rows != nil {
		t.Error("Fetch() after exhaustion should return nothing")
	}
}

func TestPaginatorOpenFailure(t *testing.T) {
	sess := &fakeSession{loadErr: errors.New("net::ERR_CONNECTION_RESET")}
	pag := NewPaginator(sess, utils.NewLogger(false))

	err := pag.Open(context.Background())
	var failure *PageLoadFailure
	if !errors.As(err, &failure) {
		t.Fatalf("Open() error = %v, want *PageLoadFailure", err)
	}
	if pag.State() != Exhausted {
		t.Errorf("state = %v, want exhausted", pag.State())
	}
}
