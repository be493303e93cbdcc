package browser

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/chromedp/chromedp"

	"pcpart-scraper/config"
	"pcpart-scraper/scraper"
	"pcpart-scraper/utils"
)

const pageTimeout = 90 * time.Second

// Profile tells a Session where a catalog lives and how its page is shaped.
type Profile struct {
	// URL is the entry page.
	URL string
	// WaitSelector must be visible before rows are read.
	WaitSelector string
	// RowSelector matches every listing row on the page.
	RowSelector string
	// NextSelector matches the next-page control.
	NextSelector string
}

// CatalogProfile builds the profile for a component catalog. Every catalog
// of the source site shares the same product-table markup.
func CatalogProfile(cat scraper.Catalog) Profile {
	return Profile{
		URL:          cat.URL,
		WaitSelector: "table#product-table",
		RowSelector:  "table#product-table tbody tr",
		NextSelector: "a[aria-label='Next page']",
	}
}

// Session drives one headless-browser tab through a paginated catalog. The
// tab lives for the whole walk because next-page navigation happens by
// clicking inside the loaded page, not by building URLs.
type Session struct {
	profile Profile
	log     *utils.Logger
	retry   *utils.RetryConfig

	ctx         context.Context
	tabCancel   context.CancelFunc
	allocCancel context.CancelFunc

	pageURL string
}

// NewSession allocates a browser for one catalog walk. ctx bounds the whole
// browser lifetime; cancelling it aborts any in-flight page operation.
func NewSession(ctx context.Context, cfg *config.Config, profile Profile, log *utils.Logger) *Session {
	chromeBin := findChromeBinary(cfg.ChromeBin)
	if chromeBin != "" {
		log.Debug("Using browser binary: %s", chromeBin)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("lang", "fr-FR"),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)

	// Suppress chromedp log noise
	tabCtx, tabCancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	return &Session{
		profile: profile,
		log:     log,
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      log,
		},
		ctx:         tabCtx,
		tabCancel:   tabCancel,
		allocCancel: allocCancel,
	}
}

// Load navigates to the catalog entry page and waits for the product table.
// Opening is the one navigation that gets retried: the site sits behind a
// bot-detection interstitial that sometimes needs a second pass.
func (s *Session) Load(ctx context.Context) error {
	return s.retry.Do(ctx, "open-catalog", func() error {
		opCtx, cancel := context.WithTimeout(s.ctx, pageTimeout)
		defer cancel()

		err := chromedp.Run(opCtx,
			chromedp.Navigate(s.profile.URL),
			chromedp.Sleep(3*time.Second),
			chromedp.WaitVisible(s.profile.WaitSelector, chromedp.ByQuery),
			chromedp.Location(&s.pageURL),
		)
		if err != nil {
			return fmt.Errorf("open %s: %w", s.profile.URL, err)
		}
		return nil
	})
}

// Rows lifts every listing row off the current page in a single evaluate
// and parses them outside the browser. An empty slice means the page shows
// no rows, which the caller treats as end-of-listing.
func (s *Session) Rows(ctx context.Context) ([]scraper.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opCtx, cancel := context.WithTimeout(s.ctx, pageTimeout)
	defer cancel()

	var rowHTML []string
	harvest := fmt.Sprintf(
		`Array.from(document.querySelectorAll(%s)).map(function(el) { return el.outerHTML; })`,
		strconv.Quote(s.profile.RowSelector),
	)

	err := chromedp.Run(opCtx,
		chromedp.WaitVisible(s.profile.WaitSelector, chromedp.ByQuery),
		chromedp.Evaluate(harvest, &rowHTML),
		chromedp.Location(&s.pageURL),
	)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	return parseRows(rowHTML, s.pageURL)
}

// HasNext reports whether an enabled next-page control is on the page.
func (s *Session) HasNext(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	opCtx, cancel := context.WithTimeout(s.ctx, pageTimeout)
	defer cancel()

	check := fmt.Sprintf(`(function() {
		var el = document.querySelector(%s);
		if (!el) return false;
		if (el.getAttribute('aria-disabled') === 'true') return false;
		if (el.classList.contains('disabled')) return false;
		return true;
	})()`, strconv.Quote(s.profile.NextSelector))

	var enabled bool
	if err := chromedp.Run(opCtx, chromedp.Evaluate(check, &enabled)); err != nil {
		return false, fmt.Errorf("check next control: %w", err)
	}
	return enabled, nil
}

// Next clicks the next-page control and waits for the table to re-render.
// Not retried: a failed click is reported to the caller and ends the walk.
func (s *Session) Next(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opCtx, cancel := context.WithTimeout(s.ctx, pageTimeout)
	defer cancel()

	err := chromedp.Run(opCtx,
		chromedp.Click(s.profile.NextSelector, chromedp.ByQuery),
		chromedp.Sleep(3*time.Second),
		chromedp.WaitVisible(s.profile.WaitSelector, chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("next page: %w", err)
	}
	return nil
}

// Close tears the browser down.
func (s *Session) Close() error {
	s.tabCancel()
	s.allocCancel()
	return nil
}

// findChromeBinary locates a Chrome/Chromium binary, preferring the
// configured path.
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
