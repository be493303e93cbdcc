package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Verbose bool `long:"verbose" description:"Enable debug logging"`
}

// ScrapeCommand scrapes component catalogs into timestamped datasets.
type ScrapeCommand struct {
	Components []string `long:"components" short:"c" description:"Component category to scrape (repeatable; 'all' or omit for every category)"`
	Target     int      `long:"target" description:"Stop a category after this many records (0 uses TARGET_COUNT)"`
	MaxPages   int      `long:"max-pages" description:"Visit at most this many listing pages per category (0 uses MAX_PAGES)"`
	Output     string   `long:"output" short:"o" description:"Directory for dataset files (defaults to OUTPUT_DIR)"`

	globals *GlobalFlags
}

// MixCommand filters and combines previously scraped datasets.
type MixCommand struct {
	Components  []string `long:"components" short:"c" description:"Component categories to mix (repeatable; 'all' for every category)"`
	Keywords    []string `long:"keywords" short:"k" description:"Keyword a record's raw text must contain (repeatable, all must match)"`
	MinPrice    *float64 `long:"min-price" description:"Keep only records priced at or above this value"`
	MaxPrice    *float64 `long:"max-price" description:"Keep only records priced at or below this value"`
	AIQuery     string   `long:"ai-query" short:"q" description:"Natural-language request translated into components, keywords and price bounds"`
	AIAnalyze   bool     `long:"ai-analyze" short:"a" description:"Run AI deal analysis on the cheapest matches"`
	MaxAnalyze  int      `long:"max-analyze" description:"Cap on records sent for deal analysis (0 uses MAX_ANALYZE)"`
	Output      string   `long:"output" short:"o" description:"Output file path (auto-generated when omitted)"`
	Interactive bool     `long:"interactive" short:"i" description:"Prompt for mix parameters instead of reading flags"`

	globals *GlobalFlags
}
