package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	goflags "github.com/jessevdk/go-flags"
)

// parseOnly parses args without executing the matched command.
func parseOnly(t *testing.T, args ...string) (*GlobalFlags, *commands) {
	t.Helper()
	parser, globals, cmds := buildParser()
	parser.CommandHandler = func(goflags.Commander, []string) error { return nil }
	if _, err := parser.ParseArgs(args); err != nil {
		t.Fatalf("ParseArgs(%v) error = %v", args, err)
	}
	return globals, cmds
}

func TestVersionFlag(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := RunWithArgs("1.2.3", []string{"--version"})

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)

	if err != nil {
		t.Fatalf("RunWithArgs() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "pcpart-scraper 1.2.3" {
		t.Errorf("version output = %q", got)
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	parser, _, _ := buildParser()
	for _, name := range []string{"scrape", "mix"} {
		if parser.Find(name) == nil {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestUnknownSubcommandFails(t *testing.T) {
	parser, _, _ := buildParser()
	if _, err := parser.ParseArgs([]string{"nonexistent"}); err == nil {
		t.Error("unknown subcommand should fail")
	}
}

func TestHelpDoesNotError(t *testing.T) {
	if err := RunWithArgs("test", []string{"--help"}); err != nil {
		t.Errorf("RunWithArgs(--help) error = %v", err)
	}
}

func TestScrapeFlagParsing(t *testing.T) {
	globals, cmds := parseOnly(t, "--verbose", "scrape",
		"-c", "cpu", "-c", "memory", "--target", "200", "--max-pages", "3", "-o", "/tmp/datasets")

	if !globals.Verbose {
		t.Error("verbose flag not set")
	}
	if got := strings.Join(cmds.Scrape.Components, ","); got != "cpu,memory" {
		t.Errorf("Components = %q", got)
	}
	if cmds.Scrape.Target != 200 || cmds.Scrape.MaxPages != 3 {
		t.Errorf("Target = %d, MaxPages = %d", cmds.Scrape.Target, cmds.Scrape.MaxPages)
	}
	if cmds.Scrape.Output != "/tmp/datasets" {
		t.Errorf("Output = %q", cmds.Scrape.Output)
	}
}

func TestMixFlagParsing(t *testing.T) {
	_, cmds := parseOnly(t, "mix",
		"-c", "cpu", "-c", "memory", "-k", "ddr4", "-k", "corsair",
		"--min-price", "50", "--max-price", "150.5",
		"-q", "quiet gaming build", "-a", "--max-analyze", "10", "-o", "out.json")

	mix := cmds.Mix
	if got := strings.Join(mix.Components, ","); got != "cpu,memory" {
		t.Errorf("Components = %q", got)
	}
	if got := strings.Join(mix.Keywords, ","); got != "ddr4,corsair" {
		t.Errorf("Keywords = %q", got)
	}
	if mix.MinPrice == nil || *mix.MinPrice != 50 {
		t.Errorf("MinPrice = %v, want 50", mix.MinPrice)
	}
	if mix.MaxPrice == nil || *mix.MaxPrice != 150.5 {
		t.Errorf("MaxPrice = %v, want 150.5", mix.MaxPrice)
	}
	if mix.AIQuery != "quiet gaming build" {
		t.Errorf("AIQuery = %q", mix.AIQuery)
	}
	if !mix.AIAnalyze || mix.MaxAnalyze != 10 {
		t.Errorf("AIAnalyze = %v, MaxAnalyze = %d", mix.AIAnalyze, mix.MaxAnalyze)
	}
	if mix.Output != "out.json" {
		t.Errorf("Output = %q", mix.Output)
	}
}

func TestMixPriceFlagsDefaultNil(t *testing.T) {
	_, cmds := parseOnly(t, "mix", "-c", "cpu")
	if cmds.Mix.MinPrice != nil || cmds.Mix.MaxPrice != nil {
		t.Error("price bounds should stay nil when the flags are absent")
	}
}

func TestResolveCatalogsAll(t *testing.T) {
	catalogs, err := resolveCatalogs([]string{"all"})
	if err != nil {
		t.Fatalf("resolveCatalogs(all) error = %v", err)
	}
	if len(catalogs) != 8 {
		t.Errorf("catalogs = %d, want 8", len(catalogs))
	}
}

func TestResolveCatalogsNormalizes(t *testing.T) {
	catalogs, err := resolveCatalogs([]string{"CPU", " memory ", "cpu"})
	if err != nil {
		t.Fatalf("resolveCatalogs() error = %v", err)
	}
	if len(catalogs) != 2 || catalogs[0].Key != "cpu" || catalogs[1].Key != "memory" {
		t.Errorf("catalogs = %v", catalogKeys(catalogs))
	}
}

func TestResolveCatalogsInvalid(t *testing.T) {
	_, err := resolveCatalogs([]string{"cpu", "floppy", "tape_drive"})
	if err == nil {
		t.Fatal("unknown components should fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "floppy") || !strings.Contains(msg, "tape_drive") {
		t.Errorf("error should name every invalid component, got %q", msg)
	}
	if !strings.Contains(msg, "available") || !strings.Contains(msg, "power_supply") {
		t.Errorf("error should list the available components, got %q", msg)
	}
}

func TestResolveCatalogsEmpty(t *testing.T) {
	if _, err := resolveCatalogs(nil); err == nil {
		t.Error("empty selection should fail")
	}
}
