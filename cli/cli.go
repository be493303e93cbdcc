package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Scrape *ScrapeCommand
	Mix    *MixCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser() (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "pcpart-scraper"
	parser.LongDescription = "Scrape French PC part listings into JSON/CSV datasets, then mix, filter and AI-analyze them."

	cmds := &commands{
		Scrape: &ScrapeCommand{globals: &globals},
		Mix:    &MixCommand{globals: &globals},
	}

	parser.AddCommand("scrape", "Scrape component catalogs", "Scrape one or more component catalogs from fr.pcpartpicker.com into timestamped JSON and CSV datasets.", cmds.Scrape)
	parser.AddCommand("mix", "Filter and combine scraped datasets", "Combine the latest datasets of the chosen components, narrow them by keyword and price, and optionally run AI deal analysis on the matches.", cmds.Mix)

	return parser, &globals, cmds
}

// Run is the main entry point for the CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the
// matched subcommand.
func RunWithArgs(version string, args []string) error {
	// go-flags requires a subcommand, but --version is valid without one.
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("pcpart-scraper %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser()

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
