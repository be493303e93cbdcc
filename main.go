package main

import (
	"os"

	goflags "github.com/jessevdk/go-flags"

	"pcpart-scraper/cli"
	"pcpart-scraper/utils"
)

const version = "2.0.0"

func main() {
	err := cli.Run(version)
	if err == nil {
		return
	}
	// go-flags already prints its own usage errors.
	if _, ok := err.(*goflags.Error); !ok {
		utils.NewLogger(false).Error("%v", err)
	}
	os.Exit(1)
}
