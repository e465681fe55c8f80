package main

import (
	"fmt"

	"github.com/fwojciec/goyax"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	url := c.URL
	if url == "" {
		url = goyax.DefaultURL
	}

	deps.Logger.Info("starting scraper", "url", url)

	if _, err := deps.Scraper.Run(deps.Ctx, url); err != nil {
		deps.Logger.Error("scraper failed",
			"code", goyax.ErrorCode(err),
			"err", goyax.ErrorMessage(err),
		)
		return err
	}

	deps.Logger.Info("scraper finished", "path", c.Out)
	fmt.Fprintf(deps.Stdout, "Saved main stock data to %s\n", c.Out)
	return nil
}
