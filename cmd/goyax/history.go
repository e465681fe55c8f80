package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/goyax"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := goyax.SnapshotFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}

	snapshots, err := deps.Snapshots.FindSnapshots(deps.Ctx, filter)
	if err != nil {
		return err
	}

	if len(snapshots) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots found. Use 'goyax scrape --db <path>' to record one.")
		return nil
	}

	for _, s := range snapshots {
		record := s.Report.MainStockData
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  %s\n",
			s.ID, s.FetchedAt.Format(time.RFC3339), s.ContentHash, record.Name, record.Price)
	}

	return nil
}
