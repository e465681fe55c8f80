package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/goyax"
)

const statisticsSelector = "div.instrument-statistik.mt-10"

// ExtractStatistics extracts the statistics table.
// Headers come from the th cells of the region's first row. Each body row
// yields its leading th label ("" if absent) followed by its td cells.
// Returns ETABLE if the statistics region is missing.
func ExtractStatistics(doc *goquery.Document) (*goyax.StatisticsTable, error) {
	region := doc.Find(statisticsSelector).First()
	if region.Length() == 0 {
		return nil, goyax.Errorf(goyax.ETABLE, "table data section not found")
	}

	table := &goyax.StatisticsTable{
		Headers: []string{},
		Rows:    [][]string{},
	}

	region.Find("tr").First().Find("th").Each(func(_ int, th *goquery.Selection) {
		table.Headers = append(table.Headers, text(th))
	})

	region.Find("tbody").First().Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := []string{text(tr.Find("th").First())}
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, text(td))
		})
		table.Rows = append(table.Rows, cells)
	})

	return table, nil
}
