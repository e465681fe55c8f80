package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/goyax"
)

const (
	asideSelector   = "div.wrap-areas.wrap-area-aside"
	sectionSelector = "div.section-area"
	listSelector    = "ul.list-rows"
)

// ExtractSideData extracts the titled label/value sections of the side panel.
//
// Sections without an h2 title are skipped and sections without a list are
// left out. List items need at least two spans: the first is the label, the
// second the value. Returns EUNLISTED if the side panel is missing.
func ExtractSideData(doc *goquery.Document) (goyax.SideData, error) {
	aside := doc.Find(asideSelector).First()
	if aside.Length() == 0 {
		return nil, goyax.Errorf(goyax.EUNLISTED, "unlisted data section not found")
	}

	side := make(goyax.SideData)
	aside.Find(sectionSelector).Each(func(_ int, section *goquery.Selection) {
		title := section.Find("h2").First()
		if title.Length() == 0 {
			return
		}

		list := section.Find(listSelector).First()
		if list.Length() == 0 {
			return
		}

		entries := make(goyax.SideDataSection)
		list.Find("li").Each(func(_ int, li *goquery.Selection) {
			spans := li.Find("span")
			if spans.Length() < 2 {
				return
			}
			entries[text(spans.Eq(0))] = text(spans.Eq(1))
		})
		side[text(title)] = entries
	})

	return side, nil
}
