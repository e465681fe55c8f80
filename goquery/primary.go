package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/goyax"
)

const (
	fullnameSelector  = "div.instrument-fullname"
	mainPriceSelector = "span.main-price"
	unitSelector      = "span.unit"
	detailsSelector   = "p.instrument-details"
	badgeSelector     = "span.badge"
	badgeLabelAttr    = "aria-label"
)

// labelFixes rewrites known non-ASCII badge labels before lower-casing.
// It only covers the currency badge; other labels pass through unchanged.
var labelFixes = map[string]string{
	"Währung": "Wahrung",
}

// ExtractPrimary extracts the instrument name, price and badges.
// The fullname region with its h1 and p, and the price with its unit, are
// required; the details region holding the badges is optional.
func ExtractPrimary(doc *goquery.Document) (*goyax.StockRecord, error) {
	fullname := doc.Find(fullnameSelector).First()
	if fullname.Length() == 0 {
		return nil, goyax.Errorf(goyax.EEXTRACT, "instrument fullname section not found")
	}

	heading := fullname.Find("h1").First()
	desc := fullname.Find("p").First()
	if heading.Length() == 0 || desc.Length() == 0 {
		return nil, goyax.Errorf(goyax.EEXTRACT, "name components not found in instrument fullname section")
	}

	price := doc.Find(mainPriceSelector).First()
	unit := doc.Find(unitSelector).First()
	if price.Length() == 0 || unit.Length() == 0 {
		return nil, goyax.Errorf(goyax.EEXTRACT, "price components not found")
	}

	return &goyax.StockRecord{
		Name:   text(heading) + " " + text(desc),
		Price:  text(price) + " " + text(unit),
		Badges: ExtractBadges(doc),
	}, nil
}

// ExtractBadges returns the labeled badges of the instrument details region.
// Badges without an aria-label are skipped. Returns an empty map when the
// region is absent.
func ExtractBadges(doc *goquery.Document) goyax.Badges {
	badges := make(goyax.Badges)
	doc.Find(detailsSelector).First().Find(badgeSelector).Each(func(_ int, sel *goquery.Selection) {
		label, ok := sel.Attr(badgeLabelAttr)
		if !ok || label == "" {
			return
		}
		badges[badgeLabel(label)] = badgeValue(sel.Text())
	})
	return badges
}

func badgeLabel(label string) string {
	if fixed, ok := labelFixes[label]; ok {
		label = fixed
	}
	return strings.ToLower(label)
}

// badgeValue returns the text after the first colon, or the whole text
// when there is none. "ISIN: DE000A3E5A26" yields "DE000A3E5A26".
func badgeValue(s string) string {
	if _, after, found := strings.Cut(s, ":"); found {
		return strings.TrimSpace(after)
	}
	return strings.TrimSpace(s)
}
