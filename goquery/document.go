// Package goquery implements goyax.Extractor by matching the GOYAX
// instrument page structure with CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/goyax"
	"golang.org/x/net/html"
)

// NewDocument parses markup into a queryable document.
func NewDocument(markup string) (*goquery.Document, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, goyax.Errorf(goyax.EEXTRACT, "failed to parse HTML: %v", err)
	}
	return goquery.NewDocumentFromNode(root), nil
}

// text returns the selection's combined text with surrounding whitespace removed.
// An empty selection yields "".
func text(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}
