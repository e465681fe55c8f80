package goquery_test

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	goyaxgoquery "github.com/fwojciec/goyax/goquery"
	"github.com/stretchr/testify/require"
)

// instrumentPage is a trimmed-down GOYAX instrument overview page.
const instrumentPage = `<!DOCTYPE html>
<html>
<head><title>Arbitrage Investment AG</title></head>
<body>
<div class="instrument-header">
	<div class="instrument-fullname">
		<h1>
			Arbitrage Investment
		</h1>
		<p> AG </p>
	</div>
	<p class="instrument-details">
		<span class="badge" aria-label="ISIN">ISIN: DE000A3E5A26</span>
		<span class="badge" aria-label="WKN">WKN: A3E5A2</span>
		<span class="badge" aria-label="Währung">Währung: EUR</span>
		<span class="badge">Aktie</span>
	</p>
	<div class="price-box">
		<span class="main-price"> 1,23 </span>
		<span class="unit">EUR</span>
	</div>
</div>
<div class="instrument-statistik mt-10">
	<table>
		<thead>
			<tr><th></th><th>1 Woche</th><th>1 Monat</th><th>1 Jahr</th></tr>
		</thead>
		<tbody>
			<tr><th>Hoch</th><td>1,30</td><td>1,45</td><td>2,10</td></tr>
			<tr><th>Tief</th><td>1,20</td><td>1,15</td><td>0,95</td></tr>
			<tr><td>ohne Label</td></tr>
		</tbody>
	</table>
</div>
<div class="wrap-areas wrap-area-aside">
	<div class="section-area">
		<h2>Stammdaten</h2>
		<ul class="list-rows">
			<li><span>Land</span><span>Deutschland</span></li>
			<li><span>Branche</span><span> Finanzdienstleistungen </span></li>
			<li><span>Nur ein Span</span></li>
		</ul>
	</div>
	<div class="section-area">
		<ul class="list-rows">
			<li><span>Untitled</span><span>ignored</span></li>
		</ul>
	</div>
	<div class="section-area">
		<h2>Ohne Liste</h2>
	</div>
</div>
</body>
</html>`

func mustDocument(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goyaxgoquery.NewDocument(markup)
	require.NoError(t, err)
	return doc
}
