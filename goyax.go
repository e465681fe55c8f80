// Package goyax extracts structured stock data from a GOYAX instrument page.
// It fetches the page, matches the instrument's name, price, badges,
// statistics table and side-panel sections, and persists the result as a
// JSON document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package goyax

// DefaultURL is the instrument page scraped when no URL is given.
const DefaultURL = "https://www.goyax.de/aktien/DE000A3E5A26/arbitrage-investment-ag/#instrument-ueberblick"
