package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Strategy selects how reward tables are discovered on a category page
type Strategy string

const (
	// StrategyFlagged takes every marked table with a base gold header
	StrategyFlagged Strategy = "flagged"
	// StrategyHeading resolves one table per level-3 section heading
	StrategyHeading Strategy = "heading"
)

// Valid reports whether s is a known strategy
func (s Strategy) Valid() bool {
	return s == StrategyFlagged || s == StrategyHeading
}

// Candidate is a discovered table together with the title of its sheet
type Candidate struct {
	Title string
	Table DataTable
}

// Discover finds the reward tables of a category page using strategy.
// locator is only consulted by StrategyHeading.
func Discover(doc *goquery.Document, category string, strategy Strategy, locator TableLocator) ([]Candidate, error) {
	switch strategy {
	case StrategyFlagged:
		return flaggedTables(doc, category), nil
	case StrategyHeading:
		if locator == nil {
			locator = SiblingLocator{}
		}
		return headingTables(doc, category, locator), nil
	default:
		return nil, fmt.Errorf("unknown discovery strategy: %q", strategy)
	}
}

// flaggedTables returns every marked table whose header mentions base gold,
// numbered in document order
func flaggedTables(doc *goquery.Document, category string) []Candidate {
	candidates := make([]Candidate, 0)

	doc.Find("table." + DataTableClass).Each(func(_ int, sel *goquery.Selection) {
		table := NewTable(sel)
		if !HasBaseGoldHeader(table) {
			return
		}
		candidates = append(candidates, Candidate{
			Title: fmt.Sprintf("%s Treasure %d", category, len(candidates)+1),
			Table: table,
		})
	})

	return candidates
}

// headingTables resolves a table for each h3 that carries a MediaWiki
// headline span. Headings without a table, or whose table has no base gold
// column, contribute nothing.
func headingTables(doc *goquery.Document, category string, locator TableLocator) []Candidate {
	candidates := make([]Candidate, 0)

	doc.Find("h3").Each(func(_ int, h3 *goquery.Selection) {
		span := h3.Find("span.mw-headline").First()
		if span.Length() == 0 {
			return
		}

		table, ok := locator.Locate(h3)
		if !ok || !HasBaseGoldHeader(table) {
			return
		}

		candidates = append(candidates, Candidate{
			Title: fmt.Sprintf("%s - %s", category, strings.TrimSpace(span.Text())),
			Table: table,
		})
	})

	return candidates
}
