// Package scraper provides HTTP fetching and HTML table extraction for the
// Sea of Thieves wiki treasure pages.
//
// The scraper package fetches a wiki page, discovers the reward tables on it
// (either every flagged "wikitable" with a base gold column, or the table that
// belongs to each level-3 section heading), and converts table rows into
// reward entries. Tables are exposed through the DataTable interface so the
// extraction logic does not depend on goquery, and heading-to-table matching
// is pluggable through TableLocator.
package scraper
