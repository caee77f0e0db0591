package scraper

import (
	"github.com/pfrederiksen/treasure-medians/internal/reward"
)

// Default column positions of the item name and the reward range
const (
	NameColumn   = 0
	MedianColumn = 1
)

// ExtractStats counts the rows ExtractRowsWithStats did not turn into entries
type ExtractStats struct {
	Malformed int // too few cells
	Unparsed  int // reward text without a number
}

// Dropped returns the total number of rows left out
func (s ExtractStats) Dropped() int {
	return s.Malformed + s.Unparsed
}

// ExtractRows converts the data rows of t into reward entries, in table order.
// Rows without enough cells or without a parsable reward are skipped.
func ExtractRows(t DataTable, nameCol, medianCol int) []reward.Entry {
	entries, _ := ExtractRowsWithStats(t, nameCol, medianCol)
	return entries
}

// ExtractRowsWithStats is ExtractRows that also reports how many rows were dropped
func ExtractRowsWithStats(t DataTable, nameCol, medianCol int) ([]reward.Entry, ExtractStats) {
	var stats ExtractStats
	entries := make([]reward.Entry, 0)
	need := max(nameCol, medianCol) + 1

	for _, cells := range t.DataRows() {
		if len(cells) < need {
			stats.Malformed++
			continue
		}

		median, ok := reward.MedianFromRange(cells[medianCol])
		if !ok {
			stats.Unparsed++
			continue
		}

		entries = append(entries, reward.Entry{
			Name:   cells[nameCol],
			Median: median,
		})
	}

	return entries, stats
}
