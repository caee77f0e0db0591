package reward

// Entry is one treasure item extracted from a wiki table row
type Entry struct {
	Name   string  `json:"name"`
	Median float64 `json:"median"`
}

// Row is a single line of the consolidated "All Medians" sheet
type Row struct {
	Category   string  `json:"category"`
	Name       string  `json:"name"`
	Median     float64 `json:"median"`
	Multiplier float64 `json:"multiplier"`
}

// NewRow creates a Row for an entry extracted from the given category
func NewRow(category string, e Entry, multiplier float64) Row {
	return Row{
		Category:   category,
		Name:       e.Name,
		Median:     e.Median,
		Multiplier: multiplier,
	}
}

// Total returns the value the spreadsheet formula for this row evaluates to.
// The workbook itself always stores the formula, never this number.
func (r Row) Total() float64 {
	return r.Median * r.Multiplier
}

// SumTotals adds up Total for every row
func SumTotals(rows []Row) float64 {
	var sum float64
	for _, r := range rows {
		sum += r.Total()
	}
	return sum
}
