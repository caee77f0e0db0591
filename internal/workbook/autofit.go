package workbook

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/xuri/excelize/v2"
)

// columnPadding is added to the widest cell of each column
const columnPadding = 2

// columnWidths tracks the widest text written to each column of one sheet
type columnWidths map[int]int

// observe records text written to column col (1-based)
func (c columnWidths) observe(col int, text string) {
	if w := runewidth.StringWidth(text); w > c[col] {
		c[col] = w
	}
}

// observeRow records a row of values starting at column 1
func (c columnWidths) observeRow(values ...interface{}) {
	for i, v := range values {
		c.observe(i+1, cellText(v))
	}
}

// apply sets each tracked column to its widest text plus padding
func (c columnWidths) apply(f *excelize.File, sheet string) error {
	for col, width := range c {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return fmt.Errorf("resolving column %d: %w", col, err)
		}
		if err := f.SetColWidth(sheet, name, name, float64(width+columnPadding)); err != nil {
			return fmt.Errorf("setting width of %s!%s: %w", sheet, name, err)
		}
	}
	return nil
}

// cellText renders a value the way it is measured for column sizing
func cellText(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return formatNumber(val)
	default:
		return fmt.Sprint(val)
	}
}
