package workbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pfrederiksen/treasure-medians/internal/reward"
)

// MasterSheetName is the consolidated sheet listing every entry
const MasterSheetName = "All Medians"

var (
	sheetHeader  = []interface{}{"Name", "Median Base Gold Reward", "On-Board Loot", "Total Gold"}
	masterHeader = []interface{}{"Category", "Name", "Median Base Gold Reward", "On-Board Loot", "Total Gold"}
)

// Workbook is the export target: one sheet per reward table plus the
// "All Medians" sheet. Rows are appended in call order and never reordered,
// because the generated formulas refer to them by row number.
type Workbook struct {
	file       *excelize.File
	multiplier float64
	boldStyle  int

	sheets       []string
	masterRow    int // next free row on the master sheet
	masterWidths columnWidths
	finished     bool
}

// New creates a workbook holding only the "All Medians" header row.
// multiplier is written to the On-Board Loot column of every row.
func New(multiplier float64) (*Workbook, error) {
	f := excelize.NewFile()

	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
	if _, err := f.NewSheet(MasterSheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("creating %s sheet: %w", MasterSheetName, err)
	}
	if defaultSheet != "" && defaultSheet != MasterSheetName {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("removing default sheet: %w", err)
		}
	}
	if idx, err := f.GetSheetIndex(MasterSheetName); err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating bold style: %w", err)
	}

	wb := &Workbook{
		file:         f,
		multiplier:   multiplier,
		boldStyle:    bold,
		masterRow:    2,
		masterWidths: columnWidths{},
	}

	if err := wb.setRow(MasterSheetName, 1, masterHeader, wb.masterWidths); err != nil {
		f.Close()
		return nil, err
	}

	return wb, nil
}

// WriteSheet adds a sheet for one reward table and returns rows unchanged
// together with the sheet's final name. An empty table creates no sheet and
// returns nil rows.
func (wb *Workbook) WriteSheet(title string, rows []reward.Entry) ([]reward.Entry, string, error) {
	if len(rows) == 0 {
		return nil, "", nil
	}
	if wb.finished {
		return nil, "", fmt.Errorf("workbook already finished")
	}

	name := uniqueSheetName(SanitizeSheetName(title), wb.hasSheet)
	if _, err := wb.file.NewSheet(name); err != nil {
		return nil, "", fmt.Errorf("creating sheet %q: %w", name, err)
	}

	widths := columnWidths{}
	if err := wb.setRow(name, 1, sheetHeader, widths); err != nil {
		return nil, "", err
	}

	for i, e := range rows {
		row := i + 2
		if err := wb.setRow(name, row, []interface{}{e.Name, e.Median, wb.multiplier}, widths); err != nil {
			return nil, "", err
		}
		if err := wb.setFormula(name, 4, row, fmt.Sprintf("B%d*C%d", row, row), widths); err != nil {
			return nil, "", err
		}
	}

	lastRow := len(rows) + 1
	if err := wb.setTotal(name, 4, lastRow+1, fmt.Sprintf("SUM(D2:D%d)", lastRow), widths); err != nil {
		return nil, "", err
	}

	if err := widths.apply(wb.file, name); err != nil {
		return nil, "", err
	}

	wb.sheets = append(wb.sheets, name)
	return rows, name, nil
}

// AppendMaster adds one "All Medians" row per entry, in order
func (wb *Workbook) AppendMaster(category string, entries []reward.Entry) ([]reward.Row, error) {
	if wb.finished {
		return nil, fmt.Errorf("workbook already finished")
	}

	rows := make([]reward.Row, 0, len(entries))
	for _, e := range entries {
		r := wb.masterRow
		values := []interface{}{category, e.Name, e.Median, wb.multiplier}
		if err := wb.setRow(MasterSheetName, r, values, wb.masterWidths); err != nil {
			return nil, err
		}
		if err := wb.setFormula(MasterSheetName, 5, r, fmt.Sprintf("C%d*D%d", r, r), wb.masterWidths); err != nil {
			return nil, err
		}
		wb.masterRow++
		rows = append(rows, reward.NewRow(category, e, wb.multiplier))
	}

	return rows, nil
}

// Finish writes the grand total row of "All Medians" and sizes its columns.
// It is called by Save if needed and does nothing the second time.
func (wb *Workbook) Finish() error {
	if wb.finished {
		return nil
	}

	totalRow := wb.masterRow
	lastRow := totalRow - 1
	if lastRow < 2 {
		// SUM(E2:E1) in E2 would reference itself
		cell, _ := excelize.CoordinatesToCellName(5, totalRow)
		if err := wb.file.SetCellValue(MasterSheetName, cell, 0); err != nil {
			return fmt.Errorf("writing %s!%s: %w", MasterSheetName, cell, err)
		}
		if err := wb.file.SetCellStyle(MasterSheetName, cell, cell, wb.boldStyle); err != nil {
			return fmt.Errorf("styling %s!%s: %w", MasterSheetName, cell, err)
		}
		wb.masterWidths.observe(5, "0")
	} else if err := wb.setTotal(MasterSheetName, 5, totalRow, fmt.Sprintf("SUM(E2:E%d)", lastRow), wb.masterWidths); err != nil {
		return err
	}

	if err := wb.masterWidths.apply(wb.file, MasterSheetName); err != nil {
		return err
	}

	wb.finished = true
	return nil
}

// Save finishes the workbook and writes it to path, creating parent
// directories. It returns the absolute path of the written file.
func (wb *Workbook) Save(path string) (string, error) {
	if err := wb.Finish(); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving output path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	if err := wb.file.SaveAs(abs); err != nil {
		return "", fmt.Errorf("writing workbook: %w", err)
	}

	return abs, nil
}

// Close releases resources held by the underlying file
func (wb *Workbook) Close() error {
	return wb.file.Close()
}

// Sheets returns the names of the per-table sheets in creation order
func (wb *Workbook) Sheets() []string {
	out := make([]string, len(wb.sheets))
	copy(out, wb.sheets)
	return out
}

// MasterRows returns the number of data rows on "All Medians"
func (wb *Workbook) MasterRows() int {
	return wb.masterRow - 2
}

// hasSheet reports whether a sheet named name exists, ignoring case
func (wb *Workbook) hasSheet(name string) bool {
	for _, existing := range wb.file.GetSheetList() {
		if strings.EqualFold(existing, name) {
			return true
		}
	}
	return false
}

func (wb *Workbook) setRow(sheet string, row int, values []interface{}, widths columnWidths) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("resolving row %d: %w", row, err)
	}
	if err := wb.file.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}
	widths.observeRow(values...)
	return nil
}

func (wb *Workbook) setFormula(sheet string, col, row int, formula string, widths columnWidths) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("resolving cell: %w", err)
	}
	if err := wb.file.SetCellFormula(sheet, cell, formula); err != nil {
		return fmt.Errorf("writing formula %s!%s: %w", sheet, cell, err)
	}
	widths.observe(col, "="+formula)
	return nil
}

// setTotal writes a bold formula cell
func (wb *Workbook) setTotal(sheet string, col, row int, formula string, widths columnWidths) error {
	if err := wb.setFormula(sheet, col, row, formula, widths); err != nil {
		return err
	}
	cell, _ := excelize.CoordinatesToCellName(col, row)
	if err := wb.file.SetCellStyle(sheet, cell, cell, wb.boldStyle); err != nil {
		return fmt.Errorf("styling %s!%s: %w", sheet, cell, err)
	}
	return nil
}

// formatNumber renders v without trailing zeros
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
