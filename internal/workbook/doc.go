// Package workbook writes extracted treasure rewards to an .xlsx workbook.
//
// Each discovered wiki table becomes its own sheet, and every entry is also
// appended to the consolidated "All Medians" sheet. Totals are stored as live
// formulas so the workbook recalculates when the On-Board Loot multiplier is
// edited after export.
package workbook
