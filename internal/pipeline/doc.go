// Package pipeline runs the treasure export end to end: fetch each category
// page, discover its reward tables, write one sheet per table, accumulate the
// "All Medians" sheet and save the workbook.
//
// Categories are processed one at a time in configuration order. Any fetch,
// parse or write failure aborts the whole run before the workbook is saved,
// so a failed run leaves no output file behind.
package pipeline
