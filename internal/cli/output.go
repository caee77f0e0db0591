package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/pfrederiksen/treasure-medians/internal/pipeline"
	"github.com/pfrederiksen/treasure-medians/internal/workbook"
)

// OutputFormat specifies the summary format
type OutputFormat string

const (
	FormatText     OutputFormat = "text"
	FormatJSON     OutputFormat = "json"
	FormatMarkdown OutputFormat = "markdown"
)

// Valid reports whether f is a supported format
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatText, FormatJSON, FormatMarkdown:
		return true
	}
	return false
}

// WriteOutput writes the run summary in the specified format
func WriteOutput(w io.Writer, result *pipeline.Result, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	case FormatMarkdown:
		return writeMarkdown(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the result as JSON
func writeJSON(w io.Writer, result *pipeline.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText prints the saved path, and the sheets written when verbose
func writeText(w io.Writer, result *pipeline.Result, verbose bool) error {
	if verbose {
		for _, s := range result.Sheets {
			fmt.Fprintf(w, "  %s: %d rows\n", s.SheetName, s.Entries)
		}
		fmt.Fprintf(w, "\nTotal: %d rows across %d sheets\n", len(result.Rows), len(result.Sheets))
	}

	_, err := fmt.Fprintf(w, "Finished — saved all data to %s\n", result.OutputPath)
	return err
}

// writeMarkdown outputs a Markdown report of the sheets and totals
func writeMarkdown(w io.Writer, result *pipeline.Result) error {
	md := markdown.NewMarkdown(w)

	md.H1("Treasure Medians")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Workbook", "`" + result.OutputPath + "`"},
			{"On-Board Loot", formatFloat(result.Multiplier)},
			{"Sheets", strconv.Itoa(len(result.Sheets))},
			{"Rows", strconv.Itoa(len(result.Rows))},
		},
	})
	md.PlainText("")

	md.H2("Sheets")
	md.PlainText("")
	if len(result.Sheets) == 0 {
		md.PlainText("No reward tables were found.")
		md.PlainText("")
		return md.Build()
	}

	rows := make([][]string, 0, len(result.Sheets)+1)
	for _, s := range result.Sheets {
		rows = append(rows, []string{s.Category, s.SheetName, strconv.Itoa(s.Entries), formatFloat(s.Total)})
	}
	rows = append(rows, []string{"**" + workbook.MasterSheetName + "**", "", "**" + strconv.Itoa(len(result.Rows)) + "**", "**" + formatFloat(result.GrandTotal()) + "**"})

	md.Table(markdown.TableSet{
		Header: []string{"Category", "Sheet", "Rows", "Total Gold"},
		Rows:   rows,
	})
	md.PlainText("")

	return md.Build()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
