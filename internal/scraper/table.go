package scraper

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// DataTableClass marks genuine data tables on MediaWiki pages, as opposed to
// navboxes and layout tables.
const DataTableClass = "wikitable"

// DataTable is a parsed table reduced to cell text
type DataTable interface {
	// HeaderCells returns the cells of the first row
	HeaderCells() []string
	// DataRows returns every row after the first
	DataRows() [][]string
}

// Table is a DataTable backed by an HTML <table> element
type Table struct {
	node   *html.Node
	header []string
	rows   [][]string
}

// NewTable reads the rows of a <table> selection.
// The first row keeps both th and td cells; later rows keep only td cells,
// so a th row header does not shift the data columns. Rows that belong to
// tables nested inside it are not included.
func NewTable(sel *goquery.Selection) *Table {
	t := &Table{}
	if sel.Length() == 0 {
		return t
	}
	table := sel.First()
	t.node = table.Get(0)

	first := true
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if !tr.Closest("table").IsSelection(table) {
			return
		}
		if first {
			first = false
			t.header = cellTexts(tr.ChildrenFiltered("th, td"))
			return
		}
		t.rows = append(t.rows, cellTexts(tr.ChildrenFiltered("td")))
	})

	return t
}

// cellTexts returns the trimmed text of each cell
func cellTexts(cells *goquery.Selection) []string {
	out := make([]string, 0, cells.Length())
	cells.Each(func(_ int, cell *goquery.Selection) {
		out = append(out, strings.TrimSpace(cell.Text()))
	})
	return out
}

// newTableFromNode wraps a raw <table> node
func newTableFromNode(n *html.Node) *Table {
	return NewTable(goquery.NewDocumentFromNode(n).Selection)
}

// HeaderCells returns the first row, or nil for an empty table
func (t *Table) HeaderCells() []string {
	return t.header
}

// DataRows returns the td cells of every row after the header
func (t *Table) DataRows() [][]string {
	return t.rows
}

// HasBaseGoldHeader reports whether any header cell mentions both "Base" and
// "Gold". The match is case-sensitive.
func HasBaseGoldHeader(t DataTable) bool {
	return slices.ContainsFunc(t.HeaderCells(), func(h string) bool {
		return strings.Contains(h, "Base") && strings.Contains(h, "Gold")
	})
}

// isMarkedTable reports whether n is a <table> carrying DataTableClass
func isMarkedTable(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode || n.Data != "table" {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Key == "class" && slices.Contains(strings.Fields(attr.Val), DataTableClass) {
			return true
		}
	}
	return false
}
