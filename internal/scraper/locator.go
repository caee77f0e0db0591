package scraper

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Locator names accepted by LocatorByName
const (
	LocatorSibling         = "sibling"
	LocatorDocumentBalance = "document-balance"
)

// TableLocator finds the data table that belongs to a section heading on
// pages where the table is a sibling of the heading rather than nested in it.
type TableLocator interface {
	Locate(heading *goquery.Selection) (*Table, bool)
}

// LocatorByName returns the TableLocator registered under name
func LocatorByName(name string) (TableLocator, error) {
	switch name {
	case "", LocatorSibling:
		return SiblingLocator{}, nil
	case LocatorDocumentBalance:
		return DocumentBalanceLocator{}, nil
	default:
		return nil, fmt.Errorf("unknown table locator: %s", name)
	}
}

// SiblingLocator picks the nearest marked table among the heading's siblings.
//
// When there is a marked table both before and after the heading, the one
// with fewer element nodes between it and the heading wins; prev wins a tie.
// Sibling distance is a proxy for "belongs to this section" and can pick the
// wrong table on irregular pages.
type SiblingLocator struct{}

// Locate implements TableLocator
func (SiblingLocator) Locate(heading *goquery.Selection) (*Table, bool) {
	if heading.Length() == 0 {
		return nil, false
	}
	h := heading.Get(0)

	next, nextDist := nearestMarked(h, func(n *html.Node) *html.Node { return n.NextSibling })
	prev, prevDist := nearestMarked(h, func(n *html.Node) *html.Node { return n.PrevSibling })

	switch {
	case next == nil && prev == nil:
		return nil, false
	case next == nil:
		return newTableFromNode(prev), true
	case prev == nil:
		return newTableFromNode(next), true
	case nextDist < prevDist:
		return newTableFromNode(next), true
	default:
		return newTableFromNode(prev), true
	}
}

// DocumentBalanceLocator chooses between the nearest preceding and following
// marked sibling tables by comparing how many nodes follow the heading in the
// whole document with how many precede it. It takes the following table only
// when fewer nodes follow the heading than precede it.
//
// Nodes are counted the way BeautifulSoup's next_elements and
// previous_elements walk a tree: elements, text (whitespace included),
// comments and the doctype. The HTML5 parser adds implied html, head and
// body elements and tbody wrappers that a lenient parser would not, so on
// close calls the result can still differ from a count taken elsewhere.
type DocumentBalanceLocator struct{}

// Locate implements TableLocator
func (DocumentBalanceLocator) Locate(heading *goquery.Selection) (*Table, bool) {
	if heading.Length() == 0 {
		return nil, false
	}
	h := heading.Get(0)

	next, _ := nearestMarked(h, func(n *html.Node) *html.Node { return n.NextSibling })
	prev, _ := nearestMarked(h, func(n *html.Node) *html.Node { return n.PrevSibling })

	if next == nil {
		if prev == nil {
			return nil, false
		}
		return newTableFromNode(prev), true
	}
	if prev == nil {
		return newTableFromNode(next), true
	}

	before, after := documentPosition(h)
	if after < before {
		return newTableFromNode(next), true
	}
	return newTableFromNode(prev), true
}

// nearestMarked walks siblings of n using step and returns the first marked
// table together with the number of element nodes passed on the way.
func nearestMarked(n *html.Node, step func(*html.Node) *html.Node) (*html.Node, int) {
	between := 0
	for s := step(n); s != nil; s = step(s) {
		if isMarkedTable(s) {
			return s, between
		}
		between += countElements(s)
	}
	return nil, 0
}

// countElements returns the number of element nodes in the subtree rooted at n
func countElements(n *html.Node) int {
	if n.Type != html.ElementNode {
		return 0
	}
	count := 1
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countElements(c)
	}
	return count
}

// documentPosition counts the nodes before n and after n in document order.
// Ancestors count as before, descendants as after. The document root itself
// is not counted.
func documentPosition(n *html.Node) (before, after int) {
	root := n
	for root.Parent != nil {
		root = root.Parent
	}

	seen := false
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		switch {
		case cur == n:
			seen = true
		case cur.Type == html.DocumentNode:
		case seen:
			after++
		default:
			before++
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return before, after
}
