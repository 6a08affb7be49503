package tables

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/claryai/tabula/celltext"
	"github.com/claryai/tabula/format"
	"github.com/claryai/tabula/model"
)

// markupParser handles HTML table fragments.
type markupParser struct{}

func (markupParser) Format() format.Format { return format.Markup }

// markupRow is a parsed <tr>.
type markupRow struct {
	cells  []string
	header bool // Row came from <thead>
}

func (markupParser) Parse(block model.RawBlock, cfg Config) *model.StructuredTable {
	tableNode, err := findTable(block.Text)
	if err != nil {
		return model.Failed(format.Markup, fmt.Sprintf("Failed to parse HTML table: %v", err))
	}
	if tableNode == nil {
		return Normalize(format.Markup, nil, nil)
	}

	rows := parseTable(tableNode, cfg.MaxColSpan)
	if len(rows) == 0 {
		return Normalize(format.Markup, nil, nil)
	}

	// Prefer the last <thead> row: with grouped headings it holds the
	// per-column labels.
	headerIdx := -1
	for i, row := range rows {
		if row.header {
			headerIdx = i
		}
	}
	if headerIdx < 0 {
		headerIdx = 0
	}

	var (
		data     [][]string
		warnings []string
	)
	extraHeaders := 0
	for i, row := range rows {
		if i == headerIdx {
			continue
		}
		if row.header {
			extraHeaders++
			continue
		}
		data = append(data, row.cells)
	}
	if extraHeaders > 0 {
		warnings = append(warnings, pluralize(extraHeaders, "additional header row")+" ignored")
	}

	return Normalize(format.Markup, rows[headerIdx].cells, data, warnings...)
}

// findTable parses the fragment and returns its outermost <table>. Bare row
// fragments are wrapped in a table first, since the HTML parser drops <tr>
// tags found outside one.
func findTable(fragment string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	if t := findElement(doc, "table"); t != nil {
		return t, nil
	}
	if !strings.Contains(strings.ToLower(fragment), "<tr") {
		return nil, nil
	}

	doc, err = html.Parse(strings.NewReader("<table>" + fragment + "</table>"))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML rows: %w", err)
	}
	return findElement(doc, "table"), nil
}

// parseTable extracts the rows of one table element, ignoring rows of
// nested tables.
func parseTable(tableNode *html.Node, maxSpan int) []markupRow {
	rows := make([]markupRow, 0)

	// Find thead, tbody, tfoot, or direct tr children
	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead":
			rows = append(rows, parseTableRows(c, true, maxSpan)...)
		case "tbody", "tfoot":
			rows = append(rows, parseTableRows(c, false, maxSpan)...)
		case "tr":
			if cells := parseTableRow(c, maxSpan); len(cells) > 0 {
				rows = append(rows, markupRow{cells: cells})
			}
		}
	}
	return rows
}

// parseTableRows parses rows within thead, tbody or tfoot.
func parseTableRows(section *html.Node, isHeader bool, maxSpan int) []markupRow {
	var rows []markupRow
	for c := section.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "tr" {
			if cells := parseTableRow(c, maxSpan); len(cells) > 0 {
				rows = append(rows, markupRow{cells: cells, header: isHeader})
			}
		}
	}
	return rows
}

// parseTableRow parses a single table row. A cell spanning several columns
// is followed by empty cells so later cells keep their positions.
func parseTableRow(tr *html.Node, maxSpan int) []string {
	row := make([]string, 0)

	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		row = append(row, celltext.CollapseSpace(getTextContent(c)))

		span := 1
		for _, attr := range c.Attr {
			if attr.Key == "colspan" {
				if n, err := strconv.Atoi(strings.TrimSpace(attr.Val)); err == nil && n > 1 {
					span = min(n, maxSpan)
				}
			}
		}
		for i := 1; i < span; i++ {
			row = append(row, "")
		}
	}

	return row
}

// shouldSkipElement returns true if the element carries no cell text.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// getTextContent extracts all text content from a node and its descendants.
func getTextContent(n *html.Node) string {
	var result strings.Builder
	getTextContentRecursive(n, &result)
	return strings.TrimSpace(result.String())
}

func getTextContentRecursive(n *html.Node, result *strings.Builder) {
	if n.Type == html.TextNode {
		result.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			result.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, result)
	}
	// Keep words of adjacent block elements apart
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "td", "th", "tr":
			result.WriteString(" ")
		}
	}
}
