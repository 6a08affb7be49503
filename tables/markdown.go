package tables

import (
	"strings"

	"github.com/claryai/tabula/celltext"
	"github.com/claryai/tabula/format"
	"github.com/claryai/tabula/model"
)

// markdownParser handles pipe-delimited tables. Separator rows are skipped
// wherever they appear, which also covers grid tables drawn with
// "+----+----+" borders.
type markdownParser struct{}

func (markdownParser) Format() format.Format { return format.Markdown }

func (markdownParser) Parse(block model.RawBlock, _ Config) *model.StructuredTable {
	var (
		headers    []string
		headerSeen bool
		rows       [][]string
		warnings   []string
		skipped    int
	)

	for _, line := range celltext.Lines(block.Text) {
		if celltext.IsMarkdownRule(line) {
			continue
		}
		if !headerSeen {
			// Captions above the table carry no pipes.
			if !strings.Contains(line, "|") {
				skipped++
				continue
			}
			headers = splitPipeRow(line)
			headerSeen = true
			continue
		}

		cells := splitPipeRow(line)
		if celltext.IsBlank(cells) {
			continue
		}
		rows = append(rows, cells)
	}

	if skipped > 0 {
		warnings = append(warnings, pluralize(skipped, "line")+" without column delimiters above the header ignored")
	}
	return Normalize(format.Markdown, headers, rows, warnings...)
}

// splitPipeRow splits a row on unescaped pipes. Empty segments produced by
// leading and trailing pipes are removed; interior empty cells are kept so
// columns stay aligned.
func splitPipeRow(line string) []string {
	var (
		cells []string
		cur   strings.Builder
	)
	runes := []rune(strings.TrimSpace(line))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) && runes[i+1] == '|' {
			cur.WriteRune('|')
			i++
			continue
		}
		if r == '|' {
			cells = append(cells, celltext.Clean(cur.String()))
			cur.Reset()
			continue
		}
		cur.WriteRune(r)
	}
	cells = append(cells, celltext.Clean(cur.String()))

	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}
