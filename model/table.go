package model

import (
	"encoding/json"
	"strings"

	"github.com/claryai/tabula/format"
)

// TableType is the fixed discriminator emitted as "type".
const TableType = "Table"

// NoDataError is the Error value of a table without recoverable content.
const NoDataError = "No data found in table"

// StructuredTable is the normalized result of parsing one RawBlock.
// A table is built once per block and is not modified after it is returned.
type StructuredTable struct {
	Headers  []string
	Rows     []Record
	Error    string   // Set only when extraction failed
	Warnings []string // Degraded-extraction notes
	Format   format.Format
}

// Failed returns a table that carries only an error message.
func Failed(f format.Format, msg string) *StructuredTable {
	return &StructuredTable{
		Headers: []string{},
		Rows:    []Record{},
		Error:   msg,
		Format:  f,
	}
}

// OK reports whether extraction succeeded. Callers should treat a block
// whose table is not OK as plain text.
func (t *StructuredTable) OK() bool {
	return t != nil && t.Error == ""
}

// NumRows returns the number of data rows
func (t *StructuredTable) NumRows() int {
	return len(t.Rows)
}

// NumCols returns the number of headers
func (t *StructuredTable) NumCols() int {
	return len(t.Headers)
}

// Degraded reports whether any warning was raised during extraction.
func (t *StructuredTable) Degraded() bool {
	return len(t.Warnings) > 0
}

// Cells returns the data rows as plain string slices in header order.
func (t *StructuredTable) Cells() [][]string {
	out := make([][]string, len(t.Rows))
	for i, rec := range t.Rows {
		out[i] = rec.Values()
	}
	return out
}

// Column returns every cell stored under the given header.
func (t *StructuredTable) Column(header string) []string {
	col := make([]string, 0, len(t.Rows))
	for _, rec := range t.Rows {
		col = append(col, rec.Value(header))
	}
	return col
}

// Clone returns a deep copy.
func (t *StructuredTable) Clone() *StructuredTable {
	if t == nil {
		return nil
	}
	c := &StructuredTable{
		Headers: append([]string{}, t.Headers...),
		Rows:    make([]Record, len(t.Rows)),
		Error:   t.Error,
		Format:  t.Format,
	}
	for i, rec := range t.Rows {
		c.Rows[i] = append(Record{}, rec...)
	}
	if t.Warnings != nil {
		c.Warnings = append([]string{}, t.Warnings...)
	}
	return c
}

// ToMarkdown converts the table to markdown format
func (t *StructuredTable) ToMarkdown() string {
	if len(t.Headers) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		for _, cell := range cells {
			sb.WriteString("| ")
			sb.WriteString(escapeMarkdownCell(cell))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	writeRow(t.Headers)
	for range t.Headers {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")
	for _, rec := range t.Rows {
		writeRow(rec.Values())
	}

	return sb.String()
}

func escapeMarkdownCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

// ToCSV converts the table to CSV format, header line first.
func (t *StructuredTable) ToCSV() string {
	if len(t.Headers) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		for j, text := range cells {
			// Escape quotes and wrap in quotes if necessary
			if strings.ContainsAny(text, ",\"\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(cells)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}

	writeRow(t.Headers)
	for _, rec := range t.Rows {
		writeRow(rec.Values())
	}
	return sb.String()
}

type tableJSON struct {
	Type     string   `json:"type"`
	Headers  []string `json:"headers"`
	Data     []Record `json:"data"`
	NumRows  *int     `json:"num_rows,omitempty"`
	NumCols  *int     `json:"num_cols,omitempty"`
	Error    string   `json:"error,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// MarshalJSON emits the LLM-facing shape. Counts are written only for
// successful tables and are always derived from the data.
func (t *StructuredTable) MarshalJSON() ([]byte, error) {
	out := tableJSON{
		Type:     TableType,
		Headers:  t.Headers,
		Data:     t.Rows,
		Error:    t.Error,
		Warnings: t.Warnings,
	}
	if out.Headers == nil {
		out.Headers = []string{}
	}
	if out.Data == nil {
		out.Data = []Record{}
	}
	if t.Error == "" {
		rows, cols := t.NumRows(), t.NumCols()
		out.NumRows = &rows
		out.NumCols = &cols
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores a table from its JSON shape. The stored counts are
// ignored because they are derived.
func (t *StructuredTable) UnmarshalJSON(data []byte) error {
	var in tableJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*t = StructuredTable{
		Headers:  in.Headers,
		Rows:     in.Data,
		Error:    in.Error,
		Warnings: in.Warnings,
	}
	if t.Headers == nil {
		t.Headers = []string{}
	}
	if t.Rows == nil {
		t.Rows = []Record{}
	}
	return nil
}
