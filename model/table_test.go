package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claryai/tabula/format"
)

func sampleTable() *StructuredTable {
	headers := []string{"Item", "Quantity", "Unit Price", "Total"}
	return &StructuredTable{
		Headers: headers,
		Rows: []Record{
			NewRecord(headers, []string{"Widget A", "10", "$25.00", "$250.00"}),
		},
		Format: format.Financial,
	}
}

func TestStructuredTable_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(sampleTable())
	require.NoError(t, err)

	want := `{"type":"Table","headers":["Item","Quantity","Unit Price","Total"],` +
		`"data":[{"Item":"Widget A","Quantity":"10","Unit Price":"$25.00","Total":"$250.00"}],` +
		`"num_rows":1,"num_cols":4}`
	assert.Equal(t, want, string(data))
}

func TestStructuredTable_MarshalJSON_Failure(t *testing.T) {
	data, err := json.Marshal(Failed(format.FixedWidth, NoDataError))
	require.NoError(t, err)
	assert.Equal(t, `{"type":"Table","headers":[],"data":[],"error":"No data found in table"}`, string(data))
}

func TestStructuredTable_MarshalJSON_NilSlices(t *testing.T) {
	data, err := json.Marshal(&StructuredTable{})
	require.NoError(t, err)
	assert.Equal(t, `{"type":"Table","headers":[],"data":[],"num_rows":0,"num_cols":0}`, string(data))
}

func TestStructuredTable_MarshalJSON_Warnings(t *testing.T) {
	tbl := sampleTable()
	tbl.Warnings = []string{"column boundaries inferred from single spaces"}

	data, err := json.Marshal(tbl)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"warnings":["column boundaries inferred from single spaces"]`)
}

func TestStructuredTable_UnmarshalJSON(t *testing.T) {
	data, err := json.Marshal(sampleTable())
	require.NoError(t, err)

	var got StructuredTable
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, []string{"Item", "Quantity", "Unit Price", "Total"}, got.Headers)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, []string{"Item", "Quantity", "Unit Price", "Total"}, got.Rows[0].Keys())
	assert.Equal(t, "$250.00", got.Rows[0].Value("Total"))
	assert.True(t, got.OK())
}

func TestRecord_KeepsOrderAndDuplicates(t *testing.T) {
	rec := NewRecord([]string{"Amount", "Code", "Amount"}, []string{"1", "X"})

	assert.Equal(t, []string{"Amount", "Code", "Amount"}, rec.Keys())
	assert.Equal(t, []string{"1", "X", ""}, rec.Values())

	v, ok := rec.Get("Amount")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = rec.Get("Missing")
	assert.False(t, ok)

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, `{"Amount":"1","Code":"X","Amount":""}`, string(data))
}

func TestRecord_UnmarshalJSON_Errors(t *testing.T) {
	var rec Record
	assert.Error(t, json.Unmarshal([]byte(`["a"]`), &rec))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &rec))
}

func TestStructuredTable_Counts(t *testing.T) {
	tbl := sampleTable()
	assert.Equal(t, 1, tbl.NumRows())
	assert.Equal(t, 4, tbl.NumCols())
	assert.False(t, tbl.Degraded())
	assert.Equal(t, []string{"Widget A"}, tbl.Column("Item"))
	assert.Equal(t, [][]string{{"Widget A", "10", "$25.00", "$250.00"}}, tbl.Cells())
}

func TestStructuredTable_Clone(t *testing.T) {
	orig := sampleTable()
	c := orig.Clone()
	c.Headers[0] = "Changed"
	c.Rows[0][0].Value = "Changed"

	assert.Equal(t, "Item", orig.Headers[0])
	assert.Equal(t, "Widget A", orig.Rows[0].Value("Item"))

	var nilTable *StructuredTable
	assert.Nil(t, nilTable.Clone())
	assert.False(t, nilTable.OK())
}

func TestStructuredTable_ToMarkdown(t *testing.T) {
	headers := []string{"Name", "Note"}
	tbl := &StructuredTable{
		Headers: headers,
		Rows:    []Record{NewRecord(headers, []string{"John", "a|b"})},
	}

	want := "| Name | Note |\n|---|---|\n| John | a\\|b |\n"
	assert.Equal(t, want, tbl.ToMarkdown())
	assert.Empty(t, Failed(format.Unknown, NoDataError).ToMarkdown())
}

func TestStructuredTable_ToCSV(t *testing.T) {
	headers := []string{"Item", "Price"}
	tbl := &StructuredTable{
		Headers: headers,
		Rows:    []Record{NewRecord(headers, []string{`Widget "A", large`, "$1,000.00"})},
	}

	want := "Item,Price\n\"Widget \"\"A\"\", large\",\"$1,000.00\"\n"
	assert.Equal(t, want, tbl.ToCSV())
}

func TestRawBlock(t *testing.T) {
	assert.True(t, NewTextBlock(" \n\t ").IsEmpty())
	assert.False(t, NewTextBlock(" a ").IsEmpty())

	b := NewMarkupBlock("<table></table>")
	assert.True(t, b.Markup)
	assert.False(t, NewTextBlock("x").Markup)
}
