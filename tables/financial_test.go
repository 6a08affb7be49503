package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claryai/tabula/format"
	"github.com/claryai/tabula/model"
)

func parseFinancial(text string) *model.StructuredTable {
	return ParseAs(model.NewTextBlock(text), format.Financial, DefaultConfig())
}

const invoiceSample = `INVOICE #12345
Item            Qty    Price      Total
Widget A        2      $10.00     $20.00
Widget B        1      $15.50     $15.50
Service Fee     1      $5.00      $5.00
Tax             1      $3.24      $3.24
Subtotal                          $40.50
Total                             $43.74`

func TestFinancial_Invoice(t *testing.T) {
	tbl := Parse(model.NewTextBlock(invoiceSample))

	require.True(t, tbl.OK())
	assert.Equal(t, format.Financial, tbl.Format)
	assert.Equal(t, []string{"Item", "Qty", "Price", "Total"}, tbl.Headers)
	require.Len(t, tbl.Rows, 4)
	assert.Equal(t, []string{"Widget A", "Widget B", "Service Fee", "Tax"}, tbl.Column("Item"))
	assert.Equal(t, []string{"Widget A", "2", "$10.00", "$20.00"}, tbl.Rows[0].Values())
	assert.Equal(t, []string{"1 line above the header ignored"}, tbl.Warnings)
}

func TestFinancial_SpecExample(t *testing.T) {
	tbl := parseFinancial(fixedWidthSample)

	assert.Equal(t, []string{"Item", "Quantity", "Unit Price", "Total"}, tbl.Headers)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "$250.00", tbl.Rows[0].Value("Total"))
	assert.Empty(t, tbl.Warnings)
}

func TestFinancial_Headerless(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "four columns",
			text: "Widget  10  $25.00  $250.00\nGadget  5  $3.00  $15.00",
			want: []string{"Item", "Quantity", "Price", "Total"},
		},
		{
			name: "three columns",
			text: "Widget  $5  $10",
			want: []string{"Item", "Value", "Total"},
		},
		{
			name: "two columns",
			text: "Widget  $5",
			want: []string{"Item", "Value"},
		},
		{
			name: "five columns",
			text: "Widget  1  2  $3  $4",
			want: []string{"Item", "Quantity", "Price", "Total", "Column 5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := parseFinancial(tt.text)
			require.True(t, tbl.OK())
			assert.Equal(t, tt.want, tbl.Headers)
			assert.NotEmpty(t, tbl.Rows)
			assert.Equal(t, "Widget", tbl.Rows[0].Value("Item"))
		})
	}
}

func TestFinancial_HeaderBeforeFirstDataLine(t *testing.T) {
	tbl := parseFinancial("Quarterly report\nName  Amount\nRent  $500\nTotal  $500")

	assert.Equal(t, []string{"Name", "Amount"}, tbl.Headers)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "$500", tbl.Rows[0].Value("Amount"))
	assert.Equal(t, []string{"1 line above the header ignored"}, tbl.Warnings)
}

func TestFinancial_SummaryRowsAnyCase(t *testing.T) {
	tbl := parseFinancial("Item  Price\nPen  $2\nTOTAL DUE  $2\nGrand Total  $2\n  subtotal  $2")

	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "Pen", tbl.Rows[0].Value("Item"))
}

func TestFinancial_SkipsRules(t *testing.T) {
	tbl := parseFinancial("Item    Price\n----    -----\nPen     $2\n=============\nTotal   $2")

	assert.Equal(t, []string{"Item", "Price"}, tbl.Headers)
	require.Len(t, tbl.Rows, 1)
	assert.Empty(t, tbl.Warnings)
}

func TestFinancial_CustomConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HeaderKeywords = []string{"Artikel"}
	cfg.SummaryPrefixes = []string{"Summe"}
	cfg.TotalToken = "Summe"

	block := model.NewTextBlock("Rechnung 7\nArtikel  Preis\nStift  €2\nSumme  €2")
	tbl := ParseWithConfig(block, cfg)

	assert.Equal(t, format.Financial, tbl.Format)
	assert.Equal(t, []string{"Artikel", "Preis"}, tbl.Headers)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "€2", tbl.Rows[0].Value("Preis"))
}

func TestFinancial_OnlySummary(t *testing.T) {
	tbl := parseFinancial("Total  $5\nSubtotal  $5")

	assert.Equal(t, model.NoDataError, tbl.Error)
	assert.Empty(t, tbl.Headers)
}

func TestFinancial_Empty(t *testing.T) {
	tbl := parseFinancial("------\n")

	assert.Equal(t, model.NoDataError, tbl.Error)
}

func TestLedgerHeaderLine(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		lines []string
		want  int
	}{
		{[]string{"Product  Cost", "Pen  $2"}, 0},
		{[]string{"Note", "Product  Cost", "Pen  $2"}, 1},
		{[]string{"Pen  $2", "Ink  $3"}, -1},
		{[]string{"Name  Cost", "Pen  $2"}, 0},
		{[]string{"alpha", "beta"}, 0},
		// Keyword lines carrying numbers are data.
		{[]string{"Items sold  12", "Pen  $2"}, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ledgerHeaderLine(tt.lines, cfg), "lines %q", tt.lines)
	}
}
