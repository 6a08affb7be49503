package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claryai/tabula/format"
	"github.com/claryai/tabula/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		block model.RawBlock
		want  format.Format
	}{
		{
			name:  "markup flag wins over pipes",
			block: model.NewMarkupBlock("<table><tr><td>a | b</td></tr></table>\n|---|"),
			want:  format.Markup,
		},
		{
			name:  "markdown table",
			block: model.NewTextBlock("| Name | Age |\n| ---- | --- |\n| John | 30  |"),
			want:  format.Markdown,
		},
		{
			name:  "markdown wins over financial",
			block: model.NewTextBlock("| Item | Total |\n|---|---|\n| A | $5 |"),
			want:  format.Markdown,
		},
		{
			name:  "grid borders count as rule rows",
			block: model.NewTextBlock("+------+-----+\n| Name | Age |\n+------+-----+"),
			want:  format.Markdown,
		},
		{
			name:  "pipes without rule row",
			block: model.NewTextBlock("a | b\nc | d"),
			want:  format.FixedWidth,
		},
		{
			name:  "currency with total",
			block: model.NewTextBlock(fixedWidthSample),
			want:  format.Financial,
		},
		{
			name:  "single line ledger",
			block: model.NewTextBlock("Price $5 Total"),
			want:  format.Financial,
		},
		{
			name:  "financial wins over multi-space",
			block: model.NewTextBlock("Item  Total\nA  $5"),
			want:  format.Financial,
		},
		{
			name:  "total token is case sensitive",
			block: model.NewTextBlock("Subtotal $5"),
			want:  format.FixedWidth,
		},
		{
			name:  "multi-space columns",
			block: model.NewTextBlock("Item        Quantity\nWidget A    10"),
			want:  format.SpaceSeparated,
		},
		{
			name:  "multi-space needs two lines",
			block: model.NewTextBlock("Name  Age"),
			want:  format.FixedWidth,
		},
		{
			name:  "indentation counts as a column gap",
			block: model.NewTextBlock("Name Age\n  Bob 3"),
			want:  format.SpaceSeparated,
		},
		{
			name:  "single spaced text",
			block: model.NewTextBlock("Name Age\nJohn 30"),
			want:  format.FixedWidth,
		},
		{
			name:  "empty",
			block: model.NewTextBlock(""),
			want:  format.FixedWidth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.block, DefaultConfig()))
		})
	}
}

func TestClassify_CustomTotalToken(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TotalToken = "Summe"

	block := model.NewTextBlock("Artikel  Preis\nStift  €2\nSumme  €2")
	assert.Equal(t, format.Financial, Classify(block, cfg))
	assert.Equal(t, format.SpaceSeparated, Classify(block, DefaultConfig()))
}

func TestRules_Order(t *testing.T) {
	rules := Rules()
	require.Len(t, rules, len(format.All))
	for i, rule := range rules {
		assert.Equal(t, format.All[i], rule.Format, "rule %d (%s)", i, rule.Name)
		assert.NotEmpty(t, rule.Name)
		assert.NotNil(t, rule.Match)
	}

	// The catch-all matches anything.
	last := rules[len(rules)-1]
	assert.True(t, last.Match(model.NewTextBlock(""), DefaultConfig()))
}

func TestRules_Independent(t *testing.T) {
	block := model.NewTextBlock("Item        Quantity\nWidget A    10")
	var matched []format.Format
	for _, rule := range Rules() {
		if rule.Match(block, DefaultConfig().WithDefaults()) {
			matched = append(matched, rule.Format)
		}
	}
	assert.Equal(t, []format.Format{format.SpaceSeparated, format.FixedWidth}, matched)
}
