package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/claryai/tabula"
	"github.com/claryai/tabula/model"
)

// Output formats accepted by --format.
const (
	outputJSON     = "json"
	outputMarkdown = "markdown"
	outputCSV      = "csv"
	outputPreview  = "preview"
)

// errNoTable is returned by renderers that cannot express a failed table.
var errNoTable = errors.New("no table found")

func newParseCommand(a *app) *cobra.Command {
	var (
		flags  blockFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Extract the table from one block",
		Long: `Extract the table held in a file, or in standard input when the file is
"-" or omitted. The whole input is one block.

JSON output always succeeds; a block without a table yields an object with
an "error" field. The other formats fail instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := flags.format()
			if err != nil {
				return err
			}
			name, data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			tbl := tabula.FromBlock(flags.block(name, data)).
				As(f).
				WithConfig(a.cfg.Parser).
				Extract()
			a.logTable(name, tbl)

			return render(cmd.OutOrStdout(), tbl, output)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "format", "o", outputJSON, "Output format: json, markdown, csv or preview")
	return cmd
}

func (a *app) logTable(name string, tbl *model.StructuredTable) {
	switch {
	case !tbl.OK():
		a.logger.Info("no table extracted", "input", name, "format", tbl.Format.String(), "error", tbl.Error)
	case tbl.Degraded():
		for _, w := range tbl.Warnings {
			a.logger.Warn("degraded extraction", "input", name, "format", tbl.Format.String(), "warning", w)
		}
	default:
		a.logger.Debug("table extracted", "input", name, "format", tbl.Format.String(),
			"rows", tbl.NumRows(), "cols", tbl.NumCols())
	}
}

func render(w io.Writer, tbl *model.StructuredTable, output string) error {
	if output == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tbl); err != nil {
			return fmt.Errorf("failed to encode table: %w", err)
		}
		return nil
	}

	if !tbl.OK() {
		return fmt.Errorf("%w: %s", errNoTable, tbl.Error)
	}

	var out string
	switch output {
	case outputMarkdown:
		out = tbl.ToMarkdown()
	case outputCSV:
		out = tbl.ToCSV()
	case outputPreview:
		out = renderPreview(tbl) + "\n"
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
	_, err := io.WriteString(w, out)
	return err
}
