package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claryai/tabula/tables"
)

func newClassifyCommand(a *app) *cobra.Command {
	var (
		flags   blockFlags
		explain bool
	)

	cmd := &cobra.Command{
		Use:   "classify [file|-]",
		Short: "Print the table format a block would be parsed as",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			block := flags.block(name, data)
			cfg := a.cfg.Parser.WithDefaults()

			out := cmd.OutOrStdout()
			if !explain {
				_, err := fmt.Fprintln(out, tables.Classify(block, cfg))
				return err
			}
			for _, rule := range tables.Rules() {
				matched := rule.Match(block, cfg)
				mark := " "
				if matched {
					mark = "*"
				}
				if _, err := fmt.Fprintf(out, "%s %-15s %s\n", mark, rule.Format, rule.Name); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&flags.markup, "markup", false, "Treat input as an HTML fragment")
	cmd.Flags().BoolVar(&flags.auto, "auto", true, "Detect HTML input from the file extension and content")
	cmd.Flags().BoolVar(&explain, "explain", false, "List every rule and mark the ones that match")
	return cmd
}
