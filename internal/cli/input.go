package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/claryai/tabula/format"
	"github.com/claryai/tabula/model"
)

const stdinName = "-"

// blockFlags select how raw input becomes a block.
type blockFlags struct {
	markup bool
	auto   bool
	as     string
}

func (f *blockFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.markup, "markup", false, "Treat input as an HTML fragment")
	cmd.Flags().BoolVar(&f.auto, "auto", true, "Detect HTML input from the file extension and content")
	cmd.Flags().StringVar(&f.as, "as", "", "Skip classification and parse as: markup, markdown, financial, spaced or fixed-width")
}

func (f *blockFlags) format() (format.Format, error) {
	return format.Parse(f.as)
}

func (f *blockFlags) block(name string, data []byte) model.RawBlock {
	markup := f.markup
	if !markup && f.auto {
		_, markup = format.DetectFromContent(name, data)
	}
	return model.RawBlock{Text: string(data), Markup: markup}
}

// readInput reads the named file, or standard input when the name is "-"
// or absent.
func readInput(cmd *cobra.Command, args []string) (string, []byte, error) {
	name := stdinName
	if len(args) > 0 {
		name = args[0]
	}
	if name == stdinName {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return name, nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return name, data, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return name, nil, fmt.Errorf("failed to read input: %w", err)
	}
	return name, data, nil
}
