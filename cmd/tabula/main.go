// Command tabula extracts tables from text and HTML blocks.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/claryai/tabula/internal/cli"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	os.Exit(cli.Execute())
}
