package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┌─┐┌┬┐┌┬┐┬
  │ ┬│ │ │ │││└─┐
  └─┘└─┘ ┴ ┴ ┴┴─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "gotml",
		Short: "Build, preview and publish HTML documents from Go",
		Long: `gotml builds HTML document trees in Go and serializes them.

Documents are plain Go values: per-tag constructors build element
trees, user-defined components expand on demand, and the renderer
writes pretty or minified HTML with configurable escaping.

Commands:
  • render   - render the demo document to stdout or a file
  • serve    - preview documents over HTTP with live reload
  • publish  - render and upload documents to an S3 bucket`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		renderCmd(),
		serveCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the gotml ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
