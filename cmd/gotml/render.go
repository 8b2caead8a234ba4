package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gotml-dev/gotml/pkg/dom"
	"github.com/gotml-dev/gotml/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		minify    bool
		collapsed bool
		escape    string
		indent    string
		out       string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo document",
		Long: `Render the demo document to stdout or a file.

Examples:
  gotml render
  gotml render --minify
  gotml render --escape=ascii --out=index.html
  gotml render --collapsed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseEscapeMode(escape)
			if err != nil {
				return err
			}
			dom.SetEscapeMode(mode)

			r := render.NewRenderer(render.RendererConfig{
				Pretty:    !minify,
				Indent:    indent,
				Collapsed: collapsed,
			})

			html, err := r.RenderToString(demoDocument())
			if err != nil {
				return fmt.Errorf("render failed: %w", err)
			}

			if out == "" {
				fmt.Print(html)
				return nil
			}
			if err := os.WriteFile(out, []byte(html), 0644); err != nil {
				return err
			}
			success("Wrote %s (%d bytes)", out, len(html))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&minify, "minify", "m", false, "Emit minified output")
	cmd.Flags().BoolVar(&collapsed, "collapsed", false, "Render components as their own tag")
	cmd.Flags().StringVarP(&escape, "escape", "e", "utf8", "Escape mode: utf8, ascii, attronly, none")
	cmd.Flags().StringVar(&indent, "indent", "  ", "Indent string for pretty output")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write output to a file instead of stdout")

	return cmd
}

// parseEscapeMode maps a flag value to an escape mode.
func parseEscapeMode(s string) (dom.EscapeMode, error) {
	switch s {
	case "utf8":
		return dom.EscapeUTF8, nil
	case "ascii":
		return dom.EscapeASCII, nil
	case "attronly":
		return dom.EscapeAttrOnly, nil
	case "none":
		return dom.EscapeNone, nil
	default:
		return 0, fmt.Errorf("unknown escape mode %q (want utf8, ascii, attronly or none)", s)
	}
}
