package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gotml-dev/gotml/pkg/dom"
	"github.com/gotml-dev/gotml/pkg/preview"
)

func serveCmd() *cobra.Command {
	var (
		addr       string
		minify     bool
		collapsed  bool
		liveReload bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview documents over HTTP",
		Long: `Start a local preview server.

Pages are rebuilt and rendered on every request. With live reload
enabled, connected browsers refresh when the server is told the
source changed. Request metrics are exported on /metrics.

Examples:
  gotml serve
  gotml serve --addr=:3000
  gotml serve --collapsed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, minify, collapsed, liveReload)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Listen address")
	cmd.Flags().BoolVarP(&minify, "minify", "m", false, "Serve minified output")
	cmd.Flags().BoolVar(&collapsed, "collapsed", false, "Render components as their own tag")
	cmd.Flags().BoolVar(&liveReload, "live-reload", true, "Inject the live reload client")

	return cmd
}

func runServe(addr string, minify, collapsed, liveReload bool) error {
	server := preview.NewServer(preview.ServerOptions{
		Addr:       addr,
		Pretty:     !minify,
		Collapsed:  collapsed,
		LiveReload: liveReload,
		Verbose:    true,
	})

	server.Page("/", func(r *http.Request) (*dom.Node, error) {
		return demoDocument(), nil
	})

	printBanner()
	fmt.Println("  serve")
	fmt.Println()
	info("Listening on %s", addr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\n\n  Shutting down...")
		cancel()
	}()

	return server.Start(ctx)
}
