// Package main provides the folio binary entry point.
// Folio paginates HTML documents against a page geometry, renders
// print-faithful HTML, and exports PDFs through headless Chrome.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "folio"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "folio",
		Short: "Paginated document tool",
		Long: `Folio works on document files: JSON descriptors whose "value" field
holds HTML content with page-break sentinels.

It provides:
- reflow: redistribute overflowing content across pages
- print:  render a standalone printable HTML file
- export: print the document to PDF via headless Chrome`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(opts.logLevel)
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.geometryPath, "geometry", "", "Page geometry file (YAML)")
	pf.StringVar(&opts.preset, "preset", "a4", "Page size preset (a4, usletter)")
	pf.StringVar(&opts.fontPath, "font", "", "TTF font for text measurement")
	pf.Float64Var(&opts.fontSize, "font-size", 16, "Base font size in pixels")
	pf.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(reflowCmd(opts))
	cmd.AddCommand(printCmd(opts))
	cmd.AddCommand(exportCmd(opts))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}
