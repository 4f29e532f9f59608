package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/foliodocs/folio/internal/printer"
	"github.com/foliodocs/folio/internal/serialize"
)

func exportCmd(opts *globalOptions) *cobra.Command {
	var (
		output  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "export <document.json>",
		Short: "Print the document to PDF via headless Chrome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), args[0], output, timeout, opts)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PDF path (default <document>.pdf)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Chrome print timeout")
	return cmd
}

func runExport(ctx context.Context, path, output string, timeout time.Duration, opts *globalOptions) error {
	d, err := readDocument(path)
	if err != nil {
		return err
	}
	geom, err := opts.resolveGeometry(d)
	if err != nil {
		return err
	}
	if output == "" {
		output = strings.TrimSuffix(path, ".json") + ".pdf"
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	r := printer.New(geom, printer.WithTitle(d.Title))
	pdf, err := r.ExportPDF(ctx, serialize.Deserialize(d.Value, nil))
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, pdf, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", output, len(pdf))
	return nil
}
