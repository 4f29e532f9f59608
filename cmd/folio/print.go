package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foliodocs/folio/internal/printer"
	"github.com/foliodocs/folio/internal/serialize"
)

func printCmd(opts *globalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "print <document.json>",
		Short: "Render a standalone printable HTML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(args[0], output, opts)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output HTML path (default stdout)")
	return cmd
}

func runPrint(path, output string, opts *globalOptions) error {
	d, err := readDocument(path)
	if err != nil {
		return err
	}
	geom, err := opts.resolveGeometry(d)
	if err != nil {
		return err
	}

	r := printer.New(geom, printer.WithTitle(d.Title))
	html, err := r.RenderHTML(serialize.Deserialize(d.Value, nil))
	if err != nil {
		return err
	}

	if output == "" {
		fmt.Print(html)
		return nil
	}
	if err := os.WriteFile(output, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("wrote %s\n", output)
	return nil
}
