package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/foliodocs/folio/internal/document"
	"github.com/foliodocs/folio/internal/reflow"
	"github.com/foliodocs/folio/internal/serialize"
)

func reflowCmd(opts *globalOptions) *cobra.Command {
	var maxPages int

	cmd := &cobra.Command{
		Use:   "reflow <document.json>",
		Short: "Redistribute overflowing content across pages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReflow(args[0], opts, maxPages)
		},
	}
	cmd.Flags().IntVar(&maxPages, "max-pages", reflow.DefaultMaxPages, "Page count safety bound")
	return cmd
}

func runReflow(path string, opts *globalOptions, maxPages int) error {
	d, err := readDocument(path)
	if err != nil {
		return err
	}
	geom, err := opts.resolveGeometry(d)
	if err != nil {
		return err
	}

	store := document.NewStore(serialize.Deserialize(d.Value, nil)...)
	before := store.Len()

	r := reflow.New(opts.resolveMeasurer(), geom, reflow.WithMaxPages(maxPages))
	res, err := r.ReflowAll(store)
	if err != nil {
		return fmt.Errorf("reflow: %w", err)
	}
	if res.Skipped {
		return fmt.Errorf("reflow: measurement unavailable")
	}

	slog.Info("reflow complete",
		"pages_before", before,
		"pages_after", store.Len(),
		"passes", res.Passes,
		"changed", res.Changed)

	if !res.Changed {
		fmt.Printf("%s: %d page(s), no overflow\n", path, store.Len())
		return nil
	}
	if err := d.writeValue(serialize.Serialize(store.Pages()), store.Len()); err != nil {
		return err
	}
	fmt.Printf("%s: %d page(s), %d created\n", path, store.Len(), res.PagesCreated)
	return nil
}
