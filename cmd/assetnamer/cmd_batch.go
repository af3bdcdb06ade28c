package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/assetnamer/internal/batch"
	"github.com/backmassage/assetnamer/internal/config"
	"github.com/backmassage/assetnamer/internal/display"
)

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <manifest.yaml>",
		Short: "Generate names for a manifest and optionally rename files",
		Long: "Generate a name for every manifest entry. Entries with a source file\n" +
			"are renamed in place (or into out_dir) with --apply; without it the\n" +
			"run is a dry run.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(cmd, args[0])
		},
	}
	fs := cmd.Flags()
	fs.StringP("category", "c", "", "Category for entries that name none (default from config)")
	config.DefineBatchFlags(fs)
	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, path string) error {
	display.PrintBanner(cmd.ErrOrStderr())

	m, err := batch.Load(path)
	if err != nil {
		return err
	}
	a.log.Info("Manifest: %s", m.Path)

	opts := batch.OptionsFromConfig(&a.cfg, a.lex)
	items := batch.Plan(m, opts)

	// Cancel on SIGINT/SIGTERM so the run stops between entries.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			a.log.Warn("Received interrupt, finishing current entry…")
			cancel()
		case <-ctx.Done():
		}
	}()

	stats := batch.Execute(ctx, items, opts, a.log)
	if !stats.OK() {
		return fmt.Errorf("%d of %d entries failed", stats.Failed, stats.Total)
	}
	return nil
}
