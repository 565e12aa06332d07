package main

import (
	"context"
	"fmt"

	"bankocr/internal/config"
	"bankocr/internal/watch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchCmd re-processes the input file whenever it changes.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Process the input file now and again every time it changes",
	Long: `Runs "process" once, then watches the input file and appends a fresh
batch of results after each change settles. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	if cfg.Input == config.StdStream {
		return fmt.Errorf("watch needs an input file, not stdin")
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	errOut := cmd.ErrOrStderr()
	w, err := watch.New(cfg.Input, cfg.Watch.GetDebounce(), func(ctx context.Context, path string) error {
		rep, err := processOnce(ctx, cfg)
		if err != nil {
			return err
		}
		fmt.Fprintln(errOut, renderSummary("processed", rep.Tally))
		return nil
	})
	if err != nil {
		return err
	}
	defer w.Stop()

	w.Trigger(ctx)
	if err := w.Start(ctx); err != nil {
		return err
	}
	logger.Info("watching input", zap.String("input", cfg.Input), zap.Duration("debounce", cfg.Watch.GetDebounce()))
	fmt.Fprintln(errOut, mutedStyle.Render("watching "+cfg.Input+" (Ctrl+C to stop)"))

	<-w.Done()
	stats := w.GetStats()
	logger.Info("watch stopped", zap.Int("runs", stats.Runs), zap.Int("errors", stats.Errors))
	return nil
}
