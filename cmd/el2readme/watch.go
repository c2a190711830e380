// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/el2readme/internal/convert"
	"github.com/pdiddy/el2readme/internal/watch"
	"github.com/pdiddy/el2readme/pkg/types"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Regenerate the README every time FILE is saved",
	Long: `Watch converts FILE once, then again after every save, writing the
README (README.org by default) into the same directory as FILE. Stop with
Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("output", "", "README file name (default: configured output name)")
	watchCmd.Flags().Duration("debounce", 0, "quiet period after a save before converting")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := convert.OptionsFromConfig(cfg, logger)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("output")
	if name == "" {
		name = cfg.Output
	}
	debounce, _ := cmd.Flags().GetDuration("debounce")
	if debounce == 0 {
		debounce = cfg.Debounce
	}

	job := convert.Job{Input: args[0], Output: convert.OutputPath(args[0], name)}
	run := func(ctx context.Context) error {
		res := convert.ConvertFile(job, opts, os.Stdout)
		if res.Status == types.ConversionFailed {
			return errors.New(res.Error)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(job.Input, debounce, run, logger)
	if err != nil {
		return err
	}
	if err := run(ctx); err != nil {
		logger.Error("initial conversion failed", "error", err)
	}
	logger.Info("watching for changes", "file", job.Input, "output", job.Output)
	return w.Run(ctx)
}
