// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/el2readme/internal/convert"
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Convert several Emacs Lisp files, one README each",
	Long: `Batch converts each file in argument order, writing <name>.org next to
the source or into --output-dir. A failure on one file is reported and the
remaining files are still converted. Files matching an exclude pattern
(by default autoload and package descriptor files) are skipped.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("output-dir", "", "directory for generated READMEs (default: next to each source)")
	batchCmd.Flags().StringSlice("exclude", nil, "glob patterns of files to skip (replaces configured patterns)")
	batchCmd.Flags().Bool("skip-existing", false, "skip files whose README already exists")
	batchCmd.Flags().String("report", "", "write a YAML report of the run to this path")
	batchCmd.Flags().String("retry-failed", "", "convert the files that failed in an earlier YAML report")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	retryFrom, _ := cmd.Flags().GetString("retry-failed")
	if retryFrom != "" {
		prev, err := convert.ReadReport(retryFrom)
		if err != nil {
			return err
		}
		args = append(args, convert.FailedInputs(prev)...)
	}
	if len(args) == 0 {
		return fmt.Errorf("provide one or more Emacs Lisp files")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("exclude") {
		cfg.Exclude, _ = cmd.Flags().GetStringSlice("exclude")
	}

	opts, err := convert.OptionsFromConfig(cfg, logger)
	if err != nil {
		return err
	}
	opts.OutputDir, _ = cmd.Flags().GetString("output-dir")
	opts.SkipExisting, _ = cmd.Flags().GetBool("skip-existing")

	logger.Debug("starting batch", "files", len(args), "exclude", opts.Exclude.Patterns())
	result := convert.ConvertBatch(args, opts, os.Stdout)

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := convert.WriteReport(reportPath, result); err != nil {
			return err
		}
		logger.Info("wrote batch report", "path", reportPath)
	}

	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}
