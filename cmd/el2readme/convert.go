// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/el2readme/internal/convert"
	"github.com/pdiddy/el2readme/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert INPUT [OUTPUT]",
	Short: "Convert one Emacs Lisp file header to an Org README",
	Long: `Convert reads INPUT, converts its header comment, and writes the Org
README to OUTPUT. OUTPUT defaults to the configured output name
(README.org) in the current directory.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := convert.OptionsFromConfig(cfg, logger)
	if err != nil {
		return err
	}

	output := cfg.Output
	if output == "" {
		output = types.DefaultOutput
	}
	if len(args) == 2 {
		output = args[1]
	}

	res := convert.ConvertFile(convert.Job{Input: args[0], Output: output}, opts, os.Stdout)
	if res.Status == types.ConversionFailed {
		return fmt.Errorf("converting %s: %s", args[0], res.Error)
	}
	return nil
}
