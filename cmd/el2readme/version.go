// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of el2readme",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("el2readme %s\n", version)

		showConfig, _ := cmd.Flags().GetBool("config-dump")
		if !showConfig {
			return nil
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(cfg)
	},
}

func init() {
	versionCmd.Flags().Bool("config-dump", false, "also print the effective configuration as YAML")
	rootCmd.AddCommand(versionCmd)
}
