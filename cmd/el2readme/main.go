// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the el2readme CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/el2readme/internal/logging"
	"github.com/pdiddy/el2readme/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is configured in PersistentPreRunE from the loaded config.
var logger = logging.Discard()

// rootCmd is the base command for the el2readme CLI.
var rootCmd = &cobra.Command{
	Use:   "el2readme",
	Short: "Turn Emacs Lisp file headers into Org READMEs",
	Long: `el2readme reads the header comment of an Emacs Lisp package (title line,
Author/Keywords labels, Commentary, example code) and writes it out as an
Org mode README suitable for a repository front page.

The GPL notice is collapsed into a single license line, indented examples
become source blocks, and ` + "`quoted'" + ` symbols become ~verbatim~.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		l, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}
		logger = l
		slog.SetDefault(l)
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("using config file", "path", used)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./el2readme.yaml or ~/.config/el2readme/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")
	rootCmd.PersistentFlags().String("lang", "", "language name for emitted source blocks")

	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("code_language", rootCmd.PersistentFlags().Lookup("lang"))
}

func initConfig() {
	defaults := types.DefaultConfig()
	viper.SetDefault("output", defaults.Output)
	viper.SetDefault("code_language", defaults.CodeLanguage)
	viper.SetDefault("tool_name", defaults.ToolName)
	viper.SetDefault("tool_url", defaults.ToolURL)
	viper.SetDefault("exclude", defaults.Exclude)
	viper.SetDefault("debounce", defaults.Debounce)
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.format", defaults.Log.Format)

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("el2readme")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "el2readme"))
		}
	}

	viper.SetEnvPrefix("EL2README")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "warning: could not read config: %v\n", err)
		}
	}
}

// loadConfig decodes the merged viper settings.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
