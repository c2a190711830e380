// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the configuration and result types shared by the
// el2readme commands.
package types

import (
	"time"

	"github.com/pdiddy/el2readme/internal/readme"
)

// DefaultOutput is the README file name written when no output path is given.
const DefaultOutput = "README.org"

// Config holds settings shared by all el2readme commands. Values come from
// el2readme.yaml, EL2README_* environment variables, and flags.
type Config struct {
	// Output is the file name used when a command is not given an output path.
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// CodeLanguage names the language on emitted source blocks (default "emacs-lisp").
	CodeLanguage string `json:"code_language" yaml:"code_language" mapstructure:"code_language"`

	// ToolName and ToolURL are credited in the generated-by line.
	ToolName string `json:"tool_name" yaml:"tool_name" mapstructure:"tool_name"`
	ToolURL  string `json:"tool_url" yaml:"tool_url" mapstructure:"tool_url"`

	// Exclude lists glob patterns for files the batch command skips
	// (e.g. "*-autoloads.el").
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty" mapstructure:"exclude"`

	// Debounce is the quiet period the watch command waits for after a save.
	Debounce time.Duration `json:"debounce" yaml:"debounce" mapstructure:"debounce"`

	Log LogConfig `json:"log" yaml:"log" mapstructure:"log"`
}

// LogConfig selects the structured logger's level and output format.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is text or json.
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Output:       DefaultOutput,
		CodeLanguage: readme.DefaultCodeLanguage,
		ToolName:     readme.DefaultToolName,
		ToolURL:      readme.DefaultToolURL,
		Exclude:      []string{"*-autoloads.el", "*-pkg.el"},
		Debounce:     300 * time.Millisecond,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
