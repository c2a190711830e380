// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/el2readme/internal/convert"
)

const cliSource = ";;; demo.el --- Demo package\n\n;; Keywords: demo\n\n;;; Code:\n\n(provide 'demo)\n"

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	return rootCmd.Execute()
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "demo.el")
	out := filepath.Join(dir, "OUT.org")
	require.NoError(t, os.WriteFile(in, []byte(cliSource), 0o644))

	require.NoError(t, execute(t, "convert", in, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#+TITLE: demo\n\nDemo package\n")
	assert.Contains(t, string(data), "  - Keywords: demo\n")
	assert.Contains(t, string(data), "generated from demo.el")
}

func TestConvertCommand_MissingInput(t *testing.T) {
	dir := t.TempDir()
	err := execute(t, "convert", filepath.Join(dir, "missing.el"), filepath.Join(dir, "README.org"))
	assert.Error(t, err)
}

func TestBatchCommand_ContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.el")
	require.NoError(t, os.WriteFile(good, []byte(cliSource), 0o644))
	missing := filepath.Join(dir, "missing.el")
	report := filepath.Join(dir, "report.yaml")

	err := execute(t, "batch", "--report", report, missing, good)
	assert.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "good.org"))
	assert.NoError(t, statErr)

	result, err := convert.ReadReport(report)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Converted)
	assert.Equal(t, []string{missing}, convert.FailedInputs(result))
}

func TestNestedKeysReadFromEnvironment(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("EL2README_LOG_LEVEL", "loud")

	err = execute(t, "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown log level "loud"`)
}
