//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// goldenDir holds the sample header and its expected README.
var goldenDir = filepath.Join("internal", "readme", "testdata")

// Golden regenerates the expected README for the sample header with the
// freshly built binary. Review the diff before committing.
func Golden() error {
	mg.Deps(Build)
	in := filepath.Join(goldenDir, "mylib.el")
	out := filepath.Join(goldenDir, "mylib.org")
	if err := sh.RunV(filepath.Join(binDir, binName), "convert", in, out); err != nil {
		return fmt.Errorf("converting %s: %w", in, err)
	}
	return sh.RunV("git", "diff", "--stat", "--", out)
}
