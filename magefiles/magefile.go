//go:build mage

// Package main contains Mage build targets for el2readme developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/el2readme/internal/readme"
)

const (
	binDir  = "bin"
	binName = "el2readme"
	cmdPkg  = "./cmd/el2readme"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Check builds the binary and runs the tests.
func Check() {
	mg.SerialDeps(Build, Test)
}

// Stats converts every sample header under testdata and prints what each
// one yields: header lines, code blocks, license and README word count.
func Stats() error {
	sources, err := filepath.Glob(filepath.Join(goldenDir, "*.el"))
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("no sample headers in %s", goldenDir)
	}

	var lines, blocks, words int
	for _, src := range sources {
		data, err := os.ReadFile(src)
		if err != nil {
			return fmt.Errorf("reading %s: %w", src, err)
		}
		res := readme.Convert(string(data), readme.Options{Filename: filepath.Base(src)})

		license := "none"
		if res.Disclaimer {
			license = "GPL " + res.License.Version
			if res.License.OrLater {
				license += "+"
			}
		}
		n := len(strings.Fields(res.Text))
		fmt.Printf("%-24s header=%-4d blocks=%-3d words=%-5d %s\n",
			filepath.Base(src), res.HeaderLines, res.CodeBlocks, n, license)

		lines += res.HeaderLines
		blocks += res.CodeBlocks
		words += n
	}
	fmt.Printf("%d files: %d header lines, %d code blocks, %d README words\n",
		len(sources), lines, blocks, words)
	return nil
}
