// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/el2readme/pkg/types"
)

// WriteReport saves a batch result to a YAML file.
func WriteReport(path string, result types.BatchResult) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// ReadReport loads a batch result previously saved with WriteReport.
func ReadReport(path string) (types.BatchResult, error) {
	var result types.BatchResult
	data, err := os.ReadFile(path)
	if err != nil {
		return result, fmt.Errorf("reading report %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return result, nil
}

// FailedInputs returns the inputs that failed in result, in order.
func FailedInputs(result types.BatchResult) []string {
	var inputs []string
	for _, f := range result.Files {
		if f.Status == types.ConversionFailed {
			inputs = append(inputs, f.Input)
		}
	}
	return inputs
}
