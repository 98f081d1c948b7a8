// Package rules loads the data-driven rule thresholds from a YAML file.
package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/watchtower-ppm/watchtower/internal/portfolio/domain"
)

// Load reads a thresholds file over the defaults: fields present in the
// file override, everything else keeps its default value. An empty path
// returns the defaults unchanged.
func Load(path string) (domain.Thresholds, error) {
	thresholds := domain.DefaultThresholds()
	if path == "" {
		return thresholds, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return thresholds, fmt.Errorf("failed to read thresholds file: %w", err)
	}

	if err := yaml.Unmarshal(data, &thresholds); err != nil {
		return thresholds, fmt.Errorf("invalid thresholds file %s: %w", path, err)
	}
	return thresholds, nil
}
