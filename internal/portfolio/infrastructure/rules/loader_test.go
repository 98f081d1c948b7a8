package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchtower-ppm/watchtower/internal/portfolio/domain"
)

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		thresholds, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultThresholds(), thresholds)
	})

	t.Run("partial file overrides only the named fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "thresholds.yaml")
		content := `
rag:
  red_forecast_accuracy: 40
risk:
  budget_overrun_ratio: 1.25
generic_resource_markers:
  - contractor
  - external
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		thresholds, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 40.0, thresholds.RAG.RedForecastAccuracy)
		assert.Equal(t, 1.25, thresholds.Risk.BudgetOverrunRatio)
		assert.Equal(t, []string{"contractor", "external"}, thresholds.GenericResourceMarkers)

		// Untouched fields keep their defaults.
		defaults := domain.DefaultThresholds()
		assert.Equal(t, defaults.RAG.AmberForecastAccuracy, thresholds.RAG.AmberForecastAccuracy)
		assert.Equal(t, defaults.Patterns, thresholds.Patterns)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read thresholds file")
	})

	t.Run("malformed file fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rag: [not a map"), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid thresholds file")
	})
}
