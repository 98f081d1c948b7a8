package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGenericResource(t *testing.T) {
	tests := []struct {
		assignee string
		want     bool
	}{
		{"Resource_04", true},
		{"resource_1", true},
		{"Generic Developer", true},
		{"TBD", true},
		{"tbd - backend", true},
		{"Unassigned", true},
		{"PLACEHOLDER", true},
		{"To Be Determined", true},
		{"Dana Oliveira", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.assignee, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGenericResource(tt.assignee, DefaultGenericResourceMarkers))
		})
	}
}

func TestThresholds_Markers(t *testing.T) {
	t.Run("falls back to defaults when unset", func(t *testing.T) {
		var th Thresholds
		assert.Equal(t, DefaultGenericResourceMarkers, th.Markers())
	})

	t.Run("configured markers win", func(t *testing.T) {
		th := Thresholds{GenericResourceMarkers: []string{"contractor"}}
		assert.Equal(t, []string{"contractor"}, th.Markers())
	})
}

func TestDefaultThresholds(t *testing.T) {
	th := DefaultThresholds()

	assert.Equal(t, 50.0, th.RAG.RedForecastAccuracy)
	assert.Equal(t, 70.0, th.RAG.AmberForecastAccuracy)
	assert.Equal(t, 1.10, th.Risk.BudgetOverrunRatio)
	assert.Equal(t, 5, th.Patterns.HoardingMinTasks)
	assert.Equal(t, 40, th.Insights.PoorPerformanceScore)
	assert.Equal(t, DefaultGenericResourceMarkers, th.GenericResourceMarkers)
}
