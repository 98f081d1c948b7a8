package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredictRAGStatus(t *testing.T) {
	th := DefaultThresholds().RAG

	healthy := ProjectMetrics{
		ForecastAccuracy:    90,
		GenericResourcePct:  10,
		DurationVariance:    5,
		CriticalPathTaskPct: 15,
	}

	tests := []struct {
		name   string
		mutate func(m *ProjectMetrics)
		want   RAGStatus
	}{
		{"all healthy", func(_ *ProjectMetrics) {}, RAGGreen},

		{"red on forecast accuracy regardless of other fields", func(m *ProjectMetrics) {
			m.ForecastAccuracy = 45
			m.GenericResourcePct = 30
			m.DurationVariance = 10
			m.CriticalPathTaskPct = 10
		}, RAGRed},
		{"red on generic resources", func(m *ProjectMetrics) { m.GenericResourcePct = 81 }, RAGRed},
		{"red on duration variance", func(m *ProjectMetrics) { m.DurationVariance = 26 }, RAGRed},
		{"red on critical path share", func(m *ProjectMetrics) { m.CriticalPathTaskPct = 41 }, RAGRed},

		{"amber on forecast accuracy", func(m *ProjectMetrics) { m.ForecastAccuracy = 65 }, RAGAmber},
		{"amber on generic resources", func(m *ProjectMetrics) { m.GenericResourcePct = 51 }, RAGAmber},
		{"amber on duration variance", func(m *ProjectMetrics) { m.DurationVariance = 16 }, RAGAmber},
		{"amber on critical path share", func(m *ProjectMetrics) { m.CriticalPathTaskPct = 31 }, RAGAmber},

		{"boundary values stay green", func(m *ProjectMetrics) {
			m.ForecastAccuracy = 70
			m.GenericResourcePct = 50
			m.DurationVariance = 15
			m.CriticalPathTaskPct = 30
		}, RAGGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := healthy
			tt.mutate(&m)
			got := PredictRAGStatus(m, th)
			assert.Equal(t, tt.want, got)

			// The predictor is a pure function of its inputs.
			assert.Equal(t, got, PredictRAGStatus(m, th))
		})
	}
}

func TestPredictRAGStatus_ExhaustiveOverGrid(t *testing.T) {
	// Every input lands in exactly one of the three classes.
	th := DefaultThresholds().RAG
	values := []float64{0, 20, 45, 60, 75, 90, 100}

	for _, fa := range values {
		for _, generic := range values {
			for _, dv := range values {
				for _, cp := range values {
					m := ProjectMetrics{
						ForecastAccuracy:    fa,
						GenericResourcePct:  generic,
						DurationVariance:    dv,
						CriticalPathTaskPct: cp,
					}
					got := PredictRAGStatus(m, th)
					assert.Contains(t, []RAGStatus{RAGRed, RAGAmber, RAGGreen}, got)
				}
			}
		}
	}
}
