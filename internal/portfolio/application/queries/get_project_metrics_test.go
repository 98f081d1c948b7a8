package queries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchtower-ppm/watchtower/internal/portfolio/domain"
)

func TestGetProjectMetricsHandler_Handle(t *testing.T) {
	handler := NewGetProjectMetricsHandler(domain.DefaultThresholds())

	t.Run("empty input yields no projects", func(t *testing.T) {
		metrics, err := handler.Handle(context.Background(), GetProjectMetricsQuery{})
		require.NoError(t, err)
		assert.Empty(t, metrics)
	})

	t.Run("groups by project in discovery order", func(t *testing.T) {
		tasks := []domain.Task{
			{Project: "Atlas"},
			{Project: "Beacon"},
			{Project: "Atlas"},
			{Project: ""},
		}

		metrics, err := handler.Handle(context.Background(), GetProjectMetricsQuery{Tasks: tasks})
		require.NoError(t, err)

		require.Len(t, metrics, 3)
		assert.Equal(t, "Atlas", metrics[0].Project)
		assert.Equal(t, "Beacon", metrics[1].Project)
		assert.Equal(t, domain.UnnamedProject, metrics[2].Project)
		assert.Equal(t, 2, metrics[0].TotalTasks)
		assert.Equal(t, 1, metrics[1].TotalTasks)
	})

	t.Run("computes full group metrics", func(t *testing.T) {
		metrics, err := handler.Handle(context.Background(), GetProjectMetricsQuery{Tasks: fixtureTasks()})
		require.NoError(t, err)

		require.Len(t, metrics, 2)
		atlas := metrics[0]
		assert.Equal(t, "Atlas", atlas.Project)
		assert.Equal(t, 2, atlas.TotalTasks)
		assert.Equal(t, 2, atlas.CompletedTasks)
		assert.Equal(t, 50.0, atlas.ForecastAccuracy)
		assert.Equal(t, domain.RAGAmber, atlas.PredictedRAG)
		assert.NotEmpty(t, atlas.TopRisks)
	})

	t.Run("order is stable across runs", func(t *testing.T) {
		tasks := []domain.Task{
			{Project: "Delta"}, {Project: "Atlas"}, {Project: "Echo"},
			{Project: "Beacon"}, {Project: "Atlas"}, {Project: "Delta"},
		}
		want := []string{"Delta", "Atlas", "Echo", "Beacon"}

		for i := 0; i < 50; i++ {
			metrics, err := handler.Handle(context.Background(), GetProjectMetricsQuery{Tasks: tasks})
			require.NoError(t, err)
			require.Len(t, metrics, len(want))
			for i, name := range want {
				assert.Equal(t, name, metrics[i].Project)
			}
		}
	})
}
