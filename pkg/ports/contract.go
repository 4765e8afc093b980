package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easel-ai/easel/pkg/domain"
)

// RunProjectStoreContract runs a suite of tests to verify that a
// ProjectStore implementation adheres to the defined interface contract.
func RunProjectStoreContract(t *testing.T, store ProjectStore) {
	ctx := context.Background()
	projectID := "contract-test-project-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		project := domain.NewProject(projectID, "Contract Test")
		project.Layers = append(project.Layers, &domain.Layer{
			ID:      "layer-a",
			Name:    "Title",
			Type:    domain.LayerText,
			Visible: true,
			Props:   map[string]any{"text": "hello"},
			Keyframes: []*domain.Keyframe{
				{ID: "kf-1", Time: 0, Property: "opacity", Value: 0.0, Interp: domain.Linear()},
				{ID: "kf-2", Time: 2, Property: "opacity", Value: 1.0, Interp: domain.Linear()},
			},
		})

		err := store.Save(ctx, project)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, projectID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, project.Name, loaded.Name)
		require.Len(t, loaded.Layers, 1)
		assert.Equal(t, "layer-a", loaded.Layers[0].ID)
		require.Len(t, loaded.Layers[0].Keyframes, 2)
		assert.Equal(t, "opacity", loaded.Layers[0].Keyframes[0].Property)
	})

	t.Run("Load is isolated from later mutation", func(t *testing.T) {
		loaded, err := store.Load(ctx, projectID)
		require.NoError(t, err)

		loaded.Name = "mutated"
		loaded.Layers[0].Props["text"] = "mutated"

		fresh, err := store.Load(ctx, projectID)
		require.NoError(t, err)
		assert.Equal(t, "Contract Test", fresh.Name)
		assert.Equal(t, "hello", fresh.Layers[0].Props["text"])
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+projectID)
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, domain.NewProject(projectID, "Doomed"))
		require.NoError(t, err)

		err = store.Delete(ctx, projectID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, projectID)
		assert.ErrorIs(t, err, domain.ErrProjectNotFound, "Load after Delete should return ErrProjectNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := projectID + "-1"
		id2 := projectID + "-2"
		_ = store.Save(ctx, domain.NewProject(id1, "One"))
		_ = store.Save(ctx, domain.NewProject(id2, "Two"))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		projects, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, projects, id1)
		assert.Contains(t, projects, id2)
	})
}
