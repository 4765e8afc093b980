package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easel-ai/easel/pkg/domain"
	"github.com/easel-ai/easel/pkg/ports"
)

func TestStoreContract(t *testing.T) {
	ports.RunProjectStoreContract(t, NewStore())
}

func TestSaveIsolatesCaller(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	project := domain.NewProject("p1", "Original")
	require.NoError(t, store.Save(ctx, project))

	// Mutating the saved pointer must not reach the stored copy.
	project.Name = "changed"

	loaded, err := store.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Original", loaded.Name)
}

func TestConcurrentAccess(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Save(ctx, domain.NewProject("shared", "Race"))
			_, _ = store.Load(ctx, "shared")
			_, _ = store.List(ctx)
		}()
	}
	wg.Wait()

	loaded, err := store.Load(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, "Race", loaded.Name)
}
