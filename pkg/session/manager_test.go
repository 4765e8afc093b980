package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easel-ai/easel/pkg/adapters/memory"
	"github.com/easel-ai/easel/pkg/domain"
	"github.com/easel-ai/easel/pkg/ports"
)

// fakeLocker records lock activity so tests can assert the distributed
// path is exercised.
type fakeLocker struct {
	mu       sync.Mutex
	locks    int
	unlocks  int
	lastKey  string
	lastTTL  time.Duration
	lockErr  error
}

func (f *fakeLocker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lockErr != nil {
		return nil, f.lockErr
	}
	f.locks++
	f.lastKey = key
	f.lastTTL = ttl
	return func(ctx context.Context) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.unlocks++
		return nil
	}, nil
}

func seeded(t *testing.T, projects ...*domain.Project) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	for _, p := range projects {
		require.NoError(t, store.Save(context.Background(), p))
	}
	return store
}

func TestManagerLoadSaveDelete(t *testing.T) {
	m := NewManager(seeded(t, domain.NewProject("p1", "Demo")))
	ctx := context.Background()

	loaded, err := m.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Demo", loaded.Name)

	loaded.Name = "Renamed"
	require.NoError(t, m.Save(ctx, loaded))

	again, err := m.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", again.Name)

	require.NoError(t, m.Delete(ctx, "p1"))
	_, err = m.Load(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestMutatePersistsReturnedDocument(t *testing.T) {
	m := NewManager(seeded(t, domain.NewProject("p1", "Demo")))
	ctx := context.Background()

	err := m.Mutate(ctx, "p1", func(ctx context.Context, p *domain.Project) (*domain.Project, error) {
		p.Name = "Mutated"
		return p, nil
	})
	require.NoError(t, err)

	loaded, err := m.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Mutated", loaded.Name)
}

func TestMutateNilSkipsSave(t *testing.T) {
	m := NewManager(seeded(t, domain.NewProject("p1", "Demo")))
	ctx := context.Background()

	err := m.Mutate(ctx, "p1", func(ctx context.Context, p *domain.Project) (*domain.Project, error) {
		p.Name = "discarded"
		return nil, nil
	})
	require.NoError(t, err)

	loaded, err := m.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Demo", loaded.Name, "a nil return means nothing to persist")
}

func TestMutateErrorAborts(t *testing.T) {
	m := NewManager(seeded(t, domain.NewProject("p1", "Demo")))
	ctx := context.Background()
	boom := errors.New("boom")

	err := m.Mutate(ctx, "p1", func(ctx context.Context, p *domain.Project) (*domain.Project, error) {
		p.Name = "discarded"
		return p, boom
	})
	assert.ErrorIs(t, err, boom)

	loaded, err := m.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Demo", loaded.Name)
}

func TestMutateUnknownProject(t *testing.T) {
	m := NewManager(memory.NewStore())

	err := m.Mutate(context.Background(), "ghost", func(ctx context.Context, p *domain.Project) (*domain.Project, error) {
		t.Fatal("fn must not run when the load fails")
		return p, nil
	})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestMutateSerializesConcurrentWriters(t *testing.T) {
	p := domain.NewProject("p1", "Demo")
	p.Duration = 1000
	m := NewManager(seeded(t, p))
	ctx := context.Background()

	const writers = 25
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := m.Mutate(ctx, "p1", func(ctx context.Context, p *domain.Project) (*domain.Project, error) {
				// Read-modify-write on a shared counter: lost updates
				// would leave the total short.
				p.Duration++
				return p, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	loaded, err := m.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1000.0+writers, loaded.Duration)
}

func TestWithLockerWrapsEveryCycle(t *testing.T) {
	locker := &fakeLocker{}
	m := NewManager(seeded(t, domain.NewProject("p1", "Demo")),
		WithLocker(locker),
		WithLockTTL(5*time.Second),
	)
	ctx := context.Background()

	_, err := m.Load(ctx, "p1")
	require.NoError(t, err)
	require.NoError(t, m.Mutate(ctx, "p1", func(ctx context.Context, p *domain.Project) (*domain.Project, error) {
		return p, nil
	}))

	locker.mu.Lock()
	defer locker.mu.Unlock()
	assert.Equal(t, 2, locker.locks)
	assert.Equal(t, 2, locker.unlocks, "the lock is released even on the read path")
	assert.Equal(t, "p1", locker.lastKey)
	assert.Equal(t, 5*time.Second, locker.lastTTL)
}

func TestWithLockerFailureAbortsCycle(t *testing.T) {
	locker := &fakeLocker{lockErr: errors.New("redis down")}
	m := NewManager(seeded(t, domain.NewProject("p1", "Demo")), WithLocker(locker))

	err := m.Mutate(context.Background(), "p1", func(ctx context.Context, p *domain.Project) (*domain.Project, error) {
		t.Fatal("fn must not run without the distributed lock")
		return p, nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "distributed lock")
}

func TestLockEntriesAreGarbageCollected(t *testing.T) {
	m := NewManager(memory.NewStore())
	ctx := context.Background()

	var ran atomic.Bool
	require.NoError(t, m.WithLock(ctx, "p1", func(ctx context.Context) error {
		ran.Store(true)
		return nil
	}))
	assert.True(t, ran.Load())

	m.mu.Lock()
	defer m.mu.Unlock()
	assert.Empty(t, m.locks, "entries are dropped once the last holder releases")
}
