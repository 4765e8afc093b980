package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"github.com/easel-ai/easel/internal/logging"
	"github.com/easel-ai/easel/pkg/domain"
	"github.com/easel-ai/easel/pkg/ports"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates project access, ensuring safe concurrent
// read-modify-write cycles. It uses reference counting to garbage
// collect unused locks.
type Manager struct {
	store ports.ProjectStore

	mu    sync.Mutex
	locks map[string]*lockEntry

	locker  ports.DistributedLocker
	lockTTL time.Duration
	logger  *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking across replicas.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLockTTL overrides the distributed lock TTL (default 30s).
func WithLockTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.lockTTL = ttl
	}
}

// WithLogger configures a logger for deferred errors.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a Manager over the given project store.
func NewManager(store ports.ProjectStore, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		locks:   make(map[string]*lockEntry),
		lockTTL: 30 * time.Second,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller must Lock the entry.mu and call release(projectID) after unlocking.
func (m *Manager) acquire(projectID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[projectID]
	if !exists {
		entry = &lockEntry{}
		m.locks[projectID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry at zero.
func (m *Manager) release(projectID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[projectID]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, projectID)
	}
}

// Load retrieves a project from the store under its lock.
func (m *Manager) Load(ctx context.Context, projectID string) (*domain.Project, error) {
	var project *domain.Project
	err := m.WithLock(ctx, projectID, func(ctx context.Context) error {
		var err error
		project, err = m.store.Load(ctx, projectID)
		return err
	})
	return project, err
}

// Save persists a project under its lock.
func (m *Manager) Save(ctx context.Context, project *domain.Project) error {
	return m.WithLock(ctx, project.ID, func(ctx context.Context) error {
		return m.store.Save(ctx, project)
	})
}

// Delete removes a project from the store.
func (m *Manager) Delete(ctx context.Context, projectID string) error {
	return m.WithLock(ctx, projectID, func(ctx context.Context) error {
		return m.store.Delete(ctx, projectID)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying project store.
func (m *Manager) Store() ports.ProjectStore {
	return m.store
}

// Mutate runs fn while holding the project's lock, giving the caller an
// atomic fetch-mutate-persist cycle: fn receives the freshly loaded
// document and returns the document to persist (or nil to skip the save).
func (m *Manager) Mutate(ctx context.Context, projectID string, fn func(ctx context.Context, project *domain.Project) (*domain.Project, error)) error {
	return m.WithLock(ctx, projectID, func(ctx context.Context) error {
		project, err := m.store.Load(ctx, projectID)
		if err != nil {
			return err
		}
		next, err := fn(ctx, project)
		if err != nil {
			return err
		}
		if next == nil {
			return nil
		}
		return m.store.Save(ctx, next)
	})
}

// WithLock executes fn while holding the lock for the project.
func (m *Manager) WithLock(ctx context.Context, projectID string, fn func(context.Context) error) error {
	entry := m.acquire(projectID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(projectID)
	}()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, projectID, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"project_id", projectID,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}
