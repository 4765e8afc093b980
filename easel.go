package easel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/easel-ai/easel/internal/logging"
	"github.com/easel-ai/easel/pkg/adapters/memory"
	"github.com/easel-ai/easel/pkg/domain"
	"github.com/easel-ai/easel/pkg/observability"
	"github.com/easel-ai/easel/pkg/ops"
	"github.com/easel-ai/easel/pkg/ports"
	"github.com/easel-ai/easel/pkg/refs"
	"github.com/easel-ai/easel/pkg/session"
	"github.com/easel-ai/easel/pkg/timeline"
)

// Version is the library version, surfaced by the CLI and the MCP server.
var Version = "0.3.0"

// Studio is the high-level entry point for the easel library.
// It wires the mutation catalog, project persistence and instrumentation
// behind a simplified API for hosts and adapters.
type Studio struct {
	catalog  *ops.Catalog
	sessions *session.Manager
	logger   *slog.Logger
	metrics  *observability.Metrics
	newID    func() string
}

// Option defines a functional option for configuring the Studio.
type Option func(*Studio)

// WithStore selects the project persistence backend.
func WithStore(store ports.ProjectStore) Option {
	return func(s *Studio) {
		s.sessions = session.NewManager(store)
	}
}

// WithSessionManager injects a pre-built session manager (e.g. one with
// a distributed locker), bypassing the default in-memory setup.
func WithSessionManager(m *session.Manager) Option {
	return func(s *Studio) {
		s.sessions = m
	}
}

// WithCatalog injects a custom mutation catalog.
func WithCatalog(c *ops.Catalog) Option {
	return func(s *Studio) {
		s.catalog = c
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Studio) {
		s.logger = logger
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Studio) {
		s.metrics = m
	}
}

// WithIDGenerator overrides project id generation, mainly for tests.
func WithIDGenerator(fn func() string) Option {
	return func(s *Studio) {
		s.newID = fn
	}
}

// New creates a Studio. Without options it runs fully in memory.
func New(opts ...Option) *Studio {
	s := &Studio{
		logger: logging.NewNop(),
		newID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sessions == nil {
		s.sessions = session.NewManager(memory.NewStore())
	}
	if s.catalog == nil {
		s.catalog = ops.NewCatalog(ops.WithLogger(s.logger))
	}
	return s
}

// Catalog returns the mutation catalog shared by all boundaries.
func (s *Studio) Catalog() *ops.Catalog {
	return s.catalog
}

// Sessions returns the session manager guarding the project store.
func (s *Studio) Sessions() *session.Manager {
	return s.sessions
}

// Logger returns the configured logger.
func (s *Studio) Logger() *slog.Logger {
	return s.logger
}

// Metrics returns the configured metrics, possibly nil.
func (s *Studio) Metrics() *observability.Metrics {
	return s.metrics
}

// Tools returns the tool catalog entries in registration order.
func (s *Studio) Tools() []ops.Tool {
	return s.catalog.Tools()
}

// CreateProject creates and persists an empty project.
func (s *Studio) CreateProject(ctx context.Context, name string) (*domain.Project, error) {
	project := domain.NewProject(s.newID(), name)
	if err := s.sessions.Save(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to persist new project: %w", err)
	}
	s.logger.Info("project created", "project_id", project.ID, "name", name)
	return project, nil
}

// Project loads a project by id.
func (s *Studio) Project(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.sessions.Load(ctx, projectID)
}

// Projects lists stored project ids.
func (s *Studio) Projects(ctx context.Context) ([]string, error) {
	return s.sessions.List(ctx)
}

// DeleteProject removes a project.
func (s *Studio) DeleteProject(ctx context.Context, projectID string) error {
	return s.sessions.Delete(ctx, projectID)
}

// Apply runs one mutation on the stateless path: the persisted document
// is fetched, mutated and persisted as a single cycle under the
// project's lock. No turn exists here, so positional aliases resolve to
// an error by design.
func (s *Studio) Apply(ctx context.Context, projectID, tool string, args map[string]any) (ops.Result, error) {
	var res ops.Result
	err := s.sessions.Mutate(ctx, projectID, func(ctx context.Context, project *domain.Project) (*domain.Project, error) {
		next, r := s.catalog.Apply(project, &ops.Scope{}, tool, args)
		res = r
		if !r.Success {
			return nil, nil // keep the stored document untouched
		}
		return next, nil
	})
	s.metrics.ObserveMutation(tool, err == nil && res.Success)
	if err != nil {
		return ops.Result{}, err
	}
	return res, nil
}

// ApplyLocal runs one mutation against an in-memory document on the
// interactive path. The caller owns persistence (typically once per
// turn) and the scope carrying the turn's alias state.
func (s *Studio) ApplyLocal(project *domain.Project, scope *ops.Scope, tool string, args map[string]any) (*domain.Project, ops.Result) {
	next, res := s.catalog.Apply(project, scope, tool, args)
	s.metrics.ObserveMutation(tool, res.Success)
	return next, res
}

// Evaluate computes a layer property's value at a point in time.
// The layer reference accepts ids and names; positional aliases need an
// interactive turn and are not valid here.
func (s *Studio) Evaluate(project *domain.Project, layerRef, property string, at float64) (any, error) {
	id, err := refs.Resolve(project, nil, layerRef)
	if err != nil {
		return nil, err
	}
	return timeline.Evaluate(s.catalog.Registry(), project.Layer(id), property, at)
}
