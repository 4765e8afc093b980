package ops

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"

	"github.com/easel-ai/easel/internal/logging"
	"github.com/easel-ai/easel/pkg/domain"
	"github.com/easel-ai/easel/pkg/refs"
	"github.com/easel-ai/easel/pkg/schema"
)

// Scope carries per-invocation context into a mutation.
// On the interactive path it holds the current Turn so positional aliases
// resolve and newly created layers are counted. Stateless callers pass a
// nil Turn; aliases are then rejected by the resolver.
type Scope struct {
	Turn *refs.Turn
}

// record registers a newly created layer with the turn, if any.
func (s *Scope) record(layerID string) {
	if s == nil || s.Turn == nil {
		return
	}
	s.Turn.Record(layerID)
}

// resolveLayer resolves a caller-supplied layer reference against the project.
func (s *Scope) resolveLayer(p *domain.Project, ref string) (*domain.Layer, error) {
	var turn *refs.Turn
	if s != nil {
		turn = s.Turn
	}
	id, err := refs.Resolve(p, turn, ref)
	if err != nil {
		return nil, err
	}
	return p.Layer(id), nil
}

// HandlerFunc applies one mutation to the document. The project passed in
// is a private clone: handlers mutate it freely and signal failure through
// the Result, in which case the clone is discarded.
type HandlerFunc func(c *Catalog, p *domain.Project, scope *Scope, args map[string]any) Result

// Tool couples a catalog entry's metadata with its handler. Parameters is
// a JSON Schema object consumed by the MCP adapter and the chat loop when
// declaring the tool to a model.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
	ReadOnly    bool

	handler HandlerFunc
}

// Catalog is the registered command table of mutation operations.
// Safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	tools    map[string]Tool
	order    []string
	registry *schema.Registry
	logger   *slog.Logger
	newID    func() string
}

// Option configures the Catalog.
type Option func(*Catalog)

// WithLogger sets the structured logger used for internal events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) { c.logger = logger }
}

// WithSchemaRegistry overrides the props schema registry.
func WithSchemaRegistry(reg *schema.Registry) Option {
	return func(c *Catalog) { c.registry = reg }
}

// WithIDGenerator overrides id generation, mainly for deterministic tests.
func WithIDGenerator(fn func() string) Option {
	return func(c *Catalog) { c.newID = fn }
}

// NewCatalog creates a catalog pre-registered with the full operation set.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		tools:    make(map[string]Tool),
		registry: schema.Builtin(),
		logger:   logging.NewNop(),
		newID:    func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	registerBuiltins(c)
	return c
}

// Register adds a tool to the catalog. An existing tool with the same
// name is overwritten.
func (c *Catalog) Register(t Tool, fn HandlerFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t.handler = fn
	if _, exists := c.tools[t.Name]; !exists {
		c.order = append(c.order, t.Name)
	}
	c.tools[t.Name] = t
}

// Tools returns the catalog entries in registration order.
func (c *Catalog) Tools() []Tool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Tool, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.tools[name])
	}
	return out
}

// Lookup returns the tool with the given name.
func (c *Catalog) Lookup(name string) (Tool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tools[name]
	return t, ok
}

// Registry exposes the props schema registry shared with the evaluator.
func (c *Catalog) Registry() *schema.Registry {
	return c.registry
}

// Apply executes the named tool against the project and returns the
// resulting document plus the structured outcome. On failure the input
// project is returned unchanged; the handler only ever saw a clone.
func (c *Catalog) Apply(project *domain.Project, scope *Scope, name string, args map[string]any) (next *domain.Project, res Result) {
	tool, ok := c.Lookup(name)
	if !ok {
		return project, Failf("unknown tool %q", name)
	}

	// A handler panic is a defect, not a user error. Contain it so one
	// bad mutation cannot take down the session.
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("mutation handler panicked", "tool", name, "panic", r)
			next, res = project, Failf("internal error applying %s", name)
		}
	}()

	clone := project.Clone()
	res = tool.handler(c, clone, scope, args)
	if !res.Success {
		return project, res
	}

	c.logger.Debug("mutation applied", "tool", name, "project", project.ID)
	return clone, res
}

// decodeArgs maps loosely typed tool arguments onto a typed input struct.
// JSON tags drive field naming so input shapes match the declared schemas.
func decodeArgs(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "json",
	})
	if err != nil {
		return err
	}
	return dec.Decode(args)
}

// registerBuiltins installs the fixed operation set.
func registerBuiltins(c *Catalog) {
	registerCreateLayer(c)
	registerEditLayer(c)
	registerAnimateLayer(c)
	registerUpdateKeyframe(c)
	registerRemoveKeyframe(c)
	registerRemoveLayer(c)
	registerGroupLayers(c)
	registerUngroupLayers(c)
	registerConfigureProject(c)
	registerGetProject(c)
	registerListLayers(c)
}
