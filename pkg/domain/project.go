package domain

import "fmt"

// Default canvas settings for new projects.
const (
	DefaultWidth      = 1920
	DefaultHeight     = 1080
	DefaultDuration   = 10.0
	DefaultFPS        = 30.0
	DefaultBackground = "#000000"
	DefaultFontFamily = "Inter"
)

// Project is the serializable animation document.
// It is mutated exclusively through pkg/ops; callers own persistence.
type Project struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Width      int      `json:"width" yaml:"width"`
	Height     int      `json:"height" yaml:"height"`
	Duration   float64  `json:"duration" yaml:"duration"` // seconds
	FPS        float64  `json:"fps" yaml:"fps"`
	Background string   `json:"background" yaml:"background"`
	FontFamily string   `json:"font_family,omitempty" yaml:"font_family,omitempty"`
	Layers     []*Layer `json:"layers" yaml:"layers"`
}

// NewProject creates an empty project with default canvas settings.
func NewProject(id, name string) *Project {
	return &Project{
		ID:         id,
		Name:       name,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Duration:   DefaultDuration,
		FPS:        DefaultFPS,
		Background: DefaultBackground,
		FontFamily: DefaultFontFamily,
		Layers:     []*Layer{},
	}
}

// Validate checks the project-level invariants.
func (p *Project) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("canvas dimensions must be positive, got %dx%d", p.Width, p.Height)
	}
	if p.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", p.Duration)
	}
	if p.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %g", p.FPS)
	}
	return nil
}

// Layer returns the layer with the given id, or nil if absent.
func (p *Project) Layer(id string) *Layer {
	for _, l := range p.Layers {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// LayerIndex returns the position of the layer with the given id in the
// document order, or -1 if absent.
func (p *Project) LayerIndex(id string) int {
	for i, l := range p.Layers {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// RemoveLayer removes the layer with the given id and clears the parent
// link of any layer that referenced it. Returns false if the id is unknown.
func (p *Project) RemoveLayer(id string) bool {
	idx := p.LayerIndex(id)
	if idx < 0 {
		return false
	}
	p.Layers = append(p.Layers[:idx], p.Layers[idx+1:]...)
	for _, l := range p.Layers {
		if l.ParentID == id {
			l.ParentID = ""
		}
	}
	return true
}

// Clone returns a deep copy of the project.
// Mutation handlers operate on clones so a failed operation never leaves
// a half-applied document behind.
func (p *Project) Clone() *Project {
	cp := *p
	cp.Layers = make([]*Layer, len(p.Layers))
	for i, l := range p.Layers {
		cp.Layers[i] = l.Clone()
	}
	return &cp
}
