package ops

import (
	"github.com/easel-ai/easel/pkg/domain"
)

// ConfigureProjectInput is the declared input shape of configure_project.
type ConfigureProjectInput struct {
	Name       *string  `json:"name,omitempty"`
	Width      *int     `json:"width,omitempty"`
	Height     *int     `json:"height,omitempty"`
	Duration   *float64 `json:"duration,omitempty"`
	FPS        *float64 `json:"fps,omitempty"`
	Background *string  `json:"background,omitempty"`
	FontFamily *string  `json:"font_family,omitempty"`
}

func registerConfigureProject(c *Catalog) {
	c.Register(Tool{
		Name:        "configure_project",
		Description: "Update project-level settings: name, canvas size, duration, frame rate, background or font.",
		Parameters: objectSchema(map[string]any{
			"name":        stringParam("Project name"),
			"width":       integerParam("Canvas width in pixels, must be positive"),
			"height":      integerParam("Canvas height in pixels, must be positive"),
			"duration":    numberParam("Project duration in seconds, must be positive"),
			"fps":         numberParam("Frame rate, must be positive"),
			"background":  stringParam("Background descriptor, e.g. a hex color or 'transparent'"),
			"font_family": stringParam("Default font family for text layers"),
		}),
	}, handleConfigureProject)
}

func handleConfigureProject(c *Catalog, p *domain.Project, scope *Scope, args map[string]any) Result {
	var in ConfigureProjectInput
	if err := decodeArgs(args, &in); err != nil {
		return Fail(err)
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Width != nil {
		p.Width = *in.Width
	}
	if in.Height != nil {
		p.Height = *in.Height
	}
	if in.Duration != nil {
		p.Duration = *in.Duration
	}
	if in.FPS != nil {
		p.FPS = *in.FPS
	}
	if in.Background != nil {
		if *in.Background == "" {
			return Failf("background must not be empty")
		}
		p.Background = *in.Background
	}
	if in.FontFamily != nil {
		p.FontFamily = *in.FontFamily
	}

	if err := p.Validate(); err != nil {
		return Fail(err)
	}

	return OK("updated project settings").With("project_id", p.ID)
}
