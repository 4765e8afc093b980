package runner

import (
	"io"
	"log/slog"

	"github.com/easel-ai/easel/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithModel selects the chat model.
func WithModel(model string) Option {
	return func(r *Runner) {
		r.model = model
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithIO sets the reader prompts are read from and the writer replies
// are printed to.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(r *Runner) {
		if in != nil {
			r.input = in
		}
		if out != nil {
			r.output = out
		}
	}
}

// WithRenderer configures the content renderer (e.g. markdown to ANSI).
func WithRenderer(renderer ContentRenderer) Option {
	return func(r *Runner) {
		r.renderer = renderer
	}
}

// WithAccessController gates turns behind an external access check.
func WithAccessController(access ports.AccessController) Option {
	return func(r *Runner) {
		r.access = access
	}
}

// WithUsageReporter configures metering of model token usage.
func WithUsageReporter(usage ports.UsageReporter) Option {
	return func(r *Runner) {
		r.usage = usage
	}
}

// WithMaxToolRounds bounds the model/tool round-trips per turn.
func WithMaxToolRounds(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.maxToolRounds = n
		}
	}
}
