package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/easel-ai/easel"
	"github.com/easel-ai/easel/pkg/ports"
)

// DefaultModel is used when no model is configured.
const DefaultModel = openai.GPT4oMini

// DefaultMaxToolRounds bounds how many model/tool round-trips a single
// turn may take before it is cut off.
const DefaultMaxToolRounds = 16

// ChatCompleter is the slice of the OpenAI client the runner needs.
// *openai.Client satisfies it; tests substitute a scripted fake.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ContentRenderer transforms assistant output before display, e.g.
// markdown to ANSI for terminal use.
type ContentRenderer func(string) (string, error)

// Runner drives interactive authoring sessions against a Studio.
type Runner struct {
	studio        *easel.Studio
	client        ChatCompleter
	model         string
	maxToolRounds int

	input    io.Reader
	output   io.Writer
	renderer ContentRenderer

	access ports.AccessController
	usage  ports.UsageReporter
	logger *slog.Logger

	// history carries the conversation across turns of one session.
	history []openai.ChatCompletionMessage
}

// NewRunner creates a Runner bound to a studio and a chat client.
func NewRunner(studio *easel.Studio, client ChatCompleter, opts ...Option) *Runner {
	r := &Runner{
		studio:        studio,
		client:        client,
		model:         DefaultModel,
		maxToolRounds: DefaultMaxToolRounds,
		input:         os.Stdin,
		output:        os.Stdout,
		access:        ports.AllowAll{},
		usage:         ports.NopUsageReporter{},
		logger:        studio.Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run enters the interactive prompt loop for one project. It returns on
// EOF, "exit"/"quit", or an unrecoverable error. Structured mutation
// failures are not unrecoverable; the model sees them and may retry
// within the turn.
func (r *Runner) Run(ctx context.Context, projectID, userID string) error {
	reader := bufio.NewReader(r.input)

	for {
		fmt.Fprint(r.output, "> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		prompt := strings.TrimSpace(line)
		if prompt == "" {
			continue
		}
		if prompt == "exit" || prompt == "quit" {
			return nil
		}

		reply, err := r.RunTurn(ctx, projectID, userID, prompt)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(r.output, "error: %v\n", err)
			continue
		}
		r.display(reply)
	}
}

func (r *Runner) display(content string) {
	out := strings.TrimSpace(content)
	if out == "" {
		return
	}
	if r.renderer != nil {
		if rendered, err := r.renderer(out); err == nil {
			out = rendered
		}
	}
	fmt.Fprintln(r.output, strings.TrimSpace(out))
}

// Reset drops the conversation history, starting the next turn from a
// clean slate.
func (r *Runner) Reset() {
	r.history = nil
}
