package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/easel-ai/easel/pkg/domain"
	"github.com/easel-ai/easel/pkg/ops"
	"github.com/easel-ai/easel/pkg/ports"
	"github.com/easel-ai/easel/pkg/refs"
)

const systemPrompt = `You are an animation author working on a layered, keyframed
composition. Use the provided tools to create and modify layers, set
keyframes, and configure the project. Layers can be referenced by id, by
name, or by creation order within this turn as layer_0, layer_1, and so
on. Tool failures describe what was wrong; correct the arguments and try
again. When the work is done, summarize what changed in plain language.`

// RunTurn executes one full authoring turn: the prompt plus every tool
// round-trip the model takes, applied against an in-memory copy of the
// project and persisted once at the end. Failed tool calls surface to
// the model as structured errors and leave the document untouched.
func (r *Runner) RunTurn(ctx context.Context, projectID, userID, prompt string) (string, error) {
	clean, err := SanitizeInput(prompt)
	if err != nil {
		return "", fmt.Errorf("prompt rejected: %w", err)
	}

	// Access is checked up front; a denied user gets no partial turn.
	if err := r.access.Authorize(ctx, userID, projectID); err != nil {
		return "", fmt.Errorf("access denied: %w", err)
	}

	project, err := r.studio.Project(ctx, projectID)
	if err != nil {
		return "", err
	}

	start := time.Now()
	scope := &ops.Scope{Turn: refs.NewTurn()}

	messages := r.turnMessages(project, clean)
	tools := r.toolDefinitions()

	var promptTokens, completionTokens int
	mutated := false
	answered := false
	reply := ""

	for round := 0; round < r.maxToolRounds; round++ {
		resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    r.model,
			Messages: messages,
			Tools:    tools,
		})
		if err != nil {
			return "", fmt.Errorf("model call failed: %w", err)
		}
		promptTokens += resp.Usage.PromptTokens
		completionTokens += resp.Usage.CompletionTokens

		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("model returned no choices")
		}
		msg := resp.Choices[0].Message
		messages = append(messages, msg)

		if len(msg.ToolCalls) == 0 {
			reply = msg.Content
			answered = true
			break
		}

		for _, call := range msg.ToolCalls {
			next, res := r.applyToolCall(project, scope, call)
			project = next
			if res.Success && !r.isReadOnly(call.Function.Name) {
				mutated = true
			}

			payload, merr := json.Marshal(res)
			if merr != nil {
				payload = []byte(fmt.Sprintf(`{"success":false,"error":%q}`, merr.Error()))
			}
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    string(payload),
				ToolCallID: call.ID,
			})
		}
	}

	if !answered {
		// The model was still issuing tool calls when the round budget
		// ran out. Applied changes are kept; the user gets told instead
		// of being shown an empty reply.
		reply = fmt.Sprintf("Stopped after %d tool rounds without a final answer. "+
			"The changes applied so far were kept; send another prompt to continue.", r.maxToolRounds)
		r.logger.Warn("tool round budget exhausted",
			"project_id", projectID,
			"rounds", r.maxToolRounds,
		)
	}

	if mutated {
		if err := r.studio.Sessions().Save(ctx, project); err != nil {
			return "", fmt.Errorf("failed to persist turn: %w", err)
		}
	}

	r.history = append(r.history,
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: clean},
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: reply},
	)

	r.studio.Metrics().ObserveTurn(time.Since(start))
	r.studio.Metrics().ObserveUsage(r.model, promptTokens, completionTokens)
	if err := r.usage.Report(ctx, ports.UsageRecord{
		UserID:           userID,
		ModelID:          r.model,
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		Metadata:         map[string]string{"project_id": projectID},
	}); err != nil {
		r.logger.Warn("usage reporting failed", "err", err)
	}

	r.logger.Info("turn complete",
		"project_id", projectID,
		"mutated", mutated,
		"duration", time.Since(start),
	)
	return reply, nil
}

// applyToolCall decodes one model tool call and runs it against the
// in-memory document. Malformed arguments become a structured failure
// rather than an aborted turn.
func (r *Runner) applyToolCall(project *domain.Project, scope *ops.Scope, call openai.ToolCall) (*domain.Project, ops.Result) {
	name := call.Function.Name

	var args map[string]any
	if raw := call.Function.Arguments; raw != "" {
		if err := json.Unmarshal([]byte(raw), &args); err != nil {
			return project, ops.Failf("arguments for %s are not valid JSON: %v", name, err)
		}
	}

	next, res := r.studio.ApplyLocal(project, scope, name, args)
	r.logger.Debug("tool call",
		"tool", name,
		"success", res.Success,
	)
	return next, res
}

// turnMessages assembles the message window for one turn: system prompt,
// current document snapshot, prior conversation, new prompt.
func (r *Runner) turnMessages(project *domain.Project, prompt string) []openai.ChatCompletionMessage {
	snapshot, _ := json.Marshal(project)

	messages := make([]openai.ChatCompletionMessage, 0, len(r.history)+3)
	messages = append(messages,
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: "Current project document:\n" + string(snapshot),
		},
	)
	messages = append(messages, r.history...)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})
	return messages
}

// toolDefinitions declares the mutation catalog to the model.
func (r *Runner) toolDefinitions() []openai.Tool {
	catalog := r.studio.Tools()
	tools := make([]openai.Tool, 0, len(catalog))
	for _, t := range catalog {
		tools = append(tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}
	return tools
}

func (r *Runner) isReadOnly(name string) bool {
	t, ok := r.studio.Catalog().Lookup(name)
	return ok && t.ReadOnly
}
