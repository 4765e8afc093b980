/*
Package runner implements the interactive authoring loop between a chat
model and the easel document core.

It owns the turn lifecycle: the user's prompt is sent to the model
together with the mutation catalog declared as callable tools, tool
calls are applied one by one against an in-memory copy of the project,
and the document is persisted once when the turn completes. Positional
layer aliases (layer_1, layer_2, ...) are valid within a single turn
and reset on the next prompt.

# Usage

	client := openai.NewClient(apiKey)
	r := runner.NewRunner(studio, client,
		runner.WithModel(openai.GPT4o),
		runner.WithRenderer(tui.RenderMarkdown),
	)

	if err := r.Run(ctx, projectID, userID); err != nil {
		log.Fatal(err)
	}
*/
package runner
