package ports

import "context"

// AccessController gates mutations before any is attempted. When access
// is denied the whole session or call is rejected wholesale; no partial
// turns are applied. Implementations live outside the core (quota,
// billing state, ownership checks).
type AccessController interface {
	// Authorize returns nil when the user may mutate the project.
	Authorize(ctx context.Context, userID, projectID string) error
}

// UsageRecord is reported to the metering collaborator after a
// generation turn completes.
type UsageRecord struct {
	UserID           string            `json:"user_id"`
	ModelID          string            `json:"model_id"`
	PromptTokens     int               `json:"prompt_tokens"`
	CompletionTokens int               `json:"completion_tokens"`
	Metadata         map[string]string `json:"metadata,omitempty"`
}

// UsageReporter receives usage records. Reporting failures must not fail
// the turn; implementations log and move on.
type UsageReporter interface {
	Report(ctx context.Context, rec UsageRecord) error
}

// AllowAll is an AccessController that permits every mutation.
// The default for single-user and test setups.
type AllowAll struct{}

func (AllowAll) Authorize(ctx context.Context, userID, projectID string) error { return nil }

// NopUsageReporter discards usage records.
type NopUsageReporter struct{}

func (NopUsageReporter) Report(ctx context.Context, rec UsageRecord) error { return nil }
