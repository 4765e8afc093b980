package ops

import "fmt"

// Result is the uniform outcome of every mutation operation.
// It is serialized as-is back to the model (interactive path) or to the
// remote caller (stateless path).
type Result struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Error   string         `json:"error,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// OK builds a successful result with a formatted message.
func OK(format string, args ...any) Result {
	return Result{Success: true, Message: fmt.Sprintf(format, args...)}
}

// Fail builds a failed result from an error.
func Fail(err error) Result {
	return Result{Success: false, Error: err.Error()}
}

// Failf builds a failed result with a formatted error string.
func Failf(format string, args ...any) Result {
	return Result{Success: false, Error: fmt.Sprintf(format, args...)}
}

// With attaches an operation-specific detail and returns the result.
func (r Result) With(key string, value any) Result {
	if r.Details == nil {
		r.Details = make(map[string]any)
	}
	r.Details[key] = value
	return r
}

// Detail reads an operation-specific detail, or nil.
func (r Result) Detail(key string) any {
	if r.Details == nil {
		return nil
	}
	return r.Details[key]
}
