package llm

import "context"

type contextKey struct{}

// Purposes recorded on LLM events.
const (
	PurposeCoachNote = "coach-note"
	PurposeUnknown   = "unknown"
)

// WithPurpose labels requests made with ctx for the event log.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, contextKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(contextKey{}).(string); ok && v != "" {
		return v
	}
	return PurposeUnknown
}
