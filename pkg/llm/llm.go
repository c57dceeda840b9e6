package llm

import "context"

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	// Complete sends a single user prompt and returns the trimmed reply.
	// Failures are reported as *ConfigurationError, *UpstreamError or
	// *ResponseShapeError; anything else is an internal fault.
	Complete(ctx context.Context, prompt string) (string, error)
}
