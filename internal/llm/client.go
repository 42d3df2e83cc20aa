package llm

import "context"

// CompletionClient is a single request/response call to an external
// generative text service: one prompt in, one completion out.
//
// Implementations do not retry; callers own retry policy. Any
// service-level failure (network, auth, empty completion) surfaces as an
// error and is translated to a domain generation error by the callers in
// this package.
type CompletionClient interface {
	// Complete sends one prompt and returns the completion text.
	Complete(ctx context.Context, prompt string) (string, error)

	// Name returns the provider name (e.g. "anthropic", "lorem")
	Name() string
}
