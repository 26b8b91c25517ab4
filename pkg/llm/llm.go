package llm

import "context"

// Assistant answers store questions for one session. Concrete providers stay
// behind this interface so handlers and use cases never import an SDK.
type Assistant interface {
	Ask(ctx context.Context, question string) (string, error)
	// Reset drops any conversational state and rebuilds the model handle
	// from the credential the assistant was created with.
	Reset(ctx context.Context) error
}

// Factory builds an Assistant bound to one API credential.
type Factory func(apiKey string) (Assistant, error)

// KeyValidator checks a credential with a cheap round-trip to the provider.
type KeyValidator interface {
	Validate(ctx context.Context, apiKey string) error
}
