package gemini

import "context"

// IGemini defines the interface for the Gemini completion client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent sends a generation request to the Gemini API.
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Complete sends a single-turn prompt and returns the first candidate's text.
	Complete(ctx context.Context, prompt string) (string, error)

	// Model returns the model being used.
	Model() string
}

// New creates a new Gemini client with the given configuration.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
