package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyUtterance   = errors.New("utterance is empty")
	ErrUnknownToken     = errors.New("unknown follow-up token")
	ErrMalformedContext = errors.New("conversation context is missing or malformed")
)
