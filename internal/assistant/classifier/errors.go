package classifier

import "errors"

// ErrCompletionUnavailable signals that the completion service could not
// be reached or produced an unusable reply. It is handled by the
// synthesizer layer with a fixed fallback answer, never surfaced to the
// transport layer.
var ErrCompletionUnavailable = errors.New("completion service unavailable")
