package assistant

import (
	"context"

	"marketplace-assistant/internal/model"
)

// UseCase is the conversational engine for the marketplace assistant.
//
// Both methods always return a well-formed ResponseEnvelope: classifier
// inconclusiveness, completion-service failures, malformed resume
// contexts, zero-result queries and ambiguous entities are all rendered
// as answers (or follow-up requests), never surfaced as errors.
type UseCase interface {
	// Ask handles the initial turn of an exchange.
	Ask(ctx context.Context, sc model.Scope, input AskInput) ResponseEnvelope

	// Resume continues a paused exchange. Dispatch is driven purely by
	// the follow-up token inside the returned context; the reply text is
	// never re-classified as a fresh question.
	Resume(ctx context.Context, sc model.Scope, input ResumeInput) ResponseEnvelope
}
