package assistant

import (
	"marketplace-assistant/internal/model"
	"marketplace-assistant/internal/taxonomy"
)

// FollowUpToken names the piece of information a paused dialogue is
// waiting for. At most one token is active per response.
type FollowUpToken string

const (
	TokenNeedProviderName    FollowUpToken = "need-provider-name"
	TokenNeedServiceCategory FollowUpToken = "need-service-category"
	TokenNeedLocation        FollowUpToken = "need-location"
	TokenChooseCandidate     FollowUpToken = "choose-candidate"
)

// Valid reports whether the token is one the engine knows how to resume.
func (t FollowUpToken) Valid() bool {
	switch t {
	case TokenNeedProviderName, TokenNeedServiceCategory, TokenNeedLocation, TokenChooseCandidate:
		return true
	}
	return false
}

// Candidate carries the denormalized fields of one disambiguation option.
// Live domain entities are never stored in a conversation context; only
// what the resume step needs to render and re-resolve the choice.
type Candidate struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	ServiceCategory string  `json:"service_category"`
	Location        string  `json:"location"`
	Rating          float64 `json:"rating"`
}

// ConversationContext is the state bag handed to the client when a
// dialogue pauses, and returned verbatim to resume it. Its lifetime is
// exactly one pending follow-up; it is never persisted server-side.
// Fields are tagged per token so resume dispatch stays exhaustively
// checkable instead of digging through an untyped map.
type ConversationContext struct {
	ExchangeID      string                  `json:"exchange_id"`
	Token           FollowUpToken           `json:"token"`
	Category        taxonomy.IntentCategory `json:"category"`
	Utterance       string                  `json:"utterance"`
	ServiceCategory string                  `json:"service_category,omitempty"`
	Location        string                  `json:"location,omitempty"`
	ProviderName    string                  `json:"provider_name,omitempty"`
	Candidates      []Candidate             `json:"candidates,omitempty"`
	Attempts        int                     `json:"attempts,omitempty"`
}

// Validate checks the shape of a client-supplied context before the
// engine dispatches on it. The bag is untrusted input.
func (c *ConversationContext) Validate() error {
	if c == nil {
		return ErrMalformedContext
	}
	if !c.Token.Valid() {
		return ErrUnknownToken
	}
	if _, ok := taxonomy.ParseCategory(string(c.Category)); !ok {
		return ErrMalformedContext
	}
	if c.Token == TokenChooseCandidate && len(c.Candidates) == 0 {
		return ErrMalformedContext
	}
	return nil
}

// AskInput is the initial turn of an exchange.
type AskInput struct {
	Utterance string
	Profile   model.UserProfile
}

// ResumeInput is a follow-up turn carrying back the context bag from a
// previously paused response plus the user's reply.
type ResumeInput struct {
	OriginalUtterance string
	ReplyText         string
	Context           *ConversationContext
	Profile           model.UserProfile
}

// ResponseEnvelope is the engine's only output shape. Every entry point
// produces a well-formed envelope in all cases, including internal
// failures.
type ResponseEnvelope struct {
	Text           string
	Category       taxonomy.IntentCategory
	NeedsFollowUp  bool
	FollowUpToken  FollowUpToken
	Context        *ConversationContext
	StructuredData any
}

// ProviderListing is the structured payload attached to FIND_PROVIDERS
// answers.
type ProviderListing struct {
	Providers       []model.Provider `json:"providers"`
	ServiceCategory string           `json:"service_category"`
	Location        string           `json:"location,omitempty"`
	LocationRelaxed bool             `json:"location_relaxed"`
}

// JobListing is the structured payload attached to FIND_JOBS answers.
type JobListing struct {
	Jobs            []model.JobPost `json:"jobs"`
	ServiceCategory string          `json:"service_category"`
	Location        string          `json:"location,omitempty"`
	LocationRelaxed bool            `json:"location_relaxed"`
}

// ProviderSummary is the structured payload attached to PROVIDER_SUMMARY
// answers.
type ProviderSummary struct {
	Provider model.Provider        `json:"provider"`
	Reviews  model.ReviewAggregate `json:"reviews"`
}
