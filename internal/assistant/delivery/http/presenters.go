package http

import (
	"marketplace-assistant/internal/assistant"
)

// envelopeResp is the wire form of a ResponseEnvelope.
type envelopeResp struct {
	Text           string                         `json:"text"`
	Category       string                         `json:"category"`
	NeedsFollowUp  bool                           `json:"needs_follow_up"`
	FollowUpToken  string                         `json:"follow_up_token,omitempty"`
	Context        *assistant.ConversationContext `json:"context,omitempty"`
	StructuredData any                            `json:"structured_data,omitempty"`
}

func newEnvelopeResp(env assistant.ResponseEnvelope) envelopeResp {
	return envelopeResp{
		Text:           env.Text,
		Category:       string(env.Category),
		NeedsFollowUp:  env.NeedsFollowUp,
		FollowUpToken:  string(env.FollowUpToken),
		Context:        env.Context,
		StructuredData: env.StructuredData,
	}
}
