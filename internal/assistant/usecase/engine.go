package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"marketplace-assistant/internal/assistant"
	"marketplace-assistant/internal/assistant/classifier"
	"marketplace-assistant/internal/model"
	"marketplace-assistant/internal/taxonomy"
)

// Ask handles the initial turn: classify, gate by role policy, then
// synthesize. Every path returns a well-formed envelope.
func (uc *implUseCase) Ask(ctx context.Context, sc model.Scope, input assistant.AskInput) assistant.ResponseEnvelope {
	utterance := strings.TrimSpace(input.Utterance)
	if utterance == "" {
		return answered(taxonomy.CategoryOutOfScope, MsgEmptyUtterance, nil)
	}

	category, err := uc.classifier.Classify(ctx, utterance, input.Profile)
	if err != nil {
		if !errors.Is(err, classifier.ErrCompletionUnavailable) {
			uc.l.Errorf(ctx, "%s: unexpected classifier error: %v", LogPrefixAsk, err)
		}
		return answered(taxonomy.CategoryOutOfScope, MsgCompletionFallback, nil)
	}

	uc.l.Infof(ctx, "%s: user=%s role=%s category=%s", LogPrefixAsk, sc.UserID, input.Profile.Role, category)

	if refusal, refused := applyPolicy(category, input.Profile.Role); refused {
		return answered(category, refusal, nil)
	}

	return uc.dispatch(ctx, category, utterance, input.Profile)
}

// dispatch routes a classified utterance to its synthesizer. The switch
// is exhaustive over the closed category set.
func (uc *implUseCase) dispatch(ctx context.Context, category taxonomy.IntentCategory, utterance string, profile model.UserProfile) assistant.ResponseEnvelope {
	switch category {
	case taxonomy.CategoryProviderSummary:
		return uc.synthProviderSummary(ctx, utterance, profile)
	case taxonomy.CategoryFindProviders:
		return uc.synthFindProviders(ctx, utterance, profile)
	case taxonomy.CategoryFindJobs:
		return uc.synthFindJobs(ctx, utterance, profile)
	case taxonomy.CategoryPriceEstimate:
		return uc.synthPriceEstimate(ctx, utterance, profile)
	case taxonomy.CategoryGeneralAdvice:
		return uc.synthProse(ctx, taxonomy.CategoryGeneralAdvice, PromptAdvice, utterance, profile)
	case taxonomy.CategoryHowTo:
		return uc.synthProse(ctx, taxonomy.CategoryHowTo, PromptHowTo, utterance, profile)
	case taxonomy.CategoryOutOfScope:
		return answered(taxonomy.CategoryOutOfScope, MsgOutOfScope, nil)
	}

	// Unreachable while the category set is closed.
	uc.l.Errorf(ctx, "%s: unhandled category %q", LogPrefixAsk, category)
	return answered(taxonomy.CategoryOutOfScope, MsgOutOfScope, nil)
}

// answered builds a terminal envelope.
func answered(category taxonomy.IntentCategory, text string, payload any) assistant.ResponseEnvelope {
	return assistant.ResponseEnvelope{
		Text:           text,
		Category:       category,
		StructuredData: payload,
	}
}

// paused builds an AWAITING envelope carrying the context bag the client
// must round-trip to resume.
func paused(text string, cctx assistant.ConversationContext) assistant.ResponseEnvelope {
	if cctx.ExchangeID == "" {
		cctx.ExchangeID = uuid.NewString()
	}
	return assistant.ResponseEnvelope{
		Text:          text,
		Category:      cctx.Category,
		NeedsFollowUp: true,
		FollowUpToken: cctx.Token,
		Context:       &cctx,
	}
}
