package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"marketplace-assistant/internal/assistant"
	"marketplace-assistant/internal/model"
	"marketplace-assistant/internal/taxonomy"
)

// Resume continues a paused exchange. The central invariant: dispatch is
// driven purely by the follow-up token inside the returned context bag —
// the reply text is never re-classified as a fresh question. A context
// that fails validation ends the exchange with the restart answer; no
// error ever propagates past this method.
func (uc *implUseCase) Resume(ctx context.Context, sc model.Scope, input assistant.ResumeInput) assistant.ResponseEnvelope {
	cctx := input.Context
	if err := cctx.Validate(); err != nil {
		uc.l.Warnf(ctx, "%s: invalid context from user=%s: %v", LogPrefixResume, sc.UserID, err)
		return answered(taxonomy.CategoryOutOfScope, MsgRestart, nil)
	}

	uc.l.Infof(ctx, "%s: user=%s token=%s category=%s", LogPrefixResume, sc.UserID, cctx.Token, cctx.Category)

	reply := strings.TrimSpace(input.ReplyText)

	switch cctx.Token {
	case assistant.TokenNeedLocation:
		return uc.resumeWithLocation(ctx, cctx, reply)
	case assistant.TokenNeedServiceCategory:
		return uc.resumeWithService(ctx, cctx, reply, input.Profile)
	case assistant.TokenNeedProviderName:
		return uc.resumeWithName(ctx, cctx, reply)
	case assistant.TokenChooseCandidate:
		return uc.resumeWithChoice(ctx, cctx, reply)
	}

	// Unreachable: Validate rejects unknown tokens.
	return answered(taxonomy.CategoryOutOfScope, MsgRestart, nil)
}

// retryOrRestart re-emits the same AWAITING state with a clarifying
// prompt, up to MaxFollowUpAttempts invalid replies, then terminates the
// exchange with the restart answer.
func (uc *implUseCase) retryOrRestart(ctx context.Context, cctx *assistant.ConversationContext, prompt string) assistant.ResponseEnvelope {
	next := *cctx
	next.Attempts++
	if next.Attempts >= MaxFollowUpAttempts {
		uc.l.Infof(ctx, "%s: follow-up attempts exhausted for token=%s", LogPrefixResume, cctx.Token)
		return answered(cctx.Category, MsgRestart, nil)
	}
	return paused(prompt, next)
}

func (uc *implUseCase) resumeWithLocation(ctx context.Context, cctx *assistant.ConversationContext, reply string) assistant.ResponseEnvelope {
	if reply == "" {
		return uc.retryOrRestart(ctx, cctx, MsgAskLocation)
	}

	switch cctx.Category {
	case taxonomy.CategoryFindProviders:
		if cctx.ServiceCategory == "" {
			return answered(cctx.Category, MsgRestart, nil)
		}
		return uc.renderProviderListing(ctx, cctx.ServiceCategory, reply)
	case taxonomy.CategoryFindJobs:
		if cctx.ServiceCategory == "" {
			return answered(cctx.Category, MsgRestart, nil)
		}
		return uc.renderJobListing(ctx, cctx.ServiceCategory, reply)
	}

	// A location pause only makes sense for the listing categories.
	return answered(cctx.Category, MsgRestart, nil)
}

func (uc *implUseCase) resumeWithService(ctx context.Context, cctx *assistant.ConversationContext, reply string, profile model.UserProfile) assistant.ResponseEnvelope {
	service, ok := taxonomy.MatchService(reply)
	if !ok {
		return uc.retryOrRestart(ctx, cctx, unknownServicePrompt(reply))
	}

	location := cctx.Location
	if location == "" {
		location = profile.Location
	}

	switch cctx.Category {
	case taxonomy.CategoryFindProviders:
		if location == "" {
			return paused(MsgAskLocation, assistant.ConversationContext{
				ExchangeID:      cctx.ExchangeID,
				Token:           assistant.TokenNeedLocation,
				Category:        taxonomy.CategoryFindProviders,
				Utterance:       cctx.Utterance,
				ServiceCategory: service,
			})
		}
		return uc.renderProviderListing(ctx, service, location)
	case taxonomy.CategoryFindJobs:
		if location == "" {
			return paused(MsgAskLocation, assistant.ConversationContext{
				ExchangeID:      cctx.ExchangeID,
				Token:           assistant.TokenNeedLocation,
				Category:        taxonomy.CategoryFindJobs,
				Utterance:       cctx.Utterance,
				ServiceCategory: service,
			})
		}
		return uc.renderJobListing(ctx, service, location)
	case taxonomy.CategoryPriceEstimate:
		return uc.renderPriceEstimate(ctx, service, cctx.Utterance)
	}

	return answered(cctx.Category, MsgRestart, nil)
}

// unknownServicePrompt enumerates the valid closed category set so the
// user can pick one the marketplace actually offers.
func unknownServicePrompt(reply string) string {
	return fmt.Sprintf(
		"I don't recognize %q as a service we offer. I can help with: %s. Which one do you need?",
		reply, strings.Join(taxonomy.ServiceCategories(), ", "),
	)
}

func (uc *implUseCase) resumeWithName(ctx context.Context, cctx *assistant.ConversationContext, reply string) assistant.ResponseEnvelope {
	if reply == "" {
		return uc.retryOrRestart(ctx, cctx, MsgAskProviderName)
	}
	return uc.resolveProviderByName(ctx, cctx.Utterance, reply)
}

func (uc *implUseCase) resumeWithChoice(ctx context.Context, cctx *assistant.ConversationContext, reply string) assistant.ResponseEnvelope {
	candidate, ok := resolveCandidate(cctx.Candidates, reply)
	if !ok {
		retry := MsgChooseCandidateRetry + "\n\n" + renderCandidatePrompt(cctx.ProviderName, cctx.Candidates)
		return uc.retryOrRestart(ctx, cctx, retry)
	}

	return uc.summarizeProvider(ctx, model.Provider{
		ID:              candidate.ID,
		Name:            candidate.Name,
		ServiceCategory: candidate.ServiceCategory,
		Location:        candidate.Location,
		Rating:          candidate.Rating,
	})
}

// resolveCandidate accepts a 1-based numeric selection, then substring
// matches against candidate name, category and location, tried in that
// order, all case-insensitive. Out-of-range numbers do not fall through
// to text matching.
func resolveCandidate(candidates []assistant.Candidate, reply string) (assistant.Candidate, bool) {
	if reply == "" {
		return assistant.Candidate{}, false
	}

	if n, err := strconv.Atoi(reply); err == nil {
		if n >= 1 && n <= len(candidates) {
			return candidates[n-1], true
		}
		return assistant.Candidate{}, false
	}

	lower := strings.ToLower(reply)
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.Name), lower) {
			return c, true
		}
	}
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.ServiceCategory), lower) {
			return c, true
		}
	}
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.Location), lower) {
			return c, true
		}
	}

	return assistant.Candidate{}, false
}
