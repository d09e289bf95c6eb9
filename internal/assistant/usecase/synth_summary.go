package usecase

import (
	"context"
	"fmt"
	"strings"

	"marketplace-assistant/internal/assistant"
	"marketplace-assistant/internal/assistant/repository"
	"marketplace-assistant/internal/model"
	"marketplace-assistant/internal/taxonomy"
)

// synthProviderSummary answers "tell me about <name>" questions. It
// pauses for a name when the extractor finds none, and opens a
// disambiguation turn when several providers match.
func (uc *implUseCase) synthProviderSummary(ctx context.Context, utterance string, profile model.UserProfile) assistant.ResponseEnvelope {
	name, ok := taxonomy.ExtractName(utterance)
	if !ok {
		return paused(MsgAskProviderName, assistant.ConversationContext{
			Token:     assistant.TokenNeedProviderName,
			Category:  taxonomy.CategoryProviderSummary,
			Utterance: utterance,
		})
	}

	return uc.resolveProviderByName(ctx, utterance, name)
}

// resolveProviderByName looks up a provider by name and either answers,
// reports none found or starts disambiguation.
func (uc *implUseCase) resolveProviderByName(ctx context.Context, utterance, name string) assistant.ResponseEnvelope {
	providers, err := uc.providerRepo.SearchProviders(ctx, repository.SearchProvidersOptions{
		NameQuery: name,
		Limit:     MaxCandidates,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: provider lookup: %v", LogPrefixAsk, err)
		return answered(taxonomy.CategoryProviderSummary, MsgLookupFailed, nil)
	}

	switch len(providers) {
	case 0:
		text := fmt.Sprintf("I couldn't find any provider named %q. Please check the spelling or try another name.", name)
		return answered(taxonomy.CategoryProviderSummary, text, nil)
	case 1:
		return uc.summarizeProvider(ctx, providers[0])
	}

	candidates := make([]assistant.Candidate, 0, len(providers))
	for _, p := range providers {
		candidates = append(candidates, assistant.Candidate{
			ID:              p.ID,
			Name:            p.Name,
			ServiceCategory: p.ServiceCategory,
			Location:        p.Location,
			Rating:          p.Rating,
		})
	}

	return paused(renderCandidatePrompt(name, candidates), assistant.ConversationContext{
		Token:        assistant.TokenChooseCandidate,
		Category:     taxonomy.CategoryProviderSummary,
		Utterance:    utterance,
		ProviderName: name,
		Candidates:   candidates,
	})
}

// renderCandidatePrompt enumerates the candidates in stable order.
func renderCandidatePrompt(name string, candidates []assistant.Candidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I found %d providers matching %q:\n", len(candidates), name)
	for i, c := range candidates {
		fmt.Fprintf(&b, "%d. %s — %s, %s", i+1, c.Name, c.ServiceCategory, c.Location)
		if c.Rating > 0 {
			fmt.Fprintf(&b, " (%.1f)", c.Rating)
		}
		b.WriteString("\n")
	}
	b.WriteString("Which one do you mean? Reply with a number or a detail from the list.")
	return b.String()
}

// summarizeProvider renders the final summary for one resolved provider:
// review aggregate plus completion-service prose, with a templated
// fallback when the completion call fails.
func (uc *implUseCase) summarizeProvider(ctx context.Context, p model.Provider) assistant.ResponseEnvelope {
	agg, err := uc.reviewRepo.GetAggregate(ctx, p.ID)
	if err != nil {
		// Reviews are an enrichment; the summary still renders without them.
		uc.l.Warnf(ctx, "%s: review aggregate: %v", LogPrefixAsk, err)
		agg = model.ReviewAggregate{}
	}

	facts := providerFacts(p, agg)

	text, err := uc.llm.Complete(ctx, fmt.Sprintf(PromptProviderSummary, facts))
	if err != nil {
		uc.l.Warnf(ctx, "%s: summary completion failed, using template: %v", LogPrefixAsk, err)
		text = templatedSummary(p, agg)
	}

	return answered(taxonomy.CategoryProviderSummary, text, assistant.ProviderSummary{
		Provider: p,
		Reviews:  agg,
	})
}

func providerFacts(p model.Provider, agg model.ReviewAggregate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- Name: %s\n- Service: %s\n- Area: %s\n", p.Name, p.ServiceCategory, p.Location)
	if p.Rating > 0 && p.RatingCount > 0 {
		fmt.Fprintf(&b, "- Rating: %.1f from %d ratings\n", p.Rating, p.RatingCount)
	} else if p.Rating > 0 {
		fmt.Fprintf(&b, "- Rating: %.1f\n", p.Rating)
	}
	if p.HourlyRate > 0 {
		fmt.Fprintf(&b, "- Rate: about %.0f BDT per hour\n", p.HourlyRate)
	}
	if agg.ReviewCount > 0 {
		fmt.Fprintf(&b, "- Reviews: %d, averaging %.1f\n", agg.ReviewCount, agg.AverageRating)
		if agg.LatestComment != "" {
			fmt.Fprintf(&b, "- Latest review: %q\n", agg.LatestComment)
		}
	}
	return b.String()
}

func templatedSummary(p model.Provider, agg model.ReviewAggregate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is a %s provider based in %s.", p.Name, p.ServiceCategory, p.Location)
	if p.Rating > 0 && p.RatingCount > 0 {
		fmt.Fprintf(&b, " They are rated %.1f across %d ratings.", p.Rating, p.RatingCount)
	} else if p.Rating > 0 {
		fmt.Fprintf(&b, " They are rated %.1f.", p.Rating)
	}
	if agg.ReviewCount > 0 && agg.LatestComment != "" {
		fmt.Fprintf(&b, " A recent customer said: %q.", agg.LatestComment)
	}
	return b.String()
}
