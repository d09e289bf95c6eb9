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

// synthProse handles the two pure-prose categories (GENERAL_ADVICE,
// HOW_TO): one completion call, fixed apology on failure, no retries.
func (uc *implUseCase) synthProse(ctx context.Context, category taxonomy.IntentCategory, promptTemplate, utterance string, profile model.UserProfile) assistant.ResponseEnvelope {
	prompt := fmt.Sprintf(promptTemplate, profile.Role, utterance)

	text, err := uc.llm.Complete(ctx, prompt)
	if err != nil {
		uc.l.Warnf(ctx, "%s: prose completion failed: %v", LogPrefixAsk, err)
		return answered(category, MsgCompletionFallback, nil)
	}

	return answered(category, strings.TrimSpace(text), nil)
}

// synthPriceEstimate grounds a price answer on recent open job budgets
// for the requested service, then asks the completion service for prose.
func (uc *implUseCase) synthPriceEstimate(ctx context.Context, utterance string, profile model.UserProfile) assistant.ResponseEnvelope {
	service, ok := taxonomy.MatchService(utterance)
	if !ok {
		return paused(MsgAskServiceCategory, assistant.ConversationContext{
			Token:     assistant.TokenNeedServiceCategory,
			Category:  taxonomy.CategoryPriceEstimate,
			Utterance: utterance,
			Location:  profile.Location,
		})
	}

	return uc.renderPriceEstimate(ctx, service, utterance)
}

func (uc *implUseCase) renderPriceEstimate(ctx context.Context, service, utterance string) assistant.ResponseEnvelope {
	jobs, err := uc.jobRepo.ListOpenJobs(ctx, repository.ListOpenJobsOptions{
		Category: service,
		Limit:    TopResults,
	})
	if err != nil {
		// Degrade to an unanchored estimate rather than failing the turn.
		uc.l.Warnf(ctx, "%s: price grounding query failed: %v", LogPrefixAsk, err)
		jobs = nil
	}

	text, err := uc.llm.Complete(ctx, fmt.Sprintf(PromptPriceEstimate, service, budgetFacts(jobs), utterance))
	if err != nil {
		uc.l.Warnf(ctx, "%s: price completion failed: %v", LogPrefixAsk, err)
		return answered(taxonomy.CategoryPriceEstimate, MsgCompletionFallback, nil)
	}

	return answered(taxonomy.CategoryPriceEstimate, strings.TrimSpace(text), nil)
}

func budgetFacts(jobs []model.JobPost) string {
	var budgets []string
	for _, j := range jobs {
		if j.Budget > 0 {
			budgets = append(budgets, fmt.Sprintf("%.0f BDT (%s)", j.Budget, j.Title))
		}
	}
	if len(budgets) == 0 {
		return "no recent budget data"
	}
	return strings.Join(budgets, ", ")
}
