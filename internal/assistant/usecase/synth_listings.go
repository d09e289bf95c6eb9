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

// synthFindProviders answers a seeker looking for providers. It pauses
// for a service category or a location when either is missing.
func (uc *implUseCase) synthFindProviders(ctx context.Context, utterance string, profile model.UserProfile) assistant.ResponseEnvelope {
	service, ok := taxonomy.MatchService(utterance)
	if !ok {
		return paused(MsgAskServiceCategory, assistant.ConversationContext{
			Token:     assistant.TokenNeedServiceCategory,
			Category:  taxonomy.CategoryFindProviders,
			Utterance: utterance,
			Location:  profile.Location,
		})
	}

	if profile.Location == "" {
		return paused(MsgAskLocation, assistant.ConversationContext{
			Token:           assistant.TokenNeedLocation,
			Category:        taxonomy.CategoryFindProviders,
			Utterance:       utterance,
			ServiceCategory: service,
		})
	}

	return uc.renderProviderListing(ctx, service, profile.Location)
}

// renderProviderListing runs the directory query with the area filter
// and relaxes it when the area has no matches. The relaxation is always
// stated explicitly in the rendered text.
func (uc *implUseCase) renderProviderListing(ctx context.Context, service, location string) assistant.ResponseEnvelope {
	providers, err := uc.providerRepo.SearchProviders(ctx, repository.SearchProvidersOptions{
		Category: service,
		Location: location,
		Limit:    TopResults,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: provider search: %v", LogPrefixAsk, err)
		return answered(taxonomy.CategoryFindProviders, MsgLookupFailed, nil)
	}

	relaxed := false
	if len(providers) == 0 && location != "" {
		providers, err = uc.providerRepo.SearchProviders(ctx, repository.SearchProvidersOptions{
			Category: service,
			Limit:    TopResults,
		})
		if err != nil {
			uc.l.Errorf(ctx, "%s: relaxed provider search: %v", LogPrefixAsk, err)
			return answered(taxonomy.CategoryFindProviders, MsgLookupFailed, nil)
		}
		relaxed = true
	}

	if len(providers) == 0 {
		text := fmt.Sprintf("I couldn't find any %s providers right now. Please check back later or try a different service.", service)
		return answered(taxonomy.CategoryFindProviders, text, nil)
	}

	var b strings.Builder
	if relaxed {
		fmt.Fprintf(&b, "No %s providers found in %s, so I widened the search to all areas.\n\n", service, location)
		fmt.Fprintf(&b, "Top %s providers:\n", service)
	} else {
		fmt.Fprintf(&b, "Top %s providers in %s:\n", service, location)
	}
	for i, p := range providers {
		fmt.Fprintf(&b, "%d. %s — %s", i+1, p.Name, p.Location)
		if p.Rating > 0 {
			fmt.Fprintf(&b, ", rated %.1f (%d reviews)", p.Rating, p.RatingCount)
		}
		if p.HourlyRate > 0 {
			fmt.Fprintf(&b, ", ~%.0f BDT/hr", p.HourlyRate)
		}
		b.WriteString("\n")
	}

	return answered(taxonomy.CategoryFindProviders, b.String(), assistant.ProviderListing{
		Providers:       providers,
		ServiceCategory: service,
		Location:        location,
		LocationRelaxed: relaxed,
	})
}

// synthFindJobs answers a provider looking for work. The service
// category defaults to the provider's own registered category.
func (uc *implUseCase) synthFindJobs(ctx context.Context, utterance string, profile model.UserProfile) assistant.ResponseEnvelope {
	service, ok := taxonomy.MatchService(utterance)
	if !ok {
		service = profile.ServiceCategory
	}
	if service == "" {
		return paused(MsgAskServiceCategory, assistant.ConversationContext{
			Token:     assistant.TokenNeedServiceCategory,
			Category:  taxonomy.CategoryFindJobs,
			Utterance: utterance,
			Location:  profile.Location,
		})
	}

	if profile.Location == "" {
		return paused(MsgAskLocation, assistant.ConversationContext{
			Token:           assistant.TokenNeedLocation,
			Category:        taxonomy.CategoryFindJobs,
			Utterance:       utterance,
			ServiceCategory: service,
		})
	}

	return uc.renderJobListing(ctx, service, profile.Location)
}

// renderJobListing mirrors renderProviderListing for open job postings,
// newest first.
func (uc *implUseCase) renderJobListing(ctx context.Context, service, location string) assistant.ResponseEnvelope {
	jobs, err := uc.jobRepo.ListOpenJobs(ctx, repository.ListOpenJobsOptions{
		Category: service,
		Location: location,
		Limit:    TopResults,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: job listing: %v", LogPrefixAsk, err)
		return answered(taxonomy.CategoryFindJobs, MsgLookupFailed, nil)
	}

	relaxed := false
	if len(jobs) == 0 && location != "" {
		jobs, err = uc.jobRepo.ListOpenJobs(ctx, repository.ListOpenJobsOptions{
			Category: service,
			Limit:    TopResults,
		})
		if err != nil {
			uc.l.Errorf(ctx, "%s: relaxed job listing: %v", LogPrefixAsk, err)
			return answered(taxonomy.CategoryFindJobs, MsgLookupFailed, nil)
		}
		relaxed = true
	}

	if len(jobs) == 0 {
		text := fmt.Sprintf("There are no open %s jobs at the moment. Please check back later.", service)
		return answered(taxonomy.CategoryFindJobs, text, nil)
	}

	var b strings.Builder
	if relaxed {
		fmt.Fprintf(&b, "No open %s jobs in %s, so I widened the search to all areas.\n\n", service, location)
		fmt.Fprintf(&b, "Latest %s jobs:\n", service)
	} else {
		fmt.Fprintf(&b, "Latest %s jobs in %s:\n", service, location)
	}
	for i, j := range jobs {
		fmt.Fprintf(&b, "%d. %s — %s, posted %s", i+1, j.Title, j.Location, j.PostedAt.Format("02 Jan"))
		if j.Budget > 0 {
			fmt.Fprintf(&b, ", budget %.0f BDT", j.Budget)
		}
		b.WriteString("\n")
	}

	return answered(taxonomy.CategoryFindJobs, b.String(), assistant.JobListing{
		Jobs:            jobs,
		ServiceCategory: service,
		Location:        location,
		LocationRelaxed: relaxed,
	})
}
