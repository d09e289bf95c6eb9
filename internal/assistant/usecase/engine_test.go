package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"marketplace-assistant/internal/assistant"
	"marketplace-assistant/internal/assistant/classifier"
	"marketplace-assistant/internal/assistant/repository"
	"marketplace-assistant/internal/assistant/usecase"
	"marketplace-assistant/internal/model"
	"marketplace-assistant/internal/taxonomy"
)

func TestAsk(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Empty Utterance", func(t *testing.T) {
		d := newDeps(fixedClassifier(taxonomy.CategoryGeneralAdvice))
		uc := newUseCase(d)

		env := uc.Ask(ctx, sc, assistant.AskInput{Utterance: "   ", Profile: seekerProfile()})
		if env.Category != taxonomy.CategoryOutOfScope {
			t.Errorf("expected OUT_OF_SCOPE, got %q", env.Category)
		}
		if env.Text != usecase.MsgEmptyUtterance {
			t.Errorf("unexpected text: %q", env.Text)
		}
		if env.NeedsFollowUp {
			t.Errorf("empty utterance must not pause the dialogue")
		}
	})

	t.Run("Classifier Unavailable Yields Apology", func(t *testing.T) {
		d := newDeps(&mockClassifier{classifyFunc: func(string, model.UserProfile) (taxonomy.IntentCategory, error) {
			return taxonomy.CategoryOutOfScope, classifier.ErrCompletionUnavailable
		}})
		uc := newUseCase(d)

		env := uc.Ask(ctx, sc, assistant.AskInput{Utterance: "hello there", Profile: seekerProfile()})
		if env.Text != usecase.MsgCompletionFallback {
			t.Errorf("expected completion fallback, got %q", env.Text)
		}
		if env.NeedsFollowUp || env.Context != nil {
			t.Errorf("degraded answer must be terminal")
		}
	})

	t.Run("Out Of Scope Answer", func(t *testing.T) {
		d := newDeps(fixedClassifier(taxonomy.CategoryOutOfScope))
		uc := newUseCase(d)

		env := uc.Ask(ctx, sc, assistant.AskInput{Utterance: "write me a poem", Profile: seekerProfile()})
		if env.Category != taxonomy.CategoryOutOfScope || env.Text != usecase.MsgOutOfScope {
			t.Errorf("unexpected envelope: %+v", env)
		}
	})

	t.Run("General Advice Prose", func(t *testing.T) {
		d := newDeps(fixedClassifier(taxonomy.CategoryGeneralAdvice))
		d.llm.completeFunc = func(prompt string) (string, error) {
			if !strings.Contains(prompt, "keep my bathroom dry") {
				t.Errorf("utterance missing from prompt: %q", prompt)
			}
			return "  Wipe surfaces daily and keep the fan running.  ", nil
		}
		uc := newUseCase(d)

		env := uc.Ask(ctx, sc, assistant.AskInput{Utterance: "how can I keep my bathroom dry?", Profile: seekerProfile()})
		if env.Category != taxonomy.CategoryGeneralAdvice {
			t.Errorf("expected GENERAL_ADVICE, got %q", env.Category)
		}
		if env.Text != "Wipe surfaces daily and keep the fan running." {
			t.Errorf("expected trimmed prose, got %q", env.Text)
		}
	})

	t.Run("Prose Completion Failure Yields Apology", func(t *testing.T) {
		d := newDeps(fixedClassifier(taxonomy.CategoryHowTo))
		d.llm.completeFunc = func(string) (string, error) {
			return "", errors.New("timeout")
		}
		uc := newUseCase(d)

		env := uc.Ask(ctx, sc, assistant.AskInput{Utterance: "how do I paint a wall?", Profile: seekerProfile()})
		if env.Category != taxonomy.CategoryHowTo {
			t.Errorf("expected HOW_TO, got %q", env.Category)
		}
		if env.Text != usecase.MsgCompletionFallback {
			t.Errorf("expected fallback text, got %q", env.Text)
		}
	})
}

func TestAskPolicy(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Seeker Refused Jobs", func(t *testing.T) {
		d := newDeps(fixedClassifier(taxonomy.CategoryFindJobs))
		uc := newUseCase(d)

		env := uc.Ask(ctx, sc, assistant.AskInput{Utterance: "find me a job", Profile: seekerProfile()})
		if env.Text != usecase.MsgSeekerJobsRefusal {
			t.Errorf("expected seeker refusal, got %q", env.Text)
		}
		if env.Category != taxonomy.CategoryFindJobs {
			t.Errorf("refusal must keep the classified category, got %q", env.Category)
		}
		if len(d.jobs.queries) != 0 {
			t.Errorf("refused request must not query the job repository")
		}
	})

	t.Run("Provider Refused Directory", func(t *testing.T) {
		d := newDeps(fixedClassifier(taxonomy.CategoryFindProviders))
		uc := newUseCase(d)

		env := uc.Ask(ctx, sc, assistant.AskInput{Utterance: "find me a plumber", Profile: providerProfile()})
		if env.Text != usecase.MsgProviderDirectoryRefusal {
			t.Errorf("expected provider refusal, got %q", env.Text)
		}
		if len(d.providers.queries) != 0 {
			t.Errorf("refused request must not query the provider repository")
		}
	})

	t.Run("Allowed Pairs Pass Through", func(t *testing.T) {
		cases := []struct {
			category taxonomy.IntentCategory
			profile  model.UserProfile
		}{
			{taxonomy.CategoryFindProviders, seekerProfile()},
			{taxonomy.CategoryFindJobs, providerProfile()},
			{taxonomy.CategoryGeneralAdvice, seekerProfile()},
			{taxonomy.CategoryGeneralAdvice, providerProfile()},
		}
		for _, tc := range cases {
			d := newDeps(fixedClassifier(tc.category))
			d.llm.completeFunc = func(string) (string, error) { return "ok", nil }
			uc := newUseCase(d)

			env := uc.Ask(ctx, sc, assistant.AskInput{Utterance: "plumbing please", Profile: tc.profile})
			if env.Text == usecase.MsgSeekerJobsRefusal || env.Text == usecase.MsgProviderDirectoryRefusal {
				t.Errorf("category %s role %s: unexpected refusal", tc.category, tc.profile.Role)
			}
		}
	})
}

func TestAskFindProviders(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Top Five Listing", func(t *testing.T) {
		d := newDeps(fixedClassifier(taxonomy.CategoryFindProviders))
		d.providers.searchFunc = func(opt repository.SearchProvidersOptions) ([]model.Provider, error) {
			if opt.Category != taxonomy.ServicePlumbing {
				t.Errorf("expected plumbing query, got %q", opt.Category)
			}
			if opt.Location != "Mirpur" {
				t.Errorf("expected Mirpur filter, got %q", opt.Location)
			}
			if opt.Limit != usecase.TopResults {
				t.Errorf("expected limit %d, got %d", usecase.TopResults, opt.Limit)
			}
			return sampleProviders(3), nil
		}
		uc := newUseCase(d)

		env := uc.Ask(ctx, sc, assistant.AskInput{Utterance: "I need a plumber", Profile: seekerProfile()})
		if env.NeedsFollowUp {
			t.Fatalf("expected a terminal listing, got follow-up %q", env.FollowUpToken)
		}
		if !strings.Contains(env.Text, "1. Karim Plumbing") || !strings.Contains(env.Text, "3. Rahim Services") {
			t.Errorf("listing text malformed:\n%s", env.Text)
		}
		payload, ok := env.StructuredData.(assistant.ProviderListing)
		if !ok {
			t.Fatalf("expected ProviderListing payload, got %T", env.StructuredData)
		}
		if payload.LocationRelaxed {
			t.Errorf("location filter should not be relaxed")
		}
		if len(payload.Providers) != 3 {
			t.Errorf("expected 3 providers, got %d", len(payload.Providers))
		}
	})

	t.Run("Location Relaxation Is Stated", func(t *testing.T) {
		d := newDeps(fixedClassifier(taxonomy.CategoryFindProviders))
		d.providers.searchFunc = func(opt repository.SearchProvidersOptions) ([]model.Provider, error) {
			if opt.Location != "" {
				return nil, nil
			}
			return sampleProviders(2), nil
		}
		uc := newUseCase(d)

		env := uc.Ask(ctx, sc, assistant.AskInput{Utterance: "I need a plumber", Profile: seekerProfile()})
		if !strings.Contains(env.Text, "widened the search to all areas") {
			t.Errorf("relaxation not stated in text:\n%s", env.Text)
		}
		payload := env.StructuredData.(assistant.ProviderListing)
		if !payload.LocationRelaxed {
			t.Errorf("payload must flag the relaxed filter")
		}
		if len(d.providers.queries) != 2 {
			t.Errorf("expected filtered then relaxed query, got %d queries", len(d.providers.queries))
		}
	})

	t.Run("No Providers At All", func(t *testing.T) {
		d := newDeps(fixedClassifier(taxonomy.CategoryFindProviders))
		uc := newUseCase(d)

		env := uc.Ask(ctx, sc, assistant.AskInput{Utterance: "I need a plumber", Profile: seekerProfile()})
		if !strings.Contains(env.Text, "couldn't find any plumbing providers") {
			t.Errorf("unexpected zero-result text: %q", env.Text)
		}
		if env.NeedsFollowUp {
			t.Errorf("zero results must be terminal")
		}
	})

	t.Run("Repository Failure", func(t *testing.T) {
		d := newDeps(fixedClassifier(taxonomy.CategoryFindProviders))
		d.providers.searchFunc = func(repository.SearchProvidersOptions) ([]model.Provider, error) {
			return nil, errors.New("connection reset")
		}
		uc := newUseCase(d)

		env := uc.Ask(ctx, sc, assistant.AskInput{Utterance: "I need a plumber", Profile: seekerProfile()})
		if env.Text != usecase.MsgLookupFailed {
			t.Errorf("expected lookup failure text, got %q", env.Text)
		}
	})

	t.Run("Missing Service Pauses", func(t *testing.T) {
		d := newDeps(fixedClassifier(taxonomy.CategoryFindProviders))
		uc := newUseCase(d)

		env := uc.Ask(ctx, sc, assistant.AskInput{Utterance: "I need some help at home", Profile: seekerProfile()})
		if !env.NeedsFollowUp || env.FollowUpToken != assistant.TokenNeedServiceCategory {
			t.Fatalf("expected need-service-category pause, got %+v", env)
		}
		if env.Context == nil || env.Context.ExchangeID == "" {
			t.Errorf("paused envelope must carry a context with an exchange id")
		}
		if env.Context.Location != "Mirpur" {
			t.Errorf("profile location should be saved for the resume, got %q", env.Context.Location)
		}
	})

	t.Run("Missing Location Pauses", func(t *testing.T) {
		d := newDeps(fixedClassifier(taxonomy.CategoryFindProviders))
		uc := newUseCase(d)

		profile := seekerProfile()
		profile.Location = ""
		env := uc.Ask(ctx, sc, assistant.AskInput{Utterance: "I need a plumber", Profile: profile})
		if !env.NeedsFollowUp || env.FollowUpToken != assistant.TokenNeedLocation {
			t.Fatalf("expected need-location pause, got %+v", env)
		}
		if env.Context.ServiceCategory != taxonomy.ServicePlumbing {
			t.Errorf("matched service should be saved, got %q", env.Context.ServiceCategory)
		}
	})
}

func TestAskFindJobs(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Provider Category Default", func(t *testing.T) {
		d := newDeps(fixedClassifier(taxonomy.CategoryFindJobs))
		d.jobs.listFunc = func(opt repository.ListOpenJobsOptions) ([]model.JobPost, error) {
			if opt.Category != taxonomy.ServicePlumbing {
				t.Errorf("expected profile category default, got %q", opt.Category)
			}
			return sampleJobs(2), nil
		}
		uc := newUseCase(d)

		env := uc.Ask(ctx, sc, assistant.AskInput{Utterance: "any work for me?", Profile: providerProfile()})
		if env.NeedsFollowUp {
			t.Fatalf("expected a terminal listing, got follow-up")
		}
		if !strings.Contains(env.Text, "1. Fix kitchen sink") {
			t.Errorf("listing malformed:\n%s", env.Text)
		}
		payload, ok := env.StructuredData.(assistant.JobListing)
		if !ok {
			t.Fatalf("expected JobListing payload, got %T", env.StructuredData)
		}
		if len(payload.Jobs) != 2 {
			t.Errorf("expected 2 jobs, got %d", len(payload.Jobs))
		}
	})

	t.Run("No Category Anywhere Pauses", func(t *testing.T) {
		d := newDeps(fixedClassifier(taxonomy.CategoryFindJobs))
		uc := newUseCase(d)

		profile := providerProfile()
		profile.ServiceCategory = ""
		env := uc.Ask(ctx, sc, assistant.AskInput{Utterance: "any work for me?", Profile: profile})
		if !env.NeedsFollowUp || env.FollowUpToken != assistant.TokenNeedServiceCategory {
			t.Fatalf("expected need-service-category pause, got %+v", env)
		}
	})

	t.Run("Job Listing Relaxation", func(t *testing.T) {
		d := newDeps(fixedClassifier(taxonomy.CategoryFindJobs))
		d.jobs.listFunc = func(opt repository.ListOpenJobsOptions) ([]model.JobPost, error) {
			if opt.Location != "" {
				return nil, nil
			}
			return sampleJobs(1), nil
		}
		uc := newUseCase(d)

		env := uc.Ask(ctx, sc, assistant.AskInput{Utterance: "any plumbing work?", Profile: providerProfile()})
		if !strings.Contains(env.Text, "widened the search to all areas") {
			t.Errorf("relaxation not stated in text:\n%s", env.Text)
		}
	})
}

func TestAskPriceEstimate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Grounded On Job Budgets", func(t *testing.T) {
		d := newDeps(fixedClassifier(taxonomy.CategoryPriceEstimate))
		d.jobs.listFunc = func(opt repository.ListOpenJobsOptions) ([]model.JobPost, error) {
			return sampleJobs(3), nil
		}
		d.llm.completeFunc = func(prompt string) (string, error) {
			if !strings.Contains(prompt, "1500 BDT (Fix kitchen sink)") {
				t.Errorf("budget facts missing from prompt:\n%s", prompt)
			}
			return "Expect 800 to 3000 BDT depending on the job.", nil
		}
		uc := newUseCase(d)

		env := uc.Ask(ctx, sc, assistant.AskInput{Utterance: "how much does plumbing cost?", Profile: seekerProfile()})
		if env.Category != taxonomy.CategoryPriceEstimate {
			t.Errorf("expected PRICE_ESTIMATE, got %q", env.Category)
		}
		if !strings.Contains(env.Text, "800 to 3000 BDT") {
			t.Errorf("unexpected answer: %q", env.Text)
		}
	})

	t.Run("Grounding Failure Degrades", func(t *testing.T) {
		d := newDeps(fixedClassifier(taxonomy.CategoryPriceEstimate))
		d.jobs.listFunc = func(repository.ListOpenJobsOptions) ([]model.JobPost, error) {
			return nil, errors.New("db down")
		}
		d.llm.completeFunc = func(prompt string) (string, error) {
			if !strings.Contains(prompt, "no recent budget data") {
				t.Errorf("expected unanchored prompt, got:\n%s", prompt)
			}
			return "Roughly 1000 to 2000 BDT, indicative only.", nil
		}
		uc := newUseCase(d)

		env := uc.Ask(ctx, sc, assistant.AskInput{Utterance: "how much does plumbing cost?", Profile: seekerProfile()})
		if !strings.Contains(env.Text, "indicative") {
			t.Errorf("unexpected answer: %q", env.Text)
		}
	})

	t.Run("Unknown Service Pauses", func(t *testing.T) {
		d := newDeps(fixedClassifier(taxonomy.CategoryPriceEstimate))
		uc := newUseCase(d)

		env := uc.Ask(ctx, sc, assistant.AskInput{Utterance: "how much would it cost?", Profile: seekerProfile()})
		if !env.NeedsFollowUp || env.FollowUpToken != assistant.TokenNeedServiceCategory {
			t.Fatalf("expected need-service-category pause, got %+v", env)
		}
	})
}
