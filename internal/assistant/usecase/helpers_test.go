package usecase_test

import (
	"context"
	"errors"
	"time"

	"marketplace-assistant/internal/assistant"
	"marketplace-assistant/internal/assistant/classifier"
	"marketplace-assistant/internal/assistant/repository"
	"marketplace-assistant/internal/assistant/usecase"
	"marketplace-assistant/internal/model"
	"marketplace-assistant/internal/taxonomy"
	"marketplace-assistant/pkg/gemini"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockClassifier struct {
	classifyFunc func(utterance string, profile model.UserProfile) (taxonomy.IntentCategory, error)
	calls        int
}

func (m *mockClassifier) Classify(ctx context.Context, utterance string, profile model.UserProfile) (taxonomy.IntentCategory, error) {
	m.calls++
	if m.classifyFunc == nil {
		return taxonomy.CategoryOutOfScope, nil
	}
	return m.classifyFunc(utterance, profile)
}

// fixedClassifier always resolves to one category.
func fixedClassifier(c taxonomy.IntentCategory) *mockClassifier {
	return &mockClassifier{classifyFunc: func(string, model.UserProfile) (taxonomy.IntentCategory, error) {
		return c, nil
	}}
}

// forbiddenClassifier fails the test run if Resume ever re-classifies.
type forbiddenClassifier struct{}

func (f *forbiddenClassifier) Classify(ctx context.Context, utterance string, profile model.UserProfile) (taxonomy.IntentCategory, error) {
	panic("classifier must not be invoked on resume")
}

type mockGemini struct {
	completeFunc func(prompt string) (string, error)
}

func (m *mockGemini) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	return nil, errors.New("not used in usecase tests")
}

func (m *mockGemini) Complete(ctx context.Context, prompt string) (string, error) {
	if m.completeFunc == nil {
		return "", errors.New("completeFunc not set")
	}
	return m.completeFunc(prompt)
}

func (m *mockGemini) Model() string { return "mock-model" }

type mockProviderRepo struct {
	searchFunc func(opt repository.SearchProvidersOptions) ([]model.Provider, error)
	queries    []repository.SearchProvidersOptions
}

func (m *mockProviderRepo) SearchProviders(ctx context.Context, opt repository.SearchProvidersOptions) ([]model.Provider, error) {
	m.queries = append(m.queries, opt)
	if m.searchFunc == nil {
		return nil, nil
	}
	return m.searchFunc(opt)
}

type mockJobRepo struct {
	listFunc func(opt repository.ListOpenJobsOptions) ([]model.JobPost, error)
	queries  []repository.ListOpenJobsOptions
}

func (m *mockJobRepo) ListOpenJobs(ctx context.Context, opt repository.ListOpenJobsOptions) ([]model.JobPost, error) {
	m.queries = append(m.queries, opt)
	if m.listFunc == nil {
		return nil, nil
	}
	return m.listFunc(opt)
}

type mockReviewRepo struct {
	aggregateFunc func(providerID string) (model.ReviewAggregate, error)
}

func (m *mockReviewRepo) GetAggregate(ctx context.Context, providerID string) (model.ReviewAggregate, error) {
	if m.aggregateFunc == nil {
		return model.ReviewAggregate{}, nil
	}
	return m.aggregateFunc(providerID)
}

type deps struct {
	cls       classifier.Classifier
	llm       *mockGemini
	providers *mockProviderRepo
	jobs      *mockJobRepo
	reviews   *mockReviewRepo
}

func newDeps(cls classifier.Classifier) *deps {
	return &deps{
		cls:       cls,
		llm:       &mockGemini{},
		providers: &mockProviderRepo{},
		jobs:      &mockJobRepo{},
		reviews:   &mockReviewRepo{},
	}
}

func newUseCase(d *deps) assistant.UseCase {
	return usecase.New(&mockLogger{}, d.cls, d.llm, d.providers, d.jobs, d.reviews)
}

func seekerProfile() model.UserProfile {
	return model.UserProfile{UserID: "u-seeker", Role: model.RoleSeeker, Location: "Mirpur"}
}

func providerProfile() model.UserProfile {
	return model.UserProfile{UserID: "u-provider", Role: model.RoleProvider, ServiceCategory: taxonomy.ServicePlumbing, Location: "Gulshan"}
}

func sampleProviders(n int) []model.Provider {
	all := []model.Provider{
		{ID: "p1", Name: "Karim Plumbing", ServiceCategory: "plumbing", Location: "Mirpur", Rating: 4.8, RatingCount: 32, HourlyRate: 500},
		{ID: "p2", Name: "Karim Electric", ServiceCategory: "electrical", Location: "Gulshan", Rating: 4.5, RatingCount: 20, HourlyRate: 600},
		{ID: "p3", Name: "Rahim Services", ServiceCategory: "plumbing", Location: "Banani", Rating: 4.2, RatingCount: 11, HourlyRate: 450},
		{ID: "p4", Name: "Fatema Cleaners", ServiceCategory: "cleaning", Location: "Dhanmondi", Rating: 4.9, RatingCount: 55, HourlyRate: 350},
		{ID: "p5", Name: "Karim Repairs", ServiceCategory: "appliance repair", Location: "Uttara", Rating: 3.9, RatingCount: 7, HourlyRate: 550},
	}
	return all[:n]
}

func sampleJobs(n int) []model.JobPost {
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	all := []model.JobPost{
		{ID: "j1", Title: "Fix kitchen sink", ServiceCategory: "plumbing", Location: "Mirpur", Status: model.JobStatusOpen, Budget: 1500, PostedAt: base.AddDate(0, 0, 4)},
		{ID: "j2", Title: "Bathroom pipe replacement", ServiceCategory: "plumbing", Location: "Gulshan", Status: model.JobStatusOpen, Budget: 3000, PostedAt: base.AddDate(0, 0, 3)},
		{ID: "j3", Title: "Tap installation", ServiceCategory: "plumbing", Location: "Banani", Status: model.JobStatusOpen, Budget: 800, PostedAt: base.AddDate(0, 0, 2)},
		{ID: "j4", Title: "Drain cleaning", ServiceCategory: "plumbing", Location: "Uttara", Status: model.JobStatusOpen, PostedAt: base.AddDate(0, 0, 1)},
		{ID: "j5", Title: "Water heater hookup", ServiceCategory: "plumbing", Location: "Mirpur", Status: model.JobStatusOpen, Budget: 2500, PostedAt: base},
	}
	return all[:n]
}
