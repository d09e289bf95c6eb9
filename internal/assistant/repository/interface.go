package repository

import (
	"context"

	"marketplace-assistant/internal/model"
)

// ProviderRepository reads the provider directory. Results are sorted by
// rating, best first.
type ProviderRepository interface {
	SearchProviders(ctx context.Context, opt SearchProvidersOptions) ([]model.Provider, error)
}

// JobRepository reads open job postings. Results are sorted by recency,
// newest first.
type JobRepository interface {
	ListOpenJobs(ctx context.Context, opt ListOpenJobsOptions) ([]model.JobPost, error)
}

// ReviewRepository reads review aggregates per provider.
type ReviewRepository interface {
	// GetAggregate returns the zero value (ProviderID == "") when the
	// provider has no reviews — not-found is not an error.
	GetAggregate(ctx context.Context, providerID string) (model.ReviewAggregate, error)
}
