package postgre

import (
	"context"
	"database/sql"

	"marketplace-assistant/internal/assistant/repository"
	"marketplace-assistant/internal/model"
)

// GetAggregate returns the review aggregate for one provider.
// Returns the zero value when the provider has no reviews — do NOT
// return an error for not-found.
func (r *implRepository) GetAggregate(ctx context.Context, providerID string) (model.ReviewAggregate, error) {
	const query = `
		SELECT provider_id, review_count, average_rating, latest_comment
		FROM review_aggregates
		WHERE provider_id = $1`

	var agg model.ReviewAggregate
	err := r.db.QueryRowContext(ctx, query, providerID).Scan(
		&agg.ProviderID, &agg.ReviewCount, &agg.AverageRating, &agg.LatestComment,
	)
	if err == sql.ErrNoRows {
		return model.ReviewAggregate{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetAggregate"), err)
		return model.ReviewAggregate{}, repository.ErrFailedToGetReviews
	}
	return agg, nil
}
