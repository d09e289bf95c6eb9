package postgre

import (
	"context"
	"fmt"
	"strings"

	"marketplace-assistant/internal/assistant/repository"
	"marketplace-assistant/internal/model"
)

const providerColumns = `id, name, service_category, location, rating, rating_count, hourly_rate, joined_at`

// SearchProviders filters the provider directory and returns results
// sorted by rating, best first.
func (r *implRepository) SearchProviders(ctx context.Context, opt repository.SearchProvidersOptions) ([]model.Provider, error) {
	var (
		conds []string
		args  []interface{}
	)

	if opt.Category != "" {
		args = append(args, opt.Category)
		conds = append(conds, fmt.Sprintf("service_category = $%d", len(args)))
	}
	if opt.NameQuery != "" {
		args = append(args, "%"+opt.NameQuery+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if opt.Location != "" {
		args = append(args, "%"+opt.Location+"%")
		conds = append(conds, fmt.Sprintf("location ILIKE $%d", len(args)))
	}

	query := fmt.Sprintf("SELECT %s FROM providers", providerColumns)
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY rating DESC, rating_count DESC"
	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SearchProviders"), err)
		return nil, repository.ErrFailedToSearchProviders
	}
	defer rows.Close()

	var providers []model.Provider
	for rows.Next() {
		var p model.Provider
		if err := rows.Scan(&p.ID, &p.Name, &p.ServiceCategory, &p.Location, &p.Rating, &p.RatingCount, &p.HourlyRate, &p.JoinedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("SearchProviders"), err)
			return nil, repository.ErrFailedToSearchProviders
		}
		providers = append(providers, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("SearchProviders"), err)
		return nil, repository.ErrFailedToSearchProviders
	}

	return providers, nil
}
