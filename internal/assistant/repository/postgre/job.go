package postgre

import (
	"context"
	"fmt"
	"strings"

	"marketplace-assistant/internal/assistant/repository"
	"marketplace-assistant/internal/model"
)

const jobColumns = `id, title, description, service_category, location, status, budget, posted_at`

// ListOpenJobs filters open postings and returns them newest first.
func (r *implRepository) ListOpenJobs(ctx context.Context, opt repository.ListOpenJobsOptions) ([]model.JobPost, error) {
	conds := []string{"status = 'open'"}
	var args []interface{}

	if opt.Category != "" {
		args = append(args, opt.Category)
		conds = append(conds, fmt.Sprintf("service_category = $%d", len(args)))
	}
	if opt.Location != "" {
		args = append(args, "%"+opt.Location+"%")
		conds = append(conds, fmt.Sprintf("location ILIKE $%d", len(args)))
	}

	query := fmt.Sprintf(
		"SELECT %s FROM job_posts WHERE %s ORDER BY posted_at DESC",
		jobColumns, strings.Join(conds, " AND "),
	)
	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListOpenJobs"), err)
		return nil, repository.ErrFailedToListJobs
	}
	defer rows.Close()

	var jobs []model.JobPost
	for rows.Next() {
		var j model.JobPost
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.ServiceCategory, &j.Location, &j.Status, &j.Budget, &j.PostedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListOpenJobs"), err)
			return nil, repository.ErrFailedToListJobs
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListOpenJobs"), err)
		return nil, repository.ErrFailedToListJobs
	}

	return jobs, nil
}
