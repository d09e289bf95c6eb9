package repository

import "errors"

// Coarse repository errors. SQL details are logged at the call site and
// never leaked upward.
var (
	ErrFailedToSearchProviders = errors.New("failed to search providers")
	ErrFailedToListJobs        = errors.New("failed to list jobs")
	ErrFailedToGetReviews      = errors.New("failed to get review aggregate")
)
