package repository

// SearchProvidersOptions filters the provider directory. Empty fields are
// skipped; NameQuery and Location match as case-insensitive substrings.
type SearchProvidersOptions struct {
	Category  string
	NameQuery string
	Location  string
	Limit     int
}

// ListOpenJobsOptions filters open job postings. Empty fields are
// skipped; Location matches as a case-insensitive substring.
type ListOpenJobsOptions struct {
	Category string
	Location string
	Limit    int
}
