package model

import "time"

// Provider is a service provider listed in the marketplace directory.
type Provider struct {
	ID              string
	Name            string
	ServiceCategory string
	Location        string
	Rating          float64 // average rating, 0 when unrated
	RatingCount     int
	HourlyRate      float64 // in BDT, 0 when not published
	JoinedAt        time.Time
}

// JobStatus is the lifecycle state of a job posting.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusTaken  JobStatus = "taken"
	JobStatusClosed JobStatus = "closed"
)

// JobPost is a job posted by a seeker.
type JobPost struct {
	ID              string
	Title           string
	Description     string
	ServiceCategory string
	Location        string
	Status          JobStatus
	Budget          float64 // offered budget in BDT, 0 when negotiable
	PostedAt        time.Time
}

// ReviewAggregate summarizes reviews for one provider.
type ReviewAggregate struct {
	ProviderID    string
	ReviewCount   int
	AverageRating float64
	LatestComment string
}
