package model

// Role is the marketplace role of the caller.
type Role string

const (
	RoleSeeker   Role = "SEEKER"
	RoleProvider Role = "PROVIDER"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSeeker, RoleProvider:
		return true
	}
	return false
}

// UserProfile is the caller's resolved profile for a single request.
// Built fresh per request and never mutated or cached across requests;
// every component receives it by value.
type UserProfile struct {
	UserID          string
	Role            Role
	Location        string // resolved area name, empty when unknown
	ServiceCategory string // provider's canonical category, empty for seekers
}
