package model

// Scope identifies the caller of a request.
type Scope struct {
	UserID   string
	Username string
}
