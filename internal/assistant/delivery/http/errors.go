package http

import "errors"

var errInvalidRole = errors.New("caller_role must be SEEKER or PROVIDER")
