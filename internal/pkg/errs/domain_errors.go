package errs

import "errors"

// Category markers. Packages declare their own sentinels and attach one of
// these with Mark so the handler layer can pick a status without knowing
// every sentinel.
var (
	ErrValidation          = errors.New("validation error")
	ErrNotFound            = errors.New("not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrConflict            = errors.New("conflict")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
