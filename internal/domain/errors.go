package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, split amounts not summing
// to the expense amount).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrProviderUnavailable is returned by the planner service when the
// point-of-interest lookup fails downstream. The full provider error is
// logged internally; handlers should map this to HTTP 502 with only a
// summary in the body.
var ErrProviderUnavailable = errors.New("provider unavailable")
