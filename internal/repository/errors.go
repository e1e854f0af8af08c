package repository

import "errors"

// ErrNotFound is returned by every lookup whose target does not exist.
// Handlers map it to 404; anything else from a store is a 500.
var ErrNotFound = errors.New("not found")
