package client

import "errors"

var (
	// ErrNotFound is returned when no client has the requested ID.
	ErrNotFound = errors.New("client not found")

	// ErrNameRequired is returned when a client is saved without a name.
	ErrNameRequired = errors.New("client name is required")

	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date, want YYYY-MM-DD")
)
