package models

import "errors"

// Domain errors surfaced by model validation. Handlers map these onto
// the HTTP error taxonomy (400/403/404/409).
var (
	ErrEndBeforeStart  = errors.New("event_end_date cannot be less than event_start_date")
	ErrInvalidCategory = errors.New("category name is not one of the supported event categories")
)
