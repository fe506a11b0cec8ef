package settings

import "errors"

var (
	ErrUnknownCategory   = errors.New("unknown alert category")
	ErrExclusionNotFound = errors.New("exclusion not found")
	ErrInvalidDateRange  = errors.New("end date must not be before start date")
	ErrForbidden         = errors.New("admin role required")
)
