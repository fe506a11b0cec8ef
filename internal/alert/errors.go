package alert

import "errors"

var (
	// ErrUnknownCategory rejects trigger calls for a category that is not in
	// the fixed set.
	ErrUnknownCategory = errors.New("unknown alert category")
	// ErrCategoryDisabled is returned when the category's config row has the
	// enabled flag off.
	ErrCategoryDisabled = errors.New("alert category is disabled")
	// ErrDispatchFailed wraps a delivery failure after it has been logged.
	ErrDispatchFailed = errors.New("failed to dispatch alert")
	// ErrForbidden guards the admin-only audit log surface.
	ErrForbidden = errors.New("admin role required")
)
