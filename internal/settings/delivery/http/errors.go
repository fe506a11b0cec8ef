package http

import (
	"crm-alert-srv/internal/settings"
	pkgErrors "crm-alert-srv/pkg/errors"
)

var (
	errUnknownCategory   = pkgErrors.NewHTTPError(30001, "Unknown alert category", 400)
	errInvalidDateRange  = pkgErrors.NewHTTPError(30002, "End date must not be before start date", 400)
	errExclusionNotFound = pkgErrors.NewNotFoundHTTPError("Exclusion not found")
)

func (h *Handler) mapError(err error) error {
	switch err {
	case settings.ErrUnknownCategory:
		return errUnknownCategory
	case settings.ErrInvalidDateRange:
		return errInvalidDateRange
	case settings.ErrExclusionNotFound:
		return errExclusionNotFound
	case settings.ErrForbidden:
		return pkgErrors.NewForbiddenHTTPError()
	default:
		return err
	}
}
