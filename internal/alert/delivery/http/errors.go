package http

import (
	"crm-alert-srv/internal/alert"
	pkgErrors "crm-alert-srv/pkg/errors"
)

var (
	errUnknownCategory  = pkgErrors.NewHTTPError(20001, "Unknown alert category", 400)
	errCategoryDisabled = pkgErrors.NewHTTPError(20002, "Alert category is disabled", 409)
)

func (h *Handler) mapError(err error) error {
	switch err {
	case alert.ErrUnknownCategory:
		return errUnknownCategory
	case alert.ErrCategoryDisabled:
		return errCategoryDisabled
	case alert.ErrForbidden:
		return pkgErrors.NewForbiddenHTTPError()
	default:
		return err
	}
}
