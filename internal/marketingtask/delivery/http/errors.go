package http

import (
	"crm-alert-srv/internal/marketingtask"
	pkgErrors "crm-alert-srv/pkg/errors"
)

var (
	errTaskNotFound           = pkgErrors.NewNotFoundHTTPError("Marketing task not found")
	errInvalidStatus          = pkgErrors.NewHTTPError(40001, "Invalid task status", 400)
	errOutcomeRequired        = pkgErrors.NewHTTPError(40002, "Outcome is required when override is set", 400)
	errOverrideReasonRequired = pkgErrors.NewHTTPError(40003, "Override reason is required", 400)
)

func (h *Handler) mapError(err error) error {
	switch err {
	case marketingtask.ErrTaskNotFound:
		return errTaskNotFound
	case marketingtask.ErrInvalidStatus:
		return errInvalidStatus
	case marketingtask.ErrOutcomeRequired:
		return errOutcomeRequired
	case marketingtask.ErrOverrideReasonRequired:
		return errOverrideReasonRequired
	case marketingtask.ErrForbidden:
		return pkgErrors.NewForbiddenHTTPError()
	default:
		return err
	}
}
