package marketingtask

import "errors"

var (
	ErrTaskNotFound           = errors.New("marketing task not found")
	ErrForbidden              = errors.New("not allowed to access this task")
	ErrInvalidStatus          = errors.New("invalid task status")
	ErrOutcomeRequired        = errors.New("outcome is required when override is set")
	ErrOverrideReasonRequired = errors.New("override reason is required")
)
