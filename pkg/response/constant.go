package response

const (
	// MessageSuccess is the message of a successful response.
	MessageSuccess = "Success"
	// DefaultErrorMessage hides internal errors from API consumers.
	DefaultErrorMessage = "Something went wrong"

	// ValidationErrorCode is the error code for validation failures.
	ValidationErrorCode = 400
	// ValidationErrorMsg is the message for validation failures.
	ValidationErrorMsg = "Validation failed"
	// InternalServerErrorCode is the error code for unexpected failures.
	InternalServerErrorCode = 500

	// DefaultStackTraceDepth bounds captured stack traces in error reports.
	DefaultStackTraceDepth = 32
	// DiscordMaxMessageLen bounds chunks of ops error reports.
	DiscordMaxMessageLen = 1900
)
