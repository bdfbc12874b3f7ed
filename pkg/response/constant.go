package response

const (
	// DefaultStackTraceDepth limits the captured backtrace on unknown errors.
	DefaultStackTraceDepth = 32
	// DefaultErrorMessage is returned for unrecognized internal errors.
	DefaultErrorMessage = "Something went wrong"
	// MessageSuccess is the message on successful responses.
	MessageSuccess = "Success"

	ValidationErrorCode     = 400
	ValidationErrorMsg      = "Validation error"
	PermissionErrorCode     = 403
	PermissionErrorMsg      = "You don't have permission to do this"
	InternalServerErrorCode = 500

	// DiscordMaxMessageLen is Discord's practical per-message character limit.
	DiscordMaxMessageLen = 5000
)
