package errors

const (
	// MessageBadRequest is the default message for 400.
	MessageBadRequest = "Bad request"
	// MessageUnauthorized is the default message for 401.
	MessageUnauthorized = "Unauthorized"
	// MessageForbidden is the default message for 403.
	MessageForbidden = "Forbidden"
	// MessageUnprocessable is the default message for 422.
	MessageUnprocessable = "Unprocessable entity"
)
