package errors

import "net/http"

// NewHTTPError returns a new HTTPError with the given code, message, and status code.
// If statusCode is 0, it defaults to http.StatusBadRequest.
func NewHTTPError(code int, message string, statusCode ...int) *HTTPError {
	status := code
	if len(statusCode) > 0 && statusCode[0] != 0 {
		status = statusCode[0]
	}
	if status == 0 {
		status = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: status,
	}
}

// NewBadRequestHTTPError returns a new bad request HTTP error.
func NewBadRequestHTTPError(message string) *HTTPError {
	if message == "" {
		message = MessageBadRequest
	}
	return &HTTPError{
		Code:       http.StatusBadRequest,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewUnauthorizedHTTPError returns a new unauthorized HTTP error.
func NewUnauthorizedHTTPError() *HTTPError {
	return &HTTPError{
		Code:       http.StatusUnauthorized,
		Message:    MessageUnauthorized,
		StatusCode: http.StatusUnauthorized,
	}
}

// NewForbiddenHTTPError returns a new forbidden HTTP error.
func NewForbiddenHTTPError() *HTTPError {
	return &HTTPError{
		Code:       http.StatusForbidden,
		Message:    MessageForbidden,
		StatusCode: http.StatusForbidden,
	}
}

// NewUnprocessableHTTPError returns a new unprocessable entity HTTP error.
func NewUnprocessableHTTPError(message string) *HTTPError {
	if message == "" {
		message = MessageUnprocessable
	}
	return &HTTPError{
		Code:       http.StatusUnprocessableEntity,
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
	}
}

// Error returns the error message.
func (e *HTTPError) Error() string {
	return e.Message
}
