// internal/api/apiutil/errors.go
package apiutil

import "fmt"

// FieldError reports a single invalid request field. It maps to a 400
// with the field name and reason in the body.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// HandlerError carries an HTTP status and user-facing message out of
// handler helpers, wrapping the underlying cause for the logs.
type HandlerError struct {
	Status  int
	Message string
	Err     error
}

func (e *HandlerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

func NewHandlerError(status int, message string, err error) *HandlerError {
	return &HandlerError{Status: status, Message: message, Err: err}
}
