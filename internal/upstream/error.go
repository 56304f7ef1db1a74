package upstream

import "fmt"

type ErrorType string

const (
	HttpError      ErrorType = "HttpError"
	JsonAppError   ErrorType = "JsonAppError"
	ServerAppError ErrorType = "ServerAppError"
)

// AppError carries the best user-facing message available for a failed
// upstream call together with the HTTP status it maps to.
type AppError struct {
	Type    ErrorType
	Message string
	Code    int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewError(t ErrorType, message string, code int, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: message,
		Code:    code,
		Err:     err,
	}
}

// StatusCode returns the HTTP status carried by err, or 500 when err is
// not an AppError.
func StatusCode(err error) int {
	if appErr, ok := err.(*AppError); ok && appErr.Code != 0 {
		return appErr.Code
	}
	return 500
}

// Message returns the user-facing message carried by err.
func Message(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Message
	}
	return err.Error()
}
