package shared

import (
	"errors"
	"fmt"
)

// RequestError is used when we want a specific error message and StatusCode.
// Simulated stream failures are NOT request errors: once a stream has
// started, failures travel as protocol events, never as HTTP statuses.
type RequestError struct {
	StatusCode int
	Err        error
}

func (r *RequestError) Error() string {
	return fmt.Sprintf("status %d: err %v", r.StatusCode, r.Err)
}

var (
	ErrMissingAuth   = &RequestError{Err: errors.New("missing authorization header"), StatusCode: 401}
	ErrInvalidFormat = &RequestError{Err: errors.New("invalid authentication format"), StatusCode: 401}

	ErrMissingPrompt = &RequestError{Err: errors.New("prompt query parameter is required"), StatusCode: 400}

	ErrInternalServerError = &RequestError{Err: errors.New("internal server error"), StatusCode: 500}
)
