package esios

import "fmt"

// NotFoundError reports that the provider does not know the requested
// indicator.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("indicator %d not found", e.ID)
}

// RequestError reports that the provider rejected the request itself, e.g.
// a date range outside available history. Message carries the provider's
// own explanation so the caller can correct the input.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("esios rejected request (status %d): %s", e.Status, e.Message)
}

// TransportError reports an HTTP-level failure: timeout, connection refused
// or an unexpected status code. Status is 0 when no response was received.
type TransportError struct {
	Status int
	Cause  error
}

func (e *TransportError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("esios transport error (status %d): %v", e.Status, e.Cause)
	}
	return fmt.Sprintf("esios transport error: %v", e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }
