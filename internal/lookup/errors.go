package lookup

import "fmt"

// NotFoundError means the route service does not know the callsign.
// Identifier is what the user typed, before normalization.
type NotFoundError struct {
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Flight %s not found. Try flights like AA1234, UA2345, DL1234, etc.", e.Identifier)
}

// UpstreamError covers every non-404 failure status and unreadable bodies.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("API error: %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("API error: %d", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ConnectivityError is a transport failure: DNS, refused connection, reset.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return "Unable to connect to flight database. Please check your connection."
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}
