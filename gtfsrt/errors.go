package gtfsrt

import "fmt"

// FetchError reports a resource that could not be retrieved.
type FetchError struct {
	Resource   string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.Resource, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DecodeError reports bytes that are not a valid FeedMessage.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode feed message: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
