package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable signals that no usable provider was configured.
var ErrProviderUnavailable = errors.New("score provider unavailable")

// FeedError captures a transient upstream failure: network error, non-2xx
// response, or malformed payload. Callers treat it as "no new information"
// and keep their state unchanged; the next throttled poll is the retry.
type FeedError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *FeedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s feed failed (status=%d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s feed failed: %v", e.Provider, e.Err)
}

func (e *FeedError) Unwrap() error {
	return e.Err
}

// AsFeedError attempts to unwrap an error into a FeedError.
func AsFeedError(err error) (*FeedError, bool) {
	var feedErr *FeedError
	if errors.As(err, &feedErr) {
		return feedErr, true
	}
	return nil, false
}
