package quote

import (
	"fmt"
	"net/http"
)

// NetworkError reports a transport failure or a non-success HTTP status.
// StatusCode is zero when no response was received.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%d %s for url: %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("request failed for url: %s", e.URL)
}

// Unwrap returns the underlying error for errors.Is / errors.As
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Cause satisfies the github.com/pkg/errors causer interface
func (e *NetworkError) Cause() error {
	return e.Err
}
