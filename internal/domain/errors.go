package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrAppNotFound   = errors.New("expo project not found")
	ErrNotConfigured = errors.New("credentials not configured")
)

// FetchError is a non-success response on a top-level fetch
// (issue search, build list, project resolution)
type FetchError struct {
	Err        error  // optional cause, exposed through Unwrap
	Message    string // upstream message, may be empty
	Source     string // "GitHub" or "EAS"
	StatusCode int    // 0 when no HTTP status applies
}

func (e *FetchError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s API error: %d %s", e.Source, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
