package api

import (
	"errors"
	"net/http"

	ghAPI "github.com/cli/go-gh/v2/pkg/api"
)

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var httpErr *ghAPI.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool { return StatusCode(err) == http.StatusNotFound }

func IsUnauthorized(err error) bool { return StatusCode(err) == http.StatusUnauthorized }
