package netbird

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody caps how much of a failed response is kept for the error
// message. Management API errors are short JSON objects; anything longer is
// noise.
const maxErrorBody = 4 << 10

// APIError is a non-2xx response from the management API. The status and a
// bounded slice of the body are preserved so the operator sees what the
// server actually said.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func newAPIError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       strings.TrimSpace(string(body)),
	}
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api request failed: %s", e.Status)
	}
	return fmt.Sprintf("api request failed: %s: %s", e.Status, e.Body)
}
