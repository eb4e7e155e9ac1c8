// notesboard/utils/http/httputils.go
package httputils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody bounds how much of a failed response is kept for inspection.
const maxErrorBody = 64 << 10

// StatusError is returned by DoJSON when the server answered with a non-2xx
// status. Body holds the start of the response body.
type StatusError struct {
	Status int
	Body   []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bad status: %d", e.Status)
}

// DecodeError is returned when a 2xx response body is not the expected JSON.
type DecodeError struct {
	Status int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response (status %d): %v", e.Status, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DoJSON sends body (if non-nil) as JSON and decodes a 2xx response into resp
// (if non-nil). Transport failures are returned unchanged so callers can tell
// them apart from *StatusError and *DecodeError.
func DoJSON(ctx context.Context, client *http.Client, method, url string, body, resp any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(jsonBody)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r, err := client.Do(req)
	if err != nil {
		return err
	}
	defer r.Body.Close()
	if r.StatusCode < 200 || r.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(r.Body, maxErrorBody))
		return &StatusError{Status: r.StatusCode, Body: data}
	}
	if resp != nil && r.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(r.Body).Decode(resp); err != nil {
			return &DecodeError{Status: r.StatusCode, Err: err}
		}
	}
	return nil
}
