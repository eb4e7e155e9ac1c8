// Package notesapi is the HTTP client for the notes API. Every failure comes
// back as *Error with a message ready to show to a user.
package notesapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"notesboard/notesboard/types"
	httputils "notesboard/notesboard/utils/http"
	"notesboard/notesboard/utils/logging"
)

// DefaultTimeout bounds every request made by a Client.
const DefaultTimeout = 10 * time.Second

const DefaultBaseURL = "http://localhost:4000/api/notes"

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithHTTPClient replaces the underlying client. Its Timeout is kept as is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListNotes(ctx context.Context) ([]types.Note, error) {
	var notes []types.Note
	if err := httputils.DoJSON(ctx, c.http, http.MethodGet, c.baseURL, nil, &notes); err != nil {
		return nil, c.fail("fetching notes", err)
	}
	if notes == nil {
		notes = []types.Note{}
	}
	return notes, nil
}

func (c *Client) CreateNote(ctx context.Context, req types.CreateNoteRequest) (types.Note, error) {
	var note types.Note
	if err := httputils.DoJSON(ctx, c.http, http.MethodPost, c.baseURL, req, &note); err != nil {
		return types.Note{}, c.fail("creating note", err)
	}
	return note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	if err := httputils.DoJSON(ctx, c.http, http.MethodDelete, c.baseURL+"/"+url.PathEscape(id), nil, nil); err != nil {
		return c.fail("deleting note", err)
	}
	return nil
}

// fail normalizes err into *Error and logs it.
func (c *Client) fail(action string, err error) error {
	apiErr := &Error{Err: err}
	var statusErr *httputils.StatusError
	var decodeErr *httputils.DecodeError
	switch {
	case errors.As(err, &statusErr):
		var body types.ErrorResponse
		_ = json.Unmarshal(statusErr.Body, &body)
		apiErr.Status = statusErr.Status
		apiErr.Message = ErrorMessage(statusErr.Status, body.Message, nil)
	case errors.As(err, &decodeErr):
		apiErr.Status = decodeErr.Status
		apiErr.Message = MsgServer
	default:
		apiErr.IsNetworkError = true
		apiErr.Message = ErrorMessage(0, "", err)
	}
	logging.AppLogger.Warn("Error "+action,
		zap.Int("status", apiErr.Status),
		zap.Bool("network_error", apiErr.IsNetworkError),
		zap.Error(err),
	)
	return apiErr
}
