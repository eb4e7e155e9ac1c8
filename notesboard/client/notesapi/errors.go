package notesapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
)

const (
	MsgTimeout     = "Request timed out. Please check your connection and try again."
	MsgUnreachable = "Unable to connect to server. Please check your internet connection."
	MsgNetwork     = "Network error. Please try again later."
	MsgBadRequest  = "Invalid request. Please check your input."
	MsgNotFound    = "Resource not found."
	MsgServer      = "Server error. Please try again later."
)

// Error is the single failure shape returned by Client. IsNetworkError is
// set when no HTTP response was received, which is the case where retrying
// the same request can help.
type Error struct {
	Message        string
	Status         int
	IsNetworkError bool
	Err            error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err is a transport failure from Client.
func IsNetworkError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.IsNetworkError
}

// ErrorMessage derives the user-facing text for a failed call. transportErr
// is non-nil when no response arrived; status and serverMessage are used
// otherwise, with the server's own message preferred when it sent one.
func ErrorMessage(status int, serverMessage string, transportErr error) string {
	if transportErr != nil {
		switch {
		case isTimeout(transportErr):
			return MsgTimeout
		case isUnreachable(transportErr):
			return MsgUnreachable
		default:
			return MsgNetwork
		}
	}
	if serverMessage != "" {
		return serverMessage
	}
	switch status {
	case http.StatusBadRequest:
		return MsgBadRequest
	case http.StatusNotFound:
		return MsgNotFound
	case http.StatusInternalServerError:
		return MsgServer
	default:
		return fmt.Sprintf("Error %d. Please try again.", status)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isUnreachable(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ENETUNREACH) || errors.Is(err, syscall.EHOSTUNREACH)
}
