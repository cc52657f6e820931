// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
)

// ErrNetwork marks transport-level failures: DNS resolution, refused
// connections, timeouts. Callers match it with errors.Is.
var ErrNetwork = errors.New("network failure")

// ErrRemote marks responses where the remote API answered with a non-2xx
// status. The *RemoteError in the chain carries the status code.
var ErrRemote = errors.New("remote error")

// RemoteError is a non-2xx HTTP response from a remote API.
type RemoteError struct {
	StatusCode int
	Reason     string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("HTTP error %d: %s", e.StatusCode, e.Reason)
}

// Response is the transfer result of a completed FetchJSON call.
type Response struct {
	// Body is the raw response body. Empty when NoContent is true.
	Body []byte

	// StatusCode is the HTTP status code.
	StatusCode int

	// NoContent reports whether the API answered 204 No Content, which
	// the archive sends for queries that match nothing.
	NoContent bool
}

// FetchJSON executes req once and returns the raw body for the caller to
// decode. A 204 response is a success with NoContent set, never an error.
// Transport failures come back marked ErrNetwork with a hint naming the
// host; other non-2xx statuses come back as a *RemoteError marked
// ErrRemote, with no hint attached, so callers can add flow-specific hints.
func FetchJSON(ctx context.Context, client *http.Client, req *http.Request) (Response, error) {
	req = req.Clone(ctx)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		err = errors.Wrap(err, "network error")
		err = errors.WithHint(err, "Check network settings and ensure "+req.URL.Host+" is allowlisted")
		return Response{}, errors.Mark(err, ErrNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return Response{StatusCode: resp.StatusCode, NoContent: true}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		re := &RemoteError{StatusCode: resp.StatusCode, Reason: http.StatusText(resp.StatusCode)}
		return Response{}, errors.Mark(re, ErrRemote)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, errors.Mark(errors.Wrap(err, "reading response body"), ErrNetwork)
	}
	return Response{Body: body, StatusCode: resp.StatusCode}, nil
}
