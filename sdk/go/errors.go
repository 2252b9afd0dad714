package adsmedia

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned by NewClient when no API key is configured.
var ErrMissingAPIKey = errors.New("adsmedia: API key is required")

// RemoteCallError is returned for any failed API call: a transport failure,
// a non-2xx status, or a 2xx body that is not a JSON object.
type RemoteCallError struct {
	Method string
	Path   string

	// StatusCode is zero when no response was received.
	StatusCode int

	// Body is the raw response body, if one was read.
	Body string

	// Code and Message come from the API error envelope when present.
	Code    string
	Message string

	// Err is the underlying transport or decode error.
	Err error
}

func (e *RemoteCallError) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("adsmedia: %s %s failed: %v", e.Method, e.Path, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("adsmedia: %s %s returned status %d: %v", e.Method, e.Path, e.StatusCode, e.Err)
	case e.Code != "":
		return fmt.Sprintf("adsmedia: %s %s returned status %d [%s]: %s", e.Method, e.Path, e.StatusCode, e.Code, e.Message)
	case e.Message != "":
		return fmt.Sprintf("adsmedia: %s %s returned status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("adsmedia: %s %s returned status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
	}
}

func (e *RemoteCallError) Unwrap() error {
	return e.Err
}

// AsRemoteCallError checks whether err is, or wraps, a RemoteCallError.
func AsRemoteCallError(err error) (*RemoteCallError, bool) {
	var rce *RemoteCallError
	if errors.As(err, &rce) {
		return rce, true
	}
	return nil, false
}

// apiEnvelope matches the ADSMedia response envelope.
type apiEnvelope struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func parseRemoteError(method, path string, statusCode int, body []byte) error {
	rce := &RemoteCallError{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Body:       string(body),
	}

	var env apiEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		rce.Code = env.Error.Code
		rce.Message = env.Error.Message
	}
	return rce
}
