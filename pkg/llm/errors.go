package llm

import (
	"context"
	"errors"
	"fmt"
)

const (
	KindConfiguration = "configuration"
	KindUpstream      = "upstream"
	KindResponseShape = "response_shape"
	KindInternal      = "internal"
)

// ConfigurationError means the provider is selected but cannot be used,
// e.g. the API key is missing. No request is sent.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm configuration: %s: %v", e.Reason, e.Err)
	}
	return "llm configuration: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// UpstreamError covers non-2xx responses and transport failures, including
// timeouts. StatusCode is zero when no response was received.
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Body != "":
		return fmt.Sprintf("llm upstream: http %d: %s", e.StatusCode, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("llm upstream: http %d", e.StatusCode)
	default:
		return fmt.Sprintf("llm upstream: %v", e.Err)
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Timeout reports whether the call was abandoned because its deadline passed.
func (e *UpstreamError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(e.Err, &t) && t.Timeout()
}

// ResponseShapeError means the provider answered 2xx but the payload had no
// usable reply text.
type ResponseShapeError struct {
	Reason string
	Err    error
}

func (e *ResponseShapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm response: %s: %v", e.Reason, e.Err)
	}
	return "llm response: " + e.Reason
}

func (e *ResponseShapeError) Unwrap() error { return e.Err }

// Kind names the taxonomy bucket of err for logs.
func Kind(err error) string {
	var (
		cfgErr   *ConfigurationError
		upErr    *UpstreamError
		shapeErr *ResponseShapeError
	)
	switch {
	case errors.As(err, &cfgErr):
		return KindConfiguration
	case errors.As(err, &upErr):
		return KindUpstream
	case errors.As(err, &shapeErr):
		return KindResponseShape
	default:
		return KindInternal
	}
}

// Recoverable reports whether err is a known provider failure that callers
// may answer with a local fallback.
func Recoverable(err error) bool {
	return err != nil && Kind(err) != KindInternal
}
