package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrRateLimit reports an HTTP 429 from the provider.
type ErrRateLimit struct {
	Err error
}

func (e *ErrRateLimit) Error() string { return fmt.Sprintf("rate limited: %v", e.Err) }

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse reports model output that is not JSON or does not
// match the requested schema. Content holds the offending text.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string { return fmt.Sprintf("invalid LLM response: %v", e.Err) }

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable covers transport failures, 5xx responses and any
// other error the SDK surfaces that is not a rate limit.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "LLM provider unavailable"
	}
	return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded reports a completion cut off at MaxTokens.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string { return "LLM response truncated: max tokens exceeded" }

// ErrNotConfigured is returned when no provider credential could be found.
// Callers treat it as "run offline", not as a fatal error.
var ErrNotConfigured = errors.New("no LLM provider configured")

// fromStatus maps an SDK error carrying an HTTP status to a typed error.
func fromStatus(status int, err error) error {
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}

// ErrorKind returns a short stable label for err, suitable for log fields
// and the request event log.
func ErrorKind(err error) string {
	var (
		rateLimit   *ErrRateLimit
		invalid     *ErrInvalidResponse
		truncated   *ErrMaxTokensExceeded
		unavailable *ErrProviderUnavailable
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.As(err, &rateLimit):
		return "rate_limit"
	case errors.As(err, &invalid):
		return "invalid_response"
	case errors.As(err, &truncated):
		return "max_tokens"
	case errors.As(err, &unavailable):
		return "unavailable"
	default:
		return "other"
	}
}
