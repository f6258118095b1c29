package llm

import (
	"context"
	"encoding/json"
)

// Provider produces one structured completion per Generate call. It never
// retries; a failed call is reported to the caller as a typed error.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the model the provider was configured with.
	ModelID() string
}

// Request is a single-turn generation request.
type Request struct {
	// System carries the standing instructions.
	System string

	// Prompt is the user turn.
	Prompt string

	// Schema, when set, asks the provider for JSON output in that shape and
	// makes Generate reject anything that does not validate against it.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default in place.
	Temperature float64
}

// Schema is a named JSON Schema document.
type Schema struct {
	// Name is kebab-case and unique per definition; it keys the compiled
	// schema cache.
	Name        string
	Description string
	Definition  map[string]any
}

// StopReason is the normalized reason generation ended.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
)

// Response is a completed generation.
type Response struct {
	// Content is the JSON text. When the request carried a Schema it has
	// already been validated.
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually served the request.
	Model string
	Stop  StopReason
}

// Usage is the token accounting for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total returns input plus output tokens.
func (u Usage) Total() int { return u.InputTokens + u.OutputTokens }

// finish applies the checks every provider shares to raw model output: a
// truncated completion is an error, and schema'd output must validate.
func finish(req Request, content json.RawMessage, stop StopReason, model string, usage Usage) (*Response, error) {
	if stop == StopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}
	if err := validateResponse(req.Schema, content); err != nil {
		return nil, err
	}
	return &Response{
		Content: content,
		Usage:   usage,
		Model:   model,
		Stop:    stop,
	}, nil
}

// resolveModel expands a short alias such as "gemini-flash" to a full model
// ID. Unknown names are used verbatim.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
