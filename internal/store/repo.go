package store

import (
	"context"
	"time"
)

// QueryOpts filters event queries. Results are newest first.
type QueryOpts struct {
	Limit     int    // max results (0 = unlimited)
	Purpose   string // exact match when non-empty
	SessionID string // exact match when non-empty
}

// LLMRequestEventData captures the data for a single LLM request event.
// Prompts and generated content are deliberately not part of the record.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	SessionID    string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored LLMRequestEventData.
type LLMRequestEvent struct {
	LLMRequestEventData
	ID        int
	Timestamp time.Time
}

// PurposeUsage aggregates token usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

// NopEventRepo discards events. Used when the database can't be opened.
type NopEventRepo struct{}

func (NopEventRepo) AppendLLMRequest(context.Context, LLMRequestEventData) error { return nil }
