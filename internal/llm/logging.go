package llm

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/probace/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as an event.
// Only metadata is recorded; prompts and generated content are not kept.
type LoggingProvider struct {
	inner     Provider
	name      string
	eventRepo store.EventRepo
	log       logrus.FieldLogger
}

// WithLogging wraps a Provider with event logging. name is the provider
// family ("gemini", "openai", ...) recorded alongside the model.
func WithLogging(p Provider, name string, repo store.EventRepo, log logrus.FieldLogger) Provider {
	return &LoggingProvider{inner: p, name: name, eventRepo: repo, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.name,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		SessionID: SessionFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	l.log.WithFields(logrus.Fields{
		"provider":   data.Provider,
		"model":      data.Model,
		"purpose":    data.Purpose,
		"latency_ms": data.LatencyMs,
		"success":    data.Success,
		"error_kind": ErrorKind(err),
	}).Debug("llm request")

	// Log the event but don't fail the request if logging fails. The
	// request context may already be done, so use a fresh one.
	if logErr := l.eventRepo.AppendLLMRequest(context.WithoutCancel(ctx), data); logErr != nil {
		l.log.WithError(logErr).Warn("failed to record LLM request event")
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
