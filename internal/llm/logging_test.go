package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/probace/internal/store"
)

type recordingRepo struct {
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 120, OutputTokens: 80},
	})
	p := WithLogging(mock, "gemini", repo, logger)

	ctx := WithSession(WithPurpose(context.Background(), "question-gen"), "sess-1")
	_, err := p.Generate(ctx, Request{})
	require.NoError(t, err)

	require.Len(t, repo.events, 1)
	ev := repo.events[0]
	assert.Equal(t, "gemini", ev.Provider)
	assert.Equal(t, "mock", ev.Model)
	assert.Equal(t, "question-gen", ev.Purpose)
	assert.Equal(t, "sess-1", ev.SessionID)
	assert.Equal(t, 120, ev.InputTokens)
	assert.Equal(t, 80, ev.OutputTokens)
	assert.True(t, ev.Success)
	assert.Empty(t, ev.ErrorMessage)
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("connection refused")}})
	p := WithLogging(mock, "openai", repo, logger)

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)

	require.Len(t, repo.events, 1)
	assert.False(t, repo.events[0].Success)
	assert.Contains(t, repo.events[0].ErrorMessage, "connection refused")
	assert.Equal(t, "unknown", repo.events[0].Purpose)
}

func TestLoggingProvider_RepoErrorDoesNotFailRequest(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	repo := &recordingRepo{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "mock", repo, logger)

	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	require.NotNil(t, resp)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "failed to record LLM request event", entry.Message)
}

func TestLoggingProvider_ModelID(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	p := WithLogging(NewMockProvider(), "mock", &recordingRepo{}, logger)
	assert.Equal(t, "mock", p.ModelID())
}
