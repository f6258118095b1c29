package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/probace/internal/llm"
	"github.com/abhisek/probace/internal/question"
)

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"scenario": "A bag holds 3 red marbles and 2 blue marbles.",
		"question": "You draw one marble at random. What is the probability it is blue?",
		"options": [
			{"text": "2/5", "isCorrect": true},
			{"text": "3/5", "isCorrect": false},
			{"text": "1/2", "isCorrect": false},
			{"text": "2/3", "isCorrect": false}
		],
		"explanation": "There are 5 marbles and 2 are blue, so the probability is 2/5."
	}`)
}

func newTestService(t *testing.T, p llm.Provider) (*Service, *logtest.Hook) {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return New(p, DefaultConfig(), logger), hook
}

func TestGetQuestion_ValidResponseReturnedUnchanged(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	svc, hook := newTestService(t, mock)

	q, src, reason := svc.GetQuestionWithSource(context.Background(), question.Medium)

	require.NotNil(t, q)
	assert.Equal(t, SourceGenerated, src)
	assert.Empty(t, reason)
	assert.Equal(t, "A bag holds 3 red marbles and 2 blue marbles.", q.Scenario)
	assert.Equal(t, "You draw one marble at random. What is the probability it is blue?", q.Question)
	assert.Equal(t, []question.AnswerOption{
		{Text: "2/5", IsCorrect: true},
		{Text: "3/5"},
		{Text: "1/2"},
		{Text: "2/3"},
	}, q.Options)
	assert.Equal(t, "There are 5 marbles and 2 are blue, so the probability is 2/5.", q.Explanation)
	assert.Empty(t, hook.AllEntries())
}

func TestGetQuestion_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	svc, _ := newTestService(t, mock)

	svc.GetQuestion(context.Background(), question.Hard)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Contains(t, req.System, "probability and statistics professor")
	assert.Contains(t, req.Prompt, "Hard")
	assert.Same(t, QuestionSchema, req.Schema)
	assert.Equal(t, DefaultConfig().MaxTokens, req.MaxTokens)
}

func TestGetQuestion_TagsPurposeAndDeadline(t *testing.T) {
	var gotPurpose string
	var hasDeadline bool
	p := providerFunc(func(ctx context.Context, _ llm.Request) (*llm.Response, error) {
		gotPurpose = llm.PurposeFrom(ctx)
		_, hasDeadline = ctx.Deadline()
		return &llm.Response{Content: validQuestionJSON()}, nil
	})
	svc := New(p, Config{Timeout: time.Minute}, nil)

	_, src, _ := svc.GetQuestionWithSource(context.Background(), question.Easy)

	assert.Equal(t, SourceGenerated, src)
	assert.Equal(t, Purpose, gotPurpose)
	assert.True(t, hasDeadline)
}

func TestGetQuestion_NoTimeoutLeavesContextAlone(t *testing.T) {
	var hasDeadline bool
	p := providerFunc(func(ctx context.Context, _ llm.Request) (*llm.Response, error) {
		_, hasDeadline = ctx.Deadline()
		return &llm.Response{Content: validQuestionJSON()}, nil
	})
	svc := New(p, Config{}, nil)

	svc.GetQuestion(context.Background(), question.Easy)
	assert.False(t, hasDeadline)
}

func TestGetQuestion_FallbackCases(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		err        error
		wantReason string
		wantLevel  logrus.Level
	}{
		{
			name:       "missing scenario",
			content:    `{"question":"Q?","options":[{"text":"a","isCorrect":true},{"text":"b","isCorrect":false},{"text":"c","isCorrect":false},{"text":"d","isCorrect":false}],"explanation":"E"}`,
			wantReason: ReasonValidation,
			wantLevel:  logrus.ErrorLevel,
		},
		{
			name:       "empty scenario",
			content:    `{"scenario":"","question":"Q?","options":[{"text":"a","isCorrect":true},{"text":"b","isCorrect":false},{"text":"c","isCorrect":false},{"text":"d","isCorrect":false}],"explanation":"E"}`,
			wantReason: ReasonValidation,
			wantLevel:  logrus.ErrorLevel,
		},
		{
			name:       "missing explanation",
			content:    `{"scenario":"S","question":"Q?","options":[{"text":"a","isCorrect":true},{"text":"b","isCorrect":false},{"text":"c","isCorrect":false},{"text":"d","isCorrect":false}]}`,
			wantReason: ReasonValidation,
			wantLevel:  logrus.ErrorLevel,
		},
		{
			name:       "three options",
			content:    `{"scenario":"S","question":"Q?","options":[{"text":"a","isCorrect":true},{"text":"b","isCorrect":false},{"text":"c","isCorrect":false}],"explanation":"E"}`,
			wantReason: ReasonValidation,
			wantLevel:  logrus.ErrorLevel,
		},
		{
			name:       "five options",
			content:    `{"scenario":"S","question":"Q?","options":[{"text":"a","isCorrect":true},{"text":"b","isCorrect":false},{"text":"c","isCorrect":false},{"text":"d","isCorrect":false},{"text":"e","isCorrect":false}],"explanation":"E"}`,
			wantReason: ReasonValidation,
			wantLevel:  logrus.ErrorLevel,
		},
		{
			name:       "no correct option",
			content:    `{"scenario":"S","question":"Q?","options":[{"text":"a","isCorrect":false},{"text":"b","isCorrect":false},{"text":"c","isCorrect":false},{"text":"d","isCorrect":false}],"explanation":"E"}`,
			wantReason: ReasonValidation,
			wantLevel:  logrus.WarnLevel,
		},
		{
			name:       "two correct options",
			content:    `{"scenario":"S","question":"Q?","options":[{"text":"a","isCorrect":true},{"text":"b","isCorrect":true},{"text":"c","isCorrect":false},{"text":"d","isCorrect":false}],"explanation":"E"}`,
			wantReason: ReasonValidation,
			wantLevel:  logrus.WarnLevel,
		},
		{
			name:       "not json",
			content:    `here is your question`,
			wantReason: ReasonParse,
			wantLevel:  logrus.ErrorLevel,
		},
		{
			name:       "provider unavailable",
			err:        &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
			wantReason: ReasonGeneration,
			wantLevel:  logrus.ErrorLevel,
		},
		{
			name:       "schema rejected by provider",
			err:        &llm.ErrInvalidResponse{Content: json.RawMessage(`{}`), Err: errors.New("missing properties")},
			wantReason: ReasonGeneration,
			wantLevel:  logrus.ErrorLevel,
		},
		{
			name:       "rate limited",
			err:        &llm.ErrRateLimit{Err: errors.New("429")},
			wantReason: ReasonGeneration,
			wantLevel:  logrus.ErrorLevel,
		},
		{
			name:       "deadline exceeded",
			err:        context.DeadlineExceeded,
			wantReason: ReasonGeneration,
			wantLevel:  logrus.ErrorLevel,
		},
	}

	for _, tt := range tests {
		for _, d := range question.Difficulties() {
			t.Run(tt.name+"/"+d.String(), func(t *testing.T) {
				resp := llm.MockResponse{Err: tt.err}
				if tt.err == nil {
					resp.Content = json.RawMessage(tt.content)
				}
				mock := llm.NewMockProvider(resp)
				svc, hook := newTestService(t, mock)

				q, src, reason := svc.GetQuestionWithSource(context.Background(), d)

				require.NotNil(t, q)
				assert.Equal(t, question.Fallback(d), *q)
				assert.Equal(t, SourceFallback, src)
				assert.Equal(t, tt.wantReason, reason)
				assert.Equal(t, 1, mock.CallCount())

				entry := hook.LastEntry()
				require.NotNil(t, entry)
				assert.Equal(t, tt.wantLevel, entry.Level)
				assert.Equal(t, d.String(), entry.Data["difficulty"])
				assert.Equal(t, tt.wantReason, entry.Data["reason"])
				assert.NotNil(t, entry.Data[logrus.ErrorKey])
			})
		}
	}
}

func TestGetQuestion_NilResponseFallsBack(t *testing.T) {
	p := providerFunc(func(context.Context, llm.Request) (*llm.Response, error) {
		return nil, nil
	})
	svc, hook := newTestService(t, p)

	for _, d := range question.Difficulties() {
		q, src, reason := svc.GetQuestionWithSource(context.Background(), d)

		require.NotNil(t, q)
		assert.Equal(t, question.Fallback(d), *q)
		assert.Equal(t, SourceFallback, src)
		assert.Equal(t, ReasonGeneration, reason)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.ErrorLevel, entry.Level)
		assert.Equal(t, "invalid_response", entry.Data["error_kind"])
	}
}

func TestGetQuestion_NoProviderMakesNoCalls(t *testing.T) {
	for _, d := range question.Difficulties() {
		t.Run(d.String(), func(t *testing.T) {
			svc, hook := newTestService(t, nil)
			assert.False(t, svc.Online())

			q, src, reason := svc.GetQuestionWithSource(context.Background(), d)

			assert.Equal(t, question.Fallback(d), *q)
			assert.Equal(t, SourceFallback, src)
			assert.Equal(t, ReasonNoProvider, reason)

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, logrus.DebugLevel, entry.Level)
		})
	}
}

func TestGetQuestion_OfflineEasy(t *testing.T) {
	svc := New(nil, DefaultConfig(), nil)

	q := svc.GetQuestion(context.Background(), question.Easy)

	assert.Equal(t, "You are rolling a single standard six-sided die.", q.Scenario)
	assert.True(t, strings.Contains(q.Question, "rolling a 4"))
	texts := make([]string, len(q.Options))
	for i, o := range q.Options {
		texts[i] = o.Text
	}
	assert.Equal(t, []string{"1/6", "1/3", "1/2", "2/3"}, texts)
	assert.Equal(t, 0, q.CorrectIndex())
}

func TestGetQuestion_FallbackIsFreshCopy(t *testing.T) {
	svc := New(nil, DefaultConfig(), nil)

	first := svc.GetQuestion(context.Background(), question.Easy)
	first.Options[0].Text = "mutated"

	second := svc.GetQuestion(context.Background(), question.Easy)
	assert.Equal(t, "1/6", second.Options[0].Text)
}

func TestGetQuestion_ConcurrentCalls(t *testing.T) {
	mock := llm.NewMockProvider()
	for i := 0; i < 8; i++ {
		mock.AddResponse(llm.MockResponse{Content: validQuestionJSON()})
	}
	svc := New(mock, DefaultConfig(), nil)

	done := make(chan Source, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, src, _ := svc.GetQuestionWithSource(context.Background(), question.Medium)
			done <- src
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, SourceGenerated, <-done)
	}
	assert.Equal(t, 8, mock.CallCount())
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "generated", SourceGenerated.String())
	assert.Equal(t, "fallback", SourceFallback.String())
}

// providerFunc adapts a function to llm.Provider.
type providerFunc func(ctx context.Context, req llm.Request) (*llm.Response, error)

func (f providerFunc) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	return f(ctx, req)
}

func (f providerFunc) ModelID() string { return "func" }
