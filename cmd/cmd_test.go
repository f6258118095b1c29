package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/probace/internal/question"
	"github.com/abhisek/probace/internal/questiongen"
	"github.com/abhisek/probace/internal/store"
)

func TestPrintQuestionMarksCorrectOption(t *testing.T) {
	q := question.Fallback(question.Easy)
	var buf bytes.Buffer

	printQuestion(&buf, question.Easy, questiongen.SourceFallback, &q)
	out := buf.String()

	assert.Contains(t, out, "Difficulty: Easy (fallback)")
	assert.Contains(t, out, q.Scenario)
	assert.Contains(t, out, q.Question)
	assert.Contains(t, out, q.Explanation)

	marked := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "* ") {
			marked++
		}
	}
	assert.Equal(t, 1, marked)

	correct := q.Options[q.CorrectIndex()]
	assert.Contains(t, out, "* "+"ABCD"[q.CorrectIndex():q.CorrectIndex()+1]+". "+correct.Text)
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0012", formatCost(0.0012))
	assert.Equal(t, "$1.50", formatCost(1.5))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
}

func seedEvents(t *testing.T, dbPath string) {
	t.Helper()
	s, err := store.Open(dbPath)
	require.NoError(t, err)
	defer s.Close()

	repo := s.EventRepo()
	ctx := context.Background()
	require.NoError(t, repo.AppendLLMRequest(ctx, store.LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "question-gen",
		SessionID: "s1", InputTokens: 300, OutputTokens: 200, LatencyMs: 900, Success: true,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, store.LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "question-gen",
		SessionID: "s2", LatencyMs: 100, ErrorMessage: "rate limited",
	}))
}

func runRoot(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestLLMListAndView(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "probace.db")
	seedEvents(t, dbPath)

	out := runRoot(t, "llm", "list", "--db", dbPath, "--session", "s2", "--purpose", "", "--limit", "20")
	assert.Contains(t, out, "question-gen")
	assert.Contains(t, out, "✗")
	assert.NotContains(t, out, "✓")

	out = runRoot(t, "llm", "view", "1", "--db", dbPath)
	assert.Contains(t, out, "Session:   s1")
	assert.Contains(t, out, "Tokens:    300 in / 200 out")
}

func TestLLMStats(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "probace.db")
	seedEvents(t, dbPath)

	out := runRoot(t, "llm", "stats", "--db", dbPath)
	assert.Contains(t, out, "Usage by Purpose")
	assert.Contains(t, out, "question-gen")
	assert.Contains(t, out, "Estimated Cost (USD)")
	assert.Contains(t, out, "gemini-2.5-flash")
}

func TestLLMStatsEmpty(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "probace.db")

	out := runRoot(t, "llm", "stats", "--db", dbPath)
	assert.Contains(t, out, "No LLM usage recorded yet.")
}
