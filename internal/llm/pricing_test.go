package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model     string
		wantInput float64
	}{
		{"gemini-2.5-flash", 0.3},
		{"models/gemini-2.5-flash", 0.3},
		{"google/gemini-2.5-flash", 0.3},
		{"gpt-4o-mini", 0.15},
		{"gpt-4o-mini-2024-07-18", 0.15},
		{"claude-haiku-4-5-20251001", 1},
		{"claude-sonnet-4-20250514", 3},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			c := LookupCost(tt.model)
			require.NotNil(t, c)
			assert.Equal(t, tt.wantInput, c.InputPerMTok)
		})
	}

	assert.Nil(t, LookupCost("mock"))
	assert.Nil(t, LookupCost(""))
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 0.3, OutputPerMTok: 2.5}
	assert.InDelta(t, 0.0008, c.Cost(1000, 200), 1e-12)
	assert.Zero(t, c.Cost(0, 0))
}
