// Package game holds the state of one play-through: the chosen difficulty,
// the current question and the running score.
package game

import (
	"github.com/google/uuid"

	"github.com/abhisek/probace/internal/question"
	"github.com/abhisek/probace/internal/questiongen"
)

// Phase is the current phase of a round.
type Phase int

const (
	PhaseLoading   Phase = iota // Waiting for a question
	PhaseAnswering              // Question shown, awaiting a submitted choice
	PhaseFeedback               // Answer submitted, explanation shown
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseAnswering:
		return "answering"
	case PhaseFeedback:
		return "feedback"
	default:
		return "unknown"
	}
}

// Game tracks the runtime state of a single game. It is owned by the UI
// goroutine and is not safe for concurrent use.
type Game struct {
	// SessionID groups the LLM requests made during this game.
	SessionID string

	// Difficulty is fixed for the whole game.
	Difficulty question.Difficulty

	phase    Phase
	roundID  int
	current  *question.ProbabilityQuestion
	source   questiongen.Source
	selected int
	correct  bool

	score    int
	answered int
}

// New starts a game at difficulty d in the loading phase.
func New(d question.Difficulty) *Game {
	return &Game{
		SessionID:  uuid.NewString(),
		Difficulty: d,
		phase:      PhaseLoading,
		selected:   -1,
	}
}

// BeginLoading discards the current question and returns the id of the
// round being loaded. Only a Present call carrying this id is accepted.
func (g *Game) BeginLoading() int {
	g.roundID++
	g.phase = PhaseLoading
	g.current = nil
	g.selected = -1
	g.correct = false
	return g.roundID
}

// Present shows q for round id. It returns false and changes nothing if
// id is stale or the game is not loading.
func (g *Game) Present(id int, q *question.ProbabilityQuestion, src questiongen.Source) bool {
	if id != g.roundID || g.phase != PhaseLoading || q == nil {
		return false
	}
	g.current = q
	g.source = src
	g.phase = PhaseAnswering
	return true
}

// Select marks option i as the player's choice. Only valid while answering.
func (g *Game) Select(i int) bool {
	if g.phase != PhaseAnswering || i < 0 || i >= len(g.current.Options) {
		return false
	}
	g.selected = i
	return true
}

// MoveSelection moves the selection by delta, wrapping around. With no
// selection yet, it starts at the first option.
func (g *Game) MoveSelection(delta int) {
	if g.phase != PhaseAnswering {
		return
	}
	n := len(g.current.Options)
	if g.selected < 0 {
		g.selected = 0
		return
	}
	g.selected = ((g.selected+delta)%n + n) % n
}

// Submit scores the selected option. ok is false if there is nothing to
// submit.
func (g *Game) Submit() (correct bool, ok bool) {
	if g.phase != PhaseAnswering || g.selected < 0 {
		return false, false
	}
	g.correct = g.current.Options[g.selected].IsCorrect
	g.answered++
	if g.correct {
		g.score++
	}
	g.phase = PhaseFeedback
	return g.correct, true
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Question returns the current question, or nil while loading.
func (g *Game) Question() *question.ProbabilityQuestion { return g.current }

// Source reports where the current question came from.
func (g *Game) Source() questiongen.Source { return g.source }

// Selected returns the selected option index, or -1.
func (g *Game) Selected() int { return g.selected }

// LastCorrect reports whether the last submitted answer was correct.
func (g *Game) LastCorrect() bool { return g.correct }

// Score returns the number of correct answers.
func (g *Game) Score() int { return g.score }

// Answered returns the number of submitted answers.
func (g *Game) Answered() int { return g.answered }

// Summary is the final tally of a game.
type Summary struct {
	Difficulty question.Difficulty
	Score      int
	Answered   int
}

// Summary returns the current tally.
func (g *Game) Summary() Summary {
	return Summary{Difficulty: g.Difficulty, Score: g.score, Answered: g.answered}
}
