package play

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/probace/internal/game"
	"github.com/abhisek/probace/internal/llm"
	"github.com/abhisek/probace/internal/question"
	"github.com/abhisek/probace/internal/questiongen"
	"github.com/abhisek/probace/internal/router"
	"github.com/abhisek/probace/internal/screen"
	"github.com/abhisek/probace/internal/ui/layout"
	"github.com/abhisek/probace/internal/ui/theme"
)

// QuestionSource provisions questions. *questiongen.Service satisfies it.
type QuestionSource interface {
	GetQuestionWithSource(ctx context.Context, d question.Difficulty) (*question.ProbabilityQuestion, questiongen.Source, string)
}

// PlayScreen runs one game: fetch a question, take an answer, show the
// explanation, repeat until the player leaves.
type PlayScreen struct {
	game    *game.Game
	source  QuestionSource
	ctx     context.Context
	spinner spinner.Model
	reason  string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.StatusProvider = (*PlayScreen)(nil)

// New creates a PlayScreen for a fresh game at difficulty d. Requests made
// through ctx are tagged with the game's session ID.
func New(ctx context.Context, source QuestionSource, d question.Difficulty) *PlayScreen {
	g := game.New(d)
	return &PlayScreen{
		game:   g,
		source: source,
		ctx:    llm.WithSession(ctx, g.SessionID),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(theme.Selected),
		),
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	return s.nextQuestion()
}

func (s *PlayScreen) Title() string {
	return fmt.Sprintf("%s game", s.game.Difficulty)
}

func (s *PlayScreen) Status() string {
	return fmt.Sprintf("Score %d / %d", s.game.Score(), s.game.Answered())
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	switch s.game.Phase() {
	case game.PhaseAnswering:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "A-D", Description: "Pick"},
			{Key: "Enter", Description: "Submit"},
			{Key: "E/Esc", Description: "End game"},
		}
	case game.PhaseFeedback:
		return []layout.KeyHint{
			{Key: "Enter/N", Description: "Next question"},
			{Key: "E/Esc", Description: "End game"},
		}
	default:
		return []layout.KeyHint{
			{Key: "E/Esc", Description: "End game"},
		}
	}
}

// Game exposes the underlying game state.
func (s *PlayScreen) Game() *game.Game {
	return s.game
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		if s.game.Present(msg.Round, msg.Question, msg.Source) {
			s.reason = msg.Reason
		}
		return s, nil

	case spinner.TickMsg:
		if s.game.Phase() != game.PhaseLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *PlayScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc", "e", "q":
		return s, s.endGame()
	}

	switch s.game.Phase() {
	case game.PhaseAnswering:
		switch key {
		case "up", "k", "left", "h":
			s.game.MoveSelection(-1)
		case "down", "j", "right", "l", "tab":
			s.game.MoveSelection(1)
		case "1", "2", "3", "4":
			s.game.Select(int(key[0] - '1'))
		case "a", "b", "c", "d":
			s.game.Select(int(key[0] - 'a'))
		case "enter", "space":
			s.game.Submit()
		}

	case game.PhaseFeedback:
		switch key {
		case "enter", "n", "space":
			return s, s.nextQuestion()
		}
	}

	return s, nil
}

// nextQuestion starts loading a new round and fetches its question in the
// background.
func (s *PlayScreen) nextQuestion() tea.Cmd {
	round := s.game.BeginLoading()
	s.reason = ""
	ctx, d, src := s.ctx, s.game.Difficulty, s.source
	fetch := func() tea.Msg {
		q, from, reason := src.GetQuestionWithSource(ctx, d)
		return questionReadyMsg{Round: round, Question: q, Source: from, Reason: reason}
	}
	return tea.Batch(fetch, s.spinner.Tick)
}

// endGame pops back to the previous screen, handing it the final tally.
func (s *PlayScreen) endGame() tea.Cmd {
	summary := s.game.Summary()
	return func() tea.Msg {
		return router.PopScreenMsg{Result: summary}
	}
}
