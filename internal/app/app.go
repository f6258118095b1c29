package app

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/probace/internal/question"
	"github.com/abhisek/probace/internal/router"
	"github.com/abhisek/probace/internal/screen"
	"github.com/abhisek/probace/internal/screens/home"
	"github.com/abhisek/probace/internal/screens/play"
	"github.com/abhisek/probace/internal/screens/welcome"
	"github.com/abhisek/probace/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	// Questions provisions a question per round.
	Questions play.QuestionSource

	// Online is false when no LLM provider is configured.
	Online bool

	// Difficulty, when set, skips the intro and starts a game right away.
	Difficulty question.Difficulty

	// Context is the parent of every question request. Defaults to
	// context.Background().
	Context context.Context
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	start  tea.Cmd
	width  int
	height int
}

// newAppModel builds the screen stack: the intro splash leading to the
// difficulty picker, or the picker with a game already pushed.
func newAppModel(opts Options) AppModel {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	newGame := func(d question.Difficulty) screen.Screen {
		return play.New(ctx, opts.Questions, d)
	}

	initial := question.Medium
	if opts.Difficulty != "" {
		initial = opts.Difficulty
	}
	newHome := func() screen.Screen {
		return home.New(newGame, opts.Online, initial)
	}

	if opts.Difficulty != "" {
		r := router.New(newHome())
		return AppModel{
			router: r,
			start:  r.Push(newGame(opts.Difficulty)),
		}
	}

	intro := welcome.New(newHome)
	return AppModel{
		router: router.New(intro),
		start:  intro.Init(),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.start
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	var status string
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	hints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if kp, ok := active.(screen.KeyHintProvider); ok {
		hints = kp.KeyHints()
	}

	header := layout.RenderHeader(active.Title(), status, m.width)
	footer := layout.RenderFooter(hints, m.width)
	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	return err
}
