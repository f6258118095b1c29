package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/probace/internal/router"
	"github.com/abhisek/probace/internal/screen"
	"github.com/abhisek/probace/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	rollEnd      = 1200 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

// Tagline is shown under the banner.
const Tagline = "Test your intuition and knowledge of probability."

// restingFace is the die face shown once the roll has settled.
const restingFace = 6

type tickMsg time.Time

// WelcomeScreen shows a rolling-die splash before handing over to the
// screen produced by next. Any key skips ahead.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned || w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	nextScreen := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: nextScreen}
	}
}

// face returns the die face to draw: tumbling while rolling, then resting.
func (w *WelcomeScreen) face() int {
	if w.elapsed < rollEnd {
		return w.tickCount%6 + 1
	}
	return restingFace
}

func (w *WelcomeScreen) View(width, height int) string {
	dieColor := theme.Secondary
	if w.elapsed >= rollEnd {
		dieColor = theme.Primary
	}
	sections := []string{
		lipgloss.NewStyle().Foreground(dieColor).Render(renderDie(w.face())),
	}

	if w.elapsed >= rollEnd {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(Tagline),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	content := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Render(strings.Join(sections, "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
