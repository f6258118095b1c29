package home

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/probace/internal/game"
	"github.com/abhisek/probace/internal/question"
	"github.com/abhisek/probace/internal/router"
	"github.com/abhisek/probace/internal/screen"
	"github.com/abhisek/probace/internal/ui/components"
	"github.com/abhisek/probace/internal/ui/layout"
)

// GameFactory builds the game screen for a chosen difficulty.
type GameFactory func(d question.Difficulty) screen.Screen

// HomeScreen lets the player pick a difficulty and start a game.
type HomeScreen struct {
	menu     components.Menu
	levels   []question.Difficulty
	online   bool
	lastGame *game.Summary
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. online reports whether questions will be
// generated or served from the offline set.
func New(newGame GameFactory, online bool, initial question.Difficulty) *HomeScreen {
	levels := question.Difficulties()

	items := make([]components.MenuItem, 0, len(levels)+1)
	for _, d := range levels {
		items = append(items, components.MenuItem{
			Label: d.String(),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: newGame(d)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	menu := components.NewMenu(items)
	for i, d := range levels {
		if d == initial {
			menu.Select(i)
		}
	}

	return &HomeScreen{
		menu:   menu,
		levels: levels,
		online: online,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Choose your difficulty"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "1-3", Description: "Quick start"},
		{Key: "Enter", Description: "Play"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Resume records the summary of the game that just ended.
func (h *HomeScreen) Resume(result any) tea.Cmd {
	if s, ok := result.(game.Summary); ok {
		h.lastGame = &s
	}
	return nil
}

// Selected returns the highlighted difficulty, or "" when Quit is highlighted.
func (h *HomeScreen) Selected() question.Difficulty {
	if h.menu.Selected < len(h.levels) {
		return h.levels[h.menu.Selected]
	}
	return ""
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "1", "2", "3":
			h.menu.Select(int(kmsg.String()[0] - '1'))
			return h, h.menu.Items[h.menu.Selected].Action()
		case "q":
			return h, tea.Quit
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// lastGameLine formats the previous game's result, or "".
func (h *HomeScreen) lastGameLine() string {
	if h.lastGame == nil {
		return ""
	}
	return fmt.Sprintf("Last game (%s): %d / %d correct",
		h.lastGame.Difficulty, h.lastGame.Score, h.lastGame.Answered)
}
