package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/probace/internal/ui/theme"
)

// MenuItem is one choice. Action runs when the item is chosen.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a keyboard-driven list with a cursor that skips disabled items.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu puts the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.move(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// Select moves the cursor to i if it names an enabled item.
func (m *Menu) Select(i int) {
	if m.enabled(i) {
		m.Selected = i
	}
}

func (m *Menu) enabled(i int) bool {
	return i >= 0 && i < len(m.Items) && !m.Items[i].Disabled
}

// move steps the cursor to the next enabled item in direction dir, staying
// put at either end.
func (m *Menu) move(dir int) {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if m.enabled(i) {
			m.Selected = i
			return
		}
	}
}

// Update moves the cursor on arrow/vi keys and runs the selected item's
// Action on enter or space.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k", "left", "h", "shift+tab":
		m.move(-1)
	case "down", "j", "right", "l", "tab":
		m.move(1)
	case "enter", "space":
		if m.enabled(m.Selected) && m.Items[m.Selected].Action != nil {
			return m, m.Items[m.Selected].Action()
		}
	}
	return m, nil
}

// View renders one line per item, used where bordered buttons do not fit.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			b.WriteString(theme.Faded.Render("    " + item.Label))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ " + item.Label))
		default:
			b.WriteString(theme.Unselected.Render("    " + item.Label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
