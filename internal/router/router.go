// Package router keeps the stack of screens: welcome or home at the bottom,
// a game pushed on top.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/probace/internal/screen"
)

// PushScreenMsg opens Screen above the active one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the active screen. Result is handed to the uncovered
// screen if it implements screen.Resumer.
type PopScreenMsg struct {
	Result any
}

// ReplaceScreenMsg swaps the active screen in place.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router owns the screen stack. The stack is never empty.
type Router struct {
	stack []screen.Screen
}

// New returns a router with root at the bottom of the stack.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) top() int { return len(r.stack) - 1 }

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the active screen and resumes the one below with result. The
// root screen is never popped.
func (r *Router) Pop(result any) tea.Cmd {
	if r.top() == 0 {
		return nil
	}
	r.stack[r.top()] = nil
	r.stack = r.stack[:r.top()]

	if res, ok := r.Active().(screen.Resumer); ok {
		return res.Resume(result)
	}
	return nil
}

// Replace swaps the active screen for s and returns its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[r.top()] = s
	return s.Init()
}

// Active returns the screen on top of the stack.
func (r *Router) Active() screen.Screen {
	return r.stack[r.top()]
}

// Depth returns the number of open screens.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop(msg.Result)
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	next, cmd := r.Active().Update(msg)
	r.stack[r.top()] = next
	return cmd
}

// View renders the active screen into width x height.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
