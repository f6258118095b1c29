package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/probace/internal/router"
	"github.com/abhisek/probace/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "home" }
func (s *stubScreen) Title() string                          { return "Home" }

func newTestWelcomeWithCounter() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func TestDieRollsThenSettles(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()

	seen := map[int]bool{}
	for i := 0; i < 6; i++ {
		seen[w.face()] = true
		sendTicks(w, 1)
	}
	if len(seen) != 6 {
		t.Errorf("expected all six faces while rolling, saw %d", len(seen))
	}

	if strings.Contains(w.View(80, 24), Tagline) {
		t.Error("tagline should not be visible while rolling")
	}

	sendTicks(w, 6) // 1200ms
	if w.face() != restingFace {
		t.Errorf("face = %d after roll, want %d", w.face(), restingFace)
	}
	if !strings.Contains(w.View(80, 24), Tagline) {
		t.Error("tagline should be visible once the die settles")
	}
}

func TestTicksStopAfterAnimation(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()

	sendTicks(w, 40)
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}
	_, cmd := w.Update(tickMsg(time.Now()))
	if cmd != nil {
		t.Error("no further ticks expected once the animation is done")
	}
	if *callCount != 0 {
		t.Errorf("factory should not be called without keypress, got %d", *callCount)
	}
}

func TestKeypressEmitsReplace(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	if cmd == nil {
		t.Fatal("keypress during animation should trigger transition")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()

	w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestRenderDie(t *testing.T) {
	six := renderDie(6)
	if strings.Count(six, "●") != 6 {
		t.Errorf("face six has %d pips", strings.Count(six, "●"))
	}
	if strings.Count(renderDie(1), "●") != 1 {
		t.Error("face one should have one pip")
	}
}

func TestBannerCompact(t *testing.T) {
	if !strings.Contains(RenderBanner(30), bannerCompact) {
		t.Error("narrow terminals should get the compact banner")
	}
}
