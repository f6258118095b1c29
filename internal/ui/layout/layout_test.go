package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Easy game", "Score 2 / 3", 100)
	for _, want := range []string{AppName, "Easy game", "Score 2 / 3"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
	if w := lipgloss.Width(h); w != 100 {
		t.Errorf("header width = %d, want 100", w)
	}
}

func TestRenderHeader_NoTitle(t *testing.T) {
	h := RenderHeader("", "", 80)
	if strings.Contains(h, "›") {
		t.Errorf("header without title should not show a separator: %q", h)
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{
		{Key: "Esc", Description: "End game"},
		{Key: "Enter", Description: "Submit"},
	}, 80)
	for _, want := range []string{"Esc", "End game", "Enter", "Submit", "·"} {
		if !strings.Contains(f, want) {
			t.Errorf("footer missing %q", want)
		}
	}
}

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderMinSizeMessage(t *testing.T) {
	msg := RenderMinSizeMessage(40, 10)
	if !strings.Contains(msg, "Terminal too small") || !strings.Contains(msg, "have 40 x 10") {
		t.Errorf("unexpected message:\n%s", msg)
	}
}

func TestRenderFrameFillsHeight(t *testing.T) {
	frame := RenderFrame("HEADER", "body", "FOOTER", 40, 10)
	lines := strings.Split(frame, "\n")
	if len(lines) != 10 {
		t.Fatalf("frame has %d lines, want 10", len(lines))
	}
	if strings.TrimSpace(lines[0]) != "HEADER" || strings.TrimSpace(lines[9]) != "FOOTER" {
		t.Errorf("unexpected frame layout:\n%s", frame)
	}
	if strings.TrimSpace(lines[1]) != "body" {
		t.Errorf("body should follow the header, got %q", lines[1])
	}
}
