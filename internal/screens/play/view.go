package play

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/probace/internal/game"
	"github.com/abhisek/probace/internal/questiongen"
	"github.com/abhisek/probace/internal/ui/components"
	"github.com/abhisek/probace/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{s.renderInfoLine(cw)}

	switch s.game.Phase() {
	case game.PhaseLoading:
		sections = append(sections, s.renderLoading(cw))
	case game.PhaseAnswering:
		sections = append(sections,
			s.renderQuestion(cw),
			s.renderOptions(cw),
			s.renderSubmit(cw),
		)
	case game.PhaseFeedback:
		sections = append(sections,
			s.renderQuestion(cw),
			s.renderOptions(cw),
			s.renderFeedback(cw),
		)
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

// renderInfoLine shows the difficulty badge, the score bar and, for
// offline questions, a small tag.
func (s *PlayScreen) renderInfoLine(cw int) string {
	d := s.game.Difficulty
	badge := theme.Badge.Background(theme.DifficultyColor(d)).Render(strings.ToUpper(d.String()))

	tag := ""
	if s.game.Phase() != game.PhaseLoading && s.game.Source() == questiongen.SourceFallback {
		tag = "  " + theme.Hint.Render("offline question")
	}

	barWidth := cw - lipgloss.Width(badge) - lipgloss.Width(tag) - 2
	bar := components.ScoreBar{
		Score:    s.game.Score(),
		Answered: s.game.Answered(),
		Width:    barWidth,
	}
	return badge + "  " + bar.View() + tag
}

func (s *PlayScreen) renderLoading(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n" + s.spinner.View() + " Generating a new scenario...\n")
}

// renderQuestion renders the scenario and question inside a card.
func (s *PlayScreen) renderQuestion(cw int) string {
	q := s.game.Question()
	inner := cw - 6 // card border and padding

	var b strings.Builder
	b.WriteString(theme.Label.Render("SCENARIO"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(inner).Foreground(theme.TextDim).Render(q.Scenario))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(inner).Foreground(theme.Text).Bold(true).Render(q.Question))

	return components.Card(b.String(), cw)
}

func (s *PlayScreen) renderOptions(cw int) string {
	q := s.game.Question()
	texts := make([]string, len(q.Options))
	for i, o := range q.Options {
		texts[i] = o.Text
	}

	mc := components.NewMultiChoice(texts, q.CorrectIndex(), cw)
	mc.Selected = s.game.Selected()
	mc.Revealed = s.game.Phase() == game.PhaseFeedback
	return mc.View()
}

func (s *PlayScreen) renderSubmit(cw int) string {
	b := components.NewButton("Submit Answer", 18)
	if s.game.Selected() < 0 {
		b.Disabled = true
	} else {
		b.Focused = true
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Right).Render(b.View())
}

// renderFeedback shows the verdict, the explanation and the next action.
func (s *PlayScreen) renderFeedback(cw int) string {
	verdict := theme.Incorrect.Render("Incorrect!")
	if s.game.LastCorrect() {
		verdict = theme.Correct.Render("Correct!")
	}

	explanation := lipgloss.NewStyle().
		Width(cw - 6).
		Foreground(theme.TextDim).
		Render(s.game.Question().Explanation)

	next := components.NewButton("Next Question", 18)
	next.Color = theme.Secondary
	next.Focused = true
	end := components.NewButton("End Game", 14)
	end.Color = theme.Muted

	buttons := lipgloss.JoinHorizontal(lipgloss.Top, end.View(), " ", next.View())

	return components.Card(verdict+"\n"+explanation, cw) + "\n" +
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Right).Render(buttons)
}
