package question

import (
	"fmt"
	"strings"
)

// Difficulty is the complexity label chosen by the player before a game.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Difficulties returns all difficulty levels in display order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty maps a case-insensitive label to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties() {
		if strings.EqualFold(strings.TrimSpace(s), string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
}

func (d Difficulty) String() string { return string(d) }

// OptionCount is the number of options every question carries.
const OptionCount = 4

// AnswerOption is one selectable answer.
type AnswerOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// ProbabilityQuestion is a single round's question. It is never mutated
// after it leaves the provisioning service.
type ProbabilityQuestion struct {
	// Scenario is the narrative setup, e.g. "You are rolling a die."
	Scenario string `json:"scenario"`

	// Question is the specific thing being asked about the scenario.
	Question string `json:"question"`

	// Options holds exactly 4 answers, exactly one of which is correct.
	Options []AnswerOption `json:"options"`

	// Explanation walks through the solution. Shown after answering.
	Explanation string `json:"explanation"`
}

// CorrectIndex returns the index of the first correct option, or -1.
func (q *ProbabilityQuestion) CorrectIndex() int {
	for i, o := range q.Options {
		if o.IsCorrect {
			return i
		}
	}
	return -1
}
