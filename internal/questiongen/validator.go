package questiongen

import (
	"fmt"

	"github.com/abhisek/probace/internal/question"
)

// ValidationKind classifies a rejected response.
type ValidationKind string

const (
	// KindSchema means a required field is missing or empty, or the option
	// count is wrong.
	KindSchema ValidationKind = "schema"

	// KindSemantic means the shape is right but not exactly one option is
	// marked correct.
	KindSemantic ValidationKind = "semantic"
)

// ValidationError describes why a generated question was rejected.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation: %s", e.Kind, e.Message)
}

// questionOutput is the raw LLM response before validation. Pointer fields
// distinguish an absent field from an empty one.
type questionOutput struct {
	Scenario    *string        `json:"scenario"`
	Question    *string        `json:"question"`
	Options     []optionOutput `json:"options"`
	Explanation *string        `json:"explanation"`
}

type optionOutput struct {
	Text      *string `json:"text"`
	IsCorrect *bool   `json:"isCorrect"`
}

// validate converts out into a ProbabilityQuestion, rejecting anything a
// player shouldn't see.
func validate(out *questionOutput) (*question.ProbabilityQuestion, error) {
	if isBlank(out.Scenario) {
		return nil, &ValidationError{Kind: KindSchema, Message: "scenario is missing or empty"}
	}
	if isBlank(out.Question) {
		return nil, &ValidationError{Kind: KindSchema, Message: "question is missing or empty"}
	}
	if isBlank(out.Explanation) {
		return nil, &ValidationError{Kind: KindSchema, Message: "explanation is missing or empty"}
	}
	if len(out.Options) != question.OptionCount {
		return nil, &ValidationError{
			Kind:    KindSchema,
			Message: fmt.Sprintf("expected %d options, got %d", question.OptionCount, len(out.Options)),
		}
	}

	opts := make([]question.AnswerOption, 0, len(out.Options))
	correct := 0
	for i, o := range out.Options {
		if o.Text == nil || o.IsCorrect == nil {
			return nil, &ValidationError{
				Kind:    KindSchema,
				Message: fmt.Sprintf("option %d is missing text or isCorrect", i),
			}
		}
		if *o.IsCorrect {
			correct++
		}
		opts = append(opts, question.AnswerOption{Text: *o.Text, IsCorrect: *o.IsCorrect})
	}
	if correct != 1 {
		return nil, &ValidationError{
			Kind:    KindSemantic,
			Message: fmt.Sprintf("not exactly one correct answer (got %d)", correct),
		}
	}

	return &question.ProbabilityQuestion{
		Scenario:    *out.Scenario,
		Question:    *out.Question,
		Options:     opts,
		Explanation: *out.Explanation,
	}, nil
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}
