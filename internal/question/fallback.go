package question

const dieScenario = "You are rolling a single standard six-sided die."

// fallbackTemplates maps each difficulty to its built-in question.
// Medium and Hard intentionally share the "greater than 4" template.
var fallbackTemplates = map[Difficulty]ProbabilityQuestion{
	Easy: {
		Scenario: dieScenario,
		Question: "What is the probability of rolling a 4?",
		Options: []AnswerOption{
			{Text: "1/6", IsCorrect: true},
			{Text: "1/3", IsCorrect: false},
			{Text: "1/2", IsCorrect: false},
			{Text: "2/3", IsCorrect: false},
		},
		Explanation: "A standard six-sided die has 6 faces (1, 2, 3, 4, 5, 6). " +
			"Each face has an equal probability of being rolled. There is only one face with a '4'. " +
			"Therefore, the probability is 1 (favorable outcome) out of 6 (total possible outcomes), which is 1/6.",
	},
	Medium: greaterThanFour,
	Hard:   greaterThanFour,
}

var greaterThanFour = ProbabilityQuestion{
	Scenario: dieScenario,
	Question: "What is the probability of rolling a number greater than 4?",
	Options: []AnswerOption{
		{Text: "1/6", IsCorrect: false},
		{Text: "1/3", IsCorrect: true},
		{Text: "1/2", IsCorrect: false},
		{Text: "2/3", IsCorrect: false},
	},
	Explanation: "A standard six-sided die has 6 faces. The numbers greater than 4 are 5 and 6. " +
		"So there are 2 favorable outcomes. The probability is 2 (favorable outcomes) out of 6 " +
		"(total possible outcomes), which simplifies to 1/3.",
}

// Fallback returns the built-in question for d. It never fails and performs
// no I/O. Any label other than Easy gets the "greater than 4" question.
func Fallback(d Difficulty) ProbabilityQuestion {
	tmpl, ok := fallbackTemplates[d]
	if !ok {
		tmpl = greaterThanFour
	}
	// Copy options so callers can't mutate the shared template.
	opts := make([]AnswerOption, len(tmpl.Options))
	copy(opts, tmpl.Options)
	tmpl.Options = opts
	return tmpl
}
