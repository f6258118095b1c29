package questiongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/probace/internal/question"
)

const systemPrompt = `You are a brilliant probability and statistics professor. Your task is to create an engaging probability question for a university-level game.

Generate a JSON object that adheres to the provided schema.

Rules for the content:
1. The "scenario" should be relatable and interesting. Examples: coin flips, dice rolls, card draws, lottery odds, real-world events.
2. The "question" must be unambiguous.
3. There must be exactly four "options".
4. Exactly one of the "options" must have "isCorrect" set to true. The other three must be plausible but incorrect distractors.
5. The "explanation" should break down the problem step-by-step.
6. Adjust the complexity based on the requested difficulty level.`

// buildUserMessage asks for one new question at the given difficulty.
func buildUserMessage(d question.Difficulty) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Difficulty: %s\n", d)
	b.WriteString("\nNow, generate a new, unique question for the specified difficulty.")
	return b.String()
}
