package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/probace/internal/question"
	"github.com/abhisek/probace/internal/questiongen"
	"github.com/abhisek/probace/internal/ui/components"
)

var questionCmd = &cobra.Command{
	Use:   "question",
	Short: "Print a single question without starting the TUI",
	Long: `Provision one question and print it with its answer and explanation.

Useful for checking the configured provider and prompt. Falls back to the
built-in question exactly as the quiz does.`,
	RunE: runQuestion,
}

func init() {
	questionCmd.Flags().StringP("difficulty", "d", string(question.Medium), "Easy, Medium or Hard")
	questionCmd.Flags().Bool("json", false, "Print the question as JSON")
}

func runQuestion(cmd *cobra.Command, args []string) error {
	diffVal, _ := cmd.Flags().GetString("difficulty")
	asJSON, _ := cmd.Flags().GetBool("json")

	d, err := question.ParseDifficulty(diffVal)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd, os.Stderr)
	if err != nil {
		return err
	}

	svc, closeFn, err := newQuestionService(cmd, log)
	if err != nil {
		return err
	}
	defer closeFn()

	q, src, _ := svc.GetQuestionWithSource(cmd.Context(), d)

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(q)
	}
	printQuestion(out, d, src, q)
	return nil
}

// printQuestion writes q as plain text with the correct option marked.
func printQuestion(w io.Writer, d question.Difficulty, src questiongen.Source, q *question.ProbabilityQuestion) {
	sep := strings.Repeat("─", 60)

	fmt.Fprintf(w, "Difficulty: %s (%s)\n", d, src)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, q.Scenario)
	fmt.Fprintln(w)
	fmt.Fprintln(w, q.Question)
	fmt.Fprintln(w)
	for i, opt := range q.Options {
		mark := " "
		if opt.IsCorrect {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %s. %s\n", mark, components.OptionLabel(i), opt.Text)
	}
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, q.Explanation)
}
