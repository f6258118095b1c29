package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/probace/internal/app"
	"github.com/abhisek/probace/internal/llm"
	"github.com/abhisek/probace/internal/question"
	"github.com/abhisek/probace/internal/questiongen"
	"github.com/abhisek/probace/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the probability quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, _ := cmd.Flags().GetString("difficulty")
		return runPlay(cmd, d)
	},
}

func init() {
	playCmd.Flags().StringP("difficulty", "d", "", "Start a game right away: Easy, Medium or Hard")
}

// runPlay wires the store, provider and provisioning service, then launches
// the TUI. An empty difficulty shows the intro and difficulty picker.
func runPlay(cmd *cobra.Command, difficulty string) error {
	var d question.Difficulty
	if difficulty != "" {
		var err error
		if d, err = question.ParseDifficulty(difficulty); err != nil {
			return err
		}
	}

	logFile, err := openLogFile()
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	log, err := newLogger(cmd, logFile)
	if err != nil {
		return err
	}

	svc, closeFn, err := newQuestionService(cmd, log)
	if err != nil {
		return err
	}
	defer closeFn()

	if !svc.Online() {
		fmt.Fprintln(os.Stderr, "No LLM API key found; using built-in questions.")
	}

	return app.Run(app.Options{
		Questions:  svc,
		Online:     svc.Online(),
		Difficulty: d,
		Context:    cmd.Context(),
	})
}

// newQuestionService opens the event store and builds the provisioning
// service. A missing credential yields an offline service rather than an
// error. The returned func releases the store.
func newQuestionService(cmd *cobra.Command, log logrus.FieldLogger) (*questiongen.Service, func(), error) {
	closeFn := func() {}

	var events store.EventRepo = store.NopEventRepo{}
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		var st *store.Store
		st, err = store.Open(dbPath)
		if err == nil {
			events = st.EventRepo()
			closeFn = func() { _ = st.Close() }
		}
	}
	if err != nil {
		log.WithError(err).Warn("event store unavailable, LLM requests will not be recorded")
	}

	configPath, err := resolveConfigPath(cmd)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("resolve config path: %w", err)
	}

	cfg := questiongen.DefaultConfig()
	provider, llmCfg, err := llm.NewProviderFromConfigFile(cmd.Context(), configPath, events, log)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		log.Info("no LLM provider configured, serving offline questions")
		provider = nil
	case err != nil:
		closeFn()
		return nil, nil, fmt.Errorf("LLM provider: %w", err)
	default:
		cfg.Timeout = llmCfg.Timeout
		log.WithFields(logrus.Fields{
			"provider": llmCfg.Provider,
			"config":   configPath,
		}).Debug("LLM provider ready")
	}

	return questiongen.New(provider, cfg, log), closeFn, nil
}
