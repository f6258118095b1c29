package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/probace/internal/llm"
	"github.com/abhisek/probace/internal/question"
)

// Purpose is the context label attached to every generation request.
const Purpose = "question-gen"

// Source tells whether a question came from the provider or the fallback.
type Source int

const (
	SourceGenerated Source = iota
	SourceFallback
)

func (s Source) String() string {
	if s == SourceGenerated {
		return "generated"
	}
	return "fallback"
}

// Failure reasons reported alongside a fallback question.
const (
	ReasonNoProvider = "no-provider"
	ReasonGeneration = "generation"
	ReasonParse      = "parse"
	ReasonValidation = "validation"
)

// Service provisions one question per call. A nil provider puts it in
// offline mode where every call returns the fallback question.
// Service holds no mutable state and is safe for concurrent use.
type Service struct {
	provider llm.Provider
	config   Config
	log      logrus.FieldLogger
}

// New creates a Service. provider and log may be nil.
func New(provider llm.Provider, cfg Config, log logrus.FieldLogger) *Service {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Service{provider: provider, config: cfg, log: log}
}

// Online reports whether a provider is configured.
func (s *Service) Online() bool {
	return s.provider != nil
}

// GetQuestion returns a question for d. It never fails: any problem with
// generation yields question.Fallback(d).
func (s *Service) GetQuestion(ctx context.Context, d question.Difficulty) *question.ProbabilityQuestion {
	q, _, _ := s.GetQuestionWithSource(ctx, d)
	return q
}

// GetQuestionWithSource is GetQuestion that also reports where the
// question came from and, for fallbacks, a short reason label.
func (s *Service) GetQuestionWithSource(ctx context.Context, d question.Difficulty) (*question.ProbabilityQuestion, Source, string) {
	log := s.log.WithField("difficulty", d.String())

	if s.provider == nil {
		log.WithField("reason", ReasonNoProvider).Debug("no LLM provider configured, using fallback question")
		return fallback(d), SourceFallback, ReasonNoProvider
	}

	q, reason, err := s.generate(ctx, d)
	if err != nil {
		entry := log.WithError(err).WithField("reason", reason)
		if reason == ReasonGeneration {
			entry = entry.WithField("error_kind", llm.ErrorKind(err))
		}
		var verr *ValidationError
		if errors.As(err, &verr) && verr.Kind == KindSemantic {
			entry.Warn("generated question does not have exactly one correct answer, using fallback")
		} else if reason == ReasonGeneration {
			entry.Error("error generating probability question, using fallback")
		} else {
			entry.Error("invalid question format received from provider, using fallback")
		}
		return fallback(d), SourceFallback, reason
	}

	return q, SourceGenerated, ""
}

// generate makes the single provider call and validates its output. The
// returned reason labels the stage that failed.
func (s *Service) generate(ctx context.Context, d question.Difficulty) (*question.ProbabilityQuestion, string, error) {
	ctx = llm.WithPurpose(ctx, Purpose)
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	req := llm.Request{
		System:      systemPrompt,
		Prompt:      buildUserMessage(d),
		Schema:      QuestionSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, ReasonGeneration, fmt.Errorf("LLM generation failed: %w", err)
	}
	if resp == nil {
		return nil, ReasonGeneration, fmt.Errorf("LLM generation failed: %w",
			&llm.ErrInvalidResponse{Err: errors.New("provider returned no response")})
	}

	var out questionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, ReasonParse, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	q, err := validate(&out)
	if err != nil {
		return nil, ReasonValidation, err
	}
	return q, "", nil
}

func fallback(d question.Difficulty) *question.ProbabilityQuestion {
	q := question.Fallback(d)
	return &q
}
