package definition

import (
	"context"
	"log"
	"time"
)

// Generator sends a prompt to the generation service and returns its raw text.
// Implementations are expected to constrain the output to ResultSchema.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Outcome describes one finished lookup. It never carries the generated text.
type Outcome struct {
	Word     string
	Policy   LanguagePolicy
	Err      error
	Duration time.Duration
	At       time.Time
}

func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Observer is notified after every lookup.
type Observer interface {
	Observe(ctx context.Context, o Outcome) error
}

// Service turns a word and a language policy into one generation call.
type Service struct {
	gen       Generator
	observers []Observer
	now       func() time.Time
}

func NewService(gen Generator, observers ...Observer) *Service {
	return &Service{
		gen:       gen,
		observers: observers,
		now:       time.Now,
	}
}

// Define returns the generated JSON text untouched, or the generator's error.
func (s *Service) Define(ctx context.Context, word string, policy LanguagePolicy) (string, error) {
	start := s.now()
	text, err := s.gen.Generate(ctx, BuildPrompt(word, policy))
	elapsed := s.now().Sub(start)

	if err != nil {
		log.Printf("[Definition] %q/%q failed after %d ms: %v", policy.Label(), word, elapsed.Milliseconds(), err)
	} else {
		log.Printf("[Definition] %q/%q answered in %d ms", policy.Label(), word, elapsed.Milliseconds())
	}

	s.notify(ctx, Outcome{
		Word:     word,
		Policy:   policy,
		Err:      err,
		Duration: elapsed,
		At:       start,
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

func (s *Service) notify(ctx context.Context, o Outcome) {
	for _, obs := range s.observers {
		if err := obs.Observe(ctx, o); err != nil {
			log.Printf("[Definition] WARNING: observer failed for %q: %v", o.Word, err)
		}
	}
}
