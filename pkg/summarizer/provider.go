package summarizer

import (
	"context"
	"fmt"
)

// Provider defines the contract for any text-summarization backend
type Provider interface {
	// Generate sends a single prompt to the model and returns the raw text
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service wraps a Provider with the never-fail contract expected by note
// creation: provider errors come back as a descriptive string in the
// summary slot instead of an error.
type Service struct {
	provider Provider
}

func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

func (s *Service) GenerateSummary(ctx context.Context, content string) string {
	if s.provider == nil {
		return "Summary unavailable: no AI provider configured"
	}

	prompt := fmt.Sprintf("Summarize the following note content in a few concise sentences:\n\n%s", content)

	out, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return fmt.Sprintf("Summary generation failed: %v", err)
	}
	return out
}
