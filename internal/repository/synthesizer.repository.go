package repository

import (
	"context"
	"fmt"
	"outlookengine/internal/domain"
)

// SynthesizerRepository proposes a revision of a thesis given the
// weighted evidence in the request. Implementations must honor ctx
// cancellation; the caller always applies a deadline.
type SynthesizerRepository interface {
	ProposeRevision(ctx context.Context, req domain.SynthesisRequest) (*domain.SynthesisResponse, error)
}

const (
	SynthesizerProviderGpt    = "gpt"
	SynthesizerProviderOpenAI = "openai"
)

func NewSynthesizerRepository(provider, apiKey, model string) (SynthesizerRepository, error) {
	switch provider {
	case SynthesizerProviderGpt, "":
		return NewGptSynthesizerRepository(apiKey)
	case SynthesizerProviderOpenAI:
		return NewOpenAISynthesizerRepository(apiKey, model), nil
	}
	return nil, fmt.Errorf("unknown synthesizer provider %q", provider)
}

const synthesizerSystemPrompt = `
You maintain a standing macro outlook for a single time horizon. You will be given the current thesis and a ranked list of new evidence, each item with a weight between 0 and 1. Higher weight means more relevant, more recent and from a more credible source.

Decide whether the evidence justifies revising the thesis. Do not revise on weak or redundant evidence.

Respond with a single JSON object and nothing else:
{
  "should_update": boolean,
  "reasoning": string,
  "changes_summary": [string],
  "updated_title": string or null,
  "updated_thesis_intro": string or null,
  "updated_thesis_points": [{"heading": string, "content": string}] or null,
  "updated_positioning": [string] or null,
  "updated_key_themes": [string] or null,
  "updated_sentiment": "bullish" | "bearish" | "cautious" | "neutral" or null,
  "updated_confidence": number between 0 and 100 or null
}

Use null for any field that should stay as it is. When should_update is false, every updated_ field must be null.
`
