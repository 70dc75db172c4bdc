package repository

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"outlookengine/internal/domain"
)

// ParseSynthesisResponse decodes a synthesizer reply. The reply may be
// wrapped in a markdown code fence. Anything that is not a JSON object
// carrying should_update and reasoning is rejected, as is an
// out-of-range sentiment or confidence.
func ParseSynthesisResponse(raw string) (*domain.SynthesisResponse, error) {
	body := stripCodeFence(raw)

	keys := map[string]json.RawMessage{}
	if err := json.Unmarshal([]byte(body), &keys); err != nil {
		return nil, fmt.Errorf("failed to parse synthesis response: %w", err)
	}
	for _, required := range []string{"should_update", "reasoning"} {
		if _, ok := keys[required]; !ok {
			return nil, fmt.Errorf("failed to parse synthesis response: missing %s", required)
		}
	}

	out := domain.SynthesisResponse{}
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return nil, fmt.Errorf("failed to parse synthesis response: %w", err)
	}

	if out.ChangesSummary == nil {
		out.ChangesSummary = []string{}
	}

	if !out.ShouldUpdate {
		return &domain.SynthesisResponse{
			ShouldUpdate:   false,
			Reasoning:      out.Reasoning,
			ChangesSummary: []string{},
		}, nil
	}

	if out.UpdatedSentiment != nil {
		s, err := domain.ParseSentiment(string(*out.UpdatedSentiment))
		if err != nil {
			return nil, fmt.Errorf("failed to parse synthesis response: %w", err)
		}
		out.UpdatedSentiment = &s
	}
	if out.UpdatedConfidence != nil {
		c := *out.UpdatedConfidence
		if math.IsNaN(c) || c < 0 || c > 100 {
			return nil, fmt.Errorf("failed to parse synthesis response: confidence %v outside [0, 100]", c)
		}
	}

	return &out, nil
}

func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// drop the language tag, if any
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
