package integration_tests

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"outlookengine/internal/domain"
	"outlookengine/internal/repository"
)

// NewCannedSynthesizerRepository returns a synthesizer that needs no
// network. It adopts the heaviest evidence item's sentiment and themes,
// and sets confidence from that item's weight. Replies go through the
// same parser as the real adapters.
func NewCannedSynthesizerRepository() repository.SynthesizerRepository {
	return cannedSynthesizerHandler{}
}

type cannedSynthesizerHandler struct{}

func (m cannedSynthesizerHandler) ProposeRevision(ctx context.Context, req domain.SynthesisRequest) (*domain.SynthesisResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reply := map[string]interface{}{
		"should_update": false,
		"reasoning":     "no evidence to act on",
	}
	if len(req.Evidence) > 0 {
		top := req.Evidence[0]
		reply = map[string]interface{}{
			"should_update":      true,
			"reasoning":          fmt.Sprintf("adopting view of %s", top.Evidence.SourceName),
			"changes_summary":    []string{fmt.Sprintf("sentiment %s -> %s", req.Current.Sentiment, top.Evidence.Sentiment)},
			"updated_sentiment":  top.Evidence.Sentiment,
			"updated_confidence": math.Round(top.Weight * 100),
			"updated_key_themes": top.Evidence.Themes,
		}
	}

	body, err := json.Marshal(reply)
	if err != nil {
		return nil, err
	}
	return repository.ParseSynthesisResponse("```json\n" + string(body) + "\n```")
}
