package l2_service

import (
	"strings"
	"testing"
	"time"

	"outlookengine/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestNewSynthesisRequest(t *testing.T) {
	publishedAt := time.Date(2025, 5, 31, 18, 30, 0, 0, time.UTC)
	current := domain.NewDefaultThesis(domain.HorizonShort)
	current.KeyThemes = []string{"Fed Policy", "Liquidity"}
	current.ThesisPoints = []domain.ThesisPoint{{Heading: "Rates", Content: "cuts are priced"}}

	e := newEvidence("Powell presser", 4.8, []string{"Fed Policy"}, publishedAt)
	e.SentimentScore = -0.25
	e.Platform = "Podcast"
	e.KeyQuotes = []string{"first", "second", "third"}
	e.Predictions = []domain.Prediction{{Claim: "two cuts this year", Timeframe: "12 months"}}
	evidence := []domain.WeightedEvidence{{Evidence: e, Weight: 0.904837}}

	t.Run("deterministic", func(t *testing.T) {
		a := NewSynthesisRequest(domain.HorizonShort, current, evidence)
		b := NewSynthesisRequest(domain.HorizonShort, current, evidence)
		require.Equal(t, a.Prompt, b.Prompt)
		require.Equal(t, a.Fingerprint, b.Fingerprint)
		require.Len(t, a.Fingerprint, 64)
		require.Equal(t, domain.HorizonShort, a.Horizon)
		require.Equal(t, evidence, a.Evidence)
	})

	t.Run("fixed formatting", func(t *testing.T) {
		prompt := RenderSynthesisPrompt(domain.HorizonShort, current, evidence)
		require.Contains(t, prompt, "HORIZON: short\n")
		require.Contains(t, prompt, "key themes: Fed Policy, Liquidity\n")
		require.Contains(t, prompt, "1. Rates: cuts are priced\n")
		require.Contains(t, prompt, "NEW EVIDENCE (1 items, mean weight 0.90)")
		require.Contains(t, prompt, "[1] weight 0.90 | source Macro Weekly (credibility 4.80) | platform Podcast | published 2025-05-31 | sentiment neutral (-0.25)")
		require.Contains(t, prompt, "- two cuts this year (12 months)\n")
		require.Contains(t, prompt, `- "first"`)
		require.Contains(t, prompt, `- "second"`)
	})

	t.Run("at most two quotes", func(t *testing.T) {
		prompt := RenderSynthesisPrompt(domain.HorizonShort, current, evidence)
		require.Contains(t, prompt, `- "first"`)
		require.Contains(t, prompt, `- "second"`)
		require.False(t, strings.Contains(prompt, `"third"`))
	})

	t.Run("fingerprint tracks content", func(t *testing.T) {
		a := NewSynthesisRequest(domain.HorizonShort, current, evidence)
		changed := current
		changed.Confidence = 70
		b := NewSynthesisRequest(domain.HorizonShort, changed, evidence)
		require.NotEqual(t, a.Fingerprint, b.Fingerprint)
	})
}
