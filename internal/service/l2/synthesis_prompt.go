package l2_service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"outlookengine/internal/domain"
	"outlookengine/internal/util"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

const maxQuotesPerEvidence = 2

// NewSynthesisRequest renders the prompt for a horizon and fingerprints
// it. Equal inputs always produce the same prompt and fingerprint.
func NewSynthesisRequest(horizon domain.Horizon, current domain.Thesis, evidence []domain.WeightedEvidence) domain.SynthesisRequest {
	prompt := RenderSynthesisPrompt(horizon, current, evidence)
	sum := sha256.Sum256([]byte(prompt))

	return domain.SynthesisRequest{
		Horizon:     horizon,
		Current:     current,
		Evidence:    evidence,
		Prompt:      prompt,
		Fingerprint: hex.EncodeToString(sum[:]),
	}
}

func fixed2(f float64) string {
	return decimal.NewFromFloat(f).StringFixed(2)
}

func RenderSynthesisPrompt(horizon domain.Horizon, current domain.Thesis, evidence []domain.WeightedEvidence) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("HORIZON: %s\n\n", horizon))

	sb.WriteString("CURRENT THESIS\n")
	sb.WriteString(fmt.Sprintf("title: %s\n", current.Title))
	sb.WriteString(fmt.Sprintf("subtitle: %s\n", current.Subtitle))
	sb.WriteString(fmt.Sprintf("sentiment: %s\n", current.Sentiment))
	sb.WriteString(fmt.Sprintf("confidence: %d\n", current.Confidence))
	if !current.LastUpdated.IsZero() {
		sb.WriteString(fmt.Sprintf("last updated: %s\n", util.DateString(current.LastUpdated)))
	}
	sb.WriteString(fmt.Sprintf("intro: %s\n", current.Intro))
	sb.WriteString("thesis points:\n")
	for i, p := range current.ThesisPoints {
		sb.WriteString(fmt.Sprintf("%d. %s: %s\n", i+1, p.Heading, p.Content))
	}
	sb.WriteString("positioning:\n")
	for _, p := range current.Positioning {
		sb.WriteString(fmt.Sprintf("- %s\n", p))
	}
	sb.WriteString(fmt.Sprintf("key themes: %s\n", strings.Join(current.KeyThemes, ", ")))

	weights := make([]float64, 0, len(evidence))
	for _, e := range evidence {
		weights = append(weights, e.Weight)
	}
	// Mean only errors on empty input
	meanWeight, err := stats.Mean(weights)
	if err != nil {
		meanWeight = 0
	}
	sb.WriteString(fmt.Sprintf("\nNEW EVIDENCE (%d items, mean weight %s)\n", len(evidence), fixed2(meanWeight)))

	for i, we := range evidence {
		e := we.Evidence
		sb.WriteString(fmt.Sprintf(
			"\n[%d] weight %s | source %s (credibility %s) | platform %s | published %s | sentiment %s (%s)\n",
			i+1,
			fixed2(we.Weight),
			e.SourceName,
			fixed2(e.SourceWeightedScore),
			e.Platform,
			util.DateString(e.PublishedAt),
			e.Sentiment,
			fixed2(e.SentimentScore),
		))
		sb.WriteString(fmt.Sprintf("title: %s\n", e.Title))
		sb.WriteString(fmt.Sprintf("summary: %s\n", e.Summary))
		sb.WriteString(fmt.Sprintf("themes: %s\n", strings.Join(e.Themes, ", ")))
		sb.WriteString(fmt.Sprintf("assets: %s\n", strings.Join(e.Assets, ", ")))
		if len(e.Predictions) > 0 {
			sb.WriteString("predictions:\n")
			for _, p := range e.Predictions {
				if p.Timeframe != "" {
					sb.WriteString(fmt.Sprintf("- %s (%s)\n", p.Claim, p.Timeframe))
				} else {
					sb.WriteString(fmt.Sprintf("- %s\n", p.Claim))
				}
			}
		}
		quotes := e.KeyQuotes
		if len(quotes) > maxQuotesPerEvidence {
			quotes = quotes[:maxQuotesPerEvidence]
		}
		if len(quotes) > 0 {
			sb.WriteString("quotes:\n")
			for _, q := range quotes {
				sb.WriteString(fmt.Sprintf("- %q\n", q))
			}
		}
	}

	return sb.String()
}
