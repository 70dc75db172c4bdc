package l3_service

import (
	"math"
	"time"

	"outlookengine/internal/domain"
)

// MergeThesis applies a synthesizer revision field by field. A nil
// field in the response leaves the current value in place; the result
// never shares slices with the response.
func MergeThesis(current domain.Thesis, resp domain.SynthesisResponse, now time.Time) domain.Thesis {
	merged := current

	if resp.UpdatedTitle != nil {
		merged.Title = *resp.UpdatedTitle
	}
	if resp.UpdatedThesisIntro != nil {
		merged.Intro = *resp.UpdatedThesisIntro
	}
	if resp.UpdatedThesisPoints != nil {
		merged.ThesisPoints = append([]domain.ThesisPoint{}, resp.UpdatedThesisPoints...)
	}
	if resp.UpdatedPositioning != nil {
		merged.Positioning = append([]string{}, resp.UpdatedPositioning...)
	}
	if resp.UpdatedKeyThemes != nil {
		merged.KeyThemes = append([]string{}, resp.UpdatedKeyThemes...)
	}
	if resp.UpdatedSentiment != nil {
		merged.Sentiment = *resp.UpdatedSentiment
	}
	if resp.UpdatedConfidence != nil {
		merged.Confidence = confidenceFromFloat(*resp.UpdatedConfidence)
	}

	merged.LastUpdated = now.UTC()

	return merged
}

func confidenceFromFloat(c float64) int {
	if math.IsNaN(c) {
		return 0
	}
	return int(math.Round(math.Max(0, math.Min(100, c))))
}
