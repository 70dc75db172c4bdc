package l3_service

import (
	"testing"

	"outlookengine/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestMergeThesis(t *testing.T) {
	t.Run("nil fields leave thesis unchanged", func(t *testing.T) {
		current := currentShortThesis()
		merged := MergeThesis(current, domain.SynthesisResponse{ShouldUpdate: true}, testNow)

		expected := current
		expected.LastUpdated = testNow
		require.Equal(t, "", cmp.Diff(expected, merged))
	})

	t.Run("every mutable field", func(t *testing.T) {
		current := currentShortThesis()
		title := "Tightening again"
		intro := "The Fed is back."
		sentiment := domain.SentimentBearish
		confidence := 120.0
		resp := domain.SynthesisResponse{
			ShouldUpdate:        true,
			UpdatedTitle:        &title,
			UpdatedThesisIntro:  &intro,
			UpdatedThesisPoints: []domain.ThesisPoint{{Heading: "Rates", Content: "higher"}},
			UpdatedPositioning:  []string{},
			UpdatedKeyThemes:    []string{"Fed Policy"},
			UpdatedSentiment:    &sentiment,
			UpdatedConfidence:   &confidence,
		}

		merged := MergeThesis(current, resp, testNow)
		require.Equal(t, title, merged.Title)
		require.Equal(t, intro, merged.Intro)
		require.Equal(t, resp.UpdatedThesisPoints, merged.ThesisPoints)
		require.Equal(t, []string{}, merged.Positioning)
		require.Equal(t, []string{"Fed Policy"}, merged.KeyThemes)
		require.Equal(t, domain.SentimentBearish, merged.Sentiment)
		require.Equal(t, 100, merged.Confidence)
		require.Equal(t, current.Subtitle, merged.Subtitle)
		require.Equal(t, current.SupportingSources, merged.SupportingSources)

		resp.UpdatedKeyThemes[0] = "mutated"
		require.Equal(t, []string{"Fed Policy"}, merged.KeyThemes)
	})
}
