package l2_service

import (
	"fmt"
	"testing"
	"time"

	"outlookengine/internal/domain"

	"github.com/stretchr/testify/require"
)

func newEvidence(title string, sourceScore float64, themes []string, publishedAt time.Time) domain.Evidence {
	return domain.Evidence{
		SourceName:          "Macro Weekly",
		SourceWeightedScore: sourceScore,
		Title:               title,
		PublishedAt:         publishedAt,
		Sentiment:           domain.SentimentNeutral,
		Themes:              themes,
		Assets:              []string{},
		Predictions:         []domain.Prediction{},
		KeyQuotes:           []string{},
	}
}

func TestSelectEvidence(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }

	t.Run("empty window", func(t *testing.T) {
		got := SelectEvidence(nil, domain.HorizonShort, now)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("caps at max and sorts descending", func(t *testing.T) {
		window := []domain.Evidence{}
		// oldest first, so sorting has to reverse it
		for age := 19; age >= 0; age-- {
			window = append(window, newEvidence(fmt.Sprintf("age %d", age), 4.8, []string{"Fed Policy"}, daysAgo(age)))
		}

		got := SelectEvidence(window, domain.HorizonShort, now)
		require.Len(t, got, MaxSelectedEvidence)
		for i, we := range got {
			require.Equal(t, fmt.Sprintf("age %d", i), we.Evidence.Title)
			require.Greater(t, we.Weight, EvidenceNoiseFloor)
			if i > 0 {
				require.GreaterOrEqual(t, got[i-1].Weight, we.Weight)
			}
		}
	})

	t.Run("drops noise", func(t *testing.T) {
		window := []domain.Evidence{
			newEvidence("low credibility", 3.0, []string{"Fed Policy"}, daysAgo(0)),
			newEvidence("too old", 4.8, []string{"Fed Policy"}, daysAgo(40)),
			newEvidence("kept", 4.8, []string{"Fed Policy"}, daysAgo(1)),
		}
		got := SelectEvidence(window, domain.HorizonShort, now)
		require.Len(t, got, 1)
		require.Equal(t, "kept", got[0].Evidence.Title)
		require.InDelta(t, 0.9048, got[0].Weight, 0.001)
	})

	t.Run("equal weights keep window order", func(t *testing.T) {
		window := []domain.Evidence{
			newEvidence("b", 4.8, []string{"Fed Policy"}, daysAgo(2)),
			newEvidence("a", 4.8, []string{"Fed Policy"}, daysAgo(2)),
			newEvidence("c", 4.8, []string{"Fed Policy"}, daysAgo(2)),
		}
		got := SelectEvidence(window, domain.HorizonShort, now)
		require.Len(t, got, 3)
		require.Equal(t, "b", got[0].Evidence.Title)
		require.Equal(t, "a", got[1].Evidence.Title)
		require.Equal(t, "c", got[2].Evidence.Title)
	})

	t.Run("relevance depends on horizon", func(t *testing.T) {
		window := []domain.Evidence{
			newEvidence("demographics", 4.5, []string{"Demographic shift"}, daysAgo(0)),
		}
		short := SelectEvidence(window, domain.HorizonShort, now)
		long := SelectEvidence(window, domain.HorizonLong, now)
		require.Len(t, short, 1)
		require.Len(t, long, 1)
		require.InDelta(t, 0.2, short[0].Weight, 1e-9)
		require.InDelta(t, 1.0, long[0].Weight, 1e-9)
	})
}
