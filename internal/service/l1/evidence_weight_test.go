package l1_service

import (
	"math"
	"testing"
	"time"

	"outlookengine/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestRecency(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("now is 1", func(t *testing.T) {
		require.InDelta(t, 1.0, Recency(now, now), 1e-9)
	})

	t.Run("future dates count as now", func(t *testing.T) {
		require.InDelta(t, 1.0, Recency(now.AddDate(0, 0, 3), now), 1e-9)
	})

	t.Run("reference points", func(t *testing.T) {
		require.InDelta(t, 0.9048, Recency(now.AddDate(0, 0, -1), now), 0.001)
		require.InDelta(t, 0.4966, Recency(now.AddDate(0, 0, -7), now), 0.001)
		require.InDelta(t, 0.0498, Recency(now.AddDate(0, 0, -30), now), 0.001)
	})

	t.Run("strictly decreasing and never zero", func(t *testing.T) {
		prev := Recency(now, now)
		for days := 1; days <= 400; days++ {
			r := Recency(now.AddDate(0, 0, -days), now)
			require.Less(t, r, prev)
			require.Greater(t, r, 0.0)
			prev = r
		}
		require.Greater(t, Recency(now.AddDate(-100, 0, 0), now), 0.0)
	})
}

func TestCredibility(t *testing.T) {
	require.Equal(t, 0.0, Credibility(3.0))
	require.Equal(t, 1.0, Credibility(4.5))
	require.Equal(t, 0.0, Credibility(2.0))
	require.Equal(t, 1.0, Credibility(5.0))
	require.InDelta(t, 0.5, Credibility(3.75), 1e-9)
	require.Equal(t, 0.0, Credibility(math.NaN()))
}

func TestHorizonRelevance(t *testing.T) {
	t.Run("no themes is the floor", func(t *testing.T) {
		require.Equal(t, 0.2, HorizonRelevance([]string{}, domain.HorizonShort))
		require.Equal(t, 0.2, HorizonRelevance(nil, domain.HorizonLong))
	})

	t.Run("all themes match", func(t *testing.T) {
		require.InDelta(t, 1.0, HorizonRelevance([]string{"Fed Policy"}, domain.HorizonShort), 1e-9)
		require.InDelta(t, 1.0, HorizonRelevance([]string{"Demographic Decline", "Secular Stagnation"}, domain.HorizonLong), 1e-9)
	})

	t.Run("partial match is proportional", func(t *testing.T) {
		got := HorizonRelevance([]string{"Market Volatility", "Gold Miners"}, domain.HorizonShort)
		require.InDelta(t, 0.6, got, 1e-9)
	})

	t.Run("keyword inside short theme", func(t *testing.T) {
		// "oil" contains the theme "oil", and the theme contains "oil"
		require.InDelta(t, 1.0, HorizonRelevance([]string{"OIL"}, domain.HorizonMedium), 1e-9)
	})

	t.Run("one match per theme", func(t *testing.T) {
		// hits both "fed" and "liquidity" but counts once
		got := HorizonRelevance([]string{"Fed liquidity", "Gold Miners", "Retail Sales", "Biotech"}, domain.HorizonShort)
		require.InDelta(t, 0.4, got, 1e-9)
	})

	t.Run("unknown horizon has only the floor", func(t *testing.T) {
		require.Equal(t, 0.2, HorizonRelevance([]string{"Fed Policy"}, domain.Horizon("decade")))
	})
}

func TestWeighEvidence(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("credible recent relevant evidence", func(t *testing.T) {
		e := domain.Evidence{
			SourceWeightedScore: 4.8,
			Themes:              []string{"Fed Policy"},
			PublishedAt:         now.AddDate(0, 0, -1),
		}
		w := WeighEvidence(e, domain.HorizonShort, now)
		require.InDelta(t, 1.0, w.Relevance, 1e-9)
		require.InDelta(t, 0.9048, w.Recency, 0.001)
		require.Equal(t, 1.0, w.Credibility)
		require.InDelta(t, 0.9048, w.Weight, 0.001)
	})

	t.Run("low credibility zeroes the weight", func(t *testing.T) {
		e := domain.Evidence{
			SourceWeightedScore: 2.9,
			Themes:              []string{"Fed Policy"},
			PublishedAt:         now,
		}
		require.Equal(t, 0.0, WeighEvidence(e, domain.HorizonShort, now).Weight)
	})
}
