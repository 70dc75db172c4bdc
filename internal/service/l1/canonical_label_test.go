package l1_service

import (
	"testing"

	"outlookengine/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeLabel(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		candidates []string
		want       string
	}{
		{
			name:       "identity",
			raw:        "Fed Policy",
			candidates: []string{"Fed Policy"},
			want:       "Fed Policy",
		},
		{
			name:       "exact match ignores case",
			raw:        "AI Capex",
			candidates: []string{"AI CapEx", "Energy"},
			want:       "AI CapEx",
		},
		{
			name:       "raw contains candidate",
			raw:        "NVIDIA Inc",
			candidates: []string{"NVIDIA"},
			want:       "NVIDIA",
		},
		{
			name:       "candidate contains raw",
			raw:        "gold",
			candidates: []string{"Oil", "Gold Miners"},
			want:       "Gold Miners",
		},
		{
			name:       "shortest containing candidate wins",
			raw:        "US Treasury Yields",
			candidates: []string{"Treasury Yields", "Treasury", "Yields"},
			want:       "Yields",
		},
		{
			name:       "containment tie goes to first candidate",
			raw:        "oil and gas",
			candidates: []string{"gas", "oil"},
			want:       "gas",
		},
		{
			name:       "token overlap with stemming",
			raw:        "Semiconductor supply chain",
			candidates: []string{"Energy", "Semiconductors"},
			want:       "Semiconductors",
		},
		{
			name:       "token overlap across punctuation",
			raw:        "rate-cutting cycle",
			candidates: []string{"Rate Cuts", "Housing"},
			want:       "Rate Cuts",
		},
		{
			name:       "below overlap threshold returns raw",
			raw:        "China property slump",
			candidates: []string{"China Growth Outlook", "Energy"},
			want:       "China property slump",
		},
		{
			name:       "no candidates",
			raw:        "Semiconductors",
			candidates: []string{},
			want:       "Semiconductors",
		},
		{
			name:       "nil candidates",
			raw:        "Semiconductors",
			candidates: nil,
			want:       "Semiconductors",
		},
		{
			name:       "empty raw",
			raw:        "",
			candidates: []string{"Energy"},
			want:       "",
		},
		{
			name:       "punctuation-only candidate is skipped",
			raw:        "Energy Transition",
			candidates: []string{"--", "Power Grid"},
			want:       "Energy Transition",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CanonicalizeLabel(tt.raw, tt.candidates))
		})
	}
}

func Test_tokenOverlapMatch(t *testing.T) {
	t.Run("higher coverage wins over input order", func(t *testing.T) {
		got, ok := tokenOverlapMatch("global bond market sell off", []string{
			"global bond market selloff risk",
			"bond market sell",
		})
		require.True(t, ok)
		require.Equal(t, "bond market sell", got)
	})

	t.Run("equal coverage keeps input order", func(t *testing.T) {
		got, ok := tokenOverlapMatch("emerging market debt", []string{
			"market debts",
			"emerging markets",
		})
		require.True(t, ok)
		require.Equal(t, "market debts", got)
	})
}

func TestCanonicalizePredictions(t *testing.T) {
	predictions := []domain.Prediction{
		{
			Claim:     "chip demand outruns supply through 2026",
			Timeframe: "12 months",
			Themes:    []string{"semiconductor demand", "ai capex"},
			Assets:    []string{"NVIDIA Inc", "TSMC"},
		},
	}

	got := CanonicalizePredictions(
		predictions,
		[]string{"AI CapEx", "Semiconductors"},
		[]string{"NVIDIA", "Taiwan Semiconductor"},
	)

	require.Equal(t, "", cmp.Diff([]domain.Prediction{
		{
			Claim:     "chip demand outruns supply through 2026",
			Timeframe: "12 months",
			Themes:    []string{"Semiconductors", "AI CapEx"},
			Assets:    []string{"NVIDIA", "TSMC"},
		},
	}, got))

	// input untouched
	require.Equal(t, "NVIDIA Inc", predictions[0].Assets[0])
}
