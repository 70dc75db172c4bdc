package l1_service

import (
	"math"
	"strings"
	"time"

	"outlookengine/internal/domain"
)

const (
	// recency halves roughly every 7 days
	recencyDecayDays = 10.0

	credibilityFloor = 3.0
	credibilitySpan  = 1.5

	relevanceFloor = 0.2
	relevanceSpan  = 0.8
)

// HorizonKeywords are lowercase fragments matched against evidence
// themes by containment in either direction.
var HorizonKeywords = map[domain.Horizon][]string{
	domain.HorizonShort: {
		"liquidity",
		"fed",
		"fomc",
		"rate cut",
		"rate hike",
		"volatility",
		"vix",
		"repo",
		"funding",
		"positioning",
		"momentum",
		"short squeeze",
		"options",
		"earnings season",
		"jobs report",
		"cpi print",
		"treasury auction",
		"quantitative tightening",
	},
	domain.HorizonMedium: {
		"cycle",
		"cyclical",
		"recession",
		"inflation",
		"monetary policy",
		"fiscal",
		"tariff",
		"trade war",
		"commodit",
		"oil",
		"housing",
		"labor market",
		"employment",
		"credit",
		"capex",
		"earnings growth",
		"election",
		"dollar",
		"china",
	},
	domain.HorizonLong: {
		"structural",
		"demographic",
		"aging",
		"population",
		"secular",
		"regime",
		"deglobalization",
		"reshoring",
		"productivity",
		"debt supercycle",
		"sovereign debt",
		"energy transition",
		"de-dollarization",
		"reserve currency",
		"multipolar",
		"geopolitic",
		"artificial intelligence",
		"automation",
		"climate",
	},
}

type EvidenceWeight struct {
	Relevance   float64
	Recency     float64
	Credibility float64
	Weight      float64
}

// WeighEvidence scores one evidence item for a horizon. The factors are
// multiplied, so a zero in any of them zeroes the weight.
func WeighEvidence(e domain.Evidence, horizon domain.Horizon, now time.Time) EvidenceWeight {
	w := EvidenceWeight{
		Relevance:   HorizonRelevance(e.Themes, horizon),
		Recency:     Recency(e.PublishedAt, now),
		Credibility: Credibility(e.SourceWeightedScore),
	}
	w.Weight = w.Relevance * w.Recency * w.Credibility
	return w
}

// Recency decays exponentially with age in days. Future timestamps count
// as now.
func Recency(publishedAt, now time.Time) float64 {
	daysAgo := now.Sub(publishedAt).Hours() / 24
	if daysAgo < 0 || math.IsNaN(daysAgo) {
		daysAgo = 0
	}
	r := math.Exp(-daysAgo / recencyDecayDays)
	if r == 0 {
		return math.SmallestNonzeroFloat64
	}
	return r
}

// Credibility maps a weighted source score onto [0, 1]: 3.0 and below is
// 0, 4.5 and above is 1.
func Credibility(weightedScore float64) float64 {
	return clamp01((weightedScore - credibilityFloor) / credibilitySpan)
}

// HorizonRelevance is a 0.2 floor plus up to 0.8 for the share of themes
// that hit one of the horizon's keywords.
func HorizonRelevance(themes []string, horizon domain.Horizon) float64 {
	keywords := HorizonKeywords[horizon]

	matches := 0
	for _, theme := range themes {
		t := strings.ToLower(theme)
		if t == "" {
			continue
		}
		for _, k := range keywords {
			if strings.Contains(t, k) || strings.Contains(k, t) {
				matches++
				break
			}
		}
	}

	themeCount := len(themes)
	if themeCount == 0 {
		themeCount = 1
	}

	return math.Min(1, relevanceFloor+(float64(matches)/float64(themeCount))*relevanceSpan)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
