package l1_service

import (
	"fmt"
	"math"

	"outlookengine/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type credibilityDimensionWeight struct {
	Name   string
	Weight float64
	score  func(d domain.CredibilityDimensions) float64
}

// CredibilityWeights is the fixed weight table used to collapse the 8
// dimension scores. Track record, sincerity and independence are the
// most predictive; reputational sensitivity the least.
var CredibilityWeights = []credibilityDimensionWeight{
	{Name: "performance", Weight: 2.0, score: func(d domain.CredibilityDimensions) float64 { return d.Performance }},
	{Name: "sincerity", Weight: 1.5, score: func(d domain.CredibilityDimensions) float64 { return d.Sincerity }},
	{Name: "independence", Weight: 1.5, score: func(d domain.CredibilityDimensions) float64 { return d.Independence }},
	{Name: "expertise", Weight: 1.25, score: func(d domain.CredibilityDimensions) float64 { return d.Expertise }},
	{Name: "consistency", Weight: 1.0, score: func(d domain.CredibilityDimensions) float64 { return d.Consistency }},
	{Name: "transparency", Weight: 1.0, score: func(d domain.CredibilityDimensions) float64 { return d.Transparency }},
	{Name: "access", Weight: 1.0, score: func(d domain.CredibilityDimensions) float64 { return d.Access }},
	{Name: "reputational_sensitivity", Weight: 0.5, score: func(d domain.CredibilityDimensions) float64 { return d.ReputationalSensitivity }},
}

// WeightedCredibilityScore is the weighted average of the dimension
// scores, rounded to 2 decimals.
func WeightedCredibilityScore(d domain.CredibilityDimensions) float64 {
	weights := make([]float64, 0, len(CredibilityWeights))
	weightedSum := 0.0
	for _, w := range CredibilityWeights {
		weights = append(weights, w.Weight)
		weightedSum += w.score(d) * w.Weight
	}

	// only errors on empty input, and the table is constant
	totalWeight, _ := stats.Sum(weights)

	return decimal.NewFromFloat(weightedSum / totalWeight).Round(2).InexactFloat64()
}

func ValidateCredibilityDimensions(d domain.CredibilityDimensions) error {
	for _, w := range CredibilityWeights {
		score := w.score(d)
		if math.IsNaN(score) || score < domain.MinDimensionScore || score > domain.MaxDimensionScore {
			return fmt.Errorf("invalid %s score %v - must be between %v and %v", w.Name, score, domain.MinDimensionScore, domain.MaxDimensionScore)
		}
	}
	return nil
}
