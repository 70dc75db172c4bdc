package l1_service

import (
	"testing"

	"outlookengine/internal/domain"

	"github.com/stretchr/testify/require"
)

func uniformDimensions(score float64) domain.CredibilityDimensions {
	return domain.CredibilityDimensions{
		Performance:             score,
		Sincerity:               score,
		Independence:            score,
		Expertise:               score,
		Consistency:             score,
		Transparency:            score,
		Access:                  score,
		ReputationalSensitivity: score,
	}
}

func TestWeightedCredibilityScore(t *testing.T) {
	t.Run("uniform scores return that score", func(t *testing.T) {
		for _, score := range []float64{1, 2.5, 3, 4, 5} {
			require.Equal(t, score, WeightedCredibilityScore(uniformDimensions(score)))
		}
	})

	t.Run("weighted toward performance", func(t *testing.T) {
		d := uniformDimensions(3)
		d.Performance = 5
		// (5*2 + 3*7.75) / 9.75
		require.Equal(t, 3.41, WeightedCredibilityScore(d))

		d = uniformDimensions(3)
		d.ReputationalSensitivity = 5
		// (5*0.5 + 3*9.25) / 9.75
		require.Equal(t, 3.1, WeightedCredibilityScore(d))
	})

	t.Run("stays within scale bounds", func(t *testing.T) {
		d := domain.CredibilityDimensions{
			Performance:             5,
			Sincerity:               1,
			Independence:            4,
			Expertise:               2,
			Consistency:             5,
			Transparency:            1,
			Access:                  3,
			ReputationalSensitivity: 5,
		}
		score := WeightedCredibilityScore(d)
		require.GreaterOrEqual(t, score, domain.MinDimensionScore)
		require.LessOrEqual(t, score, domain.MaxDimensionScore)
	})

	t.Run("monotonic in every dimension", func(t *testing.T) {
		base := uniformDimensions(2)
		baseScore := WeightedCredibilityScore(base)
		for _, w := range CredibilityWeights {
			for _, bump := range []float64{2.5, 3, 4, 5} {
				d := base
				setDimension(&d, w.Name, bump)
				require.GreaterOrEqual(t, WeightedCredibilityScore(d), baseScore, w.Name)
			}
		}
	})
}

func setDimension(d *domain.CredibilityDimensions, name string, v float64) {
	switch name {
	case "performance":
		d.Performance = v
	case "sincerity":
		d.Sincerity = v
	case "independence":
		d.Independence = v
	case "expertise":
		d.Expertise = v
	case "consistency":
		d.Consistency = v
	case "transparency":
		d.Transparency = v
	case "access":
		d.Access = v
	case "reputational_sensitivity":
		d.ReputationalSensitivity = v
	}
}

func TestValidateCredibilityDimensions(t *testing.T) {
	require.NoError(t, ValidateCredibilityDimensions(uniformDimensions(1)))
	require.NoError(t, ValidateCredibilityDimensions(uniformDimensions(5)))

	d := uniformDimensions(3)
	d.Access = 6
	err := ValidateCredibilityDimensions(d)
	require.Error(t, err)
	require.Contains(t, err.Error(), "access")

	d = uniformDimensions(3)
	d.Sincerity = 0
	require.Error(t, ValidateCredibilityDimensions(d))
}
