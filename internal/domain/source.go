package domain

import "github.com/google/uuid"

// CredibilityDimensions are the 8 human-assigned scores for a source,
// each on a 1-5 scale.
type CredibilityDimensions struct {
	Performance             float64 `json:"performance" csv:"performance"`
	Sincerity               float64 `json:"sincerity" csv:"sincerity"`
	Independence            float64 `json:"independence" csv:"independence"`
	Expertise               float64 `json:"expertise" csv:"expertise"`
	Consistency             float64 `json:"consistency" csv:"consistency"`
	Transparency            float64 `json:"transparency" csv:"transparency"`
	Access                  float64 `json:"access" csv:"access"`
	ReputationalSensitivity float64 `json:"reputationalSensitivity" csv:"reputational_sensitivity"`
}

const (
	MinDimensionScore = 1.0
	MaxDimensionScore = 5.0
)

type Source struct {
	SourceID      uuid.UUID             `json:"sourceID"`
	Name          string                `json:"name"`
	Platform      string                `json:"platform"`
	Dimensions    CredibilityDimensions `json:"dimensions"`
	WeightedScore float64               `json:"weightedScore"`
}
