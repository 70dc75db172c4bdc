package domain

import (
	"time"

	"github.com/google/uuid"
)

// Prediction is a sub-claim extracted from a document. Its labels are
// canonicalized against the parent document's themes and assets.
type Prediction struct {
	Claim     string   `json:"claim"`
	Timeframe string   `json:"timeframe,omitempty"`
	Themes    []string `json:"themes"`
	Assets    []string `json:"assets"`
}

// Evidence is one analyzed document. It is never mutated after ingest.
type Evidence struct {
	DocumentID          uuid.UUID    `json:"documentID"`
	SourceID            uuid.UUID    `json:"sourceID"`
	SourceName          string       `json:"sourceName"`
	SourceWeightedScore float64      `json:"sourceWeightedScore"`
	Title               string       `json:"title"`
	URL                 *string      `json:"url,omitempty"`
	Platform            string       `json:"platform"`
	PublishedAt         time.Time    `json:"publishedAt"`
	Summary             string       `json:"summary"`
	Sentiment           Sentiment    `json:"sentiment"`
	SentimentScore      float64      `json:"sentimentScore"`
	Themes              []string     `json:"themes"`
	Assets              []string     `json:"assets"`
	Predictions         []Prediction `json:"predictions"`
	KeyQuotes           []string     `json:"keyQuotes"`
}

type WeightedEvidence struct {
	Evidence Evidence `json:"evidence"`
	Weight   float64  `json:"weight"`
}
