package domain

import (
	"time"

	"github.com/google/uuid"
)

type ThesisPoint struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// Thesis is the standing outlook for one horizon.
type Thesis struct {
	OutlookID         uuid.UUID          `json:"outlookID"`
	Horizon           Horizon            `json:"horizon"`
	Title             string             `json:"title"`
	Subtitle          string             `json:"subtitle"`
	Intro             string             `json:"intro"`
	ThesisPoints      []ThesisPoint      `json:"thesisPoints"`
	Positioning       []string           `json:"positioning"`
	KeyThemes         []string           `json:"keyThemes"`
	Sentiment         Sentiment          `json:"sentiment"`
	Confidence        int                `json:"confidence"`
	SupportingSources map[string]float64 `json:"supportingSources"`
	LastUpdated       time.Time          `json:"lastUpdated"`
}

// HistoryEntry is an append-only audit record. One is written per
// horizon per evaluation cycle.
type HistoryEntry struct {
	OutlookHistoryID   uuid.UUID `json:"outlookHistoryID"`
	OutlookID          uuid.UUID `json:"outlookID"`
	Horizon            Horizon   `json:"horizon"`
	Reasoning          string    `json:"reasoning"`
	ChangesSummary     []string  `json:"changesSummary"`
	PreviousSentiment  Sentiment `json:"previousSentiment"`
	NewSentiment       Sentiment `json:"newSentiment"`
	PreviousConfidence int       `json:"previousConfidence"`
	NewConfidence      int       `json:"newConfidence"`
	EvidenceCount      int       `json:"evidenceCount"`
	CreatedAt          time.Time `json:"createdAt"`
}

func NewDefaultThesis(horizon Horizon) Thesis {
	return Thesis{
		Horizon:           horizon,
		Title:             string(horizon) + "-term outlook",
		ThesisPoints:      []ThesisPoint{},
		Positioning:       []string{},
		KeyThemes:         []string{},
		Sentiment:         SentimentNeutral,
		Confidence:        50,
		SupportingSources: map[string]float64{},
	}
}
