package domain

// SynthesisRequest is what the thesis synthesizer sees. Prompt is
// rendered deterministically from Current and Evidence, so equal inputs
// produce byte-equal prompts and equal fingerprints.
type SynthesisRequest struct {
	Horizon     Horizon
	Current     Thesis
	Evidence    []WeightedEvidence
	Prompt      string
	Fingerprint string
}

// SynthesisResponse is the synthesizer's proposed revision. A nil
// Updated* field means "leave that thesis field unchanged".
type SynthesisResponse struct {
	ShouldUpdate        bool          `json:"should_update"`
	Reasoning           string        `json:"reasoning"`
	ChangesSummary      []string      `json:"changes_summary"`
	UpdatedTitle        *string       `json:"updated_title"`
	UpdatedThesisIntro  *string       `json:"updated_thesis_intro"`
	UpdatedThesisPoints []ThesisPoint `json:"updated_thesis_points"`
	UpdatedPositioning  []string      `json:"updated_positioning"`
	UpdatedKeyThemes    []string      `json:"updated_key_themes"`
	UpdatedSentiment    *Sentiment    `json:"updated_sentiment"`
	UpdatedConfidence   *float64      `json:"updated_confidence"`
}

type CycleOutcome string

const (
	CycleOutcomeNoEvidence       CycleOutcome = "no_evidence"
	CycleOutcomeSynthesizerError CycleOutcome = "synthesizer_error"
	CycleOutcomeDeclined         CycleOutcome = "declined"
	CycleOutcomeUpdated          CycleOutcome = "updated"
	CycleOutcomePersistError     CycleOutcome = "persist_error"
	CycleOutcomeFailed           CycleOutcome = "failed"
)

// Applied reports whether the cycle ended in UpdateApplied rather than
// NoUpdate.
func (o CycleOutcome) Applied() bool {
	return o == CycleOutcomeUpdated
}

type CycleResult struct {
	Horizon           Horizon       `json:"horizon"`
	Outcome           CycleOutcome  `json:"outcome"`
	Reasoning         string        `json:"reasoning"`
	ChangesSummary    []string      `json:"changesSummary"`
	EvidenceEvaluated int           `json:"evidenceEvaluated"`
	EvidenceSelected  int           `json:"evidenceSelected"`
	History           *HistoryEntry `json:"history,omitempty"`
	Error             string        `json:"error,omitempty"`
}
