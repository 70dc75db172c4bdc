package l2_service

import (
	"sort"
	"time"

	"outlookengine/internal/domain"
	l1_service "outlookengine/internal/service/l1"
)

const (
	// items at or below this weight are noise and never reach the synthesizer
	EvidenceNoiseFloor  = 0.05
	MaxSelectedEvidence = 15
)

// SelectEvidence weighs every item in the window for the horizon and
// returns the strongest ones, heaviest first. Items with equal weight
// keep their window order.
func SelectEvidence(window []domain.Evidence, horizon domain.Horizon, now time.Time) []domain.WeightedEvidence {
	out := []domain.WeightedEvidence{}
	for _, e := range window {
		w := l1_service.WeighEvidence(e, horizon, now)
		if w.Weight <= EvidenceNoiseFloor {
			continue
		}
		out = append(out, domain.WeightedEvidence{
			Evidence: e,
			Weight:   w.Weight,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight > out[j].Weight
	})

	if len(out) > MaxSelectedEvidence {
		out = out[:MaxSelectedEvidence]
	}

	return out
}
