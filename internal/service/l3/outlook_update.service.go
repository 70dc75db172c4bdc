package l3_service

//go:generate mockgen -source=outlook_update.service.go -destination=mocks/mock_outlook_update.service.go

import (
	"context"
	"fmt"
	"time"

	"outlookengine/internal/domain"
	"outlookengine/internal/logger"
	"outlookengine/internal/metrics"
	"outlookengine/internal/repository"
	l2_service "outlookengine/internal/service/l2"
)

const NoEvidenceReasoning = "no sufficiently relevant recent evidence"

// OutlookUpdateService runs one evaluation cycle for one horizon:
// select evidence, ask the synthesizer for a revision, merge it, and
// record the outcome. Every cycle that can read its thesis appends
// exactly one history entry.
type OutlookUpdateService interface {
	RunCycle(ctx context.Context, horizon domain.Horizon, window []domain.Evidence) (*domain.CycleResult, error)
}

type outlookUpdateServiceHandler struct {
	OutlookRepository        repository.OutlookRepository
	OutlookHistoryRepository repository.OutlookHistoryRepository
	SynthesizerRepository    repository.SynthesizerRepository
	SynthesizerTimeout       time.Duration
	Now                      func() time.Time
}

func NewOutlookUpdateService(
	outlookRepository repository.OutlookRepository,
	outlookHistoryRepository repository.OutlookHistoryRepository,
	synthesizerRepository repository.SynthesizerRepository,
	synthesizerTimeout time.Duration,
) OutlookUpdateService {
	return outlookUpdateServiceHandler{
		OutlookRepository:        outlookRepository,
		OutlookHistoryRepository: outlookHistoryRepository,
		SynthesizerRepository:    synthesizerRepository,
		SynthesizerTimeout:       synthesizerTimeout,
		Now:                      time.Now,
	}
}

func (h outlookUpdateServiceHandler) RunCycle(ctx context.Context, horizon domain.Horizon, window []domain.Evidence) (*domain.CycleResult, error) {
	lg := logger.FromContext(ctx).With("horizon", horizon)

	current, err := h.OutlookRepository.Get(horizon)
	if err != nil {
		metrics.CyclesTotal.WithLabelValues(string(horizon), string(domain.CycleOutcomeFailed)).Inc()
		return nil, fmt.Errorf("failed to read %s thesis: %w", horizon, err)
	}

	now := h.Now()
	selected := l2_service.SelectEvidence(window, horizon, now)
	lg.Infof("selected %d of %d evidence items", len(selected), len(window))

	result := &domain.CycleResult{
		Horizon:           horizon,
		EvidenceEvaluated: len(window),
		EvidenceSelected:  len(selected),
		ChangesSummary:    []string{},
	}

	if len(selected) == 0 {
		result.Outcome = domain.CycleOutcomeNoEvidence
		result.Reasoning = NoEvidenceReasoning
		return h.recordNoUpdate(ctx, *current, result)
	}

	resp, err := h.proposeRevision(ctx, horizon, *current, selected)
	if err != nil {
		lg.Warnf("synthesizer failed: %v", err)
		result.Outcome = domain.CycleOutcomeSynthesizerError
		result.Reasoning = err.Error()
		return h.recordNoUpdate(ctx, *current, result)
	}

	if !resp.ShouldUpdate {
		result.Outcome = domain.CycleOutcomeDeclined
		result.Reasoning = resp.Reasoning
		return h.recordNoUpdate(ctx, *current, result)
	}

	merged := MergeThesis(*current, *resp, now)
	updated, err := h.OutlookRepository.Update(merged)
	if err != nil {
		persistErr := fmt.Errorf("failed to persist %s thesis update: %w", horizon, err)
		result.Outcome = domain.CycleOutcomePersistError
		result.Reasoning = persistErr.Error()
		result.Error = persistErr.Error()
		if _, historyErr := h.recordNoUpdate(ctx, *current, result); historyErr != nil {
			return result, fmt.Errorf("%w; %w", persistErr, historyErr)
		}
		return result, persistErr
	}

	changes := resp.ChangesSummary
	if changes == nil {
		changes = []string{}
	}
	result.Outcome = domain.CycleOutcomeUpdated
	result.Reasoning = resp.Reasoning
	result.ChangesSummary = changes

	return h.recordHistory(ctx, domain.HistoryEntry{
		OutlookID:          current.OutlookID,
		Horizon:            horizon,
		Reasoning:          resp.Reasoning,
		ChangesSummary:     changes,
		PreviousSentiment:  current.Sentiment,
		NewSentiment:       updated.Sentiment,
		PreviousConfidence: current.Confidence,
		NewConfidence:      updated.Confidence,
		EvidenceCount:      len(window),
	}, result)
}

func (h outlookUpdateServiceHandler) proposeRevision(ctx context.Context, horizon domain.Horizon, current domain.Thesis, selected []domain.WeightedEvidence) (*domain.SynthesisResponse, error) {
	req := l2_service.NewSynthesisRequest(horizon, current, selected)
	logger.FromContext(ctx).Infof("requesting %s thesis revision, prompt fingerprint %s", horizon, req.Fingerprint)

	timeoutCtx, cancel := context.WithTimeout(ctx, h.SynthesizerTimeout)
	defer cancel()

	start := time.Now()
	resp, err := h.SynthesizerRepository.ProposeRevision(timeoutCtx, req)
	metrics.SynthesizerSeconds.WithLabelValues(string(horizon)).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("synthesizer returned no response")
	}
	return resp, nil
}

// recordNoUpdate leaves the thesis untouched and logs the cycle.
func (h outlookUpdateServiceHandler) recordNoUpdate(ctx context.Context, current domain.Thesis, result *domain.CycleResult) (*domain.CycleResult, error) {
	return h.recordHistory(ctx, domain.HistoryEntry{
		OutlookID:          current.OutlookID,
		Horizon:            current.Horizon,
		Reasoning:          result.Reasoning,
		ChangesSummary:     []string{},
		PreviousSentiment:  current.Sentiment,
		NewSentiment:       current.Sentiment,
		PreviousConfidence: current.Confidence,
		NewConfidence:      current.Confidence,
		EvidenceCount:      result.EvidenceEvaluated,
	}, result)
}

func (h outlookUpdateServiceHandler) recordHistory(ctx context.Context, entry domain.HistoryEntry, result *domain.CycleResult) (*domain.CycleResult, error) {
	lg := logger.FromContext(ctx)

	inserted, err := h.OutlookHistoryRepository.Add(entry)
	if err != nil {
		metrics.CyclesTotal.WithLabelValues(string(result.Horizon), string(domain.CycleOutcomeFailed)).Inc()
		return result, fmt.Errorf("failed to record %s outlook history: %w", result.Horizon, err)
	}
	result.History = inserted

	metrics.CyclesTotal.WithLabelValues(string(result.Horizon), string(result.Outcome)).Inc()
	lg.Infow("outlook cycle complete",
		"horizon", result.Horizon,
		"outcome", result.Outcome,
		"evidenceEvaluated", result.EvidenceEvaluated,
		"evidenceSelected", result.EvidenceSelected,
	)

	return result, nil
}
