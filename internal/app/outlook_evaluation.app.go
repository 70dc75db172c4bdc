package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"outlookengine/internal/domain"
	"outlookengine/internal/logger"
	"outlookengine/internal/repository"
	l3_service "outlookengine/internal/service/l3"
	"outlookengine/internal/util"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// OutlookEvaluationApp runs evaluation cycles across horizons. Horizons
// run concurrently and independently; a second request for a horizon
// that is already running joins the running cycle instead of starting
// another one.
type OutlookEvaluationApp interface {
	EvaluateAll(ctx context.Context) ([]domain.CycleResult, error)
	EvaluateHorizon(ctx context.Context, horizon domain.Horizon) (*domain.CycleResult, error)
}

type outlookEvaluationAppHandler struct {
	DocumentRepository   repository.DocumentRepository
	OutlookUpdateService l3_service.OutlookUpdateService
	Window               time.Duration
	Now                  func() time.Time

	inflight *singleflight.Group
}

func NewOutlookEvaluationApp(
	documentRepository repository.DocumentRepository,
	outlookUpdateService l3_service.OutlookUpdateService,
	window time.Duration,
) OutlookEvaluationApp {
	return outlookEvaluationAppHandler{
		DocumentRepository:   documentRepository,
		OutlookUpdateService: outlookUpdateService,
		Window:               window,
		Now:                  time.Now,
		inflight:             &singleflight.Group{},
	}
}

func (h outlookEvaluationAppHandler) evidenceWindow() ([]domain.Evidence, error) {
	since := util.WindowStart(h.Now(), h.Window)
	window, err := h.DocumentRepository.ListSince(since)
	if err != nil {
		return nil, fmt.Errorf("failed to read evidence window: %w", err)
	}
	return window, nil
}

// EvaluateAll reads the evidence window once and shares it across every
// horizon. The returned results always cover every horizon, in
// AllHorizons order, even when some of them fail.
func (h outlookEvaluationAppHandler) EvaluateAll(ctx context.Context) ([]domain.CycleResult, error) {
	window, err := h.evidenceWindow()
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infof("evaluating %d horizons over %d evidence items", len(domain.AllHorizons), len(window))

	results := make([]domain.CycleResult, len(domain.AllHorizons))
	errs := make([]error, len(domain.AllHorizons))

	// a plain Group: one horizon's failure must not cancel the others
	var g errgroup.Group
	for i, horizon := range domain.AllHorizons {
		i, horizon := i, horizon
		g.Go(func() error {
			result, err := h.runGuarded(ctx, horizon, window)
			results[i] = *result
			errs[i] = err
			return nil
		})
	}
	_ = g.Wait()

	return results, errors.Join(errs...)
}

func (h outlookEvaluationAppHandler) EvaluateHorizon(ctx context.Context, horizon domain.Horizon) (*domain.CycleResult, error) {
	window, err := h.evidenceWindow()
	if err != nil {
		return nil, err
	}
	return h.runGuarded(ctx, horizon, window)
}

type guardedResult struct {
	result *domain.CycleResult
	err    error
}

// runGuarded never returns a nil result. Failures without a cycle
// result are reported as CycleOutcomeFailed.
func (h outlookEvaluationAppHandler) runGuarded(ctx context.Context, horizon domain.Horizon, window []domain.Evidence) (*domain.CycleResult, error) {
	v, _, shared := h.inflight.Do(string(horizon), func() (interface{}, error) {
		result, err := h.OutlookUpdateService.RunCycle(ctx, horizon, window)
		return guardedResult{result: result, err: err}, nil
	})
	if shared {
		logger.FromContext(ctx).Infof("%s cycle already running, joined it", horizon)
	}

	out := v.(guardedResult)
	if out.result == nil {
		failed := &domain.CycleResult{
			Horizon:           horizon,
			Outcome:           domain.CycleOutcomeFailed,
			EvidenceEvaluated: len(window),
			ChangesSummary:    []string{},
		}
		if out.err != nil {
			failed.Error = out.err.Error()
		}
		return failed, out.err
	}

	result := *out.result
	if out.err != nil && result.Error == "" {
		result.Error = out.err.Error()
	}
	return &result, out.err
}
