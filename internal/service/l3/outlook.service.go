package l3_service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"outlookengine/internal/domain"
	"outlookengine/internal/logger"
	"outlookengine/internal/repository"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 200
)

// OutlookService is the read side of the outlooks, plus the one-time
// seeding that guarantees a thesis exists for every horizon.
type OutlookService interface {
	Get(horizon domain.Horizon) (*domain.Thesis, error)
	List() ([]domain.Thesis, error)
	ListHistory(horizon domain.Horizon, limit int) ([]domain.HistoryEntry, error)
	SeedMissing(ctx context.Context) ([]domain.Thesis, error)
}

type outlookServiceHandler struct {
	OutlookRepository        repository.OutlookRepository
	OutlookHistoryRepository repository.OutlookHistoryRepository
}

func NewOutlookService(
	outlookRepository repository.OutlookRepository,
	outlookHistoryRepository repository.OutlookHistoryRepository,
) OutlookService {
	return outlookServiceHandler{
		OutlookRepository:        outlookRepository,
		OutlookHistoryRepository: outlookHistoryRepository,
	}
}

func (h outlookServiceHandler) Get(horizon domain.Horizon) (*domain.Thesis, error) {
	return h.OutlookRepository.Get(horizon)
}

// List returns the outlooks in horizon order.
func (h outlookServiceHandler) List() ([]domain.Thesis, error) {
	theses, err := h.OutlookRepository.List()
	if err != nil {
		return nil, err
	}

	byHorizon := map[domain.Horizon]domain.Thesis{}
	for _, t := range theses {
		byHorizon[t.Horizon] = t
	}
	out := []domain.Thesis{}
	for _, horizon := range domain.AllHorizons {
		if t, ok := byHorizon[horizon]; ok {
			out = append(out, t)
		}
	}

	return out, nil
}

func (h outlookServiceHandler) ListHistory(horizon domain.Horizon, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return h.OutlookHistoryRepository.List(horizon, limit)
}

func (h outlookServiceHandler) SeedMissing(ctx context.Context) ([]domain.Thesis, error) {
	created := []domain.Thesis{}
	for _, horizon := range domain.AllHorizons {
		_, err := h.OutlookRepository.Get(horizon)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return created, fmt.Errorf("failed to seed outlooks: %w", err)
		}

		thesis := domain.NewDefaultThesis(horizon)
		thesis.LastUpdated = time.Now().UTC()
		inserted, err := h.OutlookRepository.Add(thesis)
		if err != nil {
			return created, fmt.Errorf("failed to seed %s outlook: %w", horizon, err)
		}
		logger.FromContext(ctx).Infof("seeded default %s outlook", horizon)
		created = append(created, *inserted)
	}

	return created, nil
}
