package l2_service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"outlookengine/internal/db/models/postgres/public/model"
	"outlookengine/internal/domain"
	"outlookengine/internal/logger"
	"outlookengine/internal/repository"
	l1_service "outlookengine/internal/service/l1"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

// SourceService is the only writer of sources. Every write recomputes
// the weighted score from the dimensions it stores.
type SourceService interface {
	Add(ctx context.Context, input SourceInput) (*domain.Source, error)
	UpdateScores(ctx context.Context, sourceID uuid.UUID, dimensions domain.CredibilityDimensions) (*domain.Source, error)
	ImportCSV(ctx context.Context, r io.Reader) ([]domain.Source, error)
	RecomputeAll(ctx context.Context) (int, error)
	List(ctx context.Context) ([]domain.Source, error)
}

type SourceInput struct {
	Name       string                       `json:"name"`
	Platform   string                       `json:"platform"`
	Dimensions domain.CredibilityDimensions `json:"dimensions"`
}

type sourceServiceHandler struct {
	SourceRepository repository.SourceRepository
}

func NewSourceService(sourceRepository repository.SourceRepository) SourceService {
	return sourceServiceHandler{
		SourceRepository: sourceRepository,
	}
}

func (h sourceServiceHandler) Add(ctx context.Context, input SourceInput) (*domain.Source, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("failed to add source: name is required")
	}
	if err := l1_service.ValidateCredibilityDimensions(input.Dimensions); err != nil {
		return nil, fmt.Errorf("failed to add source %s: %w", name, err)
	}

	m := model.Source{
		Name:     name,
		Platform: input.Platform,
	}
	setDimensions(&m, input.Dimensions)

	inserted, err := h.SourceRepository.Add(m)
	if err != nil {
		return nil, fmt.Errorf("failed to add source %s: %w", name, err)
	}

	logger.FromContext(ctx).Infof("added source %s with weighted score %.2f", name, inserted.WeightedScore)

	return sourceToDomain(*inserted), nil
}

func (h sourceServiceHandler) UpdateScores(ctx context.Context, sourceID uuid.UUID, dimensions domain.CredibilityDimensions) (*domain.Source, error) {
	if err := l1_service.ValidateCredibilityDimensions(dimensions); err != nil {
		return nil, fmt.Errorf("failed to update source %s scores: %w", sourceID.String(), err)
	}

	existing, err := h.SourceRepository.Get(sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to update source %s scores: %w", sourceID.String(), err)
	}

	previousScore := existing.WeightedScore
	setDimensions(existing, dimensions)

	updated, err := h.SourceRepository.Update(*existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update source %s scores: %w", sourceID.String(), err)
	}

	logger.FromContext(ctx).Infof("updated source %s weighted score %.2f -> %.2f", updated.Name, previousScore, updated.WeightedScore)

	return sourceToDomain(*updated), nil
}

type sourceCSVRow struct {
	Name     string `csv:"name"`
	Platform string `csv:"platform"`
	domain.CredibilityDimensions
}

// ImportCSV upserts sources by name. Rows are validated up front so a
// bad file writes nothing.
func (h sourceServiceHandler) ImportCSV(ctx context.Context, r io.Reader) ([]domain.Source, error) {
	rows := []sourceCSVRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse sources csv: %w", err)
	}

	for i, row := range rows {
		if strings.TrimSpace(row.Name) == "" {
			return nil, fmt.Errorf("failed to import sources: row %d has no name", i+1)
		}
		if err := l1_service.ValidateCredibilityDimensions(row.CredibilityDimensions); err != nil {
			return nil, fmt.Errorf("failed to import sources: row %d (%s): %w", i+1, row.Name, err)
		}
	}

	out := []domain.Source{}
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		existing, err := h.SourceRepository.GetByName(name)
		if errors.Is(err, repository.ErrNotFound) {
			added, err := h.Add(ctx, SourceInput{
				Name:       name,
				Platform:   row.Platform,
				Dimensions: row.CredibilityDimensions,
			})
			if err != nil {
				return nil, err
			}
			out = append(out, *added)
			continue
		} else if err != nil {
			return nil, fmt.Errorf("failed to import source %s: %w", name, err)
		}

		existing.Platform = row.Platform
		setDimensions(existing, row.CredibilityDimensions)
		updated, err := h.SourceRepository.Update(*existing)
		if err != nil {
			return nil, fmt.Errorf("failed to import source %s: %w", name, err)
		}
		out = append(out, *sourceToDomain(*updated))
	}

	logger.FromContext(ctx).Infof("imported %d sources", len(out))

	return out, nil
}

// RecomputeAll re-derives every stored weighted score. Run it after the
// weight table changes.
func (h sourceServiceHandler) RecomputeAll(ctx context.Context) (int, error) {
	sources, err := h.SourceRepository.List()
	if err != nil {
		return 0, fmt.Errorf("failed to recompute source scores: %w", err)
	}

	changed := 0
	for _, s := range sources {
		previousScore := s.WeightedScore
		setDimensions(&s, dimensionsFromModel(s))
		if s.WeightedScore == previousScore {
			continue
		}
		if _, err := h.SourceRepository.Update(s); err != nil {
			return changed, fmt.Errorf("failed to recompute source %s score: %w", s.Name, err)
		}
		changed++
	}

	logger.FromContext(ctx).Infof("recomputed weighted scores: %d of %d sources changed", changed, len(sources))

	return changed, nil
}

func (h sourceServiceHandler) List(ctx context.Context) ([]domain.Source, error) {
	sources, err := h.SourceRepository.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	out := []domain.Source{}
	for _, s := range sources {
		out = append(out, *sourceToDomain(s))
	}
	return out, nil
}

// setDimensions is the single place a source's weighted score is set.
func setDimensions(m *model.Source, d domain.CredibilityDimensions) {
	m.Performance = d.Performance
	m.Sincerity = d.Sincerity
	m.Independence = d.Independence
	m.Expertise = d.Expertise
	m.Consistency = d.Consistency
	m.Transparency = d.Transparency
	m.Access = d.Access
	m.ReputationalSensitivity = d.ReputationalSensitivity
	m.WeightedScore = l1_service.WeightedCredibilityScore(d)
}

func dimensionsFromModel(m model.Source) domain.CredibilityDimensions {
	return domain.CredibilityDimensions{
		Performance:             m.Performance,
		Sincerity:               m.Sincerity,
		Independence:            m.Independence,
		Expertise:               m.Expertise,
		Consistency:             m.Consistency,
		Transparency:            m.Transparency,
		Access:                  m.Access,
		ReputationalSensitivity: m.ReputationalSensitivity,
	}
}

func sourceToDomain(m model.Source) *domain.Source {
	return &domain.Source{
		SourceID:      m.SourceID,
		Name:          m.Name,
		Platform:      m.Platform,
		Dimensions:    dimensionsFromModel(m),
		WeightedScore: m.WeightedScore,
	}
}
