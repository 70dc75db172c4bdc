package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"outlookengine/internal/db/models/postgres/public/model"
	"outlookengine/internal/db/models/postgres/public/table"
	"outlookengine/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type OutlookRepository interface {
	Add(t domain.Thesis) (*domain.Thesis, error)
	Get(horizon domain.Horizon) (*domain.Thesis, error)
	List() ([]domain.Thesis, error)
	Update(t domain.Thesis) (*domain.Thesis, error)
}

type outlookRepositoryHandler struct {
	Db *sql.DB
}

func NewOutlookRepository(db *sql.DB) OutlookRepository {
	return outlookRepositoryHandler{Db: db}
}

func (h outlookRepositoryHandler) Add(t domain.Thesis) (*domain.Thesis, error) {
	m, err := outlookFromDomain(t)
	if err != nil {
		return nil, err
	}
	m.CreatedAt = time.Now().UTC()
	if m.LastUpdated.IsZero() {
		m.LastUpdated = m.CreatedAt
	}

	query := table.Outlook.
		INSERT(table.Outlook.MutableColumns).
		MODEL(m).
		RETURNING(table.Outlook.AllColumns)

	out := model.Outlook{}
	err = query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert %s outlook: %w", t.Horizon, err)
	}

	return outlookToDomain(out)
}

func (h outlookRepositoryHandler) Get(horizon domain.Horizon) (*domain.Thesis, error) {
	query := table.Outlook.
		SELECT(table.Outlook.AllColumns).
		WHERE(table.Outlook.Horizon.EQ(postgres.String(string(horizon))))

	out := model.Outlook{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to get %s outlook: %w", horizon, ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get %s outlook: %w", horizon, err)
	}

	return outlookToDomain(out)
}

func (h outlookRepositoryHandler) List() ([]domain.Thesis, error) {
	query := table.Outlook.SELECT(table.Outlook.AllColumns)

	result := []model.Outlook{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return []domain.Thesis{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list outlooks: %w", err)
	}

	out := []domain.Thesis{}
	for _, r := range result {
		t, err := outlookToDomain(r)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}

	return out, nil
}

func (h outlookRepositoryHandler) Update(t domain.Thesis) (*domain.Thesis, error) {
	if t.OutlookID == uuid.Nil {
		return nil, fmt.Errorf("failed to update outlook - id not provided in inputted model")
	}
	m, err := outlookFromDomain(t)
	if err != nil {
		return nil, err
	}

	query := table.Outlook.
		UPDATE(table.Outlook.MutableColumns.Except(table.Outlook.CreatedAt, table.Outlook.Horizon)).
		MODEL(m).
		WHERE(table.Outlook.OutlookID.EQ(postgres.UUID(m.OutlookID))).
		RETURNING(table.Outlook.AllColumns)

	out := model.Outlook{}
	err = query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to update %s outlook: %w", t.Horizon, ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to update %s outlook: %w", t.Horizon, err)
	}

	return outlookToDomain(out)
}

func outlookFromDomain(t domain.Thesis) (model.Outlook, error) {
	points := t.ThesisPoints
	if points == nil {
		points = []domain.ThesisPoint{}
	}
	pointsJson, err := toJsonb(points)
	if err != nil {
		return model.Outlook{}, err
	}
	positioning, err := toJsonb(nonNilStrings(t.Positioning))
	if err != nil {
		return model.Outlook{}, err
	}
	keyThemes, err := toJsonb(nonNilStrings(t.KeyThemes))
	if err != nil {
		return model.Outlook{}, err
	}
	supporting := t.SupportingSources
	if supporting == nil {
		supporting = map[string]float64{}
	}
	supportingJson, err := toJsonb(supporting)
	if err != nil {
		return model.Outlook{}, err
	}

	return model.Outlook{
		OutlookID:         t.OutlookID,
		Horizon:           string(t.Horizon),
		Title:             t.Title,
		Subtitle:          t.Subtitle,
		ThesisIntro:       t.Intro,
		ThesisPoints:      pointsJson,
		Positioning:       positioning,
		KeyThemes:         keyThemes,
		Sentiment:         string(t.Sentiment),
		Confidence:        int32(t.Confidence),
		SupportingSources: supportingJson,
		LastUpdated:       t.LastUpdated.UTC(),
	}, nil
}

func outlookToDomain(m model.Outlook) (*domain.Thesis, error) {
	out := domain.Thesis{
		OutlookID:         m.OutlookID,
		Horizon:           domain.Horizon(m.Horizon),
		Title:             m.Title,
		Subtitle:          m.Subtitle,
		Intro:             m.ThesisIntro,
		ThesisPoints:      []domain.ThesisPoint{},
		Positioning:       []string{},
		KeyThemes:         []string{},
		Sentiment:         domain.Sentiment(m.Sentiment),
		Confidence:        int(m.Confidence),
		SupportingSources: map[string]float64{},
		LastUpdated:       m.LastUpdated,
	}

	if err := fromJsonb(m.ThesisPoints, &out.ThesisPoints); err != nil {
		return nil, err
	}
	if err := fromJsonb(m.Positioning, &out.Positioning); err != nil {
		return nil, err
	}
	if err := fromJsonb(m.KeyThemes, &out.KeyThemes); err != nil {
		return nil, err
	}
	if err := fromJsonb(m.SupportingSources, &out.SupportingSources); err != nil {
		return nil, err
	}

	return &out, nil
}
