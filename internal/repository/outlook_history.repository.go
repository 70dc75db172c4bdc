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
)

// OutlookHistoryRepository is append-only. Entries are never updated or
// deleted, so the interface has no methods for it.
type OutlookHistoryRepository interface {
	Add(e domain.HistoryEntry) (*domain.HistoryEntry, error)
	List(horizon domain.Horizon, limit int) ([]domain.HistoryEntry, error)
}

type outlookHistoryRepositoryHandler struct {
	Db *sql.DB
}

func NewOutlookHistoryRepository(db *sql.DB) OutlookHistoryRepository {
	return outlookHistoryRepositoryHandler{Db: db}
}

func (h outlookHistoryRepositoryHandler) Add(e domain.HistoryEntry) (*domain.HistoryEntry, error) {
	changes, err := toJsonb(nonNilStrings(e.ChangesSummary))
	if err != nil {
		return nil, err
	}

	m := model.OutlookHistory{
		OutlookID:          e.OutlookID,
		Horizon:            string(e.Horizon),
		Reasoning:          e.Reasoning,
		ChangesSummary:     changes,
		PreviousSentiment:  string(e.PreviousSentiment),
		NewSentiment:       string(e.NewSentiment),
		PreviousConfidence: int32(e.PreviousConfidence),
		NewConfidence:      int32(e.NewConfidence),
		EvidenceCount:      int32(e.EvidenceCount),
		CreatedAt:          time.Now().UTC(),
	}

	query := table.OutlookHistory.
		INSERT(table.OutlookHistory.MutableColumns).
		MODEL(m).
		RETURNING(table.OutlookHistory.AllColumns)

	out := model.OutlookHistory{}
	err = query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert %s outlook history: %w", e.Horizon, err)
	}

	return outlookHistoryToDomain(out)
}

func (h outlookHistoryRepositoryHandler) List(horizon domain.Horizon, limit int) ([]domain.HistoryEntry, error) {
	query := table.OutlookHistory.
		SELECT(table.OutlookHistory.AllColumns).
		WHERE(table.OutlookHistory.Horizon.EQ(postgres.String(string(horizon)))).
		ORDER_BY(table.OutlookHistory.CreatedAt.DESC()).
		LIMIT(int64(limit))

	result := []model.OutlookHistory{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return []domain.HistoryEntry{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list %s outlook history: %w", horizon, err)
	}

	out := []domain.HistoryEntry{}
	for _, r := range result {
		e, err := outlookHistoryToDomain(r)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}

	return out, nil
}

func outlookHistoryToDomain(m model.OutlookHistory) (*domain.HistoryEntry, error) {
	out := domain.HistoryEntry{
		OutlookHistoryID:   m.OutlookHistoryID,
		OutlookID:          m.OutlookID,
		Horizon:            domain.Horizon(m.Horizon),
		Reasoning:          m.Reasoning,
		ChangesSummary:     []string{},
		PreviousSentiment:  domain.Sentiment(m.PreviousSentiment),
		NewSentiment:       domain.Sentiment(m.NewSentiment),
		PreviousConfidence: int(m.PreviousConfidence),
		NewConfidence:      int(m.NewConfidence),
		EvidenceCount:      int(m.EvidenceCount),
		CreatedAt:          m.CreatedAt,
	}
	if err := fromJsonb(m.ChangesSummary, &out.ChangesSummary); err != nil {
		return nil, err
	}
	return &out, nil
}
