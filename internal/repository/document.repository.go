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

// DocumentRepository stores analyzed documents. Documents are immutable
// once added, so there is no update method.
type DocumentRepository interface {
	Add(e domain.Evidence) (*domain.Evidence, error)
	ListSince(since time.Time) ([]domain.Evidence, error)
}

type documentRepositoryHandler struct {
	Db *sql.DB
}

func NewDocumentRepository(db *sql.DB) DocumentRepository {
	return documentRepositoryHandler{Db: db}
}

type documentWithSource struct {
	model.Document
	Source model.Source
}

func (h documentRepositoryHandler) Add(e domain.Evidence) (*domain.Evidence, error) {
	m, err := documentFromDomain(e)
	if err != nil {
		return nil, err
	}
	m.CreatedAt = time.Now().UTC()

	query := table.Document.
		INSERT(table.Document.MutableColumns).
		MODEL(m).
		RETURNING(table.Document.AllColumns)

	out := model.Document{}
	err = query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}

	inserted, err := documentToDomain(out, nil)
	if err != nil {
		return nil, err
	}
	inserted.SourceName = e.SourceName
	inserted.SourceWeightedScore = e.SourceWeightedScore

	return inserted, nil
}

// ListSince returns every document published at or after since, joined
// with its source's name and weighted score. Newest first, ties by id.
func (h documentRepositoryHandler) ListSince(since time.Time) ([]domain.Evidence, error) {
	query := postgres.
		SELECT(
			table.Document.AllColumns,
			table.Source.AllColumns,
		).
		FROM(
			table.Document.INNER_JOIN(
				table.Source,
				table.Document.SourceID.EQ(table.Source.SourceID),
			),
		).
		WHERE(
			table.Document.PublishedAt.GT_EQ(postgres.TimestampzT(since.UTC())),
		).
		ORDER_BY(
			table.Document.PublishedAt.DESC(),
			table.Document.DocumentID.ASC(),
		)

	result := []documentWithSource{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return []domain.Evidence{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list documents since %s: %w", since.Format(time.RFC3339), err)
	}

	out := make([]domain.Evidence, 0, len(result))
	for _, r := range result {
		source := r.Source
		e, err := documentToDomain(r.Document, &source)
		if err != nil {
			return nil, fmt.Errorf("failed to convert document %s: %w", r.DocumentID.String(), err)
		}
		out = append(out, *e)
	}

	return out, nil
}

func documentFromDomain(e domain.Evidence) (model.Document, error) {
	themes, err := toJsonb(nonNilStrings(e.Themes))
	if err != nil {
		return model.Document{}, err
	}
	assets, err := toJsonb(nonNilStrings(e.Assets))
	if err != nil {
		return model.Document{}, err
	}
	predictions := e.Predictions
	if predictions == nil {
		predictions = []domain.Prediction{}
	}
	predictionsJson, err := toJsonb(predictions)
	if err != nil {
		return model.Document{}, err
	}
	quotes, err := toJsonb(nonNilStrings(e.KeyQuotes))
	if err != nil {
		return model.Document{}, err
	}

	return model.Document{
		DocumentID:     e.DocumentID,
		SourceID:       e.SourceID,
		Title:          e.Title,
		URL:            e.URL,
		Platform:       e.Platform,
		PublishedAt:    e.PublishedAt.UTC(),
		Summary:        e.Summary,
		Sentiment:      string(e.Sentiment),
		SentimentScore: e.SentimentScore,
		Themes:         themes,
		Assets:         assets,
		Predictions:    predictionsJson,
		KeyQuotes:      quotes,
	}, nil
}

func documentToDomain(m model.Document, source *model.Source) (*domain.Evidence, error) {
	out := domain.Evidence{
		DocumentID:     m.DocumentID,
		SourceID:       m.SourceID,
		Title:          m.Title,
		URL:            m.URL,
		Platform:       m.Platform,
		PublishedAt:    m.PublishedAt,
		Summary:        m.Summary,
		Sentiment:      domain.Sentiment(m.Sentiment),
		SentimentScore: m.SentimentScore,
		Themes:         []string{},
		Assets:         []string{},
		Predictions:    []domain.Prediction{},
		KeyQuotes:      []string{},
	}
	if source != nil {
		out.SourceName = source.Name
		out.SourceWeightedScore = source.WeightedScore
	}

	if err := fromJsonb(m.Themes, &out.Themes); err != nil {
		return nil, err
	}
	if err := fromJsonb(m.Assets, &out.Assets); err != nil {
		return nil, err
	}
	if err := fromJsonb(m.Predictions, &out.Predictions); err != nil {
		return nil, err
	}
	if err := fromJsonb(m.KeyQuotes, &out.KeyQuotes); err != nil {
		return nil, err
	}

	return &out, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
