package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"outlookengine/internal/db/models/postgres/public/model"
	"outlookengine/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type SourceRepository interface {
	Add(m model.Source) (*model.Source, error)
	Get(id uuid.UUID) (*model.Source, error)
	GetByName(name string) (*model.Source, error)
	List() ([]model.Source, error)
	Update(m model.Source) (*model.Source, error)
}

type sourceRepositoryHandler struct {
	Db *sql.DB
}

func NewSourceRepository(db *sql.DB) SourceRepository {
	return sourceRepositoryHandler{Db: db}
}

func (h sourceRepositoryHandler) Add(m model.Source) (*model.Source, error) {
	m.CreatedAt = time.Now().UTC()
	m.ModifiedAt = time.Now().UTC()

	query := table.Source.
		INSERT(table.Source.MutableColumns).
		MODEL(m).
		RETURNING(table.Source.AllColumns)

	out := model.Source{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert source: %w", err)
	}

	return &out, nil
}

func (h sourceRepositoryHandler) Get(id uuid.UUID) (*model.Source, error) {
	query := table.Source.
		SELECT(table.Source.AllColumns).
		WHERE(table.Source.SourceID.EQ(postgres.UUID(id)))

	out := model.Source{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to get source %s: %w", id.String(), ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get source %s: %w", id.String(), err)
	}

	return &out, nil
}

func (h sourceRepositoryHandler) GetByName(name string) (*model.Source, error) {
	query := table.Source.
		SELECT(table.Source.AllColumns).
		WHERE(table.Source.Name.EQ(postgres.String(name)))

	out := model.Source{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to get source %s: %w", name, ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get source %s: %w", name, err)
	}

	return &out, nil
}

func (h sourceRepositoryHandler) List() ([]model.Source, error) {
	query := table.Source.
		SELECT(table.Source.AllColumns).
		ORDER_BY(table.Source.Name.ASC())

	out := []model.Source{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return []model.Source{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}

	return out, nil
}

// Update writes every mutable column, so dimension scores and the
// weighted score derived from them always land in the same statement.
func (h sourceRepositoryHandler) Update(m model.Source) (*model.Source, error) {
	if m.SourceID == uuid.Nil {
		return nil, fmt.Errorf("failed to update source - id not provided in inputted model")
	}
	m.ModifiedAt = time.Now().UTC()

	query := table.Source.
		UPDATE(table.Source.MutableColumns.Except(table.Source.CreatedAt)).
		MODEL(m).
		WHERE(table.Source.SourceID.EQ(postgres.UUID(m.SourceID))).
		RETURNING(table.Source.AllColumns)

	out := model.Source{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to update source %s: %w", m.SourceID.String(), ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to update source %s: %w", m.SourceID.String(), err)
	}

	return &out, nil
}
