package repository

import (
	"database/sql"
	"fmt"
)

type UsageStats struct {
	Sources         int `json:"sources"`
	Documents       int `json:"documents"`
	CyclesRun       int `json:"cycles"`
	ThesisRevisions int `json:"revisions"`
}

func GetUsageStats(tx *sql.DB) (*UsageStats, error) {
	query := `select
	(select count(*) from source) as "num_sources",
	(select count(*) from document) as "num_documents",
	(select count(*) from outlook_history) as "num_cycles",
	(select count(*) from outlook_history where jsonb_array_length(changes_summary) > 0) as "num_revisions";`

	row := tx.QueryRow(query)

	out := UsageStats{}

	err := row.Scan(&out.Sources, &out.Documents, &out.CyclesRun, &out.ThesisRevisions)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage stats: %w", err)
	}

	return &out, nil
}
