package integration_tests

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"outlookengine/internal/app"
	"outlookengine/internal/db/models/postgres/public/table"
	"outlookengine/internal/domain"
	"outlookengine/internal/repository"
	l2_service "outlookengine/internal/service/l2"
	l3_service "outlookengine/internal/service/l3"
	"outlookengine/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func cleanup(t *testing.T, db *sql.DB) {
	for _, stmt := range []postgres.DeleteStatement{
		table.OutlookHistory.DELETE().WHERE(postgres.Bool(true)),
		table.Outlook.DELETE().WHERE(postgres.Bool(true)),
		table.Document.DELETE().WHERE(postgres.Bool(true)),
		table.Source.DELETE().WHERE(postgres.Bool(true)),
	} {
		_, err := stmt.Exec(db)
		require.NoError(t, err)
	}
}

func Test_outlookFlow(t *testing.T) {
	db, err := util.NewTestDb()
	require.NoError(t, err)
	if err := db.Ping(); err != nil {
		t.Skipf("test db unavailable: %v", err)
	}
	defer db.Close()
	cleanup(t, db)
	t.Cleanup(func() { cleanup(t, db) })

	ctx := context.Background()

	sourceRepository := repository.NewSourceRepository(db)
	documentRepository := repository.NewDocumentRepository(db)
	outlookRepository := repository.NewOutlookRepository(db)
	outlookHistoryRepository := repository.NewOutlookHistoryRepository(db)

	sourceService := l2_service.NewSourceService(sourceRepository)
	documentIngestService := l2_service.NewDocumentIngestService(sourceRepository, documentRepository)
	outlookService := l3_service.NewOutlookService(outlookRepository, outlookHistoryRepository)
	evaluationApp := app.NewOutlookEvaluationApp(
		documentRepository,
		l3_service.NewOutlookUpdateService(outlookRepository, outlookHistoryRepository, NewCannedSynthesizerRepository(), time.Second),
		30*24*time.Hour,
	)

	f, err := os.Open("sample_sources.csv")
	require.NoError(t, err)
	defer f.Close()
	sources, err := sourceService.ImportCSV(ctx, f)
	require.NoError(t, err)
	require.Len(t, sources, 2)
	require.Greater(t, sources[0].WeightedScore, 4.5)

	_, err = outlookService.SeedMissing(ctx)
	require.NoError(t, err)

	_, err = documentIngestService.Ingest(ctx, l2_service.DocumentInput{
		SourceID:       sources[0].SourceID,
		Title:          "Powell presser",
		PublishedAt:    time.Now().UTC().AddDate(0, 0, -1),
		Summary:        "cuts are further out than priced",
		Sentiment:      "cautious",
		SentimentScore: -0.3,
		Themes:         []string{"Fed Policy", "Liquidity"},
		Assets:         []string{"US Treasuries"},
	})
	require.NoError(t, err)

	results, err := evaluationApp.EvaluateAll(ctx)
	require.NoError(t, err)
	require.Len(t, results, 3)

	byHorizon := map[domain.Horizon]domain.CycleResult{}
	for _, r := range results {
		byHorizon[r.Horizon] = r
	}
	require.Equal(t, domain.CycleOutcomeUpdated, byHorizon[domain.HorizonShort].Outcome)

	short, err := outlookService.Get(domain.HorizonShort)
	require.NoError(t, err)
	require.Equal(t, domain.SentimentCautious, short.Sentiment)
	require.Equal(t, []string{"Fed Policy", "Liquidity"}, short.KeyThemes)

	for _, horizon := range domain.AllHorizons {
		history, err := outlookService.ListHistory(horizon, 10)
		require.NoError(t, err)
		require.Len(t, history, 1, horizon)
		require.Equal(t, 1, history[0].EvidenceCount)
	}
}
