package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"outlookengine/api"
	integration_tests "outlookengine/integration-tests"
	"outlookengine/internal/app"
	"outlookengine/internal/logger"
	"outlookengine/internal/repository"
	l2_service "outlookengine/internal/service/l2"
	l3_service "outlookengine/internal/service/l3"
	"outlookengine/internal/util"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

// connectDb retries the first ping so a cold database (or a Lambda
// starting alongside one) does not fail startup.
func connectDb(secrets util.DbSecrets) (*sql.DB, error) {
	dbConn, err := sql.Open("postgres", secrets.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 30 * time.Second
	err = backoff.RetryNotify(dbConn.Ping, b, func(err error, wait time.Duration) {
		logger.New().Warnf("db not ready, retrying in %s: %v", wait, err)
	})
	if err != nil {
		dbConn.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return dbConn, nil
}

func newSynthesizerRepository(secrets util.Secrets) (repository.SynthesizerRepository, error) {
	if strings.EqualFold(os.Getenv("OUTLOOK_ENV"), "test") {
		return integration_tests.NewCannedSynthesizerRepository(), nil
	}
	return repository.NewSynthesizerRepository(
		secrets.Synthesizer.Provider,
		secrets.SynthesizerApiKey(),
		secrets.Synthesizer.Model,
	)
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	synthesizerRepository, err := newSynthesizerRepository(*secrets)
	if err != nil {
		return nil, err
	}

	dbConn, err := connectDb(secrets.Db)
	if err != nil {
		return nil, err
	}

	sourceRepository := repository.NewSourceRepository(dbConn)
	documentRepository := repository.NewDocumentRepository(dbConn)
	outlookRepository := repository.NewOutlookRepository(dbConn)
	outlookHistoryRepository := repository.NewOutlookHistoryRepository(dbConn)

	sourceService := l2_service.NewSourceService(sourceRepository)
	documentIngestService := l2_service.NewDocumentIngestService(sourceRepository, documentRepository)
	outlookService := l3_service.NewOutlookService(outlookRepository, outlookHistoryRepository)
	outlookUpdateService := l3_service.NewOutlookUpdateService(
		outlookRepository,
		outlookHistoryRepository,
		synthesizerRepository,
		secrets.Synthesizer.Timeout(),
	)
	outlookEvaluationApp := app.NewOutlookEvaluationApp(
		documentRepository,
		outlookUpdateService,
		secrets.Evaluation.Window(),
	)

	apiHandler := &api.ApiHandler{
		Db:                    dbConn,
		ApiRequestRepository:  repository.ApiRequestRepositoryHandler{},
		OutlookService:        outlookService,
		OutlookEvaluationApp:  outlookEvaluationApp,
		SourceService:         sourceService,
		DocumentIngestService: documentIngestService,
		JwtDecodeToken:        secrets.Jwt,
		EvaluateLimiter:       api.NewEvaluateLimiter(),
		Port:                  secrets.Port,
	}

	return apiHandler, nil
}
