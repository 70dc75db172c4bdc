package main

import (
	"context"
	"log"

	"outlookengine/api"
	"outlookengine/cmd"
	"outlookengine/internal/domain"
	"outlookengine/internal/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

// evaluatorHandler runs one full evaluation cycle per scheduled event.
type evaluatorHandler struct {
	apiHandler *api.ApiHandler
}

func (m evaluatorHandler) Handler(ctx context.Context, event events.CloudWatchEvent) ([]domain.CycleResult, error) {
	lg := logger.New().With("eventID", event.ID)
	ctx = logger.WithLogger(ctx, lg)

	if _, err := m.apiHandler.OutlookService.SeedMissing(ctx); err != nil {
		return nil, err
	}

	results, err := m.apiHandler.OutlookEvaluationApp.EvaluateAll(ctx)
	for _, r := range results {
		lg.Infow("horizon evaluated", "horizon", r.Horizon, "outcome", r.Outcome, "error", r.Error)
	}
	if err != nil {
		lg.Errorf("evaluation finished with errors: %v", err)
	}

	return results, err
}

func main() {
	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	lambda.Start(evaluatorHandler{apiHandler: apiHandler}.Handler)
}
