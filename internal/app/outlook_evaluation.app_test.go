package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"outlookengine/internal/domain"
	mock_repository "outlookengine/internal/repository/mocks"
	mock_l3_service "outlookengine/internal/service/l3/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/singleflight"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (outlookEvaluationAppHandler, *mock_repository.MockDocumentRepository, *mock_l3_service.MockOutlookUpdateService) {
	ctrl := gomock.NewController(t)
	documentRepository := mock_repository.NewMockDocumentRepository(ctrl)
	outlookUpdateService := mock_l3_service.NewMockOutlookUpdateService(ctrl)
	handler := outlookEvaluationAppHandler{
		DocumentRepository:   documentRepository,
		OutlookUpdateService: outlookUpdateService,
		Window:               30 * 24 * time.Hour,
		Now:                  func() time.Time { return testNow },
		inflight:             &singleflight.Group{},
	}
	return handler, documentRepository, outlookUpdateService
}

func TestEvaluateAll_isolatesHorizonFailures(t *testing.T) {
	handler, documentRepository, outlookUpdateService := newTestApp(t)

	window := []domain.Evidence{{Title: "one"}, {Title: "two"}}
	documentRepository.EXPECT().
		ListSince(testNow.Add(-30 * 24 * time.Hour)).
		Times(1).
		Return(window, nil)

	outlookUpdateService.EXPECT().
		RunCycle(gomock.Any(), domain.HorizonShort, window).
		Return(&domain.CycleResult{Horizon: domain.HorizonShort, Outcome: domain.CycleOutcomeUpdated}, nil)
	mediumErr := errors.New("failed to read medium thesis: db down")
	outlookUpdateService.EXPECT().
		RunCycle(gomock.Any(), domain.HorizonMedium, window).
		Return(nil, mediumErr)
	outlookUpdateService.EXPECT().
		RunCycle(gomock.Any(), domain.HorizonLong, window).
		Return(&domain.CycleResult{Horizon: domain.HorizonLong, Outcome: domain.CycleOutcomeDeclined}, nil)

	results, err := handler.EvaluateAll(context.Background())
	require.ErrorIs(t, err, mediumErr)
	require.Len(t, results, 3)

	require.Equal(t, domain.CycleOutcomeUpdated, results[0].Outcome)
	require.Equal(t, domain.HorizonMedium, results[1].Horizon)
	require.Equal(t, domain.CycleOutcomeFailed, results[1].Outcome)
	require.Equal(t, mediumErr.Error(), results[1].Error)
	require.Equal(t, 2, results[1].EvidenceEvaluated)
	require.Equal(t, domain.CycleOutcomeDeclined, results[2].Outcome)
}

func TestEvaluateAll_windowReadFailure(t *testing.T) {
	handler, documentRepository, _ := newTestApp(t)

	documentRepository.EXPECT().ListSince(gomock.Any()).Return(nil, errors.New("timeout"))

	results, err := handler.EvaluateAll(context.Background())
	require.ErrorContains(t, err, "failed to read evidence window")
	require.Nil(t, results)
}

func TestEvaluateHorizon_joinsRunningCycle(t *testing.T) {
	handler, documentRepository, outlookUpdateService := newTestApp(t)

	documentRepository.EXPECT().ListSince(gomock.Any()).Times(2).Return([]domain.Evidence{}, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	outlookUpdateService.EXPECT().
		RunCycle(gomock.Any(), domain.HorizonShort, gomock.Any()).
		Times(1).
		DoAndReturn(func(ctx context.Context, horizon domain.Horizon, window []domain.Evidence) (*domain.CycleResult, error) {
			close(started)
			<-release
			return &domain.CycleResult{Horizon: horizon, Outcome: domain.CycleOutcomeNoEvidence}, nil
		})

	var wg sync.WaitGroup
	results := make([]*domain.CycleResult, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = handler.EvaluateHorizon(context.Background(), domain.HorizonShort)
	}()
	<-started

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _ = handler.EvaluateHorizon(context.Background(), domain.HorizonShort)
	}()
	// let the second caller reach the in-flight cycle
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	require.Equal(t, domain.CycleOutcomeNoEvidence, results[0].Outcome)
	require.Equal(t, domain.CycleOutcomeNoEvidence, results[1].Outcome)
}
