package l3_service

import (
	"context"
	"errors"
	"testing"

	"outlookengine/internal/domain"
	"outlookengine/internal/repository"
	mock_repository "outlookengine/internal/repository/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutlookService_SeedMissing(t *testing.T) {
	t.Run("creates only missing horizons", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		outlookRepository := mock_repository.NewMockOutlookRepository(ctrl)
		handler := NewOutlookService(outlookRepository, mock_repository.NewMockOutlookHistoryRepository(ctrl))

		existing := domain.NewDefaultThesis(domain.HorizonShort)
		outlookRepository.EXPECT().Get(domain.HorizonShort).Return(&existing, nil)
		outlookRepository.EXPECT().Get(domain.HorizonMedium).Return(nil, repository.ErrNotFound)
		outlookRepository.EXPECT().Get(domain.HorizonLong).Return(nil, repository.ErrNotFound)
		outlookRepository.EXPECT().
			Add(gomock.Any()).
			Times(2).
			DoAndReturn(func(t2 domain.Thesis) (*domain.Thesis, error) {
				require.Equal(t, domain.SentimentNeutral, t2.Sentiment)
				require.Equal(t, 50, t2.Confidence)
				require.False(t, t2.LastUpdated.IsZero())
				return &t2, nil
			})

		created, err := handler.SeedMissing(context.Background())
		require.NoError(t, err)
		require.Len(t, created, 2)
		require.Equal(t, domain.HorizonMedium, created[0].Horizon)
		require.Equal(t, domain.HorizonLong, created[1].Horizon)
	})

	t.Run("stops on read failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		outlookRepository := mock_repository.NewMockOutlookRepository(ctrl)
		handler := NewOutlookService(outlookRepository, mock_repository.NewMockOutlookHistoryRepository(ctrl))

		outlookRepository.EXPECT().Get(domain.HorizonShort).Return(nil, errors.New("db down"))

		_, err := handler.SeedMissing(context.Background())
		require.ErrorContains(t, err, "db down")
	})
}

func TestOutlookService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	outlookRepository := mock_repository.NewMockOutlookRepository(ctrl)
	handler := NewOutlookService(outlookRepository, mock_repository.NewMockOutlookHistoryRepository(ctrl))

	outlookRepository.EXPECT().List().Return([]domain.Thesis{
		domain.NewDefaultThesis(domain.HorizonLong),
		domain.NewDefaultThesis(domain.HorizonShort),
		domain.NewDefaultThesis(domain.HorizonMedium),
	}, nil)

	got, err := handler.List()
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, horizon := range domain.AllHorizons {
		require.Equal(t, horizon, got[i].Horizon)
	}
}

func TestOutlookService_ListHistory(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "default", limit: 0, expected: DefaultHistoryLimit},
		{name: "explicit", limit: 5, expected: 5},
		{name: "capped", limit: 10000, expected: MaxHistoryLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			historyRepository := mock_repository.NewMockOutlookHistoryRepository(ctrl)
			handler := NewOutlookService(mock_repository.NewMockOutlookRepository(ctrl), historyRepository)

			historyRepository.EXPECT().List(domain.HorizonMedium, tt.expected).Return([]domain.HistoryEntry{}, nil)

			_, err := handler.ListHistory(domain.HorizonMedium, tt.limit)
			require.NoError(t, err)
		})
	}
}
