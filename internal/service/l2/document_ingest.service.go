package l2_service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"outlookengine/internal/domain"
	"outlookengine/internal/logger"
	"outlookengine/internal/repository"
	l1_service "outlookengine/internal/service/l1"

	"github.com/google/uuid"
)

type DocumentIngestService interface {
	Ingest(ctx context.Context, input DocumentInput) (*domain.Evidence, error)
}

// DocumentInput is the output of the upstream extraction step for one
// document.
type DocumentInput struct {
	SourceID       uuid.UUID           `json:"sourceID"`
	Title          string              `json:"title"`
	URL            *string             `json:"url"`
	Platform       string              `json:"platform"`
	PublishedAt    time.Time           `json:"publishedAt"`
	Summary        string              `json:"summary"`
	Sentiment      string              `json:"sentiment"`
	SentimentScore float64             `json:"sentimentScore"`
	Themes         []string            `json:"themes"`
	Assets         []string            `json:"assets"`
	Predictions    []domain.Prediction `json:"predictions"`
	KeyQuotes      []string            `json:"keyQuotes"`
}

type documentIngestServiceHandler struct {
	SourceRepository   repository.SourceRepository
	DocumentRepository repository.DocumentRepository
}

func NewDocumentIngestService(
	sourceRepository repository.SourceRepository,
	documentRepository repository.DocumentRepository,
) DocumentIngestService {
	return documentIngestServiceHandler{
		SourceRepository:   sourceRepository,
		DocumentRepository: documentRepository,
	}
}

func (h documentIngestServiceHandler) Ingest(ctx context.Context, input DocumentInput) (*domain.Evidence, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("failed to ingest document: title is required")
	}
	if input.PublishedAt.IsZero() {
		return nil, fmt.Errorf("failed to ingest document %s: published time is required", input.Title)
	}
	sentiment, err := domain.ParseSentiment(input.Sentiment)
	if err != nil {
		return nil, fmt.Errorf("failed to ingest document %s: %w", input.Title, err)
	}
	if math.IsNaN(input.SentimentScore) || input.SentimentScore < -1 || input.SentimentScore > 1 {
		return nil, fmt.Errorf("failed to ingest document %s: sentiment score %v outside [-1, 1]", input.Title, input.SentimentScore)
	}

	source, err := h.SourceRepository.Get(input.SourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to ingest document %s: %w", input.Title, err)
	}

	themes := nonNil(input.Themes)
	assets := nonNil(input.Assets)

	evidence := domain.Evidence{
		SourceID:            source.SourceID,
		SourceName:          source.Name,
		SourceWeightedScore: source.WeightedScore,
		Title:               input.Title,
		URL:                 input.URL,
		Platform:            input.Platform,
		PublishedAt:         input.PublishedAt.UTC(),
		Summary:             input.Summary,
		Sentiment:           sentiment,
		SentimentScore:      input.SentimentScore,
		Themes:              themes,
		Assets:              assets,
		Predictions:         l1_service.CanonicalizePredictions(input.Predictions, themes, assets),
		KeyQuotes:           nonNil(input.KeyQuotes),
	}

	inserted, err := h.DocumentRepository.Add(evidence)
	if err != nil {
		return nil, fmt.Errorf("failed to ingest document %s: %w", input.Title, err)
	}

	logger.FromContext(ctx).Infof("ingested document %s from %s with %d themes", inserted.DocumentID.String(), source.Name, len(themes))

	return inserted, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
