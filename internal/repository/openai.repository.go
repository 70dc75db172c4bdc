package repository

import (
	"context"
	"fmt"
	"outlookengine/internal/domain"

	"github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = openai.GPT4o

type openAISynthesizerRepositoryHandler struct {
	Client *openai.Client
	Model  string
}

func NewOpenAISynthesizerRepository(apiKey, model string) SynthesizerRepository {
	if model == "" {
		model = defaultOpenAIModel
	}
	return openAISynthesizerRepositoryHandler{
		Client: openai.NewClient(apiKey),
		Model:  model,
	}
}

func (h openAISynthesizerRepositoryHandler) ProposeRevision(ctx context.Context, req domain.SynthesisRequest) (*domain.SynthesisResponse, error) {
	resp, err := h.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: h.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: synthesizerSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s thesis revision from openai: %w", req.Horizon, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("failed to get %s thesis revision from openai: no choices returned", req.Horizon)
	}

	return ParseSynthesisResponse(resp.Choices[0].Message.Content)
}
