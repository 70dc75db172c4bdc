package repository

import (
	"context"
	"fmt"
	"outlookengine/internal/domain"

	"github.com/ayush6624/go-chatgpt"
)

type gptSynthesizerRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptSynthesizerRepository(apiKey string) (SynthesizerRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptSynthesizerRepositoryHandler{
		GptClient: client,
	}, nil
}

func (h gptSynthesizerRepositoryHandler) ProposeRevision(ctx context.Context, req domain.SynthesisRequest) (*domain.SynthesisResponse, error) {
	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT4,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: synthesizerSystemPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: req.Prompt,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s thesis revision from gpt: %w", req.Horizon, err)
	}
	if len(res.Choices) == 0 {
		return nil, fmt.Errorf("failed to get %s thesis revision from gpt: no choices returned", req.Horizon)
	}

	return ParseSynthesisResponse(res.Choices[0].Message.Content)
}
