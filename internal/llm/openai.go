// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/pdiddy/blogsmith/pkg/types"
)

// openAIClient implements Client with the official openai-go SDK.
type openAIClient struct {
	client    openai.Client
	model     openai.ChatModel
	maxTokens int
}

func newOpenAI(cfg types.LLMConfig) (*openAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key missing; provide llm.api_key or .secrets/openai-api-key")
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &openAIClient{
		client:    openai.NewClient(opts...),
		model:     openai.ChatModel(model),
		maxTokens: maxTokens,
	}, nil
}

func (c *openAIClient) Complete(ctx context.Context, prompt Prompt) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
		Temperature:         openai.Float(prompt.Temperature),
		MaxCompletionTokens: openai.Int(int64(c.maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}
	return resp.Choices[0].Message.Content, nil
}
