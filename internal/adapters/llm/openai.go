// Package llm provides the chat completion client used to narrate analysis
// results and answer free-form pet questions.
package llm

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

var ErrUnavailable = errors.New("llm: no client configured")

// Request is one completion call. Model, MaxTokens and Temperature come
// from the prompt template for the user's tier.
type Request struct {
	System      string
	User        string
	Model       string
	MaxTokens   int
	Temperature float32
}

// Completer produces one assistant response for a system+user prompt pair.
// Callers must treat failures as soft: the bot falls back to locally
// rendered text whenever the completer errors.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// OpenAIClient calls the OpenAI chat completion API.
type OpenAIClient struct {
	client       *openai.Client
	defaultModel string
}

// NewOpenAIClient builds an OpenAI-backed completer. An empty API key
// yields a client whose Complete always returns ErrUnavailable, which
// keeps the DSN-less dev setup working without credentials.
func NewOpenAIClient(apiKey, defaultModel string) *OpenAIClient {
	if defaultModel == "" {
		defaultModel = "gpt-4o-mini"
	}
	c := &OpenAIClient{defaultModel: defaultModel}
	if strings.TrimSpace(apiKey) != "" {
		c.client = openai.NewClient(apiKey)
	}
	return c
}

func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	if c.client == nil {
		return "", ErrUnavailable
	}

	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
