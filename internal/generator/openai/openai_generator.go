// Package openai implements the OpenAI-compatible chat completion generator.
// It also serves Grok, whose API speaks the same protocol.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"estudaia/internal/domain"
	"estudaia/internal/generator"
	"estudaia/internal/jsonrepair"
	"estudaia/internal/port"
)

const (
	defaultModel = "gpt-4o-mini"
	temperature  = 0.7
	maxTokens    = 4000
)

// Generator implements port.AnalysisGenerator over a chat completion API.
type Generator struct {
	provider domain.ProviderName
	model    string
	client   *goopenai.Client
	log      *zap.Logger
}

// New is the registry factory for OpenAI and Grok.
func New(s generator.Settings) (port.AnalysisGenerator, error) {
	return NewGenerator(s), nil
}

// NewGenerator creates a generator from settings. A non-empty BaseURL points
// the client at another OpenAI-compatible endpoint.
func NewGenerator(s generator.Settings) *Generator {
	provider := s.Provider
	if provider == "" {
		provider = domain.ProviderOpenAI
	}
	model := s.Model
	if model == "" {
		model = defaultModel
	}
	timeout := s.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	log := s.Logger
	if log == nil {
		log = zap.NewNop()
	}

	cfg := goopenai.DefaultConfig(s.APIKey)
	if s.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(s.BaseURL, "/")
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &Generator{
		provider: provider,
		model:    model,
		client:   goopenai.NewClientWithConfig(cfg),
		log:      log.With(zap.String("provider", string(provider))),
	}
}

func (g *Generator) Provider() domain.ProviderName { return g.provider }

func (g *Generator) Model() string { return g.model }

// Generate sends exactly one chat completion and parses the JSON object in the reply.
func (g *Generator) Generate(ctx context.Context, input port.GenerateInput) (*domain.AnalysisResult, error) {
	resp, err := g.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: g.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: generator.AnalysisSystemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: generator.BuildAnalysisPrompt(input.Text, input.Filename)},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrProviderRequestFailed, g.provider, err)
	}

	var content string
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
	}
	g.log.Debug("chat completion received", zap.Int("length", len(content)))
	if content == "" {
		return nil, fmt.Errorf("%w: empty response", domain.ErrInvalidAIResponseFormat)
	}

	span, err := jsonrepair.Extract(content)
	if err != nil {
		g.log.Warn("no JSON object in response", zap.String("head", truncate(content, 500)))
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAIResponseFormat, err)
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal([]byte(span), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAIResponseFormat, err)
	}
	return &result, nil
}

// Check lists the models visible to the key.
func (g *Generator) Check(ctx context.Context) domain.ConnectivityResult {
	_, err := g.client.ListModels(ctx)
	if err == nil {
		return domain.ConnectivityResult{OK: true, Status: http.StatusOK}
	}

	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		return domain.ConnectivityResult{Status: apiErr.HTTPStatusCode, Message: apiErr.Message}
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return domain.ConnectivityResult{
			Status:  reqErr.HTTPStatusCode,
			Message: fmt.Sprintf("%s request failed (status %d)", g.provider, reqErr.HTTPStatusCode),
		}
	}
	return domain.ConnectivityResult{Message: err.Error()}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
