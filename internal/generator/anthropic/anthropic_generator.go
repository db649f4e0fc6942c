// Package anthropic implements the Claude Messages API generator.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"estudaia/internal/domain"
	"estudaia/internal/generator"
	"estudaia/internal/jsonrepair"
	"estudaia/internal/port"
)

const (
	defaultModel = "claude-sonnet-4-20250514"
	maxTokens    = 4000
	temperature  = 0.7
)

// Generator implements port.AnalysisGenerator using Anthropic Claude.
type Generator struct {
	model  string
	client anthropic.Client
	log    *zap.Logger
}

// New is the registry factory for Anthropic.
func New(s generator.Settings) (port.AnalysisGenerator, error) {
	return NewGenerator(s), nil
}

// NewGenerator creates a Claude generator. A non-empty BaseURL overrides the API host.
func NewGenerator(s generator.Settings) *Generator {
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

	opts := []option.RequestOption{
		option.WithAPIKey(s.APIKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if s.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimRight(s.BaseURL, "/")+"/"))
	}

	return &Generator{
		model:  model,
		client: anthropic.NewClient(opts...),
		log:    log.With(zap.String("provider", string(domain.ProviderAnthropic))),
	}
}

func (g *Generator) Provider() domain.ProviderName { return domain.ProviderAnthropic }

func (g *Generator) Model() string { return g.model }

// Generate sends one message and decodes the JSON object in the joined text blocks.
func (g *Generator) Generate(ctx context.Context, input port.GenerateInput) (*domain.AnalysisResult, error) {
	resp, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(g.model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(temperature),
		System:      []anthropic.TextBlockParam{{Text: generator.AnalysisSystemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(generator.BuildAnalysisPrompt(input.Text, input.Filename))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: anthropic: %v", domain.ErrProviderRequestFailed, err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	g.log.Debug("message received", zap.Int("length", text.Len()))
	if text.Len() == 0 {
		return nil, fmt.Errorf("%w: empty response", domain.ErrInvalidAIResponseFormat)
	}

	var result domain.AnalysisResult
	if err := jsonrepair.Decode(text.String(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Check lists models with the configured key.
func (g *Generator) Check(ctx context.Context) domain.ConnectivityResult {
	_, err := g.client.Models.List(ctx, anthropic.ModelListParams{})
	if err == nil {
		return domain.ConnectivityResult{OK: true, Status: http.StatusOK}
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		msg := generator.ErrorMessage([]byte(apiErr.RawJSON()))
		if msg == "" {
			msg = fmt.Sprintf("anthropic request failed (status %d)", apiErr.StatusCode)
		}
		return domain.ConnectivityResult{Status: apiErr.StatusCode, Message: msg}
	}
	return domain.ConnectivityResult{Message: err.Error()}
}
