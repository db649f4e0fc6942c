// Package gemini implements the Google Gemini REST generator with its
// multi-model fallback loop, term explanation, concept normalization and PDF
// transcription.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"estudaia/internal/domain"
	"estudaia/internal/generator"
	"estudaia/internal/jsonrepair"
	"estudaia/internal/port"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	latestSuffix   = "-latest"

	analysisTemperature   = 0.7
	explainTemperature    = 0.4
	normalizeTemperature  = 0.3
	transcribeTemperature = 0.2
	transcribeMaxTokens   = 8192

	jsonMimeType = "application/json"
	pdfMimeType  = "application/pdf"
)

// Generator talks to the generateContent endpoint with the key in the query string.
type Generator struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

var (
	_ port.AnalysisGenerator   = (*Generator)(nil)
	_ port.TermExplainer       = (*Generator)(nil)
	_ port.ConceptNormalizer   = (*Generator)(nil)
	_ port.DocumentTranscriber = (*Generator)(nil)
	_ port.ConnectivityChecker = (*Generator)(nil)
)

// New is the registry factory for Google.
func New(s generator.Settings) (port.AnalysisGenerator, error) {
	return NewGenerator(s), nil
}

// NewGenerator creates a Gemini generator. BaseURL overrides the API root (for testing).
func NewGenerator(s generator.Settings) *Generator {
	model := s.Model
	if model == "" {
		model = generator.DefaultGeminiModel
	}
	baseURL := strings.TrimRight(s.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := s.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	log := s.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		apiKey:  s.APIKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log.With(zap.String("provider", string(domain.ProviderGoogle))),
	}
}

func (g *Generator) Provider() domain.ProviderName { return domain.ProviderGoogle }

func (g *Generator) Model() string { return g.model }

// Candidates returns the models tried, in order, for a requested model.
// The list is not de-duplicated: gemini-flash-latest is attempted twice.
func Candidates(model string) []string {
	out := []string{model}
	if !strings.HasSuffix(model, latestSuffix) {
		out = append(out, model+latestSuffix)
	}
	return append(out, generator.DefaultGeminiModel)
}

// Generate tries each candidate model in turn. Transport errors, non-2xx
// answers, empty text and text without a JSON object move on to the next
// candidate; a JSON object that cannot be repaired fails immediately.
func (g *Generator) Generate(ctx context.Context, input port.GenerateInput) (*domain.AnalysisResult, error) {
	req := request{
		SystemInstruction: systemContent(analysisSystemPrompt),
		Contents:          []content{userContent(part{Text: buildAnalysisPrompt(input.Text, input.Filename)})},
		GenerationConfig:  generationConfig{Temperature: analysisTemperature, ResponseMimeType: jsonMimeType},
	}

	var lastErr string
	for _, model := range Candidates(g.model) {
		g.log.Info("calling gemini",
			zap.String("model", model),
			zap.Int("text_length", len(input.Text)),
			zap.String("filename", input.Filename),
		)

		parts, err := g.generateContent(ctx, model, req)
		if err != nil {
			lastErr = err.Error()
			g.log.Warn("gemini candidate failed", zap.String("model", model), zap.String("error", lastErr))
			continue
		}
		text := firstPart(parts)
		if text == "" {
			lastErr = "empty response from Gemini"
			continue
		}
		span, err := jsonrepair.Extract(text)
		if err != nil {
			lastErr = "invalid response format from Gemini"
			continue
		}

		var result domain.AnalysisResult
		if err := jsonrepair.Parse(span, &result); err != nil {
			if errors.Is(err, jsonrepair.ErrSchemaMismatch) {
				lastErr = err.Error()
				g.log.Warn("gemini response does not fit the analysis schema", zap.String("model", model), zap.Error(err))
				continue
			}
			return nil, err
		}
		return &result, nil
	}

	if lastErr == "" {
		lastErr = "could not generate with Gemini"
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrGeminiGenerationFailed, lastErr)
}

// Explain asks for a short explanation of term. Text without a JSON object is
// returned as the explanation itself.
func (g *Generator) Explain(ctx context.Context, term string) (*domain.Explanation, error) {
	parts, err := g.generateContent(ctx, g.model, request{
		SystemInstruction: systemContent(explainSystemPrompt),
		Contents:          []content{userContent(part{Text: buildExplainPrompt(term)})},
		GenerationConfig:  generationConfig{Temperature: explainTemperature, ResponseMimeType: jsonMimeType},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderRequestFailed, err)
	}

	text := firstPart(parts)
	span, err := jsonrepair.Extract(text)
	if err != nil {
		return &domain.Explanation{Explanation: text}, nil
	}
	var out domain.Explanation
	if err := jsonrepair.Parse(span, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NormalizeConcept rewrites a key concept into the canonical concept schema.
func (g *Generator) NormalizeConcept(ctx context.Context, concept map[string]any) (map[string]any, error) {
	input, err := json.Marshal(concept)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConcept, err)
	}

	parts, err := g.generateContent(ctx, g.model, request{
		SystemInstruction: systemContent(normalizeSystemPrompt),
		Contents:          []content{userContent(part{Text: buildNormalizePrompt(input)})},
		GenerationConfig:  generationConfig{Temperature: normalizeTemperature, ResponseMimeType: jsonMimeType},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderRequestFailed, err)
	}

	span, err := jsonrepair.Extract(firstPart(parts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAIResponseFormat, err)
	}
	var out map[string]any
	if err := jsonrepair.Parse(span, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TranscribePDF sends the PDF inline and returns every text part joined by newlines.
func (g *Generator) TranscribePDF(ctx context.Context, data []byte) (string, error) {
	g.log.Info("transcribing pdf", zap.String("model", g.model), zap.Int("size", len(data)))

	parts, err := g.generateContent(ctx, g.model, request{
		SystemInstruction: systemContent(transcribeSystemPrompt),
		Contents: []content{userContent(
			part{InlineData: &inlineData{MimeType: pdfMimeType, Data: base64.StdEncoding.EncodeToString(data)}},
			part{Text: transcribeUserPrompt},
		)},
		GenerationConfig: generationConfig{Temperature: transcribeTemperature, MaxOutputTokens: transcribeMaxTokens},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrProviderRequestFailed, err)
	}

	texts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			texts = append(texts, p)
		}
	}
	text := strings.TrimSpace(strings.Join(texts, "\n"))
	g.log.Info("pdf transcribed", zap.Int("chars", len(text)))
	return text, nil
}

// Check lists models with the key.
func (g *Generator) Check(ctx context.Context) domain.ConnectivityResult {
	endpoint := fmt.Sprintf("%s/models?key=%s", g.baseURL, url.QueryEscape(g.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.ConnectivityResult{Message: err.Error()}
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return domain.ConnectivityResult{Message: transportMessage(err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := generator.NewAPIError(domain.ProviderGoogle, resp.StatusCode, body,
			fmt.Sprintf("gemini request failed (status %d)", resp.StatusCode))
		return domain.ConnectivityResult{Status: resp.StatusCode, Message: apiErr.Message}
	}
	return domain.ConnectivityResult{OK: true, Status: resp.StatusCode}
}

// generateContent performs one generateContent call and returns the text parts
// of the first candidate.
func (g *Generator) generateContent(ctx context.Context, model string, body request) ([]string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, url.PathEscape(model), url.QueryEscape(g.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.New(transportMessage(err))
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, generator.NewAPIError(domain.ProviderGoogle, resp.StatusCode, respBody,
			fmt.Sprintf("gemini request failed (status %d)", resp.StatusCode))
	}

	var parsed response
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return nil, nil
	}
	parts := make([]string, 0, len(parsed.Candidates[0].Content.Parts))
	for _, p := range parsed.Candidates[0].Content.Parts {
		parts = append(parts, p.Text)
	}
	return parts, nil
}

// transportMessage drops the request URL, which carries the API key.
func transportMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err.Error()
	}
	return err.Error()
}

func firstPart(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}
