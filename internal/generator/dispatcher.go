package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"estudaia/internal/config"
	"estudaia/internal/domain"
	"estudaia/internal/port"
)

// Dispatcher resolves the provider for each request and normalizes its outcome
// into a single result or a typed error.
type Dispatcher struct {
	registry Registry
	cfg      config.AIConfig
	log      *zap.Logger
}

var _ port.AnalysisDispatcher = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher over the given provider registry.
func NewDispatcher(registry Registry, cfg *config.AIConfig, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{registry: registry, cfg: *cfg, log: log.Named("dispatcher")}
}

// Resolve picks the provider, credential and model for a request.
//
// An explicit non-OpenAI provider with a key (request key, else configured key)
// wins. Everything else goes through the OpenAI-compatible path, whose key is the
// request key, the configured OpenAI key or the environment fallback. Without an
// explicit provider the remaining configured providers are tried in priority
// order, and the demo payload is used last when sample data is enabled.
func (d *Dispatcher) Resolve(opts port.ProviderOptions) (Settings, error) {
	requested := strings.TrimSpace(opts.Provider)
	name, known := domain.ParseProviderName(requested)

	if known && name != domain.ProviderOpenAI && name != domain.ProviderDemo {
		pc := d.providerConfig(name)
		if key := firstNonEmpty(opts.APIKey, pc.APIKey); key != "" {
			return d.settings(name, key, firstNonEmpty(opts.Model, pc.DefaultModel), pc.BaseURL), nil
		}
	}

	openaiKey := firstNonEmpty(opts.APIKey, d.cfg.OpenAI.APIKey, d.cfg.FallbackOpenAIKey)
	if openaiKey != "" {
		model := d.cfg.OpenAI.DefaultModel
		if !known || name == domain.ProviderOpenAI {
			model = firstNonEmpty(opts.Model, model)
		}
		return d.settings(domain.ProviderOpenAI, openaiKey, model, d.cfg.OpenAI.BaseURL), nil
	}

	if requested == "" {
		for _, candidate := range []domain.ProviderName{domain.ProviderAnthropic, domain.ProviderGoogle, domain.ProviderGrok} {
			pc := d.providerConfig(candidate)
			if pc.Configured() {
				return d.settings(candidate, pc.APIKey, firstNonEmpty(opts.Model, pc.DefaultModel), pc.BaseURL), nil
			}
		}
	}

	if d.cfg.UseSampleData {
		return Settings{Provider: domain.ProviderDemo, Model: string(domain.ProviderDemo), Logger: d.log}, nil
	}
	return Settings{}, domain.ErrProviderNotConfigured
}

// Generate produces the study analysis for the extracted text.
func (d *Dispatcher) Generate(ctx context.Context, input port.GenerateInput, opts port.ProviderOptions) (*domain.AnalysisResult, port.Selection, error) {
	gen, err := d.build(opts)
	if err != nil {
		if errors.Is(err, domain.ErrProviderNotConfigured) {
			d.log.Warn("no AI provider configured, aborting analysis")
		}
		return nil, port.Selection{}, err
	}
	sel := port.Selection{Provider: gen.Provider(), Model: gen.Model()}

	d.log.Info("generating analysis",
		zap.String("provider", string(sel.Provider)),
		zap.String("model", sel.Model),
		zap.Int("text_length", len(input.Text)),
		zap.String("filename", input.Filename),
	)
	result, err := gen.Generate(ctx, input)
	if err != nil {
		d.log.Error("analysis generation failed",
			zap.String("provider", string(sel.Provider)),
			zap.Error(err),
		)
		return nil, sel, err
	}
	return result, sel, nil
}

// Explain explains a single term. Provider defaults to google; when no
// explaining provider resolves, the term itself is returned.
func (d *Dispatcher) Explain(ctx context.Context, term string, opts port.ProviderOptions) (*domain.Explanation, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.ErrEmptyTerm
	}
	if opts.Provider == "" {
		opts.Provider = string(domain.ProviderGoogle)
	}
	gen, err := d.build(opts)
	if err != nil {
		return &domain.Explanation{Explanation: term}, nil
	}
	explainer, ok := gen.(port.TermExplainer)
	if !ok {
		return &domain.Explanation{Explanation: term}, nil
	}
	return explainer.Explain(ctx, term)
}

// NormalizeConcept rewrites a key concept into the canonical shape, or returns
// it unchanged when no normalizing provider resolves.
func (d *Dispatcher) NormalizeConcept(ctx context.Context, concept map[string]any, opts port.ProviderOptions) (map[string]any, error) {
	if name, _ := concept["concept"].(string); strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidConcept
	}
	gen, err := d.build(opts)
	if err != nil {
		return concept, nil
	}
	normalizer, ok := gen.(port.ConceptNormalizer)
	if !ok {
		return concept, nil
	}
	return normalizer.NormalizeConcept(ctx, concept)
}

// TranscribePDF reads text straight from a PDF using a provider that supports it.
func (d *Dispatcher) TranscribePDF(ctx context.Context, data []byte, opts port.ProviderOptions) (string, error) {
	gen, err := d.build(opts)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTranscriptionUnavailable, err)
	}
	transcriber, ok := gen.(port.DocumentTranscriber)
	if !ok {
		return "", domain.ErrTranscriptionUnavailable
	}
	return transcriber.TranscribePDF(ctx, data)
}

// ConfiguredProviders lists the server-side providers without their keys.
// The active one is the first configured in priority order.
func (d *Dispatcher) ConfiguredProviders() []domain.ProviderStatus {
	var out []domain.ProviderStatus
	for _, name := range domain.ProviderPriority {
		pc := d.providerConfig(name)
		configured := pc.Configured()
		if name == domain.ProviderOpenAI && d.cfg.FallbackOpenAIKey != "" {
			configured = true
		}
		if !configured {
			continue
		}
		out = append(out, domain.ProviderStatus{
			Name:   name,
			Model:  pc.DefaultModel,
			Active: len(out) == 0,
		})
	}
	return out
}

func (d *Dispatcher) build(opts port.ProviderOptions) (port.AnalysisGenerator, error) {
	s, err := d.Resolve(opts)
	if err != nil {
		return nil, err
	}
	return d.registry.Build(s)
}

func (d *Dispatcher) settings(name domain.ProviderName, key, model, baseURL string) Settings {
	if name == domain.ProviderGoogle && model == "" {
		model = DefaultGeminiModel
	}
	return Settings{
		Provider: name,
		APIKey:   key,
		Model:    model,
		BaseURL:  baseURL,
		Timeout:  d.cfg.Timeout(),
		Logger:   d.log,
	}
}

func (d *Dispatcher) providerConfig(name domain.ProviderName) config.ProviderConfig {
	switch name {
	case domain.ProviderOpenAI:
		return d.cfg.OpenAI
	case domain.ProviderAnthropic:
		return d.cfg.Anthropic
	case domain.ProviderGoogle:
		return d.cfg.Google
	case domain.ProviderGrok:
		return d.cfg.Grok
	default:
		return config.ProviderConfig{}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
