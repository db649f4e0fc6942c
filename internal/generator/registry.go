package generator

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"estudaia/internal/domain"
	"estudaia/internal/port"
)

// DefaultGeminiModel is used whenever the google provider is selected without a model.
const DefaultGeminiModel = "gemini-flash-latest"

// Settings is everything a provider factory needs to build a generator.
type Settings struct {
	Provider domain.ProviderName
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
	Logger   *zap.Logger
}

// Factory creates an AnalysisGenerator from settings.
type Factory func(s Settings) (port.AnalysisGenerator, error)

// Registry maps provider names to their factories.
type Registry map[domain.ProviderName]Factory

// NewRegistry returns an empty registry.
func NewRegistry() Registry {
	return Registry{}
}

// Register adds or replaces the factory for a provider.
func (r Registry) Register(name domain.ProviderName, factory Factory) {
	r[name] = factory
}

// Build creates the generator registered under s.Provider.
func (r Registry) Build(s Settings) (port.AnalysisGenerator, error) {
	factory, ok := r[s.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown AI provider: %s", s.Provider)
	}
	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}
	return factory(s)
}
