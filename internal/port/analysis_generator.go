package port

import (
	"context"

	"estudaia/internal/domain"
)

// GenerateInput carries the extracted document text sent to a provider.
type GenerateInput struct {
	Text     string
	Filename string
}

// AnalysisGenerator abstracts an AI provider that turns document text into study material.
type AnalysisGenerator interface {
	Provider() domain.ProviderName
	Model() string
	Generate(ctx context.Context, input GenerateInput) (*domain.AnalysisResult, error)
}

// TermExplainer is implemented by generators that can explain a single term.
type TermExplainer interface {
	Explain(ctx context.Context, term string) (*domain.Explanation, error)
}

// ConceptNormalizer is implemented by generators that can rewrite a key concept
// into the canonical concept shape.
type ConceptNormalizer interface {
	NormalizeConcept(ctx context.Context, concept map[string]any) (map[string]any, error)
}

// DocumentTranscriber is implemented by generators that can read text straight
// from a PDF when local extraction yields too little.
type DocumentTranscriber interface {
	TranscribePDF(ctx context.Context, data []byte) (string, error)
}

// ConnectivityChecker verifies that a provider accepts the configured credential.
type ConnectivityChecker interface {
	Check(ctx context.Context) domain.ConnectivityResult
}

// ProviderOptions are the per-request provider overrides. APIKey is never persisted.
type ProviderOptions struct {
	Provider string
	APIKey   string
	Model    string
}

// Selection reports which provider and model produced a result.
type Selection struct {
	Provider domain.ProviderName `json:"provider"`
	Model    string              `json:"model"`
}

// AnalysisDispatcher routes AI work to the provider resolved for a request.
type AnalysisDispatcher interface {
	Generate(ctx context.Context, input GenerateInput, opts ProviderOptions) (*domain.AnalysisResult, Selection, error)
	Explain(ctx context.Context, term string, opts ProviderOptions) (*domain.Explanation, error)
	NormalizeConcept(ctx context.Context, concept map[string]any, opts ProviderOptions) (map[string]any, error)
	TranscribePDF(ctx context.Context, data []byte, opts ProviderOptions) (string, error)
	ConfiguredProviders() []domain.ProviderStatus
	CheckConnectivity(ctx context.Context, keys map[string]string) map[string]domain.ConnectivityResult
}
