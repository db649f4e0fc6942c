package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"estudaia/internal/config"
	"estudaia/internal/domain"
	"estudaia/internal/generator"
	"estudaia/internal/port"
)

// AnalyzeInput is the DTO for one analysis request. Exactly one of Data,
// BlobKey or BlobURL carries the document.
type AnalyzeInput struct {
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
	BlobKey     string
	BlobURL     string

	Provider string
	APIKey   string
	Model    string
	Save     bool
}

// AnalyzeMeta reports how the analysis was produced.
type AnalyzeMeta struct {
	Provider domain.ProviderName `json:"provider"`
	Model    string              `json:"model"`
	RecordID *int64              `json:"recordId,omitempty"`
}

// AnalyzeOutput is the analysis pipeline result.
type AnalyzeOutput struct {
	Result *domain.AnalysisResult `json:"result"`
	Meta   AnalyzeMeta            `json:"meta"`
}

// AnalysisService defines the document analysis pipeline.
type AnalysisService interface {
	Analyze(ctx context.Context, input AnalyzeInput) (*AnalyzeOutput, error)
}

type analysisService struct {
	dispatcher port.AnalysisDispatcher
	extractor  port.TextExtractor
	records    port.AnalysisRepository
	storage    port.ObjectStorage
	httpClient *http.Client
	uploadCfg  *config.UploadConfig
	s3Cfg      *config.S3Config
	log        *zap.Logger
	now        func() time.Time
}

// NewAnalysisService creates a new AnalysisService. storage may be nil when
// blob storage is disabled; httpClient defaults to a 60s client.
func NewAnalysisService(
	dispatcher port.AnalysisDispatcher,
	extractor port.TextExtractor,
	records port.AnalysisRepository,
	storage port.ObjectStorage,
	httpClient *http.Client,
	cfg *config.Config,
	log *zap.Logger,
) AnalysisService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &analysisService{
		dispatcher: dispatcher,
		extractor:  extractor,
		records:    records,
		storage:    storage,
		httpClient: httpClient,
		uploadCfg:  &cfg.Upload,
		s3Cfg:      &cfg.S3,
		log:        log.Named("analysis"),
		now:        time.Now,
	}
}

func (s *analysisService) Analyze(ctx context.Context, input AnalyzeInput) (*AnalyzeOutput, error) {
	hasBlob := input.BlobKey != "" || input.BlobURL != ""
	if len(input.Data) == 0 && !hasBlob {
		return nil, domain.ErrMissingFile
	}

	maxBytes := s.uploadCfg.MaxBytes()
	if input.Size > maxBytes || int64(len(input.Data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	fileName := input.FileName
	if fileName == "" {
		fileName = blobName(input.BlobKey, input.BlobURL)
	}
	fileType, ok := domain.ResolveFileType(fileName, input.ContentType)
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	data := input.Data
	if len(data) == 0 {
		var err error
		if data, err = s.fetchBlob(ctx, input.BlobKey, input.BlobURL); err != nil {
			return nil, err
		}
	}

	s.log.Info("document received",
		zap.String("filename", fileName),
		zap.String("file_type", string(fileType)),
		zap.Int("size", len(data)),
		zap.Bool("from_blob", hasBlob),
	)

	text, err := s.extractor.Extract(ctx, fileType, data)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	textLen := utf8.RuneCountInString(text)
	s.log.Debug("text extracted", zap.Int("text_length", textLen))
	if textLen < s.uploadCfg.MinTextLength {
		return nil, fmt.Errorf("%w: %d characters extracted", domain.ErrTextTooShort, textLen)
	}

	opts := port.ProviderOptions{Provider: input.Provider, APIKey: input.APIKey, Model: input.Model}
	isGoogle := strings.EqualFold(strings.TrimSpace(input.Provider), string(domain.ProviderGoogle))
	if isGoogle && strings.TrimSpace(opts.Model) == "" {
		opts.Model = generator.DefaultGeminiModel
	}

	if textLen < s.uploadCfg.ShortTextThreshold {
		s.log.Warn("short extracted text, result may be generic", zap.Int("text_length", textLen))
		if fileType == domain.FileTypePDF && isGoogle {
			text = s.improveWithTranscription(ctx, data, text, textLen, opts)
		}
	}

	result, sel, err := s.dispatcher.Generate(ctx, port.GenerateInput{Text: text, Filename: fileName}, opts)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result.ID = strconv.FormatInt(now.UnixMilli(), 10)
	result.Filename = fileName
	result.UploadDate = now.UTC().Format(time.RFC3339)
	if result.References == nil {
		result.References = []domain.Reference{}
	}

	out := &AnalyzeOutput{Result: result, Meta: AnalyzeMeta{Provider: sel.Provider, Model: sel.Model}}
	if input.Save {
		id, err := s.records.Create(ctx, fileName, result)
		if err != nil {
			return nil, fmt.Errorf("saving analysis: %w", err)
		}
		out.Meta.RecordID = &id
	}
	return out, nil
}

// improveWithTranscription asks the provider to read the PDF directly and keeps
// whichever text is longer. Failures leave the extracted text in place.
func (s *analysisService) improveWithTranscription(ctx context.Context, data []byte, text string, textLen int, opts port.ProviderOptions) string {
	improved, err := s.dispatcher.TranscribePDF(ctx, data, opts)
	if err != nil {
		s.log.Warn("pdf transcription failed, keeping extracted text", zap.Error(err))
		return text
	}
	if n := utf8.RuneCountInString(improved); n > textLen {
		s.log.Info("text improved via transcription", zap.Int("text_length", n))
		return improved
	}
	return text
}

func (s *analysisService) fetchBlob(ctx context.Context, key, rawURL string) ([]byte, error) {
	maxBytes := s.uploadCfg.MaxBytes()

	if key != "" {
		if s.storage == nil {
			return nil, domain.ErrBlobStorageDisabled
		}
		data, err := s.storage.Download(ctx, s.s3Cfg.Bucket, key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrBlobDownloadFailed, err)
		}
		if int64(len(data)) > maxBytes {
			return nil, domain.ErrFileTooLarge
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBlobDownloadFailed, err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBlobDownloadFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrBlobDownloadFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBlobDownloadFailed, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	return data, nil
}

// blobName derives a file name from a blob key or URL path.
func blobName(key, rawURL string) string {
	if key != "" {
		return path.Base(key)
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return ""
	}
	name, err := url.PathUnescape(path.Base(u.Path))
	if err != nil {
		return path.Base(u.Path)
	}
	return name
}
