package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrMissingFile         = errors.New("no file provided")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrInvalidRecord       = errors.New("file_name and result are required")
	ErrInvalidQuizSession  = errors.New("invalid quiz session")

	// Document pipeline
	ErrExtractionFailed   = errors.New("failed to extract text from document")
	ErrTextTooShort       = errors.New("text too short")
	ErrBlobDownloadFailed = errors.New("failed to download blob")

	ErrBlobStorageDisabled = errors.New("blob storage is not configured")

	// AI providers
	ErrProviderNotConfigured    = errors.New("no AI provider configured")
	ErrInvalidAIResponseFormat  = errors.New("invalid AI response format")
	ErrProviderRequestFailed    = errors.New("AI provider request failed")
	ErrGeminiGenerationFailed   = errors.New("gemini generation failed")
	ErrTranscriptionUnavailable = errors.New("pdf transcription requires the google provider")
	ErrEmptyTerm                = errors.New("term is empty")
	ErrInvalidConcept           = errors.New("concept payload is invalid")
)
