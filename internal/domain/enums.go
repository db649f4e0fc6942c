package domain

import (
	"path/filepath"
	"strings"
)

// FileType represents the document types accepted for analysis.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
	FileTypePPTX FileType = "pptx"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF:  "application/pdf",
	FileTypeDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	FileTypePPTX: "application/vnd.openxmlformats-officedocument.presentationml.presentation",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   FileTypeDOCX,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": FileTypePPTX,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"docx": FileTypeDOCX,
	"pptx": FileTypePPTX,
}

// FileExtension returns the lower-cased extension of name without the dot.
func FileExtension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// FileTypeFromContentType infers a FileType from a loose content type string.
func FileTypeFromContentType(contentType string) (FileType, bool) {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "pdf"):
		return FileTypePDF, true
	case strings.Contains(ct, "presentation"):
		return FileTypePPTX, true
	case strings.Contains(ct, "wordprocessingml"):
		return FileTypeDOCX, true
	default:
		return "", false
	}
}

// ResolveFileType picks the FileType from the file name extension, falling back
// to the content type only when the name carries no extension.
func ResolveFileType(fileName, contentType string) (FileType, bool) {
	ext := FileExtension(fileName)
	if ext == "" {
		return FileTypeFromContentType(contentType)
	}
	ft, ok := AllowedExtensions[ext]
	return ft, ok
}

// ProviderName identifies an AI backend.
type ProviderName string

const (
	ProviderOpenAI    ProviderName = "openai"
	ProviderAnthropic ProviderName = "anthropic"
	ProviderGoogle    ProviderName = "google"
	ProviderGrok      ProviderName = "grok"
	ProviderDemo      ProviderName = "demo"
)

// ProviderPriority is the order in which configured credentials are considered.
var ProviderPriority = []ProviderName{ProviderOpenAI, ProviderAnthropic, ProviderGoogle, ProviderGrok}

// ParseProviderName normalizes a provider name; unknown names report false.
func ParseProviderName(s string) (ProviderName, bool) {
	name := ProviderName(strings.ToLower(strings.TrimSpace(s)))
	for _, p := range ProviderPriority {
		if p == name {
			return p, true
		}
	}
	return name, false
}

// QuizType is the kind of a quiz question.
type QuizType string

const (
	QuizMultipleChoice QuizType = "multiple_choice"
	QuizTrueFalse      QuizType = "true_false"
	QuizEssay          QuizType = "essay"
)

// ScheduleType is the depth of a study schedule.
type ScheduleType string

const (
	ScheduleQuick    ScheduleType = "quick"
	ScheduleStandard ScheduleType = "standard"
	ScheduleDeep     ScheduleType = "deep"
)

// QuizMode is how a quiz session was taken.
type QuizMode string

const (
	QuizModePractice QuizMode = "practice"
	QuizModeExam     QuizMode = "exam"
)
