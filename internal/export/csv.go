// Package export renders the study material of an analysis as CSV or XLSX.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"estudaia/internal/domain"
)

// BOM is the UTF-8 byte order mark, written first so Excel on Windows reads accents.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Kind selects which study material is exported.
type Kind string

const (
	KindFlashcards Kind = "flashcards"
	KindQuiz       Kind = "quiz"
)

// Format is the file format of an export.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var (
	flashcardColumns = []string{"Front", "Back"}
	quizColumns      = []string{"Type", "Question", "Options", "Correct Answer", "Explanation"}
	scheduleColumns  = []string{"Type", "Duration", "Description", "Activities"}
)

// optionSeparator joins multiple choice options in a single cell.
const optionSeparator = " | "

// ParseKind validates a kind query value; blank means flashcards.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", KindFlashcards:
		return KindFlashcards, nil
	case KindQuiz:
		return KindQuiz, nil
	default:
		return "", fmt.Errorf("unknown export kind: %q", s)
	}
}

// ParseFormat validates a format query value; blank means csv.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unknown export format: %q", s)
	}
}

// WriteCSV writes the BOM, a header row and one row per item of the given kind.
func WriteCSV(w io.Writer, result *domain.AnalysisResult, kind Kind) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)

	var rows [][]string
	switch kind {
	case KindQuiz:
		rows = append([][]string{quizColumns}, quizRows(result.Quiz)...)
	default:
		rows = append([][]string{flashcardColumns}, flashcardRows(result.Flashcards)...)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

func flashcardRows(cards []domain.Flashcard) [][]string {
	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, []string{c.Front, c.Back})
	}
	return rows
}

func quizRows(questions []domain.QuizQuestion) [][]string {
	rows := make([][]string, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, []string{
			string(q.Type),
			q.Question,
			strings.Join(q.Options, optionSeparator),
			q.CorrectAnswer.String(),
			q.Explanation,
		})
	}
	return rows
}

func scheduleRows(schedules []domain.StudySchedule) [][]string {
	rows := make([][]string, 0, len(schedules))
	for _, s := range schedules {
		rows = append(rows, []string{string(s.Type), string(s.Duration), s.Description, strings.Join(s.Activities, "\n")})
	}
	return rows
}
