package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AnalysisResult is the structured study material produced from one document.
type AnalysisResult struct {
	ID             string          `json:"id,omitempty"`
	Filename       string          `json:"filename,omitempty"`
	UploadDate     string          `json:"uploadDate,omitempty"`
	Summary        string          `json:"summary"`
	References     []Reference     `json:"references"`
	ConceptMap     LooseString     `json:"conceptMap"`
	KeyConcepts    []KeyConcept    `json:"keyConcepts"`
	Keywords       []Keyword       `json:"keywords,omitempty"`
	Flashcards     []Flashcard     `json:"flashcards"`
	Quiz           []QuizQuestion  `json:"quiz"`
	StudySchedules []StudySchedule `json:"studySchedules"`
}

// Reference is an external source backing the analysis.
type Reference struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source,omitempty"`
}

// KeyConcept is one of the most important ideas of the material.
type KeyConcept struct {
	Concept     string         `json:"concept"`
	Explanation string         `json:"explanation"`
	Details     string         `json:"details,omitempty"`
	Example     string         `json:"example,omitempty"`
	ImageURL    StringOrList   `json:"imageUrl,omitempty"`
	Values      []ConceptValue `json:"values,omitempty"`
	Formula     string         `json:"formula,omitempty"`
}

// ConceptValue is a quantity used in a worked example.
type ConceptValue struct {
	Label       string      `json:"label"`
	Value       LooseString `json:"value,omitempty"`
	ValueNumber *float64    `json:"valueNumber,omitempty"`
	UnitPrefix  string      `json:"unitPrefix,omitempty"`
	UnitSymbol  string      `json:"unitSymbol,omitempty"`
	Formatted   string      `json:"formatted,omitempty"`
}

// Keyword is a technical term with definition links.
type Keyword struct {
	Term            string          `json:"term"`
	DefinitionLinks DefinitionLinks `json:"definitionLinks"`
}

// DefinitionLinks points to a quick definition and a deeper resource.
type DefinitionLinks struct {
	Wikipedia  string `json:"wikipedia,omitempty"`
	Additional string `json:"additional,omitempty"`
}

// Flashcard is a question/answer pair.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// QuizQuestion is a single quiz item.
type QuizQuestion struct {
	Type          QuizType `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer *Answer  `json:"correctAnswer,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

// StudySchedule is a suggested study plan.
type StudySchedule struct {
	Type        ScheduleType `json:"type"`
	Duration    LooseString  `json:"duration"`
	Description string       `json:"description"`
	Activities  []string     `json:"activities"`
}

// AnalysisRecord is a persisted analysis. Records are never updated.
type AnalysisRecord struct {
	ID        int64          `json:"id"`
	FileName  string         `json:"file_name"`
	Result    AnalysisResult `json:"result"`
	CreatedAt time.Time      `json:"created_at"`
}

// Explanation is the answer to a single-term explanation request.
type Explanation struct {
	Explanation string `json:"explanation"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// ConnectivityResult is the outcome of a provider credential check.
type ConnectivityResult struct {
	OK      bool   `json:"ok"`
	Status  int    `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// ProviderStatus describes a server-side configured provider without its key.
type ProviderStatus struct {
	Name   ProviderName `json:"name"`
	Model  string       `json:"model"`
	Active bool         `json:"active"`
}

// QuizSession is one completed quiz attempt.
type QuizSession struct {
	ID          string    `json:"id" db:"id"`
	Filename    string    `json:"filename" db:"filename"`
	Date        time.Time `json:"date" db:"date"`
	Mode        QuizMode  `json:"mode" db:"mode"`
	Total       int       `json:"total" db:"total"`
	Correct     int       `json:"correct" db:"correct"`
	DurationSec int       `json:"durationSec" db:"duration_sec"`
	StreakMax   int       `json:"streakMax" db:"streak_max"`
	Score       int       `json:"score" db:"score"`
}

// UnmarshalJSON accepts valueNumber as a number or a numeric string. Anything
// else leaves it unset.
func (v *ConceptValue) UnmarshalJSON(data []byte) error {
	type plain ConceptValue
	aux := struct {
		*plain
		ValueNumber json.RawMessage `json:"valueNumber"`
	}{plain: (*plain)(v)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	v.ValueNumber = looseNumber(aux.ValueNumber)
	return nil
}

func looseNumber(raw json.RawMessage) *float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil
		}
		text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}
	return &n
}

// LooseString is text the model sometimes sends as another JSON type.
// Numbers and booleans keep their literal form; objects and arrays keep
// their compact JSON text. It is always written back as a string.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = LooseString(str)
		return nil
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return err
	}
	*s = LooseString(compact.String())
	return nil
}

// StringOrList accepts either a JSON string or an array of strings.
// A single entry is written back as a plain string.
type StringOrList []string

func (s StringOrList) MarshalJSON() ([]byte, error) {
	switch len(s) {
	case 0:
		return []byte("null"), nil
	case 1:
		return json.Marshal(s[0])
	default:
		return json.Marshal([]string(s))
	}
}

func (s *StringOrList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}
	if data[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*s = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*s = nil
		return nil
	}
	*s = StringOrList{single}
	return nil
}

// Answer is a quiz answer: free text or a boolean for true/false questions.
type Answer struct {
	Text string
	Bool *bool
}

// TextAnswer returns a text answer.
func TextAnswer(s string) *Answer {
	return &Answer{Text: s}
}

// BoolAnswer returns a boolean answer.
func BoolAnswer(b bool) *Answer {
	return &Answer{Bool: &b}
}

// String renders the answer for exports.
func (a *Answer) String() string {
	if a == nil {
		return ""
	}
	if a.Bool != nil {
		if *a.Bool {
			return "true"
		}
		return "false"
	}
	return a.Text
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.Bool != nil {
		return json.Marshal(*a.Bool)
	}
	return json.Marshal(a.Text)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Answer{}
		return nil
	}
	switch data[0] {
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*a = Answer{Bool: &b}
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Answer{Text: s}
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("correctAnswer: %w", err)
		}
		*a = Answer{Text: n.String()}
	}
	return nil
}
