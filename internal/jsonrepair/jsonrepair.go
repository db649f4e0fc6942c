// Package jsonrepair turns free-form model output into strict JSON.
//
// Models often wrap the JSON object in prose and emit LaTeX such as `\Omega`
// or `5\,V` inside string values, which are not legal JSON escapes. Extract
// isolates the object and Repair doubles every illegal backslash so a strict
// parser accepts the document. The repair is purely syntactic.
package jsonrepair

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrNoJSONFound is returned when the text contains no {...} span.
	ErrNoJSONFound = errors.New("no JSON object found in response")
	// ErrUnrepairable is returned when the repaired candidate still fails to parse.
	ErrUnrepairable = errors.New("unrepairable JSON response")
	// ErrSchemaMismatch is returned for well-formed JSON whose values do not fit v.
	ErrSchemaMismatch = errors.New("JSON response does not match the expected schema")
)

// objectSpan is greedy: first '{' through last '}'.
var objectSpan = regexp.MustCompile(`(?s)\{.*\}`)

// escapeTriggers are the characters that may legally follow a backslash.
const escapeTriggers = `"\/bfnrtu`

// Extract returns the span from the first '{' to the last '}' in text.
func Extract(text string) (string, error) {
	span := objectSpan.FindString(text)
	if span == "" {
		return "", ErrNoJSONFound
	}
	return span, nil
}

// Repair doubles backslashes inside string literals that do not start a legal
// JSON escape. Valid JSON is returned unchanged.
func Repair(s string) string {
	var out strings.Builder
	out.Grow(len(s) + 8)

	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !inString {
			out.WriteByte(ch)
			if ch == '"' {
				inString = true
				escaped = false
			}
			continue
		}
		if escaped {
			out.WriteByte(ch)
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			if i+1 < len(s) && strings.IndexByte(escapeTriggers, s[i+1]) >= 0 {
				out.WriteByte(ch)
				escaped = true
			} else {
				out.WriteString(`\\`)
			}
		case '"':
			out.WriteByte(ch)
			inString = false
		default:
			out.WriteByte(ch)
		}
	}
	return out.String()
}

// Parse unmarshals an already extracted candidate into v. Repair runs only
// when the direct parse hits a syntax error; a well-formed document that does
// not fit v is reported as ErrSchemaMismatch.
func Parse(candidate string, v any) error {
	err := json.Unmarshal([]byte(candidate), v)
	if err == nil {
		return nil
	}
	if !isSyntaxError(err) {
		return fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	if err := json.Unmarshal([]byte(Repair(candidate)), v); err != nil {
		if isSyntaxError(err) {
			return fmt.Errorf("%w: %v", ErrUnrepairable, err)
		}
		return fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	return nil
}

func isSyntaxError(err error) bool {
	var syntaxErr *json.SyntaxError
	return errors.As(err, &syntaxErr)
}

// Decode extracts the JSON object from text and unmarshals it into v.
func Decode(text string, v any) error {
	candidate, err := Extract(text)
	if err != nil {
		return err
	}
	return Parse(candidate, v)
}
