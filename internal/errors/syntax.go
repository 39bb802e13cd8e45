package errors

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// HintCategory groups parse failures for remediation advice.
type HintCategory string

const (
	HintUnexpectedToken HintCategory = "unexpected-token"
	HintUnexpectedEnd   HintCategory = "unexpected-end"
	HintGeneric         HintCategory = "generic"
)

// Hint is a best-effort remediation suggestion. It is derived by matching
// the parser's message text and can be wrong for unusual inputs.
type Hint struct {
	Category   HintCategory
	Token      string
	Suggestion string
}

// Position is a 1-based line and column in the input text.
type Position struct {
	Line   int
	Column int
}

// SyntaxError reports a strict JSON parse failure. Position is nil when the
// location could not be recovered.
type SyntaxError struct {
	Message  string
	Position *Position
	Hint     Hint
}

func (e *SyntaxError) Error() string {
	if e.Position != nil {
		return fmt.Sprintf("invalid JSON syntax at line %d, column %d: %s", e.Position.Line, e.Position.Column, e.Message)
	}
	return fmt.Sprintf("invalid JSON syntax: %s", e.Message)
}

// Unwrap lets errors.Is(err, ErrInvalidJSON) match syntax errors.
func (e *SyntaxError) Unwrap() error {
	return ErrInvalidJSON
}

var (
	lineColumnPattern = regexp.MustCompile(`(?i)line (\d+) column (\d+)`)
	positionPattern   = regexp.MustCompile(`(?i)at position (\d+)`)
	goTokenPattern    = regexp.MustCompile(`invalid character '((?:\\.|[^'])+)'`)
	jsTokenPattern    = regexp.MustCompile(`(?i)unexpected token '?(\S)`)
)

// NewSyntaxError builds a SyntaxError from a parser message. offset is the
// byte index of the offending character in input, or -1 when unknown; an
// explicit "line N column M" marker in the message takes precedence, and an
// "at position N" marker is used when no offset is supplied.
func NewSyntaxError(message, input string, offset int) *SyntaxError {
	return &SyntaxError{
		Message:  message,
		Position: locate(message, input, offset),
		Hint:     classify(message, input),
	}
}

func locate(message, input string, offset int) *Position {
	if m := lineColumnPattern.FindStringSubmatch(message); m != nil {
		line, errLine := strconv.Atoi(m[1])
		column, errColumn := strconv.Atoi(m[2])
		if errLine == nil && errColumn == nil {
			return &Position{Line: line, Column: column}
		}
	}
	if offset < 0 {
		if m := positionPattern.FindStringSubmatch(message); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				offset = n
			}
		}
	}
	if offset < 0 {
		return nil
	}
	return OffsetToPosition(input, offset)
}

// OffsetToPosition converts a byte offset into a line and column by scanning
// the newlines before it. Columns count runes.
func OffsetToPosition(input string, offset int) *Position {
	if offset > len(input) {
		offset = len(input)
	}
	prefix := input[:offset]
	line := strings.Count(prefix, "\n") + 1
	lineStart := strings.LastIndexByte(prefix, '\n') + 1
	column := utf8.RuneCountInString(prefix[lineStart:]) + 1
	return &Position{Line: line, Column: column}
}

func classify(message, input string) Hint {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "unexpected end") || strings.Contains(lower, "unexpected eof") {
		return Hint{Category: HintUnexpectedEnd, Suggestion: suggestForEnd(input)}
	}

	token := ""
	if m := goTokenPattern.FindStringSubmatch(message); m != nil {
		token = m[1]
	} else if m := jsTokenPattern.FindStringSubmatch(message); m != nil {
		token = m[1]
	} else {
		return Hint{Category: HintGeneric, Suggestion: "check the JSON syntax near the reported position"}
	}

	hint := Hint{Category: HintUnexpectedToken, Token: token}
	switch {
	case token == "}" && strings.Contains(lower, "beginning of object key"):
		hint.Suggestion = "trailing comma before closing brace"
	case token == "]" && strings.Contains(lower, "beginning of value"):
		hint.Suggestion = "trailing comma before closing bracket"
	case token == "}":
		hint.Suggestion = "extra closing brace or missing comma"
	case token == "]":
		hint.Suggestion = "extra closing bracket or missing comma"
	case token == `\'` || token == "'":
		hint.Suggestion = "strings and keys must use double quotes"
	case strings.Contains(lower, "beginning of object key"):
		hint.Suggestion = "object keys must be double-quoted strings"
	case strings.Contains(lower, "after object key:value pair"), strings.Contains(lower, "after array element"):
		hint.Suggestion = "missing comma between elements"
	case strings.Contains(lower, "after object key"):
		hint.Suggestion = "missing colon after object key"
	case strings.Contains(lower, "in string literal"):
		hint.Suggestion = "control characters inside strings must be escaped"
	default:
		hint.Suggestion = "unexpected character; check quotes and commas near this position"
	}
	return hint
}

// suggestForEnd counts unmatched delimiters outside string literals.
func suggestForEnd(input string) string {
	braces, brackets := 0, 0
	inString, escaped := false, false
	for _, r := range input {
		switch {
		case escaped:
			escaped = false
		case inString && r == '\\':
			escaped = true
		case r == '"':
			inString = !inString
		case inString:
		case r == '{':
			braces++
		case r == '}':
			braces--
		case r == '[':
			brackets++
		case r == ']':
			brackets--
		}
	}

	switch {
	case inString:
		return "unterminated string"
	case braces > 0:
		return "missing closing brace"
	case brackets > 0:
		return "missing closing bracket"
	default:
		return "input ends before the value is complete"
	}
}
