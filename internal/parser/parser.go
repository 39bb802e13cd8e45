package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/thesaadarshad/myjson.tools/internal/errors"
	"github.com/thesaadarshad/myjson.tools/internal/models"
)

// Parse reads all of reader and parses it as a single strict JSON document.
func Parse(reader io.Reader) (models.Value, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewInputError("failed to read input", err)
	}
	return ParseString(string(data))
}

// ParseString parses JSON from a string. Blank input is reported as
// ErrEmptyInput, distinct from a syntax error.
func ParseString(jsonString string) (models.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}

	// Validate the whole text first so that every syntax failure, including
	// trailing data, is reported by the same scanner with a byte offset.
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(jsonString), &raw); err != nil {
		if isDepthLimit(err) {
			return nil, errors.NewTransformError(
				fmt.Sprintf("nesting depth exceeds the decoder limit of %d", MaxDecoderDepth),
				errors.WithHint(errors.ErrTooDeep, "split the document or reduce its nesting"),
			)
		}
		return nil, errors.NewParsingError("failed to parse JSON", syntaxError(err, jsonString))
	}

	decoder := json.NewDecoder(strings.NewReader(jsonString))
	decoder.UseNumber()

	root, err := decodeValue(decoder)
	if err != nil {
		return nil, errors.NewParsingError("failed to parse JSON", syntaxError(err, jsonString))
	}
	return root, nil
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	if len(data) == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}
	return ParseString(string(data))
}

// MaxDecoderDepth is the deepest nesting encoding/json will scan. Deeper
// documents are valid JSON but cannot be read.
const MaxDecoderDepth = 10000

func isDepthLimit(err error) bool {
	var jsonSyntax *json.SyntaxError
	return errors.As(err, &jsonSyntax) && strings.HasSuffix(jsonSyntax.Error(), "exceeded max depth")
}

// syntaxError converts an encoding/json failure into a classified
// SyntaxError. The scanner's offset counts the offending byte, so the
// character index is one less.
func syntaxError(err error, input string) *errors.SyntaxError {
	var jsonSyntax *json.SyntaxError
	if errors.As(err, &jsonSyntax) {
		offset := int(jsonSyntax.Offset)
		if !strings.Contains(jsonSyntax.Error(), "unexpected end") && offset > 0 {
			offset--
		}
		return errors.NewSyntaxError(jsonSyntax.Error(), input, offset)
	}
	return errors.NewSyntaxError(err.Error(), input, -1)
}

// decodeValue walks the token stream so that object keys keep their
// document order.
func decodeValue(decoder *json.Decoder) (models.Value, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	switch t := token.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(decoder)
		case '[':
			return decodeArray(decoder)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", rune(t))
		}
	case string:
		return models.String(t), nil
	case json.Number:
		// Magnitudes beyond float64 become infinities, as in ECMAScript.
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil && !(errors.Is(err, strconv.ErrRange) && math.IsInf(f, 0)) {
			return nil, fmt.Errorf("number %s out of range", t)
		}
		return models.Number(f), nil
	case bool:
		return models.Bool(t), nil
	case nil:
		return models.Null{}, nil
	default:
		return nil, fmt.Errorf("unexpected json token type: %T", t)
	}
}

func decodeObject(decoder *json.Decoder) (models.Value, error) {
	obj := models.NewMap()
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyToken.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, want string", keyToken)
		}
		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
	}
	// closing '}'
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(decoder *json.Decoder) (models.Value, error) {
	list := models.List{}
	for decoder.More() {
		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		list = append(list, value)
	}
	// closing ']'
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return list, nil
}
