package parser

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesaadarshad/myjson.tools/internal/errors"
	"github.com/thesaadarshad/myjson.tools/internal/models"
)

func TestParse_SimpleObject(t *testing.T) {
	root, err := Parse(strings.NewReader(`{"name": "John Doe", "age": 30, "isStudent": false, "city": null}`))
	require.NoError(t, err)

	expected := models.NewMap(
		models.Member{Key: "name", Value: models.String("John Doe")},
		models.Member{Key: "age", Value: models.Number(30)},
		models.Member{Key: "isStudent", Value: models.Bool(false)},
		models.Member{Key: "city", Value: models.Null{}},
	)
	assert.True(t, models.Equal(expected, root), "got %#v", root)
}

func TestParse_PreservesKeyOrder(t *testing.T) {
	root, err := ParseString(`{"zeta": 1, "alpha": {"y": 2, "b": 3}, "mid": []}`)
	require.NoError(t, err)

	obj, ok := root.(*models.Map)
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())

	nested, _ := obj.Get("alpha")
	assert.Equal(t, []string{"y", "b"}, nested.(*models.Map).Keys())

	empty, _ := obj.Get("mid")
	assert.Equal(t, models.List{}, empty)
}

func TestParse_SimpleArray(t *testing.T) {
	root, err := ParseString(`[1, "test", true, null, 3.14]`)
	require.NoError(t, err)

	expected := models.List{models.Number(1), models.String("test"), models.Bool(true), models.Null{}, models.Number(3.14)}
	assert.True(t, models.Equal(expected, root))
}

func TestParse_RootPrimitives(t *testing.T) {
	testCases := []struct {
		name     string
		jsonStr  string
		expected models.Value
	}{
		{"RootString", `"hello world"`, models.String("hello world")},
		{"RootNumber", `123.45`, models.Number(123.45)},
		{"RootBooleanTrue", `true`, models.Bool(true)},
		{"RootBooleanFalse", `false`, models.Bool(false)},
		{"RootNull", `null`, models.Null{}},
		{"RootPaddedNumber", "  -7e2 \n", models.Number(-700)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := ParseString(tc.jsonStr)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, root)
		})
	}
}

func TestParse_NumbersBeyondFloat64Range(t *testing.T) {
	root, err := ParseString(`[1e400, -1e400, 1E400, 1e-400]`)
	require.NoError(t, err)

	list, ok := root.(models.List)
	require.True(t, ok)
	require.Len(t, list, 4)
	assert.True(t, math.IsInf(float64(list[0].(models.Number)), 1))
	assert.True(t, math.IsInf(float64(list[1].(models.Number)), -1))
	assert.True(t, math.IsInf(float64(list[2].(models.Number)), 1))
	assert.Equal(t, models.Number(0), list[3])
}

func TestParse_DecoderDepthLimit(t *testing.T) {
	depth := MaxDecoderDepth + 1
	_, err := ParseString(strings.Repeat("[", depth) + strings.Repeat("]", depth))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrTooDeep))
	assert.Equal(t, errors.KindUnsupportedShape, errors.Kind(err))

	var syntaxErr *errors.SyntaxError
	assert.False(t, errors.As(err, &syntaxErr))

	_, err = ParseString(strings.Repeat("[", MaxDecoderDepth) + strings.Repeat("]", MaxDecoderDepth))
	assert.NoError(t, err)
}

func TestParse_DuplicateKeysLastWins(t *testing.T) {
	root, err := ParseString(`{"a": 1, "b": 2, "a": 3}`)
	require.NoError(t, err)

	obj := root.(*models.Map)
	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	v, _ := obj.Get("a")
	assert.Equal(t, models.Number(3), v)
}

func TestParseString_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := ParseString(input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrEmptyInput))
		assert.Equal(t, errors.KindEmptyInput, errors.Kind(err))
	}
}

func TestParse_TrailingComma(t *testing.T) {
	_, err := ParseString(`{"a":1,}`)
	require.Error(t, err)
	assert.Equal(t, errors.KindInvalidJSONSyntax, errors.Kind(err))

	var syntaxErr *errors.SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, errors.HintUnexpectedToken, syntaxErr.Hint.Category)
	assert.Equal(t, "}", syntaxErr.Hint.Token)
	assert.Equal(t, "trailing comma before closing brace", syntaxErr.Hint.Suggestion)
	require.NotNil(t, syntaxErr.Position)
	assert.Equal(t, errors.Position{Line: 1, Column: 8}, *syntaxErr.Position)
}

func TestParse_MultilinePosition(t *testing.T) {
	_, err := ParseString("{\n  \"a\": 1\n  \"b\": 2\n}")
	require.Error(t, err)

	var syntaxErr *errors.SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	require.NotNil(t, syntaxErr.Position)
	assert.Equal(t, 3, syntaxErr.Position.Line)
	assert.Equal(t, 3, syntaxErr.Position.Column)
	assert.Equal(t, "missing comma between elements", syntaxErr.Hint.Suggestion)
}

func TestParse_MalformedJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		category errors.HintCategory
		hint     string
	}{
		{"missing closing brace", `{"name": "John Doe", "age": 30`, errors.HintUnexpectedEnd, "missing closing brace"},
		{"missing closing bracket", `["item1", "item2",`, errors.HintUnexpectedEnd, "missing closing bracket"},
		{"trailing data", `{"a": 1} {"b": 2}`, errors.HintUnexpectedToken, "unexpected character; check quotes and commas near this position"},
		{"single quotes", `{'a': 1}`, errors.HintUnexpectedToken, "strings and keys must use double quotes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			require.Error(t, err)

			var syntaxErr *errors.SyntaxError
			require.True(t, errors.As(err, &syntaxErr))
			assert.Equal(t, tt.category, syntaxErr.Hint.Category)
			assert.Equal(t, tt.hint, syntaxErr.Hint.Suggestion)
		})
	}
}

func TestParseFile_SimpleObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simple.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"product": "Laptop", "price": 1200.50}`), 0o644))

	root, err := ParseFile(path)
	require.NoError(t, err)

	obj := root.(*models.Map)
	price, _ := obj.Get("price")
	assert.Equal(t, models.Number(1200.5), price)
}

func TestParseFile_NonExistentFile(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nonexistentfile.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrFileNotFound))
}

func TestParseFile_EmptyPath(t *testing.T) {
	_, err := ParseFile("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file path is empty")
}

func TestParseFile_EmptyFileContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := ParseFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrFileEmpty))
}
