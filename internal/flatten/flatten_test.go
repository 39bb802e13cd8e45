package flatten

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesaadarshad/myjson.tools/internal/formatter"
	"github.com/thesaadarshad/myjson.tools/internal/models"
	"github.com/thesaadarshad/myjson.tools/internal/parser"
)

func mustParse(t *testing.T, input string) models.Value {
	t.Helper()
	v, err := parser.ParseString(input)
	require.NoError(t, err)
	return v
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sep      string
		expected string
	}{
		{"nested object", `{"a":{"b":1}}`, ".", `{"a.b":1}`},
		{"lists use indexes", `{"a":[10,{"b":null}]}`, ".", `{"a.0":10,"a.1.b":null}`},
		{"empty containers are leaves", `{"a":{},"b":[],"c":{"d":[]}}`, ".", `{"a":{},"b":[],"c.d":[]}`},
		{"custom separator", `{"a":{"b":{"c":true}}}`, "/", `{"a/b/c":true}`},
		{"default separator", `{"a":{"b":"x"}}`, "", `{"a.b":"x"}`},
		{"root list", `[1,[2]]`, ".", `{"0":1,"1.0":2}`},
		{"scalar root", `"x"`, ".", `{"":"x"}`},
		{"empty root", `{}`, ".", `{}`},
		{"empty key keeps its segment", `{"":{"b":1}}`, ".", `{".b":1}`},
		{"empty key below root", `{"a":{"":1}}`, ".", `{"a.":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flat := Flatten(mustParse(t, tt.input), tt.sep)
			assert.Equal(t, tt.expected, formatter.CompactString(flat))
		})
	}
}

func TestUnflatten(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sep      string
		expected string
	}{
		{"nested object", `{"a.b":1}`, ".", `{"a":{"b":1}}`},
		{"digits make lists", `{"a.0":"x","a.1":"y"}`, ".", `{"a":["x","y"]}`},
		{"list of objects", `{"a.0.b":1,"a.1.b":2}`, ".", `{"a":[{"b":1},{"b":2}]}`},
		{"root list", `{"0":1,"1":2}`, ".", `[1,2]`},
		{"indexes are ordered numerically", `{"a.10":"k","a.2":"c"}`, ".", `{"a":["c","k"]}`},
		{"mixed keys fall back to object", `{"a.0":1,"a.x":2}`, ".", `{"a":{"0":1,"x":2}}`},
		{"numeric object keys become lists", `{"years.2020":"x"}`, ".", `{"years":["x"]}`},
		{"custom separator", `{"a/b":1}`, "/", `{"a":{"b":1}}`},
		{"empty path", `{"":"x"}`, ".", `"x"`},
		{"empty map", `{}`, ".", `{}`},
		{"later leaf wins", `{"a":1,"a":2}`, ".", `{"a":2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flat, ok := mustParse(t, tt.input).(*models.Map)
			require.True(t, ok)
			assert.Equal(t, tt.expected, formatter.CompactString(Unflatten(flat, tt.sep)))
		})
	}
}

func TestFlattenUnflatten_Inverse(t *testing.T) {
	inputs := []string{
		`{"a":{"b":1}}`,
		`{"user":{"name":"n","tags":["x","y"],"address":{"zip":"123","geo":[1.5,-2]}},"ok":true,"none":null}`,
		`{"items":[{"id":1,"sub":[]},{"id":2,"sub":{}}]}`,
		`[{"a":1},{"a":2}]`,
		`42`,
		`{"":{"b":1},"c":2}`,
		`{"a":{"":[1,{"":true}]}}`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tree := mustParse(t, input)
			for _, sep := range []string{".", "/", "__"} {
				back := Unflatten(Flatten(tree, sep), sep)
				assert.True(t, models.Equal(tree, back), "sep %q: got %s", sep, formatter.CompactString(back))
			}
		})
	}
}
