package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesaadarshad/myjson.tools/internal/config"
	"github.com/thesaadarshad/myjson.tools/internal/models"
	"github.com/thesaadarshad/myjson.tools/internal/naming"
	"github.com/thesaadarshad/myjson.tools/internal/parser"
)

func analyze(t *testing.T, cfg *config.Config, input, rootName string) *models.DeclarationSet {
	t.Helper()
	tree, err := parser.ParseString(input)
	require.NoError(t, err)

	result, err := NewAnalyzerWithConfig(cfg).Analyze(tree, rootName)
	require.NoError(t, err)
	return result
}

func names(set *models.DeclarationSet) []string {
	var out []string
	for _, d := range set.Declarations() {
		out = append(out, d.Name)
	}
	return out
}

func TestAnalyze_SimpleObject(t *testing.T) {
	result := analyze(t, nil, `{"name": "John Doe", "age": 30, "is_student": false, "score": 99.5, "nickname": null}`, "Person")

	require.Equal(t, 1, result.Len())
	person, ok := result.Get("Person")
	require.True(t, ok)
	assert.Equal(t, []models.Property{
		{Name: "name", Type: "string"},
		{Name: "age", Type: "number"},
		{Name: "is_student", Type: "boolean"},
		{Name: "score", Type: "number"},
		{Name: "nickname", Type: "null"},
	}, person.Properties)
	assert.Empty(t, result.RootAlias)
}

func TestAnalyze_NestedObjectsAndArrays(t *testing.T) {
	input := `{
		"id": 1,
		"tags": ["x", "y"],
		"address": {"city": "c", "geo": {"lat": 1.5}},
		"items": [{"sku": "a", "qty": 1}, {"sku": "b", "qty": 2}],
		"mixed": [1, "a", true, 2],
		"matrix": [[1, 2], [3]],
		"empty": []
	}`
	result := analyze(t, nil, input, "")

	assert.Equal(t, []string{"Root", "Address", "Geo", "Item"}, names(result))

	root, _ := result.Get("Root")
	assert.Equal(t, []models.Property{
		{Name: "id", Type: "number"},
		{Name: "tags", Type: "string[]"},
		{Name: "address", Type: "Address"},
		{Name: "items", Type: "Item[]"},
		{Name: "mixed", Type: "(number | string | boolean)[]"},
		{Name: "matrix", Type: "number[][]"},
		{Name: "empty", Type: "any[]"},
	}, root.Properties)

	address, _ := result.Get("Address")
	assert.Equal(t, []models.Property{
		{Name: "city", Type: "string"},
		{Name: "geo", Type: "Geo"},
	}, address.Properties)
}

func TestAnalyze_SingularizedElementNames(t *testing.T) {
	result := analyze(t, nil, `{"categories": [{"id": 1}], "addresses": [{"zip": "1"}], "groups": [[{"n": 1}]]}`, "Root")

	assert.Equal(t, []string{"Root", "Category", "Address", "Group"}, names(result))
	root, _ := result.Get("Root")
	assert.Equal(t, "Group[][]", root.Properties[2].Type)
}

func TestAnalyze_LastWriteWins(t *testing.T) {
	// both objects synthesize the name "Item"; the later shape replaces the earlier
	result := analyze(t, nil, `{"item": {"a": 1}, "items": [{"b": "x"}]}`, "Root")

	assert.Equal(t, []string{"Root", "Item"}, names(result))
	item, _ := result.Get("Item")
	assert.Equal(t, []models.Property{{Name: "b", Type: "string"}}, item.Properties)
}

func TestAnalyze_EmptyKeyFallsBackToAnonymous(t *testing.T) {
	result := analyze(t, nil, `{"": {"a": 1}}`, "Root")

	assert.Equal(t, []string{"Root", "Anonymous"}, names(result))
	root, _ := result.Get("Root")
	assert.Equal(t, []models.Property{{Name: "", Type: "Anonymous"}}, root.Properties)

	result = analyze(t, nil, `{"": [{"b": true}]}`, "Root")
	root, _ = result.Get("Root")
	assert.Equal(t, "Anonymous[]", root.Properties[0].Type)
	anonymous, ok := result.Get("Anonymous")
	require.True(t, ok)
	assert.Equal(t, []models.Property{{Name: "b", Type: "boolean"}}, anonymous.Properties)
}

func TestAnalyze_ObjectArrayElementsShareOneName(t *testing.T) {
	result := analyze(t, nil, `{"users": [{"id": 1}, {"id": 2, "email": "e"}, 3]}`, "Root")

	root, _ := result.Get("Root")
	assert.Equal(t, "(User | number)[]", root.Properties[0].Type)
	user, _ := result.Get("User")
	assert.Equal(t, []models.Property{{Name: "id", Type: "number"}, {Name: "email", Type: "string"}}, user.Properties)
}

func TestAnalyze_NonObjectRoots(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedAlias string
		expectedNames []string
	}{
		{"scalar", `42`, "number", nil},
		{"null", `null`, "null", nil},
		{"string list", `["a"]`, "string[]", nil},
		{"object list", `[{"id": 1}]`, "RootItem[]", []string{"RootItem"}},
		{"empty list", `[]`, "any[]", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyze(t, nil, tt.input, "Root")
			assert.Equal(t, tt.expectedAlias, result.RootAlias)
			assert.Equal(t, tt.expectedNames, names(result))
		})
	}
}

func TestAnalyze_ConfigNamingAndMappings(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Naming.Style = naming.StylePascal
	cfg.Naming.TypeNames["billing_info"] = "Billing"
	cfg.Types.Mappings = []config.TypeMapping{{Pattern: "_at$", Type: "Date"}}

	result := analyze(t, cfg, `{"billing_info": {"created_at": "2024"}, "line_items": [{"unit_price": 1}], "home_address": {}}`, "Order")

	assert.Equal(t, []string{"Order", "Billing", "LineItem", "HomeAddress"}, names(result))
	billing, _ := result.Get("Billing")
	assert.Equal(t, []models.Property{{Name: "created_at", Type: "Date"}}, billing.Properties)
}

func TestAnalyze_NilTree(t *testing.T) {
	_, err := NewAnalyzer().Analyze(nil, "Root")
	assert.Error(t, err)
}

func TestAnalyze_ReusableAnalyzer(t *testing.T) {
	a := NewAnalyzer()
	first, err := a.Analyze(models.NewMap(models.Member{Key: "a", Value: models.NewMap()}), "Root")
	require.NoError(t, err)
	second, err := a.Analyze(models.NewMap(), "Root")
	require.NoError(t, err)

	assert.Equal(t, 2, first.Len())
	assert.Equal(t, 1, second.Len())
}
