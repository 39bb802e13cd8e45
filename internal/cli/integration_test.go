package cli_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// runMain runs the CLI through go run with stdin set to input. An empty
// config file is passed first so no discovered config affects the result.
func runMain(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "myjson.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{}\n"), 0o644))

	cmd := exec.Command("go", append([]string{"run", "../../main.go", "-c", cfgPath}, args...)...)
	cmd.Stdin = strings.NewReader(input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// TestCLI_FileInputOutput tests the CLI with file input and output
func TestCLI_FileInputOutput(t *testing.T) {
	tempDir := t.TempDir()

	jsonContent := `{
		"name": "John Doe",
		"age": 30,
		"email": "john.doe@example.com",
		"address": {
			"street": "123 Main St",
			"city": "Anytown",
			"zip": "12345"
		},
		"phones": [
			{"type": "home", "number": "555-1234"},
			{"type": "work", "number": "555-5678"}
		],
		"active": true
	}`
	jsonFile := filepath.Join(tempDir, "test.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(jsonContent), 0o644))

	outputFile := filepath.Join(tempDir, "output.json")

	_, stderr, err := runMain(t, "", "-i", jsonFile, "-o", outputFile, "compact")
	require.NoError(t, err, "CLI command failed: %s", stderr)
	assert.Contains(t, stderr, "Output written to")

	compacted, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t,
		`{"name":"John Doe","age":30,"email":"john.doe@example.com","address":{"street":"123 Main St","city":"Anytown","zip":"12345"},"phones":[{"type":"home","number":"555-1234"},{"type":"work","number":"555-5678"}],"active":true}`,
		string(compacted))
}

// TestCLI_StdinStdout tests the CLI with stdin input and stdout output
func TestCLI_StdinStdout(t *testing.T) {
	stdout, stderr, err := runMain(t, `{"name": "Jane Smith", "age": 25, "active": true}`, "pretty")
	require.NoError(t, err, "CLI command failed: %s", stderr)
	assert.Equal(t, "{\n  \"name\": \"Jane Smith\",\n  \"age\": 25,\n  \"active\": true\n}\n", stdout)
}

// TestCLI_YAMLOutputDecodes checks the YAML command against a real decoder
func TestCLI_YAMLOutputDecodes(t *testing.T) {
	stdout, stderr, err := runMain(t, `{"service": "api", "ports": [80, 443], "limits": {"cpu": "500m", "memory": 256}}`, "yaml")
	require.NoError(t, err, "CLI command failed: %s", stderr)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &decoded))
	assert.Equal(t, "api", decoded["service"])
	assert.Equal(t, []interface{}{80, 443}, decoded["ports"])
	assert.Equal(t, map[string]interface{}{"cpu": "500m", "memory": 256}, decoded["limits"])
}

// TestCLI_CustomRootName tests the types command with a custom root name
func TestCLI_CustomRootName(t *testing.T) {
	stdout, stderr, err := runMain(t, `{"name": "Test User", "email": "test@example.com"}`, "types", "-r", "User")
	require.NoError(t, err, "CLI command failed: %s", stderr)
	assert.Equal(t, "interface User {\n  name: string;\n  email: string;\n}\n", stdout)
}

// TestCLI_ArrayInput tests the types command with an array at the root
func TestCLI_ArrayInput(t *testing.T) {
	jsonContent := `[
		{"id": 1, "name": "Item 1"},
		{"id": 2, "name": "Item 2"},
		{"id": 3, "name": "Item 3"}
	]`

	stdout, stderr, err := runMain(t, jsonContent, "types")
	require.NoError(t, err, "CLI command failed: %s", stderr)
	assert.Contains(t, stdout, "type Root = RootItem[];")
	assert.Contains(t, stdout, "interface RootItem {\n  id: number;\n  name: string;\n}")
}

// TestCLI_InvalidJSON tests the CLI with invalid JSON input
func TestCLI_InvalidJSON(t *testing.T) {
	_, stderr, err := runMain(t, `{"name": "Invalid JSON, "age": 30}`, "pretty")
	assert.Error(t, err, "CLI should fail with invalid JSON")
	assert.Contains(t, stderr, "JSON syntax error at line 1")
}

// TestCLI_EmptyInput tests the CLI with empty input
func TestCLI_EmptyInput(t *testing.T) {
	_, stderr, err := runMain(t, "", "compact")
	assert.Error(t, err, "CLI should fail with empty input")
	assert.Contains(t, stderr, "empty")
}

// TestCLI_Version tests the version flag
func TestCLI_Version(t *testing.T) {
	stdout, _, err := runMain(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "myjson version")
}
