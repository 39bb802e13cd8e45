package transform

import "strings"

// Operation names one transform.
type Operation string

const (
	OpCompact   Operation = "compact"
	OpPretty    Operation = "pretty"
	OpSort      Operation = "sort"
	OpYAML      Operation = "yaml"
	OpXML       Operation = "xml"
	OpCSV       Operation = "csv"
	OpFlatten   Operation = "flatten"
	OpUnflatten Operation = "unflatten"
	OpTypes     Operation = "types"
	OpDiff      Operation = "diff"
)

var operationAliases = map[string]Operation{
	"compress":   OpCompact,
	"minify":     OpCompact,
	"beautify":   OpPretty,
	"decompress": OpPretty,
	"format":     OpPretty,
	"sorted":     OpSort,
	"yml":        OpYAML,
	"interfaces": OpTypes,
}

// Operations lists every operation in display order.
func Operations() []Operation {
	return []Operation{OpCompact, OpPretty, OpSort, OpYAML, OpXML, OpCSV, OpFlatten, OpUnflatten, OpTypes, OpDiff}
}

// ParseOperation resolves a name or alias, case-insensitively.
func ParseOperation(name string) (Operation, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if op, ok := operationAliases[name]; ok {
		return op, true
	}
	for _, op := range Operations() {
		if string(op) == name {
			return op, true
		}
	}
	return "", false
}

// MIMEType is the media type of the operation's output, for callers that
// save it to a file.
func (op Operation) MIMEType() string {
	switch op {
	case OpCompact, OpPretty, OpSort, OpFlatten, OpUnflatten, OpDiff:
		return "application/json"
	case OpYAML:
		return "application/yaml"
	case OpXML:
		return "application/xml"
	case OpCSV:
		return "text/csv"
	default:
		return "text/plain"
	}
}

// Extension is the file extension matching MIMEType.
func (op Operation) Extension() string {
	switch op.MIMEType() {
	case "application/json":
		return ".json"
	case "application/yaml":
		return ".yaml"
	case "application/xml":
		return ".xml"
	case "text/csv":
		return ".csv"
	default:
		return ".ts"
	}
}
