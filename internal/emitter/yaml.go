// Package emitter renders parsed trees as YAML, XML and CSV text. The
// emitters only generate; none of these formats is parsed back.
package emitter

import (
	"strings"

	"github.com/thesaadarshad/myjson.tools/internal/formatter"
	"github.com/thesaadarshad/myjson.tools/internal/models"
	"github.com/thesaadarshad/myjson.tools/internal/naming"
)

// inlineListLimit is the length below which an all-scalar list is written
// in flow style.
const inlineListLimit = 5

// ToYAML renders v as a YAML document. Keys keep their insertion order.
func ToYAML(v models.Value) string {
	return strings.TrimPrefix(yamlValue(v, 0), "\n")
}

// yamlValue renders v for the given nesting level. Block maps and block
// lists start with a newline so callers can append them after "key:".
func yamlValue(v models.Value, indent int) string {
	switch t := v.(type) {
	case nil, models.Null:
		return "null"
	case models.String:
		return yamlString(string(t), indent)
	case models.List:
		return yamlList(t, indent)
	case *models.Map:
		return yamlMap(t, indent)
	default:
		return formatter.Scalar(v)
	}
}

func yamlString(s string, indent int) string {
	if strings.ContainsAny(s, "\n\"'") {
		pad := "\n" + strings.Repeat(indentUnit, indent) + indentUnit
		return "|" + pad + strings.Join(strings.Split(s, "\n"), pad)
	}
	if needsYAMLQuotes(s) {
		return yamlQuote(s)
	}
	return s
}

func needsYAMLQuotes(s string) bool {
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		return true
	}
	return strings.ContainsAny(s, ":#") || strings.TrimSpace(s) != s
}

func yamlQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func yamlKey(key string) string {
	if naming.IsIdentifier(key) {
		return key
	}
	return yamlQuote(key)
}

func yamlList(list models.List, indent int) string {
	if len(list) == 0 {
		return "[]"
	}

	if len(list) < inlineListLimit && allScalars(list) {
		items := make([]string, len(list))
		for i, item := range list {
			items[i] = yamlValue(item, 0)
		}
		return "[" + strings.Join(items, ", ") + "]"
	}

	spaces := strings.Repeat(indentUnit, indent)
	var b strings.Builder
	for _, item := range list {
		b.WriteString("\n" + spaces + "-")
		if m, ok := item.(*models.Map); ok {
			// The map's first line follows the dash; the rest align under it.
			lines := strings.Split(strings.TrimPrefix(yamlMap(m, 0), "\n"), "\n")
			b.WriteString(" " + lines[0])
			for _, line := range lines[1:] {
				b.WriteString("\n" + spaces + indentUnit + line)
			}
			continue
		}
		rendered := yamlValue(item, indent+1)
		if !strings.HasPrefix(rendered, "\n") {
			b.WriteByte(' ')
		}
		b.WriteString(rendered)
	}
	return b.String()
}

func yamlMap(m *models.Map, indent int) string {
	if m.Len() == 0 {
		return "{}"
	}

	spaces := strings.Repeat(indentUnit, indent)
	var b strings.Builder
	for _, member := range m.Members() {
		b.WriteString("\n" + spaces + yamlKey(member.Key) + ":")
		switch value := member.Value.(type) {
		case *models.Map, models.List:
			rendered := yamlValue(value, indent+1)
			if !strings.HasPrefix(rendered, "\n") {
				b.WriteByte(' ')
			}
			b.WriteString(rendered)
		default:
			b.WriteString(" " + yamlValue(value, indent+1))
		}
	}
	return b.String()
}

func allScalars(list models.List) bool {
	for _, item := range list {
		if models.IsContainer(item) {
			return false
		}
	}
	return true
}

const indentUnit = "  "
