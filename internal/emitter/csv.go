package emitter

import (
	"strings"

	"github.com/thesaadarshad/myjson.tools/internal/formatter"
	"github.com/thesaadarshad/myjson.tools/internal/models"
)

// ToCSV renders v as comma-separated rows joined by "\n" without a
// trailing newline.
//
// A list of objects becomes a table whose header is the union of their
// keys in first-seen order. Any other list becomes a single "value"
// column. A root object becomes a key,value table and a scalar root a
// single value row. Containers inside cells are written as compact JSON.
func ToCSV(v models.Value) string {
	var rows [][]string

	switch t := v.(type) {
	case models.List:
		columns := unionKeys(t)
		if len(columns) == 0 {
			rows = append(rows, []string{"value"})
			for _, item := range t {
				rows = append(rows, []string{csvCell(item)})
			}
			break
		}
		rows = append(rows, columns)
		for _, item := range t {
			obj, _ := item.(*models.Map)
			row := make([]string, len(columns))
			for i, column := range columns {
				if cell, ok := obj.Get(column); ok {
					row[i] = csvCell(cell)
				}
			}
			rows = append(rows, row)
		}
	case *models.Map:
		rows = append(rows, []string{"key", "value"})
		for _, member := range t.Members() {
			rows = append(rows, []string{member.Key, csvCell(member.Value)})
		}
	default:
		rows = append(rows, []string{"value"}, []string{csvCell(v)})
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		fields := make([]string, len(row))
		for j, field := range row {
			fields[j] = csvEscape(field)
		}
		lines[i] = strings.Join(fields, ",")
	}
	return strings.Join(lines, "\n")
}

// unionKeys collects the keys of every object element in discovery order.
// Non-object elements contribute nothing.
func unionKeys(list models.List) []string {
	var keys []string
	seen := make(map[string]struct{})
	for _, item := range list {
		obj, ok := item.(*models.Map)
		if !ok {
			continue
		}
		for _, key := range obj.Keys() {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	return keys
}

func csvCell(v models.Value) string {
	switch t := v.(type) {
	case nil, models.Null:
		return ""
	case models.String:
		return string(t)
	default:
		return formatter.Scalar(v)
	}
}

func csvEscape(field string) string {
	if !strings.ContainsAny(field, ",\"\n\r") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
