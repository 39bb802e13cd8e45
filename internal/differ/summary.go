package differ

import (
	"fmt"

	"github.com/thesaadarshad/myjson.tools/internal/models"
)

// Summary counts difference records by kind.
type Summary struct {
	Added    int
	Removed  int
	Modified int
}

// Total returns the number of records counted.
func (s Summary) Total() int {
	return s.Added + s.Removed + s.Modified
}

func (s Summary) String() string {
	if s.Total() == 0 {
		return "no differences"
	}
	return fmt.Sprintf("%d added, %d removed, %d modified", s.Added, s.Removed, s.Modified)
}

// Summarize counts records by kind.
func Summarize(records []models.Difference) Summary {
	var s Summary
	for _, r := range records {
		switch r.Kind {
		case models.Added:
			s.Added++
		case models.Removed:
			s.Removed++
		case models.Modified:
			s.Modified++
		}
	}
	return s
}

// ToValue renders records as a list of objects with the keys kind and
// path followed by value, or by oldValue and newValue for modifications.
func ToValue(records []models.Difference) models.List {
	out := make(models.List, 0, len(records))
	for _, r := range records {
		m := models.NewMap(
			models.Member{Key: "kind", Value: models.String(r.Kind)},
			models.Member{Key: "path", Value: models.String(r.Path)},
		)
		if r.Kind == models.Modified {
			m.Set("oldValue", orNull(r.OldValue))
			m.Set("newValue", orNull(r.NewValue))
		} else {
			m.Set("value", orNull(r.Value))
		}
		out = append(out, m)
	}
	return out
}

func orNull(v models.Value) models.Value {
	if v == nil {
		return models.Null{}
	}
	return v
}
