// Package differ computes path-addressed structural differences between
// two trees.
package differ

import (
	"strconv"

	"github.com/thesaadarshad/myjson.tools/internal/formatter"
	"github.com/thesaadarshad/myjson.tools/internal/models"
)

// Diff returns the differences that turn a into b, in depth-first
// traversal order. Object keys are visited in discovery order across both
// sides. Lists are compared by position, so an insertion shows up as a run
// of modifications rather than a single addition.
func Diff(a, b models.Value) []models.Difference {
	d := &differ{}
	d.compareValues(a, b, "")
	return d.records
}

type differ struct {
	records []models.Difference
}

func (d *differ) compareValues(a, b models.Value, path string) {
	switch x := a.(type) {
	case *models.Map:
		if y, ok := b.(*models.Map); ok {
			d.compareNodes(x, y, path)
			return
		}
	case models.List:
		if y, ok := b.(models.List); ok {
			d.compareArrays(x, y, path)
			return
		}
	}
	if formatter.CompactString(a) != formatter.CompactString(b) {
		d.records = append(d.records, models.Difference{
			Kind:     models.Modified,
			Path:     path,
			OldValue: a,
			NewValue: b,
		})
	}
}

// compareNodes walks the union of keys. A key missing on one side is
// absent, which is distinct from a present null.
func (d *differ) compareNodes(a, b *models.Map, path string) {
	for _, key := range unionKeys(a, b) {
		keyPath := joinKey(path, key)
		av, inA := a.Get(key)
		bv, inB := b.Get(key)

		switch {
		case !inA:
			d.records = append(d.records, models.Difference{Kind: models.Added, Path: keyPath, Value: bv})
		case !inB:
			d.records = append(d.records, models.Difference{Kind: models.Removed, Path: keyPath, Value: av})
		default:
			d.compareValues(av, bv, keyPath)
		}
	}
}

func (d *differ) compareArrays(a, b models.List, path string) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		itemPath := path + "[" + strconv.Itoa(i) + "]"
		switch {
		case i >= len(a):
			d.records = append(d.records, models.Difference{Kind: models.Added, Path: itemPath, Value: b[i]})
		case i >= len(b):
			d.records = append(d.records, models.Difference{Kind: models.Removed, Path: itemPath, Value: a[i]})
		default:
			d.compareValues(a[i], b[i], itemPath)
		}
	}
}

func unionKeys(a, b *models.Map) []string {
	keys := a.Keys()
	for _, key := range b.Keys() {
		if !a.Has(key) {
			keys = append(keys, key)
		}
	}
	return keys
}

func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
