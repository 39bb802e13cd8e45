// Package flatten converts between nested trees and flat maps keyed by
// separator-joined paths.
package flatten

import (
	"sort"
	"strconv"
	"strings"

	"github.com/thesaadarshad/myjson.tools/internal/models"
)

// DefaultSeparator joins path segments when none is configured.
const DefaultSeparator = "."

// Flatten walks v depth-first and records every leaf under its full path.
// Object keys and list indexes are joined with sep. Empty objects and
// empty lists are leaves. A scalar root is recorded under the empty path;
// an empty root container yields an empty map.
func Flatten(v models.Value, sep string) *models.Map {
	if sep == "" {
		sep = DefaultSeparator
	}
	out := models.NewMap()
	if isEmptyContainer(v) {
		return out
	}
	walk(out, v, "", sep, true)
	return out
}

// walk records v under path. root is tracked apart from path so that an
// empty key still contributes a segment.
func walk(out *models.Map, v models.Value, path, sep string, root bool) {
	switch t := v.(type) {
	case *models.Map:
		if t.Len() == 0 {
			out.Set(path, t)
			return
		}
		for _, member := range t.Members() {
			walk(out, member.Value, join(path, member.Key, sep, root), sep, false)
		}
	case models.List:
		if len(t) == 0 {
			out.Set(path, t)
			return
		}
		for i, item := range t {
			walk(out, item, join(path, strconv.Itoa(i), sep, root), sep, false)
		}
	default:
		out.Set(path, v)
	}
}

func join(path, segment, sep string, root bool) string {
	if root {
		return segment
	}
	return path + sep + segment
}

func isEmptyContainer(v models.Value) bool {
	switch t := v.(type) {
	case *models.Map:
		return t.Len() == 0
	case models.List:
		return len(t) == 0
	default:
		return false
	}
}

// Unflatten rebuilds a tree from a flat path map. Each path is split on
// sep; an intermediate container becomes a list when the segment after
// it is all digits and an object otherwise. Numeric object keys are
// therefore read back as list indexes. A map holding only the empty path
// unflattens to that path's value, so {"": scalar} reads back as a bare
// scalar.
func Unflatten(flat *models.Map, sep string) models.Value {
	if sep == "" {
		sep = DefaultSeparator
	}
	if flat.Len() == 1 {
		if v, ok := flat.Get(""); ok {
			return v
		}
	}
	if flat.Len() == 0 {
		return models.NewMap()
	}

	members := flat.Members()
	root := newNode(isIndex(strings.Split(members[0].Key, sep)[0]))
	for _, member := range members {
		segments := strings.Split(member.Key, sep)
		cur := root
		for i, segment := range segments[:len(segments)-1] {
			cur = cur.child(segment, isIndex(segments[i+1]))
		}
		cur.set(segments[len(segments)-1], member.Value)
	}
	return root.build()
}

// node is a container under construction. Entries hold either a
// models.Value or a *node.
type node struct {
	list    bool
	keys    []string
	entries map[string]interface{}
}

func newNode(list bool) *node {
	return &node{list: list, entries: make(map[string]interface{})}
}

func (n *node) child(key string, list bool) *node {
	if existing, ok := n.entries[key].(*node); ok {
		return existing
	}
	c := newNode(list)
	n.put(key, c)
	return c
}

func (n *node) set(key string, v models.Value) {
	n.put(key, v)
}

// put stores an entry; a later write to the same key replaces the
// earlier one in place.
func (n *node) put(key string, entry interface{}) {
	if _, ok := n.entries[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.entries[key] = entry
}

func (n *node) build() models.Value {
	if n.list && n.allIndexes() {
		keys := append([]string(nil), n.keys...)
		sort.SliceStable(keys, func(i, j int) bool {
			return indexOf(keys[i]) < indexOf(keys[j])
		})
		out := make(models.List, len(keys))
		for i, key := range keys {
			out[i] = buildEntry(n.entries[key])
		}
		return out
	}

	out := models.NewMap()
	for _, key := range n.keys {
		out.Set(key, buildEntry(n.entries[key]))
	}
	return out
}

func (n *node) allIndexes() bool {
	for _, key := range n.keys {
		if !isIndex(key) {
			return false
		}
	}
	return true
}

func buildEntry(entry interface{}) models.Value {
	if c, ok := entry.(*node); ok {
		return c.build()
	}
	return entry.(models.Value)
}

func isIndex(segment string) bool {
	if segment == "" {
		return false
	}
	for i := 0; i < len(segment); i++ {
		if segment[i] < '0' || segment[i] > '9' {
			return false
		}
	}
	return true
}

func indexOf(segment string) int {
	n, err := strconv.Atoi(segment)
	if err != nil {
		// too many digits for an int; order after every real index
		return int(^uint(0) >> 1)
	}
	return n
}
