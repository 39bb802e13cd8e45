package formatter

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/thesaadarshad/myjson.tools/internal/models"
)

// Mode selects the canonical JSON layout.
type Mode int

const (
	// Compact emits no insignificant whitespace.
	Compact Mode = iota
	// Pretty indents two spaces per level, one member or element per line.
	Pretty
	// Sorted is Pretty with every object's keys in ascending order.
	Sorted
)

const indentUnit = "  "

// ParseMode maps a mode name to a Mode.
func ParseMode(name string) (Mode, bool) {
	switch strings.ToLower(name) {
	case "compact", "compress", "minify":
		return Compact, true
	case "pretty", "beautify", "decompress":
		return Pretty, true
	case "sort", "sorted":
		return Sorted, true
	default:
		return Compact, false
	}
}

// Format renders v in the requested mode.
func Format(v models.Value, mode Mode) string {
	var b strings.Builder
	switch mode {
	case Pretty:
		writePretty(&b, v, 0)
	case Sorted:
		writePretty(&b, SortKeys(v), 0)
	default:
		writeCompact(&b, v)
	}
	return b.String()
}

// CompactString is shorthand for Format(v, Compact).
func CompactString(v models.Value) string {
	return Format(v, Compact)
}

// SortKeys returns a copy of v in which every object's keys are ordered by
// code point, recursively. Array order is kept.
func SortKeys(v models.Value) models.Value {
	switch t := v.(type) {
	case models.List:
		out := make(models.List, len(t))
		for i, item := range t {
			out[i] = SortKeys(item)
		}
		return out
	case *models.Map:
		keys := t.Keys()
		sort.Strings(keys)
		out := models.NewMap()
		for _, key := range keys {
			value, _ := t.Get(key)
			out.Set(key, SortKeys(value))
		}
		return out
	default:
		return v
	}
}

func writeCompact(b *strings.Builder, v models.Value) {
	switch t := v.(type) {
	case models.List:
		b.WriteByte('[')
		for i, item := range t {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCompact(b, item)
		}
		b.WriteByte(']')
	case *models.Map:
		b.WriteByte('{')
		for i, m := range t.Members() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(Quote(m.Key))
			b.WriteByte(':')
			writeCompact(b, m.Value)
		}
		b.WriteByte('}')
	default:
		b.WriteString(Scalar(v))
	}
}

func writePretty(b *strings.Builder, v models.Value, depth int) {
	switch t := v.(type) {
	case models.List:
		if len(t) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteByte('[')
		for i, item := range t {
			if i > 0 {
				b.WriteByte(',')
			}
			newline(b, depth+1)
			writePretty(b, item, depth+1)
		}
		newline(b, depth)
		b.WriteByte(']')
	case *models.Map:
		if t.Len() == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteByte('{')
		for i, m := range t.Members() {
			if i > 0 {
				b.WriteByte(',')
			}
			newline(b, depth+1)
			b.WriteString(Quote(m.Key))
			b.WriteString(": ")
			writePretty(b, m.Value, depth+1)
		}
		newline(b, depth)
		b.WriteByte('}')
	default:
		b.WriteString(Scalar(v))
	}
}

func newline(b *strings.Builder, depth int) {
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(indentUnit, depth))
}

// Scalar renders a non-container value as JSON text. Containers are
// rendered compactly.
func Scalar(v models.Value) string {
	switch t := v.(type) {
	case models.Null:
		return "null"
	case models.Bool:
		if t {
			return "true"
		}
		return "false"
	case models.Number:
		return FormatNumber(float64(t))
	case models.String:
		return Quote(string(t))
	case nil:
		return "null"
	default:
		return CompactString(v)
	}
}

// FormatNumber renders f the way ECMAScript's Number-to-String does:
// shortest round-trip digits, exponent form below 1e-6 and from 1e21.
func FormatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	format := byte('f')
	if abs < 1e-6 || abs >= 1e21 {
		format = 'e'
	}
	out := strconv.FormatFloat(f, format, -1, 64)
	if format == 'e' {
		// 1e-07 -> 1e-7
		n := len(out)
		if n >= 4 && out[n-4] == 'e' && out[n-3] == '-' && out[n-2] == '0' {
			out = out[:n-2] + out[n-1:]
		}
	}
	return out
}

const hexDigits = "0123456789abcdef"

// Quote renders s as a JSON string literal, escaping only what JSON
// requires.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch c {
			case '"':
				b.WriteString(`\"`)
			case '\\':
				b.WriteString(`\\`)
			case '\b':
				b.WriteString(`\b`)
			case '\f':
				b.WriteString(`\f`)
			case '\n':
				b.WriteString(`\n`)
			case '\r':
				b.WriteString(`\r`)
			case '\t':
				b.WriteString(`\t`)
			default:
				if c < 0x20 {
					b.WriteString(`\u00`)
					b.WriteByte(hexDigits[c>>4])
					b.WriteByte(hexDigits[c&0xf])
				} else {
					b.WriteByte(c)
				}
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteString("\ufffd")
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	b.WriteByte('"')
	return b.String()
}
