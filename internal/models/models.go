package models

// Kind identifies which of the six tree variants a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "array"
	case KindMap:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a parsed JSON tree. The set of implementations is closed:
// Null, Bool, Number, String, List and *Map.
type Value interface {
	Kind() Kind
	isValue()
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number. Integers and floats share one representation.
type Number float64

// String is a JSON string.
type String string

// List is an ordered JSON array.
type List []Value

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (List) Kind() Kind   { return KindList }
func (*Map) Kind() Kind   { return KindMap }

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (List) isValue()   {}
func (*Map) isValue()   {}

// IsContainer reports whether v is a List or a Map.
func IsContainer(v Value) bool {
	switch v.(type) {
	case List, *Map:
		return true
	default:
		return false
	}
}

// Depth returns the nesting depth of v. Scalars have depth 0.
func Depth(v Value) int {
	switch t := v.(type) {
	case List:
		max := 0
		for _, item := range t {
			if d := Depth(item); d > max {
				max = d
			}
		}
		return max + 1
	case *Map:
		max := 0
		for _, m := range t.Members() {
			if d := Depth(m.Value); d > max {
				max = d
			}
		}
		return max + 1
	default:
		return 0
	}
}

// Equal reports whether a and b are structurally equal. Map key order is
// significant, matching the order-preserving round-trip guarantee.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Map:
		y, ok := b.(*Map)
		if !ok || x.Len() != y.Len() {
			return false
		}
		xm, ym := x.Members(), y.Members()
		for i := range xm {
			if xm[i].Key != ym[i].Key || !Equal(xm[i].Value, ym[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
