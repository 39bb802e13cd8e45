package models

// Member is one key/value pair of a Map.
type Member struct {
	Key   string
	Value Value
}

// Map is a JSON object that remembers the order in which keys were first
// inserted. Keys are unique; setting an existing key replaces its value in
// place.
type Map struct {
	members []Member
	index   map[string]int
}

// NewMap builds a Map from members in order. A repeated key keeps its first
// position and takes the last value, like JSON.parse.
func NewMap(members ...Member) *Map {
	m := &Map{
		members: make([]Member, 0, len(members)),
		index:   make(map[string]int, len(members)),
	}
	for _, member := range members {
		m.Set(member.Key, member.Value)
	}
	return m
}

// Set inserts or replaces key. It is meant for building a map; values
// handed out by the parser and transforms are not modified afterwards.
func (m *Map) Set(key string, value Value) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.members[i].Value = value
		return
	}
	m.index[key] = len(m.members)
	m.members = append(m.members, Member{Key: key, Value: value})
}

// Get returns the value stored under key. The boolean is false when the key
// is absent, which is distinct from a present Null.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.members[i].Value, true
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Len returns the number of members.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.members)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, m.Len())
	for _, member := range m.Members() {
		keys = append(keys, member.Key)
	}
	return keys
}

// Members returns the members in insertion order. Callers must not modify
// the returned slice.
func (m *Map) Members() []Member {
	if m == nil {
		return nil
	}
	return m.members
}
