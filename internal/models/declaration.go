package models

// Property is one member of a type declaration: the JSON key and the
// type expression inferred for its value.
type Property struct {
	Name string
	Type string
}

// Declaration is a named structural type.
type Declaration struct {
	Name       string
	Properties []Property
}

// DeclarationSet holds the declarations synthesized from one tree, in the
// order their names were first seen. Declaring an existing name replaces
// its properties but keeps its position.
type DeclarationSet struct {
	// RootName names the root type.
	RootName string
	// RootAlias is the type expression of a root that is not an object.
	// It is empty when the root is declared as an interface.
	RootAlias string

	names  []string
	byName map[string]*Declaration
}

// Reserve records name at the current position without properties. It is
// a no-op for a known name.
func (s *DeclarationSet) Reserve(name string) {
	if s.byName == nil {
		s.byName = make(map[string]*Declaration)
	}
	if _, ok := s.byName[name]; ok {
		return
	}
	s.names = append(s.names, name)
	s.byName[name] = &Declaration{Name: name}
}

// Put stores properties under name, replacing any earlier declaration.
func (s *DeclarationSet) Put(name string, properties []Property) {
	s.Reserve(name)
	s.byName[name].Properties = properties
}

// Get returns the declaration stored under name.
func (s *DeclarationSet) Get(name string) (Declaration, bool) {
	d, ok := s.byName[name]
	if !ok {
		return Declaration{}, false
	}
	return *d, true
}

// Len returns the number of declarations.
func (s *DeclarationSet) Len() int {
	return len(s.names)
}

// Declarations returns the declarations in first-seen order.
func (s *DeclarationSet) Declarations() []Declaration {
	out := make([]Declaration, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, *s.byName[name])
	}
	return out
}
