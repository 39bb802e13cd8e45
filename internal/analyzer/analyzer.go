package analyzer

import (
	"strings"

	"github.com/thesaadarshad/myjson.tools/internal/config"
	"github.com/thesaadarshad/myjson.tools/internal/errors"
	"github.com/thesaadarshad/myjson.tools/internal/models"
	"github.com/thesaadarshad/myjson.tools/internal/naming"
)

// DefaultRootName is the default name for the root declaration if not specified.
const DefaultRootName = "Root"

// rootItemSuffix names the element type of a list at the root.
const rootItemSuffix = "Item"

// anonymousName is declared for objects whose key yields an empty type
// name, such as the empty key.
const anonymousName = "Anonymous"

// Analyzer infers structural type declarations from a parsed tree
type Analyzer struct {
	// result holds the declarations discovered by the current Analyze call
	result *models.DeclarationSet
	// config holds configuration settings for analysis
	config *config.Config
}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer() *Analyzer {
	return &Analyzer{config: config.NewConfig()}
}

// NewAnalyzerWithConfig creates a new Analyzer instance with custom configuration.
func NewAnalyzerWithConfig(cfg *config.Config) *Analyzer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Analyzer{config: cfg}
}

// Analyze walks v and returns the declarations it implies.
//
// An object under key K is declared as K's type name; the elements of a
// list under K share the name derived from the singular of K. Names are
// never disambiguated: a later object with the same name replaces the
// earlier declaration. A root that is not an object is described by
// RootAlias instead of an interface.
func (a *Analyzer) Analyze(v models.Value, rootName string) (*models.DeclarationSet, error) {
	if v == nil {
		return nil, errors.NewTransformError("cannot infer types", errors.ErrUnsupportedShape)
	}
	if strings.TrimSpace(rootName) == "" {
		rootName = DefaultRootName
	}

	a.result = &models.DeclarationSet{RootName: rootName}

	switch t := v.(type) {
	case *models.Map:
		a.declare(rootName, t)
	case models.List:
		a.result.RootAlias = a.inferList(t, rootName+rootItemSuffix)
	default:
		a.result.RootAlias = a.infer(v, "")
	}

	return a.result, nil
}

// infer returns the type expression for v found under key.
func (a *Analyzer) infer(v models.Value, key string) string {
	switch t := v.(type) {
	case nil, models.Null:
		return "null"
	case models.Bool:
		return "boolean"
	case models.Number:
		return "number"
	case models.String:
		return "string"
	case *models.Map:
		name := a.typeName(key)
		a.declare(name, t)
		return name
	case models.List:
		return a.inferList(t, a.elementName(key))
	default:
		return "unknown"
	}
}

// inferList returns the array type for list. Object elements are declared
// as elementName. Distinct element types form a union in first-seen order.
func (a *Analyzer) inferList(list models.List, elementName string) string {
	if len(list) == 0 {
		return "any[]"
	}

	var types []string
	seen := make(map[string]struct{})
	for _, item := range list {
		var typ string
		switch t := item.(type) {
		case *models.Map:
			a.declare(elementName, t)
			typ = elementName
		case models.List:
			typ = a.inferList(t, elementName)
		default:
			typ = a.infer(item, "")
		}
		if _, ok := seen[typ]; ok {
			continue
		}
		seen[typ] = struct{}{}
		types = append(types, typ)
	}

	if len(types) == 1 {
		return types[0] + "[]"
	}
	return "(" + strings.Join(types, " | ") + ")[]"
}

// declare records obj's properties under name. The name is reserved before
// the members are visited so a parent is listed ahead of its children.
func (a *Analyzer) declare(name string, obj *models.Map) {
	a.result.Reserve(name)

	properties := make([]models.Property, 0, obj.Len())
	for _, member := range obj.Members() {
		var typ string
		if mapping, found := a.config.FindTypeMapping(member.Key); found {
			typ = mapping.Type
		} else {
			typ = a.infer(member.Value, member.Key)
		}
		properties = append(properties, models.Property{Name: member.Key, Type: typ})
	}

	a.result.Put(name, properties)
}

// elementName derives the declaration name shared by the object elements
// of a list found under key. A custom name for key takes precedence.
func (a *Analyzer) elementName(key string) string {
	if mapped, ok := a.config.Naming.TypeNames[key]; ok {
		return mapped
	}
	return a.typeName(naming.Singularize(key))
}

func (a *Analyzer) typeName(key string) string {
	if name := a.config.TypeName(key); name != "" {
		return name
	}
	return anonymousName
}
