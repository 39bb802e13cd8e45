package generator

import (
	"bytes"
	"fmt"

	"github.com/thesaadarshad/myjson.tools/internal/formatter"
	"github.com/thesaadarshad/myjson.tools/internal/models"
	"github.com/thesaadarshad/myjson.tools/internal/naming"
)

// Generator renders declaration sets as interface declarations
type Generator struct{}

// NewGenerator creates a new Generator instance
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders one interface block per declaration in first-seen
// order, preceded by a type alias when the root is not an object. Blocks
// are separated by a blank line.
func (g *Generator) Generate(set *models.DeclarationSet) (string, error) {
	if set == nil {
		return "", fmt.Errorf("no declarations to generate")
	}

	var buf bytes.Buffer

	if set.RootAlias != "" {
		buf.WriteString(fmt.Sprintf("type %s = %s;", set.RootName, set.RootAlias))
	}

	for _, decl := range set.Declarations() {
		if buf.Len() > 0 {
			buf.WriteString("\n\n")
		}
		writeDeclaration(&buf, decl)
	}

	return buf.String(), nil
}

func writeDeclaration(buf *bytes.Buffer, decl models.Declaration) {
	if len(decl.Properties) == 0 {
		buf.WriteString(fmt.Sprintf("interface %s {}", decl.Name))
		return
	}

	buf.WriteString(fmt.Sprintf("interface %s {\n", decl.Name))
	for _, prop := range decl.Properties {
		buf.WriteString(fmt.Sprintf("  %s: %s;\n", propertyName(prop.Name), prop.Type))
	}
	buf.WriteString("}")
}

// propertyName quotes keys that are not plain identifiers.
func propertyName(key string) string {
	if naming.IsIdentifier(key) {
		return key
	}
	return formatter.Quote(key)
}
