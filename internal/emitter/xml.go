package emitter

import (
	"strings"

	"github.com/thesaadarshad/myjson.tools/internal/formatter"
	"github.com/thesaadarshad/myjson.tools/internal/models"
	"github.com/thesaadarshad/myjson.tools/internal/naming"
)

// DefaultRootTag names the document element when the caller gives none.
const DefaultRootTag = "root"

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// ToXML renders v as XML under rootTag. Lists have no element of their
// own: each item repeats the singularized parent tag, so a list at the
// root yields sibling elements rather than a single document element.
func ToXML(v models.Value, rootTag string) string {
	if rootTag == "" {
		rootTag = DefaultRootTag
	}
	var lines []string
	lines = xmlElement(lines, naming.SanitizeTag(rootTag), v, 0)
	return strings.Join(lines, "\n")
}

func xmlElement(lines []string, tag string, v models.Value, depth int) []string {
	spaces := strings.Repeat(indentUnit, depth)

	switch t := v.(type) {
	case models.List:
		if len(t) == 0 {
			return append(lines, spaces+"<"+tag+"></"+tag+">")
		}
		itemTag := naming.SanitizeTag(naming.Singularize(tag))
		for _, item := range t {
			lines = xmlElement(lines, itemTag, item, depth)
		}
		return lines
	case *models.Map:
		if t.Len() == 0 {
			return append(lines, spaces+"<"+tag+"></"+tag+">")
		}
		lines = append(lines, spaces+"<"+tag+">")
		for _, member := range t.Members() {
			lines = xmlElement(lines, naming.SanitizeTag(member.Key), member.Value, depth+1)
		}
		return append(lines, spaces+"</"+tag+">")
	default:
		return append(lines, spaces+"<"+tag+">"+xmlText(v)+"</"+tag+">")
	}
}

func xmlText(v models.Value) string {
	switch t := v.(type) {
	case nil, models.Null:
		return ""
	case models.String:
		return xmlEscaper.Replace(string(t))
	default:
		return xmlEscaper.Replace(formatter.Scalar(v))
	}
}
