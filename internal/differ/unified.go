package differ

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/thesaadarshad/myjson.tools/internal/formatter"
	"github.com/thesaadarshad/myjson.tools/internal/models"
)

// DefaultContext is the number of unchanged lines kept around each hunk.
const DefaultContext = 3

// Unified returns a line-based unified diff of the pretty-printed forms of
// a and b. It is empty when the two render identically.
func Unified(a, b models.Value, fromName, toName string, context int) (string, error) {
	if context < 0 {
		context = DefaultContext
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(formatter.Format(a, formatter.Pretty)),
		B:        difflib.SplitLines(formatter.Format(b, formatter.Pretty)),
		FromFile: fromName,
		ToFile:   toName,
		Context:  context,
	}
	return difflib.GetUnifiedDiffString(diff)
}
