// Package transform is the text-in, text-out boundary over the tree
// algorithms. Every entry point validates its input before any transform
// runs and returns either complete output or a typed error.
package transform

import (
	"fmt"
	"strings"
	"time"

	"github.com/thesaadarshad/myjson.tools/internal/analyzer"
	"github.com/thesaadarshad/myjson.tools/internal/config"
	"github.com/thesaadarshad/myjson.tools/internal/differ"
	"github.com/thesaadarshad/myjson.tools/internal/emitter"
	"github.com/thesaadarshad/myjson.tools/internal/errors"
	"github.com/thesaadarshad/myjson.tools/internal/flatten"
	"github.com/thesaadarshad/myjson.tools/internal/formatter"
	"github.com/thesaadarshad/myjson.tools/internal/generator"
	"github.com/thesaadarshad/myjson.tools/internal/logger"
	"github.com/thesaadarshad/myjson.tools/internal/models"
	"github.com/thesaadarshad/myjson.tools/internal/parser"
)

// Engine runs transforms with one configuration. It holds no per-call
// state and is safe for concurrent use.
type Engine struct {
	cfg *config.Config
}

// NewEngine creates an Engine. A nil config means the defaults.
func NewEngine(cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Engine{cfg: cfg}
}

// Config returns the engine's configuration.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// Parse validates text and returns its tree. Blank text is ErrEmptyInput,
// malformed text carries a *errors.SyntaxError and a tree nested deeper
// than the configured limit is ErrTooDeep.
func (e *Engine) Parse(text string) (models.Value, error) {
	tree, err := parser.ParseString(text)
	if err != nil {
		return nil, err
	}

	depth := models.Depth(tree)
	if limit := e.cfg.MaxDepth; limit > 0 && depth > limit {
		return nil, errors.NewTransformError(
			fmt.Sprintf("nesting depth %d exceeds the limit of %d", depth, limit),
			errors.WithHint(errors.ErrTooDeep, "raise max_depth in the config file or pass --max-depth"),
		)
	}

	logger.Logger.Debugw("document parsed",
		logger.FieldInputBytes, len(text),
		logger.FieldDepth, depth)
	return tree, nil
}

// Run parses text and applies op to it.
func (e *Engine) Run(op Operation, text string) (string, error) {
	start := time.Now()

	out, err := e.run(op, text)
	if err != nil {
		logger.Logger.Warnw("transform failed",
			logger.FieldOperation, op,
			logger.FieldInputBytes, len(text),
			logger.FieldErrorKind, errors.Kind(err),
			logger.FieldError, err)
		return "", err
	}

	logger.Logger.Debugw("transform complete",
		logger.FieldOperation, op,
		logger.FieldInputBytes, len(text),
		logger.FieldOutputBytes, len(out),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return out, nil
}

func (e *Engine) run(op Operation, text string) (string, error) {
	resolved, ok := ParseOperation(string(op))
	if !ok {
		return "", errors.NewTransformError(fmt.Sprintf("unknown operation %q", op), errors.ErrUnsupportedShape)
	}
	if resolved == OpDiff {
		return "", errors.NewTransformError(
			"diff compares two documents",
			errors.WithHint(errors.ErrUnsupportedShape, "use RunDiff with a left and a right document"),
		)
	}

	tree, err := e.Parse(text)
	if err != nil {
		return "", err
	}
	return e.Apply(resolved, tree)
}

// Apply runs op on an already parsed tree.
func (e *Engine) Apply(op Operation, tree models.Value) (string, error) {
	switch op {
	case OpCompact:
		return formatter.Format(tree, formatter.Compact), nil
	case OpPretty:
		return formatter.Format(tree, formatter.Pretty), nil
	case OpSort:
		return formatter.Format(tree, formatter.Sorted), nil
	case OpYAML:
		return emitter.ToYAML(tree), nil
	case OpXML:
		return emitter.ToXML(tree, e.cfg.RootTag), nil
	case OpCSV:
		return emitter.ToCSV(tree), nil
	case OpFlatten:
		return formatter.Format(flatten.Flatten(tree, e.cfg.Separator), formatter.Pretty), nil
	case OpUnflatten:
		flat, ok := tree.(*models.Map)
		if !ok {
			return "", errors.NewTransformError(
				fmt.Sprintf("unflatten expects an object of paths, got %s", tree.Kind()),
				errors.ErrUnsupportedShape,
			)
		}
		return formatter.Format(flatten.Unflatten(flat, e.cfg.Separator), formatter.Pretty), nil
	case OpTypes:
		set, err := analyzer.NewAnalyzerWithConfig(e.cfg).Analyze(tree, e.cfg.RootName)
		if err != nil {
			return "", err
		}
		out, err := generator.NewGenerator().Generate(set)
		if err != nil {
			return "", errors.NewTransformError("failed to generate declarations", err)
		}
		return out, nil
	default:
		return "", errors.NewTransformError(fmt.Sprintf("operation %q needs a single document", op), errors.ErrUnsupportedShape)
	}
}

// ParsePair parses both sides of a comparison. A blank side is rejected
// before either document is parsed, and parse failures name their side.
func (e *Engine) ParsePair(left, right string) (models.Value, models.Value, error) {
	leftBlank, rightBlank := strings.TrimSpace(left) == "", strings.TrimSpace(right) == ""
	switch {
	case leftBlank && rightBlank:
		return nil, nil, errors.NewInputError("both documents are empty", errors.ErrEmptyInput)
	case leftBlank || rightBlank:
		side := "left"
		if rightBlank {
			side = "right"
		}
		return nil, nil, errors.NewTransformError(
			fmt.Sprintf("the %s document is empty", side),
			errors.WithHint(errors.ErrUnsupportedShape, "diff needs two documents"),
		)
	}

	a, err := e.Parse(left)
	if err != nil {
		return nil, nil, errors.Wrap(err, "left document")
	}
	b, err := e.Parse(right)
	if err != nil {
		return nil, nil, errors.Wrap(err, "right document")
	}
	return a, b, nil
}

// Diff parses both documents and returns their structural differences.
// Two blank documents are ErrEmptyInput; a single blank side cannot be
// compared and is ErrUnsupportedShape.
func (e *Engine) Diff(left, right string) ([]models.Difference, error) {
	a, b, err := e.ParsePair(left, right)
	if err != nil {
		return nil, err
	}

	records := differ.Diff(a, b)
	logger.Logger.Debugw("diff complete",
		logger.FieldOperation, OpDiff,
		logger.FieldCount, len(records))
	return records, nil
}

// RunDiff is Diff with the records rendered as a pretty JSON array.
func (e *Engine) RunDiff(left, right string) (string, error) {
	records, err := e.Diff(left, right)
	if err != nil {
		logger.Logger.Warnw("transform failed",
			logger.FieldOperation, OpDiff,
			logger.FieldErrorKind, errors.Kind(err),
			logger.FieldError, err)
		return "", err
	}
	return formatter.Format(differ.ToValue(records), formatter.Pretty), nil
}
