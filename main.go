package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pterm/pterm"

	"github.com/thesaadarshad/myjson.tools/internal/config"
	"github.com/thesaadarshad/myjson.tools/internal/differ"
	"github.com/thesaadarshad/myjson.tools/internal/errors"
	"github.com/thesaadarshad/myjson.tools/internal/formatter"
	"github.com/thesaadarshad/myjson.tools/internal/logger"
	"github.com/thesaadarshad/myjson.tools/internal/models"
	"github.com/thesaadarshad/myjson.tools/internal/stats"
	"github.com/thesaadarshad/myjson.tools/internal/transform"
)

// Version information
const (
	Version = "0.1.0"
)

// Globals are the flags shared by every command.
type Globals struct {
	Input    string           `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output   string           `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Config   string           `help:"Path to a .yml, .yaml or .toml config file. Discovered from the working directory when omitted." short:"c" type:"path"`
	Debug    bool             `help:"Enable debug logging." short:"d"`
	LogJSON  bool             `help:"Write logs as JSON." name:"log-json"`
	MaxDepth int              `help:"Maximum nesting depth accepted (0 disables the check, -1 keeps the configured value)." name:"max-depth" default:"-1"`
	Version  kong.VersionFlag `help:"Show version information." short:"v"`
}

// CLI defines the command-line interface
type CLI struct {
	Globals

	Compact   CompactCmd   `cmd:"" help:"Remove all insignificant whitespace." aliases:"minify"`
	Pretty    PrettyCmd    `cmd:"" help:"Indent with two spaces per level." aliases:"beautify,decompress"`
	Sort      SortCmd      `cmd:"" help:"Pretty print with object keys sorted at every level."`
	YAML      YAMLCmd      `cmd:"" name:"yaml" help:"Convert to YAML."`
	XML       XMLCmd       `cmd:"" name:"xml" help:"Convert to XML."`
	CSV       CSVCmd       `cmd:"" name:"csv" help:"Convert an array of objects to CSV."`
	Flatten   FlattenCmd   `cmd:"" help:"Flatten nested values into a single-level path map."`
	Unflatten UnflattenCmd `cmd:"" help:"Rebuild a nested document from a path map."`
	Types     TypesCmd     `cmd:"" help:"Generate interface declarations describing the document." aliases:"interfaces"`
	Diff      DiffCmd      `cmd:"" help:"Compare two JSON documents."`
	Stats     StatsCmd     `cmd:"" help:"Report size statistics for a transform."`
	Sample    SampleCmd    `cmd:"" help:"Print a sample document."`
}

// App holds the runtime context shared by the commands
type App struct {
	Globals *Globals
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	return kong.New(cli, append([]kong.Option{
		kong.Name("myjson"),
		kong.Description("Format, convert and compare JSON documents"),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("myjson version %s", Version)},
	}, options...)...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	app := &App{Globals: &cli.Globals, Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	err = ctx.Run(app)
	logger.Sync()
	if err != nil {
		// Use our custom error handling to provide user-friendly error messages
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: myjson --help\n")
		os.Exit(1)
	}
}

// engine loads the configuration with the command's overrides applied,
// initializes logging from it and returns an engine bound to it.
func (a *App) engine(o config.Overrides) (*transform.Engine, error) {
	if a.Globals.MaxDepth >= 0 {
		depth := a.Globals.MaxDepth
		o.MaxDepth = &depth
	}
	if a.Globals.LogJSON {
		jsonLogs := true
		o.LogJSON = &jsonLogs
	}
	if a.Globals.Debug {
		o.LogLevel = "debug"
	}

	cfg, err := config.LoadConfigWithCLI(a.Globals.Config, o)
	if err != nil {
		return nil, err
	}
	if err := logger.Initialize(cfg.Log.Level, cfg.Log.JSON); err != nil {
		return nil, errors.NewConfigError("invalid log settings", err)
	}
	return transform.NewEngine(cfg), nil
}

// apply reads the input, runs op and writes the result.
func (a *App) apply(op transform.Operation, o config.Overrides) error {
	engine, err := a.engine(o)
	if err != nil {
		return err
	}
	input, err := a.readInput()
	if err != nil {
		return err
	}
	out, err := engine.Run(op, input)
	if err != nil {
		return err
	}
	return a.writeOutput(out)
}

// readInput reads the document from the input file or stdin
func (a *App) readInput() (string, error) {
	if a.Globals.Input != "" {
		return readFile(a.Globals.Input)
	}

	// An interactive terminal with nothing piped in has no document to read
	if f, ok := a.Stdin.(*os.File); ok {
		info, err := f.Stat()
		if err != nil {
			return "", errors.NewInputError("failed to access stdin", err)
		}
		if info.Mode()&os.ModeCharDevice != 0 {
			return "", errors.NewInputError("no input provided",
				errors.WithHint(errors.ErrNoInput, "pass a file with -i or pipe a document, e.g. cat data.json | myjson pretty"))
		}
	}

	data, err := io.ReadAll(a.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}
	return string(data), nil
}

func readFile(path string) (string, error) {
	logger.Logger.Debugw("reading file", logger.FieldPath, path)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewInputError(fmt.Sprintf("file '%s' not found", path), errors.ErrFileNotFound)
		}
		return "", errors.NewInputError(fmt.Sprintf("failed to read file '%s'", path), err)
	}
	return string(data), nil
}

// writeOutput writes text to the output file or stdout
func (a *App) writeOutput(text string) error {
	if a.Globals.Output != "" {
		if err := os.WriteFile(a.Globals.Output, []byte(text), 0o644); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", a.Globals.Output), err)
		}
		fmt.Fprintf(a.Stderr, "Output written to %s\n", a.Globals.Output)
		return nil
	}

	if _, err := fmt.Fprintln(a.Stdout, text); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// CompactCmd removes insignificant whitespace
type CompactCmd struct{}

func (c *CompactCmd) Run(app *App) error {
	return app.apply(transform.OpCompact, config.Overrides{})
}

// PrettyCmd indents the document
type PrettyCmd struct{}

func (c *PrettyCmd) Run(app *App) error {
	return app.apply(transform.OpPretty, config.Overrides{})
}

// SortCmd pretty prints with sorted keys
type SortCmd struct{}

func (c *SortCmd) Run(app *App) error {
	return app.apply(transform.OpSort, config.Overrides{})
}

// YAMLCmd converts to YAML
type YAMLCmd struct{}

func (c *YAMLCmd) Run(app *App) error {
	return app.apply(transform.OpYAML, config.Overrides{})
}

// XMLCmd converts to XML
type XMLCmd struct {
	RootTag string `help:"Name of the document element." name:"root-tag"`
}

func (c *XMLCmd) Run(app *App) error {
	return app.apply(transform.OpXML, config.Overrides{RootTag: c.RootTag})
}

// CSVCmd converts an array of objects to CSV
type CSVCmd struct{}

func (c *CSVCmd) Run(app *App) error {
	return app.apply(transform.OpCSV, config.Overrides{})
}

// FlattenCmd flattens nested values into paths
type FlattenCmd struct {
	Separator string `help:"Path segment separator." short:"s"`
}

func (c *FlattenCmd) Run(app *App) error {
	return app.apply(transform.OpFlatten, config.Overrides{Separator: c.Separator})
}

// UnflattenCmd rebuilds nested values from paths
type UnflattenCmd struct {
	Separator string `help:"Path segment separator." short:"s"`
}

func (c *UnflattenCmd) Run(app *App) error {
	return app.apply(transform.OpUnflatten, config.Overrides{Separator: c.Separator})
}

// TypesCmd generates interface declarations
type TypesCmd struct {
	RootName string `help:"Name for the root declaration." short:"r" name:"root-name"`
	Naming   string `help:"Type name style (capitalize or pascal)."`
}

func (c *TypesCmd) Run(app *App) error {
	return app.apply(transform.OpTypes, config.Overrides{RootName: c.RootName, Style: c.Naming})
}

// DiffCmd compares two documents
type DiffCmd struct {
	Left    string `arg:"" help:"Original document." type:"path"`
	Right   string `arg:"" help:"Changed document." type:"path"`
	Unified bool   `help:"Print a line-based unified diff of the pretty printed documents." short:"u"`
	Context int    `help:"Lines of context around each hunk in unified mode." default:"3"`
	JSON    bool   `help:"Print the difference records as a JSON array." name:"json"`
	Color   bool   `help:"Colorize the output."`
}

func (c *DiffCmd) Run(app *App) error {
	var o config.Overrides
	if c.Color {
		o.Color = &c.Color
	}
	engine, err := app.engine(o)
	if err != nil {
		return err
	}

	left, err := readFile(c.Left)
	if err != nil {
		return err
	}
	right, err := readFile(c.Right)
	if err != nil {
		return err
	}

	color := engine.Config().Output.Color
	switch {
	case c.JSON:
		out, err := engine.RunDiff(left, right)
		if err != nil {
			return err
		}
		return app.writeOutput(out)
	case c.Unified:
		a, b, err := engine.ParsePair(left, right)
		if err != nil {
			return err
		}
		records := differ.Diff(a, b)
		text, err := differ.Unified(a, b, c.Left, c.Right, c.Context)
		if err != nil {
			return errors.NewOutputError("failed to render unified diff", err)
		}
		if len(records) == 0 {
			return app.writeOutput(differ.Summarize(records).String())
		}
		return app.writeOutput(colorizeUnified(strings.TrimSuffix(text, "\n"), color))
	default:
		records, err := engine.Diff(left, right)
		if err != nil {
			return err
		}
		return app.writeOutput(renderRecords(records, color))
	}
}

// renderRecords prints one line per record followed by a summary line.
func renderRecords(records []models.Difference, color bool) string {
	var lines []string
	for _, r := range records {
		path := r.Path
		if path == "" {
			path = "(root)"
		}
		switch r.Kind {
		case models.Added:
			lines = append(lines, paint(pterm.FgGreen, color, fmt.Sprintf("+ %s: %s", path, formatter.CompactString(r.Value))))
		case models.Removed:
			lines = append(lines, paint(pterm.FgRed, color, fmt.Sprintf("- %s: %s", path, formatter.CompactString(r.Value))))
		case models.Modified:
			lines = append(lines, paint(pterm.FgYellow, color, fmt.Sprintf("~ %s: %s -> %s", path,
				formatter.CompactString(r.OldValue), formatter.CompactString(r.NewValue))))
		}
	}
	lines = append(lines, differ.Summarize(records).String())
	return strings.Join(lines, "\n")
}

func colorizeUnified(text string, color bool) string {
	if !color {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = pterm.Bold.Sprint(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = pterm.FgCyan.Sprint(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = pterm.FgGreen.Sprint(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = pterm.FgRed.Sprint(line)
		}
	}
	return strings.Join(lines, "\n")
}

func paint(c pterm.Color, enabled bool, text string) string {
	if !enabled {
		return text
	}
	return c.Sprint(text)
}

// StatsCmd reports size statistics for a transform
type StatsCmd struct {
	Operation string `help:"Transform to measure." default:"compact"`
}

func (c *StatsCmd) Run(app *App) error {
	op, ok := transform.ParseOperation(c.Operation)
	if !ok || op == transform.OpDiff {
		return errors.NewInputError(fmt.Sprintf("unknown operation '%s'", c.Operation),
			errors.WithHint(errors.ErrUnsupportedShape, "choose one of compact, pretty, sort, yaml, xml, csv, flatten, unflatten, types"))
	}

	engine, err := app.engine(config.Overrides{})
	if err != nil {
		return err
	}
	input, err := app.readInput()
	if err != nil {
		return err
	}
	out, err := engine.Run(op, input)
	if err != nil {
		return err
	}

	report, err := stats.Compute(input, out)
	if err != nil {
		return errors.NewOutputError("failed to compute statistics", err)
	}
	return app.writeOutput(report.String())
}

// SampleCmd prints the sample document
type SampleCmd struct{}

func (c *SampleCmd) Run(app *App) error {
	return app.writeOutput(transform.Sample())
}
