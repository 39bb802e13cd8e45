package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thesaadarshad/myjson.tools/internal/errors"
	"github.com/thesaadarshad/myjson.tools/internal/naming"
)

// Default values applied by NewConfig.
const (
	DefaultRootTag   = "root"
	DefaultRootName  = "Root"
	DefaultSeparator = "."
	DefaultMaxDepth  = 512
	DefaultLogLevel  = "warn"
)

// Config represents the complete configuration for myjson
type Config struct {
	RootTag   string       `yaml:"root_tag" toml:"root_tag"`
	RootName  string       `yaml:"root_name" toml:"root_name"`
	Separator string       `yaml:"separator" toml:"separator"`
	MaxDepth  int          `yaml:"max_depth" toml:"max_depth"`
	Naming    NamingConfig `yaml:"naming" toml:"naming"`
	Types     TypesConfig  `yaml:"types" toml:"types"`
	Output    OutputConfig `yaml:"output" toml:"output"`
	Log       LogConfig    `yaml:"log" toml:"log"`
}

// NamingConfig controls declaration naming in the types transform
type NamingConfig struct {
	Style naming.Style `yaml:"style" toml:"style"`
	// TypeNames maps a JSON key to the declaration name used for it.
	TypeNames map[string]string `yaml:"type_names" toml:"type_names"`
}

// TypesConfig controls type inference in the types transform
type TypesConfig struct {
	Mappings []TypeMapping `yaml:"mappings" toml:"mappings"`
}

// TypeMapping forces the type expression of every property whose key
// matches Pattern.
type TypeMapping struct {
	Pattern string `yaml:"pattern" toml:"pattern"`
	Type    string `yaml:"type" toml:"type"`

	// compiled regex (not serialized)
	regex *regexp.Regexp
}

// OutputConfig controls terminal output
type OutputConfig struct {
	Color bool `yaml:"color" toml:"color"`
}

// LogConfig controls the process logger
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	JSON  bool   `yaml:"json" toml:"json"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		RootTag:   DefaultRootTag,
		RootName:  DefaultRootName,
		Separator: DefaultSeparator,
		MaxDepth:  DefaultMaxDepth,
		Naming: NamingConfig{
			Style:     naming.StyleCapitalize,
			TypeNames: make(map[string]string),
		},
		Types: TypesConfig{
			Mappings: []TypeMapping{},
		},
		Output: OutputConfig{
			Color: false,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
			JSON:  false,
		},
	}
}

// LoadConfig loads configuration from a YAML or TOML file. The format is
// chosen by extension; defaults fill anything the file leaves out.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError("failed to read config file", err)
	}

	cfg := NewConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, errors.NewConfigError(
			"unsupported config file extension",
			errors.WithHint(errors.Newf("cannot load %q", path), "use a .yml, .yaml or .toml file"),
		)
	}
	if err != nil {
		return nil, errors.NewConfigError("failed to parse config file", err)
	}

	if cfg.Naming.TypeNames == nil {
		cfg.Naming.TypeNames = make(map[string]string)
	}

	if err := cfg.compilePatterns(); err != nil {
		return nil, errors.NewConfigError("failed to compile patterns", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// configNames lists the file names FindConfigFile looks for, in order.
var configNames = []string{
	".myjson.yml", ".myjson.yaml", ".myjson.toml",
	"myjson.yml", "myjson.yaml", "myjson.toml",
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return findConfigFrom(currentDir)
}

func findConfigFrom(dir string) string {
	for {
		for _, name := range configNames {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			break
		}
		dir = parentDir
	}

	return ""
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Separator == "":
		return errors.NewConfigError("separator must not be empty", nil)
	case c.MaxDepth < 0:
		return errors.NewConfigError("max_depth must be zero or positive", nil)
	case strings.TrimSpace(c.RootTag) == "":
		return errors.NewConfigError("root_tag must not be empty", nil)
	case naming.SanitizeTag(c.RootTag) != c.RootTag:
		return errors.NewConfigError(
			"root_tag is not a valid XML element name",
			errors.WithHint(errors.Newf("root_tag %q", c.RootTag), "try "+naming.SanitizeTag(c.RootTag)),
		)
	case !naming.ValidStyle(c.Naming.Style):
		return errors.NewConfigError(
			"unknown naming style",
			errors.WithHint(errors.Newf("naming.style %q", c.Naming.Style), "use capitalize or pascal"),
		)
	}
	return nil
}

// compilePatterns compiles all regex patterns in the config
func (c *Config) compilePatterns() error {
	for i := range c.Types.Mappings {
		mapping := &c.Types.Mappings[i]
		regex, err := regexp.Compile(mapping.Pattern)
		if err != nil {
			return errors.Wrapf(err, "invalid type mapping pattern '%s'", mapping.Pattern)
		}
		mapping.regex = regex
	}
	return nil
}

// MatchesField checks if this type mapping matches the given property name
func (tm *TypeMapping) MatchesField(fieldName string) bool {
	if tm.regex == nil {
		regex, err := regexp.Compile(tm.Pattern)
		if err != nil {
			return false
		}
		tm.regex = regex
	}
	return tm.regex.MatchString(fieldName)
}

// FindTypeMapping finds the first type mapping that matches the property name
func (c *Config) FindTypeMapping(fieldName string) (TypeMapping, bool) {
	for i := range c.Types.Mappings {
		if c.Types.Mappings[i].MatchesField(fieldName) {
			return c.Types.Mappings[i], true
		}
	}
	return TypeMapping{}, false
}

// TypeName returns the declaration name for a JSON key, applying custom
// names first and the naming style otherwise.
func (c *Config) TypeName(key string) string {
	if mapped, exists := c.Naming.TypeNames[key]; exists {
		return mapped
	}
	return naming.TypeName(key, c.Naming.Style)
}

// Overrides carries values given on the command line. Empty strings and
// nil pointers leave the loaded value alone.
type Overrides struct {
	RootTag   string
	RootName  string
	Separator string
	Style     string
	MaxDepth  *int
	Color     *bool
	LogLevel  string
	LogJSON   *bool
}

// MergeCLI applies non-empty CLI values on top of cfg and returns the
// result. cfg itself is not modified.
func MergeCLI(cfg *Config, o Overrides) *Config {
	merged := *cfg

	if o.RootTag != "" {
		merged.RootTag = o.RootTag
	}
	if o.RootName != "" {
		merged.RootName = o.RootName
	}
	if o.Separator != "" {
		merged.Separator = o.Separator
	}
	if o.Style != "" {
		merged.Naming.Style = naming.Style(o.Style)
	}
	if o.MaxDepth != nil {
		merged.MaxDepth = *o.MaxDepth
	}
	if o.Color != nil {
		merged.Output.Color = *o.Color
	}
	if o.LogLevel != "" {
		merged.Log.Level = o.LogLevel
	}
	if o.LogJSON != nil {
		merged.Log.JSON = *o.LogJSON
	}

	return &merged
}

// LoadConfigWithCLI loads the config at configPath (or the discovered one
// when configPath is empty), applies the CLI overrides and validates the
// result.
func LoadConfigWithCLI(configPath string, o Overrides) (*Config, error) {
	cfg := NewConfig()

	if configPath == "" {
		configPath = FindConfigFile()
	}
	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	merged := MergeCLI(cfg, o)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}
