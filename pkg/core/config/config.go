package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwconfig "github.com/msto63/strview/foundation/core/config"
	mdwerror "github.com/msto63/strview/foundation/core/error"
	mdwerrors "github.com/msto63/strview/foundation/core/errors"
	"github.com/msto63/strview/foundation/core/i18n"
	mdwlog "github.com/msto63/strview/foundation/core/log"
	"github.com/msto63/strview/foundation/core/validation"
)

// AppName is the base name of configuration files and the environment prefix
const AppName = "strview"

// EnvConfigPath names the variable that points at a configuration file
const EnvConfigPath = "STRVIEW_CONFIG"

// Supported character widths
const (
	Width8    = "8"
	Width16   = "16"
	Width32   = "32"
	WidthWide = "wide"
)

// DefaultMaxInput bounds input read from files or stdin
const DefaultMaxInput = 16 << 20

// Supported output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// DefaultLanguage is the locale of text output. LanguageAuto picks the
// locale from LC_ALL, LC_MESSAGES or LANG.
const (
	DefaultLanguage = "de"
	LanguageAuto    = "auto"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Query   QueryConfig   `toml:"query" yaml:"query"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// QueryConfig holds settings of the query engine
type QueryConfig struct {
	Width         string   `toml:"width" yaml:"width"`
	MaxResults    int      `toml:"max_results" yaml:"max_results"`
	SlowThreshold Duration `toml:"slow_threshold" yaml:"slow_threshold"`
	TrimSet       string   `toml:"trim_set" yaml:"trim_set"`
	MaxInput      int64    `toml:"max_input" yaml:"max_input"`
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	Format    string `toml:"format" yaml:"format"`
	Color     bool   `toml:"color" yaml:"color"`
	Highlight string `toml:"highlight" yaml:"highlight"`
	Language  string `toml:"language" yaml:"language"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{Output: OutputConfig{Color: true}}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", path)).
				WithCode(mdwerror.CodeNotFound).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg := Config{Output: OutputConfig{Color: true}}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &cfg)
	default:
		_, err = toml.Decode(string(content), &cfg)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by STRVIEW_CONFIG, else the first
// strview.{toml,yaml,yml} found in ., ./configs or the user config
// directory, else the defaults. Environment overrides apply in every case.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	path, err := mdwconfig.FindConfigFile(mdwconfig.DefaultDiscoveryOptions(AppName))
	if err == nil {
		return Load(path)
	}

	cfg := Default()
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = AppName
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	if c.Query.Width == "" {
		c.Query.Width = Width8
	}
	if c.Query.MaxResults == 0 {
		c.Query.MaxResults = 1000
	}
	if c.Query.SlowThreshold.Duration == 0 {
		c.Query.SlowThreshold.Duration = 250 * time.Millisecond
	}
	if c.Query.TrimSet == "" {
		c.Query.TrimSet = " \t\r\n"
	}
	if c.Query.MaxInput == 0 {
		c.Query.MaxInput = DefaultMaxInput
	}

	if c.Output.Format == "" {
		c.Output.Format = OutputText
	}
	if c.Output.Highlight == "" {
		c.Output.Highlight = "205"
	}
	if c.Output.Language == "" {
		c.Output.Language = DefaultLanguage
	}
}

// applyEnvOverrides lets STRVIEW_SECTION_KEY variables replace file values
func (c *Config) applyEnvOverrides() {
	env := mdwconfig.New(AppName, nil)

	c.General.LogLevel = env.GetString("general.log_level", c.General.LogLevel)
	c.General.LogFormat = env.GetString("general.log_format", c.General.LogFormat)
	c.Query.Width = env.GetString("query.width", c.Query.Width)
	c.Query.MaxResults = env.GetInt("query.max_results", c.Query.MaxResults)
	c.Query.MaxInput = int64(env.GetInt("query.max_input", int(c.Query.MaxInput)))
	c.Output.Format = env.GetString("output.format", c.Output.Format)
	c.Output.Color = env.GetBool("output.color", c.Output.Color)
	c.Output.Highlight = env.GetString("output.highlight", c.Output.Highlight)
	c.Output.Language = env.GetString("output.language", c.Output.Language)
}

// Validate checks enumerated settings and limits. The error carries the
// code of the first violated rule.
func (c *Config) Validate() error {
	return validator.Validate(c).ToError(mdwerrors.ModuleConfig, "validate")
}

var validator = validation.NewValidatorChain[*Config]("config").
	StopOnFirstError(true).
	AddFunc(func(c *Config) validation.ValidationResult {
		_, err := mdwlog.ParseLevel(c.General.LogLevel)
		return validation.Check(mdwerrors.CodeInvalidInput, "general.log_level", c.General.LogLevel, err)
	}).
	AddFunc(func(c *Config) validation.ValidationResult {
		_, err := mdwlog.ParseFormat(c.General.LogFormat)
		return validation.Check(mdwerrors.CodeInvalidInput, "general.log_format", c.General.LogFormat, err)
	}).
	AddFunc(func(c *Config) validation.ValidationResult {
		r := validation.OneOf("query.width", c.Query.Width, Width8, Width16, Width32, WidthWide)
		for i := range r.Errors {
			r.Errors[i].Code = mdwerrors.CodeQueryInvalidWidth
		}
		return r
	}).
	AddFunc(func(c *Config) validation.ValidationResult {
		return validation.Combine(
			validation.NonNegative("query.max_results", c.Query.MaxResults),
			validation.NonNegative("query.max_input", c.Query.MaxInput),
		)
	}).
	AddFunc(func(c *Config) validation.ValidationResult {
		return validation.OneOf("output.format", c.Output.Format, OutputText, OutputJSON)
	}).
	AddFunc(func(c *Config) validation.ValidationResult {
		if c.Output.Language == LanguageAuto {
			return validation.NewValidationResult()
		}
		err := i18n.ValidateLocale(c.Output.Language)
		return validation.Check(mdwerrors.CodeInvalidInput, "output.language", c.Output.Language, err)
	})
