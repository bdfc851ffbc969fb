package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/consoleargs/foundation/core/error"
	"github.com/msto63/consoleargs/foundation/core/log"
	"github.com/msto63/consoleargs/foundation/utils/stringx"
)

// Action names understood by the definition file
const (
	ActionEcho   = "echo"
	ActionScript = "script"
	ActionHelp   = "help"
)

// Parameter kinds
const (
	KindValue = "value"
	KindFlag  = "flag"
)

// Config holds the application settings and the declared commands
type Config struct {
	Settings Settings     `toml:"settings" yaml:"settings"`
	Default  *CommandDef  `toml:"default" yaml:"default"`
	Commands []CommandDef `toml:"commands" yaml:"commands"`
}

// Settings holds general application settings
type Settings struct {
	Locale        string   `toml:"locale" yaml:"locale"`
	LocalesDir    string   `toml:"locales_dir" yaml:"locales_dir"`
	LogLevel      string   `toml:"log_level" yaml:"log_level"`
	LogFormat     string   `toml:"log_format" yaml:"log_format"`
	History       string   `toml:"history" yaml:"history"`
	ScriptTimeout Duration `toml:"script_timeout" yaml:"script_timeout"`
	Help          *bool    `toml:"help" yaml:"help"`
}

// HelpEnabled reports whether the built-in help command is registered
func (s Settings) HelpEnabled() bool {
	return s.Help == nil || *s.Help
}

// CommandDef declares one command. The default command ignores Name and
// Aliases.
type CommandDef struct {
	Name        string     `toml:"name" yaml:"name"`
	Description string     `toml:"description" yaml:"description"`
	Aliases     []string   `toml:"aliases" yaml:"aliases"`
	Action      string     `toml:"action" yaml:"action"`
	Script      string     `toml:"script" yaml:"script"`
	Params      []ParamDef `toml:"params" yaml:"params"`
}

// ParamDef declares one parameter of a command
type ParamDef struct {
	Name        string   `toml:"name" yaml:"name"`
	Aliases     []string `toml:"aliases" yaml:"aliases"`
	Kind        string   `toml:"kind" yaml:"kind"`
	Default     *string  `toml:"default" yaml:"default"`
	Required    bool     `toml:"required" yaml:"required"`
	Description string   `toml:"description" yaml:"description"`
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

// MarshalText formats the duration
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.expandEnvVars()
	return cfg
}

// Load reads a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); err != nil {
		return nil, mdwerror.Wrap(err, "config file not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, parseError(err, path)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, parseError(err, path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, parseError(err, path)
		}
	default:
		return nil, mdwerror.New("unsupported config format").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func parseError(err error, path string) error {
	return mdwerror.Wrap(err, "failed to parse config").
		WithCode(mdwerror.CodeConfigError).
		WithOperation("config.Load").
		WithDetail("path", path)
}

// SearchPaths lists where LoadFromEnv looks when CONSOLEARGS_CONFIG is unset
func SearchPaths() []string {
	return []string{
		"./consoleargs.toml",
		"./consoleargs.yaml",
		filepath.Join(os.Getenv("HOME"), ".config/consoleargs/config.toml"),
	}
}

// LoadFromEnv loads the file named by CONSOLEARGS_CONFIG or the first
// existing file of SearchPaths. Without any file it returns Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv("CONSOLEARGS_CONFIG"); path != "" {
		return Load(path)
	}

	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

func (c *Config) applyDefaults() {
	c.Settings.Locale = stringx.FirstNonBlank(c.Settings.Locale, "en")
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = "warn"
	}
	if c.Settings.LogFormat == "" {
		c.Settings.LogFormat = "text"
	}
	if c.Settings.ScriptTimeout.Duration == 0 {
		c.Settings.ScriptTimeout.Duration = 30 * time.Second
	}

	if c.Default != nil {
		c.Default.applyDefaults()
	}
	for i := range c.Commands {
		c.Commands[i].applyDefaults()
	}
}

func (d *CommandDef) applyDefaults() {
	if d.Action == "" {
		d.Action = ActionEcho
		if d.Script != "" {
			d.Action = ActionScript
		}
	}
	for i := range d.Params {
		if d.Params[i].Kind == "" {
			d.Params[i].Kind = KindValue
		}
	}
}

func (c *Config) expandEnvVars() {
	c.Settings.History = os.ExpandEnv(c.Settings.History)
	c.Settings.LocalesDir = os.ExpandEnv(c.Settings.LocalesDir)
}

// Validate reports the first definition error as INVALID_CONFIG
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Settings.LogLevel); err != nil {
		return invalid("unknown log level "+c.Settings.LogLevel, "settings", -1)
	}
	if _, err := log.ParseFormat(c.Settings.LogFormat); err != nil {
		return invalid("unknown log format "+c.Settings.LogFormat, "settings", -1)
	}

	if c.Default != nil {
		if err := c.Default.validate("default"); err != nil {
			return err
		}
	}

	for i := range c.Commands {
		def := &c.Commands[i]
		if stringx.IsBlank(def.Name) {
			return invalid("command name cannot be empty", "commands", i)
		}
		if stringx.ContainsSpace(def.Name) {
			return invalid("command name cannot contain spaces", def.Name, i)
		}
		if err := def.validate(def.Name); err != nil {
			return err
		}
	}

	return nil
}

func (d *CommandDef) validate(where string) error {
	switch d.Action {
	case ActionEcho, ActionHelp:
	case ActionScript:
		if stringx.IsBlank(d.Script) {
			return invalid("script action needs a script", where, -1)
		}
	default:
		return invalid("unknown action "+d.Action, where, -1)
	}

	for i, p := range d.Params {
		if stringx.IsBlank(p.Name) {
			return invalid("parameter name cannot be empty", where, i)
		}
		switch p.Kind {
		case KindValue:
		case KindFlag:
			if p.Default != nil || p.Required {
				return invalid("flag "+p.Name+" cannot have a default or be required", where, i)
			}
		default:
			return invalid("unknown parameter kind "+p.Kind, where, i)
		}
	}

	return nil
}

func invalid(message, where string, index int) error {
	err := mdwerror.New(message).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("section", where)
	if index >= 0 {
		err.WithDetail("index", index)
	}
	return err
}
