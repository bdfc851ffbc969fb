package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/consoleargs/foundation/core/error"
)

const tomlConfig = `
[settings]
locale = "de"
history = "$CA_TEST_DIR/history.db"
script_timeout = "5s"
help = false

[default]
action = "echo"

[[commands]]
name = "build"
description = "Build a target"
aliases = ["b"]
script = 'echo "building $PARAM_TARGET"'

  [[commands.params]]
  name = "--target"
  aliases = ["-t"]
  default = "all"
  description = "Target to build"

  [[commands.params]]
  name = "--verbose"
  kind = "flag"
`

const yamlConfig = `
settings:
  log_level: debug
  script_timeout: 1m
commands:
  - name: greet
    params:
      - name: --name
        required: true
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestLoad_TOML(t *testing.T) {
	t.Setenv("CA_TEST_DIR", "/tmp/ca")
	cfg, err := Load(writeFile(t, "consoleargs.toml", tomlConfig))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Settings.Locale != "de" {
		t.Errorf("Locale = %q, want de", cfg.Settings.Locale)
	}
	if cfg.Settings.History != "/tmp/ca/history.db" {
		t.Errorf("History = %q, want expanded path", cfg.Settings.History)
	}
	if cfg.Settings.ScriptTimeout.Duration != 5*time.Second {
		t.Errorf("ScriptTimeout = %v", cfg.Settings.ScriptTimeout.Duration)
	}
	if cfg.Settings.HelpEnabled() {
		t.Error("HelpEnabled() = true, want false")
	}
	if cfg.Settings.LogLevel != "warn" || cfg.Settings.LogFormat != "text" {
		t.Errorf("defaults not applied: %+v", cfg.Settings)
	}

	if cfg.Default == nil || cfg.Default.Action != ActionEcho {
		t.Errorf("Default = %+v", cfg.Default)
	}
	if len(cfg.Commands) != 1 {
		t.Fatalf("Commands = %d, want 1", len(cfg.Commands))
	}

	build := cfg.Commands[0]
	if build.Action != ActionScript {
		t.Errorf("Action = %q, want script inferred from the script field", build.Action)
	}
	if len(build.Params) != 2 || build.Params[0].Kind != KindValue || build.Params[1].Kind != KindFlag {
		t.Errorf("Params = %+v", build.Params)
	}
	if build.Params[0].Default == nil || *build.Params[0].Default != "all" {
		t.Errorf("Default = %v, want all", build.Params[0].Default)
	}
}

func TestLoad_YAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "consoleargs.yaml", yamlConfig))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Settings.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.Settings.LogLevel)
	}
	if cfg.Settings.ScriptTimeout.Duration != time.Minute {
		t.Errorf("ScriptTimeout = %v", cfg.Settings.ScriptTimeout.Duration)
	}
	if !cfg.Settings.HelpEnabled() {
		t.Error("HelpEnabled() should default to true")
	}
	if p := cfg.Commands[0].Params[0]; !p.Required || p.Kind != KindValue {
		t.Errorf("param = %+v", p)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    mdwerror.Code
	}{
		{"bad toml", "a.toml", "[settings", mdwerror.CodeConfigError},
		{"unknown extension", "a.json", "{}", mdwerror.CodeConfigError},
		{"empty command name", "a.toml", "[[commands]]\nname = \"\"", mdwerror.CodeInvalidConfig},
		{"space in name", "a.toml", "[[commands]]\nname = \"a b\"", mdwerror.CodeInvalidConfig},
		{"unknown action", "a.toml", "[[commands]]\nname = \"a\"\naction = \"deploy\"", mdwerror.CodeInvalidConfig},
		{"script without body", "a.toml", "[[commands]]\nname = \"a\"\naction = \"script\"", mdwerror.CodeInvalidConfig},
		{"required flag", "a.yaml", "commands:\n  - name: a\n    params:\n      - name: -x\n        kind: flag\n        required: true\n", mdwerror.CodeInvalidConfig},
		{"unknown kind", "a.yaml", "commands:\n  - name: a\n    params:\n      - name: -x\n        kind: list\n", mdwerror.CodeInvalidConfig},
		{"misspelled log level", "a.toml", "[settings]\nlog_level = \"debgu\"", mdwerror.CodeInvalidConfig},
		{"unknown log format", "a.yaml", "settings:\n  log_format: xml\n", mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("Load() error = %v, want %v", err, tt.code)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Load(missing) error = %v, want NOT_FOUND", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "custom.toml", tomlConfig)
	t.Setenv("CONSOLEARGS_CONFIG", path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Settings.Locale != "de" {
		t.Errorf("LoadFromEnv() did not use CONSOLEARGS_CONFIG")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Settings.Locale != "en" || cfg.Settings.ScriptTimeout.Duration != 30*time.Second || len(cfg.Commands) != 0 {
		t.Errorf("Default() = %+v", cfg)
	}
}
