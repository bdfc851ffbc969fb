package action

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/msto63/consoleargs/foundation/args/command"
	"github.com/msto63/consoleargs/foundation/args/param"
	mdwerror "github.com/msto63/consoleargs/foundation/core/error"
	"github.com/msto63/consoleargs/internal/config"
)

func strPtr(s string) *string { return &s }

func TestVariableName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"--target", "PARAM_TARGET"},
		{"-t", "PARAM_T"},
		{"--dry-run", "PARAM_DRY_RUN"},
		{"name", "PARAM_NAME"},
		{"--a.b", "PARAM_A_B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VariableName(tt.name); got != tt.want {
				t.Errorf("VariableName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestEnvironment(t *testing.T) {
	cmd := command.New("deploy", nil)
	params := command.Params{
		"--env":     param.ScalarResult("prod"),
		"--force":   param.BoolResult(true),
		"--quiet":   param.BoolResult(false),
		"--host":    param.ListResult([]string{"a", "b"}),
		"--comment": param.Absent(),
	}

	got := strings.Join(Environment(cmd, params), ";")
	want := "CONSOLEARGS_COMMAND=deploy;PARAM_COMMENT=;PARAM_ENV=prod;PARAM_FORCE=1;PARAM_HOST=a\nb;PARAM_QUIET="
	if got != want {
		t.Errorf("Environment() = %q, want %q", got, want)
	}
}

func TestEcho(t *testing.T) {
	cmd := command.New("build", nil)
	params := command.Params{
		"--target":  param.ScalarResult("all"),
		"--verbose": param.BoolResult(true),
		"--tag":     param.ListResult([]string{"x", "y"}),
		"--out":     param.Absent(),
	}

	got, err := Echo(cmd, []string{"src", "a b"}, params)
	if err != nil {
		t.Fatalf("Echo() error = %v", err)
	}

	want := "command: build\n" +
		"args: [\"src\" \"a b\"]\n" +
		"params:\n" +
		"  --out = <absent>\n" +
		"  --tag = [\"x\" \"y\"]\n" +
		"  --target = \"all\"\n" +
		"  --verbose = true\n"
	if got != want {
		t.Errorf("Echo() = %q, want %q", got, want)
	}
}

func TestEcho_Default(t *testing.T) {
	got, _ := Echo(command.NewDefault(nil), nil, command.Params{})
	if want := "command: (default)\nargs: []\n"; got != want {
		t.Errorf("Echo() = %q, want %q", got, want)
	}
}

func TestScript_Capture(t *testing.T) {
	s, err := NewScript(`echo "$PARAM_TARGET $1 $#"`, Options{})
	if err != nil {
		t.Fatalf("NewScript() error = %v", err)
	}

	cmd := command.New("build", nil)
	got, err := s.Handle(cmd, []string{"first", "second"}, command.Params{"--target": param.ScalarResult("all")})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if got != "all first 2\n" {
		t.Errorf("Handle() = %q, want %q", got, "all first 2\n")
	}
}

func TestScript_Stream(t *testing.T) {
	var out bytes.Buffer
	s, err := NewScript(`echo streamed`, Options{Stdout: &out})
	if err != nil {
		t.Fatalf("NewScript() error = %v", err)
	}

	got, err := s.Handle(command.New("x", nil), nil, command.Params{})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if got != nil {
		t.Errorf("Handle() = %v, want nil", got)
	}
	if out.String() != "streamed\n" {
		t.Errorf("stdout = %q, want %q", out.String(), "streamed\n")
	}
}

func TestScript_ExitStatus(t *testing.T) {
	s, err := NewScript("echo broken >&2\nexit 3", Options{})
	if err != nil {
		t.Fatalf("NewScript() error = %v", err)
	}

	_, err = s.Handle(command.New("fail", nil), nil, command.Params{})
	if !mdwerror.HasCode(err, mdwerror.CodeExecutionFailed) {
		t.Fatalf("Handle() error = %v, want code %s", err, mdwerror.CodeExecutionFailed)
	}

	details := err.(*mdwerror.Error).Details()
	if details["exit_status"] != 3 {
		t.Errorf("exit_status = %v, want 3", details["exit_status"])
	}
	if details["stderr"] != "broken" {
		t.Errorf("stderr = %v, want broken", details["stderr"])
	}
}

func TestScript_Timeout(t *testing.T) {
	s, err := NewScript("while true; do :; done", Options{Timeout: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("NewScript() error = %v", err)
	}

	_, err = s.Handle(command.New("loop", nil), nil, command.Params{})
	if !mdwerror.HasCode(err, mdwerror.CodeExecutionFailed) {
		t.Fatalf("Handle() error = %v, want code %s", err, mdwerror.CodeExecutionFailed)
	}
	if _, ok := err.(*mdwerror.Error).Details()["timeout"]; !ok {
		t.Error("Handle() error has no timeout detail")
	}
}

func TestNewScript_SyntaxError(t *testing.T) {
	_, err := NewScript("if then fi (", Options{})
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("NewScript() error = %v, want code %s", err, mdwerror.CodeInvalidConfig)
	}
}

func TestResolver_Handler_UnknownAction(t *testing.T) {
	r := NewResolver(Options{})
	_, err := r.Handler(config.CommandDef{Name: "x", Action: "teleport"})
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("Handler() error = %v, want code %s", err, mdwerror.CodeInvalidConfig)
	}
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Commands = []config.CommandDef{
		{
			Name:    "build",
			Aliases: []string{"b"},
			Action:  config.ActionEcho,
			Params: []config.ParamDef{
				{Name: "--target", Aliases: []string{"-t"}, Kind: config.KindValue, Default: strPtr("all")},
				{Name: "--verbose", Kind: config.KindFlag},
			},
		},
		{
			Name:   "greet",
			Action: config.ActionScript,
			Script: `echo "hello ${PARAM_NAME:-world}"`,
			Params: []config.ParamDef{{Name: "--name", Kind: config.KindValue}},
		},
		{Name: "commands", Description: "List commands", Action: config.ActionHelp},
	}
	cfg.Default = &config.CommandDef{Action: config.ActionEcho}
	return cfg
}

func TestResolver_Build(t *testing.T) {
	r := NewResolver(Options{})
	m, err := r.Build(testConfig(), nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	tests := []struct {
		name string
		line string
		want string
	}{
		{"echo by alias", "b -t web --verbose", "command: build\nargs: []\nparams:\n  --target = \"web\"\n  --verbose = true\n"},
		{"echo default value", "build src", "command: build\nargs: [\"src\"]\nparams:\n  --target = \"all\"\n  --verbose = false\n"},
		{"script with param", "greet --name bob", "hello bob\n"},
		{"script without param", "greet", "hello world\n"},
		{"default command", "whatever x", "command: (default)\nargs: [\"whatever\" \"x\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.ExecuteLine(tt.line)
			if err != nil {
				t.Fatalf("ExecuteLine(%q) error = %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ExecuteLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestResolver_Build_HelpAction(t *testing.T) {
	r := NewResolver(Options{})
	m, err := r.Build(testConfig(), nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	got, err := m.ExecuteLine("commands")
	if err != nil {
		t.Fatalf("ExecuteLine() error = %v", err)
	}
	text := got.(string)
	if !strings.Contains(text, "build (b)") || !strings.Contains(text, "greet") {
		t.Errorf("help output missing commands: %q", text)
	}
	if strings.Contains(text, "List commands") {
		t.Errorf("help output lists itself: %q", text)
	}

	only, _ := m.ExecuteLine("commands greet")
	if strings.Contains(only.(string), "build") {
		t.Errorf("filtered help output = %q, want only greet", only)
	}
}

func TestResolver_Build_BadScript(t *testing.T) {
	cfg := config.Default()
	cfg.Commands = []config.CommandDef{{Name: "bad", Action: config.ActionScript, Script: "(("}}

	_, err := NewResolver(Options{}).Build(cfg, nil)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("Build() error = %v, want code %s", err, mdwerror.CodeInvalidConfig)
	}
}
