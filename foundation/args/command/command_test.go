// File: command_test.go
// Title: Command Tests
// Description: Tests for parameter registration, declaration-order parsing
//              and handler invocation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-04
// Modified: 2025-08-04
//
// Change History:
// - 2025-08-04 v0.1.0: Initial test suite

package command

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/msto63/consoleargs/foundation/args/param"
	mdwerror "github.com/msto63/consoleargs/foundation/core/error"
	"github.com/msto63/consoleargs/foundation/core/log"
)

type call struct {
	cmd    *Command
	args   []string
	params Params
}

func recorder(calls *[]call) Handler {
	return func(cmd *Command, args []string, params Params) (interface{}, error) {
		*calls = append(*calls, call{cmd, args, params})
		return len(args), nil
	}
}

func TestExecute(t *testing.T) {
	var calls []call
	cmd := New("build", recorder(&calls))

	target := param.NewValue("--target", param.WithDefault("all"))
	if err := target.AddAlias("-t"); err != nil {
		t.Fatalf("AddAlias() error = %v", err)
	}
	if err := cmd.AddParams(target, param.NewFlag("--verbose"), param.NewValue("--tag")); err != nil {
		t.Fatalf("AddParams() error = %v", err)
	}

	tokens := []string{"src", "-t", "linux", "--verbose", "--tag", "a", "--tag", "b", "out"}
	snapshot := append([]string(nil), tokens...)

	result, err := cmd.Execute(tokens)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result != 2 {
		t.Errorf("Execute() = %v, want the handler's result 2", result)
	}
	if !reflect.DeepEqual(tokens, snapshot) {
		t.Errorf("Execute() modified its input: %q", tokens)
	}

	if len(calls) != 1 {
		t.Fatalf("handler called %d times, want 1", len(calls))
	}
	got := calls[0]
	if got.cmd != cmd {
		t.Error("handler should receive the command itself")
	}
	if !reflect.DeepEqual(got.args, []string{"src", "out"}) {
		t.Errorf("positional args = %q, want [src out]", got.args)
	}

	want := map[string]interface{}{
		"--target":  "linux",
		"--verbose": true,
		"--tag":     []string{"a", "b"},
	}
	if !reflect.DeepEqual(got.params.Interface(), want) {
		t.Errorf("params = %#v, want %#v", got.params.Interface(), want)
	}
}

func TestExecute_ParamsArePreSeeded(t *testing.T) {
	var calls []call
	cmd := New("list", recorder(&calls))
	if err := cmd.AddParams(param.NewValue("--filter"), param.NewFlag("--all")); err != nil {
		t.Fatalf("AddParams() error = %v", err)
	}

	if _, err := cmd.Execute(nil); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	params := calls[0].params
	if got := params.Names(); !reflect.DeepEqual(got, []string{"--all", "--filter"}) {
		t.Errorf("Names() = %q", got)
	}
	if !params.Get("--filter").IsAbsent() {
		t.Errorf("--filter = %v, want absent", params.Get("--filter"))
	}
	if params.Bool("--all") {
		t.Error("--all should be false")
	}
}

func TestExecute_DeclarationOrderSharesTokens(t *testing.T) {
	cmd := New("run", func(*Command, []string, Params) (interface{}, error) { return nil, nil })
	// the flag is parsed first and takes "-v" away from the value parameter
	if err := cmd.AddParams(param.NewFlag("-v"), param.NewValue("-p")); err != nil {
		t.Fatalf("AddParams() error = %v", err)
	}

	_, err := cmd.Execute([]string{"-p", "-v"})
	if !mdwerror.HasCode(err, mdwerror.CodeMissingValue) {
		t.Fatalf("Execute() error = %v, want MISSING_VALUE", err)
	}

	var coded *mdwerror.Error
	if !errors.As(err, &coded) || coded.Details()["command"] != "run" {
		t.Errorf("error should carry the command name, details = %v", coded.Details())
	}
}

func TestExecute_Errors(t *testing.T) {
	handlerErr := errors.New("handler failed")

	tests := []struct {
		name  string
		setup func() *Command
		check func(error) bool
	}{
		{
			name: "no handler is checked before parsing",
			setup: func() *Command {
				cmd := New("x", nil)
				_ = cmd.AddParams(param.NewValue("--need", param.AsRequired()))
				return cmd
			},
			check: func(err error) bool { return mdwerror.HasCode(err, mdwerror.CodeNotExecutable) },
		},
		{
			name: "required parameter missing",
			setup: func() *Command {
				cmd := New("x", func(*Command, []string, Params) (interface{}, error) { return nil, nil })
				_ = cmd.AddParams(param.NewValue("--need", param.AsRequired()))
				return cmd
			},
			check: func(err error) bool { return mdwerror.HasCode(err, mdwerror.CodeUndefinedParam) },
		},
		{
			name: "handler error is returned unchanged",
			setup: func() *Command {
				return New("x", func(*Command, []string, Params) (interface{}, error) { return nil, handlerErr })
			},
			check: func(err error) bool { return err == handlerErr },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.setup().Execute(nil)
			if !tt.check(err) {
				t.Errorf("Execute() error = %v", err)
			}
		})
	}
}

func TestAddParams(t *testing.T) {
	cmd := New("x", nil)
	first := param.NewValue("--a")
	if err := cmd.AddParams(first, param.NewFlag("--b")); err != nil {
		t.Fatalf("AddParams() error = %v", err)
	}

	replacement := param.NewValue("--a", param.AsRequired())
	if err := cmd.AddParams(replacement); err != nil {
		t.Fatalf("AddParams() error = %v", err)
	}

	specs := cmd.Specs()
	if len(specs) != 2 || specs[0] != param.Spec(replacement) {
		t.Errorf("replacement should keep the original position, got %v", specs)
	}
	if spec, ok := cmd.Spec("--a"); !ok || spec != param.Spec(replacement) {
		t.Error("Spec() should return the replacement")
	}

	var typedNil *param.Flag
	for _, bad := range []param.Spec{nil, typedNil} {
		if err := cmd.AddParams(param.NewFlag("--c"), bad); !mdwerror.HasCode(err, mdwerror.CodeInvalidParamType) {
			t.Errorf("AddParams(%v) error = %v, want INVALID_PARAM_TYPE", bad, err)
		}
	}
	if _, ok := cmd.Spec("--c"); ok {
		t.Error("a rejected call should register nothing")
	}
}

func TestAddAlias(t *testing.T) {
	cmd := New("build", nil).SetDescription("Build a target")

	if err := cmd.AddAlias("b"); err != nil {
		t.Fatalf("AddAlias() error = %v", err)
	}
	if err := cmd.AddAlias("b"); !mdwerror.HasCode(err, mdwerror.CodeDuplicateAlias) {
		t.Errorf("AddAlias() error = %v, want DUPLICATE_ALIAS", err)
	}
	if !cmd.HasAlias("b") || cmd.HasAlias("build") {
		t.Error("HasAlias() mismatch")
	}
	if cmd.Description() != "Build a target" {
		t.Errorf("Description() = %q", cmd.Description())
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{Level: log.LevelTrace, Format: log.FormatText, Output: &buf})

	cmd := New("build", func(*Command, []string, Params) (interface{}, error) { return nil, nil }).SetLogger(logger)
	_ = cmd.AddParams(param.NewFlag("-v"))

	if _, err := cmd.Execute([]string{"-v"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"parameter parsed", "executing command", "component=command"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
