package action

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/msto63/consoleargs/foundation/args/command"
	"github.com/msto63/consoleargs/foundation/args/param"
	mdwerror "github.com/msto63/consoleargs/foundation/core/error"
	"github.com/msto63/consoleargs/foundation/core/log"
	"github.com/msto63/consoleargs/foundation/utils/stringx"
)

// Script runs a POSIX shell snippet in an embedded interpreter. Parameters
// are exported as PARAM_<NAME> variables and positional arguments become
// $1..$n.
type Script struct {
	source string
	prog   *syntax.File
	opts   Options
	logger *log.Logger
}

// NewScript parses source once so syntax errors surface while the router is
// being built
func NewScript(source string, opts Options) (*Script, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(source), "script")
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse script").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("action.NewScript")
	}
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	return &Script{
		source: source,
		prog:   prog,
		opts:   opts,
		logger: opts.Logger.WithField("component", "script"),
	}, nil
}

// Handle is a command.Handler. With no Stdout configured the captured output
// is the result; otherwise output is streamed and the result is nil.
func (s *Script) Handle(cmd *command.Command, args []string, params command.Params) (interface{}, error) {
	ctx := s.opts.Context
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	var captured bytes.Buffer
	stdout := s.opts.Stdout
	if stdout == nil {
		stdout = &captured
	}
	var stderr bytes.Buffer
	var errOut io.Writer = &stderr
	if s.opts.Stderr != nil {
		errOut = io.MultiWriter(s.opts.Stderr, &stderr)
	}

	env := append(os.Environ(), Environment(cmd, params)...)

	runnerOpts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(nil, stdout, errOut),
		interp.Params(append([]string{"--"}, args...)...),
	}
	if s.opts.Dir != "" {
		runnerOpts = append(runnerOpts, interp.Dir(s.opts.Dir))
	}

	runner, err := interp.New(runnerOpts...)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to create interpreter").
			WithCode(mdwerror.CodeInternal).
			WithOperation("action.Script.Handle")
	}

	start := time.Now()
	err = runner.Run(ctx, s.prog)
	s.logger.DebugWithDuration("script finished", time.Since(start), log.Field("command", cmd.Name()))

	if err != nil {
		return nil, s.failure(ctx, cmd, err, stderr.String())
	}

	if s.opts.Stdout != nil {
		return nil, nil
	}
	return captured.String(), nil
}

func (s *Script) failure(ctx context.Context, cmd *command.Command, err error, stderr string) error {
	wrapped := mdwerror.Wrap(err, "script failed").
		WithCode(mdwerror.CodeExecutionFailed).
		WithOperation("action.Script.Handle").
		WithDetail("command", cmd.Name())

	if exitStatus, ok := interp.IsExitStatus(err); ok {
		wrapped = wrapped.WithDetail("exit_status", int(exitStatus))
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		wrapped = wrapped.WithDetail("timeout", s.opts.Timeout.String())
	}
	if msg := strings.TrimSpace(stderr); msg != "" {
		wrapped = wrapped.WithDetail("stderr", msg)
	}
	return wrapped
}

// Environment returns the variables a script sees for an invocation.
// Flags are "1" or empty, lists are newline separated and absent values are
// empty.
func Environment(cmd *command.Command, params command.Params) []string {
	env := []string{"CONSOLEARGS_COMMAND=" + cmd.Name()}
	for _, name := range params.Names() {
		env = append(env, VariableName(name)+"="+envValue(params.Get(name)))
	}
	return env
}

// VariableName maps a parameter name to its PARAM_ variable, e.g.
// "--dry-run" becomes PARAM_DRY_RUN
func VariableName(name string) string {
	return "PARAM_" + stringx.ToEnvName(strings.TrimLeft(name, "-"))
}

func envValue(r param.Result) string {
	switch r.Kind() {
	case param.KindFlag:
		if r.Bool() {
			return "1"
		}
		return ""
	case param.KindList:
		return strings.Join(r.Values(), "\n")
	default:
		v, _ := r.Value()
		return v
	}
}
