// Package action binds the actions named in a definition file to command
// handlers and builds the router for a configuration.
package action

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/msto63/consoleargs/foundation/args"
	"github.com/msto63/consoleargs/foundation/args/command"
	"github.com/msto63/consoleargs/foundation/args/help"
	"github.com/msto63/consoleargs/foundation/args/router"
	mdwerror "github.com/msto63/consoleargs/foundation/core/error"
	"github.com/msto63/consoleargs/foundation/core/i18n"
	"github.com/msto63/consoleargs/foundation/core/log"
	"github.com/msto63/consoleargs/internal/config"
)

// Options configures a Resolver
type Options struct {
	// Stdout and Stderr receive script output. When Stdout is nil the
	// output is captured and returned as the command result.
	Stdout io.Writer
	Stderr io.Writer
	// Dir is the working directory for scripts; empty means the current one
	Dir     string
	Timeout time.Duration
	Context context.Context
	Logger  *log.Logger
}

// Resolver turns command definitions into handlers
type Resolver struct {
	opts   Options
	logger *log.Logger

	mu      sync.RWMutex
	manager *router.Manager
}

// NewResolver creates a resolver
func NewResolver(opts Options) *Resolver {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	return &Resolver{
		opts:   opts,
		logger: opts.Logger.WithField("component", "action"),
	}
}

// Handler returns the handler for def's action
func (r *Resolver) Handler(def config.CommandDef) (command.Handler, error) {
	switch def.Action {
	case config.ActionEcho, "":
		return Echo, nil
	case config.ActionScript:
		s, err := NewScript(def.Script, r.opts)
		if err != nil {
			return nil, err
		}
		return s.Handle, nil
	case config.ActionHelp:
		return r.help, nil
	default:
		return nil, mdwerror.New("unknown action").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("action.Handler").
			WithDetail("action", def.Action).
			WithDetail("command", def.Name)
	}
}

// Build creates the router for cfg
func (r *Resolver) Build(cfg *config.Config, locale *i18n.Locale) (*router.Manager, error) {
	builder := args.NewBuilder(args.Options{
		Logger: r.opts.Logger,
		Locale: locale,
		Help:   cfg.Settings.HelpEnabled(),
	})

	for _, def := range cfg.Commands {
		cd, err := r.definition(def)
		if err != nil {
			return nil, err
		}
		builder.Add(cd)
	}

	if cfg.Default != nil {
		cd, err := r.definition(*cfg.Default)
		if err != nil {
			return nil, err
		}
		builder.Default(cd)
	}

	m, err := builder.Build()
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.manager = m
	r.mu.Unlock()

	r.logger.Debug("actions bound", log.Fields{"commandCount": len(cfg.Commands)})

	return m, nil
}

func (r *Resolver) definition(def config.CommandDef) (args.CommandDef, error) {
	handler, err := r.Handler(def)
	if err != nil {
		return args.CommandDef{}, err
	}

	out := args.CommandDef{
		Name:        def.Name,
		Description: def.Description,
		Aliases:     def.Aliases,
		Handler:     handler,
	}
	for _, p := range def.Params {
		out.Params = append(out.Params, args.ParamDef{
			Name:        p.Name,
			Aliases:     p.Aliases,
			Flag:        p.Kind == config.KindFlag,
			Default:     p.Default,
			Required:    p.Required,
			Description: p.Description,
		})
	}
	return out, nil
}

// help lists the commands of the router built by Build, leaving out the
// command it is bound to
func (r *Resolver) help(cmd *command.Command, positional []string, _ command.Params) (interface{}, error) {
	r.mu.RLock()
	m := r.manager
	r.mu.RUnlock()

	if m == nil {
		return "", nil
	}
	return help.Text(m, help.Options{Only: positional, Exclude: cmd}), nil
}
