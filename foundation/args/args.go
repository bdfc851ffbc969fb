// File: args.go
// Title: Argument Router Facade
// Description: Builds a router from plain command definitions so callers
//              do not have to assemble parameters, commands and the manager
//              by hand. Locale and logger are injected into every part.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-04
// Modified: 2025-08-04
//
// Change History:
// - 2025-08-04 v0.1.0: Initial implementation

package args

import (
	"github.com/msto63/consoleargs/foundation/args/command"
	"github.com/msto63/consoleargs/foundation/args/help"
	"github.com/msto63/consoleargs/foundation/args/param"
	"github.com/msto63/consoleargs/foundation/args/router"
	mdwerror "github.com/msto63/consoleargs/foundation/core/error"
	"github.com/msto63/consoleargs/foundation/core/i18n"
	"github.com/msto63/consoleargs/foundation/core/log"
)

// ParamDef declares a parameter
type ParamDef struct {
	Name        string
	Aliases     []string
	Flag        bool
	Default     *string
	Required    bool
	Description string
}

// CommandDef declares a command and its handler
type CommandDef struct {
	Name        string
	Description string
	Aliases     []string
	Params      []ParamDef
	Handler     command.Handler
}

// Options configures a Builder
type Options struct {
	Logger *log.Logger
	Locale *i18n.Locale
	// Help registers the built-in help command after all other commands
	Help bool
}

// Builder collects definitions and builds a router.Manager
type Builder struct {
	options  Options
	logger   *log.Logger
	commands []CommandDef
	fallback *CommandDef
}

// NewBuilder creates a builder
func NewBuilder(opts Options) *Builder {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	if opts.Locale == nil {
		opts.Locale = i18n.Default()
	}

	return &Builder{
		options: opts,
		logger:  opts.Logger.WithField("component", "builder"),
	}
}

// Add appends command definitions in registration order
func (b *Builder) Add(defs ...CommandDef) *Builder {
	b.commands = append(b.commands, defs...)
	return b
}

// Default sets the fallback command definition. Its name and aliases are
// ignored.
func (b *Builder) Default(def CommandDef) *Builder {
	b.fallback = &def
	return b
}

// Build creates the manager. A definition error aborts the build and names
// the offending command.
func (b *Builder) Build() (*router.Manager, error) {
	m, err := router.New(router.Options{Logger: b.options.Logger, Locale: b.options.Locale})
	if err != nil {
		return nil, err
	}

	for _, def := range b.commands {
		cmd, err := b.command(def.Name, def)
		if err != nil {
			return nil, err
		}
		if err := m.AddCommand(cmd); err != nil {
			return nil, err
		}
	}

	if b.fallback != nil {
		def := *b.fallback
		def.Aliases = nil
		cmd, err := b.command("", def)
		if err != nil {
			return nil, err
		}
		m.SetDefault(cmd)
	}

	if b.options.Help {
		if _, taken := m.Command(help.Name); !taken {
			helpCmd := help.NewCommand(m).SetLocale(b.options.Locale).SetLogger(b.options.Logger)
			if err := m.AddCommand(helpCmd); err != nil {
				return nil, err
			}
		}
	}

	b.logger.Debug("router built", log.Fields{
		"commandCount": len(m.Names()),
		"hasDefault":   m.Default() != nil,
		"help":         b.options.Help,
	})

	return m, nil
}

func (b *Builder) command(name string, def CommandDef) (*command.Command, error) {
	cmd := command.New(name, def.Handler).
		SetDescription(def.Description).
		SetLocale(b.options.Locale).
		SetLogger(b.options.Logger)

	for _, alias := range def.Aliases {
		if err := cmd.AddAlias(alias); err != nil {
			return nil, err
		}
	}

	specs := make([]param.Spec, 0, len(def.Params))
	for _, p := range def.Params {
		spec, err := b.param(p)
		if err != nil {
			if coded, ok := err.(*mdwerror.Error); ok {
				coded.WithDetail("command", name)
			}
			return nil, err
		}
		specs = append(specs, spec)
	}

	if err := cmd.AddParams(specs...); err != nil {
		return nil, err
	}

	return cmd, nil
}

func (b *Builder) param(def ParamDef) (param.Spec, error) {
	if def.Flag {
		f := param.NewFlag(def.Name).
			SetDescription(def.Description).
			SetLocale(b.options.Locale)
		for _, alias := range def.Aliases {
			if err := f.AddAlias(alias); err != nil {
				return nil, err
			}
		}
		return f, nil
	}

	opts := []param.Option{param.WithDescription(def.Description)}
	if def.Default != nil {
		opts = append(opts, param.WithDefault(*def.Default))
	}
	if def.Required {
		opts = append(opts, param.AsRequired())
	}

	v := param.NewValue(def.Name, opts...).SetLocale(b.options.Locale)
	for _, alias := range def.Aliases {
		if err := v.AddAlias(alias); err != nil {
			return nil, err
		}
	}
	return v, nil
}
