// File: router.go
// Title: Command Router
// Description: The Manager resolves the first token of an invocation to a
//              registered command, by name and then by alias, falls back to
//              an optional default command and delegates the remaining
//              tokens.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-04
// Modified: 2025-08-04
//
// Change History:
// - 2025-08-04 v0.1.0: Initial implementation

package router

import (
	"fmt"

	"github.com/msto63/consoleargs/foundation/args/command"
	"github.com/msto63/consoleargs/foundation/args/tokenizer"
	mdwerror "github.com/msto63/consoleargs/foundation/core/error"
	"github.com/msto63/consoleargs/foundation/core/i18n"
	"github.com/msto63/consoleargs/foundation/core/log"
)

// Resolution kinds
const (
	ViaName    = "name"
	ViaAlias   = "alias"
	ViaDefault = "default"
)

// Options configures a Manager
type Options struct {
	Locale *i18n.Locale // defaults to i18n.Default()
	Logger *log.Logger  // defaults to log.GetDefault()
}

// Manager routes invocations to commands. Registration is not synchronized;
// configure the Manager before executing from several goroutines.
type Manager struct {
	commands map[string]*command.Command
	order    []string // registration order, used for alias resolution
	fallback *command.Command
	locale   *i18n.Locale
	logger   *log.Logger
}

// Resolution describes how a token list was routed
type Resolution struct {
	Command *command.Command
	Args    []string // tokens handed to the command
	Via     string
}

// New creates a manager with the given commands in registration order
func New(opts Options, commands ...*command.Command) (*Manager, error) {
	if opts.Locale == nil {
		opts.Locale = i18n.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	m := &Manager{
		commands: make(map[string]*command.Command),
		locale:   opts.Locale,
		logger:   opts.Logger.WithField("component", "router"),
	}

	for i, cmd := range commands {
		if err := m.addCommand(cmd); err != nil {
			return nil, err.WithDetail("position", i)
		}
	}

	m.logger.Debug("router initialized", log.Fields{"commandCount": len(m.order)})

	return m, nil
}

// AddCommand registers cmd under its name. Registering a name again replaces
// the earlier command but keeps its place in alias resolution order.
func (m *Manager) AddCommand(cmd *command.Command) error {
	if err := m.addCommand(cmd); err != nil {
		return err
	}
	return nil
}

func (m *Manager) addCommand(cmd *command.Command) *mdwerror.Error {
	if cmd == nil {
		return m.locale.Error(i18n.KeyInvalidCommandType, i18n.Context{
			Value:    "nil",
			Commands: m.order,
		}).WithOperation("router.AddCommand")
	}

	name := cmd.Name()
	if _, exists := m.commands[name]; exists {
		m.logger.Debug("command replaced", log.Fields{"command": name})
	} else {
		m.order = append(m.order, name)
	}
	m.commands[name] = cmd

	return nil
}

// SetDefault sets the fallback command; nil removes it
func (m *Manager) SetDefault(cmd *command.Command) *Manager {
	m.fallback = cmd
	return m
}

// Default returns the fallback command, or nil
func (m *Manager) Default() *command.Command {
	return m.fallback
}

// Command returns the command registered under name
func (m *Manager) Command(name string) (*command.Command, bool) {
	cmd, ok := m.commands[name]
	return cmd, ok
}

// Commands returns the registered commands in registration order
func (m *Manager) Commands() []*command.Command {
	out := make([]*command.Command, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.commands[name])
	}
	return out
}

// Names returns the registered command names in registration order
func (m *Manager) Names() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Locale returns the locale used for routing errors
func (m *Manager) Locale() *i18n.Locale {
	return m.locale
}

// Execute runs an invocation given as a raw string or a token list. Any
// other input type fails with INVALID_ARGS_TYPE.
func (m *Manager) Execute(input interface{}) (interface{}, error) {
	switch v := input.(type) {
	case string:
		return m.ExecuteLine(v)
	case []string:
		return m.ExecuteArgs(v)
	default:
		return nil, m.locale.Error(i18n.KeyInvalidArgsType, i18n.Context{
			Value:    fmt.Sprintf("%T", input),
			Commands: m.Names(),
		}).WithOperation("router.Execute")
	}
}

// ExecuteLine tokenizes line and executes the result
func (m *Manager) ExecuteLine(line string) (interface{}, error) {
	return m.ExecuteArgs(tokenizer.Tokenize(line))
}

// ExecuteArgs resolves tokens and executes the chosen command. tokens is
// never modified.
func (m *Manager) ExecuteArgs(tokens []string) (interface{}, error) {
	res, err := m.Resolve(tokens)
	if err != nil {
		m.logger.Debug("resolution failed", log.Fields{"error": err.Error()})
		return nil, err
	}

	m.logger.Debug("command resolved", log.Fields{
		"command": res.Command.Name(),
		"via":     res.Via,
		"args":    len(res.Args),
	})

	return res.Command.Execute(res.Args)
}

// Resolve picks the command for tokens without executing it.
//
// An empty list goes to the default command. Otherwise the first token is
// matched against command names, then against aliases in registration order.
// Without a match the default command receives the whole list, first token
// included.
func (m *Manager) Resolve(tokens []string) (Resolution, error) {
	if len(tokens) == 0 {
		if m.fallback != nil {
			return Resolution{Command: m.fallback, Args: []string{}, Via: ViaDefault}, nil
		}
		return Resolution{}, m.locale.Error(i18n.KeyNoCommandGiven, i18n.Context{
			Commands: m.Names(),
		}).WithOperation("router.Execute")
	}

	name := tokens[0]
	rest := make([]string, len(tokens)-1)
	copy(rest, tokens[1:])

	if cmd, ok := m.commands[name]; ok {
		return Resolution{Command: cmd, Args: rest, Via: ViaName}, nil
	}

	for _, registered := range m.order {
		if cmd := m.commands[registered]; cmd.HasAlias(name) {
			return Resolution{Command: cmd, Args: rest, Via: ViaAlias}, nil
		}
	}

	if m.fallback != nil {
		all := make([]string, len(tokens))
		copy(all, tokens)
		return Resolution{Command: m.fallback, Args: all, Via: ViaDefault}, nil
	}

	return Resolution{}, m.locale.Error(i18n.KeyUnknownCommand, i18n.Context{
		Value:    name,
		Commands: m.Names(),
	}).WithOperation("router.Execute")
}
