// File: command.go
// Title: Command Definition and Execution
// Description: A Command owns an ordered set of parameter specifications and
//              a handler. Executing it parses every parameter in declaration
//              order from the token list and passes the remaining positional
//              tokens and the parsed values to the handler.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-04
// Modified: 2025-08-04
//
// Change History:
// - 2025-08-04 v0.1.0: Initial implementation

package command

import (
	"errors"
	"reflect"

	"github.com/msto63/consoleargs/foundation/args/param"
	mdwerror "github.com/msto63/consoleargs/foundation/core/error"
	"github.com/msto63/consoleargs/foundation/core/i18n"
	"github.com/msto63/consoleargs/foundation/core/log"
)

// Handler runs a resolved command. args holds the positional tokens left
// after all parameters were extracted.
type Handler func(cmd *Command, args []string, params Params) (interface{}, error)

// Command is a named, executable set of parameters
type Command struct {
	name        string
	description string
	aliases     []string
	specs       []param.Spec
	index       map[string]int // primary name -> position in specs
	handler     Handler
	locale      *i18n.Locale
	logger      *log.Logger
}

// New creates a command. A nil handler is allowed at construction time but
// Execute then fails with NOT_EXECUTABLE.
func New(name string, handler Handler) *Command {
	return &Command{
		name:    name,
		index:   make(map[string]int),
		handler: handler,
		locale:  i18n.Default(),
		logger:  log.GetDefault().WithField("component", "command"),
	}
}

// NewDefault creates an unnamed command for use as a router fallback
func NewDefault(handler Handler) *Command {
	return New("", handler)
}

// Name returns the command name. The default command has an empty name.
func (c *Command) Name() string {
	return c.name
}

// Description returns the help text
func (c *Command) Description() string {
	return c.description
}

// Aliases returns the aliases in addition order
func (c *Command) Aliases() []string {
	out := make([]string, len(c.aliases))
	copy(out, c.aliases)
	return out
}

// HasAlias reports whether name is one of the command's aliases
func (c *Command) HasAlias(name string) bool {
	for _, alias := range c.aliases {
		if alias == name {
			return true
		}
	}
	return false
}

// Specs returns the parameters in declaration order
func (c *Command) Specs() []param.Spec {
	out := make([]param.Spec, len(c.specs))
	copy(out, c.specs)
	return out
}

// Spec returns the parameter registered under the primary name
func (c *Command) Spec(name string) (param.Spec, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.specs[i], true
}

// Handler returns the bound handler, which may be nil
func (c *Command) Handler() Handler {
	return c.handler
}

// SetHandler binds the handler
func (c *Command) SetHandler(handler Handler) *Command {
	c.handler = handler
	return c
}

// SetDescription sets the help text
func (c *Command) SetDescription(description string) *Command {
	c.description = description
	return c
}

// SetLocale replaces the locale used for this command's errors
func (c *Command) SetLocale(locale *i18n.Locale) *Command {
	if locale != nil {
		c.locale = locale
	}
	return c
}

// SetLogger replaces the logger
func (c *Command) SetLogger(logger *log.Logger) *Command {
	if logger != nil {
		c.logger = logger.WithField("component", "command")
	}
	return c
}

// AddAlias adds an alternative name. Aliases are only unique within one
// command; the router picks the first registered command claiming an alias.
func (c *Command) AddAlias(alias string) error {
	if c.HasAlias(alias) {
		return c.locale.Error(i18n.KeyDuplicateAlias, i18n.Context{
			Command: c.name,
			Value:   alias,
		}).WithOperation("command.AddAlias")
	}
	c.aliases = append(c.aliases, alias)
	return nil
}

// AddParams registers specs under their primary names. A spec whose primary
// name is already registered replaces the old one in its original position.
// Nothing is registered if any spec is invalid.
func (c *Command) AddParams(specs ...param.Spec) error {
	for _, spec := range specs {
		if isNil(spec) || len(spec.Names()) == 0 {
			return c.locale.Error(i18n.KeyInvalidParamType, i18n.Context{
				Command: c.name,
				Value:   typeName(spec),
			}).WithOperation("command.AddParams")
		}
	}

	for _, spec := range specs {
		primary := spec.Names()[0]
		if i, exists := c.index[primary]; exists {
			c.specs[i] = spec
			continue
		}
		c.index[primary] = len(c.specs)
		c.specs = append(c.specs, spec)
	}

	return nil
}

// Execute parses tokens and runs the handler. tokens is copied and never
// modified. Parse errors abort execution; handler errors are returned as is.
func (c *Command) Execute(tokens []string) (interface{}, error) {
	if c.handler == nil {
		return nil, c.locale.Error(i18n.KeyNotExecutable, i18n.Context{Command: c.name}).
			WithOperation("command.Execute")
	}

	remaining := make([]string, len(tokens))
	copy(remaining, tokens)

	params := make(Params, len(c.specs))
	for _, spec := range c.specs {
		params[spec.Names()[0]] = param.Absent()
	}

	for _, spec := range c.specs {
		name := spec.Names()[0]

		result, rest, err := spec.Parse(remaining)
		if err != nil {
			var coded *mdwerror.Error
			if errors.As(err, &coded) && c.name != "" {
				coded.WithDetail("command", c.name)
			}
			c.logger.Debug("parameter rejected", log.Fields{
				"command": c.name,
				"param":   name,
				"error":   err.Error(),
			})
			return nil, err
		}

		remaining = rest
		params[name] = result

		c.logger.Trace("parameter parsed", log.Fields{
			"command": c.name,
			"param":   name,
			"kind":    result.Kind().String(),
		})
	}

	c.logger.Debug("executing command", log.Fields{
		"command":    c.name,
		"positional": len(remaining),
		"params":     len(params),
	})

	return c.handler(c, remaining, params)
}

func typeName(spec param.Spec) string {
	if spec == nil {
		return "nil"
	}
	return reflect.TypeOf(spec).String()
}

func isNil(spec param.Spec) bool {
	if spec == nil {
		return true
	}
	v := reflect.ValueOf(spec)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
