// File: param.go
// Title: Parameter Specifications
// Description: Flag and Value parameters extract their own occurrences from
//              a token list. Each parse returns the result together with a
//              new residual list; the input list is never modified.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-04
// Modified: 2025-08-04
//
// Change History:
// - 2025-08-04 v0.1.0: Initial implementation

package param

import (
	"github.com/msto63/consoleargs/foundation/core/i18n"
	"github.com/msto63/consoleargs/foundation/utils/slicex"
)

const notFound = -1

// Spec is a declared parameter of a command
type Spec interface {
	// Names returns the primary name followed by the aliases in addition order
	Names() []string
	Description() string
	// Parse extracts the parameter from tokens and returns what is left
	Parse(tokens []string) (Result, []string, error)
}

// names is the name list and metadata shared by Flag and Value
type names struct {
	list        []string
	description string
	locale      *i18n.Locale
}

func newNames(primary string) names {
	return names{list: []string{primary}, locale: i18n.Default()}
}

// Names returns the primary name followed by the aliases
func (n *names) Names() []string {
	out := make([]string, len(n.list))
	copy(out, n.list)
	return out
}

// Name returns the primary name
func (n *names) Name() string {
	return n.list[0]
}

// Description returns the help text
func (n *names) Description() string {
	return n.description
}

func (n *names) addAlias(alias string) error {
	if slicex.Contains(n.list, alias) {
		return n.locale.Error(i18n.KeyDuplicateAlias, i18n.Context{
			Param: n.list[0],
			Names: n.Names(),
			Value: alias,
		}).WithOperation("param.AddAlias")
	}
	n.list = append(n.list, alias)
	return nil
}

// find returns the index of the first token equal to the highest priority
// name that occurs at all. A primary name occurrence wins over an earlier
// alias occurrence.
func (n *names) find(tokens []string) int {
	for _, name := range n.list {
		if i := slicex.IndexOf(tokens, name); i != notFound {
			return i
		}
	}
	return notFound
}

func (n *names) context() i18n.Context {
	return i18n.Context{Param: n.list[0], Names: n.Names()}
}

// remove returns tokens without the count tokens starting at k, in a new slice
func remove(tokens []string, k, count int) []string {
	out := make([]string, 0, len(tokens)-count)
	out = append(out, tokens[:k]...)
	return append(out, tokens[k+count:]...)
}

// Flag is a boolean parameter. It is set when any of its names occurs.
type Flag struct {
	names
}

// NewFlag creates a flag with the given primary name
func NewFlag(name string) *Flag {
	return &Flag{names: newNames(name)}
}

// AddAlias adds an alternative name. Names must be distinct within the flag.
func (f *Flag) AddAlias(alias string) error {
	return f.addAlias(alias)
}

// SetDescription sets the help text
func (f *Flag) SetDescription(description string) *Flag {
	f.description = description
	return f
}

// SetLocale replaces the locale used for error messages
func (f *Flag) SetLocale(locale *i18n.Locale) *Flag {
	if locale != nil {
		f.locale = locale
	}
	return f
}

// Parse removes every occurrence of every name of the flag
func (f *Flag) Parse(tokens []string) (Result, []string, error) {
	if f.find(tokens) == notFound {
		return BoolResult(false), tokens, nil
	}
	return BoolResult(true), slicex.Without(tokens, f.list...), nil
}

// Value is a parameter that takes the token following its name. Repeated
// occurrences collect into a list.
type Value struct {
	names
	defaultValue string
	hasDefault   bool
	required     bool
}

// Option configures a Value
type Option func(*Value)

// WithDefault sets the value used when the parameter is not given
func WithDefault(value string) Option {
	return func(v *Value) {
		v.defaultValue = value
		v.hasDefault = true
	}
}

// AsRequired makes a missing parameter an error
func AsRequired() Option {
	return func(v *Value) {
		v.required = true
	}
}

// WithDescription sets the help text
func WithDescription(description string) Option {
	return func(v *Value) {
		v.description = description
	}
}

// NewValue creates a value parameter with the given primary name
func NewValue(name string, opts ...Option) *Value {
	v := &Value{names: newNames(name)}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// AddAlias adds an alternative name. Names must be distinct within the parameter.
func (v *Value) AddAlias(alias string) error {
	return v.addAlias(alias)
}

// SetDescription sets the help text
func (v *Value) SetDescription(description string) *Value {
	v.description = description
	return v
}

// SetLocale replaces the locale used for error messages
func (v *Value) SetLocale(locale *i18n.Locale) *Value {
	if locale != nil {
		v.locale = locale
	}
	return v
}

// Default returns the default value, if one is set
func (v *Value) Default() (string, bool) {
	return v.defaultValue, v.hasDefault
}

// Required reports whether the parameter must be given
func (v *Value) Required() bool {
	return v.required
}

// Parse extracts every "name value" pair. Each pass takes the first
// occurrence of the highest priority name that is present.
//
// A name without a following token fails with MISSING_VALUE on the first
// pass. On later passes it ends collection and stays in the residual list.
func (v *Value) Parse(tokens []string) (Result, []string, error) {
	remaining := tokens
	var found []string

	for {
		k := v.find(remaining)
		if k == notFound {
			break
		}
		if k+1 >= len(remaining) {
			if len(found) == 0 {
				return Absent(), remaining, v.locale.Error(i18n.KeyMissingValue, v.context()).
					WithOperation("param.Parse")
			}
			break
		}
		found = append(found, remaining[k+1])
		remaining = remove(remaining, k, 2)
	}

	switch {
	case len(found) > 0:
		return ListResult(found), remaining, nil
	case v.required:
		return Absent(), remaining, v.locale.Error(i18n.KeyUndefinedParam, v.context()).
			WithOperation("param.Parse")
	case v.hasDefault:
		return ScalarResult(v.defaultValue), remaining, nil
	default:
		return Absent(), remaining, nil
	}
}
