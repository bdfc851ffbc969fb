// File: params.go
// Title: Parsed Parameter Map
// Description: Params maps every declared primary name to its parse result.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-04
// Modified: 2025-08-04
//
// Change History:
// - 2025-08-04 v0.1.0: Initial implementation

package command

import (
	"sort"

	"github.com/msto63/consoleargs/foundation/args/param"
)

// Params holds one entry per declared parameter; parameters that were not
// given and have no default are present as absent results.
type Params map[string]param.Result

// Get returns the result for name, absent if it was never declared
func (p Params) Get(name string) param.Result {
	return p[name]
}

// Bool returns whether the flag name was given
func (p Params) Bool(name string) bool {
	return p[name].Bool()
}

// Value returns the scalar value of name
func (p Params) Value(name string) (string, bool) {
	return p[name].Value()
}

// Values returns all values of name
func (p Params) Values(name string) []string {
	return p[name].Values()
}

// Names returns the declared names, sorted
func (p Params) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Interface converts the map to plain Go values: nil, bool, string or []string
func (p Params) Interface() map[string]interface{} {
	out := make(map[string]interface{}, len(p))
	for name, result := range p {
		out[name] = result.Interface()
	}
	return out
}
