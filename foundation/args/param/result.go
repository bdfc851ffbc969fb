// File: result.go
// Title: Parameter Parse Results
// Description: Result is what a parameter yields after parsing: absent, a
//              flag state, a single value or an ordered list of values.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-04
// Modified: 2025-08-04
//
// Change History:
// - 2025-08-04 v0.1.0: Initial implementation

package param

import (
	"strconv"
	"strings"
)

// Kind tags a Result
type Kind int

const (
	KindAbsent Kind = iota
	KindFlag
	KindScalar
	KindList
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindFlag:
		return "flag"
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Result is a parsed parameter value. The zero value is absent.
type Result struct {
	kind   Kind
	flag   bool
	scalar string
	list   []string
}

// Absent returns a result for a parameter that was not given and has no default
func Absent() Result {
	return Result{}
}

// BoolResult returns a flag result
func BoolResult(set bool) Result {
	return Result{kind: KindFlag, flag: set}
}

// ScalarResult returns a single value
func ScalarResult(value string) Result {
	return Result{kind: KindScalar, scalar: value}
}

// ListResult returns values in discovery order. A single value collapses to
// a scalar.
func ListResult(values []string) Result {
	if len(values) == 1 {
		return ScalarResult(values[0])
	}
	list := make([]string, len(values))
	copy(list, values)
	return Result{kind: KindList, list: list}
}

// Kind returns the result's tag
func (r Result) Kind() Kind {
	return r.kind
}

// IsAbsent reports whether no value was found and no default applied
func (r Result) IsAbsent() bool {
	return r.kind == KindAbsent
}

// Bool returns the flag state. Any non-flag result is false.
func (r Result) Bool() bool {
	return r.kind == KindFlag && r.flag
}

// Value returns the scalar value
func (r Result) Value() (string, bool) {
	return r.scalar, r.kind == KindScalar
}

// Values returns every value: one for a scalar, all for a list, none otherwise
func (r Result) Values() []string {
	switch r.kind {
	case KindScalar:
		return []string{r.scalar}
	case KindList:
		list := make([]string, len(r.list))
		copy(list, r.list)
		return list
	default:
		return nil
	}
}

// Interface returns nil, bool, string or []string
func (r Result) Interface() interface{} {
	switch r.kind {
	case KindFlag:
		return r.flag
	case KindScalar:
		return r.scalar
	case KindList:
		return r.Values()
	default:
		return nil
	}
}

// String renders the result for display. Lists are comma separated.
func (r Result) String() string {
	switch r.kind {
	case KindFlag:
		return strconv.FormatBool(r.flag)
	case KindScalar:
		return r.scalar
	case KindList:
		return strings.Join(r.list, ",")
	default:
		return ""
	}
}
