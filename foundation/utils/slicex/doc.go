// Package slicex provides generic slice helpers shared by the router packages.
//
// Package: slicex
// Title: Slice Utilities
// Description: Small generic helpers for searching and transforming slices
//              of names and tokens.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-04
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-08-04 v0.2.0: Reduced to the helpers used for name and token lists
//
// All functions are nil safe. Functions returning a slice never return the
// input slice itself.
//
//	if slicex.Contains(only, cmd.Name()) {
//		...
//	}
//
//	quoted := slicex.Map(args, strconv.Quote)
package slicex
