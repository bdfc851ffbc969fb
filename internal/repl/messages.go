// ============================================================================
// ConsoleArgs - Command Router
// ============================================================================
//
// Package:     repl
// Description: Transcript lines and async message types
// Author:      msto63
// Created:     2025-08-04
// License:     MIT
// ============================================================================

package repl

import "time"

// LineKind classifies a transcript line
type LineKind int

const (
	LineInput LineKind = iota
	LineOutput
	LineError
)

// Line is one entry of the transcript
type Line struct {
	Kind LineKind
	Text string
}

// resultMsg carries the outcome of an executed input line
type resultMsg struct {
	input    string
	result   interface{}
	err      error
	duration time.Duration
}
