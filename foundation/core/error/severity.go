// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for error classification. Severity
//              drives the log level used when an error is reported.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-04
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with four severity levels
// - 2025-08-04 v0.2.0: Severity mapping for argument engine codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a mistake in user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects a single invocation
	SeverityMedium

	// SeverityHigh indicates a broken command definition or storage failure
	SeverityHigh

	// SeverityCritical indicates the program cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeInvalidParamType, CodeDuplicateAlias, CodeInvalidCommandType,
		CodeNotExecutable, CodeInvalidConfig, CodeConfigError, CodeDatabaseError:
		return SeverityHigh

	case CodeExecutionFailed, CodeInvalidArgsType:
		return SeverityMedium

	case CodeMissingValue, CodeUndefinedParam, CodeNoCommandGiven,
		CodeUnknownCommand, CodeInvalidInput, CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
