// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across consoleargs. Every failure
//              of the argument engine maps to exactly one code so callers can
//              branch on the kind of failure without parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-04
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-08-04 v0.2.0: Replaced platform codes with argument engine codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Parameter extraction
	CodeMissingValue     Code = "MISSING_VALUE"
	CodeUndefinedParam   Code = "UNDEFINED_PARAM"
	CodeInvalidParamType Code = "INVALID_PARAM_TYPE"
	CodeDuplicateAlias   Code = "DUPLICATE_ALIAS"

	// Command resolution and execution
	CodeInvalidCommandType Code = "INVALID_COMMAND_TYPE"
	CodeNoCommandGiven     Code = "NO_COMMAND_GIVEN"
	CodeUnknownCommand     Code = "UNKNOWN_COMMAND"
	CodeNotExecutable      Code = "NOT_EXECUTABLE"
	CodeInvalidArgsType    Code = "INVALID_ARGS_TYPE"
	CodeExecutionFailed    Code = "EXECUTION_FAILED"

	// Configuration and storage
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeDatabaseError Code = "DATABASE_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeMissingValue, CodeUndefinedParam, CodeInvalidParamType, CodeDuplicateAlias,
		CodeInvalidCommandType, CodeNoCommandGiven, CodeUnknownCommand, CodeNotExecutable,
		CodeInvalidArgsType, CodeExecutionFailed,
		CodeConfigError, CodeInvalidConfig, CodeDatabaseError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeMissingValue, CodeUndefinedParam:
		return "input"
	case CodeNoCommandGiven, CodeUnknownCommand, CodeInvalidArgsType:
		return "resolution"
	case CodeInvalidParamType, CodeDuplicateAlias, CodeInvalidCommandType, CodeNotExecutable:
		return "definition"
	case CodeExecutionFailed:
		return "execution"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeDatabaseError:
		return "storage"
	default:
		return "generic"
	}
}

// IsUserError reports whether the code describes a mistake in the invocation
// itself rather than in the program's command definitions.
func (c Code) IsUserError() bool {
	switch c.Category() {
	case "input", "resolution":
		return true
	default:
		return false
	}
}
