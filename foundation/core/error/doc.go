// Package error provides the structured error type used throughout consoleargs.
//
// Package: error
// Title: Error Handling Framework
// Description: Every failure of the argument engine is reported as an *Error
//              with a Code naming the kind of failure, a severity derived
//              from the code, structured details and the localization key
//              the message text was produced from.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-04
//
// Usage:
//
//	err := mdwerror.New("You should write param value").
//		WithCode(mdwerror.CodeMissingValue).
//		WithDetail("param", "--target")
//
//	if mdwerror.HasCode(err, mdwerror.CodeMissingValue) {
//		// handle a dangling parameter name
//	}
package error
