// Package stringx provides string helpers shared by the router, the
// definition loader and the CLI.
//
// Package: stringx
// Title: String Utilities
// Description: Blank checks, defaults, Unicode-safe truncation and the
//              mapping of parameter names to environment variable names.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-08-04
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2025-08-04 v0.3.0: Reduced to the helpers used by the router, added ToEnvName
//
// Usage
//
//	stringx.IsBlank("  \t")                 // true
//	stringx.FirstNonBlank("", " ", "en")    // "en"
//	stringx.Truncate("hello world", 8, "…") // "hello w…"
//	stringx.ToEnvName("dry-run")            // "DRY_RUN"
package stringx
