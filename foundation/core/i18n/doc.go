// File: doc.go
// Title: Internationalization (i18n) Package Documentation
// Description: Package i18n provides translation catalogs and the error
//              message locale used by the argument router.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-04
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-08-04 v0.2.0: Error message locales

/*
Package i18n provides the messages shown when parsing or routing fails.

Locale

A Locale maps a Key (one per error kind) to a Message. Messages come in three
forms and are rendered at the error site with a Context describing the
failure:

	i18n.Static("You should write any available command")
	i18n.Formatted(func(ctx i18n.Context) string { return "unknown: " + ctx.Value })
	i18n.Template("You must define param {{.Param}}")

Default returns the shared locale. With returns a modified copy, so the
default is never changed by a caller:

	locale := i18n.Default().With(i18n.KeyUnknownCommand,
		i18n.Template("Unbekannter Befehl {{.Value}}"))

Locale.Error turns a key into a coded error carrying the rendered text, the
key as message key and command, param and value as details.

Catalogs

Manager loads <locale>.toml or <locale>.yaml files from a directory and
resolves nested dot keys with fallback to the default locale. FromManager
reads "errors.<key>" entries into a Locale:

	# de.toml
	[errors]
	undefined_param = "Parameter {{.Param}} fehlt"
*/
package i18n
