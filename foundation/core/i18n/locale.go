// File: locale.go
// Title: Error Message Locale
// Description: Maps error keys to messages that are rendered at the error
//              site. A message is either static text, a callback receiving
//              the error context, or a text/template source. One shared
//              default locale exists; commands, parameters and the router
//              accept an injected replacement.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-04
// Modified: 2025-08-04
//
// Change History:
// - 2025-08-04 v0.2.0: Replaced Accept-Language detection with error message locales

package i18n

import (
	"strings"
	"text/template"

	mdwerror "github.com/msto63/consoleargs/foundation/core/error"
)

// Key identifies an error message in a Locale
type Key string

const (
	KeyMissingValue       Key = "missing_value"
	KeyUndefinedParam     Key = "undefined_param"
	KeyInvalidParamType   Key = "invalid_param_type"
	KeyDuplicateAlias     Key = "duplicate_alias"
	KeyInvalidCommandType Key = "invalid_command_type"
	KeyNoCommandGiven     Key = "no_command_given"
	KeyUnknownCommand     Key = "unknown_command"
	KeyNotExecutable      Key = "not_executable"
	KeyInvalidArgsType    Key = "invalid_args_type"
)

// Keys lists every key in a stable order
func Keys() []Key {
	return []Key{
		KeyMissingValue,
		KeyUndefinedParam,
		KeyInvalidParamType,
		KeyDuplicateAlias,
		KeyInvalidCommandType,
		KeyNoCommandGiven,
		KeyUnknownCommand,
		KeyNotExecutable,
		KeyInvalidArgsType,
	}
}

var keyCodes = map[Key]mdwerror.Code{
	KeyMissingValue:       mdwerror.CodeMissingValue,
	KeyUndefinedParam:     mdwerror.CodeUndefinedParam,
	KeyInvalidParamType:   mdwerror.CodeInvalidParamType,
	KeyDuplicateAlias:     mdwerror.CodeDuplicateAlias,
	KeyInvalidCommandType: mdwerror.CodeInvalidCommandType,
	KeyNoCommandGiven:     mdwerror.CodeNoCommandGiven,
	KeyUnknownCommand:     mdwerror.CodeUnknownCommand,
	KeyNotExecutable:      mdwerror.CodeNotExecutable,
	KeyInvalidArgsType:    mdwerror.CodeInvalidArgsType,
}

// Code returns the error code raised for k
func (k Key) Code() mdwerror.Code {
	if code, ok := keyCodes[k]; ok {
		return code
	}
	return mdwerror.CodeUnknown
}

// Context is what an error site knows when it fails. Unused fields stay empty.
type Context struct {
	Command  string   // command being registered or executed
	Param    string   // primary name of the offending parameter
	Names    []string // all names of the offending parameter
	Value    string   // offending token, alias or type name
	Commands []string // registered command names, in registration order
}

func (c Context) args() map[string]interface{} {
	args := make(map[string]interface{})
	if c.Command != "" {
		args["command"] = c.Command
	}
	if c.Param != "" {
		args["param"] = c.Param
	}
	if c.Value != "" {
		args["value"] = c.Value
	}
	return args
}

type messageKind int

const (
	staticMessage messageKind = iota
	formattedMessage
	templateMessage
)

// Message is a tagged variant: Static, Formatted or Template
type Message struct {
	kind messageKind
	text string
	fn   func(Context) string
	tmpl *template.Template
}

// Static returns a message that always renders text
func Static(text string) Message {
	return Message{kind: staticMessage, text: text}
}

// Formatted returns a message produced by fn at the error site
func Formatted(fn func(Context) string) Message {
	if fn == nil {
		return Static("")
	}
	return Message{kind: formattedMessage, fn: fn}
}

// Template returns a message rendered from a text/template source with the
// Context as data, e.g. "You must define param {{.Param}}". A source that does
// not parse renders verbatim.
func Template(source string) Message {
	tmpl, err := template.New("message").Option("missingkey=zero").Parse(source)
	if err != nil {
		return Static(source)
	}
	return Message{kind: templateMessage, text: source, tmpl: tmpl}
}

// Render produces the text for ctx
func (m Message) Render(ctx Context) string {
	switch m.kind {
	case formattedMessage:
		return m.fn(ctx)
	case templateMessage:
		var b strings.Builder
		if err := m.tmpl.Execute(&b, ctx); err != nil {
			return m.text
		}
		return b.String()
	default:
		return m.text
	}
}

// Locale maps keys to messages. A Locale is never modified after creation;
// With returns a copy.
type Locale struct {
	messages map[Key]Message
}

var defaultLocale = &Locale{messages: map[Key]Message{
	KeyMissingValue:       Template("You should write param value for {{.Param}}"),
	KeyUndefinedParam:     Template("You must define param {{.Param}}"),
	KeyInvalidParamType:   Static("Param must implement the parameter interface"),
	KeyDuplicateAlias:     Template("This alias already exists: {{.Value}}"),
	KeyInvalidCommandType: Static("Command must be a non-nil command"),
	KeyNoCommandGiven:     Static("You should write any available command"),
	KeyUnknownCommand:     Template("You should write only existing commands, got {{.Value}}"),
	KeyNotExecutable:      Template("Command {{.Command}} has no handler"),
	KeyInvalidArgsType:    Template("Arguments must be a string or a list of strings, got {{.Value}}"),
}}

// Default returns the shared default locale
func Default() *Locale {
	return defaultLocale
}

// With returns a copy of l with key mapped to msg
func (l *Locale) With(key Key, msg Message) *Locale {
	clone := &Locale{messages: make(map[Key]Message, len(l.messages)+1)}
	for k, v := range l.messages {
		clone.messages[k] = v
	}
	clone.messages[key] = msg
	return clone
}

// Message renders the message for key. Unknown keys render as the key.
func (l *Locale) Message(key Key, ctx Context) string {
	if l == nil {
		l = defaultLocale
	}
	msg, ok := l.messages[key]
	if !ok {
		return string(key)
	}
	return msg.Render(ctx)
}

// Error builds the coded error for key. The message is rendered now, at the
// error site.
func (l *Locale) Error(key Key, ctx Context) *mdwerror.Error {
	err := mdwerror.New(l.Message(key, ctx)).
		WithCode(key.Code()).
		WithMessage(string(key), ctx.args())

	if ctx.Command != "" {
		err.WithDetail("command", ctx.Command)
	}
	if ctx.Param != "" {
		err.WithDetail("param", ctx.Param)
	}
	if ctx.Value != "" {
		err.WithDetail("value", ctx.Value)
	}

	return err
}

// FromManager overlays catalog entries "errors.<key>" of m on the default
// locale as Template messages.
func FromManager(m *Manager) *Locale {
	l := defaultLocale
	if m == nil {
		return l
	}
	for _, key := range Keys() {
		if raw, ok := m.Raw("errors." + string(key)); ok {
			l = l.With(key, Template(raw))
		}
	}
	return l
}
