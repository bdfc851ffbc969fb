// File: help.go
// Title: Command Help Renderer
// Description: Renders a read-only listing of a router's commands with their
//              aliases, descriptions and parameters split into required and
//              optional groups. Styling uses lipgloss and degrades to plain
//              text when the writer is not a terminal.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-04
// Modified: 2025-08-04
//
// Change History:
// - 2025-08-04 v0.1.0: Initial implementation

package help

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/consoleargs/foundation/args/command"
	"github.com/msto63/consoleargs/foundation/args/param"
	"github.com/msto63/consoleargs/foundation/args/router"
	"github.com/msto63/consoleargs/foundation/utils/slicex"
)

// Name is the name of the built-in help command
const Name = "help"

// Options controls rendering
type Options struct {
	// Only limits the listing to these command names
	Only []string
	// Exclude hides a command, typically the help command itself
	Exclude *command.Command
}

type styles struct {
	command lipgloss.Style
	alias   lipgloss.Style
	section lipgloss.Style
	param   lipgloss.Style
	marker  lipgloss.Style
	desc    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		command: r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		alias:   r.NewStyle().Foreground(lipgloss.Color("245")),
		section: r.NewStyle().Underline(true),
		param:   r.NewStyle().Foreground(lipgloss.Color("42")),
		marker:  r.NewStyle().Foreground(lipgloss.Color("214")),
		desc:    r.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// paramLine is one rendered parameter before padding
type paramLine struct {
	text        string
	description string
}

// Render writes the listing for m to w
func Render(w io.Writer, m *router.Manager, opts Options) error {
	_, err := io.WriteString(w, render(lipgloss.NewRenderer(w), m, opts))
	return err
}

// Text returns the listing without styling
func Text(m *router.Manager, opts Options) string {
	var b strings.Builder
	// a strings.Builder is never a terminal, so no escape sequences
	_ = Render(&b, m, opts)
	return b.String()
}

func render(r *lipgloss.Renderer, m *router.Manager, opts Options) string {
	st := newStyles(r)
	commands := visible(m, opts)

	width := 0
	for _, cmd := range commands {
		if n := lipgloss.Width(cmd.Name()); n > width {
			width = n
		}
	}

	var b strings.Builder
	b.WriteString("\n")

	for _, cmd := range commands {
		b.WriteString(strings.Repeat(" ", width-lipgloss.Width(cmd.Name())+1))
		b.WriteString(st.command.Render(cmd.Name()))

		if aliases := cmd.Aliases(); len(aliases) > 0 {
			b.WriteString(" " + st.alias.Render("("+strings.Join(aliases, ", ")+")"))
		}
		if cmd.Description() != "" {
			b.WriteString(" - " + st.desc.Render(cmd.Description()))
		}
		b.WriteString("\n")

		var required, optional []paramLine
		for _, spec := range cmd.Specs() {
			line := describe(st, spec)
			if isRequired(spec) {
				required = append(required, line)
			} else {
				optional = append(optional, line)
			}
		}

		indent := strings.Repeat(" ", width+3)
		writeGroup(&b, st, indent, "Required:", required)
		writeGroup(&b, st, indent, "Not required:", optional)

		b.WriteString("\n")
	}

	return b.String()
}

func visible(m *router.Manager, opts Options) []*command.Command {
	var out []*command.Command
	for _, cmd := range m.Commands() {
		if opts.Exclude != nil && cmd == opts.Exclude {
			continue
		}
		if len(opts.Only) > 0 && !slicex.Contains(opts.Only, cmd.Name()) {
			continue
		}
		out = append(out, cmd)
	}
	return out
}

func writeGroup(b *strings.Builder, st styles, indent, title string, lines []paramLine) {
	if len(lines) == 0 {
		return
	}

	b.WriteString(indent + st.section.Render(title) + "\n")

	width := 0
	for _, l := range lines {
		if n := lipgloss.Width(l.text); n > width {
			width = n
		}
	}

	for _, l := range lines {
		b.WriteString(indent + "  " + l.text)
		if l.description != "" {
			b.WriteString(strings.Repeat(" ", width-lipgloss.Width(l.text)))
			b.WriteString("   - " + st.desc.Render(l.description))
		}
		b.WriteString("\n")
	}
}

func describe(st styles, spec param.Spec) paramLine {
	names := spec.Names()
	text := st.param.Render(names[0])

	switch p := spec.(type) {
	case *param.Value:
		if def, ok := p.Default(); ok && def != "" {
			text += fmt.Sprintf(" %q", def)
		}
	case *param.Flag:
		text += " " + st.marker.Render("[flag]")
	}

	if len(names) > 1 {
		text += " " + st.alias.Render("("+strings.Join(names[1:], ", ")+")")
	}

	return paramLine{text: text, description: spec.Description()}
}

func isRequired(spec param.Spec) bool {
	if r, ok := spec.(interface{ Required() bool }); ok {
		return r.Required()
	}
	return false
}

// NewCommand builds the help command for m. It is left out of its own
// listing. Positional arguments restrict the listing to those commands.
func NewCommand(m *router.Manager) *command.Command {
	cmd := command.New(Name, nil).SetDescription("Show available commands")
	cmd.SetHandler(func(self *command.Command, args []string, _ command.Params) (interface{}, error) {
		return Text(m, Options{Only: args, Exclude: self}), nil
	})
	return cmd
}
