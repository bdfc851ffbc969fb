// ============================================================================
// ConsoleArgs - Command Router
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model running input lines through a router
// Author:      msto63
// Created:     2025-08-04
// License:     MIT
// ============================================================================

package repl

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/consoleargs/foundation/args/router"
	"github.com/msto63/consoleargs/foundation/core/log"
)

// MaxRecall bounds the number of lines kept for up/down recall
const MaxRecall = 100

// Config configures the prompt
type Config struct {
	Manager *router.Manager
	// Recall seeds up/down navigation, oldest first
	Recall []string
	// OnExecute is called after every executed line
	OnExecute func(input string, result interface{}, err error)
	Logger    *log.Logger
}

// Model is the Bubbletea model of the prompt
type Model struct {
	width   int
	height  int
	running bool

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	manager   *router.Manager
	onExecute func(string, interface{}, error)
	logger    *log.Logger

	lines        []Line
	recall       []string
	recallIndex  int // -1 means no recall navigation is active
	currentInput string
}

// New creates the prompt model
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Prompt = PromptStyle.Render("> ")
	ti.Placeholder = "command --param value"
	ti.CharLimit = 4096
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	logger := cfg.Logger
	if logger == nil {
		logger = log.GetDefault()
	}

	recall := append([]string(nil), cfg.Recall...)
	if len(recall) > MaxRecall {
		recall = recall[len(recall)-MaxRecall:]
	}

	m := Model{
		width:       80,
		height:      24,
		input:       ti,
		viewport:    viewport.New(76, 24-footerHeight),
		spinner:     sp,
		manager:     cfg.Manager,
		onExecute:   cfg.OnExecute,
		logger:      logger.WithField("component", "repl"),
		recall:      recall,
		recallIndex: -1,
	}
	m.updateViewportContent()
	return m
}

const footerHeight = 6 // title + panel border + input + help

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - footerHeight
		m.input.Width = msg.Width - 4
		m.updateViewportContent()
		return m, nil

	case spinner.TickMsg:
		if m.running {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case resultMsg:
		m.running = false
		m.appendResult(msg)
		if m.onExecute != nil {
			m.onExecute(msg.input, msg.result, msg.err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyCtrlL:
		m.lines = nil
		m.updateViewportContent()
		return m, nil
	}

	if m.running {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		if input == "" {
			return m, nil
		}
		m.remember(input)
		m.recallIndex = -1
		m.currentInput = ""
		m.input.Reset()

		m.lines = append(m.lines, Line{Kind: LineInput, Text: input})
		m.updateViewportContent()
		m.running = true
		return m, tea.Batch(m.spinner.Tick, m.execute(input))

	case tea.KeyUp:
		if len(m.recall) > 0 {
			if m.recallIndex == -1 {
				m.currentInput = m.input.Value()
				m.recallIndex = len(m.recall) - 1
			} else if m.recallIndex > 0 {
				m.recallIndex--
			}
			m.input.SetValue(m.recall[m.recallIndex])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.recallIndex != -1 {
			if m.recallIndex < len(m.recall)-1 {
				m.recallIndex++
				m.input.SetValue(m.recall[m.recallIndex])
			} else {
				m.recallIndex = -1
				m.input.SetValue(m.currentInput)
			}
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// remember adds input to the recall list unless it repeats the last line
func (m *Model) remember(input string) {
	if len(m.recall) > 0 && m.recall[len(m.recall)-1] == input {
		return
	}
	m.recall = append(m.recall, input)
	if len(m.recall) > MaxRecall {
		m.recall = m.recall[len(m.recall)-MaxRecall:]
	}
}

func (m Model) execute(input string) tea.Cmd {
	manager := m.manager
	logger := m.logger
	return func() tea.Msg {
		start := time.Now()
		result, err := manager.ExecuteLine(input)
		duration := time.Since(start)
		logger.Debug("line executed", log.Fields{"input": input, "duration": duration.String()})
		return resultMsg{input: input, result: result, err: err, duration: duration}
	}
}

func (m *Model) appendResult(msg resultMsg) {
	if msg.err != nil {
		m.lines = append(m.lines, Line{Kind: LineError, Text: msg.err.Error()})
	} else if text := Format(msg.result); text != "" {
		m.lines = append(m.lines, Line{Kind: LineOutput, Text: text})
	}
	m.updateViewportContent()
}

// Format renders a command result for display. Strings are printed as they
// are, nil prints nothing.
func Format(result interface{}) string {
	switch v := result.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimRight(v, "\n")
	case []string:
		return strings.Join(v, "\n")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Lines returns the transcript
func (m Model) Lines() []Line {
	return append([]Line(nil), m.lines...)
}

func (m *Model) updateViewportContent() {
	var content strings.Builder
	for _, line := range m.lines {
		switch line.Kind {
		case LineInput:
			content.WriteString(EchoStyle.Render("> " + line.Text))
		case LineOutput:
			content.WriteString(OutputStyle.Render(line.Text))
		case LineError:
			content.WriteString(ErrorStyle.Render(line.Text))
		}
		content.WriteString("\n")
	}
	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("consoleargs"))
	b.WriteString("\n")
	b.WriteString(OutputPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")

	if m.running {
		b.WriteString(m.spinner.View() + HelpDescStyle.Render(" running..."))
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")

	b.WriteString(strings.Join([]string{
		RenderHelpItem("enter", "run"),
		RenderHelpItem("↑/↓", "recall"),
		RenderHelpItem("ctrl+l", "clear"),
		RenderHelpItem("esc", "quit"),
	}, "  "))

	return b.String()
}

// Run starts the prompt
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
