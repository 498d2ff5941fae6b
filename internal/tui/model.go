// Package tui renders the interactive address book session as a Bubble
// Tea program: a command line at the bottom, a scrollback transcript
// above it, and a help bar. All command behavior lives in the command
// package; the model only echoes input and appends dispatch results.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/rolo/internal/command"
)

// chromeHeight is the number of lines below the transcript viewport:
// the input line and the help bar.
const chromeHeight = 2

// Options configures the REPL model's presentation strings.
type Options struct {
	Prompt   string
	Greeting string
	Farewell string
}

// Model is the Bubble Tea model for the interactive session.
type Model struct {
	d        *command.Dispatcher
	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     replKeys

	lines    []string // transcript, one display line per entry
	prompt   string
	farewell string
	width    int
	height   int
	quitting bool
}

// NewModel creates a REPL model bound to the given dispatcher.
func NewModel(d *command.Dispatcher, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = PromptStyle().Render(opts.Prompt)
	ti.Focus()

	m := Model{
		d:        d,
		input:    ti,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     defaultKeys(),
		prompt:   opts.Prompt,
		farewell: opts.Farewell,
	}
	if opts.Greeting != "" {
		m.lines = append(m.lines, GreetingStyle().Render(opts.Greeting))
	}
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if w := msg.Width - len(m.prompt) - 1; w > 0 {
			m.input.Width = w
		}
		m.viewport.Width = msg.Width
		m.viewport.Height = m.contentHeight()
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Scrolling is the viewport's own key handling.
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit dispatches the current input line and appends the echo and the
// result to the transcript. An exit result quits the program.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	m.lines = append(m.lines, PromptStyle().Render(m.prompt)+line)

	res := m.d.Dispatch(line)
	if res.IsExit() {
		m.lines = append(m.lines, FarewellStyle().Render(m.farewell))
		m.quitting = true
		m.refreshTranscript()
		return m, tea.Quit
	}

	m.lines = append(m.lines, res.String())
	m.refreshTranscript()
	return m, nil
}

// refreshTranscript reloads the viewport content and pins it to the bottom.
func (m *Model) refreshTranscript() {
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

// contentHeight returns the usable height for the transcript viewport.
func (m Model) contentHeight() int {
	h := m.height - chromeHeight
	if h < 1 {
		return 1
	}
	return h
}

// View renders the transcript, the input line, and the help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.quitting {
		return strings.Join(m.lines, "\n") + "\n"
	}
	return m.viewport.View() + "\n" + m.input.View() + "\n" + m.help.View(m.keys)
}
