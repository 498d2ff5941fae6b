package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/rolo/internal/book"
	"github.com/smileynet/rolo/internal/command"
	"github.com/smileynet/rolo/internal/config"
	"github.com/smileynet/rolo/internal/session"
	"github.com/smileynet/rolo/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolo.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Repl    ReplCmd          `cmd:"" default:"1" help:"Run the interactive address book session."`
	Exec    ExecCmd          `cmd:"" help:"Dispatch a single command line against an empty book and exit."`
	Demo    DemoCmd          `cmd:"" help:"Run a scripted walkthrough of the address book."`
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/rolo/config.yaml"),
		".rolo/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ReplCmd runs the interactive session.
type ReplCmd struct {
	Plain  bool   `help:"Force plain line-loop output even if stdout is a TTY." default:"false"`
	Prompt string `help:"Override the input prompt."`
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run wires the session from config and launches the TUI or plain loop.
func (r *ReplCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("repl: %w", err)
	}

	// Apply CLI flag overrides.
	if r.Prompt != "" {
		cfg.UI.Prompt = r.Prompt
	}
	if r.Plain {
		cfg.UI.Plain = true
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("repl: %w", err)
	}

	d := command.NewDispatcher(book.New())

	if cfg.UI.Plain || !isTTY(os.Stdout) {
		s := session.New(d, session.Options{
			Prompt:   cfg.UI.Prompt,
			Greeting: cfg.UI.Greeting,
			Farewell: cfg.UI.Farewell,
		})
		return s.Run()
	}

	m := tui.NewModel(d, tui.Options{
		Prompt:   cfg.UI.Prompt,
		Greeting: cfg.UI.Greeting,
		Farewell: cfg.UI.Farewell,
	})
	prog := tea.NewProgram(m, tea.WithAltScreen())
	return r.run(prog)
}

// run executes the tea program, enabling testable wiring.
func (r *ReplCmd) run(prog teaRunner) error {
	_, err := prog.Run()
	return err
}

// ExecCmd dispatches one command line non-interactively, for scripting.
type ExecCmd struct {
	Tokens []string `arg:"" optional:"" help:"Command tokens, e.g.: add John 1234567890."`
}

// Run executes the exec command against a fresh book.
func (e *ExecCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	return e.run(os.Stdout, command.NewDispatcher(book.New()), cfg.UI.Farewell)
}

// run dispatches the joined tokens, enabling testable wiring.
func (e *ExecCmd) run(w io.Writer, d *command.Dispatcher, farewell string) error {
	res := d.Dispatch(strings.Join(e.Tokens, " "))
	if res.IsExit() {
		_, _ = fmt.Fprintln(w, farewell)
		return nil
	}
	_, _ = fmt.Fprintln(w, res.String())
	return nil
}

// DemoCmd replays a fixed conversation so the command surface can be
// seen end to end without typing.
type DemoCmd struct{}

// demoScript is the walkthrough: build up two contacts, list, edit,
// look up, delete, list again.
var demoScript = []string{
	"add John 1234567890",
	"add John 5555555555",
	"add Jane 9876543210",
	"all",
	"change John 1234567890 1112223333",
	"phone John",
	"delete Jane",
	"all",
}

// Run executes the demo command.
func (dc *DemoCmd) Run() error {
	return dc.run(os.Stdout)
}

// run replays the demo script against a fresh book, printing each turn.
func (dc *DemoCmd) run(w io.Writer) error {
	d := command.NewDispatcher(book.New())
	for _, line := range demoScript {
		res := d.Dispatch(line)
		_, _ = fmt.Fprintf(w, "%s%s\n%s\n", session.DefaultPrompt, line, res.String())
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
