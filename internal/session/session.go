// Package session runs the plain read-parse-dispatch-print loop used
// when stdout is not a terminal (or plain mode is forced). The loop's
// only jobs are reading one line per turn and printing one block per
// turn; all command behavior lives in the command package.
package session

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/smileynet/rolo/internal/command"
)

// Default user-facing strings for the interactive loop.
const (
	DefaultPrompt   = "Enter a command: "
	DefaultGreeting = "Welcome to rolo. Type 'help' to see commands."
	DefaultFarewell = "Good bye!"
)

// Options configures a Session. Zero-value fields get defaults.
type Options struct {
	Input    io.Reader // Line source (default: os.Stdin).
	Output   io.Writer // Display destination (default: os.Stdout).
	Prompt   string
	Greeting string
	Farewell string
}

// Session is a plain interactive loop over a dispatcher.
type Session struct {
	in       io.Reader
	out      io.Writer
	d        *command.Dispatcher
	prompt   string
	greeting string
	farewell string
}

// New creates a Session bound to the given dispatcher.
func New(d *command.Dispatcher, opts Options) *Session {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}
	if opts.Greeting == "" {
		opts.Greeting = DefaultGreeting
	}
	if opts.Farewell == "" {
		opts.Farewell = DefaultFarewell
	}
	return &Session{
		in:       opts.Input,
		out:      opts.Output,
		d:        d,
		prompt:   opts.Prompt,
		greeting: opts.Greeting,
		farewell: opts.Farewell,
	}
}

// Run loops until the dispatcher signals exit or input is exhausted.
// Dispatch never surfaces an error; the only error Run can return is a
// read failure on the input source.
func (s *Session) Run() error {
	_, _ = fmt.Fprintln(s.out, s.greeting)

	scanner := bufio.NewScanner(s.in)
	for {
		_, _ = fmt.Fprint(s.out, s.prompt)

		if !scanner.Scan() {
			// End-of-input counts as a request to leave.
			_, _ = fmt.Fprintf(s.out, "\n%s\n", s.farewell)
			return scanner.Err()
		}

		res := s.d.Dispatch(scanner.Text())
		if res.IsExit() {
			_, _ = fmt.Fprintln(s.out, s.farewell)
			return nil
		}
		_, _ = fmt.Fprintln(s.out, res.String())
	}
}
