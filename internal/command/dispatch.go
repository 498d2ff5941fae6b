package command

import (
	"errors"
	"fmt"

	"github.com/smileynet/rolo/internal/book"
	"github.com/smileynet/rolo/internal/field"
)

// ErrMissingArgs indicates a handler received the wrong number of
// positional arguments. The message is rendered to the user verbatim.
var ErrMissingArgs = errors.New("Enter the argument for the command")

// Handler implements one command's behavior against the address book.
// It returns a Result or one of the closed error kinds (validation,
// not-found, missing-args); the dispatcher translates errors to text.
type Handler func(args []string, bk *book.AddressBook) (Result, error)

// Dispatcher maps command names to handlers and routes parsed lines to
// them against a single shared AddressBook. It is not safe for
// concurrent use; a session dispatches one line at a time.
type Dispatcher struct {
	handlers map[string]Handler
	book     *book.AddressBook
}

// NewDispatcher creates a Dispatcher with the built-in command set
// bound to bk.
func NewDispatcher(bk *book.AddressBook) *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[string]Handler),
		book:     bk,
	}

	d.Register("hello", handleHello)
	d.Register("add", handleAdd)
	d.Register("change", handleChange)
	d.Register("remove", handleRemove)
	d.Register("phone", handlePhone)
	d.Register("delete", handleDelete)
	d.Register("all", handleAll)
	d.Register("help", handleHelp)
	d.Register("exit", handleExit)
	d.Register("close", handleExit)
	d.Register("", handleEmpty)

	return d
}

// Register adds a named handler. Overwrites if name already exists.
// Panics if h is nil (programmer error).
func (d *Dispatcher) Register(name string, h Handler) {
	if h == nil {
		panic("command: Register called with nil handler")
	}
	d.handlers[name] = h
}

// Book returns the address book the dispatcher mutates.
func (d *Dispatcher) Book() *book.AddressBook { return d.book }

// Dispatch parses one raw line, invokes the matching handler, and
// returns its result. Every handler error is translated here into a
// single-line display string; no error escapes to the caller.
func (d *Dispatcher) Dispatch(line string) Result {
	tokens := Parse(line)
	cmd, args := tokens[0], tokens[1:]

	h, ok := d.handlers[cmd]
	if !ok {
		return Text(fmt.Sprintf("Unknown command: '%s'\n%s", cmd, HelpText))
	}

	res, err := h(args, d.book)
	if err != nil {
		return Text(translate(err))
	}
	return res
}

// translate converts the closed set of handler error kinds into
// user-facing strings. This is the only place errors become text.
func translate(err error) string {
	var verr *field.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	var nferr *book.NotFoundError
	if errors.As(err, &nferr) {
		return nferr.Error()
	}
	if errors.Is(err, ErrMissingArgs) {
		return ErrMissingArgs.Error()
	}
	return err.Error()
}
