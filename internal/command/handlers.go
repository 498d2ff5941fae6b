package command

import (
	"strings"

	"github.com/smileynet/rolo/internal/book"
)

// Fixed replies for commands whose output never varies.
const (
	MsgGreeting     = "How can I help you?"
	MsgEmptyInput   = "Enter a command or type 'help'."
	MsgContactAdded = "Contact added."
	MsgPhoneAdded   = "Phone added to existing contact."
	MsgPhoneUpdated = "Phone updated."
	MsgOldNotFound  = "Old phone not found."
	MsgPhoneRemoved = "Phone removed."
	MsgPhoneMissing = "Phone not found."
	MsgDeleted      = "Contact deleted."
	MsgNotDeleted   = "Contact not found."
	MsgNoContacts   = "No contacts."
)

// HelpText lists the available commands.
const HelpText = `Available commands:
- hello — greeting
- add <name> <phone> — add a new contact or append phone
- change <name> <old_phone> <new_phone> — replace a phone in record
- remove <name> <phone> — remove a phone from record
- phone <name> — show all phones for contact
- delete <name> — delete contact record
- all — show all contacts
- help — show this message
- exit / close — quit`

// requireArgs enforces exact positional arity for argument-taking
// commands. Too many arguments is the same violation as too few.
func requireArgs(args []string, n int) error {
	if len(args) != n {
		return ErrMissingArgs
	}
	return nil
}

func handleHello(_ []string, _ *book.AddressBook) (Result, error) {
	return Text(MsgGreeting), nil
}

// handleAdd creates a record for a new name or appends a phone to an
// existing one.
func handleAdd(args []string, bk *book.AddressBook) (Result, error) {
	if err := requireArgs(args, 2); err != nil {
		return Result{}, err
	}
	name, phone := args[0], args[1]

	rec, ok := bk.Find(name)
	if !ok {
		rec, err := book.NewRecord(name)
		if err != nil {
			return Result{}, err
		}
		if err := rec.AddPhone(phone); err != nil {
			return Result{}, err
		}
		bk.Add(rec)
		return Text(MsgContactAdded), nil
	}

	if err := rec.AddPhone(phone); err != nil {
		return Result{}, err
	}
	return Text(MsgPhoneAdded), nil
}

// handleChange replaces a phone on an existing record. A missing
// contact is an error; a missing old phone is a plain reply.
func handleChange(args []string, bk *book.AddressBook) (Result, error) {
	if err := requireArgs(args, 3); err != nil {
		return Result{}, err
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	rec, ok := bk.Find(name)
	if !ok {
		return Result{}, &book.NotFoundError{Name: name}
	}

	changed, err := rec.EditPhone(oldPhone, newPhone)
	if err != nil {
		return Result{}, err
	}
	if !changed {
		return Text(MsgOldNotFound), nil
	}
	return Text(MsgPhoneUpdated), nil
}

func handleRemove(args []string, bk *book.AddressBook) (Result, error) {
	if err := requireArgs(args, 2); err != nil {
		return Result{}, err
	}
	name, phone := args[0], args[1]

	rec, ok := bk.Find(name)
	if !ok {
		return Result{}, &book.NotFoundError{Name: name}
	}

	if !rec.RemovePhone(phone) {
		return Text(MsgPhoneMissing), nil
	}
	return Text(MsgPhoneRemoved), nil
}

func handlePhone(args []string, bk *book.AddressBook) (Result, error) {
	if err := requireArgs(args, 1); err != nil {
		return Result{}, err
	}
	name := args[0]

	rec, ok := bk.Find(name)
	if !ok {
		return Result{}, &book.NotFoundError{Name: name}
	}
	return Text(rec.PhonesLine()), nil
}

func handleDelete(args []string, bk *book.AddressBook) (Result, error) {
	if err := requireArgs(args, 1); err != nil {
		return Result{}, err
	}
	if !bk.Delete(args[0]) {
		return Text(MsgNotDeleted), nil
	}
	return Text(MsgDeleted), nil
}

// handleAll lists every record, one per line, in enumeration order.
func handleAll(_ []string, bk *book.AddressBook) (Result, error) {
	if bk.Len() == 0 {
		return Text(MsgNoContacts), nil
	}
	var lines []string
	for _, rec := range bk.All() {
		lines = append(lines, rec.String())
	}
	return Text(strings.Join(lines, "\n")), nil
}

func handleHelp(_ []string, _ *book.AddressBook) (Result, error) {
	return Text(HelpText), nil
}

func handleExit(_ []string, _ *book.AddressBook) (Result, error) {
	return Exit(), nil
}

func handleEmpty(_ []string, _ *book.AddressBook) (Result, error) {
	return Text(MsgEmptyInput), nil
}
