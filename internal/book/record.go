// Package book holds the in-memory contact model: a Record is one named
// contact with an ordered list of validated phones, and an AddressBook is
// the session's keyed collection of records.
package book

import (
	"fmt"
	"strings"

	"github.com/smileynet/rolo/internal/field"
)

// emptyPhones is rendered when a record has no phone numbers.
const emptyPhones = "—"

// Record is one contact: an immutable name plus an ordered phone list.
// Insertion order is preserved and duplicates are permitted.
type Record struct {
	name   field.Name
	phones []field.Phone
}

// NewRecord constructs a Record for the given raw name.
func NewRecord(name string) (*Record, error) {
	n, err := field.NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the record's name text.
func (r *Record) Name() string { return r.name.String() }

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []field.Phone {
	return append([]field.Phone(nil), r.phones...)
}

// AddPhone validates raw and appends it to the phone list.
func (r *Record) AddPhone(raw string) error {
	p, err := field.NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// AddPhoneValue appends an already-validated Phone.
func (r *Record) AddPhoneValue(p field.Phone) {
	r.phones = append(r.phones, p)
}

// FindPhone returns the first phone whose normalized value matches raw.
// A search key that does not normalize to 10 digits matches nothing.
func (r *Record) FindPhone(raw string) (field.Phone, bool) {
	if i := r.indexOf(raw); i >= 0 {
		return r.phones[i], true
	}
	return field.Phone{}, false
}

// RemovePhone removes the first phone matching raw.
// Reports whether a phone was removed.
func (r *Record) RemovePhone(raw string) bool {
	i := r.indexOf(raw)
	if i < 0 {
		return false
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return true
}

// EditPhone replaces the first phone matching oldRaw with newRaw,
// keeping its position. An absent oldRaw returns (false, nil) with no
// side effects; an invalid newRaw returns a validation error and leaves
// the prior value intact. The two outcomes are distinct on purpose.
func (r *Record) EditPhone(oldRaw, newRaw string) (bool, error) {
	i := r.indexOf(oldRaw)
	if i < 0 {
		return false, nil
	}
	replacement, err := r.phones[i].With(newRaw)
	if err != nil {
		return false, err
	}
	r.phones[i] = replacement
	return true, nil
}

// indexOf returns the position of the first phone matching raw, or -1.
func (r *Record) indexOf(raw string) int {
	key, err := field.NewPhone(raw)
	if err != nil {
		return -1
	}
	for i, p := range r.phones {
		if p.Equal(key) {
			return i
		}
	}
	return -1
}

// PhonesLine joins the phone values with "; ", or the placeholder when empty.
func (r *Record) PhonesLine() string {
	if len(r.phones) == 0 {
		return emptyPhones
	}
	parts := make([]string, len(r.phones))
	for i, p := range r.phones {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; ")
}

// String renders the record as a single display line.
func (r *Record) String() string {
	return fmt.Sprintf("Contact name: %s, phones: %s", r.Name(), r.PhonesLine())
}
