package book

import (
	"fmt"
	"iter"
)

// NotFoundError indicates a referenced contact name is not in the book.
// It carries the attempted name so messages can quote it back.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Contact '%s' not found.", e.Name)
}

// AddressBook is the keyed collection of records for one session.
// Keys are exact name strings; enumeration follows first-insertion order
// even across overwrites. Not safe for concurrent use; the session
// mutates it synchronously from a single goroutine.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// New creates an empty AddressBook.
func New() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// Add inserts rec under its exact name, overwriting any prior record.
// An overwrite keeps the key's original enumeration position.
func (b *AddressBook) Add(rec *Record) {
	key := rec.Name()
	if _, exists := b.records[key]; !exists {
		b.order = append(b.order, key)
	}
	b.records[key] = rec
}

// Find returns the record for an exact, case-sensitive name match.
func (b *AddressBook) Find(name string) (*Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Delete removes the record under name. Reports whether one existed.
func (b *AddressBook) Delete(name string) bool {
	if _, ok := b.records[name]; !ok {
		return false
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of records in the book.
func (b *AddressBook) Len() int { return len(b.records) }

// All returns the (name, record) pairs in first-insertion order.
func (b *AddressBook) All() iter.Seq2[string, *Record] {
	return func(yield func(string, *Record) bool) {
		for _, key := range b.order {
			if !yield(key, b.records[key]) {
				return
			}
		}
	}
}
