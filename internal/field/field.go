// Package field defines the validated value types a contact record is
// built from. Values are constructed through validating constructors and
// are never mutated in place; a replacement goes through the same
// validation as construction.
package field

import "strings"

// ValidationError reports a value that violates a field invariant.
// The message is user-facing and rendered verbatim by the command layer.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// Sentinel validation failures for caller-checkable conditions.
var (
	ErrEmptyName   = &ValidationError{msg: "Name cannot be empty."}
	ErrPhoneLength = &ValidationError{msg: "Phone must contain exactly 10 digits."}
)

// Name is a contact's identifier: non-empty after trimming, immutable.
type Name struct {
	value string
}

// NewName validates and constructs a Name from raw input.
// The stored value is the whitespace-trimmed string.
func NewName(raw string) (Name, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: cleaned}, nil
}

// String returns the trimmed name text. It doubles as the address book key.
func (n Name) String() string { return n.value }

// Phone is a phone number normalized to exactly 10 digits.
type Phone struct {
	value string
}

// Normalize strips everything but digit characters from raw.
// It never fails; length validation belongs to the caller.
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NewPhone validates and constructs a Phone from raw input.
// The stored value is exactly the digit-only projection of raw.
func NewPhone(raw string) (Phone, error) {
	digits := Normalize(raw)
	if len(digits) != 10 {
		return Phone{}, ErrPhoneLength
	}
	return Phone{value: digits}, nil
}

// With returns a new Phone holding the validated replacement value.
// The receiver is unchanged; validation is identical to NewPhone.
func (p Phone) With(raw string) (Phone, error) {
	return NewPhone(raw)
}

// Equal reports whether two phones hold the same normalized value.
func (p Phone) Equal(other Phone) bool { return p.value == other.value }

// String returns the normalized 10-digit value.
func (p Phone) String() string { return p.value }
