package book

import (
	"errors"
	"testing"

	"github.com/smileynet/rolo/internal/field"
)

func TestNewRecord(t *testing.T) {
	rec, err := NewRecord("  John ")
	if err != nil {
		t.Fatalf("NewRecord() error = %v", err)
	}
	if rec.Name() != "John" {
		t.Errorf("Name() = %q, want %q", rec.Name(), "John")
	}
	if len(rec.Phones()) != 0 {
		t.Errorf("new record should have no phones, got %d", len(rec.Phones()))
	}
}

func TestNewRecord_EmptyName(t *testing.T) {
	if _, err := NewRecord("   "); !errors.Is(err, field.ErrEmptyName) {
		t.Errorf("NewRecord(blank) error = %v, want ErrEmptyName", err)
	}
}

func TestRecord_AddPhone(t *testing.T) {
	rec, _ := NewRecord("John")

	if err := rec.AddPhone("123 456 7890"); err != nil {
		t.Fatalf("AddPhone() error = %v", err)
	}
	if err := rec.AddPhone("5555555555"); err != nil {
		t.Fatalf("AddPhone() error = %v", err)
	}
	// Duplicates are allowed.
	if err := rec.AddPhone("5555555555"); err != nil {
		t.Fatalf("AddPhone(duplicate) error = %v", err)
	}

	phones := rec.Phones()
	want := []string{"1234567890", "5555555555", "5555555555"}
	if len(phones) != len(want) {
		t.Fatalf("phone count = %d, want %d", len(phones), len(want))
	}
	for i, w := range want {
		if phones[i].String() != w {
			t.Errorf("phones[%d] = %q, want %q", i, phones[i].String(), w)
		}
	}
}

func TestRecord_AddPhone_Invalid(t *testing.T) {
	rec, _ := NewRecord("John")
	if err := rec.AddPhone("123"); !errors.Is(err, field.ErrPhoneLength) {
		t.Errorf("AddPhone(invalid) error = %v, want ErrPhoneLength", err)
	}
	if len(rec.Phones()) != 0 {
		t.Error("failed add should not change the phone list")
	}
}

func TestRecord_AddPhoneValue(t *testing.T) {
	rec, _ := NewRecord("John")
	p, _ := field.NewPhone("1234567890")
	rec.AddPhoneValue(p)
	if got := rec.Phones(); len(got) != 1 || !got[0].Equal(p) {
		t.Errorf("Phones() = %v, want [%s]", got, p)
	}
}

func TestRecord_FindPhone(t *testing.T) {
	rec, _ := NewRecord("John")
	_ = rec.AddPhone("1234567890")
	_ = rec.AddPhone("5555555555")

	tests := []struct {
		name  string
		key   string
		want  string
		found bool
	}{
		{name: "exact", key: "1234567890", want: "1234567890", found: true},
		{name: "dashed key matches", key: "123-456-7890", want: "1234567890", found: true},
		{name: "spaced key matches", key: "555 555 5555", want: "5555555555", found: true},
		{name: "absent", key: "9999999999"},
		{name: "non-conforming key matches nothing", key: "123"},
		{name: "empty key", key: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := rec.FindPhone(tt.key)
			if ok != tt.found {
				t.Fatalf("FindPhone(%q) found = %v, want %v", tt.key, ok, tt.found)
			}
			if tt.found && p.String() != tt.want {
				t.Errorf("FindPhone(%q) = %q, want %q", tt.key, p.String(), tt.want)
			}
		})
	}
}

func TestRecord_FindPhone_FirstMatch(t *testing.T) {
	rec, _ := NewRecord("John")
	_ = rec.AddPhone("1234567890")
	_ = rec.AddPhone("1234567890")

	if !rec.RemovePhone("1234567890") {
		t.Fatal("RemovePhone() = false, want true")
	}
	if got := len(rec.Phones()); got != 1 {
		t.Errorf("phone count after removing first match = %d, want 1", got)
	}
}

func TestRecord_RemovePhone(t *testing.T) {
	rec, _ := NewRecord("John")
	_ = rec.AddPhone("1234567890")
	_ = rec.AddPhone("5555555555")

	if !rec.RemovePhone("123-456-7890") {
		t.Fatal("RemovePhone(formatted key) = false, want true")
	}
	phones := rec.Phones()
	if len(phones) != 1 || phones[0].String() != "5555555555" {
		t.Errorf("phones after remove = %v, want [5555555555]", phones)
	}

	if rec.RemovePhone("9999999999") {
		t.Error("RemovePhone(never added) = true, want false")
	}
	if len(rec.Phones()) != 1 {
		t.Error("failed remove should not change the phone list")
	}
}

func TestRecord_EditPhone(t *testing.T) {
	rec, _ := NewRecord("John")
	_ = rec.AddPhone("1234567890")
	_ = rec.AddPhone("5555555555")

	ok, err := rec.EditPhone("1234567890", "111 222 3333")
	if err != nil {
		t.Fatalf("EditPhone() error = %v", err)
	}
	if !ok {
		t.Fatal("EditPhone() = false, want true")
	}

	phones := rec.Phones()
	if phones[0].String() != "1112223333" {
		t.Errorf("phones[0] = %q, want %q (position preserved)", phones[0].String(), "1112223333")
	}
	if phones[1].String() != "5555555555" {
		t.Errorf("phones[1] = %q, want %q", phones[1].String(), "5555555555")
	}
}

func TestRecord_EditPhone_OldAbsent(t *testing.T) {
	rec, _ := NewRecord("John")
	_ = rec.AddPhone("1234567890")

	ok, err := rec.EditPhone("9999999999", "1112223333")
	if err != nil {
		t.Fatalf("EditPhone(absent) error = %v, want nil", err)
	}
	if ok {
		t.Error("EditPhone(absent) = true, want false")
	}
	if got := rec.Phones()[0].String(); got != "1234567890" {
		t.Errorf("phones unchanged check: got %q, want %q", got, "1234567890")
	}
}

func TestRecord_EditPhone_InvalidNew(t *testing.T) {
	rec, _ := NewRecord("John")
	_ = rec.AddPhone("1234567890")

	ok, err := rec.EditPhone("1234567890", "123")
	if !errors.Is(err, field.ErrPhoneLength) {
		t.Fatalf("EditPhone(invalid new) error = %v, want ErrPhoneLength", err)
	}
	if ok {
		t.Error("EditPhone(invalid new) = true, want false")
	}
	if got := rec.Phones()[0].String(); got != "1234567890" {
		t.Errorf("target phone = %q, want prior value %q (no partial mutation)", got, "1234567890")
	}
}

func TestRecord_String(t *testing.T) {
	rec, _ := NewRecord("John")
	_ = rec.AddPhone("1112223333")
	_ = rec.AddPhone("5555555555")

	want := "Contact name: John, phones: 1112223333; 5555555555"
	if got := rec.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRecord_String_NoPhones(t *testing.T) {
	rec, _ := NewRecord("John")
	want := "Contact name: John, phones: —"
	if got := rec.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
