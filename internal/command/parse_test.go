package command

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "command only", line: "all", want: []string{"all"}},
		{name: "command lowercased", line: "ADD John 1234567890", want: []string{"add", "John", "1234567890"}},
		{name: "arguments stay literal", line: "add JOHN 1234567890", want: []string{"add", "JOHN", "1234567890"}},
		{name: "collapses runs of whitespace", line: "  add   John\t1234567890 ", want: []string{"add", "John", "1234567890"}},
		{name: "empty line", line: "", want: []string{""}},
		{name: "whitespace only", line: " \t  ", want: []string{""}},
		{name: "no quoting", line: `add "John Smith" 123`, want: []string{"add", `"John`, `Smith"`, "123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.line)
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.line, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Parse(%q)[%d] = %q, want %q", tt.line, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestResult(t *testing.T) {
	r := Text("hi")
	if r.IsExit() {
		t.Error("Text result should not be exit")
	}
	if r.String() != "hi" {
		t.Errorf("String() = %q, want %q", r.String(), "hi")
	}

	e := Exit()
	if !e.IsExit() {
		t.Error("Exit result should be exit")
	}
	if e.String() != "" {
		t.Errorf("exit String() = %q, want empty", e.String())
	}
}
