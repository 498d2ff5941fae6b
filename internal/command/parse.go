// Package command turns raw input lines into address book mutations.
// It owns the line parser, the handler registry, and the single point
// where model errors are translated into user-facing strings.
package command

import "strings"

// Parse splits a raw input line into a command token plus arguments.
// The first token is lowercased; the rest are literal (no quoting).
// An empty or whitespace-only line yields the empty command with no
// arguments rather than an error.
func Parse(line string) []string {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return []string{""}
	}
	tokens[0] = strings.ToLower(tokens[0])
	return tokens
}
