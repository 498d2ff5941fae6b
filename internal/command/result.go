package command

// Result is the tagged outcome of one dispatched command: either a
// display string or the exit marker. Every handler returns one, and the
// surrounding loop checks IsExit before printing.
type Result struct {
	text string
	exit bool
}

// Text wraps a display string in a Result.
func Text(s string) Result {
	return Result{text: s}
}

// Exit returns the distinguished exit marker.
func Exit() Result {
	return Result{exit: true}
}

// IsExit reports whether the result signals session termination.
func (r Result) IsExit() bool { return r.exit }

// String returns the display text. Empty for the exit marker.
func (r Result) String() string { return r.text }
