package selection

import "fmt"

// Error is a recoverable selection-engine failure: list-level
// operations that would otherwise return an empty result, or misuse
// such as an out-of-range capture index. Callers report Error() to the
// user and leave editor state unchanged; it is never a programming
// panic.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

// ErrNothingSelected is returned by SelectAllMatches/SplitSelections
// when a regex produces no usable result.
func ErrNothingSelected() error { return &Error{msg: "nothing selected"} }

// ErrInvalidCapture is returned when a capture index falls outside
// [0, mark_count] for the regex in use.
func ErrInvalidCapture() error { return &Error{msg: "invalid capture number"} }

// ErrNoMatches is returned by FindNextMatch when the pattern has no
// match anywhere in the buffer.
func ErrNoMatches(pattern string) error {
	return &Error{msg: fmt.Sprintf("'%s': no matches found", pattern)}
}
