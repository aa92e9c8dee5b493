package umd

import "fmt"

// Invariant panics with an *InvariantError if ok is false. Used for
// checks that indicate a bug in the caller rather than a rejected
// gesture.
func Invariant(ok bool, where, format string, args ...any) {
	if ok {
		return
	}
	panic(&InvariantError{
		Where: where,
		What:  fmt.Sprintf(format, args...),
	})
}

// InvariantError describes a violated internal expectation.
type InvariantError struct {
	Where string
	What  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: invariant violated: %s", e.Where, e.What)
}
