// Package ono wraps errors with cause-chained stack traces.
// When one error wraps another, their stacks are stitched into a single
// trace: this package's own internal frames are stripped from the new
// error's stack, and the cause's stack is appended below it, so a reader
// sees only application frames followed by the full causal history.
//
// Stack text is computed lazily. Capturing program counters at wrap time
// is cheap; resolving and formatting them into text is not, so that cost
// is deferred until the stack is actually read.
package ono

import (
	"fmt"
	"io"
)

var _arena = newErrorArena(256)

func newOno(msg string, cause error) *onoError {
	e := _arena.take()
	e.msg = msg
	e.cause = cause

	// The raw stack keeps this package's own construction frames;
	// ExtendStack installs the accessor that strips them on read.
	pcs := captureStack()
	e.getStack = func() string {
		return formatStack(e.Error(), pcs)
	}
	ExtendStack(e, cause)
	return e
}

// onoError is an error carrying a lazily computed stack trace and an
// optional cause.
type onoError struct {
	msg      string
	cause    error
	getStack func() string
}

func (e *onoError) Error() string {
	switch {
	case e.msg == "" && e.cause != nil:
		return e.cause.Error()
	case e.cause != nil:
		return e.msg + ": " + e.cause.Error()
	default:
		return e.msg
	}
}

func (e *onoError) Unwrap() error {
	return e.cause
}

// Stack returns the error's stack trace,
// recomputed through the currently installed accessor on every call.
func (e *onoError) Stack() string {
	if e.getStack == nil {
		return ""
	}
	return e.getStack()
}

// StackAccessor returns the currently installed stack getter,
// so that a replacement accessor can delegate to it.
func (e *onoError) StackAccessor() func() string {
	return e.getStack
}

// DefineStack replaces the stack accessor. Last definition wins.
func (e *onoError) DefineStack(get func() string) {
	e.getStack = get
}

// SetStack replaces the stack with a fixed string.
func (e *onoError) SetStack(stack string) {
	e.getStack = func() string { return stack }
}

// Format renders the error message for %v, %s, and %q,
// and the full stitched stack trace for %+v.
func (e *onoError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			if stack := e.Stack(); stack != "" {
				_, _ = io.WriteString(s, stack)
				return
			}
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

// Format writes the stitched stack trace for target to the writer.
// If no error in target's chain carries a stack, nothing is written.
//
// An error is returned if the writer returns an error.
func Format(w io.Writer, target error) error {
	_, err := io.WriteString(w, FormatString(target))
	return err
}

// FormatString returns the stitched stack trace for target,
// or "" if no error in target's chain carries a stack.
func FormatString(target error) string {
	if like := nearestStack(target); like != nil {
		return like.Stack()
	}
	return ""
}

var _ interface { // Assert interface implementation.
	error
	ErrorLike
	StackDefiner
	StackWriter
	fmt.Formatter
} = (*onoError)(nil)
