package ono

import (
	"regexp"
	"strings"
)

// Process-wide immutable patterns, compiled once rather than per call.
var (
	// _newlinePattern splits a raw stack on any newline variant.
	_newlinePattern = regexp.MustCompile("\r\n|\r|\n")

	// _libraryCallPattern matches a frame line produced by this package's
	// own wrap machinery: the module token followed by a frame qualifier.
	_libraryCallPattern = regexp.MustCompile(`\bwighawag/ono[./ @]`)
)

// StripLibraryFrames removes this package's own call frames from a raw
// stack string.
//
// Only the first contiguous run of library frames is removed; later,
// non-contiguous runs elsewhere in the stack are left untouched. This is
// a deliberate trade-off against false positives in recursive or retry
// call stacks. If no library frame is found, or removal would leave
// nothing, the input is returned unchanged. Inputs are never mutated;
// the surviving lines are rejoined with "\n".
func StripLibraryFrames(raw string) string {
	if raw == "" {
		return ""
	}

	lines := _newlinePattern.Split(raw, -1)
	start := -1
	for i, line := range lines {
		if _libraryCallPattern.MatchString(line) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			// End of the first library run: drop [start, i) and stop.
			remaining := make([]string, 0, len(lines)-(i-start))
			remaining = append(remaining, lines[:start]...)
			remaining = append(remaining, lines[i:]...)
			return strings.Join(remaining, "\n")
		}
	}

	if start < 0 {
		return raw
	}

	// The run extends to the end of the stack.
	remaining := lines[:start]
	if len(remaining) == 0 {
		// Not expected in practice: a header line precedes library frames.
		return raw
	}
	return strings.Join(remaining, "\n")
}

// JoinStacks stitches the stacks of a new error and its cause into a
// single trace: the new error's stack with library frames stripped,
// a blank line, then the cause's stack verbatim (a cause's stack is
// assumed to be already clean). If either stack is absent the other is
// returned alone; if both are absent the result is "".
//
// originalError may be nil. Neither argument is mutated.
func JoinStacks(newError, originalError ErrorLike) string {
	return joinRawStacks(stackOf(newError), originalError)
}

// joinRawStacks is JoinStacks over an already-read raw new stack.
// The cause's stack is read at call time, so callers that defer this
// computation observe cause mutations on every read.
func joinRawStacks(raw string, originalError ErrorLike) string {
	newStack := StripLibraryFrames(raw)
	originalStack := stackOf(originalError)
	switch {
	case newStack != "" && originalStack != "":
		return newStack + "\n\n" + originalStack
	case newStack != "":
		return newStack
	default:
		return originalStack
	}
}

func stackOf(v ErrorLike) string {
	if v == nil {
		return ""
	}
	return v.Stack()
}

// RawStack adapts a plain stack string to ErrorLike.
type RawStack string

// Stack returns the string itself.
func (r RawStack) Stack() string { return string(r) }
