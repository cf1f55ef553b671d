package ono

import (
	"fmt"
	"runtime"
	"strings"
)

// _maxDepth bounds stack capture. A conservative limit that keeps
// meaningful context without excessive work on exceptional paths.
const _maxDepth = 64

// Frame is a single frame in a stack trace.
type Frame struct {
	// Func is the fully qualified function name.
	Func string

	// File is the file inside which the function is defined.
	File string

	// Line is the line number inside the file.
	Line int
}

func (f Frame) String() string {
	return fmt.Sprintf("%s (%s:%d)", f.Func, f.File, f.Line)
}

// captureStack records the program counters of the current goroutine's
// stack. This package's own frames are intentionally kept: stripping
// them is the Joiner's job, done textually when the stack is read.
func captureStack() []uintptr {
	pcs := make([]uintptr, _maxDepth)
	// +2 skips runtime.Callers and captureStack itself.
	n := runtime.Callers(2, pcs)
	return pcs[:n]
}

// formatStack resolves captured program counters into text:
// a header line followed by one line per frame. This is the expensive
// step that lazy accessors defer until first read.
func formatStack(header string, pcs []uintptr) string {
	var sb strings.Builder
	sb.WriteString(header)
	if len(pcs) == 0 {
		return sb.String()
	}

	frames := runtime.CallersFrames(pcs)
	for {
		f, more := frames.Next()
		if f == (runtime.Frame{}) {
			break
		}

		sb.WriteByte('\n')
		sb.WriteString(Frame{Func: f.Function, File: f.File, Line: f.Line}.String())

		if !more {
			break
		}
	}
	return sb.String()
}
