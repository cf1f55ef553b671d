package ono

import (
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// stackTracer is the stack-carrying interface of github.com/pkg/errors.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// pkgStack adapts a pkg/errors-style error to ErrorLike by rendering its
// program counters into stack text. Rendering happens on every read, so
// the adapter stays as lazy as a native stack.
type pkgStack struct {
	err error
	st  stackTracer
}

func (p pkgStack) Stack() string {
	var sb strings.Builder
	sb.WriteString(p.err.Error())
	for _, f := range p.st.StackTrace() {
		// pkg/errors renders %+v as "func\n\tfile:line".
		fmt.Fprintf(&sb, "\n%+v", f)
	}
	return sb.String()
}
