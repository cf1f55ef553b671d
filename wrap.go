package ono

import "fmt"

// Wrap returns an error whose stack trace is stitched with err's:
// the new stack with this package's frames stripped, then err's stack
// appended below it. The message is err's own.
// If err is nil, Wrap returns nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return newOno("", err)
}

// Wrapf is like [Wrap] with a formatted message prepended,
// so the result formats as "msg: cause".
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return newOno(fmt.Sprintf(format, args...), err)
}

// New returns an error that formats as the given text, similar to
// `errors.New`, with a lazily computed stack trace attached.
func New(text string) error {
	return newOno(text, nil)
}

// Errorf formats according to a format specifier and returns the string
// as a value that satisfies error, similar to `fmt.Errorf`, with a lazily
// computed stack trace attached.
//
// The %w verb is supported; a wrapped error's stack, if any, is stitched
// below the new one.
func Errorf(format string, args ...any) error {
	return newOno("", fmt.Errorf(format, args...))
}

// ExtendStack stitches originalError's stack history onto newError,
// choosing a strategy from newError's stack capabilities:
//
//   - Lazy: a deferred accessor is installed via [BindLazyStack];
//     stripping and joining happen on every read.
//   - Writable: the joined stack is computed eagerly and written through
//     the setter. A value with no stack capability at all classifies as
//     Writable, but Go cannot create a field on a foreign value, so there
//     is nothing to write through and the value is left untouched.
//   - Fixed: the value is left untouched.
//
// originalError may be nil, in which case only library-frame stripping
// applies. originalError is never mutated.
func ExtendStack(newError any, originalError error) {
	d := DescribeStack(newError)
	original := nearestStack(originalError)

	switch Classify(d) {
	case Lazy:
		if def, ok := newError.(StackDefiner); ok {
			BindLazyStack(d, def, original)
		}
	case Writable:
		if d != nil && d.Set != nil {
			raw := ""
			if d.Get != nil {
				raw = d.Get()
			}
			d.Set(joinRawStacks(raw, original))
		}
	}
}
