package ono

// nearestStack walks err's cause chain and returns the first error that
// can expose a stack, or nil if none can. The stack itself is not read
// here: reads stay deferred to whoever reads the stitched stack, so a
// lazily computed cause stack is never forced at wrap time.
//
// At each level, a native ErrorLike is preferred; an error carrying
// program counters in the style of github.com/pkg/errors is bridged via
// pkgStack. Multi-errors (Unwrap() []error) are not traversed: a cause
// chain is a single path.
func nearestStack(err error) ErrorLike {
	for current := err; current != nil; current = unwrapOnce(current) {
		if like, ok := current.(ErrorLike); ok {
			return like
		}
		if st, ok := current.(stackTracer); ok {
			return pkgStack{err: current, st: st}
		}
	}
	return nil
}

// unwrapOnce accesses the direct cause of the error if any, otherwise
// returns nil.
//
// It supports both errors implementing causer (`Cause()` method, from
// github.com/pkg/errors) and `Wrapper` (`Unwrap()` method, from the
// Go 2 error proposal).
func unwrapOnce(err error) error {
	switch e := err.(type) {
	case interface{ Cause() error }:
		return e.Cause()
	case interface{ Unwrap() error }:
		return e.Unwrap()
	}

	return nil
}
