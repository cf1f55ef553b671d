package ono

// BindLazyStack installs a deferred stack accessor on newError, replacing
// the one captured in the descriptor. Callers are expected to check
// IsLazy(d) first; with a nil descriptor or getter this is a no-op.
//
// With a cause, every read of the new accessor re-invokes the original
// getter, strips library frames from the result, and appends the cause's
// stack as read at that moment. The computation is deliberately not
// memoized: if originalError's stack changes between reads, the joined
// result changes with it.
//
// Without a cause, every read re-invokes the original getter and strips
// library frames from the result.
//
// Exactly one accessor is installed per call, and it overwrites any
// previously defined accessor (last definition wins). originalError is
// never mutated. If the original getter panics when invoked, the panic
// propagates unmodified to whoever read the stack.
func BindLazyStack(d *StackDescriptor, newError StackDefiner, originalError ErrorLike) {
	if d == nil || d.Get == nil || newError == nil {
		return
	}

	get := d.Get
	if originalError != nil {
		newError.DefineStack(func() string {
			return joinRawStacks(get(), originalError)
		})
		return
	}

	newError.DefineStack(func() string {
		return StripLibraryFrames(get())
	})
}
