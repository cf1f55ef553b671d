package ono

import "reflect"

// ErrorLike is the minimal structural contract for any value carrying an
// optional stack trace. An empty string means the stack is absent.
type ErrorLike interface {
	Stack() string
}

// StackWriter is implemented by values whose stack can be overwritten
// with a plain string.
type StackWriter interface {
	SetStack(stack string)
}

// StackDefiner is implemented by values whose stack accessor can be
// replaced wholesale. StackAccessor must return the currently installed
// getter so a replacement can delegate to it.
type StackDefiner interface {
	StackAccessor() func() string
	DefineStack(get func() string)
}

// StackDescriptor describes how a value exposes its stack trace.
// A nil *StackDescriptor means the value has no stack capability at all.
// Descriptors are read-only inputs; nothing in this package mutates them.
type StackDescriptor struct {
	// Configurable reports whether the accessor can be replaced.
	Configurable bool

	// Writable reports whether the stack is a plain assignable field.
	Writable bool

	// Get reads the current stack, or nil if unreadable.
	Get func() string

	// Set overwrites the stack, or nil if unwritable.
	Set func(stack string)
}

// Classification is the strategy for attaching a stitched stack to a value.
type Classification int

const (
	// Fixed: the stack can neither be replaced nor overwritten.
	Fixed Classification = iota

	// Writable: the stack is a plain value that can be overwritten,
	// or does not exist yet.
	Writable

	// Lazy: the stack is behind a replaceable accessor, so a deferred
	// getter can be installed in its place.
	Lazy
)

func (c Classification) String() string {
	switch c {
	case Lazy:
		return "Lazy"
	case Writable:
		return "Writable"
	default:
		return "Fixed"
	}
}

// IsLazy reports whether the described stack is computed behind a
// replaceable accessor. Absence of a setter does not disqualify laziness.
func IsLazy(d *StackDescriptor) bool {
	return d != nil && d.Configurable && d.Get != nil
}

// IsWritable reports whether the described stack can be overwritten.
// A nil descriptor is writable: the property does not exist yet and can
// therefore be freely created by whoever owns the value.
func IsWritable(d *StackDescriptor) bool {
	return d == nil || d.Writable || d.Set != nil
}

// Classify derives the attachment strategy from a descriptor.
// The result is computed fresh on every call; nothing is cached.
func Classify(d *StackDescriptor) Classification {
	switch {
	case IsLazy(d):
		return Lazy
	case IsWritable(d):
		return Writable
	default:
		return Fixed
	}
}

// DescribeStack probes a value for its stack capabilities and returns a
// descriptor, or nil if the value exposes no stack at all.
//
// Capabilities are detected in order of strength: a replaceable accessor
// (StackDefiner), then a getter (ErrorLike) and setter (StackWriter),
// then, by reflection, an exported `Stack string` struct field. For a
// StackDefiner the descriptor's Get is a snapshot of the accessor
// installed at probe time, not a live view, so a replacement accessor
// can safely delegate to it.
func DescribeStack(v any) *StackDescriptor {
	if v == nil {
		return nil
	}

	var d StackDescriptor
	found := false

	if def, ok := v.(StackDefiner); ok {
		d.Configurable = true
		d.Get = def.StackAccessor()
		found = true
	} else if like, ok := v.(ErrorLike); ok {
		d.Get = like.Stack
		found = true
	}
	if w, ok := v.(StackWriter); ok {
		d.Set = w.SetStack
		found = true
	}
	if found {
		return &d
	}

	return describeStackField(v)
}

// describeStackField is the reflection fallback for plain structs that
// carry their stack as an exported string field.
func describeStackField(v any) *StackDescriptor {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	field := rv.FieldByName("Stack")
	if !field.IsValid() || field.Kind() != reflect.String || !field.CanInterface() {
		return nil
	}

	d := &StackDescriptor{
		Get: func() string { return field.String() },
	}
	if field.CanSet() {
		d.Writable = true
		d.Set = func(stack string) { field.SetString(stack) }
	}
	return d
}
