package ono_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wighawag/ono"
)

// fieldError carries its stack as a plain exported field, the shape the
// reflection probe exists for.
type fieldError struct {
	msg   string
	Stack string
}

func (e *fieldError) Error() string { return e.msg }

// fixedError exposes a getter only: its stack can be read but neither
// replaced nor overwritten.
type fixedError struct {
	msg   string
	stack string
}

func (e *fixedError) Error() string { return e.msg }
func (e *fixedError) Stack() string { return e.stack }

func TestIsLazy(t *testing.T) {
	get := func() string { return "" }

	tests := []struct {
		name string
		d    *ono.StackDescriptor
		want bool
	}{
		{"configurable with getter", &ono.StackDescriptor{Configurable: true, Get: get}, true},
		{"not configurable", &ono.StackDescriptor{Configurable: false, Get: get}, false},
		{"configurable without getter", &ono.StackDescriptor{Configurable: true}, false},
		{"nil descriptor", nil, false},
		{"setter does not disqualify", &ono.StackDescriptor{Configurable: true, Get: get, Set: func(string) {}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ono.IsLazy(tt.d))
		})
	}
}

func TestIsWritable(t *testing.T) {
	tests := []struct {
		name string
		d    *ono.StackDescriptor
		want bool
	}{
		{"nil descriptor", nil, true},
		{"not writable", &ono.StackDescriptor{Writable: false}, false},
		{"writable", &ono.StackDescriptor{Writable: true}, true},
		{"setter present", &ono.StackDescriptor{Set: func(string) {}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ono.IsWritable(tt.d))
		})
	}
}

func TestClassify(t *testing.T) {
	get := func() string { return "" }

	assert.Equal(t, ono.Lazy, ono.Classify(&ono.StackDescriptor{Configurable: true, Get: get}))
	assert.Equal(t, ono.Writable, ono.Classify(nil))
	assert.Equal(t, ono.Writable, ono.Classify(&ono.StackDescriptor{Set: func(string) {}}))
	assert.Equal(t, ono.Fixed, ono.Classify(&ono.StackDescriptor{Get: get}))

	assert.Equal(t, "Lazy", ono.Lazy.String())
	assert.Equal(t, "Writable", ono.Writable.String())
	assert.Equal(t, "Fixed", ono.Fixed.String())
}

func TestDescribeStack_WrappedError(t *testing.T) {
	err := ono.New("boom")

	d := ono.DescribeStack(err)
	require.NotNil(t, d)
	assert.True(t, ono.IsLazy(d))
	assert.Equal(t, ono.Lazy, ono.Classify(d))
	assert.NotNil(t, d.Set)
}

func TestDescribeStack_StructField(t *testing.T) {
	fe := &fieldError{msg: "boom", Stack: "initial"}

	d := ono.DescribeStack(fe)
	require.NotNil(t, d)
	assert.Equal(t, ono.Writable, ono.Classify(d))
	require.NotNil(t, d.Get)
	assert.Equal(t, "initial", d.Get())

	require.NotNil(t, d.Set)
	d.Set("replaced")
	assert.Equal(t, "replaced", fe.Stack)
}

func TestDescribeStack_ValueStructIsFixed(t *testing.T) {
	// A struct passed by value cannot be written through; its descriptor
	// still reads, but classifies Fixed.
	d := ono.DescribeStack(fieldError{msg: "boom", Stack: "s"})
	require.NotNil(t, d)
	require.NotNil(t, d.Get)
	assert.Equal(t, "s", d.Get())
	assert.Nil(t, d.Set)
	assert.Equal(t, ono.Fixed, ono.Classify(d))
}

func TestDescribeStack_GetterOnly(t *testing.T) {
	d := ono.DescribeStack(&fixedError{msg: "boom", stack: "s"})
	require.NotNil(t, d)
	assert.False(t, ono.IsLazy(d))
	assert.Equal(t, ono.Fixed, ono.Classify(d))
}

func TestDescribeStack_NoCapability(t *testing.T) {
	assert.Nil(t, ono.DescribeStack(errors.New("plain")))
	assert.Nil(t, ono.DescribeStack(nil))
	assert.Nil(t, ono.DescribeStack((*fieldError)(nil)))
	assert.Nil(t, ono.DescribeStack(42))
}
