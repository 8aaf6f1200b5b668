package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		o := Some(42)
		assert.True(t, o.IsSome())
		assert.False(t, o.IsNothing())
		assert.Equal(t, 42, o.Unwrap())
	})

	t.Run("zero value is valid", func(t *testing.T) {
		o := Some(0)
		assert.True(t, o.IsSome())
		assert.Equal(t, 0, o.Unwrap())
	})

	t.Run("nil func is valid", func(t *testing.T) {
		var f func(int)
		o := Some(f)
		assert.True(t, o.IsSome())
		assert.Nil(t, o.Unwrap())
	})
}

func TestNothing(t *testing.T) {
	t.Run("constructor", func(t *testing.T) {
		o := Nothing[int]()
		assert.True(t, o.IsNothing())
		assert.False(t, o.IsSome())
	})

	t.Run("zero value", func(t *testing.T) {
		var o Option[func(string)]
		assert.True(t, o.IsNothing())
	})
}

func TestGet(t *testing.T) {
	t.Run("some", func(t *testing.T) {
		v, ok := Some("hello").Get()
		assert.True(t, ok)
		assert.Equal(t, "hello", v)
	})

	t.Run("nothing", func(t *testing.T) {
		v, ok := Nothing[string]().Get()
		assert.False(t, ok)
		assert.Equal(t, "", v)
	})
}

func TestUnwrap(t *testing.T) {
	t.Run("some returns value", func(t *testing.T) {
		assert.Equal(t, 42, Some(42).Unwrap())
	})

	t.Run("nothing panics", func(t *testing.T) {
		assert.PanicsWithValue(t, "called Unwrap on a Nothing Option", func() {
			Nothing[int]().Unwrap()
		})
	})
}

func TestUnwrapOr(t *testing.T) {
	assert.Equal(t, 42, Some(42).UnwrapOr(0))
	assert.Equal(t, 99, Nothing[int]().UnwrapOr(99))
}

func TestUnwrapOrZero(t *testing.T) {
	assert.Equal(t, 42, Some(42).UnwrapOrZero())
	assert.Equal(t, 0, Nothing[int]().UnwrapOrZero())
	assert.Nil(t, Nothing[func()]().UnwrapOrZero())
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"some int", Some(42).String(), "Some(42)"},
		{"some string", Some("hello").String(), "Some(hello)"},
		{"some func", Some(func(int, string) {}).String(), "Some(func(int, string))"},
		{"nothing", Nothing[int]().String(), "Nothing"},
		{"nothing func", Nothing[func()]().String(), "Nothing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}
