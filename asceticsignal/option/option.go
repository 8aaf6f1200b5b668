package option

import (
	"fmt"
	"reflect"
)

// Option is a slot that either holds a value (Some) or is empty (Nothing).
// The zero value is Nothing.
type Option[T any] struct {
	val   T
	valid bool
}

// Some creates an Option holding the given value.
func Some[T any](val T) Option[T] {
	return Option[T]{val: val, valid: true}
}

// Nothing creates an empty Option.
func Nothing[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.valid
}

// IsNothing reports whether the Option is empty.
func (o Option[T]) IsNothing() bool {
	return !o.valid
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.valid
}

// Unwrap returns the held value.
// Panics if the Option is Nothing.
func (o Option[T]) Unwrap() T {
	if !o.valid {
		panic("called Unwrap on a Nothing Option")
	}
	return o.val
}

func (o Option[T]) UnwrapOr(def T) T {
	if o.valid {
		return o.val
	}
	return def
}

func (o Option[T]) UnwrapOrZero() T {
	return o.val
}

// String implements fmt.Stringer. Func values print as their type.
func (o Option[T]) String() string {
	if !o.valid {
		return "Nothing"
	}
	if v := reflect.ValueOf(o.val); v.IsValid() && v.Kind() == reflect.Func {
		return fmt.Sprintf("Some(%T)", o.val)
	}
	return fmt.Sprintf("Some(%v)", o.val)
}
