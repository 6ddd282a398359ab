package result

import "fmt"

// Option is a value that is either present or absent. Absence is its own
// variant, so a present zero value is never confused with "no value".
type Option[T any] struct {
	value   T
	present bool
}

// Some returns a present Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsPresent reports whether o holds a value.
func (o Option[T]) IsPresent() bool {
	return o.present
}

// Get returns the held value and true, or the zero T and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the held value or fallback when absent.
func (o Option[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some[%v]", o.value)
}

// MapOption applies fn to a present value.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Some(fn(o.value))
}
