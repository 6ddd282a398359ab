package convert

import "github.com/thoreinstein/validation/pkg/result"

// Converter validates and converts a raw field value. name is the field
// name used in error messages.
type Converter[In, Out, E any] func(value In, name string) result.Result[E, Out]

// AndThen runs first and, if it succeeds, feeds its output and the same
// field name into second. An error from first is returned as is.
func AndThen[In, Mid, Out, E any](first Converter[In, Mid, E], second Converter[Mid, Out, E]) Converter[In, Out, E] {
	return func(value In, name string) result.Result[E, Out] {
		return result.FlatMap(first(value, name), func(mid Mid) result.Result[E, Out] {
			return second(mid, name)
		})
	}
}

// Lift turns an infallible transformation into a converter.
func Lift[In, Out any](fn func(In) Out) Converter[In, Out, string] {
	return func(value In, _ string) result.Result[string, Out] {
		return result.Success[string](fn(value))
	}
}

// Identity accepts every value unchanged.
func Identity[T any]() Converter[T, T, string] {
	return func(value T, _ string) result.Result[string, T] {
		return result.Success[string](value)
	}
}
