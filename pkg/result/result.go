package result

import (
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"
)

// ErrInvalidStateAccess marks the panic raised when a payload is read from
// the wrong variant.
var ErrInvalidStateAccess = errors.New("invalid state access")

// Result is either a success carrying S or an error carrying E.
// The zero value is an error carrying the zero E.
type Result[E, S any] struct {
	value   S
	err     E
	success bool
}

// Success creates a successful result.
func Success[E, S any](value S) Result[E, S] {
	return Result[E, S]{value: value, success: true}
}

// Error creates a failed result.
func Error[E, S any](err E) Result[E, S] {
	return Result[E, S]{err: err}
}

// Of converts a conventional (value, error) pair into a Result.
func Of[S any](value S, err error) Result[error, S] {
	if err != nil {
		return Error[error, S](err)
	}
	return Success[error](value)
}

// IsSuccess reports whether r holds a success value.
func (r Result[E, S]) IsSuccess() bool {
	return r.success
}

// IsError reports whether r holds an error value.
func (r Result[E, S]) IsError() bool {
	return !r.success
}

// Value returns the success payload.
// It panics with ErrInvalidStateAccess if r is an error.
func (r Result[E, S]) Value() S {
	if !r.success {
		panic(invalidAccess("success value", "error"))
	}
	return r.value
}

// Err returns the error payload.
// It panics with ErrInvalidStateAccess if r is a success.
func (r Result[E, S]) Err() E {
	if r.success {
		panic(invalidAccess("error value", "success"))
	}
	return r.err
}

// Get returns the success payload and true, or the zero S and false.
func (r Result[E, S]) Get() (S, bool) {
	if !r.success {
		var zero S
		return zero, false
	}
	return r.value, true
}

// GetErr returns the error payload and true, or the zero E and false.
func (r Result[E, S]) GetErr() (E, bool) {
	if r.success {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Filter keeps a success whose value satisfies predicate. A success that
// fails the predicate becomes an error built by errFn. Errors pass through.
func (r Result[E, S]) Filter(predicate func(S) bool, errFn func() E) Result[E, S] {
	if !r.success {
		return r
	}
	if predicate(r.value) {
		return r
	}
	return Error[E, S](errFn())
}

// Compose combines two results of the same type. The receiver wins when it
// is an error; other is not inspected in that case.
func (r Result[E, S]) Compose(other Result[E, S], combine func(S, S) S) Result[E, S] {
	if !r.success {
		return r
	}
	if !other.success {
		return other
	}
	return Success[E](combine(r.value, other.value))
}

// OrElse returns r if it is a success, otherwise other.
func (r Result[E, S]) OrElse(other Result[E, S]) Result[E, S] {
	return r.OrElseGet(func() Result[E, S] { return other })
}

// OrElseGet returns r if it is a success, otherwise the result of fn.
// fn is only called for errors.
func (r Result[E, S]) OrElseGet(fn func() Result[E, S]) Result[E, S] {
	if r.success {
		return r
	}
	return fn()
}

// ToOptional drops the error variant. A success holding a nil pointer, map,
// slice, func, channel or interface is reported as absent; every other
// value, zero values included, is present.
func (r Result[E, S]) ToOptional() Option[S] {
	if !r.success || isNil(r.value) {
		return None[S]()
	}
	return Some(r.value)
}

// String renders r as Success[value] or Error[err].
func (r Result[E, S]) String() string {
	if r.success {
		return fmt.Sprintf("Success[%v]", r.value)
	}
	return fmt.Sprintf("Error[%v]", r.err)
}

// Map applies fn to the success value. Errors pass through unchanged.
func Map[E, S, T any](r Result[E, S], fn func(S) T) Result[E, T] {
	return FlatMap(r, func(s S) Result[E, T] {
		return Success[E](fn(s))
	})
}

// FlatMap sequences a dependent fallible computation. fn is not called
// when r is an error.
func FlatMap[E, S, T any](r Result[E, S], fn func(S) Result[E, T]) Result[E, T] {
	if !r.success {
		return Error[E, T](r.err)
	}
	return fn(r.value)
}

// MapError applies fn to the error value. Successes pass through unchanged.
func MapError[E, F, S any](r Result[E, S], fn func(E) F) Result[F, S] {
	if r.success {
		return Success[F](r.value)
	}
	return Error[F, S](fn(r.err))
}

func invalidAccess(want, variant string) error {
	return errors.WithAssertionFailure(
		errors.Wrapf(ErrInvalidStateAccess, "%s requested from %s result", errors.Safe(want), errors.Safe(variant)),
	)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
