// Package result provides Result[T, E], the outcome of a fallible
// operation: either a success value of type T or an error value of
// type E. Exactly one of the two is live at any moment.
//
// Construct values with [Ok] and [Err]; the distinct constructors make
// the variant unambiguous even when T and E are the same type:
//
//	r := result.Ok[int, string](42)
//	e := result.Err[int]("boom")
//
// A Result must be inspected: discarding one without calling
// [Result.IsOk], [Result.IsErr], [Result.Get] or one of the unwrapping
// observers loses the error. Accessing the wrong variant
// ([Result.Value] on an error, [Result.Error] on a success) is a
// programmer error and panics with a caller-annotated diagnostic.
//
// Operations that succeed without a payload use [Unit] as their success
// type; [OkUnit] constructs that variant.
//
// Cross-type transformations are free functions, because Go methods
// cannot introduce type parameters: [Map], [MapErr], [MapOr], [AndThen].
//
// The zero value of Result[T, E] is the error variant holding E's zero
// value.
package result

import (
	"fmt"
	"runtime"

	"github.com/Noelware/violet-go/option"
)

// Unit is the payload of operations that succeed without producing a
// value.
type Unit struct{}

// Result holds either a success value T or an error value E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok returns a success Result holding v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Err returns an error Result holding e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// OkUnit returns the payload-free success variant.
func OkUnit[E any]() Result[Unit, E] {
	return Ok[Unit, E](Unit{})
}

// IsOk reports whether the Result holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the Result holds an error value.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// IsOkAnd reports whether the Result holds a success value satisfying
// pred.
func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

// Get returns both payload slots along with which one is live. Only the
// slot matching ok is meaningful; the other is its type's zero value.
func (r Result[T, E]) Get() (value T, err E, ok bool) {
	return r.value, r.err, r.ok
}

// Value returns the success value.
//
// Calling Value on an error Result is a programmer error: it panics
// with a diagnostic naming the caller's file and line.
func (r Result[T, E]) Value() T {
	if !r.ok {
		misuse(fmt.Sprintf("Value called on an error Result (error: %v)", r.err))
	}
	return r.value
}

// Error returns the error value.
//
// Calling Error on a success Result is a programmer error: it panics
// with a diagnostic naming the caller's file and line.
func (r Result[T, E]) Error() E {
	if r.ok {
		misuse("Error called on a success Result")
	}
	return r.err
}

// Expect is like [Result.Value] but panics with msg instead of the
// generic diagnostic.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		misuse(fmt.Sprintf("%s (error: %v)", msg, r.err))
	}
	return r.value
}

// ValueOr returns the success value, or def when the Result is an
// error.
func (r Result[T, E]) ValueOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// ValueOrElse returns the success value, or fn(err) when the Result is
// an error.
func (r Result[T, E]) ValueOrElse(fn func(E) T) T {
	if !r.ok {
		return fn(r.err)
	}
	return r.value
}

// Ok converts the Result to an Option of the success value, dropping
// any error.
func (r Result[T, E]) Ok() option.Option[T] {
	if !r.ok {
		return option.None[T]()
	}
	return option.Some(r.value)
}

// Err converts the Result to an Option of the error value, dropping any
// success.
func (r Result[T, E]) Err() option.Option[E] {
	if r.ok {
		return option.None[E]()
	}
	return option.Some(r.err)
}

// Inspect calls fn with the success value when present and returns the
// Result unchanged.
func (r Result[T, E]) Inspect(fn func(T)) Result[T, E] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// InspectErr calls fn with the error value when present and returns the
// Result unchanged.
func (r Result[T, E]) InspectErr(fn func(E)) Result[T, E] {
	if !r.ok {
		fn(r.err)
	}
	return r
}

// String implements [fmt.Stringer].
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map applies fn to the success value, producing a Result of the new
// success type. An error passes through untouched and fn is not
// invoked.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return Ok[U, E](fn(r.value))
}

// MapErr applies fn to the error value, producing a Result of the new
// error type. A success passes through untouched.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T](fn(r.err))
}

// MapOr applies fn to the success value, or returns def when the Result
// is an error.
func MapOr[T, U, E any](r Result[T, E], def U, fn func(T) U) U {
	if !r.ok {
		return def
	}
	return fn(r.value)
}

// AndThen chains a fallible operation on the success value. An error
// short-circuits.
func AndThen[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return fn(r.value)
}

func misuse(msg string) {
	if _, file, line, ok := runtime.Caller(2); ok {
		panic(fmt.Sprintf("result: %s (%s:%d)", msg, file, line))
	}
	panic("result: " + msg)
}
