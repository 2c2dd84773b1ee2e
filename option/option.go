// Package option provides Option[T], a container holding either nothing
// or exactly one value of type T.
//
// The zero value of Option[T] is None. Construct values with [Some],
// [None], [FromPtr] or [FromGet]:
//
//	a := option.Some(42)
//	b := option.None[int]()
//
// Observers never mutate:
//
//   - [Option.IsSome] / [Option.IsNone]: which variant is live.
//   - [Option.Get]: the idiomatic (value, ok) pair.
//   - [Option.Value]: the value; panics with a caller-annotated
//     diagnostic when called on None.
//   - [Option.ValueOr] / [Option.ValueOrElse] / [Option.ValueOrZero]:
//     the value with a fallback.
//
// Mutators use pointer receivers:
//
//   - [Option.Take]: moves the value out, leaving None behind.
//   - [Option.Replace]: stores a new value, discarding any old one.
//   - [Option.Reset]: clears to None.
//
// Transformations that change the element type are free functions,
// because Go methods cannot introduce type parameters: [Map], [MapOr],
// [AndThen].
package option

import (
	"fmt"
	"runtime"
)

// Option holds either nothing or exactly one T. The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns Some(*p) when p is non-nil and None otherwise. The
// pointee is copied; the Option does not alias p.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromGet adapts the conventional (value, ok) pair, as returned by map
// indexing or type assertions, into an Option.
func FromGet[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// IsSomeAnd reports whether the Option holds a value satisfying pred.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.some && pred(o.value)
}

// Get returns the value and whether it is present. When the Option is
// None the returned value is the zero T.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Value returns the contained value.
//
// Calling Value on a None is a programmer error: it panics with a
// diagnostic naming the caller's file and line.
func (o Option[T]) Value() T {
	if !o.some {
		misuse("Value called on a None Option")
	}
	return o.value
}

// Expect is like [Option.Value] but panics with msg instead of the
// generic diagnostic.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		misuse(msg)
	}
	return o.value
}

// ValueOr returns the contained value, or def when None.
func (o Option[T]) ValueOr(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

// ValueOrElse returns the contained value, or fn() when None. fn is
// only invoked when needed.
func (o Option[T]) ValueOrElse(fn func() T) T {
	if !o.some {
		return fn()
	}
	return o.value
}

// ValueOrZero returns the contained value, or the zero T when None.
func (o Option[T]) ValueOrZero() T {
	return o.value
}

// Inspect calls fn with the contained value when present and returns
// the Option unchanged.
func (o Option[T]) Inspect(fn func(T)) Option[T] {
	if o.some {
		fn(o.value)
	}
	return o
}

// Filter returns the Option unchanged when it holds a value satisfying
// pred, and None otherwise.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// Or returns the Option when it holds a value and other otherwise.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// OrElse returns the Option when it holds a value and fn() otherwise.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return fn()
}

// Take moves the value out of the Option, leaving None behind. It
// returns what the Option held before the call.
func (o *Option[T]) Take() Option[T] {
	prev := *o
	*o = None[T]()
	return prev
}

// TakeIf is [Option.Take] gated on pred: the value is moved out only
// when present and satisfying pred.
func (o *Option[T]) TakeIf(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o.Take()
	}
	return None[T]()
}

// Replace stores v in the Option, discarding any previous value, and
// returns a pointer to the stored value.
func (o *Option[T]) Replace(v T) *T {
	*o = Some(v)
	return &o.value
}

// GetOrInsert returns a pointer to the contained value, first storing v
// when the Option is None.
func (o *Option[T]) GetOrInsert(v T) *T {
	if !o.some {
		*o = Some(v)
	}
	return &o.value
}

// Reset clears the Option to None.
func (o *Option[T]) Reset() {
	*o = None[T]()
}

// Ptr returns a pointer to the contained value, or nil when None. The
// pointer aliases the Option's storage.
func (o *Option[T]) Ptr() *T {
	if !o.some {
		return nil
	}
	return &o.value
}

// String implements [fmt.Stringer].
func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies fn to the contained value, producing an Option of the
// result. A None maps to None and fn is not invoked.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(fn(o.value))
}

// MapOr applies fn to the contained value, or returns def when None.
func MapOr[T, U any](o Option[T], def U, fn func(T) U) U {
	if !o.some {
		return def
	}
	return fn(o.value)
}

// AndThen applies fn to the contained value and flattens the result. A
// None short-circuits to None.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return fn(o.value)
}

// Equal reports whether two Options are equal: both None, or both Some
// with equal values.
func Equal[T comparable](a, b Option[T]) bool {
	if a.some != b.some {
		return false
	}
	return !a.some || a.value == b.value
}

// Contains reports whether the Option holds exactly v.
func Contains[T comparable](o Option[T], v T) bool {
	return o.some && o.value == v
}

// misuse panics with msg annotated with the caller of the exported
// entry point two frames up.
func misuse(msg string) {
	if _, file, line, ok := runtime.Caller(2); ok {
		panic(fmt.Sprintf("option: %s (%s:%d)", msg, file, line))
	}
	panic("option: " + msg)
}
