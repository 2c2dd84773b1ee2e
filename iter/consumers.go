package iter

import (
	"github.com/Noelware/violet-go/option"
	"github.com/Noelware/violet-go/result"
)

// Fold drives the iterator to exhaustion, threading an accumulator
// left-to-right: acc = fn(acc, item) for every item, returning the
// final accumulator.
//
// Panics if it or fn is nil.
func Fold[T, A any](it Iterator[T], init A, fn func(A, T) A) A {
	if it == nil {
		panic("iter: Fold requires a non-nil iterator")
	}
	if fn == nil {
		panic("iter: Fold requires a non-nil accumulator")
	}
	acc := init
	for {
		v, ok := it.Next().Get()
		if !ok {
			return acc
		}
		acc = fn(acc, v)
	}
}

// RFold is [Fold] pulling from the back: the accumulator visits items
// in reverse order. It requires a double-ended iterator.
//
// Panics if it or fn is nil.
func RFold[T, A any](it DoubleEnded[T], init A, fn func(A, T) A) A {
	if it == nil {
		panic("iter: RFold requires a non-nil iterator")
	}
	if fn == nil {
		panic("iter: RFold requires a non-nil accumulator")
	}
	acc := init
	for {
		v, ok := it.NextBack().Get()
		if !ok {
			return acc
		}
		acc = fn(acc, v)
	}
}

// Count drives the iterator to exhaustion and returns how many items it
// yielded.
func Count[T any](it Iterator[T]) uint {
	n := uint(0)
	for it.Next().IsSome() {
		n++
	}
	return n
}

// Last drives the iterator to exhaustion and returns the final item, or
// None when the iterator was already exhausted.
func Last[T any](it Iterator[T]) option.Option[T] {
	last := option.None[T]()
	for {
		v := it.Next()
		if v.IsNone() {
			return last
		}
		last = v
	}
}

// ForEach drives the iterator to exhaustion, calling fn on every item.
//
// Panics if fn is nil.
func ForEach[T any](it Iterator[T], fn func(T)) {
	if fn == nil {
		panic("iter: ForEach requires a non-nil callback")
	}
	for {
		v, ok := it.Next().Get()
		if !ok {
			return
		}
		fn(v)
	}
}

// AdvanceBy pulls and discards up to n items. It returns a success
// when all n were available, and otherwise an error carrying how many
// items the iterator actually yielded before ending.
func AdvanceBy[T any](it Iterator[T], n uint) result.Result[result.Unit, uint] {
	for i := uint(0); i < n; i++ {
		if it.Next().IsNone() {
			return result.Err[result.Unit](i)
		}
	}
	return result.OkUnit[uint]()
}

// Nth skips n items and returns the one after them: Nth(it, 0) is the
// next item. Returns None when the iterator ends first.
func Nth[T any](it Iterator[T], n uint) option.Option[T] {
	if AdvanceBy(it, n).IsErr() {
		return option.None[T]()
	}
	return it.Next()
}

// Position returns the index of the first item satisfying pred, or
// None when no item does. Items up to and including the match are
// consumed.
//
// Panics if pred is nil.
func Position[T any](it Iterator[T], pred func(T) bool) option.Option[uint] {
	if pred == nil {
		panic("iter: Position requires a non-nil predicate")
	}
	idx := uint(0)
	for {
		v, ok := it.Next().Get()
		if !ok {
			return option.None[uint]()
		}
		if pred(v) {
			return option.Some(idx)
		}
		idx++
	}
}

// Find returns the first item satisfying pred, or None when no item
// does. Items up to and including the match are consumed.
//
// Panics if pred is nil.
func Find[T any](it Iterator[T], pred func(T) bool) option.Option[T] {
	if pred == nil {
		panic("iter: Find requires a non-nil predicate")
	}
	for {
		v, ok := it.Next().Get()
		if !ok {
			return option.None[T]()
		}
		if pred(v) {
			return option.Some(v)
		}
	}
}

// FindMap returns the first Some produced by fn, or None when fn
// rejects every item.
//
// Panics if fn is nil.
func FindMap[T, U any](it Iterator[T], fn func(T) option.Option[U]) option.Option[U] {
	if fn == nil {
		panic("iter: FindMap requires a non-nil function")
	}
	for {
		v, ok := it.Next().Get()
		if !ok {
			return option.None[U]()
		}
		if u, ok := fn(v).Get(); ok {
			return option.Some(u)
		}
	}
}

// Any reports whether some item satisfies pred, short-circuiting at the
// first match.
//
// Panics if pred is nil.
func Any[T any](it Iterator[T], pred func(T) bool) bool {
	return Find(it, pred).IsSome()
}

// All reports whether every item satisfies pred, short-circuiting at
// the first failure. An exhausted iterator satisfies All vacuously.
//
// Panics if pred is nil.
func All[T any](it Iterator[T], pred func(T) bool) bool {
	if pred == nil {
		panic("iter: All requires a non-nil predicate")
	}
	return !Any(it, func(v T) bool { return !pred(v) })
}

// Collect drives the iterator to exhaustion and returns its items as a
// slice, pre-sizing from the iterator's lower size bound. An exhausted
// iterator collects to an empty, non-nil slice.
func Collect[T any](it Iterator[T]) []T {
	out := make([]T, 0, HintOf(it).Low)
	for {
		v, ok := it.Next().Get()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// CollectWith appends the iterator's items to dst and returns the
// extended slice.
func CollectWith[T any](it Iterator[T], dst []T) []T {
	for {
		v, ok := it.Next().Get()
		if !ok {
			return dst
		}
		dst = append(dst, v)
	}
}

// CollectInto fills dst from the iterator and returns how many
// elements were written. When the iterator yields more items than dst
// holds the extras stay unpulled: the iterator is never polled past
// the item that fills the last slot.
func CollectInto[T any](it Iterator[T], dst []T) int {
	for i := range dst {
		v, ok := it.Next().Get()
		if !ok {
			return i
		}
		dst[i] = v
	}
	return len(dst)
}
