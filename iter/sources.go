package iter

import (
	"context"
	"unicode/utf8"

	"github.com/Noelware/violet-go/option"
)

// SliceIter is a double-ended, exactly-sized iterator over a slice.
type SliceIter[T any] struct {
	s           []T
	front, back int
}

// FromSlice returns an iterator over the elements of s. The slice is
// not copied; mutating it during iteration is visible to the iterator.
func FromSlice[T any](s []T) *SliceIter[T] {
	return &SliceIter[T]{s: s, back: len(s)}
}

// Next yields the next element from the front.
func (it *SliceIter[T]) Next() option.Option[T] {
	if it.front >= it.back {
		return option.None[T]()
	}
	v := it.s[it.front]
	it.front++
	return option.Some(v)
}

// NextBack yields the next element from the back.
func (it *SliceIter[T]) NextBack() option.Option[T] {
	if it.front >= it.back {
		return option.None[T]()
	}
	it.back--
	return option.Some(it.s[it.back])
}

// SizeHint reports the exact number of elements left.
func (it *SliceIter[T]) SizeHint() SizeHint {
	return Exact(uint(it.back - it.front))
}

// RangeIter is a double-ended, exactly-sized iterator over a half-open
// integer interval.
type RangeIter struct {
	lo, hi int
}

// Range returns an iterator yielding lo, lo+1, ..., hi-1. An empty
// interval (hi <= lo) yields nothing.
func Range(lo, hi int) *RangeIter {
	if hi < lo {
		hi = lo
	}
	return &RangeIter{lo: lo, hi: hi}
}

// Next yields the next integer from the low end.
func (it *RangeIter) Next() option.Option[int] {
	if it.lo >= it.hi {
		return option.None[int]()
	}
	v := it.lo
	it.lo++
	return option.Some(v)
}

// NextBack yields the next integer from the high end.
func (it *RangeIter) NextBack() option.Option[int] {
	if it.lo >= it.hi {
		return option.None[int]()
	}
	it.hi--
	return option.Some(it.hi)
}

// SizeHint reports the exact number of integers left.
func (it *RangeIter) SizeHint() SizeHint {
	return Exact(uint(it.hi - it.lo))
}

// StringIter is a double-ended iterator over the runes of a string.
// Invalid UTF-8 surfaces as utf8.RuneError, one per invalid byte, the
// same way a for-range loop over the string would report it.
type StringIter struct {
	s string
}

// OfString returns an iterator over the runes of s.
func OfString(s string) *StringIter {
	return &StringIter{s: s}
}

// Next yields the next rune from the front.
func (it *StringIter) Next() option.Option[rune] {
	if len(it.s) == 0 {
		return option.None[rune]()
	}
	r, size := utf8.DecodeRuneInString(it.s)
	it.s = it.s[size:]
	return option.Some(r)
}

// NextBack yields the next rune from the back.
func (it *StringIter) NextBack() option.Option[rune] {
	if len(it.s) == 0 {
		return option.None[rune]()
	}
	r, size := utf8.DecodeLastRuneInString(it.s)
	it.s = it.s[:len(it.s)-size]
	return option.Some(r)
}

// SizeHint bounds the remaining rune count by the remaining byte count:
// a rune occupies between one and four bytes.
func (it *StringIter) SizeHint() SizeHint {
	n := uint(len(it.s))
	return SizeHint{Low: (n + 3) / 4, High: option.Some(n)}
}

// ChanIter yields values received from a channel.
type ChanIter[T any] struct {
	ctx context.Context
	ch  <-chan T
}

// FromChan returns an iterator that receives from ch until the channel
// is closed or ctx is cancelled; either event ends the sequence. A nil
// channel yields nothing.
func FromChan[T any](ctx context.Context, ch <-chan T) *ChanIter[T] {
	return &ChanIter[T]{ctx: ctx, ch: ch}
}

// Next receives the next value, unblocking on cancellation.
func (it *ChanIter[T]) Next() option.Option[T] {
	if it.ch == nil {
		return option.None[T]()
	}
	select {
	case <-it.ctx.Done():
		it.ch = nil
		return option.None[T]()
	case v, ok := <-it.ch:
		if !ok {
			it.ch = nil
			return option.None[T]()
		}
		return option.Some(v)
	}
}

// FuncIter adapts a pull function into an iterator.
type FuncIter[T any] struct {
	fn   func() option.Option[T]
	done bool
}

// FromFunc returns an iterator that calls fn for each pull. After the
// first None the function is not called again.
//
// Panics if fn is nil.
func FromFunc[T any](fn func() option.Option[T]) *FuncIter[T] {
	if fn == nil {
		panic("iter: FromFunc requires a non-nil pull function")
	}
	return &FuncIter[T]{fn: fn}
}

// Next pulls the next value from the function.
func (it *FuncIter[T]) Next() option.Option[T] {
	if it.done {
		return option.None[T]()
	}
	v := it.fn()
	if v.IsNone() {
		it.done = true
	}
	return v
}

// EmptyIter yields nothing.
type EmptyIter[T any] struct{}

// Empty returns an iterator that is exhausted from the start.
func Empty[T any]() EmptyIter[T] {
	return EmptyIter[T]{}
}

// Next always yields None.
func (EmptyIter[T]) Next() option.Option[T] {
	return option.None[T]()
}

// NextBack always yields None.
func (EmptyIter[T]) NextBack() option.Option[T] {
	return option.None[T]()
}

// SizeHint reports an exact length of zero.
func (EmptyIter[T]) SizeHint() SizeHint {
	return Exact(0)
}

// OnceIter yields a single value.
type OnceIter[T any] struct {
	v option.Option[T]
}

// Once returns an iterator yielding v exactly once.
func Once[T any](v T) *OnceIter[T] {
	return &OnceIter[T]{v: option.Some(v)}
}

// Next yields the value on the first pull and None afterwards.
func (it *OnceIter[T]) Next() option.Option[T] {
	return it.v.Take()
}

// NextBack yields the value on the first pull and None afterwards.
func (it *OnceIter[T]) NextBack() option.Option[T] {
	return it.v.Take()
}

// SizeHint reports the exact remaining length, one or zero.
func (it *OnceIter[T]) SizeHint() SizeHint {
	if it.v.IsSome() {
		return Exact(1)
	}
	return Exact(0)
}

// RepeatIter yields the same value forever.
type RepeatIter[T any] struct {
	v T
}

// Repeat returns an endless iterator yielding v. Bound it with [Take]
// before using an exhausting consumer.
func Repeat[T any](v T) *RepeatIter[T] {
	return &RepeatIter[T]{v: v}
}

// Next yields the value, always.
func (it *RepeatIter[T]) Next() option.Option[T] {
	return option.Some(it.v)
}

// NextBack yields the value, always; both ends of an endless constant
// sequence look the same.
func (it *RepeatIter[T]) NextBack() option.Option[T] {
	return option.Some(it.v)
}

// SizeHint reports an unbounded length.
func (it *RepeatIter[T]) SizeHint() SizeHint {
	return SizeHint{Low: maxLen, High: option.None[uint]()}
}

// maxLen is the saturation bound for length arithmetic.
const maxLen = ^uint(0)
