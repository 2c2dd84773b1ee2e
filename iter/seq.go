package iter

import (
	stditer "iter"

	"github.com/Noelware/violet-go/option"
)

// SeqIter adapts a standard library range-over-func sequence into an
// [Iterator]. The wrapper is finite and single-pass, and it is never
// double-ended regardless of what produced the sequence.
type SeqIter[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

// FromSeq returns an iterator pulling from seq. The underlying
// coroutine is stopped when the sequence ends or when [SeqIter.Stop]
// is called, whichever comes first.
//
// Panics if seq is nil.
func FromSeq[T any](seq stditer.Seq[T]) *SeqIter[T] {
	if seq == nil {
		panic("iter: FromSeq requires a non-nil sequence")
	}
	next, stop := stditer.Pull(seq)
	return &SeqIter[T]{next: next, stop: stop}
}

// Next pulls the next value from the sequence.
func (it *SeqIter[T]) Next() option.Option[T] {
	if it.done {
		return option.None[T]()
	}
	v, ok := it.next()
	if !ok {
		it.Stop()
		return option.None[T]()
	}
	return option.Some(v)
}

// Stop releases the underlying coroutine early. The iterator yields
// None afterwards. Stop is idempotent and runs automatically when the
// sequence ends; call it when abandoning a partially consumed
// iterator.
func (it *SeqIter[T]) Stop() {
	if !it.done {
		it.done = true
		it.stop()
	}
}

// Values exposes an iterator as a standard library sequence usable
// with for-range:
//
//	for v := range iter.Values(it) { ... }
//
// Breaking out of the loop leaves the iterator where it stopped; it
// can be resumed afterwards.
func Values[T any](it Iterator[T]) stditer.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next().Get()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Pairs is [Values] for consumers that want the running index, pairing
// naturally with two-variable range loops:
//
//	for i, v := range iter.Pairs(it) { ... }
func Pairs[T any](it Iterator[T]) stditer.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		idx := 0
		for {
			v, ok := it.Next().Get()
			if !ok {
				return
			}
			if !yield(idx, v) {
				return
			}
			idx++
		}
	}
}
