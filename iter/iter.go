// Package iter provides lazy, pull-based iteration with composable
// adapters and consuming combinators.
//
// A source is anything implementing [Iterator]: a single Next method
// returning an [option.Option] that is Some while items remain and None
// thereafter. Sources that can also be pulled from the tail implement
// [DoubleEnded]; sources that know how many items remain implement
// [SizeHinter]. Both extras are discovered by type assertion, so a
// plain Next is all a user-defined source needs.
//
// Adapters wrap an upstream iterator and are themselves iterators; each
// pulls the upstream only on demand:
//
//   - [Map], [Filter], [FilterMap]: transform or drop items.
//   - [Take], [Skip]: bound or offset the sequence.
//   - [Peekable]: look at the next item without consuming it.
//   - [Enumerate]: pair each item with its running index.
//   - [Inspect]: observe items as they pass through.
//
// Consumers drive a source to exhaustion or to a short-circuit:
//
//   - [Fold], [RFold], [Count], [Last], [ForEach]
//   - [AdvanceBy], [Nth]
//   - [Position], [Find], [FindMap], [Any], [All]
//   - [Collect], [CollectWith], [CollectInto]
//
// Sources for common shapes: [FromSlice], [Range], [OfString],
// [FromChan], [FromFunc], [Empty], [Once], [Repeat]. [FromSeq] and
// [Values] bridge to the standard library's range-over-func sequences
// in both directions:
//
//	evens := iter.Filter(iter.Range(1, 21), func(n int) bool { return n%2 == 0 })
//	for v := range iter.Values(iter.Take(iter.Map(evens, square), 3)) {
//	    fmt.Println(v) // 4, 16, 36
//	}
//
// Iterator chains are single-goroutine: an adapter owns its upstream
// and nothing in this package synchronises. Once a source returns None
// no standard adapter polls it again.
package iter

import "github.com/Noelware/violet-go/option"

// Iterator is a lazy source of items. Next returns Some while items
// remain and None once the source is exhausted. Adapters never poll
// past the first None.
type Iterator[T any] interface {
	Next() option.Option[T]
}

// DoubleEnded is an Iterator that can also be pulled from the tail.
// Next and NextBack advance from opposite ends of the same sequence and
// together never yield more items than the sequence holds.
type DoubleEnded[T any] interface {
	Iterator[T]
	NextBack() option.Option[T]
}

// SizeHint bounds the number of items an iterator has left: at least
// Low, and when High is Some, at most that. The zero value (0, None)
// is the hint of an iterator that knows nothing about itself.
type SizeHint struct {
	Low  uint
	High option.Option[uint]
}

// Exact returns the hint of an iterator with exactly n items left.
func Exact(n uint) SizeHint {
	return SizeHint{Low: n, High: option.Some(n)}
}

// SizeHinter is implemented by iterators that can bound their remaining
// length. Use [HintOf] to query an arbitrary iterator.
type SizeHinter interface {
	SizeHint() SizeHint
}

// Pair holds an index alongside an item, as produced by [Enumerate].
type Pair[T any] struct {
	Index uint
	Value T
}

// HintOf returns it's size hint when it implements [SizeHinter], and
// the unknowing (0, None) hint otherwise.
func HintOf[T any](it Iterator[T]) SizeHint {
	if h, ok := it.(SizeHinter); ok {
		return h.SizeHint()
	}
	return SizeHint{}
}

// asDoubleEnded reports whether the iterator supports tail pulls.
func asDoubleEnded[T any](it Iterator[T]) (DoubleEnded[T], bool) {
	de, ok := it.(DoubleEnded[T])
	return de, ok
}

// exactLen returns the remaining length of an exactly-sized iterator.
func exactLen[T any](it Iterator[T]) (uint, bool) {
	hint := HintOf(it)
	high, ok := hint.High.Get()
	if !ok || high != hint.Low {
		return 0, false
	}
	return hint.Low, true
}

func satSub(a, b uint) uint {
	if a < b {
		return 0
	}
	return a - b
}
