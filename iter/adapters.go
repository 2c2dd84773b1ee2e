package iter

import "github.com/Noelware/violet-go/option"

// MapIter lazily applies a function to every item of an upstream
// iterator. It is double-ended when the upstream is.
type MapIter[T, U any] struct {
	it Iterator[T]
	de DoubleEnded[T] // nil when the upstream is single-ended
	fn func(T) U
}

// Map returns an iterator yielding fn applied to each upstream item.
// fn runs exactly once per item pulled.
//
// Panics if it or fn is nil.
func Map[T, U any](it Iterator[T], fn func(T) U) *MapIter[T, U] {
	if it == nil {
		panic("iter: Map requires a non-nil upstream")
	}
	if fn == nil {
		panic("iter: Map requires a non-nil function")
	}
	de, _ := asDoubleEnded(it)
	return &MapIter[T, U]{it: it, de: de, fn: fn}
}

// Next pulls the next upstream item and applies the function.
func (m *MapIter[T, U]) Next() option.Option[U] {
	if v, ok := m.it.Next().Get(); ok {
		return option.Some(m.fn(v))
	}
	return option.None[U]()
}

// NextBack pulls the next upstream item from the back and applies the
// function. Panics when the upstream is single-ended.
func (m *MapIter[T, U]) NextBack() option.Option[U] {
	if m.de == nil {
		panic("iter: NextBack on Map over a single-ended upstream")
	}
	if v, ok := m.de.NextBack().Get(); ok {
		return option.Some(m.fn(v))
	}
	return option.None[U]()
}

// SizeHint is the upstream hint: mapping changes items, not their
// count.
func (m *MapIter[T, U]) SizeHint() SizeHint {
	return HintOf(m.it)
}

// FilterIter lazily drops upstream items that fail a predicate.
type FilterIter[T any] struct {
	it   Iterator[T]
	de   DoubleEnded[T]
	pred func(T) bool
}

// Filter returns an iterator yielding only the upstream items for
// which pred returns true.
//
// Panics if it or pred is nil.
func Filter[T any](it Iterator[T], pred func(T) bool) *FilterIter[T] {
	if it == nil {
		panic("iter: Filter requires a non-nil upstream")
	}
	if pred == nil {
		panic("iter: Filter requires a non-nil predicate")
	}
	de, _ := asDoubleEnded(it)
	return &FilterIter[T]{it: it, de: de, pred: pred}
}

// Next pulls upstream items until one satisfies the predicate or the
// upstream ends.
func (f *FilterIter[T]) Next() option.Option[T] {
	for {
		v, ok := f.it.Next().Get()
		if !ok {
			return option.None[T]()
		}
		if f.pred(v) {
			return option.Some(v)
		}
	}
}

// NextBack is [FilterIter.Next] from the back. Panics when the
// upstream is single-ended.
func (f *FilterIter[T]) NextBack() option.Option[T] {
	if f.de == nil {
		panic("iter: NextBack on Filter over a single-ended upstream")
	}
	for {
		v, ok := f.de.NextBack().Get()
		if !ok {
			return option.None[T]()
		}
		if f.pred(v) {
			return option.Some(v)
		}
	}
}

// SizeHint keeps the upstream upper bound; the predicate may drop
// everything, so the lower bound is zero.
func (f *FilterIter[T]) SizeHint() SizeHint {
	return SizeHint{Low: 0, High: HintOf(f.it).High}
}

// FilterMapIter lazily combines filtering and mapping in one pass.
type FilterMapIter[T, U any] struct {
	it Iterator[T]
	de DoubleEnded[T]
	fn func(T) option.Option[U]
}

// FilterMap returns an iterator yielding the Some results of fn,
// skipping the items for which fn returns None.
//
// Panics if it or fn is nil.
func FilterMap[T, U any](it Iterator[T], fn func(T) option.Option[U]) *FilterMapIter[T, U] {
	if it == nil {
		panic("iter: FilterMap requires a non-nil upstream")
	}
	if fn == nil {
		panic("iter: FilterMap requires a non-nil function")
	}
	de, _ := asDoubleEnded(it)
	return &FilterMapIter[T, U]{it: it, de: de, fn: fn}
}

// Next pulls upstream items until fn produces a Some or the upstream
// ends.
func (f *FilterMapIter[T, U]) Next() option.Option[U] {
	for {
		v, ok := f.it.Next().Get()
		if !ok {
			return option.None[U]()
		}
		if u, ok := f.fn(v).Get(); ok {
			return option.Some(u)
		}
	}
}

// NextBack is [FilterMapIter.Next] from the back. Panics when the
// upstream is single-ended.
func (f *FilterMapIter[T, U]) NextBack() option.Option[U] {
	if f.de == nil {
		panic("iter: NextBack on FilterMap over a single-ended upstream")
	}
	for {
		v, ok := f.de.NextBack().Get()
		if !ok {
			return option.None[U]()
		}
		if u, ok := f.fn(v).Get(); ok {
			return option.Some(u)
		}
	}
}

// SizeHint keeps the upstream upper bound with a zero lower bound.
func (f *FilterMapIter[T, U]) SizeHint() SizeHint {
	return SizeHint{Low: 0, High: HintOf(f.it).High}
}

// TakeIter yields at most a fixed number of upstream items.
type TakeIter[T any] struct {
	it        Iterator[T]
	de        DoubleEnded[T]
	remaining uint
}

// Take returns an iterator yielding the first n upstream items. The
// upstream is never pulled past the n-th item.
//
// Panics if it is nil.
func Take[T any](it Iterator[T], n uint) *TakeIter[T] {
	if it == nil {
		panic("iter: Take requires a non-nil upstream")
	}
	de, _ := asDoubleEnded(it)
	return &TakeIter[T]{it: it, de: de, remaining: n}
}

// Next forwards the next upstream item while the budget lasts.
func (t *TakeIter[T]) Next() option.Option[T] {
	if t.remaining == 0 {
		return option.None[T]()
	}
	t.remaining--
	v := t.it.Next()
	if v.IsNone() {
		t.remaining = 0
	}
	return v
}

// NextBack yields the last item inside the take window. It needs to
// know where the window ends, so the upstream must be double-ended and
// exactly sized; panics otherwise.
func (t *TakeIter[T]) NextBack() option.Option[T] {
	if t.de == nil {
		panic("iter: NextBack on Take over a single-ended upstream")
	}
	if t.remaining == 0 {
		return option.None[T]()
	}
	n, ok := exactLen(t.it)
	if !ok {
		panic("iter: NextBack on Take requires an exactly sized upstream")
	}
	// Discard the upstream tail that lies beyond the window.
	for n > t.remaining {
		if t.de.NextBack().IsNone() {
			t.remaining = 0
			return option.None[T]()
		}
		n--
	}
	t.remaining--
	v := t.de.NextBack()
	if v.IsNone() {
		t.remaining = 0
	}
	return v
}

// SizeHint clamps the upstream hint to the remaining budget.
func (t *TakeIter[T]) SizeHint() SizeHint {
	hint := HintOf(t.it)
	low := min(hint.Low, t.remaining)
	high := t.remaining
	if h, ok := hint.High.Get(); ok && h < high {
		high = h
	}
	return SizeHint{Low: low, High: option.Some(high)}
}

// SkipIter drops a fixed number of leading upstream items.
type SkipIter[T any] struct {
	it      Iterator[T]
	de      DoubleEnded[T]
	n       uint
	skipped bool
}

// Skip returns an iterator that discards the first n upstream items on
// the first pull and forwards the rest.
//
// Panics if it is nil.
func Skip[T any](it Iterator[T], n uint) *SkipIter[T] {
	if it == nil {
		panic("iter: Skip requires a non-nil upstream")
	}
	de, _ := asDoubleEnded(it)
	return &SkipIter[T]{it: it, de: de, n: n}
}

// Next discards the skipped prefix on the first call, then forwards.
func (s *SkipIter[T]) Next() option.Option[T] {
	if !s.skipped {
		s.skipped = true
		for i := uint(0); i < s.n; i++ {
			if s.it.Next().IsNone() {
				return option.None[T]()
			}
		}
	}
	return s.it.Next()
}

// NextBack yields from the back, stopping before the skipped prefix
// would surface. The upstream must be double-ended and exactly sized;
// panics otherwise.
func (s *SkipIter[T]) NextBack() option.Option[T] {
	if s.de == nil {
		panic("iter: NextBack on Skip over a single-ended upstream")
	}
	n, ok := exactLen(s.it)
	if !ok {
		panic("iter: NextBack on Skip requires an exactly sized upstream")
	}
	pending := uint(0)
	if !s.skipped {
		pending = s.n
	}
	if n <= pending {
		return option.None[T]()
	}
	return s.de.NextBack()
}

// SizeHint shifts the upstream hint down by the pending skip.
func (s *SkipIter[T]) SizeHint() SizeHint {
	hint := HintOf(s.it)
	if s.skipped {
		return hint
	}
	return SizeHint{
		Low:  satSub(hint.Low, s.n),
		High: option.Map(hint.High, func(h uint) uint { return satSub(h, s.n) }),
	}
}

// PeekIter caches at most one upstream item so it can be observed
// before it is consumed.
type PeekIter[T any] struct {
	it Iterator[T]
	// peeked is Some once a pull has been cached; the inner Option
	// records what that pull returned, including an upstream None.
	peeked option.Option[option.Option[T]]
}

// Peekable wraps it so the next item can be inspected via
// [PeekIter.Peek] without advancing.
//
// Panics if it is nil.
func Peekable[T any](it Iterator[T]) *PeekIter[T] {
	if it == nil {
		panic("iter: Peekable requires a non-nil upstream")
	}
	return &PeekIter[T]{it: it}
}

// Peek returns what the next call to [PeekIter.Next] will return,
// without consuming it. Consecutive peeks yield the same value; the
// upstream is pulled at most once per cached item.
func (p *PeekIter[T]) Peek() option.Option[T] {
	if cached, ok := p.peeked.Get(); ok {
		return cached
	}
	cached := p.it.Next()
	p.peeked = option.Some(cached)
	return cached
}

// Next yields the cached item when one exists, pulling the upstream
// otherwise.
func (p *PeekIter[T]) Next() option.Option[T] {
	if cached, ok := p.peeked.Take().Get(); ok {
		return cached
	}
	return p.it.Next()
}

// SizeHint is the upstream hint adjusted for the cached item.
func (p *PeekIter[T]) SizeHint() SizeHint {
	cached, ok := p.peeked.Get()
	if !ok {
		return HintOf(p.it)
	}
	if cached.IsNone() {
		return Exact(0)
	}
	hint := HintOf(p.it)
	if hint.Low < maxLen {
		hint.Low++
	}
	hint.High = option.Map(hint.High, func(h uint) uint {
		if h < maxLen {
			h++
		}
		return h
	})
	return hint
}

// EnumerateIter pairs each upstream item with its running index.
type EnumerateIter[T any] struct {
	it  Iterator[T]
	idx uint
}

// Enumerate returns an iterator yielding [Pair] values whose indices
// count pulled items starting at 0.
//
// Panics if it is nil.
func Enumerate[T any](it Iterator[T]) *EnumerateIter[T] {
	if it == nil {
		panic("iter: Enumerate requires a non-nil upstream")
	}
	return &EnumerateIter[T]{it: it}
}

// Next yields the next upstream item paired with its index.
func (e *EnumerateIter[T]) Next() option.Option[Pair[T]] {
	v, ok := e.it.Next().Get()
	if !ok {
		return option.None[Pair[T]]()
	}
	idx := e.idx
	e.idx++
	return option.Some(Pair[T]{Index: idx, Value: v})
}

// SizeHint is the upstream hint: indexing changes items, not their
// count.
func (e *EnumerateIter[T]) SizeHint() SizeHint {
	return HintOf(e.it)
}

// InspectIter passes items through unchanged, feeding each one to a
// callback as it goes by.
type InspectIter[T any] struct {
	it Iterator[T]
	de DoubleEnded[T]
	fn func(T)
}

// Inspect returns an iterator identical to it, except that fn observes
// every item pulled through it. Useful for peeking into the middle of
// a chain.
//
// Panics if it or fn is nil.
func Inspect[T any](it Iterator[T], fn func(T)) *InspectIter[T] {
	if it == nil {
		panic("iter: Inspect requires a non-nil upstream")
	}
	if fn == nil {
		panic("iter: Inspect requires a non-nil callback")
	}
	de, _ := asDoubleEnded(it)
	return &InspectIter[T]{it: it, de: de, fn: fn}
}

// Next forwards the next upstream item after showing it to the
// callback.
func (i *InspectIter[T]) Next() option.Option[T] {
	return i.it.Next().Inspect(i.fn)
}

// NextBack forwards the next upstream item from the back after showing
// it to the callback. Panics when the upstream is single-ended.
func (i *InspectIter[T]) NextBack() option.Option[T] {
	if i.de == nil {
		panic("iter: NextBack on Inspect over a single-ended upstream")
	}
	return i.de.NextBack().Inspect(i.fn)
}

// SizeHint is the upstream hint.
func (i *InspectIter[T]) SizeHint() SizeHint {
	return HintOf(i.it)
}
