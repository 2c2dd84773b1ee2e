package rc

import (
	"sync/atomic"

	"github.com/Noelware/violet-go/option"
)

// arcBlock is the atomic counterpart of block. All counter traffic
// goes through sync/atomic, so the payload drop happens-before the
// block dies.
type arcBlock[T any] struct {
	strong atomic.Uint64
	weak   atomic.Uint64
	value  T
	drop   func(*T)
	freed  atomic.Bool
}

func (b *arcBlock[T]) dropPayload() {
	if b.drop != nil {
		b.drop(&b.value)
	}
	var zero T
	b.value = zero
}

func (b *arcBlock[T]) free() {
	if b.freed.Swap(true) {
		misuse("control block freed twice")
	}
}

// Arc is the goroutine-safe counterpart of [Rc]: a strong handle whose
// count manipulation (Clone, Release, Downgrade, Upgrade) may race
// freely across goroutines. The payload itself is only as safe as T's
// own synchronisation.
//
// Each Arc value is still a single handle: one goroutine releases it,
// and goroutines that need their own handle take one via [Arc.Clone].
type Arc[T any] struct {
	b *arcBlock[T]
}

// NewArc allocates a control block owning value and returns the first
// strong handle.
func NewArc[T any](value T) *Arc[T] {
	return NewArcWithDrop(value, nil)
}

// NewArcWithDrop is [NewArc] with a drop hook that runs exactly once,
// on whichever goroutine releases the last strong handle.
func NewArcWithDrop[T any](value T, drop func(*T)) *Arc[T] {
	b := &arcBlock[T]{value: value, drop: drop}
	b.strong.Store(1)
	b.weak.Store(1)
	return &Arc[T]{b: b}
}

func (a *Arc[T]) block() *arcBlock[T] {
	if a == nil || a.b == nil {
		misuse("use of a released Arc handle")
	}
	return a.b
}

// Clone returns a new strong handle to the same payload.
func (a *Arc[T]) Clone() *Arc[T] {
	b := a.block()
	if b.strong.Add(1) > uint64(maxCount) {
		misuse("Arc strong count overflow")
	}
	return &Arc[T]{b: b}
}

// Value returns a pointer to the shared payload.
func (a *Arc[T]) Value() *T {
	return &a.block().value
}

// StrongCount returns the number of strong handles at the moment of
// observation. Under concurrent Clone/Release the value is already
// stale by the time it is returned.
func (a *Arc[T]) StrongCount() uint {
	return uint(a.block().strong.Load())
}

// WeakCount returns the number of weak handles at the moment of
// observation, excluding the internal sentinel.
func (a *Arc[T]) WeakCount() uint {
	return uint(a.block().weak.Load() - 1)
}

// Downgrade returns a new weak handle to the same block.
func (a *Arc[T]) Downgrade() *AWeak[T] {
	b := a.block()
	if b.weak.Add(1) > uint64(maxCount) {
		misuse("Arc weak count overflow")
	}
	return &AWeak[T]{b: b}
}

// Release drops this strong handle. The goroutine that drops the last
// one runs the payload drop hook synchronously. The handle is invalid
// afterwards.
func (a *Arc[T]) Release() {
	b := a.block()
	a.b = nil
	if b.strong.Add(^uint64(0)) > 0 {
		return
	}
	b.dropPayload()
	if b.weak.Add(^uint64(0)) == 0 {
		b.free()
	}
}

// AWeak is the goroutine-safe counterpart of [Weak].
type AWeak[T any] struct {
	b *arcBlock[T]
}

func (w *AWeak[T]) block() *arcBlock[T] {
	if w == nil || w.b == nil {
		misuse("use of a released AWeak handle")
	}
	return w.b
}

// Clone returns a new weak handle to the same block.
func (w *AWeak[T]) Clone() *AWeak[T] {
	b := w.block()
	if b.weak.Add(1) > uint64(maxCount) {
		misuse("Arc weak count overflow")
	}
	return &AWeak[T]{b: b}
}

// StrongCount returns the number of strong handles still alive at the
// moment of observation.
func (w *AWeak[T]) StrongCount() uint {
	return uint(w.block().strong.Load())
}

// Upgrade attempts to obtain a strong handle. The strong count only
// transitions n→n+1 for n > 0, so an upgrade can never resurrect a
// dropped payload: it returns Some exactly when a strong handle was
// alive at the moment of the winning compare-and-swap.
func (w *AWeak[T]) Upgrade() option.Option[*Arc[T]] {
	b := w.block()
	for {
		n := b.strong.Load()
		if n == 0 {
			return option.None[*Arc[T]]()
		}
		if n >= uint64(maxCount) {
			misuse("Arc strong count overflow")
		}
		if b.strong.CompareAndSwap(n, n+1) {
			return option.Some(&Arc[T]{b: b})
		}
	}
}

// Release drops this weak handle, freeing the block when it was the
// last handle of any kind. The handle is invalid afterwards.
func (w *AWeak[T]) Release() {
	b := w.block()
	w.b = nil
	if b.weak.Add(^uint64(0)) == 0 {
		b.free()
	}
}
