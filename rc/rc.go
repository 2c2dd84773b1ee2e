// Package rc provides reference-counted shared ownership: [Rc] and
// [Weak] for single-goroutine use, and [Arc] and [AWeak], their
// goroutine-safe counterparts with atomic counters.
//
// A family of handles shares one control block holding the payload
// together with a strong and a weak count. The lifecycle rules:
//
//   - The strong count is the number of owners keeping the payload
//     alive; it is at least 1 while any strong handle exists.
//   - The weak count is the number of weak handles, plus one sentinel
//     while any strong handle exists. The sentinel keeps the block
//     alive until the last weak handle is released.
//   - When the strong count drops to 0 the payload's drop hook runs
//     exactly once and the payload slot is cleared; the block itself
//     dies only when the weak count then drops to 0.
//
// Go has no destructors, so releasing a handle is explicit:
// [Rc.Release] and [Weak.Release] (and the Arc equivalents) must run on
// every handle exactly once. Using a handle after releasing it, or
// releasing it twice, is a programmer error and panics with a
// caller-annotated diagnostic. Drop hooks registered via [NewWithDrop]
// stand in for payload destructors and are the mechanism collaborators
// use to tie resources (file handles, directory handles) to the last
// owner.
//
// Rc, Weak and the payloads they guard are not goroutine-safe. Arc and
// AWeak are goroutine-safe with respect to count manipulation only;
// access to the payload through an Arc needs whatever synchronisation
// the payload itself requires.
//
// If a count would overflow the counter space the process panics;
// wrapping around silently would be a use-after-free.
package rc

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Noelware/violet-go/option"
)

// maxCount is the saturation bound for either counter.
const maxCount = ^uint(0) >> 1

// block is the header shared by every handle of one Rc family,
// contiguous with the payload.
type block[T any] struct {
	strong uint
	weak   uint
	value  T
	drop   func(*T)
	freed  bool
}

func (b *block[T]) dropPayload() {
	if b.drop != nil {
		b.drop(&b.value)
	}
	var zero T
	b.value = zero
}

func (b *block[T]) free() {
	if b.freed {
		misuse("control block freed twice")
	}
	b.freed = true
}

// Rc is a strong, single-goroutine reference-counted handle to a shared
// T. Create the first handle with [New] or [NewWithDrop]; create
// further handles with [Rc.Clone].
type Rc[T any] struct {
	b *block[T]
}

// New allocates a control block owning value and returns the first
// strong handle.
func New[T any](value T) *Rc[T] {
	return NewWithDrop(value, nil)
}

// NewWithDrop is [New] with a drop hook that runs exactly once, when
// the last strong handle is released. The hook receives a pointer to
// the payload slot before it is cleared.
func NewWithDrop[T any](value T, drop func(*T)) *Rc[T] {
	return &Rc[T]{b: &block[T]{strong: 1, weak: 1, value: value, drop: drop}}
}

func (r *Rc[T]) block() *block[T] {
	if r == nil || r.b == nil {
		misuse("use of a released Rc handle")
	}
	return r.b
}

// Clone returns a new strong handle to the same payload, incrementing
// the strong count.
func (r *Rc[T]) Clone() *Rc[T] {
	b := r.block()
	if b.strong >= maxCount {
		misuse("Rc strong count overflow")
	}
	b.strong++
	return &Rc[T]{b: b}
}

// Value returns a pointer to the shared payload.
func (r *Rc[T]) Value() *T {
	return &r.block().value
}

// StrongCount returns the number of strong handles.
func (r *Rc[T]) StrongCount() uint {
	return r.block().strong
}

// WeakCount returns the number of weak handles. The internal sentinel
// held on behalf of the strong handles is not included.
func (r *Rc[T]) WeakCount() uint {
	return r.block().weak - 1
}

// Downgrade returns a new weak handle to the same block, incrementing
// the weak count. The weak handle does not keep the payload alive.
func (r *Rc[T]) Downgrade() *Weak[T] {
	b := r.block()
	if b.weak >= maxCount {
		misuse("Rc weak count overflow")
	}
	b.weak++
	return &Weak[T]{b: b}
}

// Release drops this strong handle. When it is the last one the payload
// drop hook runs and the payload slot is cleared; the block dies once
// the last weak handle is also gone. The handle is invalid afterwards.
func (r *Rc[T]) Release() {
	b := r.block()
	r.b = nil
	b.strong--
	if b.strong > 0 {
		return
	}
	b.dropPayload()
	b.weak--
	if b.weak == 0 {
		b.free()
	}
}

// Weak is a non-owning, single-goroutine handle to an [Rc] family's
// block. It does not keep the payload alive; use [Weak.Upgrade] to
// regain a strong handle while one still exists.
type Weak[T any] struct {
	b *block[T]
}

func (w *Weak[T]) block() *block[T] {
	if w == nil || w.b == nil {
		misuse("use of a released Weak handle")
	}
	return w.b
}

// Clone returns a new weak handle to the same block.
func (w *Weak[T]) Clone() *Weak[T] {
	b := w.block()
	if b.weak >= maxCount {
		misuse("Rc weak count overflow")
	}
	b.weak++
	return &Weak[T]{b: b}
}

// StrongCount returns the number of strong handles still alive.
func (w *Weak[T]) StrongCount() uint {
	return w.block().strong
}

// Upgrade attempts to obtain a strong handle. It returns Some exactly
// when at least one strong handle was alive at the moment of
// observation, and None after the payload has been dropped.
func (w *Weak[T]) Upgrade() option.Option[*Rc[T]] {
	b := w.block()
	if b.strong == 0 {
		return option.None[*Rc[T]]()
	}
	if b.strong >= maxCount {
		misuse("Rc strong count overflow")
	}
	b.strong++
	return option.Some(&Rc[T]{b: b})
}

// Release drops this weak handle, freeing the block when it was the
// last handle of any kind. The handle is invalid afterwards.
func (w *Weak[T]) Release() {
	b := w.block()
	w.b = nil
	b.weak--
	if b.weak == 0 {
		b.free()
	}
}

// misuse panics with msg annotated with the first caller outside this
// package.
func misuse(msg string) {
	var pcs [8]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.Function, "violet-go/rc.") {
			panic(fmt.Sprintf("rc: %s (%s:%d)", msg, frame.File, frame.Line))
		}
		if !more {
			break
		}
	}
	panic("rc: " + msg)
}
