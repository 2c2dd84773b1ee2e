package rc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsWithOneOwner(t *testing.T) {
	r := New(42)
	assert.Equal(t, uint(1), r.StrongCount())
	assert.Equal(t, uint(0), r.WeakCount(), "the strong sentinel must stay hidden")
	assert.Equal(t, 42, *r.Value())
	r.Release()
}

func TestCloneBumpsStrongOnly(t *testing.T) {
	r := New("shared")

	clones := make([]*Rc[string], 0, 5)
	for i := 0; i < 5; i++ {
		clones = append(clones, r.Clone())
	}

	assert.Equal(t, uint(6), r.StrongCount())
	assert.Equal(t, uint(0), r.WeakCount())

	// Every handle sees the same payload slot.
	*r.Value() = "changed"
	for _, c := range clones {
		assert.Equal(t, "changed", *c.Value())
	}

	for _, c := range clones {
		c.Release()
	}
	assert.Equal(t, uint(1), r.StrongCount())
	r.Release()
}

func TestDropHookRunsExactlyOnceOnLastRelease(t *testing.T) {
	drops := 0
	r := NewWithDrop("payload", func(s *string) {
		drops++
		assert.Equal(t, "payload", *s, "hook must observe the payload before the slot clears")
	})
	c := r.Clone()

	r.Release()
	assert.Zero(t, drops, "a surviving owner keeps the payload alive")

	c.Release()
	assert.Equal(t, 1, drops)
}

func TestWeakDoesNotKeepPayloadAlive(t *testing.T) {
	drops := 0
	r := NewWithDrop(7, func(*int) { drops++ })
	w := r.Downgrade()

	assert.Equal(t, uint(1), r.WeakCount())
	assert.Equal(t, uint(1), w.StrongCount())

	blk := r.b
	r.Release()

	assert.Equal(t, 1, drops, "payload dies with the last strong handle")
	assert.False(t, blk.freed, "the weak handle must keep the block alive")
	assert.True(t, w.Upgrade().IsNone(), "upgrade after the payload died yields None")
	assert.Equal(t, uint(0), w.StrongCount())

	w.Release()
	assert.True(t, blk.freed, "the last weak handle frees the block")
}

func TestUpgradeWhileAlive(t *testing.T) {
	r := New(1)
	w := r.Downgrade()

	up := w.Upgrade()
	require.True(t, up.IsSome())
	strong := up.Value()
	assert.Equal(t, uint(2), strong.StrongCount())
	assert.Equal(t, 1, *strong.Value())

	strong.Release()
	assert.Equal(t, uint(1), r.StrongCount())
	w.Release()
	r.Release()
}

func TestBlockFreedOnlyWhenAllHandlesGone(t *testing.T) {
	r := New(1)
	w1 := r.Downgrade()
	w2 := w1.Clone()
	blk := r.b

	r.Release()
	require.False(t, blk.freed)
	w1.Release()
	require.False(t, blk.freed)
	w2.Release()
	assert.True(t, blk.freed)
}

func TestWeakCountHidesSentinel(t *testing.T) {
	r := New(1)
	w1 := r.Downgrade()
	w2 := r.Downgrade()
	assert.Equal(t, uint(2), r.WeakCount())

	w1.Release()
	assert.Equal(t, uint(1), r.WeakCount())

	w2.Release()
	r.Release()
}

func TestUseAfterReleasePanics(t *testing.T) {
	r := New(1)
	r.Release()

	assert.Panics(t, func() { r.Value() })
	assert.Panics(t, func() { r.StrongCount() })
	assert.Panics(t, func() { r.Downgrade() })
}

func TestDoubleReleasePanics(t *testing.T) {
	r := New(1)
	r.Release()
	assert.Panics(t, func() { r.Release() })
}

func TestReleasedWeakPanics(t *testing.T) {
	r := New(1)
	w := r.Downgrade()
	w.Release()
	assert.Panics(t, func() { w.Upgrade() })
	r.Release()
}

func TestNilDropHookIsFine(t *testing.T) {
	r := New([]int{1, 2, 3})
	c := r.Clone()
	c.Release()
	r.Release()
}
