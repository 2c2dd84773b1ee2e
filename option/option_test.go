package option

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsNone(t *testing.T) {
	var o Option[int]
	require.True(t, o.IsNone())
	require.False(t, o.IsSome())

	v, ok := o.Get()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestSomeAndNone(t *testing.T) {
	s := Some(42)
	require.True(t, s.IsSome())
	v, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	n := None[int]()
	require.True(t, n.IsNone())
}

func TestFromPtr(t *testing.T) {
	v := 7
	assert.True(t, Equal(Some(7), FromPtr(&v)))
	assert.True(t, Equal(None[int](), FromPtr[int](nil)))

	// The Option copies the pointee.
	o := FromPtr(&v)
	v = 8
	assert.Equal(t, 7, o.Value())
}

func TestFromGet(t *testing.T) {
	m := map[string]int{"a": 1}
	assert.True(t, Equal(Some(1), FromGet(m["a"], true)))

	_, ok := m["b"]
	assert.True(t, FromGet(m["b"], ok).IsNone())
}

func TestValuePanicsOnNone(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "Value on None must panic")
		msg, ok := r.(string)
		require.True(t, ok)
		assert.Contains(t, msg, "option:")
		assert.Contains(t, msg, "option_test.go", "diagnostic should name the caller")
	}()
	None[int]().Value()
}

func TestExpectPanicsWithMessage(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.Contains(t, r.(string), "config missing")
	}()
	None[string]().Expect("config missing")
}

func TestValueOr(t *testing.T) {
	assert.Equal(t, 1, Some(1).ValueOr(9))
	assert.Equal(t, 9, None[int]().ValueOr(9))
	assert.Equal(t, 0, None[int]().ValueOrZero())

	called := false
	got := Some(3).ValueOrElse(func() int {
		called = true
		return 9
	})
	assert.Equal(t, 3, got)
	assert.False(t, called, "fallback must not run for Some")
}

func TestIsSomeAnd(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	assert.True(t, Some(4).IsSomeAnd(even))
	assert.False(t, Some(3).IsSomeAnd(even))
	assert.False(t, None[int]().IsSomeAnd(even))
}

func TestMapAppliesExactlyOnce(t *testing.T) {
	calls := 0
	out := Map(Some(5), func(n int) string {
		calls++
		return strings.Repeat("x", n)
	})
	assert.Equal(t, "xxxxx", out.Value())
	assert.Equal(t, 1, calls)

	calls = 0
	none := Map(None[int](), func(n int) string {
		calls++
		return ""
	})
	assert.True(t, none.IsNone())
	assert.Zero(t, calls, "Map on None must not invoke the function")
}

func TestMapOrAndThen(t *testing.T) {
	double := func(n int) int { return n * 2 }
	assert.Equal(t, 10, MapOr(Some(5), -1, double))
	assert.Equal(t, -1, MapOr(None[int](), -1, double))

	half := func(n int) Option[int] {
		if n%2 != 0 {
			return None[int]()
		}
		return Some(n / 2)
	}
	assert.True(t, Equal(Some(3), AndThen(Some(6), half)))
	assert.True(t, AndThen(Some(5), half).IsNone())
	assert.True(t, AndThen(None[int](), half).IsNone())
}

func TestTake(t *testing.T) {
	o := Some(42)
	taken := o.Take()

	require.True(t, taken.IsSome())
	assert.Equal(t, 42, taken.Value())
	assert.True(t, o.IsNone(), "Take must leave None behind")

	// Taking again yields None and changes nothing.
	assert.True(t, o.Take().IsNone())
	assert.True(t, o.IsNone())
}

func TestTakeIf(t *testing.T) {
	o := Some(42)
	assert.True(t, o.TakeIf(func(n int) bool { return n < 0 }).IsNone())
	assert.True(t, o.IsSome(), "failed TakeIf must not disturb the value")

	taken := o.TakeIf(func(n int) bool { return n == 42 })
	assert.Equal(t, 42, taken.Value())
	assert.True(t, o.IsNone())
}

func TestReplace(t *testing.T) {
	o := Some(1)
	p := o.Replace(2)
	require.NotNil(t, p)
	assert.Equal(t, 2, *p)
	assert.Equal(t, 2, o.Value())

	// Replacing a None engages it.
	n := None[int]()
	n.Replace(5)
	assert.Equal(t, 5, n.Value())
}

// TestOptionRoundTrip is the take-then-replace lifecycle: take empties
// the original, replace re-engages it.
func TestOptionRoundTrip(t *testing.T) {
	o := Some(42)

	taken := o.Take()
	require.True(t, o.IsNone())
	require.Equal(t, 42, taken.Value())

	o.Replace(99)
	assert.Equal(t, 99, o.Value())
}

func TestGetOrInsert(t *testing.T) {
	o := None[int]()
	p := o.GetOrInsert(3)
	assert.Equal(t, 3, *p)

	// Present value wins over the insert candidate.
	q := o.GetOrInsert(9)
	assert.Equal(t, 3, *q)

	// The pointer aliases the Option's storage.
	*q = 7
	assert.Equal(t, 7, o.Value())
}

func TestReset(t *testing.T) {
	o := Some(1)
	o.Reset()
	assert.True(t, o.IsNone())
}

func TestPtr(t *testing.T) {
	o := Some(1)
	p := o.Ptr()
	require.NotNil(t, p)
	*p = 2
	assert.Equal(t, 2, o.Value())

	n := None[int]()
	assert.Nil(t, n.Ptr())
}

func TestFilterOrOrElse(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	assert.True(t, Equal(Some(4), Some(4).Filter(even)))
	assert.True(t, Some(3).Filter(even).IsNone())
	assert.True(t, None[int]().Filter(even).IsNone())

	assert.Equal(t, 1, Some(1).Or(Some(2)).Value())
	assert.Equal(t, 2, None[int]().Or(Some(2)).Value())
	assert.Equal(t, 3, None[int]().OrElse(func() Option[int] { return Some(3) }).Value())
}

func TestInspect(t *testing.T) {
	var seen []int
	Some(5).Inspect(func(n int) { seen = append(seen, n) })
	None[int]().Inspect(func(n int) { seen = append(seen, n) })
	assert.Equal(t, []int{5}, seen)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Option[int]
		want bool
	}{
		{"both none", None[int](), None[int](), true},
		{"both same", Some(1), Some(1), true},
		{"different values", Some(1), Some(2), false},
		{"some vs none", Some(1), None[int](), false},
		{"none vs some", None[int](), Some(0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(Some(1), 1))
	assert.False(t, Contains(Some(1), 2))
	assert.False(t, Contains(None[int](), 0), "None contains nothing, not even the zero value")
}

func TestString(t *testing.T) {
	assert.Equal(t, "Some(42)", Some(42).String())
	assert.Equal(t, "None", None[int]().String())
}
