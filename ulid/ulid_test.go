package ulid

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	before := time.Now().UnixMilli()
	res := New()
	after := time.Now().UnixMilli()

	require.True(t, res.IsOk())
	u := res.Value()
	assert.Len(t, u.String(), 26)
	assert.False(t, u.IsZero())
	assert.GreaterOrEqual(t, u.Timestamp(), uint64(before))
	assert.LessOrEqual(t, u.Timestamp(), uint64(after))
}

func TestFromTimestamp(t *testing.T) {
	const ms = uint64(1469918176385)
	u := FromTimestamp(ms).Value()
	assert.Equal(t, ms, u.Timestamp())
	assert.Equal(t, time.UnixMilli(int64(ms)).UTC(), u.Time().UTC())
}

func TestFromTimestampRejectsOver48Bits(t *testing.T) {
	res := FromTimestamp(1 << 48)
	require.True(t, res.IsErr())
	assert.Contains(t, res.Error().Message(), "48 bits")

	assert.True(t, FromTimestamp((1<<48)-1).IsOk(), "the 48-bit maximum still fits")
}

func TestFromPartsRoundTrip(t *testing.T) {
	entropy := [10]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	u := FromParts(1469918176385, entropy)

	assert.Equal(t, uint64(1469918176385), u.Timestamp())
	assert.Equal(t, entropy, u.Entropy())

	parsed := FromString(u.String())
	require.True(t, parsed.IsOk())
	assert.Equal(t, u, parsed.Value())
	assert.Equal(t, u.Bytes(), parsed.Value().Bytes())
}

func TestFromPartsMasksTimestamp(t *testing.T) {
	u := FromParts(1<<48|42, [10]byte{})
	assert.Equal(t, uint64(42), u.Timestamp())
}

func TestFromString(t *testing.T) {
	u := FromString("01ARYZ6S41TSV4RRFFQ69G5FAV")
	require.True(t, u.IsOk())
	assert.Equal(t, "01ARYZ6S41TSV4RRFFQ69G5FAV", u.Value().String())
	assert.Equal(t, uint64(1469918176385), u.Value().Timestamp())
}

func TestFromStringDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		tag   DecodeTag
	}{
		{"too short", "01ARYZ6S41", InvalidLength},
		{"too long", "01ARYZ6S41TSV4RRFFQ69G5FAVAA", InvalidLength},
		{"empty", "", InvalidLength},
		{"bad alphabet", "01ARYZ6S41TSV4RRFFQ69G5FAU", InvalidCharacter},
		{"first char too big", "81ARYZ6S41TSV4RRFFQ69G5FAV", Overflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := FromString(tt.input)
			require.True(t, res.IsErr())
			assert.Equal(t, tt.tag, res.Error().Tag())
			assert.NotEmpty(t, res.Error().Error())
		})
	}
}

// TestLexicographicOrderFollowsTime: string order must match timestamp
// order, the property ULIDs exist for.
func TestLexicographicOrderFollowsTime(t *testing.T) {
	ids := make([]Ulid, 0, 5)
	for i := 0; i < 5; i++ {
		ids = append(ids, FromParts(uint64(1000*(i+1)), [10]byte{byte(i)}))
	}

	shuffled := []Ulid{ids[3], ids[0], ids[4], ids[2], ids[1]}
	sort.Slice(shuffled, func(a, b int) bool { return shuffled[a].String() < shuffled[b].String() })
	assert.Equal(t, ids, shuffled)

	assert.Negative(t, ids[0].Compare(ids[1]))
	assert.Positive(t, ids[1].Compare(ids[0]))
	assert.Zero(t, ids[2].Compare(ids[2]))
}

func TestZeroValue(t *testing.T) {
	var u Ulid
	assert.True(t, u.IsZero())
	assert.Equal(t, "00000000000000000000000000", u.String())
	assert.False(t, FromParts(1, [10]byte{}).IsZero())
}
