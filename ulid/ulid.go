// Package ulid generates and parses ULIDs: 128-bit, lexicographically
// sortable identifiers made of a 48-bit millisecond timestamp and 80
// bits of randomness, rendered as 26 characters of Crockford base32.
//
// Generation draws from crypto/rand and returns a [result.Result]
// because entropy can fail; parsing returns a Result carrying a
// [DecodeError] that says how the text was malformed.
package ulid

import (
	"crypto/rand"
	"time"

	oklog "github.com/oklog/ulid/v2"

	"github.com/Noelware/violet-go/result"
	"github.com/Noelware/violet-go/vio"
)

// Ulid is a single 128-bit identifier.
type Ulid struct {
	id oklog.ULID
}

// New generates a Ulid stamped with the current time.
func New() result.Result[Ulid, *vio.Error] {
	return FromTimestamp(oklog.Now())
}

// FromTimestamp generates a Ulid with the given millisecond timestamp
// and fresh randomness. Timestamps beyond 48 bits do not fit and are
// rejected.
func FromTimestamp(ms uint64) result.Result[Ulid, *vio.Error] {
	id, err := oklog.New(ms, rand.Reader)
	if err == oklog.ErrBigTime {
		return result.Err[Ulid](vio.Newf(vio.KindInvalidInput, "timestamp %d exceeds 48 bits", ms))
	}
	if err != nil {
		return result.Err[Ulid](vio.FromOS(err))
	}
	return result.Ok[Ulid, *vio.Error](Ulid{id: id})
}

// FromParts assembles a Ulid from a millisecond timestamp and explicit
// randomness. The timestamp is masked to its low 48 bits.
func FromParts(ms uint64, entropy [10]byte) Ulid {
	var id oklog.ULID
	// SetTime only rejects timestamps over 48 bits, and SetEntropy
	// only rejects slices that are not 10 bytes.
	_ = id.SetTime(ms & oklog.MaxTime())
	_ = id.SetEntropy(entropy[:])
	return Ulid{id: id}
}

// FromString parses the canonical 26-character form.
func FromString(s string) result.Result[Ulid, DecodeError] {
	id, err := oklog.ParseStrict(s)
	if err != nil {
		return result.Err[Ulid](decodeError(err))
	}
	return result.Ok[Ulid, DecodeError](Ulid{id: id})
}

// String renders the canonical 26-character Crockford base32 form.
func (u Ulid) String() string {
	return u.id.String()
}

// Timestamp returns the identifier's millisecond timestamp.
func (u Ulid) Timestamp() uint64 {
	return u.id.Time()
}

// Time returns the identifier's timestamp as a [time.Time].
func (u Ulid) Time() time.Time {
	return oklog.Time(u.id.Time())
}

// Entropy returns the identifier's 80 randomness bits.
func (u Ulid) Entropy() [10]byte {
	var out [10]byte
	copy(out[:], u.id.Entropy())
	return out
}

// Bytes returns the identifier's 16-byte binary form.
func (u Ulid) Bytes() [16]byte {
	return [16]byte(u.id)
}

// Compare orders two identifiers lexicographically: negative when u
// sorts before other, zero when equal.
func (u Ulid) Compare(other Ulid) int {
	return u.id.Compare(other.id)
}

// IsZero reports whether u is the all-zero identifier, the type's zero
// value.
func (u Ulid) IsZero() bool {
	return u.id == oklog.ULID{}
}

// DecodeTag says how a textual ULID was malformed.
type DecodeTag uint8

const (
	// InvalidLength: the text was not exactly 26 characters.
	InvalidLength DecodeTag = iota
	// InvalidCharacter: the text contained a character outside the
	// Crockford base32 alphabet.
	InvalidCharacter
	// Overflow: the text decoded to a value over 128 bits.
	Overflow
)

// DecodeError is the failure payload of [FromString].
type DecodeError struct {
	tag DecodeTag
}

// Tag returns what was wrong with the input.
func (e DecodeError) Tag() DecodeTag {
	return e.tag
}

// Error implements the standard error interface.
func (e DecodeError) Error() string {
	switch e.tag {
	case InvalidLength:
		return "ulid: input is not 26 characters"
	case InvalidCharacter:
		return "ulid: input contains a character outside Crockford base32"
	case Overflow:
		return "ulid: input decodes to more than 128 bits"
	default:
		return "ulid: malformed input"
	}
}

func decodeError(err error) DecodeError {
	switch err {
	case oklog.ErrDataSize:
		return DecodeError{tag: InvalidLength}
	case oklog.ErrInvalidCharacters:
		return DecodeError{tag: InvalidCharacter}
	case oklog.ErrOverflow:
		return DecodeError{tag: Overflow}
	default:
		return DecodeError{tag: InvalidCharacter}
	}
}
