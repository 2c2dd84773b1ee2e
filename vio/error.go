// Package vio defines the I/O error taxonomy and the capability
// interfaces shared by every collaborator that touches the platform:
// the filesystem, the subprocess launcher and anything else that reads
// or writes bytes.
//
// [Error] is an open sum: a categorical [ErrorKind], an optional raw
// platform error code, and an optional message payload. It implements
// the standard error interface so it can flow through APIs that expect
// one, but collaborators surface it through [result.Result] rather
// than the (value, error) pair.
//
// [Readable] and [Writable] are the minimal byte-stream capabilities:
// a single Read or Write method returning a Result-wrapped count, plus
// Flush for writers. [FromReader] and [FromWriter] adapt standard
// library streams.
package vio

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"syscall"

	"github.com/Noelware/violet-go/option"
)

// ErrorKind is the category of an I/O error.
type ErrorKind uint8

const (
	// KindOther is the catch-all for errors with no better category.
	KindOther ErrorKind = iota
	// KindNotFound: an entity was not found.
	KindNotFound
	// KindPermissionDenied: the operation lacked the needed privilege.
	KindPermissionDenied
	// KindAlreadyExists: an entity already exists.
	KindAlreadyExists
	// KindInvalidInput: a parameter was incorrect.
	KindInvalidInput
	// KindInvalidData: the operation's data stream was malformed.
	KindInvalidData
	// KindTimedOut: the operation's deadline expired.
	KindTimedOut
	// KindInterrupted: the operation was interrupted and can typically
	// be retried.
	KindInterrupted
	// KindUnsupported: the operation is not supported on this
	// platform.
	KindUnsupported
	// KindUnexpectedEOF: the stream ended in the middle of a read.
	KindUnexpectedEOF
	// KindWriteZero: a write returned before consuming any bytes.
	KindWriteZero
	// KindOutOfMemory: the operation could not allocate.
	KindOutOfMemory
)

var kindNames = map[ErrorKind]string{
	KindOther:            "other",
	KindNotFound:         "not found",
	KindPermissionDenied: "permission denied",
	KindAlreadyExists:    "already exists",
	KindInvalidInput:     "invalid input",
	KindInvalidData:      "invalid data",
	KindTimedOut:         "timed out",
	KindInterrupted:      "interrupted",
	KindUnsupported:      "unsupported",
	KindUnexpectedEOF:    "unexpected end of file",
	KindWriteZero:        "write zero",
	KindOutOfMemory:      "out of memory",
}

// String implements [fmt.Stringer].
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Error is a categorised I/O error with an optional raw platform code
// and an optional message payload.
type Error struct {
	kind  ErrorKind
	errno option.Option[int]
	msg   string
}

// New returns an Error of the given kind carrying msg as its payload.
func New(kind ErrorKind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Newf is [New] with fmt.Sprintf formatting.
func Newf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// FromErrno returns an Error categorising the raw platform error code.
func FromErrno(errno syscall.Errno) *Error {
	return &Error{
		kind:  kindOfErrno(errno),
		errno: option.Some(int(errno)),
		msg:   errno.Error(),
	}
}

// FromOS adapts a standard library error. A wrapped [syscall.Errno]
// keeps its raw code; otherwise the error is categorised through the
// io/fs sentinel errors, with [KindOther] as the fallback. A nil err
// is a programmer error and panics.
func FromOS(err error) *Error {
	if err == nil {
		panic("vio: FromOS called with a nil error")
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		e := FromErrno(errno)
		e.msg = err.Error()
		return e
	}
	kind := KindOther
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, iofs.ErrPermission):
		kind = KindPermissionDenied
	case errors.Is(err, iofs.ErrExist):
		kind = KindAlreadyExists
	case errors.Is(err, iofs.ErrInvalid):
		kind = KindInvalidInput
	case errors.Is(err, io.ErrUnexpectedEOF):
		kind = KindUnexpectedEOF
	case errors.Is(err, io.ErrShortWrite):
		kind = KindWriteZero
	}
	return &Error{kind: kind, msg: err.Error()}
}

// Kind returns the error's category.
func (e *Error) Kind() ErrorKind {
	return e.kind
}

// RawOSError returns the raw platform error code when the error came
// from the operating system.
func (e *Error) RawOSError() option.Option[int] {
	return e.errno
}

// Message returns the payload message, which may be empty.
func (e *Error) Message() string {
	return e.msg
}

// Error implements the standard error interface.
func (e *Error) Error() string {
	switch {
	case e.msg == "":
		return e.kind.String()
	case e.errno.IsSome():
		return fmt.Sprintf("%s: %s (os error %d)", e.kind, e.msg, e.errno.ValueOrZero())
	default:
		return fmt.Sprintf("%s: %s", e.kind, e.msg)
	}
}
