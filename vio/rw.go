package vio

import (
	"io"

	"github.com/Noelware/violet-go/result"
)

// Readable is the reading capability: fill buf and report how many
// bytes were written into it. A count of zero with a success result
// means the stream has ended.
type Readable interface {
	Read(buf []byte) result.Result[int, *Error]
}

// Writable is the writing capability: consume p and report how many
// bytes were accepted. Flush forces any buffered bytes out.
type Writable interface {
	Write(p []byte) result.Result[int, *Error]
	Flush() result.Result[result.Unit, *Error]
}

// flusher is the conventional optional method of buffered writers.
type flusher interface {
	Flush() error
}

type readAdapter struct {
	r io.Reader
}

// FromReader adapts a standard library reader into a [Readable]. The
// reader's io.EOF becomes a success with a zero count; every other
// failure becomes an [Error].
//
// Panics if r is nil.
func FromReader(r io.Reader) Readable {
	if r == nil {
		panic("vio: FromReader requires a non-nil reader")
	}
	return readAdapter{r: r}
}

func (a readAdapter) Read(buf []byte) result.Result[int, *Error] {
	n, err := a.r.Read(buf)
	if err != nil && err != io.EOF {
		return result.Err[int](FromOS(err))
	}
	return result.Ok[int, *Error](n)
}

type writeAdapter struct {
	w io.Writer
}

// FromWriter adapts a standard library writer into a [Writable]. Flush
// forwards to the writer when it has a Flush method and is a no-op
// success otherwise.
//
// Panics if w is nil.
func FromWriter(w io.Writer) Writable {
	if w == nil {
		panic("vio: FromWriter requires a non-nil writer")
	}
	return writeAdapter{w: w}
}

func (a writeAdapter) Write(p []byte) result.Result[int, *Error] {
	n, err := a.w.Write(p)
	if err != nil {
		return result.Err[int](FromOS(err))
	}
	if n == 0 && len(p) > 0 {
		return result.Err[int](New(KindWriteZero, "writer accepted no bytes"))
	}
	return result.Ok[int, *Error](n)
}

func (a writeAdapter) Flush() result.Result[result.Unit, *Error] {
	if f, ok := a.w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return result.Err[result.Unit](FromOS(err))
		}
	}
	return result.OkUnit[*Error]()
}

// ReadAll drains r into memory. A read error discards everything read
// so far.
func ReadAll(r Readable) result.Result[[]byte, *Error] {
	var out []byte
	buf := make([]byte, 4096)
	for {
		n, e, ok := r.Read(buf).Get()
		if !ok {
			return result.Err[[]byte](e)
		}
		if n == 0 {
			return result.Ok[[]byte, *Error](out)
		}
		out = append(out, buf[:n]...)
	}
}

// WriteAll writes the whole of p, retrying partial writes, then
// flushes.
func WriteAll(w Writable, p []byte) result.Result[result.Unit, *Error] {
	for len(p) > 0 {
		n, e, ok := w.Write(p).Get()
		if !ok {
			return result.Err[result.Unit](e)
		}
		p = p[n:]
	}
	return w.Flush()
}
