//go:build unix

package vio

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// kindOfErrno categorises a raw unix errno.
func kindOfErrno(errno syscall.Errno) ErrorKind {
	switch errno {
	case unix.ENOENT:
		return KindNotFound
	case unix.EACCES, unix.EPERM:
		return KindPermissionDenied
	case unix.EEXIST:
		return KindAlreadyExists
	case unix.EINVAL:
		return KindInvalidInput
	case unix.ETIMEDOUT:
		return KindTimedOut
	case unix.EINTR:
		return KindInterrupted
	case unix.ENOSYS, unix.EOPNOTSUPP:
		return KindUnsupported
	case unix.ENOMEM:
		return KindOutOfMemory
	case unix.EPIPE:
		return KindWriteZero
	default:
		return KindOther
	}
}
