//go:build !unix

package vio

import "syscall"

// kindOfErrno falls back to the catch-all category on platforms whose
// errno space is not mapped; FromOS still categorises through the
// io/fs sentinels there.
func kindOfErrno(syscall.Errno) ErrorKind {
	return KindOther
}
