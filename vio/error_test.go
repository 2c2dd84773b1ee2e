package vio

import (
	"fmt"
	"io"
	iofs "io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "not found", KindNotFound.String())
	assert.Equal(t, "write zero", KindWriteZero.String())
	assert.Equal(t, "ErrorKind(200)", ErrorKind(200).String())
}

func TestNew(t *testing.T) {
	e := New(KindTimedOut, "connect stalled")
	assert.Equal(t, KindTimedOut, e.Kind())
	assert.Equal(t, "connect stalled", e.Message())
	assert.True(t, e.RawOSError().IsNone())
	assert.Equal(t, "timed out: connect stalled", e.Error())
}

func TestNewf(t *testing.T) {
	e := Newf(KindInvalidInput, "bad fd %d", 7)
	assert.Equal(t, "bad fd 7", e.Message())
}

func TestEmptyMessageFallsBackToKind(t *testing.T) {
	assert.Equal(t, "interrupted", New(KindInterrupted, "").Error())
}

func TestFromOSSentinels(t *testing.T) {
	tests := []struct {
		err  error
		kind ErrorKind
	}{
		{iofs.ErrNotExist, KindNotFound},
		{iofs.ErrPermission, KindPermissionDenied},
		{iofs.ErrExist, KindAlreadyExists},
		{iofs.ErrInvalid, KindInvalidInput},
		{io.ErrUnexpectedEOF, KindUnexpectedEOF},
		{io.ErrShortWrite, KindWriteZero},
		{fmt.Errorf("wrapped: %w", iofs.ErrNotExist), KindNotFound},
		{fmt.Errorf("anything else"), KindOther},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			e := FromOS(tt.err)
			assert.Equal(t, tt.kind, e.Kind())
			assert.True(t, e.RawOSError().IsNone())
		})
	}
}

func TestFromOSNilPanics(t *testing.T) {
	require.Panics(t, func() { FromOS(nil) })
}
