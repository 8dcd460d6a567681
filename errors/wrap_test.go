package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	cause := stderrors.New("stat failed")
	err := Wrap(cause, CodeIO, "backend stat")

	require.NotNil(t, err)
	require.Equal(t, CodeIO, err.Code())
	require.Equal(t, "backend stat", err.Message())
	require.Equal(t, cause, err.Unwrap())
	require.Equal(t, "[IO_ERROR] backend stat: stat failed", err.Error())
}

func TestWrap_Nil(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeIO, "ignored"))
	require.Nil(t, Wrapf(nil, CodeIO, "ignored %d", 1))
}

func TestWrap_PreservesClassification(t *testing.T) {
	// Wrapping a retryable error with a permanent code keeps it retryable.
	inner := New(CodeIO, "transient read failure")
	outer := Wrap(inner, CodeInternal, "resolve failed")

	require.Equal(t, CodeInternal, outer.Code())
	require.Equal(t, ClassificationRetryable, outer.Classification())
}

func TestWrap_StdlibCompatibility(t *testing.T) {
	err := Wrap(fs.ErrPermission, CodeIO, "open failed")

	require.True(t, stderrors.Is(err, fs.ErrPermission))

	var modelErr ModelError
	require.True(t, stderrors.As(err, &modelErr))
	require.Equal(t, CodeIO, modelErr.Code())
}

func TestWrapf(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrapf(cause, CodeNotFound, "key %q", "/a/b")

	require.Equal(t, `key "/a/b"`, err.Message())
	require.Equal(t, cause, err.Unwrap())
}

func TestWrap_ChainCodes(t *testing.T) {
	inner := New(CodeNotFound, "missing")
	outer := Wrap(inner, CodeInternal, "lookup")

	// GetCode sees the outermost code, errors.Is still finds the inner error.
	require.Equal(t, CodeInternal, GetCode(outer))
	require.True(t, stderrors.Is(outer, inner))
}
