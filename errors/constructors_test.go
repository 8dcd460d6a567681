package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeNotFound, "no entity at key")

	require.NotNil(t, err)
	require.Equal(t, CodeNotFound, err.Code())
	require.Equal(t, "no entity at key", err.Message())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
}

func TestNew_AllErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		CodeInvalidURL,
		CodeStoreClosed,
		CodeNotFound,
		CodeNoMatch,
		CodeIndexOutOfRange,
		CodeIO,
		CodeInternal,
		CodeUnknown,
	}

	for _, code := range codes {
		t.Run(string(code), func(t *testing.T) {
			err := New(code, "test message")
			require.Equal(t, code, err.Code())
			require.NotEmpty(t, err.Classification())
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CodeIndexOutOfRange, "index %d outside [0, %d)", 5, 3)

	require.NotNil(t, err)
	require.Equal(t, CodeIndexOutOfRange, err.Code())
	require.Equal(t, "index 5 outside [0, 3)", err.Message())
}

func TestNew_ErrorFormat(t *testing.T) {
	err := New(CodeStoreClosed, "store is closed")
	require.Equal(t, "[STORE_CLOSED] store is closed", err.Error())
}
