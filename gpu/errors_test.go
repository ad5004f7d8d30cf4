package gpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeErrorSentinels(t *testing.T) {
	tests := []struct {
		code int32
		want error
	}{
		{1, ErrInvalidValue},
		{2, ErrMemoryAllocation},
		{3, ErrInitialization},
		{100, ErrNoDevice},
		{101, ErrInvalidDevice},
	}

	for _, tt := range tests {
		err := codeError(tt.code, "")
		assert.ErrorIs(t, err, tt.want, "code %d", tt.code)

		// The vendor error string is attached without changing identity.
		err = codeError(tt.code, "vendor detail")
		assert.ErrorIs(t, err, tt.want, "code %d with detail", tt.code)
		assert.Contains(t, err.Error(), "vendor detail")
	}
}

func TestCodeErrorUnmapped(t *testing.T) {
	err := codeError(700, "an illegal memory access was encountered")

	var rerr *RuntimeError
	assert.True(t, errors.As(err, &rerr))
	assert.Equal(t, int32(700), rerr.Code)
	assert.Contains(t, err.Error(), "illegal memory access")

	bare := codeError(719, "")
	assert.True(t, errors.As(bare, &rerr))
	assert.Equal(t, "gpu: runtime error 719", bare.Error())
}
