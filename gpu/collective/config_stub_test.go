//go:build !cuda && !hip

package collective

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStubSurface(t *testing.T) {
	assert.False(t, Built())
	assert.Equal(t, "none", Library())

	_, err := DefaultConfig()
	assert.ErrorIs(t, err, ErrNotBuilt)

	_, err = NewUniqueID()
	assert.ErrorIs(t, err, ErrNotBuilt)
}
