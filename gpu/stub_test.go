//go:build !cuda && !hip

package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Without a vendor build tag, every runtime-touching operation must fail
// with ErrNotBuilt and nothing may panic.
func TestStubSurface(t *testing.T) {
	assert.False(t, Built())
	assert.Equal(t, "none", Runtime())

	_, err := CreateEvent(true, false, false)
	assert.ErrorIs(t, err, ErrNotBuilt)

	_, err = NewStream(0, 0)
	assert.ErrorIs(t, err, ErrNotBuilt)

	_, err = CurrentStream(0)
	assert.ErrorIs(t, err, ErrNotBuilt)

	_, err = CurrentStream(CurrentDeviceIndex)
	assert.ErrorIs(t, err, ErrNotBuilt)

	err = SetCurrentStream(&Stream{})
	assert.ErrorIs(t, err, ErrNotBuilt)

	_, err = DeviceCount()
	assert.ErrorIs(t, err, ErrNotBuilt)

	err = SetDevice(0)
	assert.ErrorIs(t, err, ErrNotBuilt)

	_, err = DeviceName(0)
	assert.ErrorIs(t, err, ErrNotBuilt)

	_, _, err = StreamPriorityRange()
	assert.ErrorIs(t, err, ErrNotBuilt)
}
