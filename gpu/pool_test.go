package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAlloc hands out distinct fake handles and records every request.
type fakeAlloc struct {
	next  uintptr
	calls []poolKey
}

func (f *fakeAlloc) alloc(device DeviceIndex, priority int) (uintptr, error) {
	f.next++
	f.calls = append(f.calls, poolKey{device: device, priority: priority})
	return f.next, nil
}

func TestPoolAllocatesUpToCapacity(t *testing.T) {
	fa := &fakeAlloc{}
	p := newStreamPool(fa.alloc)

	seen := make(map[uintptr]bool)
	for i := 0; i < streamsPerPool; i++ {
		s, err := p.get(0, 0)
		require.NoError(t, err)
		assert.False(t, seen[s.Handle()], "stream %d reused a handle early", i)
		seen[s.Handle()] = true
	}
	assert.Len(t, fa.calls, streamsPerPool)
}

func TestPoolRecyclesRoundRobin(t *testing.T) {
	fa := &fakeAlloc{}
	p := newStreamPool(fa.alloc)

	first := make([]*Stream, streamsPerPool)
	for i := range first {
		s, err := p.get(0, 0)
		require.NoError(t, err)
		first[i] = s
	}

	// Past capacity the pool recycles in creation order, with no further
	// allocator calls.
	for i := 0; i < streamsPerPool*2; i++ {
		s, err := p.get(0, 0)
		require.NoError(t, err)
		assert.True(t, s.Equal(first[i%streamsPerPool]), "request %d", i)
	}
	assert.Len(t, fa.calls, streamsPerPool)
}

func TestPoolKeysAreIndependent(t *testing.T) {
	fa := &fakeAlloc{}
	p := newStreamPool(fa.alloc)

	a, err := p.get(0, 0)
	require.NoError(t, err)
	b, err := p.get(1, 0)
	require.NoError(t, err)
	c, err := p.get(0, -1)
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, DeviceIndex(1), b.Device())
	assert.Equal(t, -1, c.Priority())
}

func TestCurrentDefaultsToNullStream(t *testing.T) {
	p := newStreamPool((&fakeAlloc{}).alloc)

	s := p.current(3)
	assert.Equal(t, uintptr(0), s.Handle())
	assert.Equal(t, DeviceIndex(3), s.Device())
	assert.Equal(t, 0, s.Priority())

	// Identity projection is stable.
	again := p.current(3)
	assert.True(t, s.Equal(again))
	assert.Equal(t, s.Handle(), again.Handle())
}

func TestSetCurrentInstallsPerDevice(t *testing.T) {
	fa := &fakeAlloc{}
	p := newStreamPool(fa.alloc)

	s0, err := p.get(0, 0)
	require.NoError(t, err)
	s1, err := p.get(1, 0)
	require.NoError(t, err)

	p.setCurrent(s0)
	p.setCurrent(s1)

	assert.True(t, p.current(0).Equal(s0))
	assert.True(t, p.current(1).Equal(s1))

	// Reinstalling on one device leaves the other untouched.
	s0b, err := p.get(0, 0)
	require.NoError(t, err)
	p.setCurrent(s0b)
	assert.True(t, p.current(0).Equal(s0b))
	assert.True(t, p.current(1).Equal(s1))
}

func TestStreamHandleIdempotent(t *testing.T) {
	s := &Stream{device: 0, priority: 0, handle: 0xdeadbeef}
	assert.Equal(t, s.Handle(), s.Handle())
	assert.Equal(t, uintptr(0xdeadbeef), s.Handle())
}
