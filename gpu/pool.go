package gpu

import "sync"

// streamsPerPool bounds how many native streams are created per device and
// priority class before the pool starts recycling them round-robin. Matches
// the pool size used by the major ML runtimes' stream caches.
const streamsPerPool = 32

// poolKey identifies one pool: streams of one priority on one device.
type poolKey struct {
	device   DeviceIndex
	priority int
}

// streamPool hands out pooled streams and tracks each device's current
// stream.
//
// The pool grows on demand up to streamsPerPool entries per key, then
// recycles existing streams round-robin. Pooled streams are never
// destroyed; a holder's reference stays valid for the life of the process.
//
// The current-stream registry is process-wide rather than thread-local:
// goroutines carry no usable thread identity, so a per-thread slot in the
// C++ sense cannot be expressed. Callers that need per-worker stream
// affinity should pass streams explicitly.
type streamPool struct {
	mu       sync.Mutex
	alloc    func(device DeviceIndex, priority int) (uintptr, error)
	pools    map[poolKey][]*Stream
	next     map[poolKey]int
	currents map[DeviceIndex]*Stream
}

var defaultPool = newStreamPool(allocNativeStream)

func newStreamPool(alloc func(DeviceIndex, int) (uintptr, error)) *streamPool {
	return &streamPool{
		alloc:    alloc,
		pools:    make(map[poolKey][]*Stream),
		next:     make(map[poolKey]int),
		currents: make(map[DeviceIndex]*Stream),
	}
}

// get returns a stream for the key, allocating while the pool is below
// capacity and recycling round-robin afterward.
func (p *streamPool) get(device DeviceIndex, priority int) (*Stream, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := poolKey{device: device, priority: priority}
	pool := p.pools[key]
	if len(pool) < streamsPerPool {
		handle, err := p.alloc(device, priority)
		if err != nil {
			return nil, err
		}
		s := &Stream{device: device, priority: priority, handle: handle}
		p.pools[key] = append(pool, s)
		return s, nil
	}

	s := pool[p.next[key]]
	p.next[key] = (p.next[key] + 1) % streamsPerPool
	return s, nil
}

// current returns the device's current stream, lazily seeding the registry
// with the default stream (native handle 0).
func (p *streamPool) current(device DeviceIndex) *Stream {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.currents[device]
	if !ok {
		s = &Stream{device: device, priority: 0, handle: defaultStreamHandle}
		p.currents[device] = s
	}
	return s
}

// setCurrent installs s as the current stream of its device.
func (p *streamPool) setCurrent(s *Stream) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.currents[s.device] = s
}

// allocNativeStream creates a native stream on the given device, switching
// the active device for the duration of the call when necessary.
func allocNativeStream(device DeviceIndex, priority int) (uintptr, error) {
	active, err := runtimeGetDevice()
	if err != nil {
		return 0, err
	}
	if DeviceIndex(active) != device {
		if err := runtimeSetDevice(int(device)); err != nil {
			return 0, err
		}
		defer runtimeSetDevice(active)
	}
	return runtimeStreamCreate(priority)
}
