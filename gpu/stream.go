package gpu

// Stream is an ordered GPU command queue bound to one device.
//
// A Stream value is a shared reference: the native queue it names is owned
// by the runtime's stream pool (or is the device's default stream), lives
// for the life of the process, and may be handed out to multiple holders.
// Streams are never destroyed by this package.
type Stream struct {
	device   DeviceIndex
	priority int
	handle   uintptr
}

// NewStream returns a stream on the given device at the given priority,
// drawn from the pooled allocator. The stream may be newly created or
// recycled; no identity-uniqueness promise is made beyond what the pool
// guarantees (see pool.go).
//
// Passing CurrentDeviceIndex selects the active device.
func NewStream(device DeviceIndex, priority int) (*Stream, error) {
	device, err := resolveDevice(device)
	if err != nil {
		return nil, err
	}
	return defaultPool.get(device, priority)
}

// CurrentStream returns the stream that is currently active for the given
// device, as tracked by this package's registry. Before any
// SetCurrentStream call this is the device's default stream. It never
// creates a new native stream.
func CurrentStream(device DeviceIndex) (*Stream, error) {
	if !runtimeBuilt {
		return nil, ErrNotBuilt
	}
	device, err := resolveDevice(device)
	if err != nil {
		return nil, err
	}
	return defaultPool.current(device), nil
}

// SetCurrentStream installs the given stream as its device's current
// stream. If the stream's device is not the active device, the active
// device is switched first; the installation is only valid after the
// switch.
func SetCurrentStream(s *Stream) error {
	active, err := runtimeGetDevice()
	if err != nil {
		return err
	}
	if DeviceIndex(active) != s.device {
		if err := runtimeSetDevice(int(s.device)); err != nil {
			return err
		}
	}
	defaultPool.setCurrent(s)
	return nil
}

// Device returns the index of the device the stream is bound to.
func (s *Stream) Device() DeviceIndex {
	return s.device
}

// Priority returns the priority the stream was requested at. The default
// stream reports priority 0.
func (s *Stream) Priority() int {
	return s.priority
}

// Handle returns the raw native stream handle as an unsigned integer. The
// default stream's handle is 0. The value is an identity projection only:
// calling Handle twice on the same stream yields the same integer, and the
// integer does not extend the stream's lifetime.
func (s *Stream) Handle() uintptr {
	return s.handle
}

// Equal reports whether two stream references name the same native queue.
func (s *Stream) Equal(other *Stream) bool {
	return other != nil && s.handle == other.handle
}

// WaitEvent makes all future work submitted to this stream wait until the
// event's recorded point has been reached. The dependency is inserted into
// the GPU command queue; the call returns immediately.
func (s *Stream) WaitEvent(e *Event) error {
	return runtimeStreamWaitEvent(s.handle, e.handle)
}

// WaitStream makes all future work submitted to this stream wait for the
// work currently enqueued on other, by recording a transient event on other
// and inserting a queue-side wait on it.
func (s *Stream) WaitStream(other *Stream) error {
	event, err := CreateEvent(false, false, false)
	if err != nil {
		return err
	}
	defer event.Destroy()
	if err := event.Record(other); err != nil {
		return err
	}
	return s.WaitEvent(event)
}

// Query reports whether all work submitted to the stream has completed.
func (s *Stream) Query() (bool, error) {
	return runtimeStreamQuery(s.handle)
}

// Synchronize blocks the calling goroutine until all work submitted to the
// stream has completed.
func (s *Stream) Synchronize() error {
	return runtimeStreamSynchronize(s.handle)
}
