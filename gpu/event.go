package gpu

import "time"

// Event is a GPU-side synchronization marker. It can be recorded at the
// current position of a stream's command queue and later queried, waited on
// from the host, or used as a queue-side dependency via Stream.WaitEvent.
//
// An event must be recorded before a wait or query on it is meaningful; the
// runtime does not enforce this and neither does this package.
//
// The caller owns the event and must release it with Destroy.
type Event struct {
	handle uintptr
	flags  uint32
}

// CreateEvent allocates a new event on the active device.
//
// The three booleans map onto the vendor creation flags:
//   - timing: when false, the disable-timing flag is set and the event
//     cannot be used with Elapsed
//   - blocking: when true, host-side Synchronize blocks the calling thread
//     instead of spinning
//   - interprocess: when true, the event is visible across processes
func CreateEvent(timing, blocking, interprocess bool) (*Event, error) {
	flags := eventFlags(timing, blocking, interprocess)
	handle, err := runtimeEventCreate(flags)
	if err != nil {
		return nil, err
	}
	return &Event{handle: handle, flags: flags}, nil
}

// eventFlags derives the vendor flag word from the three creation booleans.
// The derivation matches both vendor runtimes: timing is on by default and
// must be explicitly disabled, the other two are explicitly enabled.
func eventFlags(timing, blocking, interprocess bool) uint32 {
	flags := uint32(eventDefault)
	if blocking {
		flags |= eventBlockingSync
	}
	if !timing {
		flags |= eventDisableTiming
	}
	if interprocess {
		flags |= eventInterprocess
	}
	return flags
}

// Handle returns the raw native event handle as an unsigned integer. The
// value identifies the event for debugging and interop; it does not extend
// the event's lifetime.
func (e *Event) Handle() uintptr {
	return e.handle
}

// Flags returns the vendor flag word the event was created with.
func (e *Event) Flags() uint32 {
	return e.flags
}

// Record marks the event at the current position of the given stream's
// command queue. A nil stream records on the active device's current
// stream.
func (e *Event) Record(s *Stream) error {
	if s == nil {
		current, err := CurrentStream(CurrentDeviceIndex)
		if err != nil {
			return err
		}
		s = current
	}
	return runtimeEventRecord(e.handle, s.handle)
}

// Query reports whether all work captured by the most recent Record has
// completed. It never blocks.
func (e *Event) Query() (bool, error) {
	return runtimeEventQuery(e.handle)
}

// Synchronize blocks the calling goroutine until all work captured by the
// most recent Record has completed.
func (e *Event) Synchronize() error {
	return runtimeEventSynchronize(e.handle)
}

// Elapsed returns the time between this event's recorded point and end's.
// Both events must have been created with timing enabled and both must have
// completed.
func (e *Event) Elapsed(end *Event) (time.Duration, error) {
	ms, err := runtimeEventElapsed(e.handle, end.handle)
	if err != nil {
		return 0, err
	}
	return time.Duration(float64(ms) * float64(time.Millisecond)), nil
}

// Destroy releases the native event. The event must not be used afterward.
func (e *Event) Destroy() error {
	if e.handle == 0 {
		return nil
	}
	err := runtimeEventDestroy(e.handle)
	if err == nil {
		e.handle = 0
	}
	return err
}
