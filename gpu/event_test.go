package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventFlagsDerivation(t *testing.T) {
	tests := []struct {
		name         string
		timing       bool
		blocking     bool
		interprocess bool
		want         uint32
	}{
		{"none", false, false, false, eventDisableTiming},
		{"timing", true, false, false, eventDefault},
		{"blocking", false, true, false, eventBlockingSync | eventDisableTiming},
		{"interprocess", false, false, true, eventDisableTiming | eventInterprocess},
		{"timing+blocking", true, true, false, eventBlockingSync},
		{"timing+interprocess", true, false, true, eventInterprocess},
		{"blocking+interprocess", false, true, true, eventBlockingSync | eventDisableTiming | eventInterprocess},
		{"all", true, true, true, eventBlockingSync | eventInterprocess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eventFlags(tt.timing, tt.blocking, tt.interprocess))
		})
	}
}

// Timing is on by default in both vendor runtimes, so only the other three
// flags carry bits; the numeric values are fixed by the vendor headers.
func TestEventFlagValues(t *testing.T) {
	assert.Equal(t, uint32(0x0), uint32(eventDefault))
	assert.Equal(t, uint32(0x1), uint32(eventBlockingSync))
	assert.Equal(t, uint32(0x2), uint32(eventDisableTiming))
	assert.Equal(t, uint32(0x4), uint32(eventInterprocess))
}

func TestDestroyedEventIsInert(t *testing.T) {
	e := &Event{handle: 0}
	assert.NoError(t, e.Destroy())
}
