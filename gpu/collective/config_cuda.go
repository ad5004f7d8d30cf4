//go:build cuda

package collective

/*
#cgo LDFLAGS: -lnccl
#include <stdlib.h>
#include <nccl.h>

// ncclConfig_t can only be initialized through the vendor macro; wrapping
// the macro use in a function is the only way to reach it from Go.
static ncclConfig_t collectiveDefaultConfig(void) {
	ncclConfig_t config = NCCL_CONFIG_INITIALIZER;
	return config;
}
*/
import "C"

import "unsafe"

// Built reports whether a collective library was compiled into this binary.
func Built() bool { return true }

// Library returns the name of the collective library this binary was built
// against.
func Library() string { return "nccl" }

// Config is a communicator configuration blob. Its field layout is dictated
// by the vendor ABI; it is created exclusively by DefaultConfig and mutated
// only through Tuning.Apply.
type Config struct {
	raw     C.ncclConfig_t
	netName *C.char
}

// DefaultConfig returns a configuration with every field set to the
// vendor's documented defaults, bit-for-bit the expansion of the vendor's
// own initializer macro.
func DefaultConfig() (*Config, error) {
	return &Config{raw: C.collectiveDefaultConfig()}, nil
}

// Apply overwrites the config's tuning fields with t's values.
func (t Tuning) Apply(c *Config) {
	if t.Blocking {
		c.raw.blocking = 1
	} else {
		c.raw.blocking = 0
	}
	c.raw.cgaClusterSize = C.int(t.CGAClusterSize)
	c.raw.minCTAs = C.int(t.MinCTAs)
	c.raw.maxCTAs = C.int(t.MaxCTAs)
	if t.SplitShare {
		c.raw.splitShare = 1
	} else {
		c.raw.splitShare = 0
	}
	if t.NetName != "" {
		c.Free()
		c.netName = C.CString(t.NetName)
		c.raw.netName = c.netName
	}
}

// Free releases C memory owned by the config (the net name string, if one
// was applied). Safe to call on configs that own nothing.
func (c *Config) Free() {
	if c.netName != nil {
		C.free(unsafe.Pointer(c.netName))
		c.netName = nil
		c.raw.netName = nil
	}
}

// Blocking returns the blocking field; UndefInt means unset.
func (c *Config) Blocking() int { return int(c.raw.blocking) }

// CGAClusterSize returns the CGA cluster size field; UndefInt means unset.
func (c *Config) CGAClusterSize() int { return int(c.raw.cgaClusterSize) }

// MinCTAs returns the minimum CTA count field; UndefInt means unset.
func (c *Config) MinCTAs() int { return int(c.raw.minCTAs) }

// MaxCTAs returns the maximum CTA count field; UndefInt means unset.
func (c *Config) MaxCTAs() int { return int(c.raw.maxCTAs) }

// SplitShare returns the split-share field; UndefInt means unset.
func (c *Config) SplitShare() int { return int(c.raw.splitShare) }

// NetName returns the forced network transport name, or "" when unset.
func (c *Config) NetName() string {
	if c.raw.netName == nil {
		return ""
	}
	return C.GoString(c.raw.netName)
}

// rawBytes exposes the blob for byte-level comparison in tests.
func (c *Config) rawBytes() []byte {
	return C.GoBytes(unsafe.Pointer(&c.raw), C.int(unsafe.Sizeof(c.raw)))
}

// NewUniqueID asks the library for a fresh communicator bootstrap ID.
func NewUniqueID() (UniqueID, error) {
	var raw C.ncclUniqueId
	code := C.ncclGetUniqueId(&raw)
	if err := resultError(int32(code), C.GoString(C.ncclGetErrorString(code))); err != nil {
		return UniqueID{}, err
	}
	var id UniqueID
	copy(id[:], C.GoBytes(unsafe.Pointer(&raw), C.int(unsafe.Sizeof(raw))))
	return id, nil
}
