//go:build !cuda && !hip

package collective

// Stub backend, compiled when neither vendor build tag is set.

// Built reports whether a collective library was compiled into this binary.
func Built() bool { return false }

// Library returns the name of the collective library this binary was built
// against.
func Library() string { return "none" }

// Config is a communicator configuration blob. In stub builds no Config is
// ever constructed; the type exists so callers compile unchanged.
type Config struct{}

// DefaultConfig fails in stub builds: the default values live in the vendor
// header's initializer macro and are never reproduced independently.
func DefaultConfig() (*Config, error) {
	return nil, ErrNotBuilt
}

// Apply overwrites the config's tuning fields with t's values.
func (t Tuning) Apply(c *Config) {}

// Free releases C memory owned by the config.
func (c *Config) Free() {}

// Blocking returns the blocking field; UndefInt means unset.
func (c *Config) Blocking() int { return 0 }

// CGAClusterSize returns the CGA cluster size field; UndefInt means unset.
func (c *Config) CGAClusterSize() int { return 0 }

// MinCTAs returns the minimum CTA count field; UndefInt means unset.
func (c *Config) MinCTAs() int { return 0 }

// MaxCTAs returns the maximum CTA count field; UndefInt means unset.
func (c *Config) MaxCTAs() int { return 0 }

// SplitShare returns the split-share field; UndefInt means unset.
func (c *Config) SplitShare() int { return 0 }

// NetName returns the forced network transport name, or "" when unset.
func (c *Config) NetName() string { return "" }

// NewUniqueID asks the library for a fresh communicator bootstrap ID.
func NewUniqueID() (UniqueID, error) {
	return UniqueID{}, ErrNotBuilt
}
