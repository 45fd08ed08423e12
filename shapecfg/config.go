package shapecfg

import (
	"errors"
	"fmt"
)

// Sentinel errors for Config construction.
var (
	// ErrNonPositiveDimension is returned when L or P is not strictly positive.
	ErrNonPositiveDimension = errors.New("shapecfg: L and P must be positive")

	// ErrWordTooWide is returned when 2*L*P exceeds 64 bits, i.e. a shape
	// would not fit in a single machine word.
	ErrWordTooWide = errors.New("shapecfg: 2*L*P exceeds 64 bits")
)

// Config is the (L,P) pair shared by every algorithm in this module:
// L layers (axial, layer 0 is the ground) and P parts per layer (radial,
// indexed clockwise modulo P).
//
// Config is an immutable value type; construct it once via New and pass
// it by value, same as the teacher's *core.Graph is passed by pointer to
// every traversal function instead of living behind a package global.
type Config struct {
	L int
	P int
}

// New validates and returns a Config. 2*L*P must fit a 64-bit word since
// Shape is a packed uint64.
//
// Complexity: O(1) time, O(1) space.
func New(l, p int) (Config, error) {
	if l <= 0 || p <= 0 {
		return Config{}, fmt.Errorf("%w: got L=%d P=%d", ErrNonPositiveDimension, l, p)
	}
	if 2*l*p > 64 {
		return Config{}, fmt.Errorf("%w: L=%d P=%d needs %d bits", ErrWordTooWide, l, p, 2*l*p)
	}

	return Config{L: l, P: p}, nil
}

// MustNew is New, but panics on an invalid (L,P). Intended for package-level
// defaults and tests where the dimensions are compile-time-known constants,
// mirroring how builder.WithIDScheme panics on a nil function: option/config
// constructors validate and panic on programmer error, algorithms never do.
func MustNew(l, p int) Config {
	cfg, err := New(l, p)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Bits returns the number of bits a packed Shape needs under this Config:
// 2*L*P, two bits per cell.
func (c Config) Bits() int {
	return 2 * c.L * c.P
}

// WordSize returns the machine word width (32 or 64) that can hold a
// packed Shape under this Config: 32-bit when 2*L*P <= 32, else 64-bit.
// Shape itself always stores a uint64; WordSize only informs the on-disk
// dump format's word-size choice and diagnostics.
func (c Config) WordSize() int {
	if c.Bits() <= 32 {
		return 32
	}

	return 64
}

// HalfParts returns P/2, the number of parts in a half (west or east).
// Only meaningful when P is even; callers that split shapes into halves
// (enumerate.Run, enumerate.Combinable, symmetry.EquivalentHalves)
// assume an even P.
func (c Config) HalfParts() int {
	return c.P / 2
}

// Commonly used factory configurations.
var (
	// ConfigL4P4 is the smaller production configuration.
	ConfigL4P4 = MustNew(4, 4)

	// ConfigL5P4 is the larger production configuration.
	ConfigL5P4 = MustNew(5, 4)
)
