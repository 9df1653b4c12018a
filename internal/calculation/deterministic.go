package calculation

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// seedFunc returns the seed for unseeded runs (override for deterministic
// tests via SetSeedFunc).
var seedFunc = entropySeed

// SetSeedFunc overrides the seed provider (use only in tests).
func SetSeedFunc(f func() int64) { seedFunc = f }

// entropySeed draws a seed from the OS entropy pool so that unseeded runs
// differ even within one clock tick. Falls back to the wall clock if the
// pool is unavailable.
func entropySeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
