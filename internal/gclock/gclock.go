// Package gclock implements the lock-free monotonic Gregorian clock used by
// UUID v1 and v6: a 60-bit value in 100-nanosecond units since
// 1582-10-15 00:00 UTC that strictly increases across all callers in the
// process, even under concurrent access.
//
// The clock cell packs (counter, millis) into a single atomic word and
// advances it with a compare-and-swap loop, the same shape as the
// single-word CAS clock in forestrie's snowflakeid.IDState.NextID: read the
// cell, compute the next value, CAS it in, and only return once the CAS
// wins.
package gclock

import (
	"sync/atomic"
	"time"
)

const (
	// MaxCounter is the largest sub-millisecond counter value C4 may issue;
	// the counter's 0..MaxCounter range covers exactly the 10_000 100-ns
	// ticks per millisecond the generation formula packs the counter into.
	MaxCounter = 9999

	counterBits = 14 // enough to hold 0..9999

	// GregorianEpochOffset100NS and UnixToUTOffsetMS are the two constants
	// the result formula combines with the issued (millis, counter) pair.
	GregorianEpochOffset100NS uint64 = 100_103_040_000_000_000
	UnixToUTOffsetMS          uint64 = 2_208_988_800_000
	msTo100NS                 uint64 = 10_000
)

// cell packs millis (high bits) and counter (low counterBits bits) into one
// atomic word so a single CAS can advance both together.
var cell atomic.Uint64

func pack(millis uint64, counter uint32) uint64 {
	return millis<<counterBits | uint64(counter)
}

func unpack(v uint64) (millis uint64, counter uint32) {
	return v >> counterBits, uint32(v & (1<<counterBits - 1))
}

// wallMillis returns the current wall-clock time in milliseconds.
var wallMillis = func() uint64 {
	return uint64(time.Now().UnixMilli())
}

// Next returns the next strictly increasing 100-ns Gregorian timestamp,
// spinning across wall-clock regressions and counter exhaustion until the
// millisecond advances.
func Next() uint64 {
	for {
		now := wallMillis()
		current := cell.Load()
		curMillis, curCounter := unpack(current)

		var next uint64
		switch {
		case curMillis < now:
			next = pack(now, 0)
		case curMillis > now:
			// Wall clock regressed; spin until it catches back up.
			continue
		default:
			c := curCounter + 1
			if c > MaxCounter {
				// Counter exhausted for this millisecond; spin for the next one.
				continue
			}
			next = pack(curMillis, c)
		}

		if cell.CompareAndSwap(current, next) {
			millis, counter := unpack(next)
			return toTimestamp(millis, counter)
		}
	}
}

func toTimestamp(millis uint64, counter uint32) uint64 {
	return GregorianEpochOffset100NS + (UnixToUTOffsetMS+millis)*msTo100NS + uint64(counter)
}
