// Package nanoclock provides the wall-anchored nanosecond time source used
// by Flake timestamps: a one-time wall-clock anchor combined with the
// runtime's monotonic clock reading, so that successive calls within a
// goroutine are strictly increasing even though the OS wall clock itself is
// not guaranteed to be.
//
// This mirrors forestrie's snowflakeid.millisecondMonotonicNow: anchor a
// time.Time once at startup, then always advance by Sub-ing against that
// anchor, which (per the time package docs) computes the duration from the
// monotonic reading embedded in both values rather than from wall time.
package nanoclock

import (
	"sync"
	"time"
)

var (
	once        sync.Once
	wallStartNS int64
	monoAnchor  time.Time
)

func anchor() {
	monoAnchor = time.Now()
	wallStartNS = monoAnchor.UnixMilli() * 1_000_000
}

// Now returns the current nanosecond timestamp: the process's one-time wall
// anchor plus the monotonic delta since that anchor. It is not re-anchored,
// so long-running processes drift relative to NTP-corrected wall time by
// design; see the open question in the source specification.
func Now() uint64 {
	once.Do(anchor)
	delta := time.Since(monoAnchor)
	return uint64(wallStartNS + int64(delta))
}
