package guuid

import "github.com/uidkit/guuid/internal/bitutil"

const (
	unixToGregorian100NSOffsetMS = 12_219_292_800_000
	ms100NSFactor                 = 10_000
)

// Timestamp returns the UUID's embedded timestamp, where it has one:
//   - v1, v6: the 60-bit Gregorian 100-ns timestamp.
//   - v7: the 48-bit Unix millisecond timestamp.
//
// The second return value is false for every other version.
func (u UUID) Timestamp() (uint64, bool) {
	switch u.Version() {
	case VersionTimeBased:
		return u.gregorianTimestampV1(), true
	case VersionReorderedTime:
		return u.gregorianTimestampV6(), true
	case VersionTimeSorted:
		return bitutil.Ldb(bitutil.Mask(48, 16), u.hi()), true
	default:
		return 0, false
	}
}

func (u UUID) gregorianTimestampV1() uint64 {
	hi := u.hi()
	timeLow := bitutil.Ldb(bitutil.Mask(32, 32), hi)
	timeMid := bitutil.Ldb(bitutil.Mask(16, 16), hi)
	timeHigh12 := bitutil.Ldb(bitutil.Mask(12, 0), hi)
	return timeHigh12<<48 | timeMid<<32 | timeLow
}

func (u UUID) gregorianTimestampV6() uint64 {
	hi := u.hi()
	timeHigh32 := bitutil.Ldb(bitutil.Mask(32, 32), hi)
	timeMid16 := bitutil.Ldb(bitutil.Mask(16, 16), hi)
	timeLow12 := bitutil.Ldb(bitutil.Mask(12, 0), hi)
	return timeHigh32<<28 | timeMid16<<12 | timeLow12
}

// UnixTimeMilli returns the UUID's embedded timestamp converted to Unix
// milliseconds, where it has one (v1, v6, v7). The second return value is
// false for every other version.
func (u UUID) UnixTimeMilli() (int64, bool) {
	ts, ok := u.Timestamp()
	if !ok {
		return 0, false
	}
	if u.Version() == VersionTimeSorted {
		return int64(ts), true
	}
	return int64(ts/ms100NSFactor) - unixToGregorian100NSOffsetMS, true
}

// NodeID returns the low 48 bits of the lo word: the node identifier for
// v1 and v6 UUIDs. It is meaningful only for those versions.
func (u UUID) NodeID() uint64 {
	return bitutil.Ldb(bitutil.Mask(48, 0), u.lo())
}

// ClockSequence returns the 14-bit clock sequence embedded in v1 and v6
// UUIDs, reconstructed from the upper bits of lo after masking out the
// two RFC 9562 variant bits. It is meaningful only for those versions.
func (u UUID) ClockSequence() uint16 {
	return uint16(bitutil.Ldb(bitutil.Mask(14, 48), u.lo()))
}
