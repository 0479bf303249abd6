package bitutil

import "testing"

func TestMask(t *testing.T) {
	tests := []struct {
		width, offset uint
		want          uint64
	}{
		{0, 0, 0},
		{0, 5, 0},
		{4, 0, 0xF},
		{4, 12, 0xF000},
		{64, 0, ^uint64(0)},
		{2, 62, 0xC000000000000000},
	}
	for _, tt := range tests {
		if got := Mask(tt.width, tt.offset); got != tt.want {
			t.Errorf("Mask(%d, %d) = %#x, want %#x", tt.width, tt.offset, got, tt.want)
		}
	}
}

func TestLdbDpbRoundTrip(t *testing.T) {
	mask := Mask(4, 12)
	var n uint64 = 0x1234_5678_9abc_def0
	n = Dpb(mask, n, 0x7)
	if got := Ldb(mask, n); got != 0x7 {
		t.Errorf("Ldb after Dpb = %#x, want 0x7", got)
	}
	// Other bits untouched outside the field.
	if n&^mask != 0x1234_5678_9abc_def0&^mask {
		t.Error("Dpb modified bits outside the target field")
	}
}

func TestDpbZeroMask(t *testing.T) {
	var n uint64 = 0xdeadbeef
	if got := Dpb(0, n, 0xff); got != n {
		t.Errorf("Dpb with zero mask = %#x, want unchanged %#x", got, n)
	}
}

func TestPutU64BEAndU64BE(t *testing.T) {
	var buf [16]byte
	PutU64BE(buf[:], 4, 0x0102030405060708)
	got := U64BE(buf[:], 4)
	if got != 0x0102030405060708 {
		t.Errorf("U64BE(PutU64BE(v)) = %#x, want %#x", got, uint64(0x0102030405060708))
	}
}

func TestHex64(t *testing.T) {
	if got, want := Hex64(0), "0000000000000000"; got != want {
		t.Errorf("Hex64(0) = %q, want %q", got, want)
	}
	if got, want := Hex64(^uint64(0)), "ffffffffffffffff"; got != want {
		t.Errorf("Hex64(max) = %q, want %q", got, want)
	}
}
