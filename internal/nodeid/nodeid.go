// Package nodeid derives the process-wide 48-bit node identifier and
// clock-sequence seed used by UUID v1 and v6, per RFC 9562 §6.10 and §5.1/§5.6.
//
// The node id is computed once, lazily, from a fingerprint of the host
// (hostname, interface addresses, and a handful of runtime properties) so
// that it is stable for the life of the process without claiming to be a
// real MAC address: the multicast bit of the first octet is always forced
// to 1, the same trick forestrie's snowflakeid package uses to keep
// synthetic worker ids out of the real-hardware address space.
package nodeid

import (
	"crypto/md5"
	"fmt"
	"net"
	"os"
	"runtime"
	"sync"

	"github.com/uidkit/guuid/internal/bitutil"
	"github.com/uidkit/guuid/internal/randpool"
)

const (
	maskClkLow  = 0xFF        // low 8 bits of clock sequence
	maskClkHigh = 0x3F00 >> 8 // high 6 bits of clock sequence (after >>8)
)

// Identity holds the node value, clock sequence, and the two precomputed
// 64-bit lsb words used to build the lo word of v1 and v6 UUIDs.
type Identity struct {
	Node          uint64 // 48-bit node id derived from host fingerprint
	V6Node        uint64 // 48-bit random node substitute, per RFC 9562 §5.6
	ClockSequence uint16 // 14-bit (stored in 16) clock sequence seed
	V1LSB         uint64 // precomputed lo word for v1
	V6LSB         uint64 // precomputed lo word for v6
}

var (
	once     sync.Once
	identity Identity
)

// Get returns the process-wide node identity, computing it on first use.
func Get() Identity {
	once.Do(initIdentity)
	return identity
}

func initIdentity() {
	node := deriveNode()
	v6Node := randomNode()
	seq := randomClockSequence()

	identity = Identity{
		Node:          node,
		V6Node:        v6Node,
		ClockSequence: seq,
		V1LSB:         buildLSB(node, seq),
		V6LSB:         buildLSB(v6Node, seq),
	}
}

// buildLSB packs a 48-bit node value and a 14-bit clock sequence (with the
// RFC 9562 variant "10" in the top two bits of the high clock-sequence byte)
// into the 64-bit lo word shared by v1 and v6.
func buildLSB(node uint64, seq uint16) uint64 {
	clkLow := uint64(seq) & maskClkLow
	clkHighWithVariant := bitutil.Dpb(bitutil.Mask(2, 6), uint64(seq>>8)&0x3F, 0b10)

	lo := bitutil.Dpb(bitutil.Mask(48, 0), 0, node)
	lo = bitutil.Dpb(bitutil.Mask(8, 48), lo, clkLow)
	lo = bitutil.Dpb(bitutil.Mask(8, 56), lo, clkHighWithVariant)
	return lo
}

// deriveNode fingerprints the host (hostname, interface addresses, and a
// small set of runtime properties), hashes it with MD5, and forces the
// multicast bit of the resulting 48-bit value so it can never collide with
// a real burned-in MAC address. When no non-loopback interface is found it
// returns randomNode() instead.
func deriveNode() uint64 {
	h := md5.New()

	if name, err := os.Hostname(); err == nil {
		fmt.Fprint(h, name)
	}
	usable := false
	if ifaces, err := net.Interfaces(); err == nil {
		for _, iface := range ifaces {
			if iface.Flags&net.FlagLoopback == 0 {
				usable = true
			}
			fmt.Fprint(h, iface.HardwareAddr.String())
			if addrs, err := iface.Addrs(); err == nil {
				for _, a := range addrs {
					fmt.Fprint(h, a.String())
				}
			}
		}
	}
	if !usable {
		return randomNode()
	}
	fmt.Fprint(h, runtime.GOOS, runtime.GOARCH, runtime.Version(), os.Getpid())

	sum := h.Sum(nil)
	var node uint64
	for i := 0; i < 6; i++ {
		node = node<<8 | uint64(sum[i])
	}
	return setMulticastBit(node)
}

// randomNode returns a fully random 48-bit node value with the multicast
// bit forced, used as the v6 node substitute and as the deriveNode fallback
// on hosts with no usable network interfaces.
func randomNode() uint64 {
	return setMulticastBit(randpool.U64() & bitutil.Mask(48, 0))
}

func setMulticastBit(node uint64) uint64 {
	firstOctet := (node >> 40) & 0xFF
	firstOctet |= 0x01
	return bitutil.Dpb(bitutil.Mask(8, 40), node, firstOctet)
}

// randomClockSequence chooses a non-zero 14-bit clock sequence uniformly at
// random.
func randomClockSequence() uint16 {
	seq := uint16(randpool.U64() & 0x3FFF)
	if seq == 0 {
		seq = 1
	}
	return seq
}
