// Package randpool provides a cryptographically seeded, thread-local random
// source for UUID v4/v8 fill and Flake entropy. Each goroutine that calls
// into the pool gets its own ChaCha8 stream seeded from crypto/rand, so the
// hot path never takes a lock.
package randpool

import (
	crand "crypto/rand"
	"io"
	mrand "math/rand/v2"
	"sync"
)

var pool = sync.Pool{
	New: func() any {
		return mrand.NewChaCha8(seed())
	},
}

func seed() [32]byte {
	var s [32]byte
	if _, err := io.ReadFull(crand.Reader, s[:]); err != nil {
		panic("randpool: crypto/rand unavailable: " + err.Error())
	}
	return s
}

// U64 returns a random 64-bit value from a pooled, per-goroutine stream.
func U64() uint64 {
	g := pool.Get().(*mrand.ChaCha8)
	defer pool.Put(g)
	return g.Uint64()
}

// U8 returns a random byte.
func U8() byte {
	return byte(U64())
}

// Fill fills buf with random bytes drawn from a pooled stream, 8 bytes at a
// time.
func Fill(buf []byte) {
	g := pool.Get().(*mrand.ChaCha8)
	defer pool.Put(g)
	for len(buf) >= 8 {
		var tmp [8]byte
		v := g.Uint64()
		for i := 0; i < 8; i++ {
			tmp[i] = byte(v >> (56 - 8*i))
		}
		copy(buf, tmp[:])
		buf = buf[8:]
	}
	if len(buf) > 0 {
		v := g.Uint64()
		for i := range buf {
			buf[i] = byte(v >> (56 - 8*i))
		}
	}
}
