package guuid

import "testing"

func TestNewV1_VersionAndVariant(t *testing.T) {
	uuid := NewV1()
	if uuid.Version() != VersionTimeBased {
		t.Errorf("Version() = %v, want %v", uuid.Version(), VersionTimeBased)
	}
	if uuid.Variant() != VariantRFC9562 {
		t.Errorf("Variant() = %v, want %v", uuid.Variant(), VariantRFC9562)
	}
}

func TestV1Generator_Monotonicity(t *testing.T) {
	gen := NewV1Generator()

	const count = 200
	uuids := make([]UUID, count)
	for i := 0; i < count; i++ {
		uuids[i] = gen.New()
	}

	for i := 1; i < count; i++ {
		if uuids[i].Equal(uuids[i-1]) {
			t.Errorf("duplicate UUID at index %d", i)
		}
		tsPrev, _ := uuids[i-1].Timestamp()
		tsCur, _ := uuids[i].Timestamp()
		if tsCur < tsPrev {
			t.Errorf("timestamps not monotone at index %d", i)
		}
	}
}

func TestV1Generator_ConcurrentUniqueness(t *testing.T) {
	gen := NewV1Generator()
	const goroutines = 10
	const perGoroutine = 200

	results := make(chan UUID, goroutines*perGoroutine)
	done := make(chan bool, goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			for j := 0; j < perGoroutine; j++ {
				results <- gen.New()
			}
			done <- true
		}()
	}
	for i := 0; i < goroutines; i++ {
		<-done
	}
	close(results)

	seen := make(map[UUID]bool)
	for uuid := range results {
		if seen[uuid] {
			t.Errorf("duplicate UUID generated: %v", uuid)
		}
		seen[uuid] = true
	}
	if len(seen) != goroutines*perGoroutine {
		t.Errorf("expected %d unique UUIDs, got %d", goroutines*perGoroutine, len(seen))
	}
}

func TestNewV1_NodeIDMulticastBit(t *testing.T) {
	uuid := NewV1()
	node := uuid.NodeID()
	firstOctet := byte(node >> 40)
	if firstOctet&0x01 == 0 {
		t.Errorf("node id first octet %02x has multicast bit clear", firstOctet)
	}
}
