// Package guuid provides a unified implementation of RFC 9562 UUIDs
// (versions 0/null, 1, 3, 4, 5, 6, 7, 8, max, and the non-standard SQUUID)
// plus Flake, a 192-bit time-ordered identifier with a custom
// order-preserving base-64 string form, in the sibling flake package.
//
// Time-ordered UUIDs (v6, v7) are naturally sortable by creation time in
// their byte and string order, making them well suited to:
//   - Database primary keys (improved B-tree locality)
//   - Distributed systems requiring time-ordered identifiers
//   - Event sourcing and audit logs
//
// v1 carries the same Gregorian timestamp as v6, but with its low time
// bits first, so its byte order does not follow creation time.
//
// Basic Usage:
//
//	// Generate a new UUIDv7
//	id, err := guuid.NewV7()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String())
//
//	// Parse a UUID from its canonical or URN string form
//	id, err := guuid.Parse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Get the embedded timestamp from a time-ordered UUID
//	ms, ok := id.UnixTimeMilli()
//
// Name-based UUIDs:
//
//	id, err := guuid.NewV5(guuid.NamespaceDNS, "example.com")
//
// Custom Generators:
//
//	// Isolated generators for v1, v6, and v7 share the same process-wide
//	// clocks and node identity, so output stays globally ordered
//	// regardless of how many generator values exist.
//	gen := guuid.NewV7Generator()
//	for i := 0; i < 1000; i++ {
//	    id, err := gen.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    // Use id...
//	}
//
// Thread Safety:
//
// All operations are safe for concurrent use. The default generators can
// be called concurrently from multiple goroutines without additional
// synchronization.
//
// Standards Compliance:
//
// This implementation follows RFC 9562 for UUID bit layout, string forms,
// and namespace constants.
package guuid
