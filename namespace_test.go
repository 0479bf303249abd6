package guuid

import "testing"

func TestNamespaceConstants(t *testing.T) {
	tests := []struct {
		name string
		ns   UUID
		want string
	}{
		{"DNS", NamespaceDNS, "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{"URL", NamespaceURL, "6ba7b811-9dad-11d1-80b4-00c04fd430c8"},
		{"OID", NamespaceOID, "6ba7b812-9dad-11d1-80b4-00c04fd430c8"},
		{"X500", NamespaceX500, "6ba7b814-9dad-11d1-80b4-00c04fd430c8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ns.String() != tt.want {
				t.Errorf("Namespace%s = %v, want %v", tt.name, tt.ns.String(), tt.want)
			}
		})
	}
}

func TestNewNilAndNewMax(t *testing.T) {
	if NewNil() != Nil {
		t.Error("NewNil() != Nil")
	}
	if NewNil().Version() != VersionNil {
		t.Errorf("NewNil().Version() = %v, want %v", NewNil().Version(), VersionNil)
	}

	if NewMax() != Max {
		t.Error("NewMax() != Max")
	}
	if NewMax().Version() != VersionMax {
		t.Errorf("NewMax().Version() = %v, want %v", NewMax().Version(), VersionMax)
	}
}
