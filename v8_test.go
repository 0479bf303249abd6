package guuid

import "testing"

func TestNewV8FromWords_GoldenVectors(t *testing.T) {
	tests := []struct {
		name   string
		hi, lo uint64
		want   string
	}{
		{"all zero", 0, 0, "00000000-0000-8000-8000-000000000000"},
		{"all ones", ^uint64(0), ^uint64(0), "ffffffff-ffff-8fff-bfff-ffffffffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewV8FromWords(tt.hi, tt.lo)
			if got.String() != tt.want {
				t.Errorf("NewV8FromWords() = %v, want %v", got.String(), tt.want)
			}
		})
	}
}

func TestNewV8_VersionAndVariant(t *testing.T) {
	for i := 0; i < 100; i++ {
		uuid := NewV8()
		if uuid.Version() != VersionCustom {
			t.Errorf("Version() = %v, want %v", uuid.Version(), VersionCustom)
		}
		if uuid.Variant() != VariantRFC9562 {
			t.Errorf("Variant() = %v, want %v", uuid.Variant(), VariantRFC9562)
		}
	}
}
