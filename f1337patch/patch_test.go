package f1337patch

import "testing"

func TestNewHexPatch(t *testing.T) {
	p := NewHexPatch(0xAF0200, 0x13, 0x37)

	if p.TargetAddress != 0xAF0200 {
		t.Errorf("TargetAddress = 0x%X, want 0xAF0200", p.TargetAddress)
	}
	if p.Old != 0x13 {
		t.Errorf("Old = 0x%02X, want 0x13", p.Old)
	}
	if p.New != 0x37 {
		t.Errorf("New = 0x%02X, want 0x37", p.New)
	}
}

func TestHexPatchString(t *testing.T) {
	tests := []struct {
		name  string
		patch HexPatch
		want  string
	}{
		{
			name:  "typical patch",
			patch: NewHexPatch(0xAF0200, 0x13, 0x37),
			want:  "0000000000AF0200:13->37",
		},
		{
			name:  "zero values",
			patch: NewHexPatch(0, 0, 0),
			want:  "0000000000000000:00->00",
		},
		{
			name:  "max address",
			patch: NewHexPatch(0xFFFFFFFFFFFFFFFF, 0xAB, 0xCD),
			want:  "FFFFFFFFFFFFFFFF:AB->CD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.patch.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if len(tt.patch.String()) != PatchLineLength {
				t.Errorf("String() length = %d, want %d", len(tt.patch.String()), PatchLineLength)
			}
		})
	}
}

func TestHexPatchEquality(t *testing.T) {
	a := NewHexPatch(0xAF0200, 0x13, 0x37)
	b := NewHexPatch(0xAF0200, 0x13, 0x37)
	c := NewHexPatch(0xAF0200, 0x13, 0x38)

	if a != b {
		t.Errorf("%v != %v, want equal", a, b)
	}
	if a == c {
		t.Errorf("%v == %v, want not equal", a, c)
	}
}

func TestNewF1337Patch(t *testing.T) {
	fp := NewF1337Patch("test.exe")

	if fp.TargetFilename != "test.exe" {
		t.Errorf("TargetFilename = %q, want %q", fp.TargetFilename, "test.exe")
	}
	if len(fp.Patches) != 0 {
		t.Errorf("Patches = %v, want empty", fp.Patches)
	}
}

func TestAddPatch(t *testing.T) {
	fp := NewF1337Patch("test.exe")

	want := []HexPatch{
		NewHexPatch(0xAF0206, 0x37, 0x37),
		NewHexPatch(0xAF0200, 0x13, 0x37),
		NewHexPatch(0xAF0200, 0x13, 0x37), // duplicates are allowed
	}

	for _, p := range want {
		fp.AddPatch(p)
	}

	if len(fp.Patches) != len(want) {
		t.Fatalf("Patches count = %d, want %d", len(fp.Patches), len(want))
	}

	// Insertion order must be preserved, no reordering or deduplication.
	for i, p := range fp.Patches {
		if p != want[i] {
			t.Errorf("Patches[%d] = %v, want %v", i, p, want[i])
		}
	}
}
