package f1337patch

import "fmt"

// HexPatch represents a single byte-level modification of the target file.
type HexPatch struct {
	// TargetAddress is the byte offset into the target file
	TargetAddress uint64

	// Old is the byte value expected at TargetAddress before patching
	Old byte

	// New is the byte value to write at TargetAddress
	New byte
}

// NewHexPatch creates a HexPatch from an address, the expected old byte and
// the replacement byte. Old and new may be equal; such a patch is a valid
// no-op.
func NewHexPatch(address uint64, old, new byte) HexPatch {
	return HexPatch{
		TargetAddress: address,
		Old:           old,
		New:           new,
	}
}

// String renders the patch in its canonical on-disk form: 16 uppercase hex
// digits of address, then ":", the old value, "->" and the new value, each as
// 2 uppercase hex digits.
//
// Example:
//
//	0000000000AF0200:13->37
//
// The rendered line parses back to an equal HexPatch.
func (p HexPatch) String() string {
	return fmt.Sprintf("%016X:%02X->%02X", p.TargetAddress, p.Old, p.New)
}

// F1337Patch represents a complete parsed 1337patch file: the name of the
// file the patches apply to, plus the patches in the order they appeared.
type F1337Patch struct {
	// TargetFilename is the file the patches apply to, taken verbatim from
	// the header line (no path validation, may be empty)
	TargetFilename string

	// Patches are the byte modifications, in file order. Later tooling
	// applies them in this order. Duplicate or overlapping addresses are
	// allowed and not detected.
	Patches []HexPatch
}

// NewF1337Patch creates an empty patch set for the given target filename.
func NewF1337Patch(targetFilename string) *F1337Patch {
	return &F1337Patch{
		TargetFilename: targetFilename,
		Patches:        make([]HexPatch, 0, DefaultPatchCapacity),
	}
}

// AddPatch appends a patch to the end of the sequence. No deduplication or
// validation is performed.
func (f *F1337Patch) AddPatch(p HexPatch) {
	f.Patches = append(f.Patches, p)
}
