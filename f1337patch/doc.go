// Package f1337patch provides parsing for 1337patch files.
//
// # 1337patch File Format
//
// A 1337patch file is a plain text description of byte-level modifications to
// apply to a target binary. It consists of a header line naming the target
// file, followed by one patch line per modified byte.
//
// Header Format:
//
//	>TARGET_FILENAME
//
// The header starts with '>' and the rest of the line is the target filename,
// stored verbatim.
//
// Patch Line Format (exactly 23 characters):
//
//	[Address(16)]:[Old(2)]->[New(2)]
//
// Example file:
//
//	>test.exe
//	0000000000AF0200:13->37
//	0000000000AF0206:37->37
//
//	  0000000000AF0200 = byte offset into test.exe (0xAF0200)
//	  13 = byte value expected at that offset
//	  37 = byte value to write
//
// Hex digits are accepted in either case on input; the canonical rendering is
// uppercase. Line endings may be "\n" or "\r\n". A file with only a header
// line is valid and describes zero patches.
//
// # Usage
//
// Parse a patch file the caller has opened (the caller keeps ownership of the
// handle):
//
//	f, err := os.Open("crack.1337patch")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	patch, err := f1337patch.ParseReader(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Target: %s\n", patch.TargetFilename)
//	for _, p := range patch.Patches {
//	    fmt.Println(p) // 0000000000AF0200:13->37
//	}
//
// Or build a description programmatically:
//
//	patch := f1337patch.NewF1337Patch("test.exe")
//	patch.AddPatch(f1337patch.NewHexPatch(0xAF0200, 0x13, 0x37))
//
// Patches keep their insertion order; downstream tooling applies them in that
// order. This package only reads and represents patch descriptions, it never
// touches the target binary.
//
// # Error Handling
//
// ParseReader fails fast on the first problem and never returns a partial
// result. Errors come in three kinds so callers can react differently to each:
//
//   - *FormatError: the input violates the grammar (corrupt patch file)
//   - *ReadError: the source could not be read, wraps the I/O cause
//   - *ConversionError: a structurally valid field could not be decoded
//     (unreachable with the fixed field widths, reserved for forward
//     compatibility)
//
// Use IsFormatError, IsReadError and IsConversionError to classify an error
// regardless of wrapping.
package f1337patch
