package f1337patch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Constants for 1337patch file format parsing.
const (
	// HeaderMarker is the character every header line must start with
	HeaderMarker = '>'

	// AddressDigits is the width of the address field in hex characters
	AddressDigits = 16

	// ValueDigits is the width of the old and new value fields in hex characters
	ValueDigits = 2

	// PatchLineLength is the exact length of a patch line after the line
	// ending is stripped: address, ":", old value, "->", new value
	PatchLineLength = AddressDigits + 1 + ValueDigits + 2 + ValueDigits

	// DefaultPatchCapacity is the default initial capacity for the patch slice
	DefaultPatchCapacity = 64
)

// Field offsets within a patch line, derived from the widths above.
const (
	colonPos = AddressDigits          // 16
	oldStart = colonPos + 1           // 17
	oldEnd   = oldStart + ValueDigits // 19
	arrowEnd = oldEnd + 2             // 21
	newEnd   = arrowEnd + ValueDigits // 23
)

// ParseReader parses a 1337patch description from any seekable byte source,
// such as an *os.File or a *bytes.Reader. The source is rewound to its start
// first, so any prior cursor position the caller left on it is irrelevant; a
// failed rewind is reported as a *ReadError and parsing does not proceed.
//
// The caller owns the source: this function never opens or closes file
// handles. Both "\n" and "\r\n" line endings are accepted.
//
// Parsing fails fast: the first malformed line aborts the whole operation and
// no partial result is returned. A header-only input is valid and yields zero
// patches. An empty target filename after the ">" marker is accepted.
//
// Example:
//
//	f, err := os.Open("crack.1337patch")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	patch, err := f1337patch.ParseReader(f)
func ParseReader(r io.ReadSeeker) (*F1337Patch, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, &ReadError{Op: "seek to start", Err: err}
	}

	scanner := bufio.NewScanner(r)

	// Parse header (first line)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, scanFailure("read header", err)
		}
		return nil, &FormatError{Reason: "missing header line"}
	}

	fp, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, err
	}

	// Parse patch lines
	lineNum := 1
	for scanner.Scan() {
		lineNum++

		patch, err := parsePatchLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		fp.AddPatch(patch)
	}

	if err := scanner.Err(); err != nil {
		return nil, scanFailure("read patch lines", err)
	}

	return fp, nil
}

// scanFailure classifies a scanner error. A line that overflows the scanner's
// buffer is many times longer than any valid line, so it is bad content, not
// an I/O failure.
func scanFailure(op string, err error) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return &FormatError{Reason: fmt.Sprintf("line exceeds %d characters", bufio.MaxScanTokenSize)}
	}
	return &ReadError{Op: op, Err: err}
}

// parseHeader parses the header line of a 1337patch file.
//
// Header format: ">" followed by the target filename, up to the line ending.
// The filename is stored verbatim; it may be empty.
//
// Example: ">test.exe" -> target filename "test.exe"
func parseHeader(line string) (*F1337Patch, error) {
	if len(line) == 0 || line[0] != HeaderMarker {
		return nil, &FormatError{Reason: "header line must start with '>'"}
	}

	// ParseReader's scanner has already stripped the line ending; the trim
	// matters only when parseHeader is handed a raw line directly.
	return NewF1337Patch(strings.TrimRight(line[1:], "\r\n")), nil
}

// parsePatchLine validates and decodes a single patch line.
//
// Line format (exactly 23 characters):
//
//	[Address(16)]:[Old(2)]->[New(2)]
//
// all hex-encoded, case-insensitive.
//
// Example: "0000000000AF0200:13->37"
//
//	Address: 0x0000000000AF0200
//	Old: 0x13
//	New: 0x37
func parsePatchLine(line string) (HexPatch, error) {
	if err := checkPatchLineFormat(line); err != nil {
		return HexPatch{}, err
	}

	// The structural checks above already guarantee hex-digit composition,
	// so these conversions cannot fail for 16- and 2-digit fields. The
	// address error path is kept distinct for variable-width formats.
	address, err := strconv.ParseUint(line[:colonPos], 16, 64)
	if err != nil {
		return HexPatch{}, &ConversionError{Field: "address", Err: err}
	}

	old, err := strconv.ParseUint(line[oldStart:oldEnd], 16, 8)
	if err != nil {
		return HexPatch{}, &FormatError{Reason: "invalid old value"}
	}

	new, err := strconv.ParseUint(line[arrowEnd:newEnd], 16, 8)
	if err != nil {
		return HexPatch{}, &FormatError{Reason: "invalid new value"}
	}

	return NewHexPatch(address, byte(old), byte(new)), nil
}

// checkPatchLineFormat verifies the fixed-width grammar of a patch line
// without decoding it.
func checkPatchLineFormat(line string) error {
	if len(line) != PatchLineLength {
		return &FormatError{Reason: fmt.Sprintf("patch line must be %d characters, got %d", PatchLineLength, len(line))}
	}
	if line[colonPos] != ':' {
		return &FormatError{Reason: "missing ':' after address"}
	}
	if line[oldEnd:arrowEnd] != "->" {
		return &FormatError{Reason: "missing '->' after old value"}
	}
	if !isHexDigits(line[:colonPos]) {
		return &FormatError{Reason: "address is not hex"}
	}
	if !isHexDigits(line[oldStart:oldEnd]) {
		return &FormatError{Reason: "old value is not hex"}
	}
	if !isHexDigits(line[arrowEnd:newEnd]) {
		return &FormatError{Reason: "new value is not hex"}
	}
	return nil
}

// isHexDigits reports whether s consists only of hex digits (0-9, a-f, A-F).
func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
