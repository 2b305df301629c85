package qrcode

import (
	"strings"

	"github.com/ericlevine/qrgen/bitutil"
)

// alphanumericCharset is the 45-character set of alphanumeric mode, indexed
// by encoding value.
const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// Segment is a mode-tagged fragment of the data bit stream. Segments are
// immutable and created through MakeNumeric, MakeAlphanumeric, MakeBytes,
// and MakeECI.
type Segment struct {
	mode     Mode
	numChars int
	data     *bitutil.BitBuffer
}

// Mode returns the segment's encoding mode.
func (s Segment) Mode() Mode {
	return s.mode
}

// NumChars returns the number of source characters the segment encodes.
// It is zero for ECI segments.
func (s Segment) NumChars() int {
	return s.numChars
}

// BitLength returns the length of the segment's payload in bits.
func (s Segment) BitLength() int {
	return s.data.Len()
}

// IsNumeric reports whether text consists only of decimal digits.
func IsNumeric(text string) bool {
	for _, c := range text {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// IsAlphanumeric reports whether text can be encoded in alphanumeric mode.
func IsAlphanumeric(text string) bool {
	for _, c := range text {
		if !strings.ContainsRune(alphanumericCharset, c) {
			return false
		}
	}
	return true
}

// MakeNumeric creates a segment encoding a string of decimal digits.
// Digits are packed in groups of three into 10 bits, with a trailing group
// of two or one digit in 7 or 4 bits.
//
// Panics if text contains a non-digit character.
func MakeNumeric(text string) Segment {
	bb := bitutil.NewBitBuffer()
	accumData := uint32(0)
	accumCount := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			panic("qrcode: string contains non-numeric characters")
		}
		accumData = accumData*10 + uint32(c-'0')
		accumCount++
		if accumCount == 3 {
			bb.AppendBits(accumData, 10)
			accumData = 0
			accumCount = 0
		}
	}
	if accumCount > 0 {
		bb.AppendBits(accumData, accumCount*3+1)
	}
	return Segment{mode: ModeNumeric, numChars: len(text), data: bb}
}

// MakeAlphanumeric creates a segment encoding text from the 45-character
// alphanumeric set (digits, uppercase letters, and " $%*+-./:"). Character
// pairs are packed as 45*a+b into 11 bits, a trailing character into 6.
//
// Panics if text contains a character outside the set.
func MakeAlphanumeric(text string) Segment {
	bb := bitutil.NewBitBuffer()
	accumData := uint32(0)
	accumCount := 0
	for _, c := range text {
		i := strings.IndexRune(alphanumericCharset, c)
		if i < 0 {
			panic("qrcode: string contains unencodable characters in alphanumeric mode")
		}
		accumData = accumData*45 + uint32(i)
		accumCount++
		if accumCount == 2 {
			bb.AppendBits(accumData, 11)
			accumData = 0
			accumCount = 0
		}
	}
	if accumCount > 0 {
		bb.AppendBits(accumData, 6)
	}
	return Segment{mode: ModeAlphanumeric, numChars: len(text), data: bb}
}

// MakeBytes creates a segment carrying raw octets in byte mode. The bytes
// are passed through verbatim; charset interpretation is the caller's
// concern (see the charset package for ECI-tagged text).
func MakeBytes(data []byte) Segment {
	bb := bitutil.NewBitBuffer()
	for _, v := range data {
		bb.AppendBits(uint32(v), 8)
	}
	return Segment{mode: ModeByte, numChars: len(data), data: bb}
}

// MakeECI creates a segment representing an Extended Channel Interpretation
// designator with the given assignment number, in the range [0, 999999].
//
// Panics if the assignment number is out of range.
func MakeECI(assignment uint32) Segment {
	bb := bitutil.NewBitBuffer()
	switch {
	case assignment < 1<<7:
		bb.AppendBits(assignment, 8)
	case assignment < 1<<14:
		bb.AppendBits(0b10, 2)
		bb.AppendBits(assignment, 14)
	case assignment < 1_000_000:
		bb.AppendBits(0b110, 3)
		bb.AppendBits(assignment, 21)
	default:
		panic("qrcode: ECI assignment value out of range")
	}
	return Segment{mode: ModeECI, numChars: 0, data: bb}
}

// totalBits returns the number of bits needed to encode segs at the given
// version, including mode indicators and character count fields. ok is
// false when a segment's character count does not fit its count field.
func totalBits(segs []Segment, version Version) (bits int, ok bool) {
	for _, seg := range segs {
		ccBits := seg.mode.CharacterCountBits(version)
		if ccBits < 32 && seg.numChars >= 1<<uint(ccBits) {
			return 0, false
		}
		bits += 4 + ccBits + seg.data.Len()
	}
	return bits, true
}
