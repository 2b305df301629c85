// Package charset maps text payloads to ECI-tagged QR segments.
//
// QR byte mode carries raw octets; an ECI designator in front of the byte
// segment tells readers which character encoding those octets use. This
// package transcodes text for the common assignments and pairs it with the
// right designator.
package charset

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"

	"github.com/ericlevine/qrgen/qrcode"
)

// ECI assignment numbers from the AIM ECI specification.
const (
	Latin1   uint32 = 3   // ISO 8859-1
	ShiftJIS uint32 = 20  // Shift JIS
	UTF8     uint32 = 26  // UTF-8
	Binary   uint32 = 899 // 8-bit binary data
)

// Guess returns the smallest ECI assignment that covers text: Latin-1 when
// every rune transcodes, UTF-8 otherwise.
func Guess(text string) uint32 {
	if _, err := charmap.ISO8859_1.NewEncoder().String(text); err == nil {
		return Latin1
	}
	return UTF8
}

// Segments returns an ECI designator segment followed by a byte segment
// holding text transcoded for the given assignment number.
func Segments(text string, eci uint32) ([]qrcode.Segment, error) {
	var payload []byte
	switch eci {
	case Latin1:
		s, err := charmap.ISO8859_1.NewEncoder().String(text)
		if err != nil {
			return nil, errors.Wrap(err, "charset: text not representable in ISO 8859-1")
		}
		payload = []byte(s)
	case ShiftJIS:
		s, err := japanese.ShiftJIS.NewEncoder().String(text)
		if err != nil {
			return nil, errors.Wrap(err, "charset: text not representable in Shift JIS")
		}
		payload = []byte(s)
	case UTF8, Binary:
		payload = []byte(text)
	default:
		return nil, errors.Errorf("charset: unsupported ECI assignment %d", eci)
	}
	return []qrcode.Segment{qrcode.MakeECI(eci), qrcode.MakeBytes(payload)}, nil
}
