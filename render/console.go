// Package render turns finished QR code symbols into console art, SVG
// documents, and raster images. It only reads the module grid; nothing
// here feeds back into encoding.
package render

import (
	"strings"

	"github.com/ericlevine/qrgen/qrcode"
)

// String renders the symbol as console block art, two characters per
// module, with a quiet zone of border modules on every side.
func String(qr *qrcode.QRCode, border int) string {
	if border < 0 {
		panic("render: border must be non-negative")
	}
	var sb strings.Builder
	for y := -border; y < qr.Size()+border; y++ {
		for x := -border; x < qr.Size()+border; x++ {
			if qr.Module(x, y) {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
