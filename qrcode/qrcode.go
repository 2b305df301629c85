package qrcode

import "github.com/ericlevine/qrgen/bitutil"

// QRCode is a finished QR code symbol: a square grid of dark and light
// modules plus the parameters it was encoded with. Instances are immutable.
type QRCode struct {
	version Version
	ecLevel ErrorCorrectionLevel
	mask    Mask
	size    int
	modules *bitutil.BitMatrix
}

// Version returns the symbol's version, in the range [1, 40].
func (q *QRCode) Version() Version {
	return q.version
}

// ECLevel returns the symbol's error correction level. With BoostECL this
// may be higher than the level that was requested.
func (q *QRCode) ECLevel() ErrorCorrectionLevel {
	return q.ecLevel
}

// Mask returns the mask pattern applied to the symbol, in the range [0, 7].
func (q *QRCode) Mask() Mask {
	return q.mask
}

// Size returns the width and height of the symbol in modules.
func (q *QRCode) Size() int {
	return q.size
}

// Module returns true if the module at (x, y) is dark. x is the column
// (0 is left), y the row (0 is top). Coordinates outside the symbol return
// false, so renderers can sample straight through the quiet zone.
func (q *QRCode) Module(x, y int) bool {
	return x >= 0 && x < q.size && y >= 0 && y < q.size && q.modules.Get(x, y)
}

// Equals reports whether both symbols have identical modules.
func (q *QRCode) Equals(other *QRCode) bool {
	return q.size == other.size && q.modules.Equals(other.modules)
}
