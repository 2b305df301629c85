// Package reedsolomon implements Reed-Solomon error correction codeword
// generation over GF(2^8) as used by QR codes.
package reedsolomon

import "fmt"

// GF represents a Galois Field GF(2^8) defined by a primitive reduction
// polynomial, with multiplication implemented through log/antilog tables.
type GF struct {
	expTable  []int
	logTable  []int
	size      int
	primitive int
}

// QRCodeField256 is GF(256) over the QR code reduction polynomial
// x^8 + x^4 + x^3 + x^2 + 1, with generator element 2.
var QRCodeField256 = NewGF(0x11D, 256)

// NewGF creates a GF(size) using the given primitive polynomial.
func NewGF(primitive, size int) *GF {
	gf := &GF{
		primitive: primitive,
		size:      size,
		expTable:  make([]int, size),
		logTable:  make([]int, size),
	}

	x := 1
	for i := 0; i < size; i++ {
		gf.expTable[i] = x
		x *= 2
		if x >= size {
			x ^= primitive
			x &= size - 1
		}
	}
	for i := 0; i < size-1; i++ {
		gf.logTable[gf.expTable[i]] = i
	}

	return gf
}

// Exp returns 2^a in this field.
func (gf *GF) Exp(a int) int {
	return gf.expTable[a]
}

// Log returns log2(a) in this field.
func (gf *GF) Log(a int) int {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}
	return gf.logTable[a]
}

// Multiply returns a * b in this field.
func (gf *GF) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return gf.expTable[(gf.logTable[a]+gf.logTable[b])%(gf.size-1)]
}

// Size returns the size of the field.
func (gf *GF) Size() int { return gf.size }

// String returns a string representation.
func (gf *GF) String() string {
	return fmt.Sprintf("GF(0x%x,%d)", gf.primitive, gf.size)
}
