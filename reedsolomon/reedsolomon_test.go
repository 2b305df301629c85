package reedsolomon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldTables(t *testing.T) {
	gf := QRCodeField256
	assert.Equal(t, 256, gf.Size())
	assert.Equal(t, 1, gf.Exp(0))
	assert.Equal(t, 2, gf.Exp(1))
	// alpha^8 = 0x11D reduced: 0x1D
	assert.Equal(t, 0x1D, gf.Exp(8))
	// The exp table cycles with period 255.
	assert.Equal(t, 1, gf.Exp(255))
}

func TestFieldMultiply(t *testing.T) {
	gf := QRCodeField256
	assert.Equal(t, 0, gf.Multiply(0, 123))
	assert.Equal(t, 0, gf.Multiply(123, 0))
	assert.Equal(t, 123, gf.Multiply(1, 123))
	for a := 1; a < 256; a++ {
		assert.Equal(t, a, gf.Multiply(a, 1))
		assert.Equal(t, gf.Exp((gf.Log(a)+gf.Log(7))%255), gf.Multiply(a, 7))
	}
}

func TestFieldLogExpRoundTrip(t *testing.T) {
	gf := QRCodeField256
	for a := 1; a < 256; a++ {
		assert.Equal(t, a, gf.Exp(gf.Log(a)))
	}
	assert.Panics(t, func() { gf.Log(0) })
}

// TestRemainderISOExample checks the worked example from ISO/IEC 18004
// Annex I: the version 1-M data codewords for "01234567" and their ten
// error correction codewords.
func TestRemainderISOExample(t *testing.T) {
	data := []byte{
		0x10, 0x20, 0x0C, 0x56, 0x61, 0x80, 0xEC, 0x11,
		0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11,
	}
	want := []byte{0xA5, 0x24, 0xD4, 0xC1, 0xED, 0x36, 0xC7, 0x87, 0x2C, 0x55}

	enc := NewEncoder(QRCodeField256)
	assert.Equal(t, want, enc.Remainder(data, 10))
}

// TestRemainderDivisibility verifies the defining Reed-Solomon property:
// the codeword polynomial data*x^k + remainder evaluates to zero at every
// root of the generator polynomial.
func TestRemainderDivisibility(t *testing.T) {
	gf := QRCodeField256
	enc := NewEncoder(gf)

	cases := []struct {
		name   string
		data   []byte
		degree int
	}{
		{"short", []byte{0x12, 0x34, 0x56}, 7},
		{"iso", []byte{0x10, 0x20, 0x0C, 0x56, 0x61, 0x80}, 10},
		{"long", make([]byte, 100), 30},
		{"ramp", func() []byte {
			d := make([]byte, 50)
			for i := range d {
				d[i] = byte(i * 7)
			}
			return d
		}(), 22},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ecc := enc.Remainder(tc.data, tc.degree)
			require.Len(t, ecc, tc.degree)
			codeword := append(append([]byte{}, tc.data...), ecc...)
			for i := 0; i < tc.degree; i++ {
				root := gf.Exp(i)
				// Horner evaluation, highest-degree coefficient first.
				value := 0
				for _, c := range codeword {
					value = gf.Multiply(value, root) ^ int(c)
				}
				assert.Zero(t, value, "codeword not divisible at root alpha^%d", i)
			}
		})
	}
}

func TestRemainderCachesGenerators(t *testing.T) {
	enc := NewEncoder(QRCodeField256)
	first := enc.Remainder([]byte{1, 2, 3}, 13)
	second := enc.Remainder([]byte{1, 2, 3}, 13)
	assert.Equal(t, first, second)
	// A different degree yields a remainder of that degree.
	third := enc.Remainder([]byte{1, 2, 3}, 17)
	assert.Len(t, third, 17)
}

func TestRemainderDegreeOutOfRange(t *testing.T) {
	enc := NewEncoder(QRCodeField256)
	assert.Panics(t, func() { enc.Remainder([]byte{1}, 0) })
	assert.Panics(t, func() { enc.Remainder([]byte{1}, 31) })
}
