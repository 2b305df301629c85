package qrcode

import (
	"math"

	"github.com/ericlevine/qrgen/bitutil"
)

const (
	formatInfoPoly  = 0x537
	formatInfoMask  = 0x5412
	versionInfoPoly = 0x1F25
)

// matrixBuilder assembles the module grid. It tracks which modules belong
// to function patterns so data placement and masking can skip them; the
// function grid is discarded once the QRCode is built.
type matrixBuilder struct {
	version    Version
	size       int
	modules    *bitutil.BitMatrix
	isFunction *bitutil.BitMatrix
}

func newMatrixBuilder(version Version) *matrixBuilder {
	size := version.Dimension()
	return &matrixBuilder{
		version:    version,
		size:       size,
		modules:    bitutil.NewBitMatrix(size),
		isFunction: bitutil.NewBitMatrix(size),
	}
}

// setFunctionModule sets the module color at (x, y) and marks it as a
// function module.
func (b *matrixBuilder) setFunctionModule(x, y int, isDark bool) {
	b.modules.SetBool(x, y, isDark)
	b.isFunction.Set(x, y)
}

// drawFunctionPatterns draws the timing patterns, finder patterns with
// separators, alignment patterns, the format information placeholder, and
// the version information. The format bits are redrawn with the real mask
// after mask selection.
func (b *matrixBuilder) drawFunctionPatterns(ecl ErrorCorrectionLevel) {
	for i := 0; i < b.size; i++ {
		b.setFunctionModule(6, i, i%2 == 0)
		b.setFunctionModule(i, 6, i%2 == 0)
	}

	b.drawFinderPattern(3, 3)
	b.drawFinderPattern(b.size-4, 3)
	b.drawFinderPattern(3, b.size-4)

	alignPatPos := b.version.AlignmentPatternCenters()
	numAlign := len(alignPatPos)
	for i, cx := range alignPatPos {
		for j, cy := range alignPatPos {
			// Skip the three corners occupied by finder patterns.
			if (i == 0 && j == 0) || (i == 0 && j == numAlign-1) || (i == numAlign-1 && j == 0) {
				continue
			}
			b.drawAlignmentPattern(cx, cy)
		}
	}

	b.drawFormatBits(ecl, 0)
	b.drawVersionInfo()
}

// drawFinderPattern draws the 9x9 finder pattern and separator centered at
// (cx, cy), clipped at the matrix edges.
func (b *matrixBuilder) drawFinderPattern(cx, cy int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			dist := maxInt(absInt(dx), absInt(dy))
			x, y := cx+dx, cy+dy
			if 0 <= x && x < b.size && 0 <= y && y < b.size {
				b.setFunctionModule(x, y, dist != 2 && dist != 4)
			}
		}
	}
}

// drawAlignmentPattern draws the 5x5 alignment pattern centered at (cx, cy).
func (b *matrixBuilder) drawAlignmentPattern(cx, cy int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			b.setFunctionModule(cx+dx, cy+dy, maxInt(absInt(dx), absInt(dy)) != 1)
		}
	}
}

// drawFormatBits writes the two copies of the 15-bit format information for
// the given level and mask, plus the dark module.
func (b *matrixBuilder) drawFormatBits(ecl ErrorCorrectionLevel, mask Mask) {
	data := ecl.FormatBits()<<3 | int(mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = (rem << 1) ^ ((rem >> 9) * formatInfoPoly)
	}
	bits := (data<<10 | rem) ^ formatInfoMask

	// First copy, around the top-left finder.
	for i := 0; i <= 5; i++ {
		b.setFunctionModule(8, i, getBit(bits, i))
	}
	b.setFunctionModule(8, 7, getBit(bits, 6))
	b.setFunctionModule(8, 8, getBit(bits, 7))
	b.setFunctionModule(7, 8, getBit(bits, 8))
	for i := 9; i < 15; i++ {
		b.setFunctionModule(14-i, 8, getBit(bits, i))
	}

	// Second copy, split between the other two finders.
	for i := 0; i < 8; i++ {
		b.setFunctionModule(b.size-1-i, 8, getBit(bits, i))
	}
	for i := 8; i < 15; i++ {
		b.setFunctionModule(8, b.size-15+i, getBit(bits, i))
	}
	b.setFunctionModule(8, b.size-8, true) // dark module
}

// drawVersionInfo writes the two copies of the 18-bit version information
// for versions 7 and up.
func (b *matrixBuilder) drawVersionInfo() {
	if b.version < 7 {
		return
	}
	rem := int(b.version)
	for i := 0; i < 12; i++ {
		rem = (rem << 1) ^ ((rem >> 11) * versionInfoPoly)
	}
	bits := int(b.version)<<12 | rem

	for i := 0; i < 18; i++ {
		bit := getBit(bits, i)
		a := b.size - 11 + i%3
		c := i / 3
		b.setFunctionModule(a, c, bit)
		b.setFunctionModule(c, a, bit)
	}
}

// drawCodewords lays out the codeword bits in the zigzag pattern: column
// pairs right to left (skipping the timing column), alternating upward and
// downward, visiting the right column before the left. Modules left over
// after the last codeword bit are remainder bits and stay light.
func (b *matrixBuilder) drawCodewords(data []byte) {
	i := 0
	for right := b.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		upward := (right+1)&2 == 0
		for vert := 0; vert < b.size; vert++ {
			y := vert
			if upward {
				y = b.size - 1 - vert
			}
			for j := 0; j < 2; j++ {
				x := right - j
				if !b.isFunction.Get(x, y) && i < len(data)*8 {
					b.modules.SetBool(x, y, getBit(int(data[i>>3]), 7-(i&7)))
					i++
				}
			}
		}
	}
}

// applyMask XORs the mask pattern into every non-function module.
// Applying the same mask twice restores the original grid.
func (b *matrixBuilder) applyMask(mask Mask) {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if !b.isFunction.Get(x, y) && mask.invert(x, y) {
				b.modules.Flip(x, y)
			}
		}
	}
}

// selectMask applies the forced mask, or scores all eight masks and keeps
// the one with the lowest penalty (lowest index wins ties). Format bits are
// drawn before scoring since they participate in the penalty.
func (b *matrixBuilder) selectMask(ecl ErrorCorrectionLevel, forced *Mask) Mask {
	if forced != nil {
		b.applyMask(*forced)
		b.drawFormatBits(ecl, *forced)
		return *forced
	}
	best := Mask(0)
	minPenalty := math.MaxInt32
	for m := Mask(0); m < 8; m++ {
		b.applyMask(m)
		b.drawFormatBits(ecl, m)
		if penalty := b.penaltyScore(); penalty < minPenalty {
			best = m
			minPenalty = penalty
		}
		b.applyMask(m) // undo
	}
	b.applyMask(best)
	b.drawFormatBits(ecl, best)
	return best
}

func getBit(x, i int) bool {
	return (x>>uint(i))&1 != 0
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
