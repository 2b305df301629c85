package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDimension(t *testing.T) {
	assert.Equal(t, 21, Version(1).Dimension())
	assert.Equal(t, 25, Version(2).Dimension())
	assert.Equal(t, 45, Version(7).Dimension())
	assert.Equal(t, 177, Version(40).Dimension())
}

func TestBufferLen(t *testing.T) {
	assert.Equal(t, (21*21+7)/8, Version(1).BufferLen())
	assert.Equal(t, 3917, MaxVersion.BufferLen())
}

func TestTotalCodewords(t *testing.T) {
	assert.Equal(t, 26, Version(1).TotalCodewords())
	assert.Equal(t, 44, Version(2).TotalCodewords())
	assert.Equal(t, 196, Version(7).TotalCodewords())
	assert.Equal(t, 3706, Version(40).TotalCodewords())
}

func TestNumDataCodewords(t *testing.T) {
	assert.Equal(t, 19, NumDataCodewords(1, ECLevelL))
	assert.Equal(t, 16, NumDataCodewords(1, ECLevelM))
	assert.Equal(t, 13, NumDataCodewords(1, ECLevelQ))
	assert.Equal(t, 9, NumDataCodewords(1, ECLevelH))
	assert.Equal(t, 2956, NumDataCodewords(40, ECLevelL))
	assert.Equal(t, 1276, NumDataCodewords(40, ECLevelH))
}

// The init self-check already cross-sums the block table against the module
// count formula; this pins the structural invariants it relies on.
func TestBlockTableConsistency(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		total := v.TotalCodewords()
		for _, ecl := range []ErrorCorrectionLevel{ECLevelL, ECLevelM, ECLevelQ, ECLevelH} {
			ecb := v.ECBlocksForLevel(ecl)
			assert.Equal(t, total, ecb.TotalDataCodewords()+ecb.TotalECCodewords(),
				"version %d level %s", v, ecl)
			assert.Positive(t, ecb.NumBlocks(), "version %d level %s", v, ecl)
			// Short blocks first, at most two group sizes one apart.
			if len(ecb.Blocks) == 2 {
				assert.Equal(t, ecb.Blocks[0].DataCodewords+1, ecb.Blocks[1].DataCodewords,
					"version %d level %s", v, ecl)
			}
			assert.LessOrEqual(t, len(ecb.Blocks), 2, "version %d level %s", v, ecl)
		}
	}
}

func TestAlignmentPatternCenters(t *testing.T) {
	assert.Empty(t, Version(1).AlignmentPatternCenters())
	assert.Equal(t, []int{6, 18}, Version(2).AlignmentPatternCenters())
	assert.Equal(t, []int{6, 22, 38}, Version(7).AlignmentPatternCenters())
	assert.Equal(t, []int{6, 34, 60, 86, 112, 138}, Version(32).AlignmentPatternCenters())
	assert.Equal(t, []int{6, 30, 58, 86, 114, 142, 170}, Version(40).AlignmentPatternCenters())

	// Every version's centers start at 6 and end at dimension-7.
	for v := Version(2); v <= MaxVersion; v++ {
		centers := v.AlignmentPatternCenters()
		assert.Equal(t, 6, centers[0], "version %d", v)
		assert.Equal(t, v.Dimension()-7, centers[len(centers)-1], "version %d", v)
	}
}

func TestECLevelFormatBits(t *testing.T) {
	assert.Equal(t, 0x01, ECLevelL.FormatBits())
	assert.Equal(t, 0x00, ECLevelM.FormatBits())
	assert.Equal(t, 0x03, ECLevelQ.FormatBits())
	assert.Equal(t, 0x02, ECLevelH.FormatBits())

	for _, ecl := range []ErrorCorrectionLevel{ECLevelL, ECLevelM, ECLevelQ, ECLevelH} {
		got, err := ECLevelForFormatBits(ecl.FormatBits())
		assert.NoError(t, err)
		assert.Equal(t, ecl, got)
	}
	_, err := ECLevelForFormatBits(4)
	assert.Error(t, err)
}

func TestCharacterCountBits(t *testing.T) {
	cases := []struct {
		mode    Mode
		version Version
		want    int
	}{
		{ModeNumeric, 1, 10},
		{ModeNumeric, 9, 10},
		{ModeNumeric, 10, 12},
		{ModeNumeric, 26, 12},
		{ModeNumeric, 27, 14},
		{ModeNumeric, 40, 14},
		{ModeAlphanumeric, 1, 9},
		{ModeAlphanumeric, 10, 11},
		{ModeAlphanumeric, 27, 13},
		{ModeByte, 1, 8},
		{ModeByte, 10, 16},
		{ModeByte, 40, 16},
		{ModeECI, 1, 0},
		{ModeECI, 40, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.mode.CharacterCountBits(tc.version),
			"%s at version %d", tc.mode, tc.version)
	}
}
