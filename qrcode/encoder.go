package qrcode

import (
	qrgen "github.com/ericlevine/qrgen"
	"github.com/ericlevine/qrgen/bitutil"
	"github.com/ericlevine/qrgen/reedsolomon"
)

// EncodeOptions configures the encoding pipeline.
type EncodeOptions struct {
	// ECLevel is the requested error correction level. Defaults to ECLevelL.
	ECLevel ErrorCorrectionLevel

	// MinVersion and MaxVersion bound the version search. Zero values
	// default to MinVersion and MaxVersion respectively.
	MinVersion Version
	MaxVersion Version

	// Mask forces a specific mask pattern. Nil selects the mask with the
	// lowest penalty score.
	Mask *Mask

	// BoostECL upgrades the error correction level to the highest one that
	// still fits the chosen version.
	BoostECL bool
}

func (o EncodeOptions) withDefaults() EncodeOptions {
	if o.MinVersion == 0 {
		o.MinVersion = MinVersion
	}
	if o.MaxVersion == 0 {
		o.MaxVersion = MaxVersion
	}
	return o
}

// EncodeText encodes a text string into a QR code, selecting the densest
// single mode that covers the whole string (numeric, then alphanumeric,
// then byte).
//
// Returns an error unwrapping to qrgen.ErrDataOverCapacity or
// qrgen.ErrSegmentTooLong if the text does not fit the version range at
// the requested error correction level.
func EncodeText(text string, opts EncodeOptions) (*QRCode, error) {
	var segs []Segment
	switch {
	case text == "":
		// Zero segments still produce a valid (empty) QR code.
	case IsNumeric(text):
		segs = []Segment{MakeNumeric(text)}
	case IsAlphanumeric(text):
		segs = []Segment{MakeAlphanumeric(text)}
	default:
		segs = []Segment{MakeBytes([]byte(text))}
	}
	return EncodeSegments(segs, opts)
}

// EncodeBinary encodes raw bytes into a QR code using byte mode.
func EncodeBinary(data []byte, opts EncodeOptions) (*QRCode, error) {
	return EncodeSegments([]Segment{MakeBytes(data)}, opts)
}

// EncodeSegments encodes the given segments into a QR code. The smallest
// version in [opts.MinVersion, opts.MaxVersion] that fits the data is
// chosen; with opts.BoostECL the error correction level is then raised as
// far as the chosen version allows.
//
// Panics on invalid option values (version range, mask index); these are
// programmer errors, not data conditions.
func EncodeSegments(segs []Segment, opts EncodeOptions) (*QRCode, error) {
	if opts.Mask != nil && (*opts.Mask < 0 || *opts.Mask > 7) {
		panic("qrcode: mask value out of range")
	}
	dataCodewords, ecl, version, err := EncodeSegmentsToCodewords(segs, opts)
	if err != nil {
		return nil, err
	}
	allCodewords := interleaveWithECBytes(dataCodewords, version, ecl)

	// Draw function patterns and data, then mask.
	builder := newMatrixBuilder(version)
	builder.drawFunctionPatterns(ecl)
	builder.drawCodewords(allCodewords)
	mask := builder.selectMask(ecl, opts.Mask)

	return &QRCode{
		version: version,
		ecLevel: ecl,
		mask:    mask,
		size:    builder.size,
		modules: builder.modules,
	}, nil
}

// EncodeSegmentsToCodewords is the mid-level API underneath EncodeSegments:
// it selects the version, optionally boosts the error correction level, and
// assembles the padded data codeword stream, without building a matrix.
func EncodeSegmentsToCodewords(segs []Segment, opts EncodeOptions) ([]byte, ErrorCorrectionLevel, Version, error) {
	opts = opts.withDefaults()
	if opts.MinVersion < MinVersion || opts.MaxVersion > MaxVersion || opts.MinVersion > opts.MaxVersion {
		panic(errInvalidVersion.Error())
	}

	// Find the minimal version that fits the data.
	ecl := opts.ECLevel
	version := opts.MinVersion
	var dataUsedBits int
	for {
		capacityBits := NumDataCodewords(version, ecl) * 8
		used, ok := totalBits(segs, version)
		if ok && used <= capacityBits {
			dataUsedBits = used
			break
		}
		if version >= opts.MaxVersion {
			if !ok {
				return nil, 0, 0, qrgen.ErrSegmentTooLong
			}
			return nil, 0, 0, &qrgen.DataOverCapacityError{DataBits: used, CapacityBits: capacityBits}
		}
		version++
	}

	// Raise the error correction level while the data still fits.
	if opts.BoostECL {
		for _, newECL := range []ErrorCorrectionLevel{ECLevelM, ECLevelQ, ECLevelH} {
			if dataUsedBits <= NumDataCodewords(version, newECL)*8 {
				ecl = newECL
			}
		}
	}

	// Concatenate segments into the data bit string.
	bb := bitutil.NewBitBuffer()
	for _, seg := range segs {
		bb.AppendBits(uint32(seg.mode.Bits()), 4)
		bb.AppendBits(uint32(seg.numChars), seg.mode.CharacterCountBits(version))
		bb.AppendBuffer(seg.data)
	}

	// Terminator, pad to a byte boundary, then alternating pad bytes.
	capacityBits := NumDataCodewords(version, ecl) * 8
	for i := 0; i < 4 && bb.Len() < capacityBits; i++ {
		bb.AppendBit(false)
	}
	for bb.Len()%8 != 0 {
		bb.AppendBit(false)
	}
	for padByte := uint32(0xEC); bb.Len() < capacityBits; padByte ^= 0xEC ^ 0x11 {
		bb.AppendBits(padByte, 8)
	}

	dataCodewords := make([]byte, capacityBits/8)
	bb.ToBytes(0, dataCodewords, 0, len(dataCodewords))
	return dataCodewords, ecl, version, nil
}

// interleaveWithECBytes splits the data codewords into error correction
// blocks, computes the Reed-Solomon codewords for each, and interleaves
// both column-wise into the final transmission sequence.
func interleaveWithECBytes(data []byte, version Version, ecl ErrorCorrectionLevel) []byte {
	ecBlocks := version.ECBlocksForLevel(ecl)
	blockECLen := ecBlocks.ECCodewordsPerBlock
	rs := reedsolomon.NewEncoder(reedsolomon.QRCodeField256)

	type blockPair struct {
		data []byte
		ec   []byte
	}
	blocks := make([]blockPair, 0, ecBlocks.NumBlocks())
	offset := 0
	maxDataLen := 0
	for _, group := range ecBlocks.Blocks {
		for i := 0; i < group.Count; i++ {
			blockData := data[offset : offset+group.DataCodewords]
			blocks = append(blocks, blockPair{
				data: blockData,
				ec:   rs.Remainder(blockData, blockECLen),
			})
			offset += group.DataCodewords
		}
		if group.DataCodewords > maxDataLen {
			maxDataLen = group.DataCodewords
		}
	}

	result := make([]byte, 0, version.TotalCodewords())
	for i := 0; i < maxDataLen; i++ {
		for _, blk := range blocks {
			if i < len(blk.data) {
				result = append(result, blk.data[i])
			}
		}
	}
	for i := 0; i < blockECLen; i++ {
		for _, blk := range blocks {
			result = append(result, blk.ec[i])
		}
	}
	return result
}
