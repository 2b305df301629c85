package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendBit(t *testing.T) {
	bb := NewBitBuffer()
	assert.Equal(t, 0, bb.Len())

	bb.AppendBit(true)
	bb.AppendBit(false)
	bb.AppendBit(true)
	assert.Equal(t, 3, bb.Len())
	assert.True(t, bb.Get(0))
	assert.False(t, bb.Get(1))
	assert.True(t, bb.Get(2))
}

func TestAppendBitsMSBFirst(t *testing.T) {
	bb := NewBitBuffer()
	bb.AppendBits(0b1011, 4)
	assert.Equal(t, 4, bb.Len())
	assert.True(t, bb.Get(0))
	assert.False(t, bb.Get(1))
	assert.True(t, bb.Get(2))
	assert.True(t, bb.Get(3))
}

func TestAppendBitsAcrossWords(t *testing.T) {
	bb := NewBitBuffer()
	for i := 0; i < 5; i++ {
		bb.AppendBits(0xDEADBEEF, 32)
	}
	assert.Equal(t, 160, bb.Len())
	assert.Equal(t, 20, bb.SizeInBytes())
	want := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	got := bb.Bytes()
	for i := 0; i < 5; i++ {
		assert.Equal(t, want, got[i*4:(i+1)*4])
	}
}

func TestAppendBitsPanicsOnBadCount(t *testing.T) {
	bb := NewBitBuffer()
	assert.Panics(t, func() { bb.AppendBits(0, 33) })
	assert.Panics(t, func() { bb.AppendBits(0, -1) })
}

func TestAppendBuffer(t *testing.T) {
	a := NewBitBuffer()
	a.AppendBits(0b101, 3)
	b := NewBitBuffer()
	b.AppendBits(0b0110, 4)
	a.AppendBuffer(b)
	assert.Equal(t, 7, a.Len())
	assert.Equal(t, []byte{0b10101100}, a.Bytes())
}

func TestToBytes(t *testing.T) {
	bb := NewBitBuffer()
	bb.AppendBits(0x12, 8)
	bb.AppendBits(0x34, 8)
	bb.AppendBits(0x56, 8)

	dst := make([]byte, 3)
	bb.ToBytes(0, dst, 0, 3)
	assert.Equal(t, []byte{0x12, 0x34, 0x56}, dst)

	dst2 := make([]byte, 2)
	bb.ToBytes(8, dst2, 0, 2)
	assert.Equal(t, []byte{0x34, 0x56}, dst2)
}

func TestBytesPadsFinalByte(t *testing.T) {
	bb := NewBitBuffer()
	bb.AppendBits(0b11, 2)
	assert.Equal(t, []byte{0b11000000}, bb.Bytes())
}

func TestClone(t *testing.T) {
	bb := NewBitBuffer()
	bb.AppendBits(0xAB, 8)
	clone := bb.Clone()
	clone.AppendBit(true)
	assert.Equal(t, 8, bb.Len())
	assert.Equal(t, 9, clone.Len())
	assert.Equal(t, []byte{0xAB}, bb.Bytes())
}
