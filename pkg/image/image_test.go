package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAllocateIsIdempotent(t *testing.T) {
	img := New()
	require.NoError(t, img.Allocate(0x100, 16, 0x00))
	require.NoError(t, img.Allocate(0x100, 16, 0x00))
	assert.True(t, img.IsAllocated(0x100, 16))
}

func TestAllocateConflictingFillFails(t *testing.T) {
	img := New()
	require.NoError(t, img.Allocate(0x100, 16, 0x00))
	err := img.Allocate(0x100, 16, 0xFF)
	assert.Error(t, err)
}

func TestAllocateAlignsToBlockSize(t *testing.T) {
	img := New()
	require.NoError(t, img.Allocate(0x105, 3, 0x00))
	assert.True(t, img.IsAllocated(0x100, 16))
}

func TestReadFailsOnUnallocated(t *testing.T) {
	img := New()
	_, err := img.Read(0x100, 4)
	assert.Error(t, err)
}

func TestWriteFailsOnUnallocated(t *testing.T) {
	img := New()
	err := img.Write(0x100, []byte{1, 2, 3})
	assert.Error(t, err)
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	img := New()
	require.NoError(t, img.Allocate(0x100, 16, 0x00))
	require.NoError(t, img.Write(0x104, []byte{0xAA, 0xBB, 0xCC}))
	got, err := img.Read(0x104, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC}, got)
}

func TestRegionsCoalesceAdjacentBlocks(t *testing.T) {
	img := New()
	require.NoError(t, img.Allocate(0x000, 32, 0x00))
	require.NoError(t, img.Allocate(0x100, 16, 0xFF))
	regions := img.Regions()
	require.Len(t, regions, 2)
	assert.Equal(t, Address(0x000), regions[0].Addr)
	assert.Len(t, regions[0].Bytes, 32)
	assert.Equal(t, Address(0x100), regions[1].Addr)
	assert.Len(t, regions[1].Bytes, 16)
}

func TestRegionsDefaultFill(t *testing.T) {
	img := New()
	require.NoError(t, img.Allocate(0x00, 16, 0xFF))
	regions := img.Regions()
	require.Len(t, regions, 1)
	for _, b := range regions[0].Bytes {
		assert.Equal(t, byte(0xFF), b)
	}
}

type fakeTransport struct {
	backing map[Address][BlockSize]byte
}

func (f *fakeTransport) ReadBlock(addr Address) ([BlockSize]byte, error) {
	return f.backing[addr], nil
}

func (f *fakeTransport) WriteBlock(addr Address, data [BlockSize]byte) error {
	f.backing[addr] = data
	return nil
}

func TestUploadDownloadRoundTrip(t *testing.T) {
	img := New()
	require.NoError(t, img.Allocate(0x1000, 32, 0x00))
	require.NoError(t, img.Write(0x1000, []byte{1, 2, 3, 4}))

	tr := &fakeTransport{backing: make(map[Address][BlockSize]byte)}
	require.NoError(t, Upload(img, tr))

	img2 := New()
	require.NoError(t, Download(img2, tr, 0x1000, 32, 0x00))
	got, err := img2.Read(0x1000, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, got)
}

func TestAllocateReadWriteRapid(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		img := New()
		addr := Address(rapid.IntRange(0, 0x10000).Draw(rt, "addr"))
		length := rapid.IntRange(1, 64).Draw(rt, "length")
		require.NoError(t, img.Allocate(addr, length, 0x00))
		data := rapid.SliceOfN(rapid.Byte(), length, length).Draw(rt, "data")
		require.NoError(t, img.Write(addr, data))
		got, err := img.Read(addr, length)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})
}
