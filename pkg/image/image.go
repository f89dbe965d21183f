// Package image implements the sparse, block-addressed byte store the
// codeplug codec reads and writes during encode/decode (spec.md §4.1).
//
// The radio's memory is mapped over dozens of disjoint address ranges; the
// transport moves it in fixed 16-byte blocks. Image tracks allocation at
// that block granularity so every read/write can fail loudly on an
// unallocated byte rather than silently returning garbage.
package image

import (
	"fmt"
	"os"
)

// BlockSize is the transport's transfer quantum; every allocation is
// rounded to this alignment (spec.md §4.1).
const BlockSize = 16

// Address is a host address into the radio's memory space.
type Address uint32

func alignDown(a Address) Address {
	return a &^ (BlockSize - 1)
}

func alignUp(a Address) Address {
	return (a + BlockSize - 1) &^ (BlockSize - 1)
}

type block struct {
	fill byte
	data [BlockSize]byte
}

// Image is a sparse byte store over the radio's address space.
type Image struct {
	blocks map[Address]*block
}

// New returns an empty sparse image.
func New() *Image {
	return &Image{blocks: make(map[Address]*block)}
}

// Allocate ensures [addr, addr+length) exists, rounding down/up to the
// block alignment. It is idempotent: re-allocating an already-allocated
// block with the same fill is a no-op. It fails if a block in the range is
// already allocated with a different fill.
func (img *Image) Allocate(addr Address, length int, fill byte) error {
	if length <= 0 {
		return fmt.Errorf("image: allocate length must be positive, got %d", length)
	}
	start := alignDown(addr)
	end := alignUp(addr + Address(length))
	for a := start; a < end; a += BlockSize {
		if b, ok := img.blocks[a]; ok {
			if b.fill != fill {
				return fmt.Errorf("image: block at 0x%06X already allocated with fill 0x%02X, requested 0x%02X", a, b.fill, fill)
			}
			continue
		}
		nb := &block{fill: fill}
		for i := range nb.data {
			nb.data[i] = fill
		}
		img.blocks[a] = nb
	}
	return nil
}

// IsAllocated reports whether every byte in [addr, addr+length) has been
// allocated.
func (img *Image) IsAllocated(addr Address, length int) bool {
	for i := 0; i < length; i++ {
		a := addr + Address(i)
		if _, ok := img.blocks[alignDown(a)]; !ok {
			return false
		}
	}
	return true
}

// Read returns a copy of length bytes starting at addr. It fails if any
// byte in the range is unallocated.
func (img *Image) Read(addr Address, length int) ([]byte, error) {
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		a := addr + Address(i)
		b, ok := img.blocks[alignDown(a)]
		if !ok {
			return nil, fmt.Errorf("image: read of unallocated byte at 0x%06X", a)
		}
		out[i] = b.data[a-alignDown(a)]
	}
	return out, nil
}

// Write stores data starting at addr. It fails if any touched byte is
// unallocated.
func (img *Image) Write(addr Address, data []byte) error {
	for i, by := range data {
		a := addr + Address(i)
		b, ok := img.blocks[alignDown(a)]
		if !ok {
			return fmt.Errorf("image: write of unallocated byte at 0x%06X", a)
		}
		b.data[a-alignDown(a)] = by
	}
	return nil
}

// Region is a contiguous, fully-allocated span of bytes.
type Region struct {
	Addr  Address
	Bytes []byte
}

// Regions returns every allocated span, coalescing adjacent blocks into a
// single Region, sorted ascending by address. Used by the transport to
// stream the image to/from the device.
func (img *Image) Regions() []Region {
	if len(img.blocks) == 0 {
		return nil
	}
	addrs := make([]Address, 0, len(img.blocks))
	for a := range img.blocks {
		addrs = append(addrs, a)
	}
	sortAddresses(addrs)

	var regions []Region
	cur := Region{Addr: addrs[0], Bytes: append([]byte(nil), img.blocks[addrs[0]].data[:]...)}
	next := addrs[0] + BlockSize
	for _, a := range addrs[1:] {
		if a == next {
			cur.Bytes = append(cur.Bytes, img.blocks[a].data[:]...)
		} else {
			regions = append(regions, cur)
			cur = Region{Addr: a, Bytes: append([]byte(nil), img.blocks[a].data[:]...)}
		}
		next = a + BlockSize
	}
	regions = append(regions, cur)
	return regions
}

func sortAddresses(a []Address) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j-1] > a[j]; j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
}

// Transport is the seam to the USB link (spec.md §1: out of scope beyond
// this interface). It moves one BlockSize-aligned block at a time.
type Transport interface {
	ReadBlock(addr Address) ([BlockSize]byte, error)
	WriteBlock(addr Address, data [BlockSize]byte) error
}

// Download fills img with the blocks covering each requested address range
// by reading them from t. Only the blocks covering [addr, addr+length) are
// fetched; nothing in this module calls it.
func Download(img *Image, t Transport, addr Address, length int, fill byte) error {
	if err := img.Allocate(addr, length, fill); err != nil {
		return err
	}
	start := alignDown(addr)
	end := alignUp(addr + Address(length))
	for a := start; a < end; a += BlockSize {
		data, err := t.ReadBlock(a)
		if err != nil {
			return fmt.Errorf("image: download block at 0x%06X: %w", a, err)
		}
		img.blocks[a].data = data
	}
	return nil
}

// Upload streams every allocated region of img to t, one block at a time.
func Upload(img *Image, t Transport) error {
	for _, r := range img.Regions() {
		for i := 0; i < len(r.Bytes); i += BlockSize {
			var blk [BlockSize]byte
			copy(blk[:], r.Bytes[i:i+BlockSize])
			if err := t.WriteBlock(r.Addr+Address(i), blk); err != nil {
				return fmt.Errorf("image: upload block at 0x%06X: %w", r.Addr+Address(i), err)
			}
		}
	}
	return nil
}

// WriteFlatFile writes img to a raw binary file the size of the radio's
// full address span, one allocated region at a time, seeking over the gaps
// so they come back as filesystem holes (read as zero) rather than a
// materialised multi-megabyte buffer of fill bytes.
func WriteFlatFile(path string, img *Image, span int64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("image: create %s: %w", path, err)
	}
	defer f.Close()

	for _, r := range img.Regions() {
		if _, err := f.WriteAt(r.Bytes, int64(r.Addr)); err != nil {
			return fmt.Errorf("image: write region at 0x%06X: %w", r.Addr, err)
		}
	}
	if err := f.Truncate(span); err != nil {
		return fmt.Errorf("image: truncate %s to span: %w", path, err)
	}
	return nil
}

// ReadFlatFile loads a raw binary codeplug dump as a fully-allocated image:
// a file on disk has no notion of "unallocated", every byte read back is a
// real (if possibly meaningless) value.
func ReadFlatFile(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("image: read %s: %w", path, err)
	}
	img := New()
	if len(data) == 0 {
		return img, nil
	}
	if err := img.Allocate(0, len(data), 0x00); err != nil {
		return nil, err
	}
	if err := img.Write(0, data); err != nil {
		return nil, err
	}
	return img, nil
}
