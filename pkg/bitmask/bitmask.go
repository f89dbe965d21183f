// Package bitmask implements the three presence-mask flavors the codeplug
// uses to mark which slots of a record table are occupied: positive
// bitmaps, inverted bitmaps, and byte maps.
package bitmask

// Flavor selects how a single bit (or byte) encodes "slot present".
type Flavor int

const (
	// Positive: bit=1 means present, padding is 0x00.
	Positive Flavor = iota
	// Inverted: bit=0 means present, padding is 0xFF.
	Inverted
	// ByteMap: 0x00 means present, 0xFF means absent, one byte per slot.
	ByteMap
)

// FillByte is the default fill value for a freshly allocated mask region of
// this flavor (spec.md §3.2).
func (f Flavor) FillByte() byte {
	if f == Positive {
		return 0x00
	}
	return 0xFF
}

// Mask is a fixed-size presence mask over `Count` slots, backed by `Bytes`.
// The byte slice must already be sized per Flavor: bit flavors need
// ceil(Count/8) bytes, ByteMap needs Count bytes.
type Mask struct {
	Flavor Flavor
	Count  int
	Bytes  []byte
}

// New allocates a Mask of the given flavor and slot count, filled to the
// flavor's "all absent" pattern.
func New(flavor Flavor, count int) *Mask {
	var size int
	if flavor == ByteMap {
		size = count
	} else {
		size = (count + 7) / 8
	}
	b := make([]byte, size)
	m := &Mask{Flavor: flavor, Count: count, Bytes: b}
	m.clearAll()
	return m
}

// Wrap builds a Mask view over an existing byte slice (e.g. one read out of
// the sparse image), without reinitializing its contents.
func Wrap(flavor Flavor, count int, b []byte) *Mask {
	return &Mask{Flavor: flavor, Count: count, Bytes: b}
}

func (m *Mask) clearAll() {
	fill := byte(0x00)
	if m.Flavor != Positive {
		fill = 0xFF
	}
	for i := range m.Bytes {
		m.Bytes[i] = fill
	}
}

// Test reports whether slot i is present.
func (m *Mask) Test(i int) bool {
	if m.Flavor == ByteMap {
		return m.Bytes[i] == 0x00
	}
	bit := m.Bytes[i/8]>>uint(i%8)&1 != 0
	if m.Flavor == Inverted {
		return !bit
	}
	return bit
}

// Set marks slot i present (present=true) or absent (present=false).
func (m *Mask) Set(i int, present bool) {
	if m.Flavor == ByteMap {
		if present {
			m.Bytes[i] = 0x00
		} else {
			m.Bytes[i] = 0xFF
		}
		return
	}
	bit := present
	if m.Flavor == Inverted {
		bit = !present
	}
	mask := byte(1) << uint(i%8)
	if bit {
		m.Bytes[i/8] |= mask
	} else {
		m.Bytes[i/8] &^= mask
	}
}

// Clear marks slot i absent; equivalent to Set(i, false).
func (m *Mask) Clear(i int) {
	m.Set(i, false)
}

// Iterate calls fn for every present slot index, ascending.
func (m *Mask) Iterate(fn func(index int)) {
	for i := 0; i < m.Count; i++ {
		if m.Test(i) {
			fn(i)
		}
	}
}

// PresentIndices returns the ascending list of present slot indices.
func (m *Mask) PresentIndices() []int {
	var out []int
	m.Iterate(func(i int) { out = append(out, i) })
	return out
}

// Count of currently-present slots.
func (m *Mask) CountPresent() int {
	n := 0
	m.Iterate(func(int) { n++ })
	return n
}
