package bitmask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestPositiveFlavorDefaultsAbsent(t *testing.T) {
	m := New(Positive, 10)
	for i := 0; i < 10; i++ {
		assert.False(t, m.Test(i))
	}
	assert.Equal(t, byte(0x00), m.Bytes[0])
}

func TestInvertedFlavorDefaultsAbsent(t *testing.T) {
	m := New(Inverted, 10)
	for i := 0; i < 10; i++ {
		assert.False(t, m.Test(i))
	}
	assert.Equal(t, byte(0xFF), m.Bytes[0])
}

func TestByteMapDefaultsAbsent(t *testing.T) {
	m := New(ByteMap, 4)
	for i := 0; i < 4; i++ {
		assert.False(t, m.Test(i))
		assert.Equal(t, byte(0xFF), m.Bytes[i])
	}
}

func TestSetAndClear(t *testing.T) {
	for _, f := range []Flavor{Positive, Inverted, ByteMap} {
		m := New(f, 16)
		m.Set(3, true)
		assert.True(t, m.Test(3))
		assert.False(t, m.Test(4))
		m.Clear(3)
		assert.False(t, m.Test(3))
	}
}

func TestIteratePresentAscending(t *testing.T) {
	m := New(Positive, 20)
	m.Set(5, true)
	m.Set(1, true)
	m.Set(18, true)
	assert.Equal(t, []int{1, 5, 18}, m.PresentIndices())
	assert.Equal(t, 3, m.CountPresent())
}

func TestInvertedPaddingMatchesContactBitmapSample(t *testing.T) {
	// Scenario S1 from spec.md: contact 0 present clears bit 0 of an
	// inverted bitmap whose default fill is 0xFF.
	m := New(Inverted, 10000)
	assert.Equal(t, byte(0xFF), m.Bytes[0])
	m.Set(0, true)
	assert.Equal(t, byte(0xFE), m.Bytes[0])
}

func TestRoundTripAllFlavors(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		flavor := Flavor(rapid.IntRange(0, 2).Draw(rt, "flavor"))
		count := rapid.IntRange(1, 200).Draw(rt, "count")
		m := New(flavor, count)
		present := map[int]bool{}
		n := rapid.IntRange(0, count).Draw(rt, "n")
		for i := 0; i < n; i++ {
			idx := rapid.IntRange(0, count-1).Draw(rt, "idx")
			present[idx] = true
			m.Set(idx, true)
		}
		for i := 0; i < count; i++ {
			assert.Equal(t, present[i], m.Test(i))
		}
	})
}
