package signaling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCTCSSTableEdges(t *testing.T) {
	v, err := CTCSSIndexToTenthsHz(0)
	assert.NoError(t, err)
	assert.Equal(t, uint16(625), v, "index 0 is 62.5 Hz")

	v, err = CTCSSIndexToTenthsHz(50)
	assert.NoError(t, err)
	assert.Equal(t, uint16(2541), v, "index 50 is 254.1 Hz")

	_, err = CTCSSIndexToTenthsHz(CTCSSCustom)
	assert.Error(t, err)
}

func TestCTCSSLookupRoundTrip(t *testing.T) {
	for i := uint8(0); i <= 50; i++ {
		freq, err := CTCSSIndexToTenthsHz(i)
		assert.NoError(t, err)
		idx, ok := CTCSSTenthsHzToIndex(freq)
		assert.True(t, ok)
		assert.Equal(t, i, idx)
	}
}

func TestCTCSSCustomFrequencyNotInTable(t *testing.T) {
	_, ok := CTCSSTenthsHzToIndex(9999)
	assert.False(t, ok)
}

func TestDCSNormalAndInverted(t *testing.T) {
	normal := DecodeDCS(EncodeDCS(DCSCode{Code: 23}))
	assert.Equal(t, DCSCode{Code: 23, Inverted: false}, normal)

	inverted := DecodeDCS(EncodeDCS(DCSCode{Code: 23, Inverted: true}))
	assert.Equal(t, DCSCode{Code: 23, Inverted: true}, inverted)
}

func TestDCSAtMaxCode777(t *testing.T) {
	max := DCSCode{Code: MaxDCSCode}
	assert.Equal(t, "D777N", max.DCSOctalString())
	assert.Equal(t, max, DecodeDCS(EncodeDCS(max)))

	maxInv := DCSCode{Code: MaxDCSCode, Inverted: true}
	assert.Equal(t, "D777I", maxInv.DCSOctalString())
	assert.Equal(t, maxInv, DecodeDCS(EncodeDCS(maxInv)))
}
