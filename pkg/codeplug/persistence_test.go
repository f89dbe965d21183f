package codeplug

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	c := &Config{
		RadioName: "N0CALL",
		RadioIDs:  []RadioId{{ID: 3112345, Name: "Primary"}},
		Contacts:  []Contact{{CallType: CallGroup, ID: 1, Name: "TG1", Alert: AlertRing}},
		Channels: []Channel{{
			Name:          "CH1",
			RxFrequencyHz: 439000000,
			TxOffsetHz:    -7600000,
			Mode:          ModeDigital,
			Contact:       0,
			GroupList:     NoGroupList,
			ScanList:      NoScanList,
			RadioID:       NoRadioID,
			GpsSystem:     NoGpsSystem,
		}},
	}

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, c.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c.RadioName, got.RadioName)
	assert.Equal(t, c.Contacts, got.Contacts)
	assert.Equal(t, c.Channels, got.Channels)
}

func TestDefaultScanTimers(t *testing.T) {
	a, b, dropout, dwell := DefaultScanTimers()
	assert.Equal(t, uint16(15), a)
	assert.Equal(t, uint16(25), b)
	assert.Equal(t, uint16(29), dropout)
	assert.Equal(t, uint16(29), dwell)
}
