package d868uv

import (
	"math"

	"github.com/tzneal/coordconv"

	"github.com/n0call/d868uv-codeplug/pkg/codeplug"
)

// gps_settings_t per-system record (16 bytes), grounded on
// d868uv_codeplug.hh's gps_settings_t, encoded one record per configured
// GPS/APRS system:
//
//	0x00-0x01  target contact index, uint16 LE
//	0x02       callType(2b) timeslot(2b) hasFixedLocation(1b)
//	0x03       manualTXIntervalSec
//	0x04-0x05  autoTXIntervalSec, uint16 LE
//	0x06       power(2b)
//	0x07       latitude hemisphere: 0=N, 1=S
//	0x08       latitude degrees
//	0x09-0x0A  latitude minutes*100, uint16 LE
//	0x0B       longitude hemisphere: 0=E, 1=W
//	0x0C       longitude degrees
//	0x0D-0x0E  longitude minutes*100, uint16 LE
//	0x0F       reserved
//
// Degree/minute encoding follows the APRS convention this radio's GPS beacon
// also uses; coordconv.Hemisphere tags which pole the latitude bucket is in,
// the same role it plays in direwolf-style AX.25 position decoding.
const (
	gpsOffTarget    = 0x00
	gpsOffFlags     = 0x02
	gpsOffManualTX  = 0x03
	gpsOffAutoTX    = 0x04
	gpsOffPower     = 0x06
	gpsOffLatHemi   = 0x07
	gpsOffLatDeg    = 0x08
	gpsOffLatMin    = 0x09
	gpsOffLonHemi   = 0x0B
	gpsOffLonDeg    = 0x0C
	gpsOffLonMin    = 0x0D
)

func degMin(decimalDeg float64) (degrees uint8, minutesHundredths uint16) {
	abs := math.Abs(decimalDeg)
	degrees = uint8(abs)
	minutes := (abs - math.Trunc(abs)) * 60
	minutesHundredths = uint16(math.Round(minutes * 100))
	return
}

func fromDegMin(degrees uint8, minutesHundredths uint16, negative bool) float64 {
	v := float64(degrees) + float64(minutesHundredths)/100/60
	if negative {
		v = -v
	}
	return v
}

func encodeGpsSystemRecord(g codeplug.GpsSystem) []byte {
	b := make([]byte, gpsRecordSize)
	putUint16LE(b, gpsOffTarget, index16(int(g.Target), NoContactRaw16))
	setBits(b, gpsOffFlags, 0, 2, uint8(g.CallType))
	setBits(b, gpsOffFlags, 2, 2, uint8(g.Timeslot))
	setBit(b, gpsOffFlags, 4, g.HasFixedLocation)
	b[gpsOffManualTX] = g.ManualTXIntervalSec
	putUint16LE(b, gpsOffAutoTX, g.AutoTXIntervalSec)
	setBits(b, gpsOffPower, 0, 2, uint8(g.Power))

	if g.HasFixedLocation {
		latHemi := coordconv.HemisphereNorth
		if g.FixedLocation.LatitudeDeg < 0 {
			latHemi = coordconv.HemisphereSouth
		}
		setBit(b, gpsOffLatHemi, 0, latHemi == coordconv.HemisphereSouth)
		latDeg, latMin := degMin(g.FixedLocation.LatitudeDeg)
		b[gpsOffLatDeg] = latDeg
		putUint16LE(b, gpsOffLatMin, latMin)

		setBit(b, gpsOffLonHemi, 0, g.FixedLocation.LongitudeDeg < 0)
		lonDeg, lonMin := degMin(g.FixedLocation.LongitudeDeg)
		b[gpsOffLonDeg] = lonDeg
		putUint16LE(b, gpsOffLonMin, lonMin)
	}

	return b
}

func decodeGpsSystemRecord(b []byte) codeplug.GpsSystem {
	g := codeplug.GpsSystem{
		Target:              codeplug.ContactIndex(signedIndex16(getUint16LE(b, gpsOffTarget), NoContactRaw16)),
		CallType:            codeplug.GpsCallType(getBits(b, gpsOffFlags, 0, 2)),
		Timeslot:            codeplug.GpsTimeslot(getBits(b, gpsOffFlags, 2, 2)),
		HasFixedLocation:    getBit(b, gpsOffFlags, 4),
		ManualTXIntervalSec: b[gpsOffManualTX],
		AutoTXIntervalSec:   getUint16LE(b, gpsOffAutoTX),
		Power:               codeplug.Power(getBits(b, gpsOffPower, 0, 2)),
	}
	if g.HasFixedLocation {
		lat := fromDegMin(b[gpsOffLatDeg], getUint16LE(b, gpsOffLatMin), getBit(b, gpsOffLatHemi, 0))
		lon := fromDegMin(b[gpsOffLonDeg], getUint16LE(b, gpsOffLonMin), getBit(b, gpsOffLonHemi, 0))
		g.FixedLocation = codeplug.Coordinate{LatitudeDeg: lat, LongitudeDeg: lon}
	}
	return g
}
