// Package codeplug defines the abstract, radio-agnostic configuration model
// (spec.md §3.1): the data the GUI editor (out of scope here) mutates and
// that the d868uv codec maps to and from the binary memory image.
//
// Cross-object references are modelled as indices into the owning list
// rather than pointers, mirroring spec.md §9's "arena + index" design note:
// it keeps the abstract model itself trivially comparable (useful for the
// round-trip invariants in spec.md §8) and matches exactly what the binary
// codec has to produce anyway.
package codeplug

// ChannelIndex references a Config.Channels entry; NoChannel means unset.
type ChannelIndex int

// NoChannel is the "no channel referenced" sentinel.
const NoChannel ChannelIndex = -1

// ContactIndex references a Config.Contacts entry; NoContact means unset.
type ContactIndex int

// NoContact is the "no contact referenced" sentinel.
const NoContact ContactIndex = -1

// AnalogContactIndex references a Config.AnalogContacts entry.
type AnalogContactIndex int

// NoAnalogContact is the "no analog contact referenced" sentinel.
const NoAnalogContact AnalogContactIndex = -1

// GroupListIndex references a Config.GroupLists entry.
type GroupListIndex int

// NoGroupList is the "no group list referenced" sentinel.
const NoGroupList GroupListIndex = -1

// ScanListIndex references a Config.ScanLists entry.
type ScanListIndex int

// NoScanList is the "no scan list referenced" sentinel.
const NoScanList ScanListIndex = -1

// RadioIDIndex references a Config.RadioIDs entry.
type RadioIDIndex int

// NoRadioID is the "no radio ID referenced" sentinel.
const NoRadioID RadioIDIndex = -1

// GpsSystemIndex references a Config.GpsSystems entry.
type GpsSystemIndex int

// NoGpsSystem is the "no GPS system referenced" sentinel.
const NoGpsSystem GpsSystemIndex = -1

// ZoneIndex references a Config.Zones entry.
type ZoneIndex int

// RadioId is an operator DMR identity (spec.md §3.1).
type RadioId struct {
	ID   uint32 // up to 8 decimal digits
	Name string // up to 16 chars
}

// CallType distinguishes a digital contact's DMR call kind.
type CallType int

const (
	CallPrivate CallType = iota
	CallGroup
	CallAll
)

// AlertType controls whether (and how) a contact rings on incoming calls.
// AlertOnline's exact radio behaviour is undocumented upstream (spec.md §9);
// it is carried through as an opaque enumerant, never synthesized.
type AlertType int

const (
	AlertNone AlertType = iota
	AlertRing
	AlertOnline
)

// Contact is a digital (DMR) contact (spec.md §3.1).
type Contact struct {
	CallType CallType
	ID       uint32 // 24-bit DMR ID
	Name     string // up to 16 chars
	Alert    AlertType
}

// AnalogContact is an analog (MDC/tone) dialed-number contact.
type AnalogContact struct {
	Number string // up to 14 digits
	Name   string // up to 15 chars
}

// ChannelMode selects analog/digital operation for a channel.
type ChannelMode int

const (
	ModeAnalog ChannelMode = iota
	ModeDigital
	ModeMixedAD // TX analog, RX digital
	ModeMixedDA // TX digital, RX analog
)

// Power is a channel's transmit power level.
type Power int

const (
	PowerLow Power = iota
	PowerMid
	PowerHigh
	PowerTurbo
)

// Bandwidth is an analog channel's IF bandwidth.
type Bandwidth int

const (
	Bandwidth12_5kHz Bandwidth = iota
	Bandwidth25kHz
)

// SquelchMode selects the squelch-open condition.
type SquelchMode int

const (
	SquelchCarrier SquelchMode = iota
)

// TxPermit is the TX admit criterion.
type TxPermit int

const (
	AdmitAlways TxPermit = iota
	AdmitColorCode
	AdmitChannelFree
)

// OptSignaling selects an optional in-band signalling scheme.
type OptSignaling int

const (
	OptSignalingOff OptSignaling = iota
	OptSignalingDTMF
	OptSignaling2Tone
	OptSignaling5Tone
)

// Timeslot selects which DMR timeslot a channel uses.
type Timeslot int

const (
	Timeslot1 Timeslot = iota
	Timeslot2
)

// Tone is a CTCSS (frequency) or DCS (code+polarity) sub-audible tone, or
// no tone at all. Exactly one of CTCSSTenthsHz/DCS is meaningful, selected
// by Kind.
type ToneKind int

const (
	ToneNone ToneKind = iota
	ToneCTCSS
	ToneDCS
)

// Tone is a tagged union over "no tone" / CTCSS frequency / DCS code,
// matching spec.md §9's guidance to model distinct sentinel meanings as
// tagged variants rather than nullable integers.
type Tone struct {
	Kind         ToneKind
	CTCSSTenthsHz uint16 // meaningful when Kind == ToneCTCSS
	DCSCode      uint16 // meaningful when Kind == ToneDCS, 0-511
	DCSInverted  bool
}

// Channel is a single radio channel (spec.md §3.1, §4.3).
type Channel struct {
	Name string // up to 16 chars

	RxFrequencyHz uint32 // Hz, stored in 10 Hz steps (lower digit dropped)
	TxOffsetHz    int32  // signed, Hz; 0 = simplex

	Mode      ChannelMode
	Power     Power
	Bandwidth Bandwidth

	RxTone Tone
	TxTone Tone
	CustomCTCSSTenthsHz uint16 // used only when a Tone.Kind's index == CTCSSCustom
	ReverseBurst        bool
	RxOnly              bool
	CallConfirm         bool
	TalkAround          bool

	Tone2DecodeSlot uint8 // 2-tone decode slot, 0-15

	Contact      ContactIndex
	RadioID      RadioIDIndex
	SquelchMode  SquelchMode
	TxPermit     TxPermit
	OptSignaling OptSignaling
	ScanList     ScanListIndex
	GroupList    GroupListIndex

	ID2Tone uint8
	ID5Tone uint8
	IDDTMF  uint8

	ColorCode uint8 // 0-15
	Timeslot  Timeslot

	SMSConfirm     bool
	SimplexTDMA    bool
	TDMAAdaptive   bool
	RxGPS          bool
	EnhEncryption  bool
	WorkAlone      bool

	Ranging         bool
	ThroughMode     bool
	DataACKForbid   bool
	APRSEnable      bool
	GpsSystem       GpsSystemIndex
	DMREncryption   uint8 // 0 = off, 1-32 key index
	MultipleKeys    bool
	RandomKey       bool
	SMSForbid       bool
}

// Zone is a named, ordered subset of channels (spec.md §3.1).
type Zone struct {
	Name               string // up to 16 chars
	Channels           []ChannelIndex
	SelectedChannelA   ChannelIndex
	SelectedChannelB   ChannelIndex
}

// GroupList is an RX group list: an ordered set of digital contacts.
type GroupList struct {
	Name     string // up to 16 chars
	Contacts []ContactIndex
}

// PriorityMode selects which priority channel slots a scan list uses.
type PriorityMode int

const (
	PriorityOff PriorityMode = iota
	PriorityP1
	PriorityP2
	PriorityP1P2
)

// RevertChannelMode selects where a scan list returns to after a scan.
type RevertChannelMode int

const (
	RevertSelected RevertChannelMode = iota
	RevertSelectedTalkback
	RevertPriority1
	RevertPriority2
	RevertLastCalled
	RevertLastUsed
	RevertPriority1Talkback
	RevertPriority2Talkback
)

// ScanChannelKind tags a priority-channel slot's special sentinels (spec.md
// §9: "current channel" vs "off" are distinct and modelled as variants).
type ScanChannelKind int

const (
	ScanChannelOff ScanChannelKind = iota
	ScanChannelCurrent
	ScanChannelRef
)

// ScanChannel is a scan list priority-channel slot.
type ScanChannel struct {
	Kind    ScanChannelKind
	Channel ChannelIndex // meaningful when Kind == ScanChannelRef
}

// ScanList is an ordered set of channels the radio cycles through (spec.md
// §3.1, §4.3).
type ScanList struct {
	Name         string
	Priority     PriorityMode
	P1           ScanChannel
	P2           ScanChannel
	LookBackA    uint16 // tenths of a second
	LookBackB    uint16
	DropoutDelay uint16
	Dwell        uint16
	Revert       RevertChannelMode
	Members      []ChannelIndex
}

// DefaultScanTimers returns the radio's documented scan-list timer
// defaults (spec.md §4.3): lookback-A 1.5s, lookback-B 2.5s, dropout 2.9s,
// dwell 2.9s, all in tenths of a second.
func DefaultScanTimers() (lookBackA, lookBackB, dropout, dwell uint16) {
	return 15, 25, 29, 29
}

// GpsCallType is the call type used when transmitting a GPS/APRS report.
type GpsCallType int

const (
	GpsCallPrivate GpsCallType = iota
	GpsCallGroup
	GpsCallAll
)

// GpsTimeslot selects a GPS system's transmit timeslot.
type GpsTimeslot int

const (
	GpsTimeslotSame GpsTimeslot = iota
	GpsTimeslot1
	GpsTimeslot2
)

// Coordinate is a decimal-degree WGS84 position, converted at the codec
// boundary to/from the radio's degree/minute/hundredth-of-minute encoding
// (see pkg/codeplug/d868uv, grounded on github.com/tzneal/coordconv).
type Coordinate struct {
	LatitudeDeg  float64
	LongitudeDeg float64
}

// GpsSystem is a DMR-GPS/APRS reporting configuration (spec.md §3.1).
type GpsSystem struct {
	Target              ContactIndex
	CallType            GpsCallType
	Timeslot            GpsTimeslot
	ManualTXIntervalSec uint8
	AutoTXIntervalSec   uint16 // 0 = off; otherwise 45 + 15*n
	Power               Power

	HasFixedLocation bool
	FixedLocation    Coordinate
}

// Settings holds the radio-wide general/boot settings (spec.md §3.1).
type Settings struct {
	IntroLine1   string // up to 14 chars
	IntroLine2   string // up to 14 chars
	BootPassword string // up to 8 digits

	MicLevel     uint8
	Squelch      uint8
	VOX          uint8
	TOT          uint8 // seconds
	DefaultPower Power
	Speech       bool

	// Unknown-but-preserved 0xD0-byte block (spec.md §9 open question 1).
	RawGeneral []byte
}

// Config is the complete abstract configuration the codec maps to/from the
// binary codeplug.
type Config struct {
	RadioName string
	RadioIDs  []RadioId

	Contacts       []Contact
	AnalogContacts []AnalogContact

	Channels   []Channel
	Zones      []Zone
	GroupLists []GroupList
	ScanLists  []ScanList
	GpsSystems []GpsSystem

	Settings Settings

	// VFOA/VFOB are the radio's two always-present VFO channels (spec.md
	// §6, SPEC_FULL.md §C). Nil means "leave at firmware default" on
	// encode.
	VFOA *Channel
	VFOB *Channel

	// DTMFNumbers is the 16-entry DTMF speed-dial list (SPEC_FULL.md §C).
	// An empty string means the slot is unused.
	DTMFNumbers [16]string

	// RepeaterOffsets holds the 250 auto-repeater offset frequencies, in
	// Hz (SPEC_FULL.md §C), indexed by zone-independent slot.
	RepeaterOffsets [250]uint32

	QuickCalls [4]QuickCall
	HotKeys    [18]HotKey

	Alarm AlarmSettings

	// StatusMessages holds the 32 fixed 0x20-byte opaque status-message
	// slots (spec.md §9 open question 2): the true text width within the
	// stride is undocumented upstream, so these round-trip as raw bytes.
	StatusMessages [32][]byte

	// RawMessages/RawFMChannels/RawFMVFOHz preserve regions the codec does
	// not model (SPEC_FULL.md §C): decoded only as far as presence, carried
	// verbatim otherwise. The FM values are the raw 32-bit little-endian
	// words of the image, not converted to Hz.
	RawMessages    [][]byte // up to 100 prefab SMS message slots, 0x100B each
	RawFMChannels  [100]uint32 // FM broadcast channel words, raw
	RawFMVFOHz     uint32
}

// QuickCallType selects what an analog quick-call slot dials.
type QuickCallType int

const (
	QuickCallNone QuickCallType = iota
	QuickCallDTMF
	QuickCall2Tone
	QuickCall5Tone
)

// QuickCall is one of the four analog quick-call speed-dial slots.
type QuickCall struct {
	Type  QuickCallType
	Index uint8 // index into the relevant ID table, 0xFF sentinel handled by codec
}

// HotKeyType distinguishes a call-shortcut hot key from a menu-shortcut one.
type HotKeyType int

const (
	HotKeyCall HotKeyType = iota
	HotKeyMenu
)

// HotKeyCallKind selects what a call-type hot key dials.
type HotKeyCallKind int

const (
	HotKeyCallAnalog HotKeyCallKind = iota
	HotKeyCallDigital
)

// HotKey is one of the 18 programmable hot-key slots.
type HotKey struct {
	Type     HotKeyType
	MenuItem uint8          // meaningful when Type == HotKeyMenu
	CallKind HotKeyCallKind // meaningful when Type == HotKeyCall
	// CallTarget indexes either the analog quick-call table or the
	// contact table depending on CallKind; -1 means unset.
	CallTarget int32
	Content    int32 // message/state index; -1 means unset
}

// AlarmAction selects what an emergency alarm does.
type AlarmAction int

const (
	AlarmNone AlarmAction = iota
	AlarmTXAndBackground
	AlarmTXAndAlarm
	AlarmBoth
)

// AlarmSignalType selects how the alarm code is signalled.
type AlarmSignalType int

const (
	AlarmSignalNone AlarmSignalType = iota
	AlarmSignalDTMF
	AlarmSignal5Tone
)

// AlarmSettings models the subset of the analog alarm region this codec
// understands (SPEC_FULL.md §C): the first 6 bytes of the 0x20-byte
// region. The remaining bytes are not modelled and are not carried through
// a decode/encode round trip.
type AlarmSettings struct {
	Action            AlarmAction
	SignalType        AlarmSignalType
	EmergencyIDIndex  uint8
	AlarmTimeSec      uint8
	TXDurationSec     uint8
	RXDurationSec     uint8
}
