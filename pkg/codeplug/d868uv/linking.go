package d868uv

import (
	"fmt"

	"github.com/n0call/d868uv-codeplug/pkg/codeplug"
)

// linkingContext implements the decoder's second pass (spec.md §4.7): every
// record is constructed first with whatever raw indices its bytes carried,
// then this pass validates each cross-reference against the lists that were
// actually decoded. An out-of-range reference is never a decode error -- the
// device itself could not have produced one from a codeplug it accepted --
// so it is cleared to the "none" sentinel and reported as a warning
// diagnostic instead.
type linkingContext struct {
	diagnostics []codeplug.Diagnostic
}

func (lc *linkingContext) warn(recordType string, index int, message string) {
	lc.diagnostics = append(lc.diagnostics, codeplug.Diagnostic{
		Kind:       codeplug.InvalidIndex,
		RecordType: recordType,
		Index:      index,
		Message:    message,
	})
}

func (lc *linkingContext) checkContact(cfg *codeplug.Config, recordType string, recIdx int, ref *codeplug.ContactIndex) {
	if *ref == codeplug.NoContact {
		return
	}
	if int(*ref) < 0 || int(*ref) >= len(cfg.Contacts) {
		lc.warn(recordType, recIdx, fmt.Sprintf("contact reference %d out of range, cleared", *ref))
		*ref = codeplug.NoContact
	}
}

func (lc *linkingContext) checkChannel(cfg *codeplug.Config, recordType string, recIdx int, ref *codeplug.ChannelIndex) {
	if *ref == codeplug.NoChannel {
		return
	}
	if int(*ref) < 0 || int(*ref) >= len(cfg.Channels) {
		lc.warn(recordType, recIdx, fmt.Sprintf("channel reference %d out of range, cleared", *ref))
		*ref = codeplug.NoChannel
	}
}

// link validates every cross-reference in a freshly decoded Config,
// returning any warnings accumulated along the way.
func link(cfg *codeplug.Config) []codeplug.Diagnostic {
	lc := &linkingContext{}

	for i := range cfg.Channels {
		ch := &cfg.Channels[i]
		lc.checkContact(cfg, "Channel", i, &ch.Contact)
		if ch.RadioID != codeplug.NoRadioID && (int(ch.RadioID) < 0 || int(ch.RadioID) >= len(cfg.RadioIDs)) {
			lc.warn("Channel", i, fmt.Sprintf("radio ID reference %d out of range, cleared", ch.RadioID))
			ch.RadioID = codeplug.NoRadioID
		}
		if ch.ScanList != codeplug.NoScanList && (int(ch.ScanList) < 0 || int(ch.ScanList) >= len(cfg.ScanLists)) {
			lc.warn("Channel", i, fmt.Sprintf("scan list reference %d out of range, cleared", ch.ScanList))
			ch.ScanList = codeplug.NoScanList
		}
		if ch.GroupList != codeplug.NoGroupList && (int(ch.GroupList) < 0 || int(ch.GroupList) >= len(cfg.GroupLists)) {
			lc.warn("Channel", i, fmt.Sprintf("group list reference %d out of range, cleared", ch.GroupList))
			ch.GroupList = codeplug.NoGroupList
		}
		if ch.GpsSystem != codeplug.NoGpsSystem && (int(ch.GpsSystem) < 0 || int(ch.GpsSystem) >= len(cfg.GpsSystems)) {
			lc.warn("Channel", i, fmt.Sprintf("GPS system reference %d out of range, cleared", ch.GpsSystem))
			ch.GpsSystem = codeplug.NoGpsSystem
		}
	}

	for i := range cfg.Zones {
		z := &cfg.Zones[i]
		kept := z.Channels[:0]
		for _, ci := range z.Channels {
			if int(ci) >= 0 && int(ci) < len(cfg.Channels) {
				kept = append(kept, ci)
			} else {
				lc.warn("Zone", i, fmt.Sprintf("member channel %d out of range, dropped", ci))
			}
		}
		z.Channels = kept
		lc.checkChannel(cfg, "Zone", i, &z.SelectedChannelA)
		lc.checkChannel(cfg, "Zone", i, &z.SelectedChannelB)
	}

	for i := range cfg.GroupLists {
		g := &cfg.GroupLists[i]
		kept := g.Contacts[:0]
		for _, ci := range g.Contacts {
			if int(ci) >= 0 && int(ci) < len(cfg.Contacts) {
				kept = append(kept, ci)
			} else {
				lc.warn("GroupList", i, fmt.Sprintf("member contact %d out of range, dropped", ci))
			}
		}
		g.Contacts = kept
	}

	for i := range cfg.ScanLists {
		s := &cfg.ScanLists[i]
		kept := s.Members[:0]
		for _, ci := range s.Members {
			if int(ci) >= 0 && int(ci) < len(cfg.Channels) {
				kept = append(kept, ci)
			} else {
				lc.warn("ScanList", i, fmt.Sprintf("member channel %d out of range, dropped", ci))
			}
		}
		s.Members = kept
		if s.P1.Kind == codeplug.ScanChannelRef {
			lc.checkChannel(cfg, "ScanList", i, &s.P1.Channel)
		}
		if s.P2.Kind == codeplug.ScanChannelRef {
			lc.checkChannel(cfg, "ScanList", i, &s.P2.Channel)
		}
	}

	for i := range cfg.GpsSystems {
		g := &cfg.GpsSystems[i]
		lc.checkContact(cfg, "GpsSystem", i, &g.Target)
	}

	return lc.diagnostics
}
