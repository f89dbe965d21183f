package d868uv

import (
	"github.com/charmbracelet/log"

	"github.com/n0call/d868uv-codeplug/pkg/codeplug"
	"github.com/n0call/d868uv-codeplug/pkg/image"
)

// Encode maps cfg into a fresh sparse binary image (spec.md §4.7). Record
// types are handled one after another: for each, every record is allocated
// and written, then that type's presence mask; the DMR-ID map is built
// right after the contacts. An error in a channel, contact, analog
// contact, zone, group list, scan list or radio ID record is fatal and
// aborts the whole encode. The GPS systems, settings and supplemented
// regions are written best-effort: their allocation/write errors are
// ignored, and GPS systems past MaxGpsSystems are dropped.
//
// logger receives informational progress; pass nil to use log.Default().
func Encode(cfg *codeplug.Config, logger *log.Logger) (*image.Image, error) {
	if logger == nil {
		logger = log.Default()
	}
	img := image.New()

	if err := encodeChannels(img, cfg); err != nil {
		return nil, err
	}
	if err := encodeContacts(img, cfg); err != nil {
		return nil, err
	}
	if err := encodeAnalogContacts(img, cfg); err != nil {
		return nil, err
	}
	if err := encodeZones(img, cfg); err != nil {
		return nil, err
	}
	if err := encodeGroupLists(img, cfg); err != nil {
		return nil, err
	}
	if err := encodeScanLists(img, cfg); err != nil {
		return nil, err
	}
	if err := encodeRadioIDs(img, cfg); err != nil {
		return nil, err
	}
	encodeGpsSystems(img, cfg)
	encodeSettings(img, cfg)
	encodeSupplemented(img, cfg)

	logger.Debug("encoded codeplug",
		"channels", len(cfg.Channels), "contacts", len(cfg.Contacts),
		"zones", len(cfg.Zones), "scanLists", len(cfg.ScanLists),
		"groupLists", len(cfg.GroupLists), "radioIDs", len(cfg.RadioIDs))

	return img, nil
}

// Decode reconstructs a Config from an already-filled image in two passes,
// construct -> link (spec.md §4.7); it does not plan or fetch regions
// itself. It never fails on a bad cross-reference -- those become warning
// diagnostics from the linking pass -- but does fail if a channel, contact,
// analog contact, zone, group list, scan list or radio ID presence bit
// claims a record that the image doesn't actually have bytes for.
func Decode(img *image.Image, logger *log.Logger) (*codeplug.Config, []codeplug.Diagnostic, error) {
	if logger == nil {
		logger = log.Default()
	}
	cfg := &codeplug.Config{}

	if err := decodeChannels(img, cfg); err != nil {
		return nil, nil, err
	}
	if err := decodeContacts(img, cfg); err != nil {
		return nil, nil, err
	}
	if err := decodeAnalogContacts(img, cfg); err != nil {
		return nil, nil, err
	}
	if err := decodeZones(img, cfg); err != nil {
		return nil, nil, err
	}
	if err := decodeGroupLists(img, cfg); err != nil {
		return nil, nil, err
	}
	if err := decodeScanLists(img, cfg); err != nil {
		return nil, nil, err
	}
	if err := decodeRadioIDs(img, cfg); err != nil {
		return nil, nil, err
	}
	decodeGpsSystems(img, cfg)
	decodeSettings(img, cfg)
	decodeSupplemented(img, cfg)

	diags := link(cfg)
	for _, d := range diags {
		logger.Warn(d.String())
	}

	return cfg, diags, nil
}

func encodeChannels(img *image.Image, cfg *codeplug.Config) error {
	if len(cfg.Channels) > MaxChannels {
		return codeplug.NewError(codeplug.CapacityExceeded, "Channel", 0, 0, "too many channels")
	}
	mask := newMask(channelMaskSpec)
	for i, ch := range cfg.Channels {
		rec, err := encodeChannelRecord(ch, func(ci codeplug.ContactIndex) uint32 { return index32(int(ci), NoContactRaw) })
		if err != nil {
			return err
		}
		addr := channelAddress(i)
		if err := img.Allocate(addr, channelRecordSize, 0); err != nil {
			return err
		}
		if err := img.Write(addr, rec); err != nil {
			return err
		}
		mask.Set(i, true)
	}
	return writeMask(img, channelMaskSpec, mask)
}

func decodeChannels(img *image.Image, cfg *codeplug.Config) error {
	mask, err := readMask(img, channelMaskSpec)
	if err != nil {
		return err
	}
	for _, i := range mask.PresentIndices() {
		b, err := img.Read(channelAddress(i), channelRecordSize)
		if err != nil {
			return codeplug.NewError(codeplug.CorruptImage, "Channel", i, uint32(channelAddress(i)), err.Error())
		}
		ch := decodeChannelRecord(b, func(raw uint32) codeplug.ContactIndex {
			return codeplug.ContactIndex(signedIndex32(raw, NoContactRaw))
		})
		for len(cfg.Channels) <= i {
			cfg.Channels = append(cfg.Channels, codeplug.Channel{Contact: codeplug.NoContact, ScanList: codeplug.NoScanList, GroupList: codeplug.NoGroupList, RadioID: codeplug.NoRadioID, GpsSystem: codeplug.NoGpsSystem})
		}
		cfg.Channels[i] = ch
	}
	return nil
}

func encodeContacts(img *image.Image, cfg *codeplug.Config) error {
	if len(cfg.Contacts) > MaxContacts {
		return codeplug.NewError(codeplug.CapacityExceeded, "Contact", 0, 0, "too many contacts")
	}
	mask := newMask(contactMaskSpec)
	for i, c := range cfg.Contacts {
		rec, err := encodeContactRecord(c)
		if err != nil {
			return err
		}
		addr := contactAddress(i)
		if err := img.Allocate(addr, contactRecordSize, 0); err != nil {
			return err
		}
		if err := img.Write(addr, rec); err != nil {
			return err
		}
		mask.Set(i, true)
	}
	if err := writeMask(img, contactMaskSpec, mask); err != nil {
		return err
	}
	idx := buildContactIndex(cfg.Contacts)
	if len(idx) > 0 {
		if err := img.Allocate(addrContactMapBase, len(idx), 0xFF); err != nil {
			return err
		}
		return img.Write(addrContactMapBase, idx)
	}
	return nil
}

func decodeContacts(img *image.Image, cfg *codeplug.Config) error {
	mask, err := readMask(img, contactMaskSpec)
	if err != nil {
		return err
	}
	for _, i := range mask.PresentIndices() {
		b, err := img.Read(contactAddress(i), contactRecordSize)
		if err != nil {
			return codeplug.NewError(codeplug.CorruptImage, "Contact", i, uint32(contactAddress(i)), err.Error())
		}
		c := decodeContactRecord(b)
		for len(cfg.Contacts) <= i {
			cfg.Contacts = append(cfg.Contacts, codeplug.Contact{})
		}
		cfg.Contacts[i] = c
	}
	return nil
}

func encodeAnalogContacts(img *image.Image, cfg *codeplug.Config) error {
	if len(cfg.AnalogContacts) > MaxAnalogContacts {
		return codeplug.NewError(codeplug.CapacityExceeded, "AnalogContact", 0, 0, "too many analog contacts")
	}
	mask := newMask(analogContactMaskSpec)
	for i, c := range cfg.AnalogContacts {
		rec := encodeAnalogContactRecord(c)
		addr := analogContactAddress(i)
		if err := img.Allocate(addr, analogRecordSize, 0); err != nil {
			return err
		}
		if err := img.Write(addr, rec); err != nil {
			return err
		}
		mask.Set(i, true)
	}
	return writeMask(img, analogContactMaskSpec, mask)
}

func decodeAnalogContacts(img *image.Image, cfg *codeplug.Config) error {
	mask, err := readMask(img, analogContactMaskSpec)
	if err != nil {
		return err
	}
	for _, i := range mask.PresentIndices() {
		b, err := img.Read(analogContactAddress(i), analogRecordSize)
		if err != nil {
			return codeplug.NewError(codeplug.CorruptImage, "AnalogContact", i, uint32(analogContactAddress(i)), err.Error())
		}
		c := decodeAnalogContactRecord(b)
		for len(cfg.AnalogContacts) <= i {
			cfg.AnalogContacts = append(cfg.AnalogContacts, codeplug.AnalogContact{})
		}
		cfg.AnalogContacts[i] = c
	}
	return nil
}

func encodeZones(img *image.Image, cfg *codeplug.Config) error {
	if len(cfg.Zones) > MaxZones {
		return codeplug.NewError(codeplug.CapacityExceeded, "Zone", 0, 0, "too many zones")
	}
	mask := newMask(zoneMaskSpec)
	for i, z := range cfg.Zones {
		members, err := encodeZoneMemberList(z)
		if err != nil {
			return err
		}
		nameRec := encodeZoneNameRecord(z)
		sel := encodeZoneSelectedChannels(z)

		if err := img.Allocate(zoneChannelListAddress(i), zoneListSize, 0xFF); err != nil {
			return err
		}
		if err := img.Write(zoneChannelListAddress(i), members); err != nil {
			return err
		}
		if err := img.Allocate(zoneNameAddress(i), zoneNameRecordSize, 0); err != nil {
			return err
		}
		if err := img.Write(zoneNameAddress(i), nameRec); err != nil {
			return err
		}
		if err := img.Allocate(zoneSelectedChannelsAddress(i), selectedChannelsEntrySize, 0xFF); err != nil {
			return err
		}
		if err := img.Write(zoneSelectedChannelsAddress(i), sel); err != nil {
			return err
		}
		mask.Set(i, true)
	}
	return writeMask(img, zoneMaskSpec, mask)
}

func decodeZones(img *image.Image, cfg *codeplug.Config) error {
	mask, err := readMask(img, zoneMaskSpec)
	if err != nil {
		return err
	}
	for _, i := range mask.PresentIndices() {
		members, err := img.Read(zoneChannelListAddress(i), zoneListSize)
		if err != nil {
			return codeplug.NewError(codeplug.CorruptImage, "Zone", i, uint32(zoneChannelListAddress(i)), err.Error())
		}
		nameRec, err := img.Read(zoneNameAddress(i), zoneNameRecordSize)
		if err != nil {
			return codeplug.NewError(codeplug.CorruptImage, "Zone", i, uint32(zoneNameAddress(i)), err.Error())
		}
		sel, err := img.Read(zoneSelectedChannelsAddress(i), selectedChannelsEntrySize)
		if err != nil {
			return codeplug.NewError(codeplug.CorruptImage, "Zone", i, uint32(zoneSelectedChannelsAddress(i)), err.Error())
		}
		a, b := decodeZoneSelectedChannels(sel)
		z := codeplug.Zone{
			Name:             decodeZoneNameRecord(nameRec),
			Channels:         decodeZoneMemberList(members),
			SelectedChannelA: a,
			SelectedChannelB: b,
		}
		for len(cfg.Zones) <= i {
			cfg.Zones = append(cfg.Zones, codeplug.Zone{})
		}
		cfg.Zones[i] = z
	}
	return nil
}

func encodeGroupLists(img *image.Image, cfg *codeplug.Config) error {
	if len(cfg.GroupLists) > MaxGroupLists {
		return codeplug.NewError(codeplug.CapacityExceeded, "GroupList", 0, 0, "too many group lists")
	}
	mask := newMask(groupListMaskSpec)
	for i, g := range cfg.GroupLists {
		rec, err := encodeGroupListRecord(g)
		if err != nil {
			return err
		}
		addr := groupListAddress(i)
		if err := img.Allocate(addr, grouplistRecordSize, 0xFF); err != nil {
			return err
		}
		if err := img.Write(addr, rec); err != nil {
			return err
		}
		mask.Set(i, true)
	}
	return writeMask(img, groupListMaskSpec, mask)
}

func decodeGroupLists(img *image.Image, cfg *codeplug.Config) error {
	mask, err := readMask(img, groupListMaskSpec)
	if err != nil {
		return err
	}
	for _, i := range mask.PresentIndices() {
		b, err := img.Read(groupListAddress(i), grouplistRecordSize)
		if err != nil {
			return codeplug.NewError(codeplug.CorruptImage, "GroupList", i, uint32(groupListAddress(i)), err.Error())
		}
		g := decodeGroupListRecord(b)
		for len(cfg.GroupLists) <= i {
			cfg.GroupLists = append(cfg.GroupLists, codeplug.GroupList{})
		}
		cfg.GroupLists[i] = g
	}
	return nil
}

func encodeScanLists(img *image.Image, cfg *codeplug.Config) error {
	if len(cfg.ScanLists) > MaxScanLists {
		return codeplug.NewError(codeplug.CapacityExceeded, "ScanList", 0, 0, "too many scan lists")
	}
	mask := newMask(scanListMaskSpec)
	for i, s := range cfg.ScanLists {
		rec, err := encodeScanListRecord(s)
		if err != nil {
			return err
		}
		addr := scanlistAddress(i)
		if err := img.Allocate(addr, scanlistRecordSize, 0xFF); err != nil {
			return err
		}
		if err := img.Write(addr, rec); err != nil {
			return err
		}
		mask.Set(i, true)
	}
	return writeMask(img, scanListMaskSpec, mask)
}

func decodeScanLists(img *image.Image, cfg *codeplug.Config) error {
	mask, err := readMask(img, scanListMaskSpec)
	if err != nil {
		return err
	}
	for _, i := range mask.PresentIndices() {
		b, err := img.Read(scanlistAddress(i), scanlistRecordSize)
		if err != nil {
			return codeplug.NewError(codeplug.CorruptImage, "ScanList", i, uint32(scanlistAddress(i)), err.Error())
		}
		s := decodeScanListRecord(b)
		for len(cfg.ScanLists) <= i {
			cfg.ScanLists = append(cfg.ScanLists, codeplug.ScanList{})
		}
		cfg.ScanLists[i] = s
	}
	return nil
}

func encodeRadioIDs(img *image.Image, cfg *codeplug.Config) error {
	if len(cfg.RadioIDs) > MaxRadioIDs {
		return codeplug.NewError(codeplug.CapacityExceeded, "RadioID", 0, 0, "too many radio IDs")
	}
	mask := newMask(radioIDMaskSpec)
	for i, r := range cfg.RadioIDs {
		rec, err := encodeRadioIDRecord(r)
		if err != nil {
			return err
		}
		addr := radioIDAddress(i)
		if err := img.Allocate(addr, radioidRecordSize, 0); err != nil {
			return err
		}
		if err := img.Write(addr, rec); err != nil {
			return err
		}
		mask.Set(i, true)
	}
	return writeMask(img, radioIDMaskSpec, mask)
}

func decodeRadioIDs(img *image.Image, cfg *codeplug.Config) error {
	mask, err := readMask(img, radioIDMaskSpec)
	if err != nil {
		return err
	}
	for _, i := range mask.PresentIndices() {
		b, err := img.Read(radioIDAddress(i), radioidRecordSize)
		if err != nil {
			return codeplug.NewError(codeplug.CorruptImage, "RadioID", i, uint32(radioIDAddress(i)), err.Error())
		}
		r := decodeRadioIDRecord(b)
		for len(cfg.RadioIDs) <= i {
			cfg.RadioIDs = append(cfg.RadioIDs, codeplug.RadioId{})
		}
		cfg.RadioIDs[i] = r
	}
	return nil
}

func encodeGpsSystems(img *image.Image, cfg *codeplug.Config) {
	if len(cfg.GpsSystems) == 0 {
		return
	}
	mask := newMask(gpsSystemMaskSpec)
	for i, g := range cfg.GpsSystems {
		if i >= MaxGpsSystems {
			break
		}
		rec := encodeGpsSystemRecord(g)
		addr := gpsSystemAddress(i)
		_ = img.Allocate(addr, gpsRecordSize, 0)
		_ = img.Write(addr, rec)
		mask.Set(i, true)
	}
	_ = writeMask(img, gpsSystemMaskSpec, mask)
}

func decodeGpsSystems(img *image.Image, cfg *codeplug.Config) {
	mask, err := readMask(img, gpsSystemMaskSpec)
	if err != nil {
		return
	}
	for _, i := range mask.PresentIndices() {
		b, err := img.Read(gpsSystemAddress(i), gpsRecordSize)
		if err != nil {
			continue
		}
		g := decodeGpsSystemRecord(b)
		for len(cfg.GpsSystems) <= i {
			cfg.GpsSystems = append(cfg.GpsSystems, codeplug.GpsSystem{Target: codeplug.NoContact})
		}
		cfg.GpsSystems[i] = g
	}
}

func encodeSettings(img *image.Image, cfg *codeplug.Config) {
	gen := encodeGeneralSettingsRecord(cfg.Settings)
	_ = img.Allocate(addrGeneralSettings, generalSettingsSize, 0)
	_ = img.Write(addrGeneralSettings, gen)

	boot := encodeBootSettingsRecord(cfg.Settings)
	_ = img.Allocate(addrBootSettings, bootSettingsSize, 0)
	_ = img.Write(addrBootSettings, boot)
}

func decodeSettings(img *image.Image, cfg *codeplug.Config) {
	if img.IsAllocated(addrGeneralSettings, generalSettingsSize) {
		b, err := img.Read(addrGeneralSettings, generalSettingsSize)
		if err == nil {
			cfg.Settings = decodeGeneralSettingsRecord(b)
		}
	}
	if img.IsAllocated(addrBootSettings, bootSettingsSize) {
		b, err := img.Read(addrBootSettings, bootSettingsSize)
		if err == nil {
			cfg.Settings.BootPassword = decodeBootPassword(b)
		}
	}
}
