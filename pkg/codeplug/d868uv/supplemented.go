package d868uv

import (
	"github.com/n0call/d868uv-codeplug/pkg/codeplug"
	"github.com/n0call/d868uv-codeplug/pkg/image"
)

// encodeSupplemented / decodeSupplemented cover the regions SPEC_FULL.md §C
// added beyond spec.md's distillation: VFO A/B, the DTMF speed-dial list,
// auto-repeater offsets, analog quick calls, hot keys, the alarm settings,
// status messages, prefab SMS messages, and the FM broadcast preset list.
// None of these participate in the cross-reference linking pass; they are
// either self-contained or (for the raw regions) opaque.
func encodeSupplemented(img *image.Image, cfg *codeplug.Config) {
	encodeVFO(img, addrVFOA, cfg.VFOA)
	encodeVFO(img, addrVFOB, cfg.VFOB)

	for i, number := range cfg.DTMFNumbers {
		addr := dtmfEntryAddress(i)
		_ = img.Allocate(addr, 16, 0)
		_ = img.Write(addr, encodeDTMFEntry(number))
	}

	for i, hz := range cfg.RepeaterOffsets {
		addr := repeaterOffsetAddress(i)
		_ = img.Allocate(addr, 4, 0)
		b := make([]byte, 4)
		putUint32LE(b, 0, hz/10) // stored in 10 Hz units
		_ = img.Write(addr, b)
	}

	for i, qc := range cfg.QuickCalls {
		addr := quickCallAddress(i)
		_ = img.Allocate(addr, 2, 0xFF)
		_ = img.Write(addr, encodeQuickCall(qc))
	}

	for i, hk := range cfg.HotKeys {
		addr := hotkeyAddress(i)
		_ = img.Allocate(addr, hotkeyRecordSize, 0)
		_ = img.Write(addr, encodeHotKey(hk))
	}

	_ = img.Allocate(addrAnalogAlarm, 6, 0)
	_ = img.Write(addrAnalogAlarm, encodeAlarmSettings(cfg.Alarm))

	statusMask := newMask(statusMessageMaskSpec)
	for i, msg := range cfg.StatusMessages {
		if len(msg) == 0 {
			continue
		}
		addr := statusMessageAddress(i)
		_ = img.Allocate(addr, statusMessageStride, 0)
		padded := make([]byte, statusMessageStride)
		copy(padded, msg)
		_ = img.Write(addr, padded)
		statusMask.Set(i, true)
	}
	_ = writeMask(img, statusMessageMaskSpec, statusMask)

	smsMask := newMask(smsMaskSpec)
	for i, msg := range cfg.RawMessages {
		if len(msg) == 0 {
			continue
		}
		addr := messageAddress(i)
		_ = img.Allocate(addr, messageRecordSize, 0)
		padded := make([]byte, messageRecordSize)
		copy(padded, msg)
		_ = img.Write(addr, padded)
		smsMask.Set(i, true)
	}
	_ = writeMask(img, smsMaskSpec, smsMask)

	fmBytes := make([]byte, 4*len(cfg.RawFMChannels))
	for i, hz := range cfg.RawFMChannels {
		putUint32LE(fmBytes, i*4, hz)
	}
	_ = img.Allocate(addrFMChannels, len(fmBytes), 0)
	_ = img.Write(addrFMChannels, fmBytes)

	vfoBytes := make([]byte, 4)
	putUint32LE(vfoBytes, 0, cfg.RawFMVFOHz)
	_ = img.Allocate(addrFMVFO, 4, 0)
	_ = img.Write(addrFMVFO, vfoBytes)
}

func decodeSupplemented(img *image.Image, cfg *codeplug.Config) {
	cfg.VFOA = decodeVFO(img, addrVFOA)
	cfg.VFOB = decodeVFO(img, addrVFOB)

	for i := range cfg.DTMFNumbers {
		addr := dtmfEntryAddress(i)
		if !img.IsAllocated(addr, 16) {
			continue
		}
		b, err := img.Read(addr, 16)
		if err == nil {
			cfg.DTMFNumbers[i] = decodeDTMFEntry(b)
		}
	}

	for i := range cfg.RepeaterOffsets {
		addr := repeaterOffsetAddress(i)
		if !img.IsAllocated(addr, 4) {
			continue
		}
		b, err := img.Read(addr, 4)
		if err == nil {
			cfg.RepeaterOffsets[i] = getUint32LE(b, 0) * 10
		}
	}

	for i := range cfg.QuickCalls {
		addr := quickCallAddress(i)
		if !img.IsAllocated(addr, 2) {
			continue
		}
		b, err := img.Read(addr, 2)
		if err == nil {
			cfg.QuickCalls[i] = decodeQuickCall(b)
		}
	}

	for i := range cfg.HotKeys {
		addr := hotkeyAddress(i)
		if !img.IsAllocated(addr, hotkeyRecordSize) {
			continue
		}
		b, err := img.Read(addr, hotkeyRecordSize)
		if err == nil {
			cfg.HotKeys[i] = decodeHotKey(b)
		}
	}

	if img.IsAllocated(addrAnalogAlarm, 6) {
		if b, err := img.Read(addrAnalogAlarm, 6); err == nil {
			cfg.Alarm = decodeAlarmSettings(b)
		}
	}

	if mask, err := readMask(img, statusMessageMaskSpec); err == nil {
		for _, i := range mask.PresentIndices() {
			addr := statusMessageAddress(i)
			b, err := img.Read(addr, statusMessageStride)
			if err != nil {
				continue
			}
			cfg.StatusMessages[i] = b
		}
	}

	if mask, err := readMask(img, smsMaskSpec); err == nil {
		for _, i := range mask.PresentIndices() {
			addr := messageAddress(i)
			b, err := img.Read(addr, messageRecordSize)
			if err != nil {
				continue
			}
			for len(cfg.RawMessages) <= i {
				cfg.RawMessages = append(cfg.RawMessages, nil)
			}
			cfg.RawMessages[i] = b
		}
	}

	if img.IsAllocated(addrFMChannels, 4*len(cfg.RawFMChannels)) {
		if b, err := img.Read(addrFMChannels, 4*len(cfg.RawFMChannels)); err == nil {
			for i := range cfg.RawFMChannels {
				cfg.RawFMChannels[i] = getUint32LE(b, i*4)
			}
		}
	}
	if img.IsAllocated(addrFMVFO, 4) {
		if b, err := img.Read(addrFMVFO, 4); err == nil {
			cfg.RawFMVFOHz = getUint32LE(b, 0)
		}
	}
}

func encodeVFO(img *image.Image, addr image.Address, ch *codeplug.Channel) {
	if ch == nil {
		return
	}
	rec, err := encodeChannelRecord(*ch, func(ci codeplug.ContactIndex) uint32 { return index32(int(ci), NoContactRaw) })
	if err != nil {
		return
	}
	_ = img.Allocate(addr, channelRecordSize, 0)
	_ = img.Write(addr, rec)
}

func decodeVFO(img *image.Image, addr image.Address) *codeplug.Channel {
	if !img.IsAllocated(addr, channelRecordSize) {
		return nil
	}
	b, err := img.Read(addr, channelRecordSize)
	if err != nil {
		return nil
	}
	ch := decodeChannelRecord(b, func(raw uint32) codeplug.ContactIndex {
		return codeplug.ContactIndex(signedIndex32(raw, NoContactRaw))
	})
	return &ch
}
