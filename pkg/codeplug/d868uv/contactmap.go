package d868uv

import (
	"sort"

	"github.com/n0call/d868uv-codeplug/pkg/bcd"
	"github.com/n0call/d868uv-codeplug/pkg/codeplug"
)

// buildContactIndex produces the DMR-ID -> contact-list-index auxiliary
// table (contact_map_t, spec.md §4.6): one 8-byte entry per digital contact,
// sorted ascending by key, so the radio can binary-search caller ID on
// incoming calls instead of scanning the contact list linearly. Entries are
// {key uint32 LE, list index uint32 LE}; unused trailing slots are left at
// the image's 0xFF fill.
func buildContactIndex(contacts []codeplug.Contact) []byte {
	type entry struct {
		key uint32
		idx uint32
	}
	entries := make([]entry, len(contacts))
	for i, c := range contacts {
		entries[i] = entry{key: contactMapKey(c), idx: uint32(i)}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	out := make([]byte, len(entries)*contactMapEntrySize)
	for i, e := range entries {
		off := i * contactMapEntrySize
		putUint32LE(out, off, e.key)
		putUint32LE(out, off+4, e.idx)
	}
	return out
}

// contactMapKey computes (bcd_be(id) << 1) | isGroup (spec.md §4.6/S1/S5):
// the ID is packed as big-endian BCD digits, the resulting bytes
// reinterpreted as a plain big-endian integer, shifted left one bit, with
// the low bit set for group calls. This lets a private and a group contact
// that happen to share a DMR ID sort as distinct map entries. "All call"
// contacts are treated as non-group here -- the radio's own ID lookup only
// ever distinguishes private from group traffic.
func contactMapKey(c codeplug.Contact) uint32 {
	var buf [4]byte
	bcd.EncodeBE(buf[:], uint64(c.ID))
	packed := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
	key := packed << 1
	if c.CallType == codeplug.CallGroup {
		key |= 1
	}
	return key
}
