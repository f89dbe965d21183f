package d868uv

import (
	"github.com/n0call/d868uv-codeplug/pkg/bitmask"
	"github.com/n0call/d868uv-codeplug/pkg/image"
)

// Presence-mask definitions per record type (spec.md §5): which flavor
// guards which region, and how many slots it covers. Contacts use the
// inverted flavor (0xFF means absent) following
// original_source/lib/d868uv_codeplug.hh's contact bitmap comment; analog
// contacts and SMS slots use the byte-map flavor; every other list,
// status messages included, uses a plain positive bitmap.
type maskSpec struct {
	flavor bitmask.Flavor
	count  int
	addr   uint32
}

var (
	channelMaskSpec       = maskSpec{bitmask.Positive, MaxChannels, uint32(addrChannelBitmap)}
	contactMaskSpec       = maskSpec{bitmask.Inverted, MaxContacts, uint32(addrContactBitmap)}
	analogContactMaskSpec = maskSpec{bitmask.ByteMap, MaxAnalogContacts, uint32(addrAnalogByteMap)}
	zoneMaskSpec          = maskSpec{bitmask.Positive, MaxZones, uint32(addrZoneBitmap)}
	groupListMaskSpec     = maskSpec{bitmask.Positive, MaxGroupLists, uint32(addrGroupListBitmap)}
	scanListMaskSpec      = maskSpec{bitmask.Positive, MaxScanLists, uint32(addrScanlistBitmap)}
	radioIDMaskSpec       = maskSpec{bitmask.Positive, MaxRadioIDs, uint32(addrRadioIDBitmap)}
	gpsSystemMaskSpec     = maskSpec{bitmask.Positive, MaxGpsSystems, uint32(addrGpsSystemBitmap)}
	statusMessageMaskSpec = maskSpec{bitmask.Positive, 32, uint32(addrStatusMsgBitmap)}
	smsMaskSpec           = maskSpec{bitmask.ByteMap, 100, uint32(addrSMSByteMap)}
)

func newMask(spec maskSpec) *bitmask.Mask {
	return bitmask.New(spec.flavor, spec.count)
}

func wrapMask(spec maskSpec, b []byte) *bitmask.Mask {
	return bitmask.Wrap(spec.flavor, spec.count, b)
}

func maskByteLen(spec maskSpec) int {
	if spec.flavor == bitmask.ByteMap {
		return spec.count
	}
	return (spec.count + 7) / 8
}

// writeMask allocates and writes a presence mask's backing bytes into the
// image at its documented address.
func writeMask(img *image.Image, spec maskSpec, mask *bitmask.Mask) error {
	addr := image.Address(spec.addr)
	if err := img.Allocate(addr, len(mask.Bytes), spec.flavor.FillByte()); err != nil {
		return err
	}
	return img.Write(addr, mask.Bytes)
}

// readMask reads a presence mask back from the image; a never-allocated
// mask region decodes as "nothing present" rather than an error, since an
// empty list legitimately never touches its mask bytes.
func readMask(img *image.Image, spec maskSpec) (*bitmask.Mask, error) {
	addr := image.Address(spec.addr)
	size := maskByteLen(spec)
	if !img.IsAllocated(addr, size) {
		return bitmask.New(spec.flavor, spec.count), nil
	}
	b, err := img.Read(addr, size)
	if err != nil {
		return nil, err
	}
	return wrapMask(spec, b), nil
}
