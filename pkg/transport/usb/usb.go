// Package usb implements image.Transport over a USB bulk connection to the
// radio, the thin seam spec.md leaves for an actual device link (the wire
// protocol and device autodetection themselves are out of scope; this
// package only has to move BlockSize-aligned blocks once a *gousb.Device is
// in hand).
//
// Modelled on yardstick.Device's wrapDevice/Peek/Poke (pkg/yardstick/device.go,
// pkg/registers/access.go): claim interface 0, grab one IN/OUT bulk endpoint
// pair, frame a request/response read-or-write command per block.
package usb

import (
	"fmt"

	"github.com/google/gousb"

	"github.com/n0call/d868uv-codeplug/pkg/image"
)

// Known AT-D868UV-class programming cable identifiers.
const (
	VendorID  = gousb.ID(0x28E9)
	ProductID = gousb.ID(0x018A)
)

const (
	cmdRead  = 'R'
	cmdWrite = 'W'
)

// Device is a claimed USB connection to the radio's programming interface.
type Device struct {
	usbDevice *gousb.Device
	usbConfig *gousb.Config
	iface     *gousb.Interface
	epIn      *gousb.InEndpoint
	epOut     *gousb.OutEndpoint
}

// Open claims the first AT-D868UV-class device found on ctx.
func Open(ctx *gousb.Context) (*Device, error) {
	usbDev, err := ctx.OpenDeviceWithVIDPID(VendorID, ProductID)
	if err != nil {
		return nil, fmt.Errorf("usb: failed to open device: %w", err)
	}
	if usbDev == nil {
		return nil, fmt.Errorf("usb: no AT-D868UV-class device found")
	}
	return wrapDevice(usbDev)
}

func wrapDevice(usbDev *gousb.Device) (*Device, error) {
	usbDev.SetAutoDetach(true)

	config, err := usbDev.Config(1)
	if err != nil {
		usbDev.Close()
		return nil, fmt.Errorf("usb: failed to get configuration: %w", err)
	}

	iface, err := config.Interface(0, 0)
	if err != nil {
		config.Close()
		usbDev.Close()
		return nil, fmt.Errorf("usb: failed to claim interface: %w", err)
	}

	epIn, err := iface.InEndpoint(1)
	if err != nil {
		iface.Close()
		config.Close()
		usbDev.Close()
		return nil, fmt.Errorf("usb: failed to get IN endpoint: %w", err)
	}

	epOut, err := iface.OutEndpoint(1)
	if err != nil {
		iface.Close()
		config.Close()
		usbDev.Close()
		return nil, fmt.Errorf("usb: failed to get OUT endpoint: %w", err)
	}

	return &Device{usbDevice: usbDev, usbConfig: config, iface: iface, epIn: epIn, epOut: epOut}, nil
}

// Close releases the USB interface and device handle.
func (d *Device) Close() error {
	d.iface.Close()
	if err := d.usbConfig.Close(); err != nil {
		return err
	}
	return d.usbDevice.Close()
}

// ReadBlock implements image.Transport: request and return one
// BlockSize-byte block at addr.
func (d *Device) ReadBlock(addr image.Address) ([image.BlockSize]byte, error) {
	var out [image.BlockSize]byte
	req := make([]byte, 5)
	req[0] = cmdRead
	req[1] = byte(addr >> 24)
	req[2] = byte(addr >> 16)
	req[3] = byte(addr >> 8)
	req[4] = byte(addr)
	if _, err := d.epOut.Write(req); err != nil {
		return out, fmt.Errorf("usb: read request at 0x%06X: %w", addr, err)
	}
	buf := make([]byte, image.BlockSize)
	n, err := d.epIn.Read(buf)
	if err != nil {
		return out, fmt.Errorf("usb: read reply at 0x%06X: %w", addr, err)
	}
	if n != image.BlockSize {
		return out, fmt.Errorf("usb: short read at 0x%06X: got %d bytes", addr, n)
	}
	copy(out[:], buf)
	return out, nil
}

// WriteBlock implements image.Transport: write one BlockSize-byte block at
// addr.
func (d *Device) WriteBlock(addr image.Address, data [image.BlockSize]byte) error {
	req := make([]byte, 5+image.BlockSize)
	req[0] = cmdWrite
	req[1] = byte(addr >> 24)
	req[2] = byte(addr >> 16)
	req[3] = byte(addr >> 8)
	req[4] = byte(addr)
	copy(req[5:], data[:])
	if _, err := d.epOut.Write(req); err != nil {
		return fmt.Errorf("usb: write at 0x%06X: %w", addr, err)
	}
	return nil
}
