// Package bno055 provides a driver for the Bosch BNO055 absolute orientation
// sensor. The device fuses its accelerometer, gyroscope and magnetometer
// on-chip, so this driver only configures the fusion mode and reads the
// fused output registers:
//
//	d := bno055.New(bus)
//	if err := d.Configure(); err != nil { ... }
//	var e bno055.Euler
//	err := d.ReadEuler(&e)
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when
// both w and r are provided, without releasing the bus.
//
// The driver avoids floating-point on the hot path; accessors return
// fixed-point units (deci-degrees and centi-m/s²).
package bno055

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

// I2C address (COM3 pin low). AddressHigh applies when the pin is pulled up.
const (
	Address     = 0x28
	AddressHigh = 0x29
)

// Registers and magic values (per datasheet).
const (
	regChipID     = 0x00
	regEulerData  = 0x1A // heading, roll, pitch; 3 × int16 LE
	regLinAccData = 0x28 // linear acceleration x, y, z; 3 × int16 LE
	regUnitSel    = 0x3B
	regOprMode    = 0x3D
	regPwrMode    = 0x3E
	regSysTrigger = 0x3F

	chipID = 0xA0

	modeConfig = 0x00
	modeNDOF   = 0x0C

	pwrNormal = 0x00

	triggerReset = 0x20
)

// Fixed-point scaling: 16 LSB per degree, 100 LSB per m/s².
const (
	lsbPerDegree = 16
	lsbPerMS2    = 100
)

// Errors returned by the driver.
var (
	ErrBadChipID = errors.New("bno055: bad chip id")
	ErrTimeout   = errors.New("bno055: timeout")
)

// Config controls addressing and the fusion mode. All fields are optional.
type Config struct {
	// Address defaults to 0x28 if zero.
	Address uint16
	// Mode is the operation mode register value. Default NDOF (nine degrees
	// of freedom fusion with absolute heading).
	Mode uint8
}

// Device wraps an I2C connection to a BNO055 device.
type Device struct {
	bus     drivers.I2C
	Address uint16

	cfg Config
	buf [6]byte // reuse buffer to avoid allocations
}

// New creates a new BNO055 connection. The I2C bus must already be
// configured. This function only creates the Device object; it does not
// touch the device.
func New(bus drivers.I2C) Device {
	return Device{
		bus:     bus,
		Address: Address,
	}
}

// Connected probes the chip id register.
func (d *Device) Connected() bool {
	id, err := d.readReg(regChipID)
	return err == nil && id == chipID
}

// Configure verifies the chip id, then switches the device into the fusion
// mode. The datasheet mode-switch delays are respected, so Configure blocks
// for a few tens of milliseconds.
func (d *Device) Configure(cfgs ...Config) error {
	if len(cfgs) > 0 {
		c := cfgs[0]
		if c.Address != 0 {
			d.Address = c.Address
		}
		if c.Mode == 0 {
			c.Mode = modeNDOF
		}
		d.cfg = c
	} else {
		d.cfg = Config{Address: d.Address, Mode: modeNDOF}
	}

	id, err := d.readReg(regChipID)
	if err != nil {
		return err
	}
	if id != chipID {
		return ErrBadChipID
	}

	// Config mode first; mode changes are only honoured from there.
	if err := d.writeReg(regOprMode, modeConfig); err != nil {
		return err
	}
	time.Sleep(19 * time.Millisecond)

	if err := d.writeReg(regPwrMode, pwrNormal); err != nil {
		return err
	}
	// Default units: degrees, m/s². Written explicitly so a warm restart
	// with a previously reconfigured sensor cannot skew the telemetry.
	if err := d.writeReg(regUnitSel, 0x00); err != nil {
		return err
	}
	if err := d.writeReg(regOprMode, d.cfg.Mode); err != nil {
		return err
	}
	time.Sleep(7 * time.Millisecond)
	return nil
}

// Reset issues a system reset. The device needs ~650ms before it responds.
func (d *Device) Reset() error {
	return d.writeReg(regSysTrigger, triggerReset)
}

// Euler holds one fused orientation reading in deci-degrees.
type Euler struct {
	HeadingDeci int32
	RollDeci    int32
	PitchDeci   int32
}

// ReadEuler reads the fused euler angles.
func (d *Device) ReadEuler(out *Euler) error {
	data := d.buf[:6]
	if err := d.bus.Tx(d.Address, []byte{regEulerData}, data); err != nil {
		return err
	}
	out.HeadingDeci = deciDegrees(data[0], data[1])
	out.RollDeci = deciDegrees(data[2], data[3])
	out.PitchDeci = deciDegrees(data[4], data[5])
	return nil
}

// LinearAcceleration holds gravity-compensated acceleration in centi-m/s².
type LinearAcceleration struct {
	XCenti int32
	YCenti int32
	ZCenti int32
}

// ReadLinearAcceleration reads the fused linear acceleration vector.
func (d *Device) ReadLinearAcceleration(out *LinearAcceleration) error {
	data := d.buf[:6]
	if err := d.bus.Tx(d.Address, []byte{regLinAccData}, data); err != nil {
		return err
	}
	// 100 LSB per m/s², so the raw value already is centi-m/s².
	out.XCenti = int32(int16(uint16(data[0]) | uint16(data[1])<<8))
	out.YCenti = int32(int16(uint16(data[2]) | uint16(data[3])<<8))
	out.ZCenti = int32(int16(uint16(data[4]) | uint16(data[5])<<8))
	return nil
}

// deciDegrees converts a raw little-endian euler register pair (16 LSB per
// degree) to deci-degrees.
func deciDegrees(lsb, msb byte) int32 {
	raw := int32(int16(uint16(lsb) | uint16(msb)<<8))
	return raw * 10 / lsbPerDegree
}

func (d *Device) readReg(reg uint8) (byte, error) {
	data := d.buf[:1]
	if err := d.bus.Tx(d.Address, []byte{reg}, data); err != nil {
		return 0, err
	}
	return data[0], nil
}

func (d *Device) writeReg(reg, value uint8) error {
	return d.bus.Tx(d.Address, []byte{reg, value}, nil)
}
