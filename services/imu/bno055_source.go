package imu

import (
	"imunode-go/drivers/bno055"
	"imunode-go/types"
)

// DeviceSource adapts the BNO055 driver to the Source interface.
type DeviceSource struct {
	dev *bno055.Device
}

func NewDeviceSource(dev *bno055.Device) *DeviceSource {
	return &DeviceSource{dev: dev}
}

func (s *DeviceSource) ReadSample(out *types.OrientationSample) error {
	var e bno055.Euler
	if err := s.dev.ReadEuler(&e); err != nil {
		return err
	}
	var a bno055.LinearAcceleration
	if err := s.dev.ReadLinearAcceleration(&a); err != nil {
		return err
	}
	out.HeadingDeci = e.HeadingDeci
	out.RollDeci = e.RollDeci
	out.PitchDeci = e.PitchDeci
	out.AccelXCenti = a.XCenti
	out.AccelYCenti = a.YCenti
	out.AccelZCenti = a.ZCenti
	return nil
}
