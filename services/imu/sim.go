package imu

import "imunode-go/types"

// SimSource is a deterministic orientation source for hosted builds and
// tests: the heading sweeps a full circle while roll and pitch follow a
// small triangle wave.
type SimSource struct {
	step int32
	fail error // when set, ReadSample returns it
}

func NewSimSource() *SimSource { return &SimSource{} }

// Fail makes every subsequent ReadSample return err (nil re-enables reads).
func (s *SimSource) Fail(err error) { s.fail = err }

func (s *SimSource) ReadSample(out *types.OrientationSample) error {
	if s.fail != nil {
		return s.fail
	}
	s.step++

	out.HeadingDeci = (s.step * 25) % 3600
	out.RollDeci = triangle(s.step, 150)
	out.PitchDeci = triangle(s.step+37, 80)
	out.AccelXCenti = triangle(s.step, 30)
	out.AccelYCenti = triangle(s.step+11, 30)
	out.AccelZCenti = 981 + triangle(s.step, 4)
	return nil
}

// triangle returns a wave in [-amp, amp] with period 4*amp.
func triangle(step, amp int32) int32 {
	period := 4 * amp
	v := step % period
	if v < 0 {
		v += period
	}
	switch {
	case v < amp:
		return v
	case v < 3*amp:
		return 2*amp - v
	default:
		return v - 4*amp
	}
}
