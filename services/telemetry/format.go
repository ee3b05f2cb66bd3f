package telemetry

import (
	"imunode-go/types"
	"imunode-go/x/strconvx"
)

// FormatLine renders one sample as a single console line:
//
//	hdg=180.0 roll=-10.0 pitch=0.5 ax=0.12 ay=-0.05 az=9.81 up=12.345
//
// Angles are degrees with one decimal (or raw deci-degree integers when
// Degrees is off), acceleration m/s² with two decimals, uptime seconds with
// three. Everything is assembled from fixed-point integers so MCU builds stay
// off the float formatting path for the hot fields.
func FormatLine(s types.OrientationSample, p types.TelemetryParams, uptimeSeconds float64) string {
	buf := make([]byte, 0, 96)

	angle := func(buf []byte, v int32) []byte {
		if p.Degrees {
			return appendDeci(buf, v)
		}
		return append(buf, strconvx.Itoa(int(v))...)
	}

	buf = append(buf, "hdg="...)
	buf = angle(buf, s.HeadingDeci)
	buf = append(buf, " roll="...)
	buf = angle(buf, s.RollDeci)
	buf = append(buf, " pitch="...)
	buf = angle(buf, s.PitchDeci)

	if p.WithAccel {
		buf = append(buf, " ax="...)
		buf = appendCenti(buf, s.AccelXCenti)
		buf = append(buf, " ay="...)
		buf = appendCenti(buf, s.AccelYCenti)
		buf = append(buf, " az="...)
		buf = appendCenti(buf, s.AccelZCenti)
	}

	buf = append(buf, " up="...)
	buf = append(buf, strconvx.FormatFloat(uptimeSeconds, 'f', 3, 64)...)
	buf = append(buf, '\n')
	return string(buf)
}

// appendDeci writes a tenths fixed-point value, e.g. -100 -> "-10.0".
func appendDeci(buf []byte, v int32) []byte {
	return appendFixed(buf, v, 10, 1)
}

// appendCenti writes a hundredths fixed-point value, e.g. 981 -> "9.81".
func appendCenti(buf []byte, v int32) []byte {
	return appendFixed(buf, v, 100, 2)
}

func appendFixed(buf []byte, v, scale int32, places int) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	buf = append(buf, strconvx.Itoa(int(v/scale))...)
	buf = append(buf, '.')
	frac := strconvx.Itoa(int(v % scale))
	for i := len(frac); i < places; i++ {
		buf = append(buf, '0')
	}
	return append(buf, frac...)
}
