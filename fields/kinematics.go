package fields

import (
	"math"

	"github.com/vesselwatch/aisdecode/nmea"
)

// ReadCourseOverGround reads the 12-bit course-over-ground field, 0.1deg
// units, clamped 0-3599; 3600 means unavailable.
func ReadCourseOverGround(r *nmea.BitReader) (*float64, error) {
	raw, err := r.U(12)
	if err != nil {
		return nil, err
	}
	if raw == 3600 {
		return nil, nil
	}
	if raw > 3599 {
		raw = 3599
	}
	deg := float64(raw) / 10
	return &deg, nil
}

// ReadSpeedOverGround reads the 10-bit speed-over-ground field used by
// types 1-3/18/19, in 0.1 knot units; 1023 means unavailable. Type 27's
// 6-bit whole-knot field is read by ReadSpeedOverGroundLongRange instead.
func ReadSpeedOverGround(r *nmea.BitReader) (*float64, error) {
	raw, err := r.U(10)
	if err != nil {
		return nil, err
	}
	if raw == 1023 {
		return nil, nil
	}
	kn := float64(raw) / 10
	return &kn, nil
}

// ReadSpeedOverGroundLongRange reads type 27's 6-bit whole-knot speed
// field; 63 means unavailable.
func ReadSpeedOverGroundLongRange(r *nmea.BitReader) (*float64, error) {
	raw, err := r.U(6)
	if err != nil {
		return nil, err
	}
	if raw == 63 {
		return nil, nil
	}
	kn := float64(raw)
	return &kn, nil
}

// ReadTrueHeading reads the 9-bit true heading field in whole degrees;
// 511 means unavailable.
func ReadTrueHeading(r *nmea.BitReader) (*uint16, error) {
	raw, err := r.U(9)
	if err != nil {
		return nil, err
	}
	if raw == 511 {
		return nil, nil
	}
	v := uint16(raw)
	return &v, nil
}

// ReadRateOfTurn reads the 8-bit signed rate-of-turn field and decodes it
// through the quadratic ROTais scale: deg/min = sign * (value/4.733)^2.
// 128 means unavailable (sign bit set, magnitude 0, i.e. -128, the
// furthest negative 8-bit value).
func ReadRateOfTurn(r *nmea.BitReader) (*float64, error) {
	raw, err := r.I(8)
	if err != nil {
		return nil, err
	}
	if raw == -128 {
		return nil, nil
	}
	sign := 1.0
	if raw < 0 {
		sign = -1.0
	}
	degPerMin := sign * math.Pow(math.Abs(float64(raw))/4.733, 2)
	return &degPerMin, nil
}
