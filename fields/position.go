package fields

import "github.com/vesselwatch/aisdecode/nmea"

// lonUnavailable/latUnavailable are the raw signed values of the
// "position not available" sentinels, 181deg and 91deg respectively in
// 1/600000 degree units (spec §3's 0x6791AC0 / 0x3412140).
const (
	lonUnavailable = 108600000
	latUnavailable = 54600000
)

// ReadLongitude reads the 28-bit signed longitude field and scales it to
// degrees, returning nil when the sentinel is present.
func ReadLongitude(r *nmea.BitReader) (*float64, error) {
	raw, err := r.I(28)
	if err != nil {
		return nil, err
	}
	if raw == lonUnavailable {
		return nil, nil
	}
	deg := float64(raw) / 600000
	return &deg, nil
}

// ReadLatitude reads the 27-bit signed latitude field and scales it to
// degrees, returning nil when the sentinel is present.
func ReadLatitude(r *nmea.BitReader) (*float64, error) {
	raw, err := r.I(27)
	if err != nil {
		return nil, err
	}
	if raw == latUnavailable {
		return nil, nil
	}
	deg := float64(raw) / 600000
	return &deg, nil
}

// Long-range (type 27) positions use coarser 1/10-minute resolution over
// narrower fields: 18-bit longitude, 17-bit latitude.
const (
	lonUnavailableLongRange = 0x1A838 // 181 * 600 in 1/10-minute units
	latUnavailableLongRange = 0xD548  // 91 * 600 in 1/10-minute units
)

// ReadLongitudeLongRange reads the 18-bit signed longitude field used by
// type 27, scaled to degrees at 1/10-minute resolution.
func ReadLongitudeLongRange(r *nmea.BitReader) (*float64, error) {
	raw, err := r.I(18)
	if err != nil {
		return nil, err
	}
	if raw == lonUnavailableLongRange {
		return nil, nil
	}
	deg := float64(raw) / 600
	return &deg, nil
}

// ReadLatitudeLongRange reads the 17-bit signed latitude field used by
// type 27, scaled to degrees at 1/10-minute resolution.
func ReadLatitudeLongRange(r *nmea.BitReader) (*float64, error) {
	raw, err := r.I(17)
	if err != nil {
		return nil, err
	}
	if raw == latUnavailableLongRange {
		return nil, nil
	}
	deg := float64(raw) / 600
	return &deg, nil
}
