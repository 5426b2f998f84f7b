// Package fields holds the shared field decoders (C6): scale conversions,
// sentinel-to-optional mapping, and enum tables used by every per-type
// decoder in aismsg. Centralizing them here means no per-message decoder
// re-derives bit widths or scale factors on its own, per spec §4.6/§9.
package fields

import "github.com/vesselwatch/aisdecode/nmea"

// MMSI is a Maritime Mobile Service Identity: a 9-digit vessel or station
// number packed into 30 bits. Always present, never optional.
type MMSI uint32

// ReadMMSI reads the 30-bit MMSI field.
func ReadMMSI(r *nmea.BitReader) (MMSI, error) {
	v, err := r.U(30)
	if err != nil {
		return 0, err
	}
	return MMSI(v), nil
}
