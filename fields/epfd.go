package fields

import "github.com/vesselwatch/aisdecode/nmea"

// EPFDValue names the defined electronic position-fixing device types
// (ITU-R M.1371 table 47).
type EPFDValue uint8

const (
	EPFDUndefined EPFDValue = iota
	EPFDGPS
	EPFDGLONASS
	EPFDGPSGLONASS
	EPFDLoranC
	EPFDChayka
	EPFDIntegrated
	EPFDSurveyed
	EPFDGalileo
)

// EPFD is the 4-bit electronic-position-fixing-device enum. All 16
// 4-bit values are structurally legal; 9-15 are reserved for future use
// and surface as Unknown per spec §3/§9.
type EPFD struct {
	Known bool
	Value EPFDValue
	Raw   uint8
}

// ReadEPFD reads the 4-bit EPFD field.
func ReadEPFD(r *nmea.BitReader) (EPFD, error) {
	raw, err := r.U(4)
	if err != nil {
		return EPFD{}, err
	}
	return ClassifyEPFD(uint8(raw)), nil
}

// ClassifyEPFD applies the enum classification ReadEPFD uses, for
// callers that have already pulled the raw nibble off the bit cursor
// themselves (type 5's tolerant-truncation reader).
func ClassifyEPFD(raw uint8) EPFD {
	if raw <= uint8(EPFDGalileo) {
		return EPFD{Known: true, Value: EPFDValue(raw), Raw: raw}
	}
	return EPFD{Raw: raw}
}
