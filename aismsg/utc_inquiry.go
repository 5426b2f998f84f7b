package aismsg

import (
	"github.com/vesselwatch/aisdecode/fields"
	"github.com/vesselwatch/aisdecode/nmea"
)

// UTCAndDateInquiry decodes message type 10: a bare request for another
// station's UTC/date report (type 4/11), carrying nothing but the two
// MMSIs (spec §4.7).
type UTCAndDateInquiry struct {
	SourceMMSI      fields.MMSI
	DestinationMMSI fields.MMSI
}

func (m *UTCAndDateInquiry) Type() uint8 { return 10 }

func decodeUTCDateInquiry(r *nmea.BitReader) (Message, *nmea.Error) {
	m := &UTCAndDateInquiry{}
	if e := r.Skip(2); e != nil { // repeat indicator
		return nil, e.(*nmea.Error)
	}
	mmsi, nerr := fields.ReadMMSI(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.SourceMMSI = mmsi
	if e := r.Skip(2); e != nil { // spare
		return nil, e.(*nmea.Error)
	}
	destMMSI, nerr := fields.ReadMMSI(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.DestinationMMSI = destMMSI
	if e := r.Skip(2); e != nil { // spare
		return nil, e.(*nmea.Error)
	}
	return m, nil
}
