package aismsg

import (
	"github.com/vesselwatch/aisdecode/fields"
	"github.com/vesselwatch/aisdecode/nmea"
)

// DGNSSBroadcastBinaryMessage decodes message type 17: 80 fixed bits
// naming the reference station and its rough position, followed by a
// variable differential-correction payload that is preserved raw (spec
// §4.7, same Non-goal as types 6/8's DAC/FID payload).
type DGNSSBroadcastBinaryMessage struct {
	MMSI      fields.MMSI
	Longitude *float64
	Latitude  *float64
	Data      *nmea.BitBuffer
}

func (m *DGNSSBroadcastBinaryMessage) Type() uint8 { return 17 }

func decodeDGNSSBroadcastBinaryMessage(r *nmea.BitReader) (Message, *nmea.Error) {
	m := &DGNSSBroadcastBinaryMessage{}
	if e := r.Skip(2); e != nil { // repeat indicator
		return nil, e.(*nmea.Error)
	}
	mmsi, nerr := fields.ReadMMSI(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.MMSI = mmsi
	if e := r.Skip(2); e != nil { // reserved
		return nil, e.(*nmea.Error)
	}
	m.Longitude, nerr = fields.ReadLongitudeLongRange(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.Latitude, nerr = fields.ReadLatitudeLongRange(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	if e := r.Skip(5); e != nil { // reserved
		return nil, e.(*nmea.Error)
	}
	m.Data = remainderOf(r)
	return m, nil
}
