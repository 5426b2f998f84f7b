package aismsg

import (
	"github.com/vesselwatch/aisdecode/fields"
	"github.com/vesselwatch/aisdecode/nmea"
)

// LongRangeBroadcastMessage decodes message type 27: a compressed
// position report meant for satellite reception, trading precision for
// a 96-bit frame (spec §4.7). Longitude, latitude, and speed use the
// coarser long-range scale; course is 9 bits here versus the 12-bit
// field used by types 1/2/3/18/19.
type LongRangeBroadcastMessage struct {
	MMSI             fields.MMSI
	PositionAccuracy bool
	RAIM             bool
	NavStatus        fields.NavigationStatus
	Longitude        *float64
	Latitude         *float64
	SpeedOverGround  *float64
	CourseOverGround *uint16
	GNSSPosition     bool
}

func (m *LongRangeBroadcastMessage) Type() uint8 { return 27 }

func decodeLongRangeBroadcast(r *nmea.BitReader) (Message, *nmea.Error) {
	m := &LongRangeBroadcastMessage{}
	if e := r.Skip(2); e != nil { // repeat indicator
		return nil, e.(*nmea.Error)
	}
	mmsi, nerr := fields.ReadMMSI(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.MMSI = mmsi
	accuracy, e := r.Bool()
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.PositionAccuracy = accuracy
	raim, e := r.Bool()
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.RAIM = raim
	m.NavStatus, nerr = fields.ReadNavigationStatus(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.Longitude, nerr = fields.ReadLongitudeLongRange(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.Latitude, nerr = fields.ReadLatitudeLongRange(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.SpeedOverGround, nerr = fields.ReadSpeedOverGroundLongRange(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	course, e := r.U(9)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	if course != 511 {
		v := uint16(course)
		m.CourseOverGround = &v
	}
	gnss, e := r.Bool()
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.GNSSPosition = gnss
	if e := r.Skip(1); e != nil { // spare
		return nil, e.(*nmea.Error)
	}
	return m, nil
}
