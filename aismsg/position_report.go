package aismsg

import (
	"github.com/vesselwatch/aisdecode/fields"
	"github.com/vesselwatch/aisdecode/nmea"
)

// PositionReport decodes message types 1 (Scheduled Class A position
// report), 2 (Assigned schedule) and 3 (Special manoeuvre / response to
// interrogation). The three share one 168-bit layout parameterized only
// by the type tag and the radio-status scheme (spec §4.7 "share the same
// decoder parameterized by message-type tag").
type PositionReport struct {
	MsgType           uint8
	RepeatIndicator   uint8
	MMSI              fields.MMSI
	NavStatus         fields.NavigationStatus
	RateOfTurn        *float64
	SpeedOverGround   *float64
	PositionAccuracy  bool
	Longitude         *float64
	Latitude          *float64
	CourseOverGround  *float64
	TrueHeading       *uint16
	Timestamp         fields.UTCTimestamp
	SpecialManoeuvre  uint8
	RAIM              bool
	Radio             fields.RadioStatus
}

func (m *PositionReport) Type() uint8 { return m.MsgType }

func decodePositionReport(msgType uint8, r *nmea.BitReader) (Message, *nmea.Error) {
	m := &PositionReport{MsgType: msgType}
	repeat, e := r.U(2)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.RepeatIndicator = uint8(repeat)

	mmsi, nerr := fields.ReadMMSI(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.MMSI = mmsi

	m.NavStatus, nerr = fields.ReadNavigationStatus(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.RateOfTurn, nerr = fields.ReadRateOfTurn(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.SpeedOverGround, nerr = fields.ReadSpeedOverGround(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	accuracy, e := r.Bool()
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.PositionAccuracy = accuracy

	m.Longitude, nerr = fields.ReadLongitude(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.Latitude, nerr = fields.ReadLatitude(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.CourseOverGround, nerr = fields.ReadCourseOverGround(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.TrueHeading, nerr = fields.ReadTrueHeading(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.Timestamp, nerr = fields.ReadUTCTimestamp(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	maneuver, e := r.U(2)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.SpecialManoeuvre = uint8(maneuver)
	if e = r.Skip(3); e != nil {
		return nil, e.(*nmea.Error)
	}
	raim, e := r.Bool()
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.RAIM = raim

	if msgType == 3 {
		m.Radio, nerr = fields.ReadRadioStatusITDMA(r)
	} else {
		m.Radio, nerr = fields.ReadRadioStatusSOTDMA(r)
	}
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	return m, nil
}

// SARAircraftPositionReport decodes message type 9: same position-report
// skeleton as 1/2/3 but altitude instead of navigation status, and a
// whole-knot speed field rather than 0.1-knot.
type SARAircraftPositionReport struct {
	MMSI              fields.MMSI
	Altitude          *uint16 // meters; nil when unavailable (4095) or capped at 4094
	SpeedOverGround   *float64
	PositionAccuracy  bool
	Longitude         *float64
	Latitude          *float64
	CourseOverGround  *float64
	Timestamp         fields.UTCTimestamp
	DTE               bool
	AssignedMode      bool
	RAIM              bool
	Radio             fields.RadioStatus
}

func (m *SARAircraftPositionReport) Type() uint8 { return 9 }

func decodeSARAircraftPositionReport(r *nmea.BitReader) (Message, *nmea.Error) {
	m := &SARAircraftPositionReport{}
	if e := r.Skip(2); e != nil { // repeat indicator, not surfaced
		return nil, e.(*nmea.Error)
	}
	mmsi, nerr := fields.ReadMMSI(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.MMSI = mmsi

	alt, e := r.U(12)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	if alt != 4095 {
		v := uint16(alt)
		if v > 4094 {
			v = 4094
		}
		m.Altitude = &v
	}

	sog, e := r.U(10)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	if sog != 1023 {
		v := float64(sog)
		if v > 1022 {
			v = 1022
		}
		m.SpeedOverGround = &v
	}

	accuracy, e := r.Bool()
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.PositionAccuracy = accuracy

	m.Longitude, nerr = fields.ReadLongitude(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.Latitude, nerr = fields.ReadLatitude(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.CourseOverGround, nerr = fields.ReadCourseOverGround(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.Timestamp, nerr = fields.ReadUTCTimestamp(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	if e := r.Skip(8); e != nil { // regional reserved
		return nil, e.(*nmea.Error)
	}
	dte, e := r.Bool()
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.DTE = dte
	if e := r.Skip(4); e != nil { // spare
		return nil, e.(*nmea.Error)
	}
	assigned, e := r.Bool()
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.AssignedMode = assigned
	raim, e := r.Bool()
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.RAIM = raim

	m.Radio, nerr = fields.ReadRadioStatusSOTDMA(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	return m, nil
}
