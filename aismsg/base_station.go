package aismsg

import (
	"github.com/vesselwatch/aisdecode/fields"
	"github.com/vesselwatch/aisdecode/nmea"
)

// BaseStationReport decodes message type 4 (Base Station Report) and
// type 11 (UTC/Date Response, sent by a base station replying to a type
// 10 inquiry), which share one 168-bit layout (spec §4.7).
type BaseStationReport struct {
	MsgType          uint8
	MMSI             fields.MMSI
	Year             *uint16 // 1-9999; nil when unavailable (0)
	Month            *uint8  // 1-12; nil when unavailable (0)
	Day              *uint8  // 1-31; nil when unavailable (0)
	Hour             *uint8  // 0-23; nil when unavailable (24)
	Minute           *uint8  // 0-59; nil when unavailable (60)
	Second           *uint8  // 0-59; nil when unavailable (60)
	PositionAccuracy bool
	Longitude        *float64
	Latitude         *float64
	EPFD             fields.EPFD
	RAIM             bool
	Radio            fields.RadioStatus
}

func (m *BaseStationReport) Type() uint8 { return m.MsgType }

func decodeBaseStationReport(msgType uint8, r *nmea.BitReader) (Message, *nmea.Error) {
	m := &BaseStationReport{MsgType: msgType}
	if e := r.Skip(2); e != nil { // repeat indicator
		return nil, e.(*nmea.Error)
	}
	mmsi, nerr := fields.ReadMMSI(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.MMSI = mmsi

	year, e := r.U(14)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	if year != 0 {
		v := uint16(year)
		m.Year = &v
	}
	month, e := r.U(4)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	if month != 0 {
		v := uint8(month)
		m.Month = &v
	}
	day, e := r.U(5)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	if day != 0 {
		v := uint8(day)
		m.Day = &v
	}
	hour, e := r.U(5)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	if hour != 24 {
		v := uint8(hour)
		m.Hour = &v
	}
	minute, e := r.U(6)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	if minute != 60 {
		v := uint8(minute)
		m.Minute = &v
	}
	second, e := r.U(6)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	if second != 60 {
		v := uint8(second)
		m.Second = &v
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
	m.EPFD, nerr = fields.ReadEPFD(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	if e := r.Skip(10); e != nil { // spare
		return nil, e.(*nmea.Error)
	}
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
