package aismsg

import (
	"github.com/vesselwatch/aisdecode/fields"
	"github.com/vesselwatch/aisdecode/nmea"
	"github.com/vesselwatch/aisdecode/storage"
)

// StandardClassBPositionReport decodes message type 18: a Class B
// equivalent of the Class A position report (1/2/3), with capability
// flags instead of navigation status/rate-of-turn and a radio-status
// scheme chosen by an in-band discriminant bit: bit 148, right after the
// RAIM flag, selects SOTDMA (0) or ITDMA (1).
type StandardClassBPositionReport struct {
	MMSI             fields.MMSI
	SpeedOverGround  *float64
	PositionAccuracy bool
	Longitude        *float64
	Latitude         *float64
	CourseOverGround *float64
	TrueHeading      *uint16
	Timestamp        fields.UTCTimestamp
	CSUnit           bool
	DisplayFlag      bool
	DSCFlag          bool
	BandFlag         bool
	Message22Flag    bool
	AssignedMode     bool
	RAIM             bool
	Radio            fields.RadioStatus
}

func (m *StandardClassBPositionReport) Type() uint8 { return 18 }

func decodeStandardClassBPositionReport(r *nmea.BitReader) (Message, *nmea.Error) {
	m := &StandardClassBPositionReport{}
	if e := r.Skip(2); e != nil { // repeat indicator
		return nil, e.(*nmea.Error)
	}
	mmsi, nerr := fields.ReadMMSI(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.MMSI = mmsi
	if e := r.Skip(8); e != nil { // regional reserved
		return nil, e.(*nmea.Error)
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
	if e := r.Skip(2); e != nil { // regional reserved
		return nil, e.(*nmea.Error)
	}
	flags, e := r.U(6)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.CSUnit = flags&(1<<5) != 0
	m.DisplayFlag = flags&(1<<4) != 0
	m.DSCFlag = flags&(1<<3) != 0
	m.BandFlag = flags&(1<<2) != 0
	m.Message22Flag = flags&(1<<1) != 0
	m.AssignedMode = flags&1 != 0
	raim, e := r.Bool()
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.RAIM = raim
	useITDMA, e := r.Bool() // radio-access-scheme discriminant
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	if useITDMA {
		m.Radio, nerr = fields.ReadRadioStatusITDMA(r)
	} else {
		m.Radio, nerr = fields.ReadRadioStatusSOTDMA(r)
	}
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	return m, nil
}

// ExtendedClassBPositionReport decodes message type 19: Class B position
// report extended with name and ship-type (spec §4.7).
type ExtendedClassBPositionReport struct {
	MMSI             fields.MMSI
	SpeedOverGround  *float64
	PositionAccuracy bool
	Longitude        *float64
	Latitude         *float64
	CourseOverGround *float64
	TrueHeading      *uint16
	Timestamp        fields.UTCTimestamp
	Name             storage.Text
	ShipType         fields.ShipType
	ToBow            uint16
	ToStern          uint16
	ToPort           uint8
	ToStarboard      uint8
	EPFD             fields.EPFD
	RAIM             bool
	DTE              bool
	AssignedMode     bool
}

func (m *ExtendedClassBPositionReport) Type() uint8 { return 19 }

func decodeExtendedClassBPositionReport(r *nmea.BitReader) (Message, *nmea.Error) {
	m := &ExtendedClassBPositionReport{}
	if e := r.Skip(2); e != nil { // repeat indicator
		return nil, e.(*nmea.Error)
	}
	mmsi, nerr := fields.ReadMMSI(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.MMSI = mmsi
	if e := r.Skip(8); e != nil { // regional reserved
		return nil, e.(*nmea.Error)
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
	if e := r.Skip(4); e != nil { // regional reserved
		return nil, e.(*nmea.Error)
	}
	name, nerr := fields.ReadText(r, storage.FieldVesselName, 20)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.Name = name
	m.ShipType, nerr = fields.ReadShipType(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	toBow, e := r.U(9)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.ToBow = uint16(toBow)
	toStern, e := r.U(9)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.ToStern = uint16(toStern)
	toPort, e := r.U(6)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.ToPort = uint8(toPort)
	toStarboard, e := r.U(6)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.ToStarboard = uint8(toStarboard)
	m.EPFD, nerr = fields.ReadEPFD(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	raim, e := r.Bool()
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.RAIM = raim
	dte, e := r.Bool()
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.DTE = dte
	assigned, e := r.Bool()
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.AssignedMode = assigned
	if e := r.Skip(4); e != nil { // spare
		return nil, e.(*nmea.Error)
	}
	return m, nil
}
