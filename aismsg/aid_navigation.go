package aismsg

import (
	"github.com/vesselwatch/aisdecode/fields"
	"github.com/vesselwatch/aisdecode/nmea"
	"github.com/vesselwatch/aisdecode/storage"
)

// AidToNavigationReport decodes message type 21: a fixed-position
// beacon, lighthouse, or virtual aid announcing its identity and rough
// dimensions, with an optional 0-88-bit name extension tacked on when
// the 20-character name field truncated a longer name (spec §4.7).
type AidToNavigationReport struct {
	MMSI             fields.MMSI
	AidType          uint8
	Name             storage.Text
	PositionAccuracy bool
	Longitude        *float64
	Latitude         *float64
	ToBow            uint16
	ToStern          uint16
	ToPort           uint8
	ToStarboard      uint8
	EPFD             fields.EPFD
	Timestamp        fields.UTCTimestamp
	OffPosition      bool
	RAIM             bool
	VirtualAid       bool
	AssignedMode     bool
}

func (m *AidToNavigationReport) Type() uint8 { return 21 }

func decodeAidToNavigationReport(r *nmea.BitReader) (Message, *nmea.Error) {
	m := &AidToNavigationReport{}
	if e := r.Skip(2); e != nil { // repeat indicator
		return nil, e.(*nmea.Error)
	}
	mmsi, nerr := fields.ReadMMSI(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.MMSI = mmsi
	aidType, e := r.U(5)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.AidType = uint8(aidType)
	name, e := r.Text(20)
	if e != nil {
		return nil, e.(*nmea.Error)
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
	m.Timestamp, nerr = fields.ReadUTCTimestamp(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	offPosition, e := r.Bool()
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.OffPosition = offPosition
	if e := r.Skip(8); e != nil { // regional reserved
		return nil, e.(*nmea.Error)
	}
	raim, e := r.Bool()
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.RAIM = raim
	virtual, e := r.Bool()
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.VirtualAid = virtual
	assigned, e := r.Bool()
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.AssignedMode = assigned
	if e := r.Skip(1); e != nil { // spare
		return nil, e.(*nmea.Error)
	}
	if ext := readRemainingText(r); ext != "" {
		name += ext
	}
	nameText := storage.NewText(storage.FieldAidName)
	_ = nameText.Set(name) // a name overflowing the tier's capacity is left empty, matching type 5's truncation tolerance
	m.Name = nameText
	return m, nil
}
