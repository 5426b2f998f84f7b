package aismsg

import (
	"fmt"

	"github.com/vesselwatch/aisdecode/fields"
	"github.com/vesselwatch/aisdecode/nmea"
	"github.com/vesselwatch/aisdecode/storage"
)

// StaticDataReportPartA is message type 24 with part number 0: just the
// vessel name, sent alternately with part B to keep each sentence short
// (spec §4.7).
type StaticDataReportPartA struct {
	MMSI fields.MMSI
	Name storage.Text
}

func (m *StaticDataReportPartA) Type() uint8 { return 24 }

// StaticDataReportPartB is message type 24 with part number 1: ship
// type, vendor identification, call sign, and either hull dimensions or
// — for an auxiliary craft whose MMSI carries the 98/99 MID prefix — the
// MMSI of the mother ship in place of dimensions (spec §4.7).
type StaticDataReportPartB struct {
	MMSI           fields.MMSI
	ShipType       fields.ShipType
	VendorID       storage.Text
	VendorSerial   uint32
	CallSign       storage.Text
	ToBow          uint16
	ToStern        uint16
	ToPort         uint8
	ToStarboard    uint8
	MotherShipMMSI fields.MMSI
	IsAuxiliary    bool
}

func (m *StaticDataReportPartB) Type() uint8 { return 24 }

func decodeStaticDataReport(r *nmea.BitReader) (Message, *nmea.Error) {
	if e := r.Skip(2); e != nil { // repeat indicator
		return nil, e.(*nmea.Error)
	}
	mmsi, nerr := fields.ReadMMSI(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	partNumber, e := r.U(2)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	if partNumber == 0 {
		name, nerr := fields.ReadText(r, storage.FieldVesselName, 20)
		if nerr != nil {
			return nil, asNmeaErr(nerr)
		}
		return &StaticDataReportPartA{MMSI: mmsi, Name: name}, nil
	}
	m := &StaticDataReportPartB{MMSI: mmsi}
	m.ShipType, nerr = fields.ReadShipType(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	vendorID, nerr := fields.ReadText(r, storage.FieldVendorID, 3)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.VendorID = vendorID
	serial, e := r.U(24)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.VendorSerial = uint32(serial)
	callSign, nerr := fields.ReadText(r, storage.FieldCallSign, 7)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.CallSign = callSign
	m.IsAuxiliary = isAuxiliaryMMSI(mmsi)
	if m.IsAuxiliary {
		motherMMSI, nerr := fields.ReadMMSI(r)
		if nerr != nil {
			return nil, asNmeaErr(nerr)
		}
		m.MotherShipMMSI = motherMMSI
	} else {
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
	}
	if e := r.Skip(6); e != nil { // spare
		return nil, e.(*nmea.Error)
	}
	return m, nil
}

// isAuxiliaryMMSI reports whether mmsi's maritime identification digits
// (the leading two digits) mark it as an auxiliary craft (98) or a
// craft associated with a parent ship (99), per ITU-R M.1371's MID
// allocation for message type 24B.
func isAuxiliaryMMSI(mmsi fields.MMSI) bool {
	s := fmt.Sprintf("%09d", uint32(mmsi))
	return s[:2] == "98" || s[:2] == "99"
}
