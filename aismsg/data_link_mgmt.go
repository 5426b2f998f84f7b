package aismsg

import (
	"github.com/vesselwatch/aisdecode/fields"
	"github.com/vesselwatch/aisdecode/nmea"
)

// DataLinkManagementSlot is one offset/reserved-slots/timeout/increment
// reservation within a type 20 message.
type DataLinkManagementSlot struct {
	Offset        uint16
	ReservedSlots uint8
	Timeout       uint8
	Increment     uint16
}

// DataLinkManagementMessage decodes message type 20: a base station
// reserving up to four slot ranges for Class B stations, present only
// as far as the payload extends (spec §4.7).
type DataLinkManagementMessage struct {
	MMSI  fields.MMSI
	Slots []DataLinkManagementSlot
}

func (m *DataLinkManagementMessage) Type() uint8 { return 20 }

const maxDataLinkManagementSlots = 4

func decodeDataLinkManagementMessage(r *nmea.BitReader) (Message, *nmea.Error) {
	m := &DataLinkManagementMessage{}
	if e := r.Skip(2); e != nil { // repeat indicator
		return nil, e.(*nmea.Error)
	}
	mmsi, nerr := fields.ReadMMSI(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.MMSI = mmsi
	if e := r.Skip(2); e != nil { // spare
		return nil, e.(*nmea.Error)
	}
	for len(m.Slots) < maxDataLinkManagementSlots && r.Remaining() >= 30 {
		offset, e := r.U(12)
		if e != nil {
			return nil, e.(*nmea.Error)
		}
		reserved, e := r.U(4)
		if e != nil {
			return nil, e.(*nmea.Error)
		}
		timeout, e := r.U(3)
		if e != nil {
			return nil, e.(*nmea.Error)
		}
		increment, e := r.U(11)
		if e != nil {
			return nil, e.(*nmea.Error)
		}
		m.Slots = append(m.Slots, DataLinkManagementSlot{
			Offset:        uint16(offset),
			ReservedSlots: uint8(reserved),
			Timeout:       uint8(timeout),
			Increment:     uint16(increment),
		})
	}
	return m, nil
}
