package aismsg

import (
	"github.com/vesselwatch/aisdecode/fields"
	"github.com/vesselwatch/aisdecode/nmea"
)

// InterrogationSlot is one interrogated-station entry within a type 15
// message: which station is being asked, which message type to send,
// and the slot offset to send it in.
type InterrogationSlot struct {
	StationMMSI fields.MMSI
	MessageType uint8
	SlotOffset  uint16
}

// Interrogation decodes message type 15: up to three interrogated-station
// slots, present only as far as the payload extends (spec §4.7 "optional
// based on remaining bit count").
type Interrogation struct {
	InterrogatorMMSI fields.MMSI
	Slots            []InterrogationSlot
}

func (m *Interrogation) Type() uint8 { return 15 }

const maxInterrogationSlots = 3

func decodeInterrogation(r *nmea.BitReader) (Message, *nmea.Error) {
	m := &Interrogation{}
	if e := r.Skip(2); e != nil { // repeat indicator
		return nil, e.(*nmea.Error)
	}
	mmsi, nerr := fields.ReadMMSI(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.InterrogatorMMSI = mmsi
	if e := r.Skip(2); e != nil { // spare
		return nil, e.(*nmea.Error)
	}
	for len(m.Slots) < maxInterrogationSlots && r.Remaining() >= 50 {
		stationMMSI, nerr := fields.ReadMMSI(r)
		if nerr != nil {
			return nil, asNmeaErr(nerr)
		}
		msgType, e := r.U(6)
		if e != nil {
			return nil, e.(*nmea.Error)
		}
		offset, e := r.U(12)
		if e != nil {
			return nil, e.(*nmea.Error)
		}
		if e := r.Skip(2); e != nil { // spare
			return nil, e.(*nmea.Error)
		}
		m.Slots = append(m.Slots, InterrogationSlot{
			StationMMSI: stationMMSI,
			MessageType: uint8(msgType),
			SlotOffset:  uint16(offset),
		})
	}
	return m, nil
}
