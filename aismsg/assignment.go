package aismsg

import (
	"github.com/vesselwatch/aisdecode/fields"
	"github.com/vesselwatch/aisdecode/nmea"
)

// AssignmentSlot is one destination/offset/increment triplet within a
// type 16 Assignment Mode Command.
type AssignmentSlot struct {
	DestinationMMSI fields.MMSI
	Offset          uint16
	Increment       uint16
}

// AssignmentModeCommand decodes message type 16: one or two destination
// assignment slots (spec §4.7).
type AssignmentModeCommand struct {
	SourceMMSI fields.MMSI
	Slots      []AssignmentSlot
}

func (m *AssignmentModeCommand) Type() uint8 { return 16 }

const maxAssignmentSlots = 2

func decodeAssignmentModeCommand(r *nmea.BitReader) (Message, *nmea.Error) {
	m := &AssignmentModeCommand{}
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
	for len(m.Slots) < maxAssignmentSlots && r.Remaining() >= 52 {
		destMMSI, nerr := fields.ReadMMSI(r)
		if nerr != nil {
			return nil, asNmeaErr(nerr)
		}
		offset, e := r.U(12)
		if e != nil {
			return nil, e.(*nmea.Error)
		}
		increment, e := r.U(10)
		if e != nil {
			return nil, e.(*nmea.Error)
		}
		m.Slots = append(m.Slots, AssignmentSlot{
			DestinationMMSI: destMMSI,
			Offset:          uint16(offset),
			Increment:       uint16(increment),
		})
	}
	return m, nil
}
