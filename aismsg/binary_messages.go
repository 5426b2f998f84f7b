package aismsg

import (
	"github.com/vesselwatch/aisdecode/fields"
	"github.com/vesselwatch/aisdecode/nmea"
)

// BinaryAddressedMessage decodes message type 6. Per spec Non-goals, the
// DAC/FID-namespaced application payload is not interpreted -- only the
// framing bits (DAC, FID, destination) are decoded; Data is the raw
// remainder.
type BinaryAddressedMessage struct {
	SourceMMSI      fields.MMSI
	SequenceNumber  uint8
	DestinationMMSI fields.MMSI
	Retransmit      bool
	DAC             uint16
	FID             uint8
	Data            *nmea.BitBuffer
}

func (m *BinaryAddressedMessage) Type() uint8 { return 6 }

func decodeBinaryAddressedMessage(r *nmea.BitReader) (Message, *nmea.Error) {
	m := &BinaryAddressedMessage{}
	if e := r.Skip(2); e != nil { // repeat indicator
		return nil, e.(*nmea.Error)
	}
	mmsi, nerr := fields.ReadMMSI(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.SourceMMSI = mmsi

	seq, e := r.U(2)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.SequenceNumber = uint8(seq)

	destMMSI, nerr := fields.ReadMMSI(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}
	m.DestinationMMSI = destMMSI

	retrans, e := r.Bool()
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.Retransmit = retrans
	if e := r.Skip(1); e != nil { // spare
		return nil, e.(*nmea.Error)
	}
	dac, e := r.U(10)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.DAC = uint16(dac)
	fid, e := r.U(6)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.FID = uint8(fid)

	m.Data = remainderOf(r)
	return m, nil
}

// BinaryAcknowledge decodes message type 7: up to four (MMSI, sequence
// number) acknowledgement slots, present only as far as the payload
// extends (spec §4.7's optional-by-bit-length pattern, same as type 15).
type BinaryAcknowledge struct {
	SourceMMSI fields.MMSI
	Acks       []BinaryAckSlot
}

// BinaryAckSlot is one acknowledged (destination MMSI, sequence number)
// pair within a type 7 message.
type BinaryAckSlot struct {
	MMSI           fields.MMSI
	SequenceNumber uint8
}

func (m *BinaryAcknowledge) Type() uint8 { return 7 }

const maxBinaryAckSlots = 4

func decodeBinaryAcknowledge(r *nmea.BitReader) (Message, *nmea.Error) {
	m := &BinaryAcknowledge{}
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
	for len(m.Acks) < maxBinaryAckSlots && r.Remaining() >= 32 {
		destMMSI, nerr := fields.ReadMMSI(r)
		if nerr != nil {
			return nil, asNmeaErr(nerr)
		}
		seq, e := r.U(2)
		if e != nil {
			return nil, e.(*nmea.Error)
		}
		m.Acks = append(m.Acks, BinaryAckSlot{MMSI: destMMSI, SequenceNumber: uint8(seq)})
	}
	return m, nil
}

// BinaryBroadcastMessage decodes message type 8. Like type 6, only the
// DAC/FID framing is decoded; Data is the raw, unexamined application
// payload (spec Non-goal).
type BinaryBroadcastMessage struct {
	SourceMMSI fields.MMSI
	DAC        uint16
	FID        uint8
	Data       *nmea.BitBuffer
}

func (m *BinaryBroadcastMessage) Type() uint8 { return 8 }

func decodeBinaryBroadcastMessage(r *nmea.BitReader) (Message, *nmea.Error) {
	m := &BinaryBroadcastMessage{}
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
	dac, e := r.U(10)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.DAC = uint16(dac)
	fid, e := r.U(6)
	if e != nil {
		return nil, e.(*nmea.Error)
	}
	m.FID = uint8(fid)

	m.Data = remainderOf(r)
	return m, nil
}

// remainderOf copies whatever bits are left under the cursor into a
// fresh BitBuffer, used by the types (6, 8, 17) whose trailing
// application payload is preserved raw rather than decoded.
func remainderOf(r *nmea.BitReader) *nmea.BitBuffer {
	buf := nmea.NewBitBuffer(r.Remaining())
	for r.Remaining() >= 8 {
		v, _ := r.U(8)
		buf.PutBits(v, 8)
	}
	if rem := r.Remaining(); rem > 0 {
		v, _ := r.U(rem)
		buf.PutBits(v, rem)
	}
	return buf
}
