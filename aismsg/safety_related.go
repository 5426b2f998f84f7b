package aismsg

import (
	"github.com/vesselwatch/aisdecode/fields"
	"github.com/vesselwatch/aisdecode/nmea"
	"github.com/vesselwatch/aisdecode/storage"
)

// AddressedSafetyRelatedMessage decodes message type 12: free text
// addressed to a specific station. Same 6-bit character convention as
// type 5's strings (spec §4.7).
type AddressedSafetyRelatedMessage struct {
	SourceMMSI      fields.MMSI
	SequenceNumber  uint8
	DestinationMMSI fields.MMSI
	Retransmit      bool
	Text            storage.Text
}

func (m *AddressedSafetyRelatedMessage) Type() uint8 { return 12 }

func decodeAddressedSafetyRelatedMessage(r *nmea.BitReader) (Message, *nmea.Error) {
	m := &AddressedSafetyRelatedMessage{}
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
	m.Text = fields.ReadRemainingText(r, storage.FieldSafetyRelatedText)
	return m, nil
}

// SafetyRelatedAcknowledge decodes message type 13, structurally
// identical to type 7's acknowledgement-slot layout.
type SafetyRelatedAcknowledge struct {
	SourceMMSI fields.MMSI
	Acks       []BinaryAckSlot
}

func (m *SafetyRelatedAcknowledge) Type() uint8 { return 13 }

func decodeSafetyRelatedAcknowledge(r *nmea.BitReader) (Message, *nmea.Error) {
	ack, nerr := decodeBinaryAcknowledge(r)
	if nerr != nil {
		return nil, nerr
	}
	ba := ack.(*BinaryAcknowledge)
	return &SafetyRelatedAcknowledge{SourceMMSI: ba.SourceMMSI, Acks: ba.Acks}, nil
}

// SafetyRelatedBroadcastMessage decodes message type 14: free text
// broadcast to all stations.
type SafetyRelatedBroadcastMessage struct {
	SourceMMSI fields.MMSI
	Text       storage.Text
}

func (m *SafetyRelatedBroadcastMessage) Type() uint8 { return 14 }

func decodeSafetyRelatedBroadcastMessage(r *nmea.BitReader) (Message, *nmea.Error) {
	m := &SafetyRelatedBroadcastMessage{}
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
	m.Text = fields.ReadRemainingText(r, storage.FieldSafetyRelatedText)
	return m, nil
}

// readRemainingText decodes as many whole 6-bit characters as remain
// under the cursor as a plain string, used by decodeAidToNavigationReport
// to build its optional name extension before the combined value is
// wrapped in storage.Text.
func readRemainingText(r *nmea.BitReader) string {
	nChars := r.Remaining() / 6
	if nChars == 0 {
		return ""
	}
	text, err := r.Text(nChars)
	if err != nil {
		return ""
	}
	return text
}
