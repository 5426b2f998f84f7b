package fields

import "github.com/vesselwatch/aisdecode/nmea"

// RadioAccessScheme distinguishes the two sub-record shapes the 19-bit
// radio status field can hold, chosen by sync-state/message-type context
// at the call site (spec §4.6: SOTDMA for types 1,2,4,11,18; ITDMA for
// type 3 and some type 18 configurations).
type RadioAccessScheme uint8

const (
	SOTDMA RadioAccessScheme = iota
	ITDMA
)

// SOTDMASubMessageKind names how the 14-bit sub-message is interpreted,
// which depends on the slot-timeout value (ITU-R M.1371 table 20).
type SOTDMASubMessageKind uint8

const (
	SlotOffset SOTDMASubMessageKind = iota
	UTCHourMinute
	SlotNumber
	ReceivedStations
)

// SOTDMAStatus is the decoded radio status for the SOTDMA scheme.
type SOTDMAStatus struct {
	SyncState      uint8
	SlotTimeout    uint8
	SubMessageKind SOTDMASubMessageKind
	// SubMessage is the raw 14-bit value; its kind-specific decomposition
	// (hour/minute when Kind==UTCHourMinute) is left to the caller, since
	// no per-type decoder in this module currently surfaces it further.
	SubMessage uint16
}

// ITDMAStatus is the decoded radio status for the ITDMA scheme.
type ITDMAStatus struct {
	SyncState     uint8
	SlotIncrement uint16
	NumSlots      uint8
	KeepFlag      bool
}

// RadioStatus is the tagged union over the two radio-access schemes.
type RadioStatus struct {
	Scheme RadioAccessScheme
	SOTDMA SOTDMAStatus
	ITDMA  ITDMAStatus
}

// subMessageKind maps a 3-bit slot-timeout value to the sub-message's
// interpretation per ITU-R M.1371 table 20.
func subMessageKind(slotTimeout uint8) SOTDMASubMessageKind {
	switch slotTimeout {
	case 0:
		return SlotOffset
	case 1:
		return UTCHourMinute
	case 2, 4, 6:
		return SlotNumber
	default: // 3, 5, 7
		return ReceivedStations
	}
}

// ReadRadioStatusSOTDMA reads the 19-bit radio status field as an SOTDMA
// sub-record: 2-bit sync state, 3-bit slot timeout, 14-bit sub-message.
func ReadRadioStatusSOTDMA(r *nmea.BitReader) (RadioStatus, error) {
	sync, err := r.U(2)
	if err != nil {
		return RadioStatus{}, err
	}
	timeout, err := r.U(3)
	if err != nil {
		return RadioStatus{}, err
	}
	sub, err := r.U(14)
	if err != nil {
		return RadioStatus{}, err
	}
	return RadioStatus{
		Scheme: SOTDMA,
		SOTDMA: SOTDMAStatus{
			SyncState:      uint8(sync),
			SlotTimeout:    uint8(timeout),
			SubMessageKind: subMessageKind(uint8(timeout)),
			SubMessage:     uint16(sub),
		},
	}, nil
}

// ReadRadioStatusITDMA reads the 19-bit radio status field as an ITDMA
// sub-record: 2-bit sync state, 13-bit slot increment, 3-bit slot count,
// 1-bit keep flag.
func ReadRadioStatusITDMA(r *nmea.BitReader) (RadioStatus, error) {
	sync, err := r.U(2)
	if err != nil {
		return RadioStatus{}, err
	}
	increment, err := r.U(13)
	if err != nil {
		return RadioStatus{}, err
	}
	slots, err := r.U(3)
	if err != nil {
		return RadioStatus{}, err
	}
	keep, err := r.Bool()
	if err != nil {
		return RadioStatus{}, err
	}
	return RadioStatus{
		Scheme: ITDMA,
		ITDMA: ITDMAStatus{
			SyncState:     uint8(sync),
			SlotIncrement: uint16(increment),
			NumSlots:      uint8(slots),
			KeepFlag:      keep,
		},
	}, nil
}
