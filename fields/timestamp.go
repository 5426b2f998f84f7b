package fields

import "github.com/vesselwatch/aisdecode/nmea"

// TimestampKind distinguishes the three non-numeric 6-bit UTC-second
// sentinels from an ordinary 0-59 second value.
type TimestampKind uint8

const (
	TimestampSecond TimestampKind = iota
	TimestampNotAvailable
	TimestampManual
	TimestampDeadReckoning
	TimestampInoperative
)

// UTCTimestamp is the decoded 6-bit position-report timestamp field.
// Second is only meaningful when Kind == TimestampSecond.
type UTCTimestamp struct {
	Kind   TimestampKind
	Second uint8
}

// ReadUTCTimestamp reads the 6-bit UTC-second field (0-59 valid, 60
// unavailable, 61 manual input, 62 dead reckoning, 63 inoperative).
func ReadUTCTimestamp(r *nmea.BitReader) (UTCTimestamp, error) {
	raw, err := r.U(6)
	if err != nil {
		return UTCTimestamp{}, err
	}
	switch raw {
	case 60:
		return UTCTimestamp{Kind: TimestampNotAvailable}, nil
	case 61:
		return UTCTimestamp{Kind: TimestampManual}, nil
	case 62:
		return UTCTimestamp{Kind: TimestampDeadReckoning}, nil
	case 63:
		return UTCTimestamp{Kind: TimestampInoperative}, nil
	default:
		return UTCTimestamp{Kind: TimestampSecond, Second: uint8(raw)}, nil
	}
}
