package aismsg

import (
	"github.com/vesselwatch/aisdecode/fields"
	"github.com/vesselwatch/aisdecode/nmea"
	"github.com/vesselwatch/aisdecode/storage"
)

// StaticAndVoyageData decodes message type 5. Real-world encoders often
// truncate this message below its nominal 424 bits (spec §4.7 "decode
// best-effort, leaving trailing strings empty if bits run out -- does
// not error"); once the bit buffer is exhausted every field from that
// point on is left at its zero value instead of surfacing
// UnexpectedEndOfData.
type StaticAndVoyageData struct {
	MMSI        fields.MMSI
	AISVersion  uint8
	IMONumber   uint32
	CallSign    storage.Text
	Name        storage.Text
	ShipType    fields.ShipType
	ToBow       uint16
	ToStern     uint16
	ToPort      uint8
	ToStarboard uint8
	EPFD        fields.EPFD
	ETAMonth    uint8
	ETADay      uint8
	ETAHour     uint8
	ETAMinute   uint8
	Draught     *float64 // meters; nil when unavailable (0)
	Destination storage.Text
	DTE         bool
}

func (m *StaticAndVoyageData) Type() uint8 { return 5 }

// truncatedReader wraps a BitReader so that once the buffer is exhausted
// every subsequent read quietly returns the zero value instead of an
// error, matching type 5's documented truncation tolerance.
type truncatedReader struct {
	r   *nmea.BitReader
	ran bool // true once the first truncation has been observed
}

func (t *truncatedReader) u(n int) uint32 {
	if t.ran || t.r.Remaining() < n {
		t.ran = true
		return 0
	}
	v, _ := t.r.U(n)
	return v
}

func (t *truncatedReader) text(field string, nChars int) storage.Text {
	empty := storage.NewText(field)
	if t.ran || t.r.Remaining() < 6*nChars {
		t.ran = true
		return empty
	}
	txt, err := fields.ReadText(t.r, field, nChars)
	if err != nil {
		t.ran = true
		return empty
	}
	return txt
}

func (t *truncatedReader) bool() bool {
	return t.u(1) == 1
}

func decodeStaticAndVoyageData(r *nmea.BitReader) (Message, *nmea.Error) {
	// The message-type discriminant and repeat indicator are always
	// present (guaranteed by the framing layer having routed here), so
	// only the fields after them are read through the tolerant wrapper.
	if e := r.Skip(2); e != nil { // repeat indicator
		return nil, e.(*nmea.Error)
	}
	mmsi, nerr := fields.ReadMMSI(r)
	if nerr != nil {
		return nil, asNmeaErr(nerr)
	}

	t := &truncatedReader{r: r}
	m := &StaticAndVoyageData{MMSI: mmsi}
	m.AISVersion = uint8(t.u(2))
	m.IMONumber = t.u(30)
	m.CallSign = t.text(storage.FieldCallSign, 7)
	m.Name = t.text(storage.FieldVesselName, 20)
	m.ShipType = fields.ClassifyShipType(uint8(t.u(8)))
	m.ToBow = uint16(t.u(9))
	m.ToStern = uint16(t.u(9))
	m.ToPort = uint8(t.u(6))
	m.ToStarboard = uint8(t.u(6))
	m.EPFD = fields.ClassifyEPFD(uint8(t.u(4)))
	m.ETAMonth = uint8(t.u(4))
	m.ETADay = uint8(t.u(5))
	m.ETAHour = uint8(t.u(5))
	m.ETAMinute = uint8(t.u(6))
	draughtRaw := t.u(8)
	if draughtRaw != 0 {
		v := float64(draughtRaw) / 10
		m.Draught = &v
	}
	m.Destination = t.text(storage.FieldDestination, 20)
	m.DTE = t.bool()
	return m, nil
}
