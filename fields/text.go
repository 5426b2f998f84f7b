package fields

import (
	"github.com/vesselwatch/aisdecode/nmea"
	"github.com/vesselwatch/aisdecode/storage"
)

// ReadText decodes nChars 6-bit characters off r and stores the result
// in a storage.Text sized for field's tabulated capacity, so the
// build's chosen allocator tier -- default, boundedalloc, or noalloc --
// is what actually backs every decoded name/call sign/destination
// rather than a bare Go string. The returned error is only ever a
// bit-read failure (*nmea.Error); a decoded value wider than the
// tier's capacity is left empty rather than erroring, matching type 5's
// truncation tolerance (spec §4.7).
func ReadText(r *nmea.BitReader, field string, nChars int) (storage.Text, error) {
	s, err := r.Text(nChars)
	if err != nil {
		return nil, err
	}
	t := storage.NewText(field)
	_ = t.Set(s)
	return t, nil
}

// ReadRemainingText decodes as many whole 6-bit characters as remain
// under r's cursor into a storage.Text of field's tier, used by the
// free-text message types whose length is "whatever's left" rather than
// a fixed field count. A value too long for field's tier capacity is
// left empty rather than erroring, matching type 5's truncation
// tolerance (spec §4.7).
func ReadRemainingText(r *nmea.BitReader, field string) storage.Text {
	t := storage.NewText(field)
	nChars := r.Remaining() / 6
	if nChars == 0 {
		return t
	}
	s, err := r.Text(nChars)
	if err != nil {
		return t
	}
	_ = t.Set(s)
	return t
}
