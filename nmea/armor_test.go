package nmea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDecodeArmorLength(t *testing.T) {
	bits, err := DecodeArmor("E>kb9O9aS@7PUh10dh19@;0Tah2cWrfP:l?M`00003vP100", 0)
	require.Nil(t, err)
	assert.Equal(t, 6*47, bits.Len())
}

func TestDecodeArmorFillBits(t *testing.T) {
	bits, err := DecodeArmor("1CQ1A83", 2)
	require.Nil(t, err)
	assert.Equal(t, 6*7-2, bits.Len())
}

func TestDecodeArmorInvalidCharacter(t *testing.T) {
	_, err := DecodeArmor("abc\x00", 0)
	require.NotNil(t, err)
	assert.Equal(t, InvalidCharacter, err.Kind)

	// 0x58..0x5F are explicitly excluded from the legal range.
	_, err = DecodeArmor(string([]byte{0x58}), 0)
	require.NotNil(t, err)
	assert.Equal(t, InvalidCharacter, err.Kind)
}

// legalArmorByte is the generator for one valid armor character, used by
// the property tests below.
func legalArmorByte(t *rapid.T) byte {
	return rapid.SampledFrom([]byte(
		"0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVW`abcdefghijklmnopqrstuvw",
	)).Draw(t, "armorByte")
}

// TestDecodeArmorBitLengthLaw checks spec §8's law: for every armored
// payload of L characters with fill-bits f, the bit-buffer length equals
// 6L-f, for all legal L and f.
func TestDecodeArmorBitLengthLaw(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 64).Draw(t, "n")
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = legalArmorByte(t)
		}
		fill := uint8(0)
		if n > 0 {
			fill = uint8(rapid.IntRange(0, 5).Draw(t, "fill"))
		}
		bits, err := DecodeArmor(string(buf), fill)
		require.Nil(t, err)
		assert.Equal(t, 6*n-int(fill), bits.Len())
	})
}

// TestBitReaderRoundTrip checks that any sequence of unsigned reads whose
// widths sum to the buffer length reconstructs the same bits that went in.
func TestBitReaderRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nWords := rapid.IntRange(1, 20).Draw(t, "nWords")
		widths := make([]int, nWords)
		values := make([]uint32, nWords)
		buf := NewBitBuffer(32 * nWords)
		for i := 0; i < nWords; i++ {
			w := rapid.IntRange(1, 32).Draw(t, "width")
			v := rapid.Uint32().Draw(t, "value")
			if w < 32 {
				v &= (1 << uint(w)) - 1
			}
			widths[i] = w
			values[i] = v
			buf.putBits(v, w)
		}
		r := buf.Reader()
		for i := 0; i < nWords; i++ {
			got, err := r.U(widths[i])
			require.Nil(t, err)
			assert.Equal(t, values[i], got)
		}
		assert.Equal(t, 0, r.Remaining())
	})
}

func TestBitReaderUnexpectedEndOfData(t *testing.T) {
	buf, err := DecodeArmor("0", 0)
	require.Nil(t, err)
	r := buf.Reader()
	_, rerr := r.U(10)
	require.NotNil(t, rerr)
	assert.Equal(t, UnexpectedEndOfData, rerr.(*Error).Kind)
}

func TestBitReaderTextStripsTrailingAt(t *testing.T) {
	buf := NewBitBuffer(24)
	for _, c := range []byte("AB@") {
		idx := indexOf(aisCharTable, c)
		buf.PutSextet(uint8(idx))
	}
	r := buf.Reader()
	text, err := r.Text(3)
	require.Nil(t, err)
	assert.Equal(t, "AB", text)
}

func indexOf(table string, c byte) int {
	for i := 0; i < len(table); i++ {
		if table[i] == c {
			return i
		}
	}
	return -1
}
