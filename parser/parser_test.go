package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesselwatch/aisdecode/aismsg"
	"github.com/vesselwatch/aisdecode/nmea"
)

// Scenario 1: single-sentence type 21.
func TestParseSingleSentenceAidToNavigation(t *testing.T) {
	p := New()
	res, err := p.Parse([]byte("!AIVDM,1,1,,B,E>kb9O9aS@7PUh10dh19@;0Tah2cWrfP:l?M`00003vP100,0*01"), true)
	require.Nil(t, err)
	require.True(t, res.Complete)
	assert.EqualValues(t, 1, res.Sentence.Parts)
	assert.True(t, res.Sentence.HasChannel)
	assert.Equal(t, byte('B'), res.Sentence.Channel)
	aid, ok := res.Message.(*aismsg.AidToNavigationReport)
	require.True(t, ok)
	assert.EqualValues(t, 993692028, aid.MMSI)
	assert.Equal(t, "SF OAK BAY BR VAIS E", aid.Name.String())
}

// Scenario 2: checksum failure.
func TestParseChecksumFailure(t *testing.T) {
	p := New()
	_, err := p.Parse([]byte("!AIVDM,1,1,,B,E>kb9O9aS@7PUh10dh19@;0Tah2cWrfP:l?M`00003vP100,0*00"), true)
	require.NotNil(t, err)
	assert.Equal(t, nmea.InvalidChecksum, err.Kind)
}

// Scenario 3: fragment pair completing a type 5 message.
func TestParseFragmentPairStaticAndVoyageData(t *testing.T) {
	p := New()
	res1, err := p.Parse([]byte("!AIVDM,2,1,3,A,55P5TL01VIaAL@7WKO@mBplU@<PDhh000000001S;AJ::4A80?4i@E53,0*3E"), true)
	require.Nil(t, err)
	assert.False(t, res1.Complete)

	res2, err := p.Parse([]byte("!AIVDM,2,2,3,A,1CQ1A83,0*7D"), true)
	require.Nil(t, err)
	require.True(t, res2.Complete)
	_, ok := res2.Message.(*aismsg.StaticAndVoyageData)
	assert.True(t, ok)
}

// Scenario 4: type 27 long-range broadcast.
func TestParseLongRangeBroadcast(t *testing.T) {
	p := New()
	res, err := p.Parse([]byte("!AIVDM,1,1,,A,KCQ9r=hrFUnH7P00,0*41"), true)
	require.Nil(t, err)
	require.True(t, res.Complete)
	_, ok := res.Message.(*aismsg.LongRangeBroadcastMessage)
	assert.True(t, ok)
}

// Scenario 5: a leading tag block is silently stripped before parsing.
func TestParseWithTagBlock(t *testing.T) {
	p := New()
	res, err := p.Parse([]byte(`\s:station1,c:1234567890*5C\!AIVDM,1,1,,A,13aEOK?P00PD2wVMdLDRhgvL289?,0*26`), true)
	require.Nil(t, err)
	require.True(t, res.Complete)
	_, ok := res.Message.(*aismsg.PositionReport)
	assert.True(t, ok)
}

// Scenario 6: an unsupported message type surfaces its error without
// leaving a stale fragment group behind.
func TestParseUnsupportedMessageType(t *testing.T) {
	p := New()
	bits := nmea.NewBitBuffer(30)
	bits.PutBits(22, 6)
	bits.PutBits(0, 24)

	_, err := p.Parse(buildAIVDMLine(bits, 0), true)
	require.NotNil(t, err)
	assert.Equal(t, nmea.UnsupportedMessageType, err.Kind)
	assert.Equal(t, 0, p.Pending())
}

// buildAIVDMLine re-armors a BitBuffer's payload into a single-sentence
// !AIVDM line (no checksum, relying on ParseSentence's skip-when-absent
// behavior), used to construct synthetic test payloads whose armored
// form would be tedious to hand-encode.
func buildAIVDMLine(bits *nmea.BitBuffer, fillBits uint8) []byte {
	payload := reArmor(bits)
	return []byte("!AIVDM,1,1,,A," + payload + "," + string(rune('0'+fillBits)))
}

func reArmor(bits *nmea.BitBuffer) string {
	r := bits.Reader()
	var out []byte
	for r.Remaining() > 0 {
		n := 6
		if r.Remaining() < 6 {
			n = r.Remaining()
		}
		v, _ := r.U(n)
		if n < 6 {
			v <<= uint(6 - n)
		}
		out = append(out, armorChar(uint8(v)))
	}
	return string(out)
}

func armorChar(v uint8) byte {
	v &= 0x3f
	if v < 40 {
		return v + 0x30
	}
	return v + 0x30 + 8
}
