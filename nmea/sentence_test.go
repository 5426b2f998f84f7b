package nmea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testChecksumText = []struct {
	text     string
	checksum byte
	match    bool
}{
	{"", 0, true},
	{string([]byte{0x00}), 0x00, true},
	{string([]byte{0x00}), 0x01, false},
	{string([]byte{0x7f}), 0x7f, true},
	{string([]byte{0x7f}), 0xff, false},
	{"AA", 0, true},
	{"aaa", 'a', true},
	{"abcd", 'a' ^ 'b' ^ 'c' ^ 'd', true},
	{"abcd", 'd' ^ 'c' ^ 'b' ^ 'a', true},
	{"abcd", 'e' ^ 'd' ^ 'c' ^ 'b', false},
	{"bcde", 'a' ^ 'b' ^ 'c' ^ 'd', false},
	{"BSVDM,1,1,,A,14S:Eb001ePRmHBTAAFnrmV60PRk,0", 0x1f, true},
	{"BSVDM,1,1,,A,14S:Eb001ePRmHBTAAFnrmV60PRk,0", 0x0f, false},
	{"BSVDM,1,1,,A,13nMoF00000H56fQwFDLFD<800Rg,0", 0x71, true},
	{"BSVDM,1,1,,B,144atH00000Lf9nSffVf49TP00S9,0", 0x1D, true},
}

// TestChecksum exercises the XOR checksum helper directly against the
// teacher's checksum fixture table (nmeais/sentence_test.go).
func TestChecksum(t *testing.T) {
	for i, test := range testChecksumText {
		got := checksum([]byte(test.text)) == test.checksum
		assert.Equalf(t, test.match, got, "test %d (%q, 0x%x)", i, test.text, test.checksum)
	}
}

func TestStripTagBlock(t *testing.T) {
	noTag := []byte("!AIVDM,1,1,,A,13aEOK?P00PD2wVMdLDRhgvL289?,0*26")
	out, err := StripTagBlock(noTag)
	require.Nil(t, err)
	assert.Equal(t, noTag, out)

	tagged := []byte(`\s:station1,c:1234567890*5C\!AIVDM,1,1,,A,13aEOK?P00PD2wVMdLDRhgvL289?,0*26`)
	out, err = StripTagBlock(tagged)
	require.Nil(t, err)
	assert.Equal(t, "!AIVDM,1,1,,A,13aEOK?P00PD2wVMdLDRhgvL289?,0*26", string(out))

	_, err = StripTagBlock([]byte(`\s:station1,c:1234567890*5C\`))
	require.NotNil(t, err)
	assert.Equal(t, InvalidSentence, err.Kind)

	_, err = StripTagBlock([]byte(`\unterminated`))
	require.NotNil(t, err)
	assert.Equal(t, InvalidSentence, err.Kind)
}

func TestParseSentenceSingle(t *testing.T) {
	s, err := ParseSentence([]byte("!AIVDM,1,1,,B,E>kb9O9aS@7PUh10dh19@;0Tah2cWrfP:l?M`00003vP100,0*01"))
	require.Nil(t, err)
	assert.Equal(t, uint8(1), s.Parts)
	assert.Equal(t, uint8(1), s.FragmentNum)
	assert.True(t, s.HasChannel)
	assert.Equal(t, byte('B'), s.Channel)
	assert.False(t, s.HasMessageID)
	assert.Equal(t, 6*len(s.Payload), s.Bits.Len())
}

func TestParseSentenceBadChecksum(t *testing.T) {
	_, err := ParseSentence([]byte("!AIVDM,1,1,,B,E>kb9O9aS@7PUh10dh19@;0Tah2cWrfP:l?M`00003vP100,0*00"))
	require.NotNil(t, err)
	assert.Equal(t, InvalidChecksum, err.Kind)
}

func TestParseSentenceFragmentPair(t *testing.T) {
	s1, err := ParseSentence([]byte("!AIVDM,2,1,3,A,55P5TL01VIaAL@7WKO@mBplU@<PDhh000000001S;AJ::4A80?4i@E53,0*3E"))
	require.Nil(t, err)
	assert.Equal(t, uint8(2), s1.Parts)
	assert.Equal(t, uint8(1), s1.FragmentNum)
	assert.True(t, s1.HasMessageID)
	assert.Equal(t, uint8(3), s1.MessageID)

	s2, err := ParseSentence([]byte("!AIVDM,2,2,3,A,1CQ1A83,0*7D"))
	require.Nil(t, err)
	assert.Equal(t, uint8(2), s2.FragmentNum)
}

func TestParseSentenceUnsupportedPrefix(t *testing.T) {
	_, err := ParseSentence([]byte("!GPGGA,1,1,,A,x,0*00"))
	require.NotNil(t, err)
	assert.Equal(t, InvalidSentence, err.Kind)
}
