package nmea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sentenceOf(t *testing.T, line string) Sentence {
	t.Helper()
	s, err := ParseSentence([]byte(line))
	require.Nil(t, err)
	return s
}

func TestReassemblerSinglePart(t *testing.T) {
	r := NewReassembler(0)
	s := sentenceOf(t, "!AIVDM,1,1,,B,E>kb9O9aS@7PUh10dh19@;0Tah2cWrfP:l?M`00003vP100,0*01")
	bits, err := r.Accept(s)
	require.Nil(t, err)
	require.NotNil(t, bits)
	assert.Equal(t, 0, r.Pending())
}

func TestReassemblerTwoPart(t *testing.T) {
	r := NewReassembler(0)
	s1 := sentenceOf(t, "!AIVDM,2,1,3,A,55P5TL01VIaAL@7WKO@mBplU@<PDhh000000001S;AJ::4A80?4i@E53,0*3E")
	bits, err := r.Accept(s1)
	require.Nil(t, err)
	assert.Nil(t, bits)
	assert.Equal(t, 1, r.Pending())

	s2 := sentenceOf(t, "!AIVDM,2,2,3,A,1CQ1A83,0*7D")
	bits, err = r.Accept(s2)
	require.Nil(t, err)
	require.NotNil(t, bits)
	assert.Equal(t, 0, r.Pending())
	assert.Equal(t, s1.Bits.Len()+s2.Bits.Len(), bits.Len())
}

func TestReassemblerDifferentChannelsDontCollide(t *testing.T) {
	r := NewReassembler(0)
	a1 := sentenceOf(t, "!AIVDM,2,1,3,A,55P5TL01VIaAL@7WKO@mBplU@<PDhh000000001S;AJ::4A80?4i@E53,0")
	b1 := sentenceOf(t, "!AIVDM,2,1,3,B,55P5TL01VIaAL@7WKO@mBplU@<PDhh000000001S;AJ::4A80?4i@E53,0")
	_, err := r.Accept(a1)
	require.Nil(t, err)
	_, err = r.Accept(b1)
	require.Nil(t, err)
	assert.Equal(t, 2, r.Pending())
}

func TestReassemblerNewFirstFragmentDropsOldGroup(t *testing.T) {
	r := NewReassembler(0)
	first := sentenceOf(t, "!AIVDM,2,1,3,A,55P5TL01VIaAL@7WKO@mBplU@<PDhh000000001S;AJ::4A80?4i@E53,0")
	_, err := r.Accept(first)
	require.Nil(t, err)
	assert.Equal(t, 1, r.Pending())

	restart := sentenceOf(t, "!AIVDM,2,1,3,A,55P5TL01VIaAL@7WKO@mBplU@<PDhh000000001S;AJ::4A80?4i@E53,0")
	_, err = r.Accept(restart)
	require.Nil(t, err)
	assert.Equal(t, 1, r.Pending(), "restarted group replaces the old one rather than adding a second")
}

func TestReassemblerOrphanMiddleFragmentIsDroppedSilently(t *testing.T) {
	r := NewReassembler(0)
	s2 := sentenceOf(t, "!AIVDM,2,2,3,A,1CQ1A83,0*7D")
	bits, err := r.Accept(s2)
	assert.Nil(t, err)
	assert.Nil(t, bits)
	assert.Equal(t, 0, r.Pending())
}

func TestReassemblerMaxPendingLimit(t *testing.T) {
	r := NewReassembler(1)
	a := sentenceOf(t, "!AIVDM,2,1,3,A,55P5TL01VIaAL@7WKO@mBplU@<PDhh000000001S;AJ::4A80?4i@E53,0")
	b := sentenceOf(t, "!AIVDM,2,1,5,A,55P5TL01VIaAL@7WKO@mBplU@<PDhh000000001S;AJ::4A80?4i@E53,0")
	_, err := r.Accept(a)
	require.Nil(t, err)
	_, err = r.Accept(b)
	require.NotNil(t, err)
	assert.Equal(t, TooManyPendingFragments, err.Kind)
}

func TestReassemblerRejectDiscardsGroup(t *testing.T) {
	r := NewReassembler(0)
	s1 := sentenceOf(t, "!AIVDM,2,1,3,A,55P5TL01VIaAL@7WKO@mBplU@<PDhh000000001S;AJ::4A80?4i@E53,0")
	_, err := r.Accept(s1)
	require.Nil(t, err)
	r.Reject(s1)
	assert.Equal(t, 0, r.Pending())
}
