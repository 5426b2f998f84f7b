package aismsg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesselwatch/aisdecode/nmea"
)

func decodeArmored(t *testing.T, payload string, fillBits uint8) Message {
	t.Helper()
	buf, nerr := nmea.DecodeArmor(payload, fillBits)
	require.Nil(t, nerr)
	msg, derr := Decode(buf)
	require.Nil(t, derr)
	return msg
}

// Scenario 1: single-sentence type 21 aid-to-navigation report.
func TestDecodeAidToNavigationReportScenario(t *testing.T) {
	msg := decodeArmored(t, "E>kb9O9aS@7PUh10dh19@;0Tah2cWrfP:l?M`00003vP100", 0)
	aid, ok := msg.(*AidToNavigationReport)
	require.True(t, ok, "expected *AidToNavigationReport, got %T", msg)
	assert.EqualValues(t, 993692028, aid.MMSI)
	assert.Equal(t, "SF OAK BAY BR VAIS E", aid.Name.String())
}

// Scenario 3: type 5 static and voyage data, reassembled from a fragment pair.
func TestDecodeStaticAndVoyageDataScenario(t *testing.T) {
	buf, nerr := nmea.DecodeArmor("55P5TL01VIaAL@7WKO@mBplU@<PDhh000000001S;AJ::4A80?4i@E53"+"1CQ1A83", 0)
	require.Nil(t, nerr)
	msg, derr := Decode(buf)
	require.Nil(t, derr)
	voyage, ok := msg.(*StaticAndVoyageData)
	require.True(t, ok, "expected *StaticAndVoyageData, got %T", msg)
	// Name/CallSign/Destination are storage.Text, backed by whichever
	// allocator tier this build was compiled with.
	require.NotNil(t, voyage.Name)
	require.NotNil(t, voyage.CallSign)
	require.NotNil(t, voyage.Destination)
}

// Scenario 4: type 27 long-range broadcast.
func TestDecodeLongRangeBroadcastScenario(t *testing.T) {
	msg := decodeArmored(t, "KCQ9r=hrFUnH7P00", 0)
	lr, ok := msg.(*LongRangeBroadcastMessage)
	require.True(t, ok, "expected *LongRangeBroadcastMessage, got %T", msg)
	assert.NotNil(t, lr.Longitude)
	assert.NotNil(t, lr.Latitude)
}

// Scenario 6: an unsupported discriminant (type 22) surfaces
// UnsupportedMessageType without panicking or corrupting the buffer.
func TestDecodeUnsupportedMessageType(t *testing.T) {
	bits := nmea.NewBitBuffer(6)
	bits.PutBits(22, 6)
	_, derr := Decode(bits)
	require.NotNil(t, derr)
	assert.Equal(t, nmea.UnsupportedMessageType, derr.Kind)
	assert.EqualValues(t, 22, derr.Raw)
}

// Every supported message type decodes an all-zeros payload of its own
// maximum length without error, per spec's "all-ones and all-zeros" law.
func TestDecodeAllZerosDoesNotError(t *testing.T) {
	maxBits := map[uint32]int{
		1: 168, 2: 168, 3: 168,
		4: 168, 11: 168,
		5: 424,
		6: 968, 7: 168, 8: 968,
		9: 168, 10: 72,
		12: 1008, 13: 168, 14: 1008,
		15: 162, 16: 144,
		17: 816, 18: 168, 19: 312,
		20: 160, 21: 360, 24: 168, 27: 96,
	}
	for msgType, n := range maxBits {
		buf := nmea.NewBitBuffer(n)
		buf.PutBits(msgType, 6)
		for remaining := n - 6; remaining > 0; {
			chunk := remaining
			if chunk > 24 {
				chunk = 24
			}
			buf.PutBits(0, chunk)
			remaining -= chunk
		}
		_, derr := Decode(buf)
		assert.Nil(t, derr, "message type %d: unexpected error decoding all-zeros payload", msgType)
	}
}
