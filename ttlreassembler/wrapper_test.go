package ttlreassembler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapperCompletesLikeBareParser(t *testing.T) {
	w := New(DefaultTTL)
	res1, err := w.Parse([]byte("!AIVDM,2,1,3,A,55P5TL01VIaAL@7WKO@mBplU@<PDhh000000001S;AJ::4A80?4i@E53,0*3E"), true)
	require.Nil(t, err)
	assert.False(t, res1.Complete)
	assert.Equal(t, 1, w.Pending())

	res2, err := w.Parse([]byte("!AIVDM,2,2,3,A,1CQ1A83,0*7D"), true)
	require.Nil(t, err)
	assert.True(t, res2.Complete)
	assert.Equal(t, 0, w.Pending())
}

func TestWrapperEvictsStaleGroup(t *testing.T) {
	w := New(20 * time.Millisecond)
	_, err := w.Parse([]byte("!AIVDM,2,1,3,A,55P5TL01VIaAL@7WKO@mBplU@<PDhh000000001S;AJ::4A80?4i@E53,0*3E"), true)
	require.Nil(t, err)
	require.Equal(t, 1, w.Pending())

	time.Sleep(80 * time.Millisecond)
	assert.Eventually(t, func() bool { return w.Pending() == 0 }, time.Second, 10*time.Millisecond)
}
