package main

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vesselwatch/aisdecode/logger"
)

func TestThroughputStatsReportResetsCounters(t *testing.T) {
	s := &throughputStats{}
	s.sawSentence()
	s.sawSentence()
	s.sawDecoded()
	s.sawRejected()

	var buf bytes.Buffer
	log := logger.NewLogger(nopCloser{&buf}, logger.Info)
	defer log.Close()

	c := log.Compose(logger.Info)
	s.Report(&c, time.Second)
	c.Close()

	assert.Contains(t, buf.String(), "2 sentences")
	assert.Contains(t, buf.String(), "1 decoded")
	assert.Contains(t, buf.String(), "1 rejected")

	assert.EqualValues(t, 0, s.sentences)
	assert.EqualValues(t, 0, s.decoded)
	assert.EqualValues(t, 0, s.rejected)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
