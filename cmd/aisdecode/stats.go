package main

import (
	"sync/atomic"
	"time"

	"github.com/vesselwatch/aisdecode/logger"
)

// throughputStats counts sentences this process has handled since
// startup, reported periodically by a logger.AddPeriodic logger
// (spec §1 EXPANSION "periodic throughput stats", grounded on the
// teacher's own use of AddPeriodic for connection/source stats).
type throughputStats struct {
	sentences int64
	decoded   int64
	rejected  int64
}

func (s *throughputStats) sawSentence() { atomic.AddInt64(&s.sentences, 1) }
func (s *throughputStats) sawDecoded()  { atomic.AddInt64(&s.decoded, 1) }
func (s *throughputStats) sawRejected() { atomic.AddInt64(&s.rejected, 1) }

// Report is a logger.loggerFunc: it prints the sentence/decode/reject
// counts accumulated since the previous run, and the rate they arrived
// at, then resets the counters for the next interval.
func (s *throughputStats) Report(c *logger.Composer, sinceLast time.Duration) {
	sentences := atomic.SwapInt64(&s.sentences, 0)
	decoded := atomic.SwapInt64(&s.decoded, 0)
	rejected := atomic.SwapInt64(&s.rejected, 0)

	var rate string
	if sinceLast > 0 {
		perSecond := uint64(float64(sentences) / sinceLast.Seconds())
		rate = logger.SiMultiple(perSecond, 1000, 'Y') + "/s"
	} else {
		rate = "n/a"
	}
	c.Writeln("%s sentences (%s), %s decoded, %s rejected, over %s",
		logger.SiMultiple(uint64(sentences), 1000, 'Y'), rate,
		logger.SiMultiple(uint64(decoded), 1000, 'Y'),
		logger.SiMultiple(uint64(rejected), 1000, 'Y'),
		logger.RoundDuration(sinceLast, time.Second))
}
