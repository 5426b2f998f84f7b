// Command aisdecode reads AIS NMEA 0183 sentences from stdin, one per
// line, and prints each decoded record. Grounded on the teacher's
// deleted server/main.go stdin-reading idiom (a plain read loop feeding
// a shared parser, CheckErr-style fatal-on-I/O-error), adapted to this
// module's parser.Parser facade and config/pflag setup.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/vesselwatch/aisdecode/config"
	"github.com/vesselwatch/aisdecode/logger"
	"github.com/vesselwatch/aisdecode/nmea"
	"github.com/vesselwatch/aisdecode/parser"
	"github.com/vesselwatch/aisdecode/ttlreassembler"
)

// sentenceParser is satisfied by both parser.Parser and
// ttlreassembler.Wrapper, so main can pick the TTL-wrapped reassembler
// only when the config asks for one.
type sentenceParser interface {
	Parse(line []byte, decodeMessage bool) (parser.Result, *parser.Error)
}

func main() {
	resolveConfig := config.Flags(pflag.CommandLine)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - decode AIS NMEA 0183 sentences from stdin\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	cfg, err := resolveConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %s\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(os.Stdout, cfg.LoggerLevel())
	defer log.Close()

	var p sentenceParser
	if cfg.FragmentTTLSeconds > 0 {
		ttl := time.Duration(cfg.FragmentTTLSeconds) * time.Second
		p = ttlreassembler.NewWithMaxPending(cfg.MaxPendingFragments, ttl)
	} else {
		p = parser.NewWithMaxPending(cfg.MaxPendingFragments)
	}

	stats := &throughputStats{}
	log.AddPeriodic("throughput", 30*time.Second, 5*time.Minute, stats.Report)
	defer log.RemovePeriodic("throughput")

	if err := run(os.Stdin, p, log, stats, cfg.DecodeMessage); err != nil {
		log.Fatal("reading stdin: %s", err)
	}
}

// run feeds stdin through nmea.FirstSentenceInBuffer, which copes with
// sentences split across reads or several sentences landing in one
// read, and hands each complete line to p. It returns only on a stdin
// read error; parse errors are logged and skipped, matching spec §6.
func run(r io.Reader, p sentenceParser, log *logger.Logger, stats *throughputStats, decodeMessage bool) error {
	reader := bufio.NewReader(r)
	var incomplete []byte
	buf := make([]byte, 4096)
	for {
		n, readErr := reader.Read(buf)
		chunk := buf[:n]
		for len(chunk) > 0 {
			sentence, next := nmea.FirstSentenceInBuffer(incomplete, chunk)
			incomplete = nil
			if next == -1 {
				incomplete = sentence
				break
			}
			chunk = chunk[next:]
			processLine(sentence, p, log, stats, decodeMessage)
		}
		if readErr != nil {
			if readErr == io.EOF {
				return nil
			}
			return readErr
		}
	}
}

func processLine(line []byte, p sentenceParser, log *logger.Logger, stats *throughputStats, decodeMessage bool) {
	line = bytes.TrimRight(line, "\r\n") // FirstSentenceInBuffer always appends "\r\n"
	stats.sawSentence()
	res, err := p.Parse(line, decodeMessage)
	if err != nil {
		stats.sawRejected()
		log.Debug("rejected %s: %s", logger.Escape(line), err)
		return
	}
	if !res.Complete {
		return
	}
	if res.Message != nil {
		stats.sawDecoded()
		log.Info("%+v", res.Message)
	} else {
		log.Debug("reassembled %d bits, no decoded message", res.Bits.Len())
	}
}
