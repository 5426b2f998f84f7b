package nmea

import "bytes"

// Sentence is one parsed, checksum-validated, armor-decoded NMEA 0183
// line. Grounded on the teacher's nmeais.Sentence (nmeais/sentence.go),
// generalized from the teacher's fixed-byte-offset field extraction (which
// assumed single-digit message-id/channel fields at known positions) to a
// comma-split tokenizer, the same top-level strategy
// mazgied-aislib/router.go's Router uses (tokens := strings.Split(sentence, ",")),
// so a leading tag block of unknown length doesn't have to be re-derived
// into fixed offsets by every caller.
type Sentence struct {
	Talker       [2]byte // e.g. "AI", "BS", "AB" -- the two chars after '!'
	Parts        uint8   // total fragment count, 1-9
	FragmentNum  uint8   // 1-based fragment number, 1<=FragmentNum<=Parts
	HasMessageID bool
	MessageID    uint8 // 0-9, only meaningful if HasMessageID
	HasChannel   bool
	Channel      byte // 'A', 'B', or another raw channel byte
	Payload      string
	FillBits     uint8
	Bits         *BitBuffer // armor-decoded payload, length 6*len(Payload)-FillBits
}

// StripTagBlock removes a leading "\...\" NMEA tag block, if present. A
// line that is only a tag block (nothing follows the closing backslash)
// is InvalidSentence. The tag block's own checksum is never validated,
// per spec: tag-block interpretation beyond tolerating and discarding it
// is out of scope.
func StripTagBlock(line []byte) ([]byte, *Error) {
	if len(line) == 0 || line[0] != '\\' {
		return line, nil
	}
	end := bytes.IndexByte(line[1:], '\\')
	if end == -1 {
		return nil, errInvalidSentence("unterminated tag block")
	}
	rest := line[end+2:]
	if len(rest) == 0 {
		return nil, errInvalidSentence("line is only a tag block")
	}
	return rest, nil
}

// ParseSentence tokenizes a single NMEA line (tag block already stripped),
// validates its prefix and checksum, and armor-decodes the payload. The
// line must start with '!' or '$' followed by any two-character talker
// and "VDM" or "VDO" (e.g. "!AIVDM", "!AIVDO", "!BSVDM"). When the
// "*HH" suffix is absent the checksum is not checked.
func ParseSentence(line []byte) (Sentence, *Error) {
	if len(line) < 2 || (line[0] != '!' && line[0] != '$') {
		return Sentence{}, errInvalidSentence("missing '!'/'$' prefix")
	}
	fields := bytes.Split(line[1:], []byte(","))
	if len(fields) != 7 {
		return Sentence{}, errInvalidSentence("expected 7 comma-separated fields, got %d", len(fields))
	}
	ident := fields[0]
	if len(ident) != 5 || !bytes.Equal(ident[2:5], []byte("VDM")) && !bytes.Equal(ident[2:5], []byte("VDO")) {
		return Sentence{}, errInvalidSentence("unrecognized identifier %q", ident)
	}
	var s Sentence
	s.Talker[0], s.Talker[1] = ident[0], ident[1]

	parts, ok := parseDigit(fields[1])
	if !ok || parts < 1 || parts > 9 {
		return Sentence{}, errInvalidSentence("fragment count %q is not 1-9", fields[1])
	}
	s.Parts = parts

	fragNum, ok := parseDigit(fields[2])
	if !ok || fragNum < 1 || fragNum > s.Parts {
		return Sentence{}, errInvalidSentence("fragment number %q is not 1-%d", fields[2], s.Parts)
	}
	s.FragmentNum = fragNum

	if len(fields[3]) != 0 {
		mid, ok := parseDigit(fields[3])
		if !ok {
			return Sentence{}, errInvalidSentence("message id %q is not a digit", fields[3])
		}
		s.HasMessageID = true
		s.MessageID = mid
	} else if s.Parts > 1 {
		return Sentence{}, errInvalidSentence("multipart sentence without a message id")
	}

	if len(fields[4]) != 0 {
		if len(fields[4]) != 1 {
			return Sentence{}, errInvalidSentence("channel %q is not a single character", fields[4])
		}
		s.HasChannel = true
		s.Channel = fields[4][0]
	}

	s.Payload = string(fields[5])

	last := fields[6] // "fillBits*HH" or just "fillBits"
	star := bytes.IndexByte(last, '*')
	var fillField []byte
	if star == -1 {
		fillField = last
	} else {
		fillField = last[:star]
	}
	fill, ok := parseDigit(fillField)
	if !ok || fill > 5 {
		return Sentence{}, errInvalidSentence("fill bits %q is not 0-5", fillField)
	}
	s.FillBits = fill

	if star != -1 {
		hex := last[star+1:]
		if len(hex) != 2 {
			return Sentence{}, errInvalidSentence("checksum %q is not 2 hex digits", hex)
		}
		expected, ok := parseHexByte(hex[0], hex[1])
		if !ok {
			return Sentence{}, errInvalidSentence("checksum %q is not 2 hex digits", hex)
		}
		starAt := bytes.LastIndexByte(line, '*')
		actual := checksum(line[1:starAt])
		if actual != expected {
			// s's header fields (parts/fragment/message-id/channel) are
			// already populated even though Bits isn't yet: callers use
			// them to reject any in-progress reassembly group this
			// sentence belonged to.
			return s, &Error{Kind: InvalidChecksum, Expected: expected, Actual: actual}
		}
	}

	bits, aerr := DecodeArmor(s.Payload, s.FillBits)
	if aerr != nil {
		return Sentence{}, aerr
	}
	s.Bits = bits
	return s, nil
}

// checksum computes the XOR of all bytes in b, as specified for NMEA 0183:
// XOR of every byte strictly between '!'/'$' and '*'.
func checksum(b []byte) byte {
	var sum byte
	for _, c := range b {
		sum ^= c
	}
	return sum
}

func parseDigit(b []byte) (uint8, bool) {
	if len(b) != 1 || b[0] < '0' || b[0] > '9' {
		return 0, false
	}
	return b[0] - '0', true
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}

func parseHexByte(hi, lo byte) (byte, bool) {
	h, ok := hexVal(hi)
	if !ok {
		return 0, false
	}
	l, ok := hexVal(lo)
	if !ok {
		return 0, false
	}
	return h<<4 | l, true
}
