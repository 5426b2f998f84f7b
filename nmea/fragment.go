package nmea

// Fragment reassembly: joins multi-part !AIVDM/!AIVDO sentences keyed by
// (message id, channel). Grounded on the teacher's MessageAssembler /
// incompleteMessage (nmeais/message.go): a fixed-capacity set of pending
// slots, a "have" bitfield, a "missing" counter, and replace-on-first-
// fragment semantics. Adapted to key by (messageID, channel) pairs
// instead of a bare 0-10 SMID, so concurrent channel-A/channel-B groups
// sharing a message-id token don't collide (spec §4.4 "Keying rationale"),
// and to bound the number of distinct pending keys explicitly rather than
// via a fixed [11]-element array, since the key space is no longer small.

// FragmentKey names a pending reassembly: the integer message-id carried
// in multi-fragment sentences, plus the channel they arrived on.
type FragmentKey struct {
	MessageID uint8
	Channel   byte // 0 means "no channel field"
}

// KeyOf computes the FragmentKey a sentence belongs to, exported so
// callers layering eviction policy on top of a Reassembler (e.g.
// ttlreassembler) can track the same keys without duplicating the
// message-id/channel extraction rule.
func KeyOf(s Sentence) FragmentKey {
	k := FragmentKey{}
	if s.HasMessageID {
		k.MessageID = s.MessageID
	}
	if s.HasChannel {
		k.Channel = s.Channel
	}
	return k
}

func keyOf(s Sentence) FragmentKey { return KeyOf(s) }

// fragmentBuffer is the ordered accumulator for one pending multi-part
// message: which fragment numbers have arrived, and their bits, kept in
// numeric order so concatenation never needs a sort.
type fragmentBuffer struct {
	parts    uint8
	bits     []*BitBuffer // index i holds fragment number i+1; nil if not yet received
	received uint8        // count of non-nil entries
}

func newFragmentBuffer(parts uint8) *fragmentBuffer {
	return &fragmentBuffer{parts: parts, bits: make([]*BitBuffer, parts)}
}

func (fb *fragmentBuffer) put(fragNum uint8, bits *BitBuffer) {
	idx := int(fragNum) - 1
	if fb.bits[idx] == nil {
		fb.received++
	}
	fb.bits[idx] = bits // duplicate fragment numbers replace the prior value
}

func (fb *fragmentBuffer) complete() bool {
	return fb.received == fb.parts
}

func (fb *fragmentBuffer) concat() *BitBuffer {
	total := 0
	for _, b := range fb.bits {
		total += b.Len()
	}
	joined := NewBitBuffer(total)
	for _, b := range fb.bits {
		joined.Append(b)
	}
	return joined
}

// Reassembler holds pending multi-part messages for a single parser.
// Reassembly is strictly single-threaded: it must not be shared across
// goroutines without external locking (spec §5).
type Reassembler struct {
	pending    map[FragmentKey]*fragmentBuffer
	maxPending int
}

// NewReassembler creates a Reassembler whose number of distinct pending
// keys is capped at maxPending (the no-allocator tier's fan-in limit;
// spec recommends >=4). A maxPending of 0 means unbounded (full-allocator
// tier).
func NewReassembler(maxPending int) *Reassembler {
	return &Reassembler{
		pending:    make(map[FragmentKey]*fragmentBuffer),
		maxPending: maxPending,
	}
}

// Accept takes a parsed, checksum-valid Sentence and returns the
// concatenated bits of a completed message, or nil if the group isn't
// complete yet. Gaps (a new first-fragment replacing an in-progress
// group, or an out-of-range fragment number) silently discard the old
// buffer per spec §4.4 -- they are not reported as errors.
func (r *Reassembler) Accept(s Sentence) (*BitBuffer, *Error) {
	if s.Parts == 1 {
		return s.Bits, nil
	}
	key := keyOf(s)
	fb, ok := r.pending[key]
	if s.FragmentNum == 1 {
		fb = newFragmentBuffer(s.Parts)
		if !ok && r.maxPending > 0 && len(r.pending) >= r.maxPending {
			return nil, TooManyPendingFragmentsError(r.maxPending)
		}
		r.pending[key] = fb
	} else if !ok || fb.parts != s.Parts {
		// A middle/last fragment with no matching group in progress, or
		// one whose declared part count changed mid-stream: there's no
		// group to complete, so just drop whatever we had and wait for a
		// fresh first fragment.
		delete(r.pending, key)
		return nil, nil
	}
	fb.put(s.FragmentNum, s.Bits)
	if fb.complete() {
		delete(r.pending, key)
		return fb.concat(), nil
	}
	return nil, nil
}

// Reject discards any in-progress group for the sentence's key, used when
// a sentence with the same key fails its checksum: a corrupted fragment
// should not silently complete a group with missing/incorrect bits later.
func (r *Reassembler) Reject(s Sentence) {
	if s.Parts > 1 {
		delete(r.pending, keyOf(s))
	}
}

// Pending reports how many fragment groups are currently in progress.
func (r *Reassembler) Pending() int {
	return len(r.pending)
}

// Evict drops any in-progress group for key, used by callers that layer
// a time-based eviction policy on top of the reassembler (spec §9
// "Callers that need timeouts layer them outside").
func (r *Reassembler) Evict(key FragmentKey) {
	delete(r.pending, key)
}
