// Package ttlreassembler layers a time-bounded eviction policy on top
// of parser.Parser's otherwise timer-free fragment reassembly, per
// spec §9's note that "callers that need timeouts layer them outside"
// the pure core. Grounded on Regentag-go1090/mode_s/decoder.go's
// icao_cache: a patrickmn/go-cache instance with OnEvicted wired back
// into the thing it's tracking, applied here to fragment-reassembly
// keys instead of recently-seen transponder addresses.
package ttlreassembler

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/vesselwatch/aisdecode/nmea"
	"github.com/vesselwatch/aisdecode/parser"
)

// DefaultTTL is how long a pending fragment group is kept before being
// dropped for inactivity, matching the teacher's MODES_ICAO_CACHE_TTL
// role (a guess at a reasonable quiet period, not a spec-mandated
// value).
const DefaultTTL = 30 * time.Second

// Wrapper wraps a *parser.Parser with a TTL sweep: a fragment group
// that receives no new fragment within TTL is evicted from the
// underlying parser so it can never complete with stale fragments.
type Wrapper struct {
	p       *parser.Parser
	keys    *cache.Cache
	maxPend int
}

// New wraps a freshly created unbounded parser.Parser with a TTL sweep.
func New(ttl time.Duration) *Wrapper {
	return newWrapper(parser.New(), ttl)
}

// NewWithMaxPending wraps a parser.Parser whose underlying reassembler
// caps fan-in at maxPending, the no-allocator tier's bounded mode.
func NewWithMaxPending(maxPending int, ttl time.Duration) *Wrapper {
	return newWrapper(parser.NewWithMaxPending(maxPending), ttl)
}

func newWrapper(p *parser.Parser, ttl time.Duration) *Wrapper {
	w := &Wrapper{p: p, keys: cache.New(ttl, ttl/2)}
	w.keys.OnEvicted(func(k string, v interface{}) {
		key, ok := v.(nmea.FragmentKey)
		if !ok {
			return
		}
		w.p.EvictKey(key)
	})
	return w
}

// Parse delegates to the wrapped Parser, then refreshes or clears the
// TTL entry for the sentence's fragment key: a completed or
// single-sentence group has nothing left to evict, while an Incomplete
// result's key is (re)armed for TTL eviction.
func (w *Wrapper) Parse(line []byte, decodeMessage bool) (parser.Result, *parser.Error) {
	res, err := w.p.Parse(line, decodeMessage)
	if err != nil {
		return res, err
	}
	if res.Sentence.Parts == 1 {
		return res, nil
	}
	key := nmea.KeyOf(res.Sentence)
	if res.Complete {
		w.keys.Delete(cacheKey(key))
	} else {
		w.keys.SetDefault(cacheKey(key), key)
	}
	return res, nil
}

// Pending reports how many fragment groups the underlying parser
// currently has in progress (its own Pending count, not the number of
// keys armed in the TTL cache).
func (w *Wrapper) Pending() int {
	return w.p.Pending()
}

func cacheKey(k nmea.FragmentKey) string {
	return string([]byte{k.MessageID, k.Channel})
}
