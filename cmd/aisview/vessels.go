package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/vesselwatch/aisdecode/aismsg"
	"github.com/vesselwatch/aisdecode/fields"
)

// Vessel is one tracked MMSI's last-known state, the fields a live
// operator view cares about. Grounded on
// Regentag-go1090/mode_s/aircraft.go's Aircraft struct, applied to
// vessels instead of aircraft.
type Vessel struct {
	MMSI      fields.MMSI
	Name      string
	Latitude  *float64
	Longitude *float64
	SOG       *float64
	COG       *float64
	Seen      time.Time
}

// Tracker holds the set of recently-seen vessels, evicting an entry
// once it's gone stale for TTL. Grounded on the same file's Sky type,
// with patrickmn/go-cache doing the TTL bookkeeping Sky did by hand
// with a time.Time field and a manual sweep.
type Tracker struct {
	cache *cache.Cache
}

// NewTracker creates a Tracker whose entries expire after ttl of
// inactivity, swept every ttl/2.
func NewTracker(ttl time.Duration) *Tracker {
	return &Tracker{cache: cache.New(ttl, ttl/2)}
}

// Update folds a decoded message into the tracked vessel state it
// applies to, creating the entry if this is the first time the MMSI has
// been seen. Vessel messages carrying no position/name data (e.g. a
// type 24 Part B report) still refresh Seen; message types that mmsiOf
// does not list (e.g. acknowledgements) are ignored.
func (t *Tracker) Update(msg aismsg.Message) {
	mmsi, ok := mmsiOf(msg)
	if !ok {
		return
	}
	key := mmsiKey(mmsi)
	v, found := t.cache.Get(key)
	vessel, _ := v.(*Vessel)
	if !found || vessel == nil {
		vessel = &Vessel{MMSI: mmsi}
	}
	applyToVessel(vessel, msg)
	vessel.Seen = time.Now()
	t.cache.SetDefault(key, vessel)
}

// Vessels returns every currently-tracked vessel, sorted by MMSI for
// stable display ordering.
func (t *Tracker) Vessels() []*Vessel {
	items := t.cache.Items()
	out := make([]*Vessel, 0, len(items))
	for _, item := range items {
		if v, ok := item.Object.(*Vessel); ok {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MMSI < out[j].MMSI })
	return out
}

// Count reports how many vessels are currently tracked.
func (t *Tracker) Count() int {
	return t.cache.ItemCount()
}

func mmsiKey(mmsi fields.MMSI) string {
	return fmt.Sprint(uint32(mmsi))
}

func mmsiOf(msg aismsg.Message) (fields.MMSI, bool) {
	switch m := msg.(type) {
	case *aismsg.PositionReport:
		return m.MMSI, true
	case *aismsg.SARAircraftPositionReport:
		return m.MMSI, true
	case *aismsg.StaticAndVoyageData:
		return m.MMSI, true
	case *aismsg.StandardClassBPositionReport:
		return m.MMSI, true
	case *aismsg.ExtendedClassBPositionReport:
		return m.MMSI, true
	case *aismsg.AidToNavigationReport:
		return m.MMSI, true
	case *aismsg.StaticDataReportPartA:
		return m.MMSI, true
	case *aismsg.StaticDataReportPartB:
		return m.MMSI, true
	case *aismsg.LongRangeBroadcastMessage:
		return m.MMSI, true
	default:
		return 0, false
	}
}

func applyToVessel(v *Vessel, msg aismsg.Message) {
	switch m := msg.(type) {
	case *aismsg.PositionReport:
		v.Latitude, v.Longitude = m.Latitude, m.Longitude
		v.SOG, v.COG = m.SpeedOverGround, m.CourseOverGround
	case *aismsg.SARAircraftPositionReport:
		v.Latitude, v.Longitude = m.Latitude, m.Longitude
		v.SOG, v.COG = m.SpeedOverGround, m.CourseOverGround
	case *aismsg.StandardClassBPositionReport:
		v.Latitude, v.Longitude = m.Latitude, m.Longitude
		v.SOG, v.COG = m.SpeedOverGround, m.CourseOverGround
	case *aismsg.ExtendedClassBPositionReport:
		v.Latitude, v.Longitude = m.Latitude, m.Longitude
		v.SOG, v.COG = m.SpeedOverGround, m.CourseOverGround
		v.Name = m.Name.String()
	case *aismsg.StaticAndVoyageData:
		v.Name = m.Name.String()
	case *aismsg.AidToNavigationReport:
		v.Latitude, v.Longitude = m.Latitude, m.Longitude
		v.Name = m.Name.String()
	case *aismsg.StaticDataReportPartA:
		v.Name = m.Name.String()
	case *aismsg.LongRangeBroadcastMessage:
		v.Latitude, v.Longitude = m.Latitude, m.Longitude
		v.SOG = m.SpeedOverGround
	}
}
