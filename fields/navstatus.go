package fields

import "github.com/vesselwatch/aisdecode/nmea"

// NavigationStatus is the 4-bit navigational status enum (ITU-R M.1371
// table 45). Values 0-15 are all structurally legal; 15 and a handful of
// others are "not defined"/reserved but still decode, per spec's
// Unknown(raw) fallback policy for non-structural enums.
type NavigationStatus struct {
	Known bool
	Value NavigationStatusValue
	Raw   uint8
}

// NavigationStatusValue names the defined navigation-status codes.
type NavigationStatusValue uint8

const (
	UnderWayUsingEngine NavigationStatusValue = iota
	AtAnchor
	NotUnderCommand
	RestrictedManoeuvrability
	ConstrainedByDraught
	Moored
	Aground
	EngagedInFishing
	UnderWaySailing
	ReservedForHighSpeedCraft
	ReservedForWingInGround
	PowerDrivenVesselTowingAstern
	PowerDrivenVesselPushingAheadOrTowingAlongside
	ReservedForFutureUse
	AisSartOrMobOrEpirb
	NotDefined
)

// ReadNavigationStatus reads the 4-bit navigation status field.
func ReadNavigationStatus(r *nmea.BitReader) (NavigationStatus, error) {
	raw, err := r.U(4)
	if err != nil {
		return NavigationStatus{}, err
	}
	if raw <= uint32(NotDefined) {
		return NavigationStatus{Known: true, Value: NavigationStatusValue(raw), Raw: uint8(raw)}, nil
	}
	return NavigationStatus{Raw: uint8(raw)}, nil
}
