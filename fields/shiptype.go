package fields

import "github.com/vesselwatch/aisdecode/nmea"

// ShipTypeCategory is the broad category a ship-type code falls into
// (ITU-R M.1371 table 41 column groupings).
type ShipTypeCategory uint8

const (
	ShipCategoryNotAvailable ShipTypeCategory = iota
	ShipCategoryReserved
	ShipCategoryWingInGround
	ShipCategoryFishing
	ShipCategoryTowing
	ShipCategoryTowingLarge
	ShipCategoryDredgingOrUnderwaterOps
	ShipCategoryDivingOps
	ShipCategoryMilitaryOps
	ShipCategorySailing
	ShipCategoryPleasureCraft
	ShipCategoryHighSpeedCraft
	ShipCategoryPilotVessel
	ShipCategorySearchAndRescue
	ShipCategoryTug
	ShipCategoryPortTender
	ShipCategoryAntiPollutionEquipment
	ShipCategoryLawEnforcement
	ShipCategoryMedicalTransport
	ShipCategoryNoncombatant
	ShipCategoryPassenger
	ShipCategoryCargo
	ShipCategoryTanker
	ShipCategoryOther
)

// HazardCategory is the cargo-hazard sub-classification carried by the
// WIG/HSC/Passenger/Cargo/Tanker/Other groups' last digit.
type HazardCategory uint8

const (
	HazardNone HazardCategory = iota
	HazardAllShips
	HazardCategoryA
	HazardCategoryB
	HazardCategoryC
	HazardCategoryD
	HazardReserved
	HazardNoAdditionalInformation
)

// ShipType is the decoded 8-bit ship-and-cargo-type field.
type ShipType struct {
	Category ShipTypeCategory
	Hazard   HazardCategory
	Raw      uint8
}

// ReadShipType reads the 8-bit ship-type field.
func ReadShipType(r *nmea.BitReader) (ShipType, error) {
	raw, err := r.U(8)
	if err != nil {
		return ShipType{}, err
	}
	return classifyShipType(uint8(raw)), nil
}

// ClassifyShipType applies the same ITU-R M.1371 table 41 classification
// ReadShipType uses, for callers (e.g. type 5's tolerant-truncation
// reader) that have already pulled the raw byte off the bit cursor
// themselves.
func ClassifyShipType(raw uint8) ShipType {
	return classifyShipType(raw)
}

func classifyShipType(raw uint8) ShipType {
	switch {
	case raw == 0:
		return ShipType{Category: ShipCategoryNotAvailable, Raw: raw}
	case raw <= 19:
		return ShipType{Category: ShipCategoryReserved, Raw: raw}
	case raw <= 29:
		return hazardGroupReservedTail(raw, 20, ShipCategoryWingInGround)
	case raw == 30:
		return ShipType{Category: ShipCategoryFishing, Raw: raw}
	case raw == 31:
		return ShipType{Category: ShipCategoryTowing, Raw: raw}
	case raw == 32:
		return ShipType{Category: ShipCategoryTowingLarge, Raw: raw}
	case raw == 33:
		return ShipType{Category: ShipCategoryDredgingOrUnderwaterOps, Raw: raw}
	case raw == 34:
		return ShipType{Category: ShipCategoryDivingOps, Raw: raw}
	case raw == 35:
		return ShipType{Category: ShipCategoryMilitaryOps, Raw: raw}
	case raw == 36:
		return ShipType{Category: ShipCategorySailing, Raw: raw}
	case raw == 37:
		return ShipType{Category: ShipCategoryPleasureCraft, Raw: raw}
	case raw <= 39:
		return ShipType{Category: ShipCategoryReserved, Raw: raw}
	case raw <= 49:
		return hazardGroupWithInfoTail(raw, 40, ShipCategoryHighSpeedCraft)
	case raw == 50:
		return ShipType{Category: ShipCategoryPilotVessel, Raw: raw}
	case raw == 51:
		return ShipType{Category: ShipCategorySearchAndRescue, Raw: raw}
	case raw == 52:
		return ShipType{Category: ShipCategoryTug, Raw: raw}
	case raw == 53:
		return ShipType{Category: ShipCategoryPortTender, Raw: raw}
	case raw == 54:
		return ShipType{Category: ShipCategoryAntiPollutionEquipment, Raw: raw}
	case raw == 55:
		return ShipType{Category: ShipCategoryLawEnforcement, Raw: raw}
	case raw <= 57:
		return ShipType{Category: ShipCategoryReserved, Raw: raw}
	case raw == 58:
		return ShipType{Category: ShipCategoryMedicalTransport, Raw: raw}
	case raw == 59:
		return ShipType{Category: ShipCategoryNoncombatant, Raw: raw}
	case raw <= 69:
		return hazardGroupWithInfoTail(raw, 60, ShipCategoryPassenger)
	case raw <= 79:
		return hazardGroupWithInfoTail(raw, 70, ShipCategoryCargo)
	case raw <= 89:
		return hazardGroupWithInfoTail(raw, 80, ShipCategoryTanker)
	default:
		return hazardGroupWithInfoTail(raw, 90, ShipCategoryOther)
	}
}

// hazardGroupWithInfoTail classifies a code whose ten-wide group ends
// with an explicit "no additional information" slot at offset 9
// (40-49, 60-69, 70-79, 80-89, 90-99).
func hazardGroupWithInfoTail(raw, base uint8, cat ShipTypeCategory) ShipType {
	switch raw - base {
	case 0:
		return ShipType{Category: cat, Hazard: HazardAllShips, Raw: raw}
	case 1:
		return ShipType{Category: cat, Hazard: HazardCategoryA, Raw: raw}
	case 2:
		return ShipType{Category: cat, Hazard: HazardCategoryB, Raw: raw}
	case 3:
		return ShipType{Category: cat, Hazard: HazardCategoryC, Raw: raw}
	case 4:
		return ShipType{Category: cat, Hazard: HazardCategoryD, Raw: raw}
	case 9:
		return ShipType{Category: cat, Hazard: HazardNoAdditionalInformation, Raw: raw}
	default:
		return ShipType{Category: cat, Hazard: HazardReserved, Raw: raw}
	}
}

// hazardGroupReservedTail classifies the WIG group (20-29), whose tail
// offsets 5-9 are plain reserved rather than "no additional information".
func hazardGroupReservedTail(raw, base uint8, cat ShipTypeCategory) ShipType {
	switch raw - base {
	case 0:
		return ShipType{Category: cat, Hazard: HazardAllShips, Raw: raw}
	case 1:
		return ShipType{Category: cat, Hazard: HazardCategoryA, Raw: raw}
	case 2:
		return ShipType{Category: cat, Hazard: HazardCategoryB, Raw: raw}
	case 3:
		return ShipType{Category: cat, Hazard: HazardCategoryC, Raw: raw}
	case 4:
		return ShipType{Category: cat, Hazard: HazardCategoryD, Raw: raw}
	default:
		return ShipType{Category: cat, Hazard: HazardReserved, Raw: raw}
	}
}
