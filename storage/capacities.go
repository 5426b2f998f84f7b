// Package storage implements the C8 storage-tier abstraction: three
// interchangeable backings for the variable-length text fields decoded
// out of AIS payloads (vessel name, call sign, destination, free text),
// selected at compile time by Go build tag rather than at runtime.
// Grounded on doismellburning-samoyed/src/deviceid.go's tocalls.yaml
// loading pattern (a static lookup table shipped as data, parsed once at
// package init) applied here to per-field character capacities instead
// of APRS vendor tables.
package storage

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed capacities.yaml
var capacitiesYAML []byte

type fieldCapacity struct {
	Name     string `yaml:"name"`
	MaxChars int    `yaml:"max_chars"`
}

type capacitiesFile struct {
	Fields []fieldCapacity `yaml:"fields"`
}

var capacities map[string]int

func init() {
	var parsed capacitiesFile
	if err := yaml.Unmarshal(capacitiesYAML, &parsed); err != nil {
		panic(fmt.Sprintf("storage: malformed capacities.yaml: %s", err))
	}
	capacities = make(map[string]int, len(parsed.Fields))
	for _, f := range parsed.Fields {
		capacities[f.Name] = f.MaxChars
	}
}

// Capacity returns the maximum character count allowed for a named
// field (e.g. "vessel_name", "call_sign"), or 0 if the field has no
// tabulated capacity. The default tier never consults this; boundedalloc
// and noalloc size their buffers from it.
func Capacity(field string) int {
	return capacities[field]
}

// FieldNames used by the known text-bearing fields, kept as
// constants so callers don't retype the YAML keys.
const (
	FieldVesselName         = "vessel_name"
	FieldCallSign           = "call_sign"
	FieldDestination        = "destination"
	FieldVendorID           = "vendor_id"
	FieldSafetyRelatedText  = "safety_related_text"
	FieldAidName            = "aid_name"
)
