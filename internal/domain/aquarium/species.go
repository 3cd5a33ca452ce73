package aquarium

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Species identifies the kind of a fish.
type Species string

const (
	// SpeciesGoldfish is the goldfish species.
	SpeciesGoldfish Species = "GOLDFISH"
	// SpeciesClownfish is the clownfish species.
	SpeciesClownfish Species = "CLOWNFISH"
)

//nolint:gochecknoglobals // Lookup table for display labels.
var speciesLabels = map[Species]string{
	SpeciesGoldfish:  "Goldfish",
	SpeciesClownfish: "Clownfish",
}

// ParseSpecies converts user input into a known Species, ignoring case.
func ParseSpecies(s string) (Species, error) {
	species := Species(strings.ToUpper(strings.TrimSpace(s)))
	if !species.IsValid() {
		return "", NewValidationError("species", fmt.Sprintf("unknown species %q", s))
	}

	return species, nil
}

// IsValid reports whether the species is one of the known values.
func (s Species) IsValid() bool {
	_, ok := speciesLabels[s]

	return ok
}

// Label returns the human-readable name of the species.
func (s Species) Label() string {
	return speciesLabels[s]
}

// String implements fmt.Stringer.
func (s Species) String() string {
	return string(s)
}

// UnmarshalJSON accepts species names in any case and rejects unknown ones.
func (s *Species) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return NewValidationError("species", "must be a string")
	}

	parsed, err := ParseSpecies(raw)
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}
