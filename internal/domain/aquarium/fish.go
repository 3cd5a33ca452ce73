package aquarium

import "strings"

const (
	// MaxHunger is the hunger of a starving fish.
	MaxHunger = 100
	// MaxHealth is the health of a perfectly healthy fish.
	MaxHealth = 100
	// WellFedHunger is the hunger at or below which a fish recovers health.
	WellFedHunger = 30
	// StarvingHunger is the hunger above which a fish loses health.
	StarvingHunger = 70
)

// Fish lives in exactly one aquarium, referenced by AquariumID.
type Fish struct {
	// ID is the storage identifier assigned on creation.
	ID int64 `json:"id"`
	// Name is a free-text name given by the owner.
	Name string `json:"name"`
	// Species is the kind of fish.
	Species Species `json:"species"`
	// Hunger goes from 0 (fully fed) to 100 (starving).
	Hunger int `json:"hunger"`
	// Health goes from 0 (dead) to 100.
	Health int `json:"health"`
	// Age is the number of simulated days the fish has lived.
	Age int `json:"age"`
	// AquariumID points to the owning aquarium.
	AquariumID int64 `json:"aquarium_id"`
}

// NewFish creates a fed, healthy, newborn fish for the given aquarium.
func NewFish(aquariumID int64, name string, species Species) (*Fish, error) {
	f := &Fish{
		Name:       strings.TrimSpace(name),
		Species:    species,
		Hunger:     0,
		Health:     MaxHealth,
		Age:        0,
		AquariumID: aquariumID,
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// Validate checks the fish fields against their allowed ranges.
func (f *Fish) Validate() error {
	switch {
	case f.Name == "":
		return NewValidationError("name", "is required")
	case !f.Species.IsValid():
		return NewValidationError("species", "unknown species")
	case f.Hunger < 0 || f.Hunger > MaxHunger:
		return NewValidationError("hunger", "must be between 0 and 100")
	case f.Health < 0 || f.Health > MaxHealth:
		return NewValidationError("health", "must be between 0 and 100")
	case f.Age < 0:
		return NewValidationError("age", "must not be negative")
	}

	return nil
}

// Feed lowers the hunger by quantity, never below zero.
func (f *Fish) Feed(quantity int) {
	f.Hunger = max(0, f.Hunger-quantity)
}

// IncreaseHunger makes the fish one point hungrier, up to MaxHunger.
func (f *Fish) IncreaseHunger() {
	f.Hunger = min(MaxHunger, f.Hunger+1)
}

// UpdateHealth lets a well fed fish recover and a starving fish suffer.
// Hunger between the two thresholds leaves health unchanged.
func (f *Fish) UpdateHealth() {
	switch {
	case f.Hunger <= WellFedHunger:
		f.Health = min(MaxHealth, f.Health+1)
	case f.Hunger > StarvingHunger:
		f.DecreaseHealth()
	}
}

// DecreaseHealth takes one point of health, never below zero.
func (f *Fish) DecreaseHealth() {
	f.Health = max(0, f.Health-1)
}

// IncreaseAge ages the fish by one day.
func (f *Fish) IncreaseAge() {
	f.Age++
}

// IsDead reports whether the fish has no health left.
func (f *Fish) IsDead() bool {
	return f.Health <= 0
}

// Clone returns a copy of the fish.
func (f *Fish) Clone() *Fish {
	if f == nil {
		return nil
	}

	cloned := *f

	return &cloned
}
