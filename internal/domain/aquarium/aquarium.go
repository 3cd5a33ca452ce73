package aquarium

const (
	// MaxClearness is the clearness of freshly cleaned water.
	MaxClearness = 100
	// LowClearness is the threshold at or below which fish lose health.
	LowClearness = 30
	// DefaultTemperature is the water temperature of a new aquarium.
	DefaultTemperature = 30
	// MinTemperature is the lowest accepted water temperature (absolute zero).
	MinTemperature = -273
	// MaxCapacity bounds the capacity so feeding arithmetic stays within int64.
	MaxCapacity = 1_000_000
)

// Aquarium is a tank that owns a bounded number of fish.
type Aquarium struct {
	// ID is the storage identifier assigned on creation.
	ID int64 `json:"id"`
	// Capacity is the maximum number of fish accepted by AddFish.
	Capacity int `json:"capacity"`
	// Clearness is the water cleanliness, 0 (filthy) to 100 (pristine).
	Clearness int `json:"clearness"`
	// Temperature is the water temperature in degrees Celsius.
	Temperature int `json:"temperature"`
	// Fish are the fish currently living in the aquarium.
	Fish []*Fish `json:"fishes"`
}

// NewAquarium creates an aquarium with clean water and the default temperature.
func NewAquarium(capacity int) (*Aquarium, error) {
	a := &Aquarium{
		Capacity:    capacity,
		Clearness:   MaxClearness,
		Temperature: DefaultTemperature,
		Fish:        []*Fish{},
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate checks the aquarium fields against their allowed ranges.
func (a *Aquarium) Validate() error {
	if a.Capacity <= 0 || a.Capacity > MaxCapacity {
		return NewValidationError("capacity", "must be between 1 and 1000000")
	}

	if a.Clearness < 0 || a.Clearness > MaxClearness {
		return NewValidationError("clearness", "must be between 0 and 100")
	}

	if a.Temperature < MinTemperature {
		return NewValidationError("temperature", "must not be below -273")
	}

	return nil
}

// IsFull reports whether another fish would exceed the capacity
// given the current population.
func (a *Aquarium) IsFull(population int) bool {
	return population >= a.Capacity
}

// Dirty lowers the clearness by quantity, never below zero.
func (a *Aquarium) Dirty(quantity int) {
	a.Clearness = max(0, a.Clearness-quantity)
}

// Clean restores the water to full clearness.
func (a *Aquarium) Clean() {
	a.Clearness = MaxClearness
}

// HasLowClearness reports whether the water is dirty enough to hurt fish.
func (a *Aquarium) HasLowClearness() bool {
	return a.Clearness <= LowClearness
}

// RemoveFish drops the fish with the given id from the owned collection.
func (a *Aquarium) RemoveFish(id int64) {
	kept := a.Fish[:0]

	for _, f := range a.Fish {
		if f.ID != id {
			kept = append(kept, f)
		}
	}

	clear(a.Fish[len(kept):])
	a.Fish = kept
}

// Clone returns a deep copy of the aquarium including its fish.
func (a *Aquarium) Clone() *Aquarium {
	if a == nil {
		return nil
	}

	cloned := *a
	cloned.Fish = make([]*Fish, 0, len(a.Fish))

	for _, f := range a.Fish {
		cloned.Fish = append(cloned.Fish, f.Clone())
	}

	return &cloned
}
