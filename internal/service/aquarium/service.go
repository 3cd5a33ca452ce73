package aquarium

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/oshokin/aquarium/internal/domain/aquarium"
	"github.com/oshokin/aquarium/internal/logger"
	repo "github.com/oshokin/aquarium/internal/repository/aquarium"
)

// Service encapsulates the aquarium business logic and persistence orchestration.
type Service struct {
	// repo handles persistent storage of aquariums and fish.
	repo repo.Repository
	// locks serializes writers per aquarium.
	locks *keyedMutex
}

// errRepositoryRequired is returned when the service is built without storage.
var errRepositoryRequired = errors.New("repository is required")

// NewService creates a service backed by the provided repository.
func NewService(repository repo.Repository) (*Service, error) {
	if repository == nil {
		return nil, errRepositoryRequired
	}

	return &Service{
		repo:  repository,
		locks: newKeyedMutex(),
	}, nil
}

// AquariumInput carries optional aquarium fields for create and update calls.
// Nil fields keep their default (create) or current (update) value.
type AquariumInput struct {
	// Capacity is the maximum number of fish.
	Capacity *int
	// Clearness is the water cleanliness.
	Clearness *int
	// Temperature is the water temperature.
	Temperature *int
}

// apply copies the set fields onto a.
func (in *AquariumInput) apply(a *domain.Aquarium) {
	if in.Capacity != nil {
		a.Capacity = *in.Capacity
	}

	if in.Clearness != nil {
		a.Clearness = *in.Clearness
	}

	if in.Temperature != nil {
		a.Temperature = *in.Temperature
	}
}

// FishInput carries optional fish fields for update calls.
type FishInput struct {
	// Name is the fish name.
	Name *string
	// Species is the fish species.
	Species *domain.Species
	// Hunger is the hunger score.
	Hunger *int
	// Health is the health score.
	Health *int
	// Age is the age in days.
	Age *int
}

// apply copies the set fields onto f.
func (in *FishInput) apply(f *domain.Fish) {
	if in.Name != nil {
		f.Name = *in.Name
	}

	if in.Species != nil {
		f.Species = *in.Species
	}

	if in.Hunger != nil {
		f.Hunger = *in.Hunger
	}

	if in.Health != nil {
		f.Health = *in.Health
	}

	if in.Age != nil {
		f.Age = *in.Age
	}
}

// CreateAquarium stores a new aquarium. Capacity is required.
func (s *Service) CreateAquarium(ctx context.Context, input AquariumInput) (*domain.Aquarium, error) {
	if input.Capacity == nil {
		return nil, domain.NewValidationError("capacity", "is required")
	}

	a, err := domain.NewAquarium(*input.Capacity)
	if err != nil {
		return nil, err
	}

	input.apply(a)

	if err = a.Validate(); err != nil {
		return nil, err
	}

	if err = s.repo.CreateAquarium(ctx, a); err != nil {
		return nil, fmt.Errorf("create aquarium: %w", err)
	}

	logger.InfoKV(ctx, "Aquarium created", "aquarium_id", a.ID, "capacity", a.Capacity)

	return a, nil
}

// ListAquariums returns every aquarium with its fish.
func (s *Service) ListAquariums(ctx context.Context) ([]*domain.Aquarium, error) {
	aquariums, err := s.repo.ListAquariums(ctx)
	if err != nil {
		return nil, fmt.Errorf("list aquariums: %w", err)
	}

	return aquariums, nil
}

// GetAquarium returns a single aquarium with its fish.
func (s *Service) GetAquarium(ctx context.Context, id int64) (*domain.Aquarium, error) {
	a, err := s.repo.GetAquarium(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get aquarium: %w", err)
	}

	return a, nil
}

// UpdateAquarium changes capacity, clearness or temperature. Fish are untouched.
func (s *Service) UpdateAquarium(ctx context.Context, id int64, input AquariumInput) (*domain.Aquarium, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	var result *domain.Aquarium

	err := s.repo.InTx(ctx, func(tx repo.Repository) error {
		a, err := tx.GetAquarium(ctx, id)
		if err != nil {
			return err
		}

		input.apply(a)

		if err = a.Validate(); err != nil {
			return err
		}

		if err = tx.UpdateAquarium(ctx, a); err != nil {
			return err
		}

		result = a

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update aquarium: %w", err)
	}

	logger.InfoKV(ctx, "Aquarium updated", "aquarium_id", id)

	return result, nil
}

// DeleteAquarium removes the aquarium together with its fish.
func (s *Service) DeleteAquarium(ctx context.Context, id int64) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	if err := s.repo.DeleteAquarium(ctx, id); err != nil {
		return fmt.Errorf("delete aquarium: %w", err)
	}

	logger.InfoKV(ctx, "Aquarium deleted", "aquarium_id", id)

	return nil
}

// AddFish creates a new fish in the aquarium unless it is already full.
func (s *Service) AddFish(
	ctx context.Context,
	aquariumID int64,
	name string,
	species domain.Species,
) (*domain.Fish, error) {
	fish, err := domain.NewFish(aquariumID, name, species)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(aquariumID)
	defer unlock()

	err = s.repo.InTx(ctx, func(tx repo.Repository) error {
		a, err := tx.GetAquariumWithoutFish(ctx, aquariumID)
		if err != nil {
			return err
		}

		population, err := tx.CountFish(ctx, aquariumID)
		if err != nil {
			return err
		}

		if a.IsFull(population) {
			return domain.ErrCapacityExceeded
		}

		return tx.CreateFish(ctx, fish)
	})
	if err != nil {
		return nil, fmt.Errorf("add fish: %w", err)
	}

	logger.InfoKV(ctx, "Fish added", "aquarium_id", aquariumID, "fish_id", fish.ID, "species", fish.Species)

	return fish, nil
}

// Clean restores the aquarium water to full clearness.
func (s *Service) Clean(ctx context.Context, aquariumID int64) (*domain.Aquarium, error) {
	unlock := s.locks.Lock(aquariumID)
	defer unlock()

	var result *domain.Aquarium

	err := s.repo.InTx(ctx, func(tx repo.Repository) error {
		a, err := tx.GetAquarium(ctx, aquariumID)
		if err != nil {
			return err
		}

		a.Clean()

		if err = tx.UpdateAquarium(ctx, a); err != nil {
			return err
		}

		result = a

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("clean aquarium: %w", err)
	}

	logger.InfoKV(ctx, "Aquarium cleaned", "aquarium_id", aquariumID)

	return result, nil
}

// ListFish returns every fish.
func (s *Service) ListFish(ctx context.Context) ([]*domain.Fish, error) {
	fishes, err := s.repo.ListFish(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fish: %w", err)
	}

	return fishes, nil
}

// GetFish returns a single fish.
func (s *Service) GetFish(ctx context.Context, id int64) (*domain.Fish, error) {
	f, err := s.repo.GetFish(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get fish: %w", err)
	}

	return f, nil
}

// UpdateFish changes the name, species or scores of a fish.
// The owning aquarium cannot be changed.
func (s *Service) UpdateFish(ctx context.Context, id int64, input FishInput) (*domain.Fish, error) {
	var result *domain.Fish

	err := s.withFishOwnerLock(ctx, id, func(tx repo.Repository, f *domain.Fish) error {
		input.apply(f)

		if err := f.Validate(); err != nil {
			return err
		}

		if err := tx.UpdateFish(ctx, f); err != nil {
			return err
		}

		result = f

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update fish: %w", err)
	}

	logger.InfoKV(ctx, "Fish updated", "fish_id", id)

	return result, nil
}

// DeleteFish removes a single fish.
func (s *Service) DeleteFish(ctx context.Context, id int64) error {
	err := s.withFishOwnerLock(ctx, id, func(tx repo.Repository, _ *domain.Fish) error {
		return tx.DeleteFish(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete fish: %w", err)
	}

	logger.InfoKV(ctx, "Fish deleted", "fish_id", id)

	return nil
}

// withFishOwnerLock locks the aquarium owning the fish and runs fn in a
// transaction with a fresh copy of the fish.
func (s *Service) withFishOwnerLock(
	ctx context.Context,
	id int64,
	fn func(tx repo.Repository, f *domain.Fish) error,
) error {
	f, err := s.repo.GetFish(ctx, id)
	if err != nil {
		return err
	}

	unlock := s.locks.Lock(f.AquariumID)
	defer unlock()

	return s.repo.InTx(ctx, func(tx repo.Repository) error {
		// Reload under the lock: a stats pass may have changed or removed it.
		current, err := tx.GetFish(ctx, id)
		if err != nil {
			return err
		}

		return fn(tx, current)
	})
}
