package aquarium

import (
	"context"
	"fmt"

	domain "github.com/oshokin/aquarium/internal/domain/aquarium"
	"github.com/oshokin/aquarium/internal/logger"
	repo "github.com/oshokin/aquarium/internal/repository/aquarium"
)

// MaxFoodQuantity is enough food to fully feed a full aquarium of starving fish.
const MaxFoodQuantity = 100

// FeedingResult describes how a portion of food was spread over the fish.
type FeedingResult struct {
	// HungerSatisfiedPerFish is the hunger reduction applied to every fish.
	HungerSatisfiedPerFish int
	// WastedFood is the dirt added to the water by food nobody needed.
	WastedFood int
}

// distributeFood feeds every fish of a the same share of foodQuantity and
// dirties the water with the food that exceeded each fish's hunger.
//
// Food is scaled by capacity, not population: a full aquarium turns the whole
// portion into hunger reduction, a half full one gets twice as much per fish.
// The aquarium must own at least one fish.
func distributeFood(a *domain.Aquarium, foodQuantity int) FeedingResult {
	var (
		capacity = a.Capacity
		perFish  = foodQuantity * capacity / len(a.Fish)
		result   = FeedingResult{HungerSatisfiedPerFish: perFish}
	)

	for _, f := range a.Fish {
		if f.Hunger < perFish {
			wasted := (perFish - f.Hunger) / capacity
			a.Dirty(wasted)
			result.WastedFood += wasted
		}

		f.Feed(perFish)
	}

	return result
}

// FeedFishes spreads foodQuantity (0..100) evenly over the fish of the aquarium.
// An aquarium without fish is returned unchanged.
func (s *Service) FeedFishes(ctx context.Context, aquariumID int64, foodQuantity int) (*domain.Aquarium, error) {
	if foodQuantity < 0 || foodQuantity > MaxFoodQuantity {
		return nil, domain.NewValidationError("quantity", "must be between 0 and 100")
	}

	unlock := s.locks.Lock(aquariumID)
	defer unlock()

	var (
		result  *domain.Aquarium
		feeding FeedingResult
	)

	err := s.repo.InTx(ctx, func(tx repo.Repository) error {
		a, err := tx.GetAquarium(ctx, aquariumID)
		if err != nil {
			return err
		}

		result = a

		if len(a.Fish) == 0 {
			return nil
		}

		feeding = distributeFood(a, foodQuantity)

		for _, f := range a.Fish {
			if err = tx.UpdateFish(ctx, f); err != nil {
				return err
			}
		}

		return tx.UpdateAquarium(ctx, a)
	})
	if err != nil {
		return nil, fmt.Errorf("feed fishes: %w", err)
	}

	logger.InfoKV(
		ctx,
		"Fishes fed",
		"aquarium_id", aquariumID,
		"food_quantity", foodQuantity,
		"hunger_per_fish", feeding.HungerSatisfiedPerFish,
		"wasted_food", feeding.WastedFood,
		"clearness", result.Clearness,
	)

	return result, nil
}
