package aquarium

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/multierr"

	domain "github.com/oshokin/aquarium/internal/domain/aquarium"
	"github.com/oshokin/aquarium/internal/logger"
	repo "github.com/oshokin/aquarium/internal/repository/aquarium"
)

// PassReport summarizes one run of a periodic updater over every aquarium.
type PassReport struct {
	// Processed is the number of aquariums updated successfully.
	Processed int
	// Failed is the number of aquariums whose update was rolled back.
	Failed int
	// RemovedFish is the number of fish that died during the pass.
	RemovedFish int
	// Duration is the wall time the pass took.
	Duration time.Duration
}

// UpdateStats advances the simulation by one minute for every aquarium:
// the water gets a bit dirtier, fish get hungrier, their health follows hunger
// and water clearness, and dead fish are removed.
//
// Each aquarium is updated in its own transaction. A failing aquarium is
// logged and skipped; the combined error is returned with the report.
func (s *Service) UpdateStats(ctx context.Context) (*PassReport, error) {
	return s.runPass(ctx, "stats", s.updateAquariumStats)
}

// UpdateAges advances the age of every fish by one day.
func (s *Service) UpdateAges(ctx context.Context) (*PassReport, error) {
	return s.runPass(ctx, "aging", s.updateAquariumAges)
}

// runPass applies update to every aquarium, isolating failures.
func (s *Service) runPass(
	ctx context.Context,
	name string,
	update func(ctx context.Context, aquariumID int64) (removed int, err error),
) (*PassReport, error) {
	ctx = logger.WithName(ctx, name)
	started := time.Now()

	ids, err := s.repo.ListAquariumIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list aquariums: %w", err)
	}

	var (
		report = new(PassReport)
		errs   error
	)

	for _, id := range ids {
		if err = ctx.Err(); err != nil {
			errs = multierr.Append(errs, err)

			break
		}

		removed, err := update(ctx, id)
		if err != nil {
			report.Failed++
			errs = multierr.Append(errs, fmt.Errorf("aquarium %d: %w", id, err))

			logger.ErrorKV(ctx, "Aquarium update failed", "aquarium_id", id, "error", err)

			continue
		}

		report.Processed++
		report.RemovedFish += removed
	}

	report.Duration = time.Since(started)

	logger.DebugKV(
		ctx,
		"Pass finished",
		"processed", report.Processed,
		"failed", report.Failed,
		"removed_fish", report.RemovedFish,
		"duration", report.Duration,
	)

	return report, errs
}

// updateAquariumStats runs one stats tick for a single aquarium in one transaction.
func (s *Service) updateAquariumStats(ctx context.Context, aquariumID int64) (int, error) {
	unlock := s.locks.Lock(aquariumID)
	defer unlock()

	var removed int

	err := s.repo.InTx(ctx, func(tx repo.Repository) error {
		removed = 0

		a, err := tx.GetAquarium(ctx, aquariumID)
		if err != nil {
			return err
		}

		a.Dirty(1)

		// Dead fish leave a.Fish while we walk, so walk a snapshot.
		for _, f := range slices.Clone(a.Fish) {
			f.IncreaseHunger()
			f.UpdateHealth()

			if a.HasLowClearness() {
				f.DecreaseHealth()
			}

			if !f.IsDead() {
				if err = tx.UpdateFish(ctx, f); err != nil {
					return err
				}

				continue
			}

			if err = tx.DeleteFish(ctx, f.ID); err != nil {
				return err
			}

			a.RemoveFish(f.ID)
			removed++

			logger.InfoKV(ctx, "Fish died", "aquarium_id", aquariumID, "fish_id", f.ID, "name", f.Name)
		}

		return tx.UpdateAquarium(ctx, a)
	})

	switch {
	case err == nil:
		return removed, nil
	case errors.Is(err, domain.ErrAquariumNotFound):
		// Deleted after the pass listed it.
		return 0, nil
	default:
		return 0, err
	}
}

// updateAquariumAges ages every fish of a single aquarium, persisting each fish on its own.
func (s *Service) updateAquariumAges(ctx context.Context, aquariumID int64) (int, error) {
	unlock := s.locks.Lock(aquariumID)
	defer unlock()

	fishes, err := s.repo.ListFishByAquarium(ctx, aquariumID)
	if err != nil {
		return 0, err
	}

	for _, f := range fishes {
		f.IncreaseAge()

		if err = s.repo.UpdateFish(ctx, f); err != nil {
			return 0, fmt.Errorf("fish %d: %w", f.ID, err)
		}
	}

	return 0, nil
}
