package aquarium

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domain "github.com/oshokin/aquarium/internal/domain/aquarium"
	repo "github.com/oshokin/aquarium/internal/repository/aquarium"
)

// newTestService builds a service over a temporary SQLite database.
func newTestService(t *testing.T) (*Service, *repo.SQLiteRepository) {
	t.Helper()

	repository, err := repo.NewSQLiteRepository(context.Background(), filepath.Join(t.TempDir(), "aquarium.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = repository.Close()
	})

	s, err := NewService(repository)
	require.NoError(t, err)

	return s, repository
}

// createAquarium stores an aquarium with the given capacity.
func createAquarium(t *testing.T, s *Service, capacity int) *domain.Aquarium {
	t.Helper()

	a, err := s.CreateAquarium(context.Background(), AquariumInput{Capacity: &capacity})
	require.NoError(t, err)

	return a
}

// addFishWith adds a fish and overrides its hunger and health directly in storage.
func addFishWith(t *testing.T, s *Service, r repo.Repository, aquariumID int64, hunger, health int) *domain.Fish {
	t.Helper()

	ctx := context.Background()

	f, err := s.AddFish(ctx, aquariumID, "Fish", domain.SpeciesGoldfish)
	require.NoError(t, err)

	f.Hunger = hunger
	f.Health = health
	require.NoError(t, r.UpdateFish(ctx, f))

	return f
}

// TestNewService_RequiresRepository asserts a nil repository is rejected.
func TestNewService_RequiresRepository(t *testing.T) {
	t.Parallel()

	s, err := NewService(nil)
	require.ErrorIs(t, err, errRepositoryRequired)
	require.Nil(t, s)
}

// TestService_CreateAquarium verifies defaults, overrides and validation.
func TestService_CreateAquarium(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newTestService(t)

	a := createAquarium(t, s, 4)
	require.Equal(t, domain.MaxClearness, a.Clearness)
	require.Equal(t, domain.DefaultTemperature, a.Temperature)

	capacity, temperature := 2, 18

	b, err := s.CreateAquarium(ctx, AquariumInput{Capacity: &capacity, Temperature: &temperature})
	require.NoError(t, err)
	require.Equal(t, 18, b.Temperature)

	_, err = s.CreateAquarium(ctx, AquariumInput{})
	require.True(t, domain.IsValidationError(err))

	clearness := 150

	_, err = s.CreateAquarium(ctx, AquariumInput{Capacity: &capacity, Clearness: &clearness})
	require.True(t, domain.IsValidationError(err))

	list, err := s.ListAquariums(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

// TestService_UpdateAndDeleteAquarium verifies partial updates and cascade deletion.
func TestService_UpdateAndDeleteAquarium(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, r := newTestService(t)

	a := createAquarium(t, s, 3)
	f := addFishWith(t, s, r, a.ID, 0, 100)

	temperature := 22

	updated, err := s.UpdateAquarium(ctx, a.ID, AquariumInput{Temperature: &temperature})
	require.NoError(t, err)
	require.Equal(t, 22, updated.Temperature)
	require.Equal(t, 3, updated.Capacity)
	require.Len(t, updated.Fish, 1)

	badTemperature := -300

	_, err = s.UpdateAquarium(ctx, a.ID, AquariumInput{Temperature: &badTemperature})
	require.True(t, domain.IsValidationError(err))

	_, err = s.UpdateAquarium(ctx, 999, AquariumInput{Temperature: &temperature})
	require.ErrorIs(t, err, domain.ErrAquariumNotFound)

	require.NoError(t, s.DeleteAquarium(ctx, a.ID))
	require.ErrorIs(t, s.DeleteAquarium(ctx, a.ID), domain.ErrAquariumNotFound)

	_, err = s.GetFish(ctx, f.ID)
	require.ErrorIs(t, err, domain.ErrFishNotFound)
}

// TestService_AddFish covers defaults, missing aquariums and the capacity check.
func TestService_AddFish(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, r := newTestService(t)

	a := createAquarium(t, s, 2)

	f, err := s.AddFish(ctx, a.ID, "Nemo", domain.SpeciesClownfish)
	require.NoError(t, err)
	require.Positive(t, f.ID)
	require.Zero(t, f.Hunger)
	require.Equal(t, domain.MaxHealth, f.Health)
	require.Zero(t, f.Age)
	require.Equal(t, a.ID, f.AquariumID)

	_, err = s.AddFish(ctx, a.ID, "Dory", domain.SpeciesGoldfish)
	require.NoError(t, err)

	// At capacity: rejected without touching the store.
	_, err = s.AddFish(ctx, a.ID, "Marlin", domain.SpeciesClownfish)
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)

	count, err := r.CountFish(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	_, err = s.AddFish(ctx, 999, "Ghost", domain.SpeciesGoldfish)
	require.ErrorIs(t, err, domain.ErrAquariumNotFound)

	_, err = s.AddFish(ctx, a.ID, "", domain.SpeciesGoldfish)
	require.True(t, domain.IsValidationError(err))
}

// TestService_AddFish_CountsInsteadOfLoading verifies the capacity check
// reads only the aquarium row and the fish count.
func TestService_AddFish_CountsInsteadOfLoading(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mock := repo.NewMockRepository(ctrl)

	mock.EXPECT().
		InTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(repo.Repository) error) error {
			return fn(mock)
		}).
		Times(2)

	mock.EXPECT().
		GetAquariumWithoutFish(gomock.Any(), int64(1)).
		Return(&domain.Aquarium{ID: 1, Capacity: 2, Clearness: domain.MaxClearness}, nil).
		Times(2)

	gomock.InOrder(
		mock.EXPECT().CountFish(gomock.Any(), int64(1)).Return(1, nil),
		mock.EXPECT().CountFish(gomock.Any(), int64(1)).Return(2, nil),
	)

	mock.EXPECT().
		CreateFish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f *domain.Fish) error {
			f.ID = 10

			return nil
		})

	s, err := NewService(mock)
	require.NoError(t, err)

	f, err := s.AddFish(ctx, 1, "Nemo", domain.SpeciesClownfish)
	require.NoError(t, err)
	require.Equal(t, int64(10), f.ID)

	_, err = s.AddFish(ctx, 1, "Dory", domain.SpeciesGoldfish)
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

// TestService_AddFish_Concurrent verifies concurrent insertions never exceed capacity.
func TestService_AddFish_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, r := newTestService(t)

	a := createAquarium(t, s, 3)

	var wg sync.WaitGroup

	for range 10 {
		wg.Go(func() {
			_, _ = s.AddFish(ctx, a.ID, "Rush", domain.SpeciesGoldfish)
		})
	}

	wg.Wait()

	count, err := r.CountFish(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, 3, count)
	require.Zero(t, s.locks.size())
}

// TestService_Clean verifies clearness always becomes exactly 100.
func TestService_Clean(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newTestService(t)

	a := createAquarium(t, s, 1)

	for _, clearness := range []int{0, 37, 100} {
		_, err := s.UpdateAquarium(ctx, a.ID, AquariumInput{Clearness: &clearness})
		require.NoError(t, err)

		cleaned, err := s.Clean(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, domain.MaxClearness, cleaned.Clearness)
	}

	_, err := s.Clean(ctx, 999)
	require.ErrorIs(t, err, domain.ErrAquariumNotFound)
}

// TestService_FishCRUD verifies fish updates, validation and deletion.
func TestService_FishCRUD(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newTestService(t)

	a := createAquarium(t, s, 2)

	f, err := s.AddFish(ctx, a.ID, "Nemo", domain.SpeciesClownfish)
	require.NoError(t, err)

	name, species, hunger := "Bubbles", domain.SpeciesGoldfish, 40

	updated, err := s.UpdateFish(ctx, f.ID, FishInput{Name: &name, Species: &species, Hunger: &hunger})
	require.NoError(t, err)
	require.Equal(t, "Bubbles", updated.Name)
	require.Equal(t, domain.SpeciesGoldfish, updated.Species)
	require.Equal(t, 40, updated.Hunger)
	require.Equal(t, a.ID, updated.AquariumID)

	health := 101

	_, err = s.UpdateFish(ctx, f.ID, FishInput{Health: &health})
	require.True(t, domain.IsValidationError(err))

	fishes, err := s.ListFish(ctx)
	require.NoError(t, err)
	require.Len(t, fishes, 1)

	require.NoError(t, s.DeleteFish(ctx, f.ID))
	require.ErrorIs(t, s.DeleteFish(ctx, f.ID), domain.ErrFishNotFound)

	_, err = s.UpdateFish(ctx, f.ID, FishInput{Name: &name})
	require.ErrorIs(t, err, domain.ErrFishNotFound)
}
