package aquarium

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domain "github.com/oshokin/aquarium/internal/domain/aquarium"
	repo "github.com/oshokin/aquarium/internal/repository/aquarium"
)

var errTestStorage = errors.New("test storage error")

// TestService_UpdateStats verifies one tick of hunger, health and clearness decay.
func TestService_UpdateStats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, r := newTestService(t)

	a := createAquarium(t, s, 5)
	fed := addFishWith(t, s, r, a.ID, 10, 50)
	neutral := addFishWith(t, s, r, a.ID, 50, 50)
	starving := addFishWith(t, s, r, a.ID, 90, 50)

	report, err := s.UpdateStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, report.Processed)
	require.Zero(t, report.Failed)
	require.Zero(t, report.RemovedFish)

	stored, err := s.GetAquarium(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, 99, stored.Clearness)

	expect := map[int64][2]int{
		fed.ID:      {11, 51},
		neutral.ID:  {51, 50},
		starving.ID: {91, 49},
	}

	for id, want := range expect {
		f, err := s.GetFish(ctx, id)
		require.NoError(t, err)
		require.Equal(t, want[0], f.Hunger)
		require.Equal(t, want[1], f.Health)
	}
}

// TestService_UpdateStats_LowClearnessPenalty verifies both health penalties apply in the same tick.
func TestService_UpdateStats_LowClearnessPenalty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, r := newTestService(t)

	a := createAquarium(t, s, 5)
	starving := addFishWith(t, s, r, a.ID, 80, 50)
	fed := addFishWith(t, s, r, a.ID, 0, 50)

	// 31 becomes 30 after the ambient dirtying, which is low clearness.
	clearness := 31
	_, err := s.UpdateAquarium(ctx, a.ID, AquariumInput{Clearness: &clearness})
	require.NoError(t, err)

	_, err = s.UpdateStats(ctx)
	require.NoError(t, err)

	got, err := s.GetFish(ctx, starving.ID)
	require.NoError(t, err)
	require.Equal(t, 48, got.Health)

	// Recovery and penalty cancel out.
	got, err = s.GetFish(ctx, fed.ID)
	require.NoError(t, err)
	require.Equal(t, 50, got.Health)
}

// TestService_UpdateStats_RemovesDeadFish verifies fish reaching zero health disappear.
func TestService_UpdateStats_RemovesDeadFish(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, r := newTestService(t)

	a := createAquarium(t, s, 3)
	dying := addFishWith(t, s, r, a.ID, 100, 1)
	survivor := addFishWith(t, s, r, a.ID, 100, 2)

	report, err := s.UpdateStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, report.RemovedFish)

	_, err = s.GetFish(ctx, dying.ID)
	require.ErrorIs(t, err, domain.ErrFishNotFound)

	stored, err := s.GetAquarium(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, stored.Fish, 1)
	require.Equal(t, survivor.ID, stored.Fish[0].ID)
	require.Equal(t, 1, stored.Fish[0].Health)

	// The freed slot can be reused.
	_, err = s.AddFish(ctx, a.ID, "Newcomer", domain.SpeciesGoldfish)
	require.NoError(t, err)
}

// TestService_UpdateStats_ClearnessFloor verifies clearness never drops below zero.
func TestService_UpdateStats_ClearnessFloor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newTestService(t)

	a := createAquarium(t, s, 1)
	clearness := 0
	_, err := s.UpdateAquarium(ctx, a.ID, AquariumInput{Clearness: &clearness})
	require.NoError(t, err)

	_, err = s.UpdateStats(ctx)
	require.NoError(t, err)

	stored, err := s.GetAquarium(ctx, a.ID)
	require.NoError(t, err)
	require.Zero(t, stored.Clearness)
}

// TestService_UpdateAges verifies two ticks add exactly two days to every fish.
func TestService_UpdateAges(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, r := newTestService(t)

	first := createAquarium(t, s, 2)
	second := createAquarium(t, s, 2)
	a := addFishWith(t, s, r, first.ID, 0, 100)
	b := addFishWith(t, s, r, second.ID, 0, 100)

	_, err := s.UpdateAges(ctx)
	require.NoError(t, err)

	// Membership changes between ticks do not matter.
	require.NoError(t, s.DeleteFish(ctx, b.ID))
	c := addFishWith(t, s, r, second.ID, 0, 100)

	report, err := s.UpdateAges(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, report.Processed)

	got, err := s.GetFish(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.Age)

	got, err = s.GetFish(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.Age)
	require.Equal(t, 100, got.Health)
}

// TestService_UpdateStats_IsolatesFailures verifies one failing aquarium does not stop the pass.
func TestService_UpdateStats_IsolatesFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mock := repo.NewMockRepository(ctrl)

	healthy := &domain.Aquarium{
		ID:        2,
		Capacity:  1,
		Clearness: 50,
		Fish:      []*domain.Fish{{ID: 20, Name: "Ok", Species: domain.SpeciesGoldfish, Health: 10, AquariumID: 2}},
	}

	mock.EXPECT().
		ListAquariumIDs(gomock.Any()).
		Return([]int64{1, 2}, nil)

	mock.EXPECT().
		InTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(repo.Repository) error) error {
			return fn(mock)
		}).
		Times(2)

	gomock.InOrder(
		mock.EXPECT().GetAquarium(gomock.Any(), int64(1)).Return(nil, errTestStorage),
		mock.EXPECT().GetAquarium(gomock.Any(), int64(2)).Return(healthy, nil),
	)

	mock.EXPECT().
		UpdateFish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f *domain.Fish) error {
			require.Equal(t, 1, f.Hunger)

			return nil
		})

	mock.EXPECT().
		UpdateAquarium(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Aquarium) error {
			require.Equal(t, 49, a.Clearness)

			return nil
		})

	s, err := NewService(mock)
	require.NoError(t, err)

	report, err := s.UpdateStats(ctx)
	require.ErrorIs(t, err, errTestStorage)
	require.Equal(t, 1, report.Processed)
	require.Equal(t, 1, report.Failed)
}

// TestService_UpdateAges_IsolatesFailures verifies a failing fish only skips its own aquarium.
func TestService_UpdateAges_IsolatesFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mock := repo.NewMockRepository(ctrl)

	mock.EXPECT().
		ListAquariumIDs(gomock.Any()).
		Return([]int64{1, 2}, nil)

	mock.EXPECT().
		ListFishByAquarium(gomock.Any(), int64(1)).
		Return([]*domain.Fish{{ID: 10, AquariumID: 1}}, nil)
	mock.EXPECT().
		ListFishByAquarium(gomock.Any(), int64(2)).
		Return([]*domain.Fish{{ID: 20, AquariumID: 2}}, nil)

	mock.EXPECT().
		UpdateFish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f *domain.Fish) error {
			if f.ID == 10 {
				return errTestStorage
			}

			require.Equal(t, 1, f.Age)

			return nil
		}).
		Times(2)

	s, err := NewService(mock)
	require.NoError(t, err)

	report, err := s.UpdateAges(ctx)
	require.ErrorIs(t, err, errTestStorage)
	require.Equal(t, 1, report.Processed)
	require.Equal(t, 1, report.Failed)
}

// TestService_UpdateStats_ListFailure verifies a storage outage aborts the pass with an error.
func TestService_UpdateStats_ListFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mock := repo.NewMockRepository(ctrl)

	mock.EXPECT().ListAquariumIDs(gomock.Any()).Return(nil, errTestStorage)

	s, err := NewService(mock)
	require.NoError(t, err)

	report, err := s.UpdateStats(context.Background())
	require.ErrorIs(t, err, errTestStorage)
	require.Nil(t, report)
}
