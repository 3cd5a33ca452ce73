package aquarium

import (
	"context"

	domain "github.com/oshokin/aquarium/internal/domain/aquarium"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=aquarium

// Repository defines persistence operations for aquariums and fish.
// Missing rows are reported with domain.ErrAquariumNotFound or domain.ErrFishNotFound.
type Repository interface {
	// CreateAquarium inserts the aquarium and sets its ID.
	CreateAquarium(ctx context.Context, a *domain.Aquarium) error
	// GetAquarium returns the aquarium with its fish.
	GetAquarium(ctx context.Context, id int64) (*domain.Aquarium, error)
	// GetAquariumWithoutFish returns the aquarium row only. Fish is left empty.
	GetAquariumWithoutFish(ctx context.Context, id int64) (*domain.Aquarium, error)
	// ListAquariums returns every aquarium with its fish.
	ListAquariums(ctx context.Context) ([]*domain.Aquarium, error)
	// ListAquariumIDs returns the IDs of every aquarium in ascending order.
	ListAquariumIDs(ctx context.Context) ([]int64, error)
	// UpdateAquarium stores capacity, clearness and temperature. Fish are untouched.
	UpdateAquarium(ctx context.Context, a *domain.Aquarium) error
	// DeleteAquarium removes the aquarium and all its fish.
	DeleteAquarium(ctx context.Context, id int64) error

	// CreateFish inserts the fish and sets its ID.
	CreateFish(ctx context.Context, f *domain.Fish) error
	// GetFish returns a single fish.
	GetFish(ctx context.Context, id int64) (*domain.Fish, error)
	// ListFish returns every fish.
	ListFish(ctx context.Context) ([]*domain.Fish, error)
	// ListFishByAquarium returns the fish owned by the aquarium.
	ListFishByAquarium(ctx context.Context, aquariumID int64) ([]*domain.Fish, error)
	// CountFish returns how many fish the aquarium owns.
	CountFish(ctx context.Context, aquariumID int64) (int, error)
	// UpdateFish stores every mutable field of the fish.
	UpdateFish(ctx context.Context, f *domain.Fish) error
	// DeleteFish removes a single fish.
	DeleteFish(ctx context.Context, id int64) error

	// InTx runs fn inside a transaction. The Repository passed to fn is bound to
	// the transaction; fn returning an error rolls every change back.
	InTx(ctx context.Context, fn func(repo Repository) error) error

	// Close releases the underlying resources.
	Close() error
}
