package ports

import (
	"context"

	"github.com/sm8ta/webike_bicycle_manager/internal/core/domain"
)

type BicycleRepository interface {
	CreateBicycle(ctx context.Context, bicycle *domain.Bicycle) (*domain.Bicycle, error)
	GetBicycleByID(ctx context.Context, id int64) (*domain.Bicycle, error)
	ListBicycles(ctx context.Context) ([]*domain.Bicycle, error)
	UpdateBicycle(ctx context.Context, id int64, bicycle *domain.Bicycle) (*domain.Bicycle, error)
	DeleteBicycle(ctx context.Context, id int64) error
}

type BicycleService interface {
	CreateBicycle(ctx context.Context, bicycle *domain.Bicycle) (*domain.Bicycle, error)
	GetBicycleByID(ctx context.Context, id string) (*domain.Bicycle, error)
	ListBicycles(ctx context.Context) ([]*domain.Bicycle, error)
	UpdateBicycle(ctx context.Context, id string, bicycle *domain.Bicycle) (*domain.Bicycle, error)
	DeleteBicycle(ctx context.Context, id string) error
}

// BicycleGateway is the client side of the bicycles REST contract.
type BicycleGateway interface {
	List(ctx context.Context) ([]*domain.Bicycle, error)
	Get(ctx context.Context, id domain.BicycleID) (*domain.Bicycle, error)
	Create(ctx context.Context, bicycle *domain.Bicycle) error
	Update(ctx context.Context, id domain.BicycleID, bicycle *domain.Bicycle) error
	Delete(ctx context.Context, id domain.BicycleID) error
}
