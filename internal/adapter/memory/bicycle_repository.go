package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/sm8ta/webike_bicycle_manager/internal/core/domain"
)

// BicycleRepository keeps records in insertion order and hands out
// increasing integer ids.
type BicycleRepository struct {
	mu       sync.RWMutex
	nextID   int64
	order    []int64
	bicycles map[int64]domain.Bicycle
}

func NewBicycleRepository() *BicycleRepository {
	return &BicycleRepository{
		nextID:   1,
		bicycles: make(map[int64]domain.Bicycle),
	}
}

func (r *BicycleRepository) CreateBicycle(_ context.Context, bicycle *domain.Bicycle) (*domain.Bicycle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	stored := *bicycle
	stored.ID = domain.BicycleID(strconv.FormatInt(id, 10))
	r.bicycles[id] = stored
	r.order = append(r.order, id)

	out := stored
	return &out, nil
}

func (r *BicycleRepository) GetBicycleByID(_ context.Context, id int64) (*domain.Bicycle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.bicycles[id]
	if !ok {
		return nil, domain.ErrBicycleNotFound
	}
	return &stored, nil
}

func (r *BicycleRepository) ListBicycles(_ context.Context) ([]*domain.Bicycle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bicycles := make([]*domain.Bicycle, 0, len(r.order))
	for _, id := range r.order {
		stored := r.bicycles[id]
		bicycles = append(bicycles, &stored)
	}
	return bicycles, nil
}

func (r *BicycleRepository) UpdateBicycle(_ context.Context, id int64, bicycle *domain.Bicycle) (*domain.Bicycle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bicycles[id]; !ok {
		return nil, domain.ErrBicycleNotFound
	}

	stored := *bicycle
	stored.ID = domain.BicycleID(strconv.FormatInt(id, 10))
	r.bicycles[id] = stored

	out := stored
	return &out, nil
}

func (r *BicycleRepository) DeleteBicycle(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bicycles[id]; !ok {
		return domain.ErrBicycleNotFound
	}
	delete(r.bicycles, id)

	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
