package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/domain"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/ports"
)

const bicycleCacheTTL = 15 * time.Minute

type BicycleService struct {
	bicycleRepo ports.BicycleRepository
	logger      ports.LoggerPort
	validate    *validator.Validate
	cache       ports.CachePort
}

func NewBicycleService(
	bicycleRepo ports.BicycleRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *BicycleService {
	return &BicycleService{
		bicycleRepo: bicycleRepo,
		logger:      logger,
		validate:    validate,
		cache:       cache,
	}
}

// ValidationError wraps a record that failed struct validation.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func parseBicycleID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return n, nil
}

func bicycleCacheKey(id int64) string {
	return fmt.Sprintf("bicycle:%d", id)
}

func (s *BicycleService) CreateBicycle(ctx context.Context, bicycle *domain.Bicycle) (*domain.Bicycle, error) {
	if err := s.validate.Struct(bicycle); err != nil {
		s.logger.Error("Bicycle validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, &ValidationError{Err: err}
	}

	// ids belong to the store
	bicycle.ID = ""

	created, err := s.bicycleRepo.CreateBicycle(ctx, bicycle)
	if err != nil {
		s.logger.Error("Failed to create bicycle", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Bicycle created successfully", map[string]interface{}{
		"bicycle_id": created.ID,
	})

	return created, nil
}

func (s *BicycleService) GetBicycleByID(ctx context.Context, id string) (*domain.Bicycle, error) {
	bicycleID, err := parseBicycleID(id)
	if err != nil {
		s.logger.Warn("Invalid bicycle id", map[string]interface{}{
			"bicycle_id": id,
		})
		return nil, err
	}

	cacheKey := bicycleCacheKey(bicycleID)
	if cached, err := s.cache.Get(cacheKey); err == nil {
		var bicycle domain.Bicycle
		if err := bicycle.UnmarshalBinary(cached); err == nil {
			s.logger.Debug("Bicycle found in cache", map[string]interface{}{
				"bicycle_id": id,
			})
			return &bicycle, nil
		}
	}

	bicycle, err := s.bicycleRepo.GetBicycleByID(ctx, bicycleID)
	if err != nil {
		s.logger.Error("Failed to get bicycle", map[string]interface{}{
			"error":      err.Error(),
			"bicycle_id": id,
		})
		return nil, err
	}

	data, err := bicycle.MarshalBinary()
	if err != nil {
		s.logger.Warn("Failed to marshal bicycle for cache", map[string]interface{}{
			"error":      err.Error(),
			"bicycle_id": id,
		})
	} else if err := s.cache.Set(cacheKey, data, bicycleCacheTTL); err != nil {
		s.logger.Warn("Failed to cache bicycle", map[string]interface{}{
			"error":      err.Error(),
			"bicycle_id": id,
		})
	}

	return bicycle, nil
}

func (s *BicycleService) ListBicycles(ctx context.Context) ([]*domain.Bicycle, error) {
	bicycles, err := s.bicycleRepo.ListBicycles(ctx)
	if err != nil {
		s.logger.Error("Failed to list bicycles", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Retrieved bicycles", map[string]interface{}{
		"bicycles_count": len(bicycles),
	})

	return bicycles, nil
}

// UpdateBicycle replaces every field of the stored record.
func (s *BicycleService) UpdateBicycle(ctx context.Context, id string, bicycle *domain.Bicycle) (*domain.Bicycle, error) {
	bicycleID, err := parseBicycleID(id)
	if err != nil {
		s.logger.Warn("Invalid bicycle id", map[string]interface{}{
			"bicycle_id": id,
		})
		return nil, err
	}

	if err := s.validate.Struct(bicycle); err != nil {
		s.logger.Error("Bicycle validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, &ValidationError{Err: err}
	}

	updated, err := s.bicycleRepo.UpdateBicycle(ctx, bicycleID, bicycle)
	if err != nil {
		s.logger.Error("Failed to update bicycle", map[string]interface{}{
			"error":      err.Error(),
			"bicycle_id": id,
		})
		return nil, err
	}

	s.invalidate(bicycleID)

	s.logger.Info("Bicycle updated successfully", map[string]interface{}{
		"bicycle_id": id,
	})

	return updated, nil
}

func (s *BicycleService) DeleteBicycle(ctx context.Context, id string) error {
	bicycleID, err := parseBicycleID(id)
	if err != nil {
		s.logger.Warn("Invalid bicycle id", map[string]interface{}{
			"bicycle_id": id,
		})
		return err
	}

	if err := s.bicycleRepo.DeleteBicycle(ctx, bicycleID); err != nil {
		s.logger.Error("Failed to delete bicycle", map[string]interface{}{
			"error":      err.Error(),
			"bicycle_id": id,
		})
		return err
	}

	s.invalidate(bicycleID)

	s.logger.Info("Bicycle deleted successfully", map[string]interface{}{
		"bicycle_id": id,
	})

	return nil
}

func (s *BicycleService) invalidate(id int64) {
	if err := s.cache.Delete(bicycleCacheKey(id)); err != nil {
		s.logger.Warn("Failed to invalidate bicycle cache", map[string]interface{}{
			"error":      err.Error(),
			"bicycle_id": id,
		})
	}
}
