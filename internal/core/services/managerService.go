package services

import (
	"context"
	"errors"

	"github.com/sm8ta/webike_bicycle_manager/internal/core/domain"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/ports"
)

var ErrNotEditing = errors.New("no bicycle is being edited")

// ManagerService drives the bicycle page. Every operation works on the
// page passed in and never on shared state. Failures are logged and
// returned; callers are free to ignore them.
type ManagerService struct {
	gateway ports.BicycleGateway
	logger  ports.LoggerPort
}

func NewManagerService(gateway ports.BicycleGateway, logger ports.LoggerPort) *ManagerService {
	return &ManagerService{
		gateway: gateway,
		logger:  logger,
	}
}

// LoadList replaces the page list with the records the backend returns,
// or with the load failure placeholder.
func (s *ManagerService) LoadList(ctx context.Context, page *domain.Page) error {
	bicycles, err := s.gateway.List(ctx)
	if err != nil {
		s.logger.Error("Error fetching bicycles", map[string]interface{}{
			"error": err.Error(),
		})
		page.List = domain.FailedListView()
		return err
	}

	page.List = domain.NewListView(bicycles)

	s.logger.Debug("Bicycles loaded", map[string]interface{}{
		"bicycles_count": len(bicycles),
	})

	return nil
}

// Submit keeps the posted form on the page and routes it to update when
// the page is in edit mode, to create otherwise.
func (s *ManagerService) Submit(ctx context.Context, page *domain.Page, form domain.Form) error {
	page.Form = form
	bicycle := form.Bicycle()

	if page.Editing() {
		return s.UpdateBicycle(ctx, page, bicycle)
	}
	return s.CreateBicycle(ctx, page, bicycle)
}

func (s *ManagerService) CreateBicycle(ctx context.Context, page *domain.Page, bicycle *domain.Bicycle) error {
	if err := s.gateway.Create(ctx, bicycle); err != nil {
		s.logger.Error("Failed to add bicycle", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	s.logger.Info("Bicycle added", map[string]interface{}{
		"brand": bicycle.Brand,
		"model": bicycle.Model,
	})

	// a failed refresh is already on the page as a placeholder
	_ = s.LoadList(ctx, page)
	page.ResetForm()
	return nil
}

// UpdateBicycle sends a full replacement for the record being edited.
func (s *ManagerService) UpdateBicycle(ctx context.Context, page *domain.Page, bicycle *domain.Bicycle) error {
	if !page.Editing() {
		return ErrNotEditing
	}
	id := page.EditID

	if err := s.gateway.Update(ctx, id, bicycle); err != nil {
		s.logger.Error("Failed to update bicycle", map[string]interface{}{
			"error":      err.Error(),
			"bicycle_id": id,
		})
		return err
	}

	s.logger.Info("Bicycle updated", map[string]interface{}{
		"bicycle_id": id,
	})

	_ = s.LoadList(ctx, page)
	page.FinishEditing()
	return nil
}

// DeleteBicycle removes the record behind a Delete control. The page form
// and edit mode are left alone.
func (s *ManagerService) DeleteBicycle(ctx context.Context, page *domain.Page, id domain.BicycleID) error {
	if err := s.gateway.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete bicycle", map[string]interface{}{
			"error":      err.Error(),
			"bicycle_id": id,
		})
		return err
	}

	s.logger.Info("Bicycle deleted", map[string]interface{}{
		"bicycle_id": id,
	})

	_ = s.LoadList(ctx, page)
	return nil
}

// BeginEdit fetches one record and moves the page into edit mode with the
// form filled from it.
func (s *ManagerService) BeginEdit(ctx context.Context, page *domain.Page, id domain.BicycleID) error {
	bicycle, err := s.gateway.Get(ctx, id)
	if err != nil {
		s.logger.Error("Error fetching bicycle to edit", map[string]interface{}{
			"error":      err.Error(),
			"bicycle_id": id,
		})
		return err
	}

	page.StartEditing(id, bicycle)

	s.logger.Debug("Editing bicycle", map[string]interface{}{
		"bicycle_id": id,
	})

	return nil
}
