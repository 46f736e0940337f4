package services

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"
	"github.com/sm8ta/webike_bicycle_manager/internal/adapter/memory"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/domain"
)

func newBicycleService() (*BicycleService, *memory.BicycleRepository, *memory.Cache) {
	repo := memory.NewBicycleRepository()
	cache := memory.NewCache()
	return NewBicycleService(repo, &recordingLogger{}, validator.New(), cache), repo, cache
}

func TestBicycleService_CreateAssignsID(t *testing.T) {
	svc, _, _ := newBicycleService()
	ctx := context.Background()

	in := &domain.Bicycle{ID: "99", Brand: "Trek", Model: "Marlin", Type: "MTB", Color: "Red", Price: 500, Image: "x.png"}
	created, err := svc.CreateBicycle(ctx, in)
	if err != nil {
		t.Fatalf("CreateBicycle: %v", err)
	}
	if created.ID != "1" {
		t.Fatalf("expected server assigned id 1, got %q", created.ID)
	}

	listed, err := svc.ListBicycles(ctx)
	if err != nil {
		t.Fatalf("ListBicycles: %v", err)
	}
	if diff := cmp.Diff([]*domain.Bicycle{created}, listed); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestBicycleService_Validation(t *testing.T) {
	svc, _, _ := newBicycleService()
	ctx := context.Background()

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}

	_, err := svc.CreateBicycle(ctx, &domain.Bicycle{Brand: string(long)})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	created, _ := svc.CreateBicycle(ctx, &domain.Bicycle{Brand: "Trek"})
	_, err = svc.UpdateBicycle(ctx, created.ID.String(), &domain.Bicycle{Color: string(long)})
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError on update, got %v", err)
	}
}

func TestBicycleService_InvalidIDs(t *testing.T) {
	svc, _, _ := newBicycleService()
	ctx := context.Background()

	for _, id := range []string{"", "abc", "0", "-4", "1.5"} {
		if _, err := svc.GetBicycleByID(ctx, id); !errors.Is(err, domain.ErrInvalidID) {
			t.Errorf("get %q: expected ErrInvalidID, got %v", id, err)
		}
		if err := svc.DeleteBicycle(ctx, id); !errors.Is(err, domain.ErrInvalidID) {
			t.Errorf("delete %q: expected ErrInvalidID, got %v", id, err)
		}
	}

	if _, err := svc.GetBicycleByID(ctx, "7"); !errors.Is(err, domain.ErrBicycleNotFound) {
		t.Fatalf("expected ErrBicycleNotFound, got %v", err)
	}
}

func TestBicycleService_CacheIsInvalidated(t *testing.T) {
	svc, _, cache := newBicycleService()
	ctx := context.Background()

	created, _ := svc.CreateBicycle(ctx, &domain.Bicycle{Brand: "Trek", Model: "Marlin", Price: 500})
	id := created.ID.String()

	if _, err := svc.GetBicycleByID(ctx, id); err != nil {
		t.Fatalf("GetBicycleByID: %v", err)
	}
	if _, err := cache.Get("bicycle:1"); err != nil {
		t.Fatalf("expected cached record, got %v", err)
	}

	replacement := &domain.Bicycle{Brand: "Trek", Model: "Fuel", Price: 900}
	if _, err := svc.UpdateBicycle(ctx, id, replacement); err != nil {
		t.Fatalf("UpdateBicycle: %v", err)
	}
	got, err := svc.GetBicycleByID(ctx, id)
	if err != nil {
		t.Fatalf("GetBicycleByID: %v", err)
	}
	if got.Model != "Fuel" || got.Price != 900 {
		t.Fatalf("stale record after update: %+v", got)
	}

	if err := svc.DeleteBicycle(ctx, id); err != nil {
		t.Fatalf("DeleteBicycle: %v", err)
	}
	if _, err := svc.GetBicycleByID(ctx, id); !errors.Is(err, domain.ErrBicycleNotFound) {
		t.Fatalf("expected ErrBicycleNotFound after delete, got %v", err)
	}
}
