package ports

import (
	"context"

	"github.com/sm8ta/webike_bicycle_manager/internal/core/domain"
)

// PageStore keeps the page state of every browser session.
type PageStore interface {
	Load(ctx context.Context, sessionID string) (*domain.Page, error)
	Save(ctx context.Context, sessionID string, page *domain.Page) error
}
