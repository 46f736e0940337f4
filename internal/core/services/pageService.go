package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sm8ta/webike_bicycle_manager/internal/core/domain"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/ports"
)

// PageService stores page sessions in a cache under "page:<session id>".
type PageService struct {
	cache  ports.CachePort
	logger ports.LoggerPort
	ttl    time.Duration
}

func NewPageService(cache ports.CachePort, logger ports.LoggerPort, ttl time.Duration) *PageService {
	return &PageService{
		cache:  cache,
		logger: logger,
		ttl:    ttl,
	}
}

func pageKey(sessionID string) string {
	return "page:" + sessionID
}

// Load returns the stored page, or a fresh one when the session is unknown
// or its entry cannot be decoded.
func (s *PageService) Load(_ context.Context, sessionID string) (*domain.Page, error) {
	data, err := s.cache.Get(pageKey(sessionID))
	if errors.Is(err, ports.ErrCacheMiss) {
		return domain.NewPage(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load page session: %w", err)
	}

	page := domain.NewPage()
	if err := page.UnmarshalBinary(data); err != nil {
		s.logger.Warn("Discarding unreadable page session", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return domain.NewPage(), nil
	}
	return page, nil
}

func (s *PageService) Save(_ context.Context, sessionID string, page *domain.Page) error {
	data, err := page.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode page session: %w", err)
	}
	if err := s.cache.Set(pageKey(sessionID), data, s.ttl); err != nil {
		return fmt.Errorf("save page session: %w", err)
	}
	return nil
}
