// Package enrichment provides TTL-cached lookups against a third-party
// profile service. Reads are cache-aside: get, or fetch and store.
package enrichment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/festy23/teamup/pkg/ttlcache"
)

// ExternalProfile holds the subset of third-party profile data shown
// alongside a candidate.
type ExternalProfile struct {
	UserID      string   `json:"user_id"`
	DisplayName string   `json:"display_name"`
	AvatarURL   string   `json:"avatar_url"`
	Links       []string `json:"links"`
}

// Fetcher retrieves a profile from the third-party service.
type Fetcher interface {
	Fetch(ctx context.Context, userID string) (*ExternalProfile, error)
}

// Service is a read-through cache in front of a Fetcher.
type Service struct {
	fetcher Fetcher
	cache   *ttlcache.Cache[string, *ExternalProfile]
	logger  *zap.SugaredLogger
}

// New creates a new enrichment service with the given TTL.
func New(fetcher Fetcher, ttl time.Duration, logger *zap.SugaredLogger) *Service {
	return &Service{
		fetcher: fetcher,
		cache:   ttlcache.New[string, *ExternalProfile](ttl),
		logger:  logger,
	}
}

// Get returns the external profile for userID, fetching on a cache miss.
func (s *Service) Get(ctx context.Context, userID string) (*ExternalProfile, error) {
	return s.cache.GetOrFetch(ctx, userID, func(ctx context.Context) (*ExternalProfile, error) {
		s.logger.Debugw("fetching external profile", "user_id", userID)
		return s.fetcher.Fetch(ctx, userID)
	})
}

// Invalidate drops the cached entry for userID, forcing the next Get to
// hit the third-party service.
func (s *Service) Invalidate(userID string) {
	s.cache.Invalidate(userID)
}
