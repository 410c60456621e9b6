package cached

import (
	"context"
	"fmt"
	"time"

	"findmypet/internal/platform/cache"
	"findmypet/internal/platform/logger"
	"findmypet/internal/ports/media"
)

// DefaultMargin: una URL cacheada se descarta este tiempo antes de que venza la firma.
const DefaultMargin = 5 * time.Minute

// Store decora un media.Store cacheando las URLs firmadas en redis.
// Upload pasa directo al store interno.
type Store struct {
	media.Store

	cache  *cache.Cache
	margin time.Duration
	log    logger.Logger
}

func New(inner media.Store, c *cache.Cache, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		Store:  inner,
		cache:  c,
		margin: DefaultMargin,
		log:    log,
	}
}

func (s *Store) SignedURL(ctx context.Context, cid string, ttl time.Duration) (string, error) {
	key := cacheKey(cid, ttl)

	var u string
	found, err := s.cache.GetJSON(ctx, key, &u)
	if err != nil {
		s.log.Warn("signed url cache read failed", map[string]any{"cid": cid, "err": err})
	}
	if found && u != "" {
		return u, nil
	}

	u, err = s.Store.SignedURL(ctx, cid, ttl)
	if err != nil {
		return "", err
	}

	if keep := ttl - s.margin; keep > 0 {
		if err := s.cache.SetJSON(ctx, key, u, keep); err != nil {
			s.log.Warn("signed url cache write failed", map[string]any{"cid": cid, "err": err})
		}
	}
	return u, nil
}

func cacheKey(cid string, ttl time.Duration) string {
	return fmt.Sprintf("signedurl:%s:%d", cid, int64(ttl/time.Second))
}
