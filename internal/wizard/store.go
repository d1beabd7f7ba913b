package wizard

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/aleksanderWitek/simplybank-web/internal/redis"
)

// Store persists wizard form state between the step requests of one
// browser session.
type Store interface {
	Load(ctx context.Context, sessionID string) (*FormState, bool)
	Save(ctx context.Context, sessionID string, state *FormState)
	Clear(ctx context.Context, sessionID string)
}

// stateTTL bounds how long an abandoned wizard survives.
const stateTTL = 30 * time.Minute

// RedisStore keeps form state in Redis under a session-scoped key.
type RedisStore struct {
	cache *redis.ViewCache[FormState]
}

// NewRedisStore builds a Store on the given Redis client.
func NewRedisStore(client *goredis.Client) *RedisStore {
	return &RedisStore{cache: redis.NewViewCache[FormState](client, stateTTL)}
}

func key(sessionID string) string {
	return "wizard:session:" + sessionID
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (*FormState, bool) {
	return s.cache.Get(ctx, key(sessionID))
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, state *FormState) {
	s.cache.Set(ctx, key(sessionID), state)
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) {
	s.cache.Delete(ctx, key(sessionID))
}
