// README: Plan cache backed by Redis with TTL.
package plan

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const planKeyPrefix = "plan:cache:"

// Store caches validated plans in Redis so identical intakes within the TTL
// skip the expensive generation call. All failures degrade to a cache miss.
type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{redis: client, ttl: ttl}
}

func (s *Store) Get(ctx context.Context, key string) (*TravelPlan, bool) {
	if s == nil || s.redis == nil || key == "" {
		return nil, false
	}
	raw, err := s.redis.Get(ctx, planKeyPrefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	var plan TravelPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, false
	}
	return &plan, true
}

func (s *Store) Set(ctx context.Context, key string, p *TravelPlan) {
	if s == nil || s.redis == nil || key == "" || p == nil {
		return
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	s.redis.Set(ctx, planKeyPrefix+key, raw, s.ttl)
}
