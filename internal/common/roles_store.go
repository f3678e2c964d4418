package common

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RolesStore keeps the last known role set per Discord user in Redis so
// that identity lookups can degrade gracefully when the roles service is
// slow or down.
type RolesStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRolesStore(client *redis.Client) *RolesStore {
	return &RolesStore{client: client, ttl: 7 * 24 * time.Hour}
}

func (s *RolesStore) key(userID string) string {
	return "roles:" + userID
}

func (s *RolesStore) Save(ctx context.Context, userID string, roles []string) error {
	data, err := json.Marshal(roles)
	if err != nil {
		return fmt.Errorf("marshal roles: %w", err)
	}
	return s.client.Set(ctx, s.key(userID), data, s.ttl).Err()
}

// LastKnown returns the cached role set, or (nil, false) when absent.
func (s *RolesStore) LastKnown(ctx context.Context, userID string) ([]string, bool) {
	data, err := s.client.Get(ctx, s.key(userID)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		return nil, false
	}
	var roles []string
	if err := json.Unmarshal([]byte(data), &roles); err != nil {
		return nil, false
	}
	return roles, true
}
