package common

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/SupremeBender/ajac-website/internal/logging"
)

// MissionLocker serializes mutations to a single mission document across
// processes. Acquire returns a release token; Release is a no-op when the
// token no longer owns the lease.
type MissionLocker interface {
	Acquire(ctx context.Context, missionID string) (token string, err error)
	Release(ctx context.Context, missionID, token string)
}

// ErrLockHeld is returned when another request holds the mission lease.
var ErrLockHeld = fmt.Errorf("mission lock held")

const (
	lockLeaseTTL     = 5 * time.Second
	lockRetryDelay   = 50 * time.Millisecond
	lockAcquireLimit = 3 * time.Second
)

// releaseScript deletes the lease only if the caller still owns it.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisMissionLocker leases a per-mission key with SET NX PX.
type RedisMissionLocker struct {
	client *redis.Client
}

func NewRedisMissionLocker(client *redis.Client) *RedisMissionLocker {
	return &RedisMissionLocker{client: client}
}

func (l *RedisMissionLocker) key(missionID string) string {
	return "mission_lock:" + missionID
}

func (l *RedisMissionLocker) Acquire(ctx context.Context, missionID string) (string, error) {
	token := uuid.New().String()
	deadline := time.Now().Add(lockAcquireLimit)

	for {
		ok, err := l.client.SetNX(ctx, l.key(missionID), token, lockLeaseTTL).Result()
		if err != nil {
			return "", fmt.Errorf("acquire mission lock: %w", err)
		}
		if ok {
			return token, nil
		}
		if time.Now().After(deadline) {
			return "", ErrLockHeld
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}
}

func (l *RedisMissionLocker) Release(ctx context.Context, missionID, token string) {
	if err := releaseScript.Run(ctx, l.client, []string{l.key(missionID)}, token).Err(); err != nil {
		logging.Warn("Failed to release mission lock", "mission_id", missionID, "error", err)
	}
}

// LocalMissionLocker is an in-process locker for tests and single-node
// deployments without Redis.
type LocalMissionLocker struct {
	mu     sync.Mutex
	leases map[string]string
}

func NewLocalMissionLocker() *LocalMissionLocker {
	return &LocalMissionLocker{leases: make(map[string]string)}
}

func (l *LocalMissionLocker) Acquire(ctx context.Context, missionID string) (string, error) {
	token := uuid.New().String()
	deadline := time.Now().Add(lockAcquireLimit)

	for {
		l.mu.Lock()
		if _, held := l.leases[missionID]; !held {
			l.leases[missionID] = token
			l.mu.Unlock()
			return token, nil
		}
		l.mu.Unlock()

		if time.Now().After(deadline) {
			return "", ErrLockHeld
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}
}

func (l *LocalMissionLocker) Release(_ context.Context, missionID, token string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.leases[missionID] == token {
		delete(l.leases, missionID)
	}
}
