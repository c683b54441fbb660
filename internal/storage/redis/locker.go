package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrLockLost = errors.New("lock expired or taken over")

// Deletes the key only while it still holds our token.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker is a per-key mutex shared by every syncer process using the same
// Redis. Locks expire after ttl so a crashed holder cannot block a key forever.
type Locker struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string

	mu     sync.Mutex
	tokens map[string]string
}

func NewLocker(rdb *redis.Client, ttl time.Duration) *Locker {
	return &Locker{
		rdb:    rdb,
		ttl:    ttl,
		prefix: "campaign_syncer:lock:",
		tokens: make(map[string]string),
	}
}

func (l *Locker) TryLock(ctx context.Context, key string) (bool, error) {
	token := uuid.NewString()

	ok, err := l.rdb.SetNX(ctx, l.prefix+key, token, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire lock %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}

	l.mu.Lock()
	l.tokens[key] = token
	l.mu.Unlock()

	return true, nil
}

func (l *Locker) Unlock(ctx context.Context, key string) error {
	l.mu.Lock()
	token, ok := l.tokens[key]
	delete(l.tokens, key)
	l.mu.Unlock()

	if !ok {
		return fmt.Errorf("release lock %s: not held", key)
	}

	n, err := unlockScript.Run(ctx, l.rdb, []string{l.prefix + key}, token).Int()
	if err != nil {
		return fmt.Errorf("release lock %s: %w", key, err)
	}
	if n == 0 {
		return fmt.Errorf("release lock %s: %w", key, ErrLockLost)
	}
	return nil
}
