package lock

import (
	"context"
	"sync"
	"time"
)

const pollInterval = 20 * time.Millisecond

// KeyLock is an in-process mutex per string key.
type KeyLock struct {
	held sync.Map
}

func New() *KeyLock {
	return &KeyLock{}
}

// WithDelay runs safeCode while holding key. It waits at most wait for the current
// holder and reports false without running safeCode when the key stays busy.
func (l *KeyLock) WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (bool, error) {
	timeout := time.NewTimer(wait)
	defer timeout.Stop()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		if _, loaded := l.held.LoadOrStore(key, struct{}{}); !loaded {
			break
		}
		select {
		case <-timeout.C:
			return false, nil
		case <-ctx.Done():
			return false, ctx.Err()
		case <-ticker.C:
		}
	}
	defer l.held.Delete(key)
	return true, safeCode()
}
