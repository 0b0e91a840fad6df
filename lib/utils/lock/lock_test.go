package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	t.Run(`runs and releases`, func(t *testing.T) {
		l := New()
		ok, err := l.WithDelay(context.Background(), "k", time.Second, func() error { return nil })
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = l.WithDelay(context.Background(), "k", time.Second, func() error { return errors.New("boom") })
		require.True(t, ok)
		require.EqualError(t, err, "boom")
	})

	t.Run(`busy key times out`, func(t *testing.T) {
		l := New()
		entered := make(chan struct{})
		release := make(chan struct{})
		go func() {
			_, _ = l.WithDelay(context.Background(), "k", time.Second, func() error {
				close(entered)
				<-release
				return nil
			})
		}()
		<-entered
		called := false
		ok, err := l.WithDelay(context.Background(), "k", 50*time.Millisecond, func() error {
			called = true
			return nil
		})
		require.NoError(t, err)
		require.False(t, ok)
		require.False(t, called)

		ok, err = l.WithDelay(context.Background(), "other", 50*time.Millisecond, func() error { return nil })
		require.NoError(t, err)
		require.True(t, ok)
		close(release)
	})

	t.Run(`callers are serialized`, func(t *testing.T) {
		l := New()
		var wg sync.WaitGroup
		active, maxActive := 0, 0
		var mu sync.Mutex
		acquired := make(chan bool, 5)
		for idx := 0; idx < 5; idx++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := l.WithDelay(context.Background(), "k", 5*time.Second, func() error {
					mu.Lock()
					active++
					if active > maxActive {
						maxActive = active
					}
					mu.Unlock()
					time.Sleep(5 * time.Millisecond)
					mu.Lock()
					active--
					mu.Unlock()
					return nil
				})
				acquired <- ok && err == nil
			}()
		}
		wg.Wait()
		close(acquired)
		for ok := range acquired {
			require.True(t, ok)
		}
		require.Equal(t, 1, maxActive)
	})

	t.Run(`cancelled context`, func(t *testing.T) {
		l := New()
		l.held.Store("k", struct{}{})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		ok, err := l.WithDelay(ctx, "k", time.Second, func() error { return nil })
		require.False(t, ok)
		require.ErrorIs(t, err, context.Canceled)
	})
}
