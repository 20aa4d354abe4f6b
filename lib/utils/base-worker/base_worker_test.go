package baseworker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBaseWorker(t *testing.T) {
	t.Run(`ticks do not overlap check`, func(t *testing.T) {
		w := NewInstance("test-worker", 0, time.Hour)
		var running, overlapped atomic.Bool
		job := func(ctx context.Context) {
			if !running.CompareAndSwap(false, true) {
				overlapped.Store(true)
				return
			}
			defer running.Store(false)
			time.Sleep(20 * time.Millisecond)
		}

		var wg sync.WaitGroup
		for range [5]struct{}{} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w.runOnce(context.Background(), w.GetLogger(), job)
			}()
		}
		wg.Wait()

		require.False(t, overlapped.Load())
	})

	t.Run(`guard released after tick check`, func(t *testing.T) {
		w := NewInstance("test-worker", 0, time.Hour)
		var runs atomic.Int64
		job := func(ctx context.Context) { runs.Add(1) }

		w.runOnce(context.Background(), w.GetLogger(), job)
		w.runOnce(context.Background(), w.GetLogger(), job)

		require.Equal(t, int64(2), runs.Load())
	})

	t.Run(`stop ends the loop check`, func(t *testing.T) {
		w := NewInstance("test-worker", time.Millisecond, time.Millisecond)
		var runs atomic.Int64
		w.Start(context.Background(), func(ctx context.Context) { runs.Add(1) })

		require.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, time.Millisecond)
		w.Stop()
		time.Sleep(10 * time.Millisecond)
		after := runs.Load()
		time.Sleep(20 * time.Millisecond)
		require.Equal(t, after, runs.Load())
	})
}
