package baseworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var runs int32
	done := make(chan struct{})
	go func() {
		defer close(done)
		NewInstance("test", time.Millisecond, time.Millisecond).Run(ctx, func(ctx context.Context) {
			if atomic.AddInt32(&runs, 1) == 3 {
				cancel()
			}
		})
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
	require.GreaterOrEqual(t, atomic.LoadInt32(&runs), int32(3))
}

func TestRunRecoversPanic(t *testing.T) {
	require.NotPanics(t, func() {
		NewInstance("panic", time.Millisecond, time.Millisecond).Run(context.Background(), func(ctx context.Context) {
			panic("boom")
		})
	})
}
