package core

import (
	"runtime"
	"testing"
)

func TestDelayMillisecondBlocksUntilElapsed(t *testing.T) {
	hal := newFakeHAL(32, 1000)
	if err := Init(hal, Config{CounterBits: 32}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	done := make(chan struct{})
	go func() {
		DelayMillisecond(20)
		close(done)
	}()

	// Wait for the delay's internal timer to be registered, then drive the
	// counter forward in small steps, yielding after each one, until that
	// timer fires and releases the waiting goroutine.
	for i := 0; i < 1000 && Context().HeadHandle() == nil; i++ {
		runtime.Gosched()
	}
	for i := 0; i < 100; i++ {
		select {
		case <-done:
			return
		default:
			hal.advance(1)
			runtime.Gosched()
		}
	}
	t.Fatal("DelayMillisecond never returned after 100 ticks")
}
